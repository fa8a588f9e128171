package schedule

// Params defines the configurable parameters for the review interval policy.
type Params struct {
	// CorrectIntervalDays is how many days forward a correct answer
	// schedules the next review.
	CorrectIntervalDays int

	// IncorrectIntervalDays is how many days forward an incorrect answer
	// schedules the next review. Zero means the word is due again
	// immediately and stays in the active queue.
	IncorrectIntervalDays int
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance.
type ParamsConfig struct {
	CorrectIntervalDays   int
	IncorrectIntervalDays int
}

// NewDefaultParams creates a new Params instance with default values:
// a correct answer schedules 3 days forward, an incorrect answer 0 days.
func NewDefaultParams() *Params {
	return &Params{
		CorrectIntervalDays:   3,
		IncorrectIntervalDays: 0,
	}
}

// NewParams creates a new Params instance with custom configuration.
// Zero-valued fields keep their defaults; IncorrectIntervalDays has a zero
// default, so only positive overrides are meaningful there.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.CorrectIntervalDays > 0 {
		params.CorrectIntervalDays = config.CorrectIntervalDays
	}
	if config.IncorrectIntervalDays > 0 {
		params.IncorrectIntervalDays = config.IncorrectIntervalDays
	}

	return params
}
