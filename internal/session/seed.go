package session

import (
	"fmt"

	"github.com/phrazzld/vocab-api/internal/domain"
)

// starterWords is the built-in beginner deck used when no database is
// configured. Ordering is the authored definition order, with new and
// review words interleaved.
var starterWords = []struct {
	target  string
	prompt  string
	rank    int
	isNew   bool
	context *domain.SentenceContext
}{
	{
		target: "trộn", prompt: "mix", rank: 150, isNew: true,
		context: &domain.SentenceContext{
			PromptSentence: "Do you want to mix colors?",
			TargetSentence: "Bạn có muốn trộn màu không?",
		},
	},
	{
		target: "đẹp", prompt: "beautiful", rank: 85, isNew: false,
		context: &domain.SentenceContext{
			PromptSentence: "She is very beautiful.",
			TargetSentence: "Cô ấy rất đẹp.",
		},
	},
	{
		target: "ăn", prompt: "to eat", rank: 45, isNew: true,
		context: &domain.SentenceContext{
			PromptSentence: "I want to eat pho.",
			TargetSentence: "Tôi muốn ăn phở.",
		},
	},
	{
		target: "nhà", prompt: "house", rank: 30, isNew: false,
		context: &domain.SentenceContext{
			PromptSentence: "This is my house.",
			TargetSentence: "Đây là nhà của tôi.",
		},
	},
	{
		target: "đọc", prompt: "to read", rank: 120, isNew: true,
		context: &domain.SentenceContext{
			PromptSentence: "I like to read books.",
			TargetSentence: "Tôi thích đọc sách.",
		},
	},
}

// StarterWords builds the words of the built-in beginner deck. Each call
// produces fresh word values with new IDs, so separate sessions never share
// mutable data. Also used to seed an empty database on first start.
func StarterWords() []*domain.Word {
	words := make([]*domain.Word, 0, len(starterWords))
	for _, sw := range starterWords {
		word, err := domain.NewWord(sw.target, sw.prompt, sw.rank, sw.isNew, sw.context)
		if err != nil {
			// The starter data is static and validated by tests; a failure
			// here is a programming error.
			// ALLOW-PANIC: Invalid built-in seed data
			panic(fmt.Sprintf("invalid starter word %q: %v", sw.target, err))
		}
		words = append(words, word)
	}
	return words
}

// StarterDeck builds the built-in beginner deck.
func StarterDeck() *SliceDeck {
	return NewSliceDeck(StarterWords())
}
