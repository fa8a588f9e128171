// Package main implements the entry point for the vocabulary API server,
// which runs a Vietnamese vocabulary learning session over HTTP: it serves
// flashcards in a deterministic order, evaluates submitted answers with
// diacritic-insensitive matching, and schedules each word's next review.
package main

import (
	"log"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
