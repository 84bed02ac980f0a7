package models

import (
	"errors"
	"time"
)

// Uncategorized is the filter group for cards without a category. It is never
// persisted.
const Uncategorized = "Uncategorized"

// Flashcard represents an individual flashcard
type Flashcard struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	Category  *string   `gorm:"type:text" json:"category"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
}

// Group returns the category used for filtering.
func (f Flashcard) Group() string {
	if f.Category == nil || *f.Category == "" {
		return Uncategorized
	}
	return *f.Category
}

var (
	ErrMissingQuestion = errors.New("question is required")
	ErrMissingAnswer   = errors.New("answer is required")
)

// FlashcardInput is the request body for create and update. Pointers let a
// missing field be told apart from an empty one.
type FlashcardInput struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
	Category *string `json:"category,omitempty"`
}

func (in FlashcardInput) Validate() error {
	if in.Question == nil {
		return ErrMissingQuestion
	}
	if in.Answer == nil {
		return ErrMissingAnswer
	}
	return nil
}

// Flashcard builds the record to insert. Call Validate first.
func (in FlashcardInput) Flashcard() Flashcard {
	card := Flashcard{Category: in.Category}
	if in.Question != nil {
		card.Question = *in.Question
	}
	if in.Answer != nil {
		card.Answer = *in.Answer
	}
	return card
}

// NewInput is a convenience for callers holding plain strings. An empty
// category is sent as absent.
func NewInput(question, answer, category string) FlashcardInput {
	in := FlashcardInput{Question: &question, Answer: &answer}
	if category != "" {
		in.Category = &category
	}
	return in
}

// BulkResult is the response to a bulk create.
type BulkResult struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

// RenderedFlashcard carries sanitized HTML for both sides of a card.
type RenderedFlashcard struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
