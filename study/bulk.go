package study

import (
	"encoding/json"
	"errors"

	"github.com/andrewpaige1/flashdeck/models"
)

// Messages shown for bulk import failures.
const (
	MsgMalformedJSON  = "Invalid JSON format"
	MsgNotArray       = "JSON must be an array of objects"
	MsgImportFailed   = "Error importing flashcards"
	MsgImportComplete = "Flashcards imported successfully!"
)

var (
	ErrMalformedJSON = errors.New("bulk input is not valid JSON")
	ErrNotArray      = errors.New("bulk input is not an array of objects")
	ErrInvalidItem   = errors.New("bulk input item has invalid fields")
)

// ParseBulk validates raw bulk input before anything is sent.
func ParseBulk(raw string) ([]models.FlashcardInput, error) {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, ErrMalformedJSON
	}

	items, ok := parsed.([]any)
	if !ok {
		return nil, ErrNotArray
	}
	for _, item := range items {
		if _, ok := item.(map[string]any); !ok {
			return nil, ErrNotArray
		}
	}

	inputs := make([]models.FlashcardInput, 0, len(items))
	if err := json.Unmarshal([]byte(raw), &inputs); err != nil {
		return nil, ErrInvalidItem
	}
	return inputs, nil
}

// BulkMessage maps a ParseBulk error to the text shown to the user.
func BulkMessage(err error) string {
	switch {
	case errors.Is(err, ErrMalformedJSON):
		return MsgMalformedJSON
	case errors.Is(err, ErrNotArray):
		return MsgNotArray
	default:
		return MsgImportFailed
	}
}
