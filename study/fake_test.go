package study

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andrewpaige1/flashdeck/models"
)

var errUnavailable = errors.New("service unavailable")

// fakeService keeps cards in memory, newest first, and counts calls.
type fakeService struct {
	cards  []models.Flashcard
	nextID uint
	calls  map[string]int
	fail   map[string]bool
}

func newFakeService(cards ...models.Flashcard) *fakeService {
	f := &fakeService{calls: map[string]int{}, fail: map[string]bool{}}
	for _, card := range cards {
		f.nextID++
		card.ID = f.nextID
		f.cards = append([]models.Flashcard{card}, f.cards...)
	}
	return f
}

func (f *fakeService) totalCalls() int {
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *fakeService) record(op string) error {
	f.calls[op]++
	if f.fail[op] {
		return errUnavailable
	}
	return nil
}

func (f *fakeService) List(ctx context.Context) ([]models.Flashcard, error) {
	if err := f.record("List"); err != nil {
		return nil, err
	}
	out := make([]models.Flashcard, len(f.cards))
	copy(out, f.cards)
	return out, nil
}

func (f *fakeService) Create(ctx context.Context, in models.FlashcardInput) (models.Flashcard, error) {
	if err := f.record("Create"); err != nil {
		return models.Flashcard{}, err
	}
	f.nextID++
	card := in.Flashcard()
	card.ID = f.nextID
	card.CreatedAt = time.Now()
	f.cards = append([]models.Flashcard{card}, f.cards...)
	return card, nil
}

func (f *fakeService) CreateMany(ctx context.Context, in []models.FlashcardInput) (models.BulkResult, error) {
	if err := f.record("CreateMany"); err != nil {
		return models.BulkResult{}, err
	}
	for _, item := range in {
		f.nextID++
		card := item.Flashcard()
		card.ID = f.nextID
		f.cards = append([]models.Flashcard{card}, f.cards...)
	}
	return models.BulkResult{
		Message: fmt.Sprintf("Successfully created %d flashcards", len(in)),
		Count:   int64(len(in)),
	}, nil
}

func (f *fakeService) Update(ctx context.Context, id uint, in models.FlashcardInput) (models.Flashcard, error) {
	if err := f.record("Update"); err != nil {
		return models.Flashcard{}, err
	}
	for i, card := range f.cards {
		if card.ID == id {
			replacement := in.Flashcard()
			f.cards[i].Question = replacement.Question
			f.cards[i].Answer = replacement.Answer
			f.cards[i].Category = replacement.Category
			return f.cards[i], nil
		}
	}
	return models.Flashcard{}, errUnavailable
}

func (f *fakeService) Delete(ctx context.Context, id uint) error {
	if err := f.record("Delete"); err != nil {
		return err
	}
	for i, card := range f.cards {
		if card.ID == id {
			f.cards = append(f.cards[:i:i], f.cards[i+1:]...)
			return nil
		}
	}
	return errUnavailable
}

func (f *fakeService) DeleteAll(ctx context.Context) error {
	if err := f.record("DeleteAll"); err != nil {
		return err
	}
	f.cards = nil
	return nil
}

func card(question, answer, category string) models.Flashcard {
	c := models.Flashcard{Question: question, Answer: answer}
	if category != "" {
		c.Category = &category
	}
	return c
}
