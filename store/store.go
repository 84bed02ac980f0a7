package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrewpaige1/flashdeck/models"
)

// Faults reported by the store. Handlers collapse all of them into one generic
// response per endpoint; they exist so callers and logs can tell them apart.
var (
	ErrNotFound         = errors.New("flashcard not found")
	ErrValidationFailed = errors.New("flashcard validation failed")
	ErrStoreUnavailable = errors.New("flashcard store unavailable")
)

// InvalidID is the sentinel for ids that could not be parsed. No record ever
// has it, so every lookup with it reports ErrNotFound.
const InvalidID uint = 0

// Store is the record store used by the collection service.
type Store interface {
	List(ctx context.Context) ([]models.Flashcard, error)
	Get(ctx context.Context, id uint) (models.Flashcard, error)
	Create(ctx context.Context, in models.FlashcardInput) (models.Flashcard, error)
	CreateMany(ctx context.Context, in []models.FlashcardInput) (int64, error)
	Update(ctx context.Context, id uint, in models.FlashcardInput) (models.Flashcard, error)
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
}

// FlashcardStore implements Store with gorm.
type FlashcardStore struct {
	db *gorm.DB
}

func NewFlashcardStore(db *gorm.DB) *FlashcardStore {
	return &FlashcardStore{db: db}
}

func (s *FlashcardStore) List(ctx context.Context) ([]models.Flashcard, error) {
	var flashcards []models.Flashcard
	if err := s.db.WithContext(ctx).Order("created_at desc").Order("id desc").Find(&flashcards).Error; err != nil {
		return nil, unavailable(err)
	}

	// Encode as [] rather than null
	if flashcards == nil {
		flashcards = []models.Flashcard{}
	}
	return flashcards, nil
}

func (s *FlashcardStore) Get(ctx context.Context, id uint) (models.Flashcard, error) {
	var flashcard models.Flashcard
	if id == InvalidID {
		return flashcard, ErrNotFound
	}

	if err := s.db.WithContext(ctx).First(&flashcard, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return flashcard, fmt.Errorf("id %d: %w", id, ErrNotFound)
		}
		return flashcard, unavailable(err)
	}
	return flashcard, nil
}

func (s *FlashcardStore) Create(ctx context.Context, in models.FlashcardInput) (models.Flashcard, error) {
	if err := in.Validate(); err != nil {
		return models.Flashcard{}, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	flashcard := in.Flashcard()
	if err := s.db.WithContext(ctx).Create(&flashcard).Error; err != nil {
		return models.Flashcard{}, unavailable(err)
	}
	return flashcard, nil
}

// CreateMany inserts every record in one statement. One invalid element
// rejects the whole batch.
func (s *FlashcardStore) CreateMany(ctx context.Context, in []models.FlashcardInput) (int64, error) {
	if len(in) == 0 {
		return 0, nil
	}

	flashcards := make([]models.Flashcard, 0, len(in))
	for i, item := range in {
		if err := item.Validate(); err != nil {
			return 0, fmt.Errorf("%w: item %d: %v", ErrValidationFailed, i, err)
		}
		flashcards = append(flashcards, item.Flashcard())
	}

	result := s.db.WithContext(ctx).Create(&flashcards)
	if result.Error != nil {
		return 0, unavailable(result.Error)
	}
	return result.RowsAffected, nil
}

// Update replaces question, answer and category together.
func (s *FlashcardStore) Update(ctx context.Context, id uint, in models.FlashcardInput) (models.Flashcard, error) {
	if err := in.Validate(); err != nil {
		return models.Flashcard{}, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	flashcard, err := s.Get(ctx, id)
	if err != nil {
		return models.Flashcard{}, err
	}

	replacement := in.Flashcard()
	flashcard.Question = replacement.Question
	flashcard.Answer = replacement.Answer
	flashcard.Category = replacement.Category

	if err := s.db.WithContext(ctx).Save(&flashcard).Error; err != nil {
		return models.Flashcard{}, unavailable(err)
	}
	return flashcard, nil
}

func (s *FlashcardStore) Delete(ctx context.Context, id uint) error {
	if id == InvalidID {
		return ErrNotFound
	}

	result := s.db.WithContext(ctx).Delete(&models.Flashcard{}, id)
	if result.Error != nil {
		return unavailable(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteAll removes every record unconditionally.
func (s *FlashcardStore) DeleteAll(ctx context.Context) error {
	err := s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Flashcard{}).Error
	if err != nil {
		return unavailable(err)
	}
	return nil
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
