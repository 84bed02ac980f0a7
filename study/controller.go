package study

import (
	"context"
	"log/slog"

	"github.com/andrewpaige1/flashdeck/models"
)

// Service is the collection service as the controller sees it.
// *client.Client implements it.
type Service interface {
	List(ctx context.Context) ([]models.Flashcard, error)
	Create(ctx context.Context, in models.FlashcardInput) (models.Flashcard, error)
	CreateMany(ctx context.Context, in []models.FlashcardInput) (models.BulkResult, error)
	Update(ctx context.Context, id uint, in models.FlashcardInput) (models.Flashcard, error)
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
}

// Controller runs the transitions that talk to the service. It holds no
// state of its own: every method takes a State and returns the next one.
// Failures other than bulk parsing are logged and recorded in Err; the rest
// of the state stays as it was.
type Controller struct {
	svc    Service
	logger *slog.Logger
}

func NewController(svc Service, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{svc: svc, logger: logger}
}

// Load fetches the whole collection. On failure the current cards stay,
// which on first load is the empty collection.
func (c *Controller) Load(ctx context.Context, s State) State {
	s.Err = nil
	cards, err := c.svc.List(ctx)
	if err != nil {
		c.logger.Error("error fetching flashcards", "error", err)
		s.Loading = false
		s.Err = err
		return s
	}
	return s.Loaded(cards)
}

func (c *Controller) Add(ctx context.Context, s State) State {
	s.Err = nil
	if _, err := c.svc.Create(ctx, s.Draft.Input()); err != nil {
		c.logger.Error("error adding flashcard", "error", err)
		s.Err = err
		return s
	}

	s.Draft = Draft{}
	s.Mode = ModeBrowse
	return c.Load(ctx, s)
}

// Edit replaces the current card with the draft.
func (c *Controller) Edit(ctx context.Context, s State) State {
	card, ok := s.Current()
	if !ok {
		return s
	}

	s.Err = nil
	if _, err := c.svc.Update(ctx, card.ID, s.Draft.Input()); err != nil {
		c.logger.Error("error updating flashcard", "id", card.ID, "error", err)
		s.Err = err
		return s
	}

	s.Draft = Draft{}
	s.Mode = ModeBrowse
	return c.Load(ctx, s)
}

// BulkImport validates BulkInput and submits it. Parse failures never reach
// the service.
func (c *Controller) BulkImport(ctx context.Context, s State) State {
	s.BulkError = ""
	s.Err = nil

	inputs, err := ParseBulk(s.BulkInput)
	if err != nil {
		s.BulkError = BulkMessage(err)
		return s
	}

	result, err := c.svc.CreateMany(ctx, inputs)
	if err != nil {
		c.logger.Error("error bulk importing", "error", err)
		s.BulkError = MsgImportFailed
		s.Err = err
		return s
	}

	s.BulkInput = ""
	s.Mode = ModeBrowse
	s = c.Load(ctx, s)

	s.Notice = result.Message
	if s.Notice == "" {
		s.Notice = MsgImportComplete
	}
	return s
}

// DeleteCurrent deletes the card under Position and reloads. The position
// bound is checked against the unfiltered length from before the reload.
func (c *Controller) DeleteCurrent(ctx context.Context, s State) State {
	card, ok := s.Current()
	if !ok {
		return s
	}
	previousLen := len(s.Cards)

	s.Err = nil
	if err := c.svc.Delete(ctx, card.ID); err != nil {
		c.logger.Error("error deleting flashcard", "id", card.ID, "error", err)
		s.Err = err
		return s
	}

	s = c.Load(ctx, s)
	if s.Position >= previousLen-1 {
		s.Position = max(0, s.Position-1)
	}
	s.AnswerVisible = false
	return s
}

// DeleteAll clears the collection once confirm says yes.
func (c *Controller) DeleteAll(ctx context.Context, s State, confirm func() bool) State {
	if confirm == nil || !confirm() {
		return s.CancelDeleteAll()
	}

	s.Mode = ModeBrowse
	s.Err = nil
	if err := c.svc.DeleteAll(ctx); err != nil {
		c.logger.Error("error deleting all flashcards", "error", err)
		s.Err = err
		return s
	}

	s = c.Load(ctx, s)
	s.Position = 0
	s.AnswerVisible = false
	return s
}
