package study

import (
	"math/rand/v2"

	"github.com/andrewpaige1/flashdeck/models"
)

// FilterAll selects every card.
const FilterAll = "all"

type Mode int

const (
	ModeBrowse Mode = iota
	ModeAdd
	ModeBulk
	ModeEdit
	ModeConfirmDeleteAll
)

func (m Mode) String() string {
	switch m {
	case ModeAdd:
		return "add"
	case ModeBulk:
		return "bulk"
	case ModeEdit:
		return "edit"
	case ModeConfirmDeleteAll:
		return "confirm-delete-all"
	default:
		return "browse"
	}
}

// Draft is the add/edit form buffer.
type Draft struct {
	Question string
	Answer   string
	Category string
}

func (d Draft) Input() models.FlashcardInput {
	return models.NewInput(d.Question, d.Answer, d.Category)
}

// State is everything the study view needs. Transitions return a new State
// and never touch the receiver's slices.
type State struct {
	Cards         []models.Flashcard
	Position      int
	AnswerVisible bool
	Filter        string
	Loading       bool
	Mode          Mode

	Draft     Draft
	BulkInput string
	BulkError string
	Notice    string

	// Err is the failure of the last service call, nil once one succeeds.
	Err error
}

func NewState() State {
	return State{Filter: FilterAll, Loading: true}
}

// Filtered is the view Position indexes into. Recomputed on every call.
func (s State) Filtered() []models.Flashcard {
	if s.Filter == "" || s.Filter == FilterAll {
		return s.Cards
	}

	var filtered []models.Flashcard
	for _, card := range s.Cards {
		if card.Group() == s.Filter {
			filtered = append(filtered, card)
		}
	}
	return filtered
}

// Categories lists the groups present in Cards in first-seen order.
func (s State) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, card := range s.Cards {
		group := card.Group()
		if !seen[group] {
			seen[group] = true
			categories = append(categories, group)
		}
	}
	return categories
}

// Current returns the card under Position, if Position is inside the view.
func (s State) Current() (models.Flashcard, bool) {
	filtered := s.Filtered()
	if s.Position < 0 || s.Position >= len(filtered) {
		return models.Flashcard{}, false
	}
	return filtered[s.Position], true
}

func (s State) Loaded(cards []models.Flashcard) State {
	s.Cards = cards
	s.Loading = false
	return s
}

func (s State) Next() State {
	n := len(s.Filtered())
	if n == 0 {
		return s
	}
	s.Position = (s.Position + 1) % n
	s.AnswerVisible = false
	return s
}

func (s State) Prev() State {
	n := len(s.Filtered())
	if n == 0 {
		return s
	}
	s.Position = ((s.Position-1)%n + n) % n
	s.AnswerVisible = false
	return s
}

func (s State) Flip() State {
	s.AnswerVisible = !s.AnswerVisible
	return s
}

func (s State) SetFilter(filter string) State {
	s.Filter = filter
	s.Position = 0
	s.AnswerVisible = false
	return s
}

// NextFilter cycles all -> each category -> all.
func (s State) NextFilter() State {
	options := append([]string{FilterAll}, s.Categories()...)
	for i, option := range options {
		if option == s.Filter {
			return s.SetFilter(options[(i+1)%len(options)])
		}
	}
	return s.SetFilter(FilterAll)
}

// Shuffle replaces Cards with a random permutation of the filtered view.
// Cards outside the active filter drop out until the next load.
func (s State) Shuffle(rng *rand.Rand) State {
	filtered := s.Filtered()
	shuffled := make([]models.Flashcard, len(filtered))
	copy(shuffled, filtered)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	s.Cards = shuffled
	s.Position = 0
	s.AnswerVisible = false
	return s
}

// ToggleAdd opens the add form, closing the bulk form, or closes it.
func (s State) ToggleAdd() State {
	if s.Mode == ModeAdd {
		s.Mode = ModeBrowse
		return s
	}
	if s.Mode == ModeEdit {
		s.Draft = Draft{}
	}
	s.Mode = ModeAdd
	return s
}

func (s State) ToggleBulk() State {
	if s.Mode == ModeBulk {
		s.Mode = ModeBrowse
		return s
	}
	s.Mode = ModeBulk
	return s
}

// OpenEdit fills the draft from the current card.
func (s State) OpenEdit() State {
	card, ok := s.Current()
	if !ok {
		return s
	}
	s.Draft = Draft{Question: card.Question, Answer: card.Answer}
	if card.Category != nil {
		s.Draft.Category = *card.Category
	}
	s.Mode = ModeEdit
	return s
}

func (s State) CloseForms() State {
	s.Mode = ModeBrowse
	return s
}

// RequestDeleteAll asks for confirmation. Nothing to confirm on an empty
// collection.
func (s State) RequestDeleteAll() State {
	if len(s.Cards) == 0 {
		return s
	}
	s.Mode = ModeConfirmDeleteAll
	return s
}

func (s State) CancelDeleteAll() State {
	if s.Mode == ModeConfirmDeleteAll {
		s.Mode = ModeBrowse
	}
	return s
}

// ClearNotice dismisses the notice and any service error.
func (s State) ClearNotice() State {
	s.Notice = ""
	s.Err = nil
	return s
}
