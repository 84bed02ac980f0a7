package study

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewpaige1/flashdeck/models"
)

func withIDs(cards ...models.Flashcard) []models.Flashcard {
	for i := range cards {
		cards[i].ID = uint(i + 1)
	}
	return cards
}

func TestFilterByCategory(t *testing.T) {
	s := NewState().Loaded(withIDs(
		card("2+2?", "4", ""),
		card("3+3?", "6", "Math"),
	))
	s.Position = 1
	s.AnswerVisible = true

	s = s.SetFilter("Math")
	filtered := s.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "3+3?", filtered[0].Question)
	assert.Equal(t, 0, s.Position)
	assert.False(t, s.AnswerVisible)
}

func TestFilterUncategorizedAndExactMatch(t *testing.T) {
	empty := ""
	cards := withIDs(
		card("a", "1", ""),
		card("b", "2", "Math"),
		card("c", "3", "math"),
		models.Flashcard{Question: "d", Answer: "4", Category: &empty},
	)
	s := NewState().Loaded(cards)

	assert.Len(t, s.SetFilter(FilterAll).Filtered(), 4)

	uncategorized := s.SetFilter(models.Uncategorized).Filtered()
	require.Len(t, uncategorized, 2)
	assert.Equal(t, "a", uncategorized[0].Question)
	assert.Equal(t, "d", uncategorized[1].Question)

	math := s.SetFilter("Math").Filtered()
	require.Len(t, math, 1)
	assert.Equal(t, "b", math[0].Question)

	assert.Empty(t, s.SetFilter("Physics").Filtered())
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	s := NewState().Loaded(withIDs(
		card("a", "1", "Math"),
		card("b", "2", ""),
		card("c", "3", "Math"),
		card("d", "4", "History"),
	))

	assert.Equal(t, []string{"Math", models.Uncategorized, "History"}, s.Categories())
}

func TestNavigationWraps(t *testing.T) {
	s := NewState().Loaded(withIDs(card("a", "1", ""), card("b", "2", ""), card("c", "3", "")))

	s.Position = 2
	s.AnswerVisible = true
	s = s.Next()
	assert.Equal(t, 0, s.Position)
	assert.False(t, s.AnswerVisible)

	s.AnswerVisible = true
	s = s.Prev()
	assert.Equal(t, 2, s.Position)
	assert.False(t, s.AnswerVisible)

	s = s.Prev()
	assert.Equal(t, 1, s.Position)
}

func TestNavigationWithinFilteredView(t *testing.T) {
	s := NewState().Loaded(withIDs(
		card("a", "1", "X"),
		card("b", "2", "Y"),
		card("c", "3", "X"),
	)).SetFilter("X")

	s = s.Next()
	assert.Equal(t, 1, s.Position)
	s = s.Next()
	assert.Equal(t, 0, s.Position)
}

func TestNavigationOnEmptyIsNoop(t *testing.T) {
	s := NewState().Loaded(nil)
	s.AnswerVisible = true

	assert.Equal(t, s, s.Next())
	assert.Equal(t, s, s.Prev())
}

func TestFlip(t *testing.T) {
	s := NewState()
	s = s.Flip()
	assert.True(t, s.AnswerVisible)
	s = s.Flip()
	assert.False(t, s.AnswerVisible)
}

func TestShufflePermutesFilteredView(t *testing.T) {
	original := withIDs(
		card("a", "1", "X"),
		card("b", "2", "Y"),
		card("c", "3", "X"),
		card("d", "4", "X"),
	)
	s := NewState().Loaded(original).SetFilter("X")
	s.Position = 2
	s.AnswerVisible = true

	shuffled := s.Shuffle(rand.New(rand.NewPCG(1, 2)))

	assert.Equal(t, 0, shuffled.Position)
	assert.False(t, shuffled.AnswerVisible)
	// Cards outside the filter drop out until the next load
	require.Len(t, shuffled.Cards, 3)
	var ids []uint
	for _, c := range shuffled.Cards {
		ids = append(ids, c.ID)
	}
	assert.ElementsMatch(t, []uint{1, 3, 4}, ids)

	// The previous state is untouched
	assert.Len(t, s.Cards, 4)
	assert.Equal(t, "a", s.Cards[0].Question)
}

func TestShuffleDoesNotAliasCollection(t *testing.T) {
	cards := withIDs(card("a", "1", ""), card("b", "2", ""), card("c", "3", ""))
	s := NewState().Loaded(cards)

	_ = s.Shuffle(rand.New(rand.NewPCG(3, 4)))
	assert.Equal(t, []uint{1, 2, 3}, []uint{cards[0].ID, cards[1].ID, cards[2].ID})
}

func TestNextFilterCycles(t *testing.T) {
	s := NewState().Loaded(withIDs(card("a", "1", "Math"), card("b", "2", "")))

	s = s.NextFilter()
	assert.Equal(t, "Math", s.Filter)
	s = s.NextFilter()
	assert.Equal(t, models.Uncategorized, s.Filter)
	s = s.NextFilter()
	assert.Equal(t, FilterAll, s.Filter)
}

func TestCurrentOutOfRange(t *testing.T) {
	s := NewState().Loaded(withIDs(card("a", "1", "")))
	s.Position = 3

	_, ok := s.Current()
	assert.False(t, ok)
}

func TestFormModes(t *testing.T) {
	s := NewState().Loaded(withIDs(card("q", "a", "Cat")))

	s = s.ToggleAdd()
	assert.Equal(t, ModeAdd, s.Mode)
	s = s.ToggleBulk()
	assert.Equal(t, ModeBulk, s.Mode)
	s = s.ToggleBulk()
	assert.Equal(t, ModeBrowse, s.Mode)

	s = s.OpenEdit()
	assert.Equal(t, ModeEdit, s.Mode)
	assert.Equal(t, Draft{Question: "q", Answer: "a", Category: "Cat"}, s.Draft)

	s = s.ToggleAdd()
	assert.Equal(t, ModeAdd, s.Mode)
	assert.Equal(t, Draft{}, s.Draft)
}

func TestRequestDeleteAllNeedsCards(t *testing.T) {
	s := NewState().Loaded(nil)
	assert.Equal(t, ModeBrowse, s.RequestDeleteAll().Mode)

	s = s.Loaded(withIDs(card("a", "1", "")))
	s = s.RequestDeleteAll()
	assert.Equal(t, ModeConfirmDeleteAll, s.Mode)
	assert.Equal(t, ModeBrowse, s.CancelDeleteAll().Mode)
}

func TestClearNoticeDropsError(t *testing.T) {
	s := NewState()
	s.Notice = "done"
	s.Err = errUnavailable

	s = s.ClearNotice()
	assert.Empty(t, s.Notice)
	assert.NoError(t, s.Err)
}
