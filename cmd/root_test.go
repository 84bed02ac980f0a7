package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrewpaige1/flashdeck/handlers"
	"github.com/andrewpaige1/flashdeck/models"
	"github.com/andrewpaige1/flashdeck/store"
	"github.com/andrewpaige1/flashdeck/testutil"
)

// newTestServer runs the collection service over a fresh database and seeds
// it with cards, oldest first.
func newTestServer(t *testing.T, cards ...models.FlashcardInput) (string, store.Store) {
	t.Helper()

	s := store.NewFlashcardStore(testutil.SetupTestDB(t))
	for _, in := range cards {
		_, err := s.Create(context.Background(), in)
		require.NoError(t, err)
	}

	srv := httptest.NewServer(handlers.NewRouter(handlers.NewFlashcardHandler(s, testutil.DiscardLogger())))
	t.Cleanup(srv.Close)
	return srv.URL, s
}

// newFailingServer answers every request with a 500.
func newFailingServer(t *testing.T) string {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to fetch flashcards"}`))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

// execute runs the root command with args and stdin and returns everything
// written to stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := GetRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	t.Cleanup(func() {
		clearCmd.Flags().Set("yes", "false")
		root.SetArgs(nil)
		root.SetIn(nil)
		root.SetOut(nil)
		root.SetErr(nil)
	})

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func listCards(t *testing.T, s store.Store) []models.Flashcard {
	t.Helper()
	cards, err := s.List(context.Background())
	require.NoError(t, err)
	return cards
}
