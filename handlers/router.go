package handlers

import "net/http"

// NewRouter mounts the collection routes at /flashcards and again under /api.
func NewRouter(h *FlashcardHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeText(w, http.StatusOK, "OK")
	})

	for _, prefix := range []string{"", "/api"} {
		mux.HandleFunc("GET "+prefix+"/flashcards", h.GetFlashcards)
		mux.HandleFunc("POST "+prefix+"/flashcards", h.CreateFlashcards)
		mux.HandleFunc("DELETE "+prefix+"/flashcards", h.DeleteAllFlashcards)
		mux.HandleFunc("PUT "+prefix+"/flashcards/{id}", h.UpdateFlashcardByID)
		mux.HandleFunc("DELETE "+prefix+"/flashcards/{id}", h.DeleteFlashcardByID)
		mux.HandleFunc("GET "+prefix+"/flashcards/{id}/rendered", h.GetRenderedFlashcard)
	}

	return mux
}
