package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/andrewpaige1/flashdeck/models"
	"github.com/andrewpaige1/flashdeck/render"
	"github.com/andrewpaige1/flashdeck/store"
	"github.com/andrewpaige1/flashdeck/utils"
)

type FlashcardHandler struct {
	Store    store.Store
	Renderer *render.Renderer
	Logger   *slog.Logger
}

func NewFlashcardHandler(s store.Store, logger *slog.Logger) *FlashcardHandler {
	return &FlashcardHandler{Store: s, Renderer: render.New(), Logger: logger}
}

func (h *FlashcardHandler) logFault(r *http.Request, op string, err error) {
	requestID, _ := utils.GetRequestID(r)
	h.Logger.Error(op+" failed", "request_id", requestID, "error", err)
}

// GET /flashcards
func (h *FlashcardHandler) GetFlashcards(w http.ResponseWriter, r *http.Request) {
	flashcards, err := h.Store.List(r.Context())
	if err != nil {
		h.logFault(r, "GetFlashcards", err)
		writeError(w, "Failed to fetch flashcards")
		return
	}

	writeJSON(w, http.StatusOK, flashcards)
}

// POST /flashcards accepts one flashcard or an array of them.
func (h *FlashcardHandler) CreateFlashcards(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logFault(r, "CreateFlashcards", err)
		writeError(w, "Failed to create flashcard")
		return
	}

	if isJSONArray(body) {
		var inputs []models.FlashcardInput
		if err := json.Unmarshal(body, &inputs); err != nil {
			h.logFault(r, "CreateFlashcards", fmt.Errorf("%w: %v", store.ErrValidationFailed, err))
			writeError(w, "Failed to create flashcard")
			return
		}

		count, err := h.Store.CreateMany(r.Context(), inputs)
		if err != nil {
			h.logFault(r, "CreateFlashcards", err)
			writeError(w, "Failed to create flashcard")
			return
		}

		h.Logger.Info("CreateFlashcards: bulk created", "count", count)
		writeJSON(w, http.StatusCreated, models.BulkResult{
			Message: fmt.Sprintf("Successfully created %d flashcards", count),
			Count:   count,
		})
		return
	}

	var input models.FlashcardInput
	if err := json.Unmarshal(body, &input); err != nil {
		h.logFault(r, "CreateFlashcards", fmt.Errorf("%w: %v", store.ErrValidationFailed, err))
		writeError(w, "Failed to create flashcard")
		return
	}

	flashcard, err := h.Store.Create(r.Context(), input)
	if err != nil {
		h.logFault(r, "CreateFlashcards", err)
		writeError(w, "Failed to create flashcard")
		return
	}

	writeJSON(w, http.StatusCreated, flashcard)
}

// PUT /flashcards/{id} replaces question, answer and category.
func (h *FlashcardHandler) UpdateFlashcardByID(w http.ResponseWriter, r *http.Request) {
	id := utils.ParseID(r, "id")

	var input models.FlashcardInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logFault(r, "UpdateFlashcardByID", fmt.Errorf("%w: %v", store.ErrValidationFailed, err))
		writeError(w, "Failed to update flashcard")
		return
	}

	flashcard, err := h.Store.Update(r.Context(), id, input)
	if err != nil {
		h.logFault(r, "UpdateFlashcardByID", err)
		writeError(w, "Failed to update flashcard")
		return
	}

	writeJSON(w, http.StatusOK, flashcard)
}

// DELETE /flashcards/{id}
func (h *FlashcardHandler) DeleteFlashcardByID(w http.ResponseWriter, r *http.Request) {
	id := utils.ParseID(r, "id")

	if err := h.Store.Delete(r.Context(), id); err != nil {
		h.logFault(r, "DeleteFlashcardByID", err)
		writeError(w, "Failed to delete flashcard")
		return
	}

	writeJSON(w, http.StatusOK, messageBody{Message: "Deleted successfully"})
}

// DELETE /flashcards removes everything. Confirmation is the client's job.
func (h *FlashcardHandler) DeleteAllFlashcards(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteAll(r.Context()); err != nil {
		h.logFault(r, "DeleteAllFlashcards", err)
		writeError(w, "Failed to delete flashcards")
		return
	}

	h.Logger.Info("DeleteAllFlashcards: collection cleared")
	writeJSON(w, http.StatusOK, messageBody{Message: "All flashcards deleted successfully"})
}

// GET /flashcards/{id}/rendered
func (h *FlashcardHandler) GetRenderedFlashcard(w http.ResponseWriter, r *http.Request) {
	id := utils.ParseID(r, "id")

	flashcard, err := h.Store.Get(r.Context(), id)
	if err != nil {
		h.logFault(r, "GetRenderedFlashcard", err)
		writeError(w, "Failed to render flashcard")
		return
	}

	rendered, err := h.Renderer.Flashcard(flashcard)
	if err != nil {
		h.logFault(r, "GetRenderedFlashcard", err)
		writeError(w, "Failed to render flashcard")
		return
	}

	writeJSON(w, http.StatusOK, rendered)
}

func isJSONArray(body []byte) bool {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
