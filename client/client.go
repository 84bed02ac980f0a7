// Package client talks to the flashcard collection service over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andrewpaige1/flashdeck/models"
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("flashcard service: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("flashcard service: %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the service at baseURL. A nil httpClient uses
// http.DefaultClient, which has no timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

func (c *Client) List(ctx context.Context) ([]models.Flashcard, error) {
	var flashcards []models.Flashcard
	if err := c.do(ctx, http.MethodGet, "/flashcards", nil, &flashcards); err != nil {
		return nil, err
	}
	return flashcards, nil
}

func (c *Client) Create(ctx context.Context, in models.FlashcardInput) (models.Flashcard, error) {
	var flashcard models.Flashcard
	err := c.do(ctx, http.MethodPost, "/flashcards", in, &flashcard)
	return flashcard, err
}

func (c *Client) CreateMany(ctx context.Context, in []models.FlashcardInput) (models.BulkResult, error) {
	var result models.BulkResult
	err := c.do(ctx, http.MethodPost, "/flashcards", in, &result)
	return result, err
}

func (c *Client) Update(ctx context.Context, id uint, in models.FlashcardInput) (models.Flashcard, error) {
	var flashcard models.Flashcard
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/flashcards/%d", id), in, &flashcard)
	return flashcard, err
}

func (c *Client) Delete(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/flashcards/%d", id), nil, nil)
}

func (c *Client) DeleteAll(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/flashcards", nil, nil)
}

func (c *Client) Rendered(ctx context.Context, id uint) (models.RenderedFlashcard, error) {
	var rendered models.RenderedFlashcard
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/flashcards/%d/rendered", id), nil, &rendered)
	return rendered, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var fault struct {
			Error string `json:"error"`
		}
		// Best effort: the body may not be JSON at all
		_ = json.NewDecoder(resp.Body).Decode(&fault)
		return &StatusError{StatusCode: resp.StatusCode, Message: fault.Error}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
