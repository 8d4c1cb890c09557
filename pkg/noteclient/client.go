// Package noteclient is the HTTP client for the notes API. It speaks the
// /api/notes surface: JSON envelope {data, message}, bearer-token auth,
// note_id + sparse changes bodies for mutations.
package noteclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Note is the wire representation of one stored note.
type Note struct {
	Id          string `json:"notes_id"`
	Email       string `json:"email,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DateAdded   string `json:"date_added"`
	Marked      bool   `json:"marked"`
}

// Changes is a sparse patch; nil fields are omitted from the request body
// and left untouched on the server.
type Changes struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Marked      *bool   `json:"marked,omitempty"`
}

// APIError is a non-2xx response; Message carries the server's status text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (c *Client) do(ctx context.Context, method string, body interface{}) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api/notes", reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode, Message: env.Message}
	}

	return &env, nil
}

func (c *Client) List(ctx context.Context) ([]Note, error) {
	env, err := c.do(ctx, http.MethodGet, nil)
	if err != nil {
		return nil, err
	}

	var notes []Note
	if err := json.Unmarshal(env.Data, &notes); err != nil {
		return nil, fmt.Errorf("decoding notes: %w", err)
	}
	return notes, nil
}

func (c *Client) Create(ctx context.Context, note Note) (Note, error) {
	body := map[string]string{
		"notes_id":    note.Id,
		"title":       note.Title,
		"description": note.Description,
	}

	env, err := c.do(ctx, http.MethodPost, body)
	if err != nil {
		return Note{}, err
	}

	var created Note
	if err := json.Unmarshal(env.Data, &created); err != nil {
		return Note{}, fmt.Errorf("decoding note: %w", err)
	}
	return created, nil
}

func (c *Client) Update(ctx context.Context, noteID string, changes Changes) error {
	body := map[string]interface{}{
		"note_id": noteID,
		"changes": changes,
	}

	_, err := c.do(ctx, http.MethodPut, body)
	return err
}

func (c *Client) Delete(ctx context.Context, noteID string) error {
	body := map[string]string{
		"note_id": noteID,
	}

	_, err := c.do(ctx, http.MethodDelete, body)
	return err
}
