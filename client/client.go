// Package client talks to the notesboard REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oliverisaac/notesboard/types"
	"github.com/pkg/errors"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Status() int { return e.StatusCode }

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) ListUsers(ctx context.Context) ([]types.User, error) {
	var users []types.User
	err := c.do(ctx, http.MethodGet, "/api/users", nil, &users)
	return users, err
}

func (c *Client) CreateUser(ctx context.Context, username string) (types.User, error) {
	var user types.User
	err := c.do(ctx, http.MethodPost, "/api/users", types.UserRequest{Username: username}, &user)
	return user, err
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListNotes(ctx context.Context) ([]types.Note, error) {
	var notes []types.Note
	err := c.do(ctx, http.MethodGet, "/api/notes", nil, &notes)
	return notes, err
}

func (c *Client) GetNote(ctx context.Context, id string) (types.Note, error) {
	var note types.Note
	err := c.do(ctx, http.MethodGet, "/api/notes/"+url.PathEscape(id), nil, &note)
	return note, err
}

func (c *Client) CreateNote(ctx context.Context, req types.NoteRequest) (types.Note, error) {
	var note types.Note
	err := c.do(ctx, http.MethodPost, "/api/notes", req, &note)
	return note, err
}

func (c *Client) UpdateNote(ctx context.Context, id string, req types.NoteRequest) (types.Note, error) {
	var note types.Note
	err := c.do(ctx, http.MethodPut, "/api/notes/"+url.PathEscape(id), req, &note)
	return note, err
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/notes/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "encoding request")
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrapf(err, "building %s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil || msg.Message == "" {
			msg.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg.Message}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return errors.Wrapf(json.NewDecoder(resp.Body).Decode(out), "decoding %s %s", method, path)
}
