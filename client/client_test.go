package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/oliverisaac/notesboard/client"
	"github.com/oliverisaac/notesboard/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   map[string]any
}

func setupServer(t *testing.T, handler http.HandlerFunc) (*client.Client, *[]recordedRequest) {
	t.Helper()
	var seen []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rr := recordedRequest{Method: r.Method, Path: r.URL.Path}
		if r.Body != nil && r.ContentLength > 0 {
			_ = json.NewDecoder(r.Body).Decode(&rr.Body)
		}
		seen = append(seen, rr)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return client.New(srv.URL + "/"), &seen
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_ListUsers(t *testing.T) {
	c, seen := setupServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []types.User{{ID: "1", Username: "testuser1"}, {ID: "2", Username: "testuser2"}})
	})

	users, err := c.ListUsers(context.Background())
	require.NoError(t, err)

	require.Len(t, users, 2)
	assert.Equal(t, "testuser2", users[1].Username)
	assert.Equal(t, []recordedRequest{{Method: http.MethodGet, Path: "/api/users"}}, *seen)
}

func TestClient_CreateUserSendsUsername(t *testing.T) {
	c, seen := setupServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, types.User{ID: "3", Username: "newuser"})
	})

	user, err := c.CreateUser(context.Background(), "newuser")
	require.NoError(t, err)

	assert.Equal(t, "3", user.ID)
	require.Len(t, *seen, 1)
	assert.Equal(t, http.MethodPost, (*seen)[0].Method)
	assert.Equal(t, "/api/users", (*seen)[0].Path)
	assert.Equal(t, map[string]any{"username": "newuser"}, (*seen)[0].Body)
}

func TestClient_DeleteUser(t *testing.T) {
	c, seen := setupServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.User{ID: "1"})
	})

	require.NoError(t, c.DeleteUser(context.Background(), "1"))
	assert.Equal(t, []recordedRequest{{Method: http.MethodDelete, Path: "/api/users/1"}}, *seen)
}

func TestClient_DeleteNoteNoContent(t *testing.T) {
	c, _ := setupServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, c.DeleteNote(context.Background(), "1"))
}

func TestClient_ErrorResponse(t *testing.T) {
	c, _ := setupServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": `note "9" not found`})
	})

	_, err := c.GetNote(context.Background(), "9")

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, `note "9" not found`, apiErr.Message)
}

func TestClient_UpdateNoteSendsDate(t *testing.T) {
	c, seen := setupServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.Note{ID: "1", Title: "Renamed"})
	})
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	note, err := c.UpdateNote(context.Background(), "1", types.NoteRequest{Title: "Renamed", Date: &date})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", note.Title)
	require.Len(t, *seen, 1)
	assert.Equal(t, http.MethodPut, (*seen)[0].Method)
	assert.Equal(t, "/api/notes/1", (*seen)[0].Path)
	assert.Equal(t, "Renamed", (*seen)[0].Body["title"])
	assert.Equal(t, "2024-05-01T00:00:00Z", (*seen)[0].Body["date"])
}
