package main

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/oliverisaac/notesboard/store"
	"github.com/oliverisaac/notesboard/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsers_ReturnsAllUsers(t *testing.T) {
	mockUsers := []types.User{
		{ID: "1", Username: "user1"},
		{ID: "2", Username: "user2"},
	}
	m := &mockStore{listUsersFunc: func(ctx context.Context) ([]types.User, error) {
		return mockUsers, nil
	}}
	c, rec := newTestContext(http.MethodGet, "/api/users", "")

	require.NoError(t, listUsers(m)(c))

	assert.Len(t, m.calls["ListUsers"], 1)
	var got []types.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "user1", got[0].Username)
	assert.Equal(t, "user2", got[1].Username)
}

func TestListUsers_ForwardsStoreError(t *testing.T) {
	dbErr := errors.New("Database error")
	m := &mockStore{listUsersFunc: func(ctx context.Context) ([]types.User, error) {
		return nil, dbErr
	}}
	c, rec := newTestContext(http.MethodGet, "/api/users", "")

	err := listUsers(m)(c)

	assert.Len(t, m.calls["ListUsers"], 1)
	assert.Same(t, dbErr, err)
	assert.Zero(t, rec.Body.Len())
}

func TestCreateUser(t *testing.T) {
	m := &mockStore{createUserFunc: func(ctx context.Context, user types.User) (types.User, error) {
		user.ID = "3"
		return user, nil
	}}
	c, rec := newTestContext(http.MethodPost, "/api/users", `{"username":"newuser"}`)

	require.NoError(t, createUser(m)(c))

	assert.Equal(t, []string{"newuser"}, m.calls["CreateUser"])
	assert.Equal(t, http.StatusCreated, rec.Code)
	var got types.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "3", got.ID)
}

func TestCreateUser_Duplicate(t *testing.T) {
	m := &mockStore{createUserFunc: func(ctx context.Context, user types.User) (types.User, error) {
		return types.User{}, errors.Wrap(store.ErrDuplicate, "user")
	}}
	c, _ := newTestContext(http.MethodPost, "/api/users", `{"username":"newuser"}`)

	err := createUser(m)(c)

	var statusErr types.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusConflict, statusErr.Status())
}

func TestCreateUser_RequiresUsername(t *testing.T) {
	m := &mockStore{}
	c, _ := newTestContext(http.MethodPost, "/api/users", `{"username":""}`)

	err := createUser(m)(c)

	var statusErr types.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.Status())
	assert.Empty(t, m.calls["CreateUser"])
}

func TestCreateUser_RejectsBlankUsername(t *testing.T) {
	for _, body := range []string{`{"username":"   "}`, `{"username":"\t"}`} {
		m := &mockStore{}
		c, _ := newTestContext(http.MethodPost, "/api/users", body)

		err := createUser(m)(c)

		var statusErr types.StatusError
		require.ErrorAs(t, err, &statusErr, body)
		assert.Equal(t, http.StatusBadRequest, statusErr.Status(), body)
		assert.Empty(t, m.calls["CreateUser"], body)
	}
}

func TestCreateUser_TrimsUsername(t *testing.T) {
	m := &mockStore{createUserFunc: func(ctx context.Context, user types.User) (types.User, error) {
		user.ID = "3"
		return user, nil
	}}
	c, _ := newTestContext(http.MethodPost, "/api/users", `{"username":"  newuser "}`)

	require.NoError(t, createUser(m)(c))
	assert.Equal(t, []string{"newuser"}, m.calls["CreateUser"])
}

func TestDeleteUser(t *testing.T) {
	m := &mockStore{deleteUserFunc: func(ctx context.Context, id string) (types.User, error) {
		return types.User{ID: id, Username: "testuser1"}, nil
	}}
	c, rec := newTestContext(http.MethodDelete, "/api/users/1", "", "id", "1")

	require.NoError(t, deleteUser(m)(c))

	assert.Equal(t, []string{"1"}, m.calls["DeleteUser"])
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteUser_NotFound(t *testing.T) {
	m := &mockStore{deleteUserFunc: func(ctx context.Context, id string) (types.User, error) {
		return types.User{}, store.ErrNotFound
	}}
	c, _ := newTestContext(http.MethodDelete, "/api/users/9", "", "id", "9")

	err := deleteUser(m)(c)

	var statusErr types.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Status())
}

func TestGetUser_NotFound(t *testing.T) {
	m := &mockStore{findUserFunc: func(ctx context.Context, id string) (types.User, error) {
		return types.User{}, store.ErrNotFound
	}}
	c, _ := newTestContext(http.MethodGet, "/api/users/9", "", "id", "9")

	var statusErr types.StatusError
	require.ErrorAs(t, getUser(m)(c), &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Status())
}
