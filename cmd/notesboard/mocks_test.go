package main

import (
	"context"

	"github.com/oliverisaac/notesboard/types"
)

type mockStore struct {
	listNotesFunc  func(ctx context.Context) ([]types.Note, error)
	findNoteFunc   func(ctx context.Context, id string) (types.Note, error)
	createNoteFunc func(ctx context.Context, note types.Note) (types.Note, error)
	updateNoteFunc func(ctx context.Context, id string, note types.Note) (types.Note, error)
	deleteNoteFunc func(ctx context.Context, id string) (types.Note, error)

	listUsersFunc  func(ctx context.Context) ([]types.User, error)
	findUserFunc   func(ctx context.Context, id string) (types.User, error)
	createUserFunc func(ctx context.Context, user types.User) (types.User, error)
	deleteUserFunc func(ctx context.Context, id string) (types.User, error)

	pingErr error
	calls   map[string][]string
}

func (m *mockStore) record(name string, arg string) {
	if m.calls == nil {
		m.calls = map[string][]string{}
	}
	m.calls[name] = append(m.calls[name], arg)
}

func (m *mockStore) ListNotes(ctx context.Context) ([]types.Note, error) {
	m.record("ListNotes", "")
	if m.listNotesFunc != nil {
		return m.listNotesFunc(ctx)
	}
	return []types.Note{}, nil
}

func (m *mockStore) FindNote(ctx context.Context, id string) (types.Note, error) {
	m.record("FindNote", id)
	return m.findNoteFunc(ctx, id)
}

func (m *mockStore) CreateNote(ctx context.Context, note types.Note) (types.Note, error) {
	m.record("CreateNote", note.Title)
	return m.createNoteFunc(ctx, note)
}

func (m *mockStore) UpdateNote(ctx context.Context, id string, note types.Note) (types.Note, error) {
	m.record("UpdateNote", id)
	return m.updateNoteFunc(ctx, id, note)
}

func (m *mockStore) DeleteNote(ctx context.Context, id string) (types.Note, error) {
	m.record("DeleteNote", id)
	return m.deleteNoteFunc(ctx, id)
}

func (m *mockStore) ListUsers(ctx context.Context) ([]types.User, error) {
	m.record("ListUsers", "")
	if m.listUsersFunc != nil {
		return m.listUsersFunc(ctx)
	}
	return []types.User{}, nil
}

func (m *mockStore) FindUser(ctx context.Context, id string) (types.User, error) {
	m.record("FindUser", id)
	return m.findUserFunc(ctx, id)
}

func (m *mockStore) CreateUser(ctx context.Context, user types.User) (types.User, error) {
	m.record("CreateUser", user.Username)
	return m.createUserFunc(ctx, user)
}

func (m *mockStore) DeleteUser(ctx context.Context, id string) (types.User, error) {
	m.record("DeleteUser", id)
	return m.deleteUserFunc(ctx, id)
}

func (m *mockStore) Ping(ctx context.Context) error {
	return m.pingErr
}
