package main

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oliverisaac/notesboard/store"
	"github.com/oliverisaac/notesboard/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type NoteLister interface {
	ListNotes(ctx context.Context) ([]types.Note, error)
}

type NoteFinder interface {
	FindNote(ctx context.Context, id string) (types.Note, error)
}

type NoteCreator interface {
	CreateNote(ctx context.Context, note types.Note) (types.Note, error)
}

type NoteUpdater interface {
	UpdateNote(ctx context.Context, id string, note types.Note) (types.Note, error)
}

type NoteDeleter interface {
	DeleteNote(ctx context.Context, id string) (types.Note, error)
}

type NoteStore interface {
	NoteLister
	NoteFinder
	NoteCreator
	NoteUpdater
	NoteDeleter
}

func listNotes(notes NoteLister) echo.HandlerFunc {
	return func(c echo.Context) error {
		ret, err := notes.ListNotes(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, ret)
	}
}

func getNote(notes NoteFinder) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		note, err := notes.FindNote(c.Request().Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			return types.NotFound("note", id)
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, note)
	}
}

func createNote(notes NoteCreator) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req types.NoteRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}

		note, err := notes.CreateNote(c.Request().Context(), req.Note())
		if err != nil {
			return err
		}
		logrus.Infof("Created note %s", note.ID)
		return c.JSON(http.StatusCreated, note)
	}
}

func updateNote(notes NoteUpdater) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		var req types.NoteRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}

		note, err := notes.UpdateNote(c.Request().Context(), id, req.Note())
		if errors.Is(err, store.ErrNotFound) {
			return types.NotFound("note", id)
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, note)
	}
}

func deleteNote(notes NoteDeleter) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		_, err := notes.DeleteNote(c.Request().Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			return types.NotFound("note", id)
		}
		if err != nil {
			return err
		}
		logrus.Infof("Deleted note %s", id)
		return c.NoContent(http.StatusNoContent)
	}
}
