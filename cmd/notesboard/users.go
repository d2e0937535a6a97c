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

type UserStore interface {
	ListUsers(ctx context.Context) ([]types.User, error)
	FindUser(ctx context.Context, id string) (types.User, error)
	CreateUser(ctx context.Context, user types.User) (types.User, error)
	DeleteUser(ctx context.Context, id string) (types.User, error)
}

func listUsers(users UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		ret, err := users.ListUsers(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, ret)
	}
}

func getUser(users UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		user, err := users.FindUser(c.Request().Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			return types.NotFound("user", id)
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, user)
	}
}

func createUser(users UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req types.UserRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}

		user, err := users.CreateUser(c.Request().Context(), req.User())
		if errors.Is(err, store.ErrDuplicate) {
			return &types.ConflictError{Message: "username already exists"}
		}
		if err != nil {
			return err
		}
		logrus.Infof("Created user %q", user.Username)
		return c.JSON(http.StatusCreated, user)
	}
}

func deleteUser(users UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		user, err := users.DeleteUser(c.Request().Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			return types.NotFound("user", id)
		}
		if err != nil {
			return err
		}
		logrus.Infof("Deleted user %q", user.Username)
		return c.JSON(http.StatusOK, user)
	}
}
