// Package views holds the user-facing components of notesboard.
package views

import (
	"context"
	"io"
	"text/template"

	"github.com/oliverisaac/notesboard/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DeleteConfirmation is the question asked before a user is deleted.
const DeleteConfirmation = "are you sure you want to delete it?"

type UsersAPI interface {
	ListUsers(ctx context.Context) ([]types.User, error)
	CreateUser(ctx context.Context, username string) (types.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type Confirmer interface {
	Confirm(message string) bool
}

// ConfirmFunc adapts a plain function to Confirmer.
type ConfirmFunc func(message string) bool

func (f ConfirmFunc) Confirm(message string) bool { return f(message) }

type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateSubmitting
	StateConfirmingDelete
	StateDeleting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateSubmitting:
		return "submitting"
	case StateConfirmingDelete:
		return "confirming-delete"
	case StateDeleting:
		return "deleting"
	}
	return "unknown"
}

// CreateUser lists users, creates new ones from Input and deletes them after
// confirmation. The list is always reloaded from the API after a mutation.
type CreateUser struct {
	Input string
	Users []types.User

	api     UsersAPI
	confirm Confirmer
	state   State
}

func NewCreateUser(api UsersAPI, confirm Confirmer) *CreateUser {
	return &CreateUser{api: api, confirm: confirm}
}

func (c *CreateUser) State() State { return c.state }

func (c *CreateUser) Mount(ctx context.Context) error {
	c.state = StateLoading
	return c.refresh(ctx)
}

func (c *CreateUser) SetInput(value string) {
	c.Input = value
}

func (c *CreateUser) Submit(ctx context.Context) error {
	c.state = StateSubmitting
	username := c.Input
	if _, err := c.api.CreateUser(ctx, username); err != nil {
		c.state = StateLoaded
		return errors.Wrapf(err, "creating user %q", username)
	}
	c.Input = ""
	return c.refresh(ctx)
}

// DoubleClick asks for confirmation and deletes the user with the given id.
func (c *CreateUser) DoubleClick(ctx context.Context, id string) error {
	c.state = StateConfirmingDelete
	if !c.confirm.Confirm(DeleteConfirmation) {
		logrus.Debugf("Delete of user %s not confirmed", id)
		c.state = StateLoaded
		return nil
	}

	c.state = StateDeleting
	if err := c.api.DeleteUser(ctx, id); err != nil {
		c.state = StateLoaded
		return errors.Wrapf(err, "deleting user %s", id)
	}
	return c.refresh(ctx)
}

func (c *CreateUser) refresh(ctx context.Context) error {
	users, err := c.api.ListUsers(ctx)
	if err != nil {
		return errors.Wrap(err, "loading users")
	}
	c.Users = users
	c.state = StateLoaded
	return nil
}

var createUserTemplate = template.Must(template.New("create-user").Parse(
	`Create New User
[{{ .Input }}] Save
{{ range $i, $u := .Users }}{{ $i }}) {{ $u.Username }}
{{ else }}(no users)
{{ end }}`))

func (c *CreateUser) Render(w io.Writer) error {
	return createUserTemplate.Execute(w, c)
}
