package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/oliverisaac/notesboard/views"
	"github.com/spf13/cobra"
)

func newUsersCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Interactively list, create and delete users",
		Long: `Runs the user list in an interactive shell.

Commands:
  save <username>   create a user and reload the list
  del <n|id>        delete a user after confirmation
  refresh           reload the list
  quit              leave the shell`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsersShell(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts.client())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := opts.client().ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			return printUsers(cmd.OutOrStdout(), opts.output, users)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <username>",
		Short: "Create a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := opts.client().CreateUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s)\n", user.Username, user.ID)
			return nil
		},
	})

	var yes bool
	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewReader(cmd.InOrStdin())
			if !yes && !promptConfirm(in, cmd.OutOrStdout(), views.DeleteConfirmation) {
				return nil
			}
			if err := opts.client().DeleteUser(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted user %s\n", args[0])
			return nil
		},
	}
	rm.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")
	cmd.AddCommand(rm)

	return cmd
}

func promptConfirm(in *bufio.Reader, out io.Writer, message string) bool {
	fmt.Fprintf(out, "%s [y/N] ", message)
	line, _ := in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// runUsersShell drives the CreateUser component from line-oriented input.
func runUsersShell(ctx context.Context, r io.Reader, out io.Writer, api views.UsersAPI) error {
	in := bufio.NewReader(r)
	component := views.NewCreateUser(api, views.ConfirmFunc(func(message string) bool {
		return promptConfirm(in, out, message)
	}))

	if err := component.Mount(ctx); err != nil {
		return err
	}

	for {
		if err := component.Render(out); err != nil {
			return err
		}
		fmt.Fprint(out, "> ")

		line, readErr := in.ReadString('\n')
		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		arg = strings.TrimSpace(arg)

		var err error
		switch cmd {
		case "":
		case "save":
			component.SetInput(arg)
			err = component.Submit(ctx)
		case "del":
			id, ok := resolveUser(component, arg)
			if !ok {
				fmt.Fprintf(out, "no user %q\n", arg)
				break
			}
			err = component.DoubleClick(ctx, id)
		case "refresh":
			err = component.Mount(ctx)
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(out, "unknown command %q\n", cmd)
		}
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}

		if readErr != nil {
			return nil
		}
	}
}

// resolveUser accepts either a list position or a user id.
func resolveUser(c *views.CreateUser, arg string) (string, bool) {
	if i, err := strconv.Atoi(arg); err == nil && i >= 0 && i < len(c.Users) {
		return c.Users[i].ID, true
	}
	for _, u := range c.Users {
		if u.ID == arg {
			return u.ID, true
		}
	}
	return "", false
}
