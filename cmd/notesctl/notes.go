package main

import (
	"fmt"
	"time"

	"github.com/oliverisaac/notesboard/types"
	"github.com/spf13/cobra"
)

func newNotesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Work with notes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := opts.client().ListNotes(cmd.Context())
			if err != nil {
				return err
			}
			return printNotes(cmd.OutOrStdout(), opts.output, notes)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, err := opts.client().GetNote(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if opts.output == "table" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\nby %s on %s\n\n%s\n", note.Title, note.Author, note.Date.Format("2006-01-02 15:04"), note.Content)
				return nil
			}
			return printStructured(cmd.OutOrStdout(), opts.output, note)
		},
	})

	addFlags := &noteFlags{}
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := addFlags.request()
			if err != nil {
				return err
			}
			note, err := opts.client().CreateNote(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created note %s\n", note.ID)
			return nil
		},
	}
	addFlags.register(add)
	cmd.AddCommand(add)

	updateFlags := &noteFlags{}
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a note's title, content, author and date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := updateFlags.request()
			if err != nil {
				return err
			}
			note, err := opts.client().UpdateNote(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated note %s\n", note.ID)
			return nil
		},
	}
	updateFlags.register(update)
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.client().DeleteNote(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted note %s\n", args[0])
			return nil
		},
	})

	return cmd
}

type noteFlags struct {
	title   string
	content string
	author  string
	date    string
}

func (f *noteFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "note title")
	cmd.Flags().StringVar(&f.content, "content", "", "note content")
	cmd.Flags().StringVar(&f.author, "author", "", "note author")
	cmd.Flags().StringVar(&f.date, "date", "", "note date, RFC 3339 or YYYY-MM-DD (defaults to now)")
	_ = cmd.MarkFlagRequired("title")
}

func (f *noteFlags) request() (types.NoteRequest, error) {
	req := types.NoteRequest{
		Title:   f.title,
		Content: f.content,
		Author:  f.author,
	}
	if f.date == "" {
		return req, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if d, err := time.Parse(layout, f.date); err == nil {
			req.Date = &d
			return req, nil
		}
	}
	return req, fmt.Errorf("invalid --date %q: use RFC 3339 or YYYY-MM-DD", f.date)
}
