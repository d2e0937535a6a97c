package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/oliverisaac/goli"
	"github.com/oliverisaac/notesboard/client"
	"github.com/oliverisaac/notesboard/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type options struct {
	server  string
	output  string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "notesctl",
		Short:         "Manage notes and users on a notesboard server",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.server, "server", goli.DefaultEnv("NOTESCTL_SERVER", "http://localhost:8080"), "notesboard base URL")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "table", "output format: table, json or yaml")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(newUsersCmd(opts), newNotesCmd(opts))
	return cmd
}

func (o *options) client() *client.Client {
	logrus.Debugf("Using server %s", o.server)
	return client.New(o.server)
}

func printUsers(w io.Writer, format string, users []types.User) error {
	if format == "table" {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tUSERNAME")
		for _, u := range users {
			fmt.Fprintf(tw, "%s\t%s\n", u.ID, u.Username)
		}
		return tw.Flush()
	}
	return printStructured(w, format, users)
}

func printNotes(w io.Writer, format string, notes []types.Note) error {
	if format == "table" {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tDATE")
		for _, n := range notes {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", n.ID, n.Title, n.Author, n.Date.Format("2006-01-02 15:04"))
		}
		return tw.Flush()
	}
	return printStructured(w, format, notes)
}

func printStructured(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "writing json")
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "writing yaml")
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", format)
}
