package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-frontend/internal/adapters/tui"
	"github.com/jsamuelsen11/todo-frontend/internal/ports"
)

const tuiCmdName = "tui"

// errListFailed signals a non-zero exit after the error view was printed.
var errListFailed = errors.New("could not list todos")

func newListCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the todo table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view := s.view.Load(cmd.Context())
			fmt.Fprintln(s.out, tui.RenderView(view))
			if view.State == ports.ViewError {
				return errListFailed
			}
			return nil
		},
	}
}

func newAddCmd(s *session) *cobra.Command {
	var title, description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a todo, then print the refreshed table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view, err := s.view.Submit(cmd.Context(), title, description)
			if err != nil {
				return errors.New(view.Notice)
			}
			fmt.Fprintln(s.out, successStyle.Render("✔ added"))
			fmt.Fprintln(s.out, tui.RenderView(view))
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "Todo title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Todo description")
	return cmd
}

func newTUICmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   tuiCmdName,
		Short: "Open the interactive todo screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return tui.Run(cmd.Context(), s.view,
				tui.WithOpTimeout(s.cfg.Client.Timeout*3),
				tui.WithLogger(s.logger),
			)
		},
	}
}
