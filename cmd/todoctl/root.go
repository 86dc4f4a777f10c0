package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-frontend/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/todo-frontend/internal/app"
	"github.com/jsamuelsen11/todo-frontend/internal/platform/config"
	"github.com/jsamuelsen11/todo-frontend/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-frontend/internal/platform/logging"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	profile   string
	configDir string
	baseURL   string
	logLevel  string
	logFile   string
}

// session is what a subcommand needs once flags are parsed.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	view   *app.ViewController
	out    io.Writer
	errOut io.Writer

	closeLog func() error
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	flags := &globalFlags{}
	s := &session{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "todoctl",
		Short:         "List and add todos on the todo service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			return s.open(flags, cmd.Name() == tuiCmdName)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return s.close()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.profile, "profile", "p", "local", "Config profile ({config-dir}/{profile}.yaml)")
	pf.StringVar(&flags.configDir, "config-dir", "configs", "Directory holding base.yaml and profile files")
	pf.StringVar(&flags.baseURL, "base-url", "", "Todo service base URL (overrides client.base_url)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (overrides log.level)")
	pf.StringVar(&flags.logFile, "log-file", "", "Write logs to this file instead of stderr")

	root.AddCommand(newListCmd(s), newAddCmd(s), newTUICmd(s))
	return root
}

// open loads config and wires the client and controller. Interactive mode
// never logs to the terminal it draws on.
func (s *session) open(flags *globalFlags, interactive bool) error {
	overrides := map[string]any{}
	if flags.baseURL != "" {
		overrides["client.base_url"] = flags.baseURL
	}
	if flags.logLevel != "" {
		overrides["log.level"] = flags.logLevel
	}

	cfg, err := config.Load(flags.profile,
		config.WithConfigDir(flags.configDir),
		config.WithOverrides(overrides),
	)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	s.cfg = cfg

	logOut := s.errOut
	s.closeLog = func() error { return nil }
	switch {
	case flags.logFile != "":
		f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		logOut, s.closeLog = f, f.Close
	case interactive:
		logOut = io.Discard
	}
	s.logger = logging.New(cfg.Log.Level, cfg.Log.Format, logOut)

	client := httpclient.New(&cfg.Client, "todo-api", nil, s.logger)
	todos := acl.NewTodoClient(client, cfg.Client.CollectionPath, s.logger)
	s.view = app.NewViewController(todos, nil, s.logger)
	return nil
}

func (s *session) close() error {
	if s.closeLog == nil {
		return nil
	}
	return s.closeLog()
}
