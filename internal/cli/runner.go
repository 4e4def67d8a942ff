package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/contactform/internal/config"
	"github.com/idilsaglam/contactform/internal/form"
	"github.com/idilsaglam/contactform/internal/logging"
	"github.com/idilsaglam/contactform/internal/model"
	"github.com/idilsaglam/contactform/internal/tui"
	"github.com/idilsaglam/contactform/internal/ui"
)

// Exit codes: 0 ok, 1 error or rejected submission, 2 usage.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errRejected = errors.New("submission rejected")

type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// app carries what the persistent pre-run resolves for every subcommand.
type app struct {
	configPath string
	theme      string
	logFile    string
	verbose    bool

	cfg    config.Config
	log    *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

// Run executes the CLI with args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if a.log != nil {
		_ = a.log.Sync()
	}
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errRejected):
		return exitError
	}
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(stderr, a.themeOrDefault().Fail(err.Error()))
		fmt.Fprintln(stderr, root.UsageString())
		return exitUsage
	}
	fmt.Fprintln(stderr, a.themeOrDefault().Fail(err.Error()))
	return exitError
}

func (a *app) themeOrDefault() ui.Theme {
	if a.cfg.Theme != "" {
		return ui.NewTheme(a.cfg.Theme)
	}
	return ui.NewTheme(a.theme)
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "contactform",
		Short: "contactform - a terminal contact form",
		Long: `contactform collects a first name, last name, email and an optional
message, validates them as you type, and echoes what you submitted.

Run without arguments to open the interactive form.`,
		Args:              noArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: a.runInteractive,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default $HOME/.contactform.yaml)")
	pf.StringVar(&a.theme, "theme", "", "theme: classic, neon or mono")
	pf.StringVar(&a.logFile, "log-file", "", "write JSON logs to this file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(a.submitCmd())
	return root
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageError{fmt.Errorf("unexpected argument %q for %q", args[0], cmd.CommandPath())}
	}
	return nil
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = a.theme
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = a.logFile
	}
	a.cfg = cfg

	a.log, err = logging.New(cfg.Log, a.verbose)
	if err != nil {
		return err
	}
	a.log.Debug("config loaded", zap.String("theme", cfg.Theme), zap.Int("char_limit", cfg.CharLimit))
	return nil
}

func (a *app) runInteractive(*cobra.Command, []string) error {
	t := ui.NewTheme(a.cfg.Theme)
	rec, err := tui.Run(tui.Options{
		Theme:     t,
		CharLimit: a.cfg.CharLimit,
		Logger:    a.log,
		AltScreen: true,
	})
	if err != nil {
		return err
	}
	if rec != nil {
		fmt.Fprintln(a.stdout, tui.SubmittedPanel(t, *rec))
	}
	return nil
}

func (a *app) submitCmd() *cobra.Command {
	var in model.Contact
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Validate and submit the form without the interactive UI",
		Example: `  contactform submit --first-name Johnny --last-name Doe \
      --email address@gmail.com --message "hello"`,
		Args: noArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.submit(in)
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.FirstName, "first-name", "", "first name (at least 5 characters)")
	f.StringVar(&in.LastName, "last-name", "", "last name (required)")
	f.StringVar(&in.Email, "email", "", "email address (required)")
	f.StringVar(&in.Message, "message", "", "optional message")
	return cmd
}

// submit drives the same state holder the interactive form uses.
func (a *app) submit(in model.Contact) error {
	t := ui.NewTheme(a.cfg.Theme)
	s := form.New(form.WithLogger(a.log))
	for _, f := range model.Fields {
		v, err := in.Get(f)
		if err != nil {
			return err
		}
		if err := s.SetField(f, v); err != nil {
			return err
		}
	}

	rec, errs := s.Submit()
	if len(errs) > 0 {
		for _, fe := range errs.Ordered() {
			fmt.Fprintln(a.stderr, t.Fail(fe.Message))
		}
		return errRejected
	}
	fmt.Fprintln(a.stdout, tui.SubmittedPanel(t, *rec))
	fmt.Fprintln(a.stdout, t.OK("submitted"))
	return nil
}

// Main is the entry point used by cmd/contactform.
func Main() int { return Run(os.Args[1:], os.Stdout, os.Stderr) }
