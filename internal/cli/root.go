package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fakegdate/internal/config"
	"fakegdate/internal/logging"
)

// App holds shared CLI state.
type App struct {
	Clock  clockwork.Clock
	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger
}

// Execute runs the CLI entrypoint and exits the process.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	if cfg.EnvFile != "" {
		logger.Debug("loaded env file", zap.String("path", cfg.EnvFile))
	}

	app := &App{
		Clock:  clockwork.NewRealClock(),
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}
	return app.Run(args)
}

// Run executes one invocation and returns the process exit status.
// Failures print a single line to Stderr and nothing to Stdout.
func (a *App) Run(args []string) int {
	if a.Logger == nil {
		a.Logger = zap.NewNop()
	}
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}

	if err := a.execute(args); err != nil {
		a.Logger.Debug("invocation failed", zap.Strings("args", args), zap.Error(err))
		fmt.Fprintln(a.Stderr, err)
		return 1
	}
	return 0
}

func newRootCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "fakegdate [-d today|yesterday] [+%d/%b/%Y]",
		Short: "Print today's or yesterday's date like gdate",
		Long: "fakegdate supports the subset of GNU date used by report scripts: " +
			"-d today, -d yesterday and the +%d/%b/%Y format, rendered with fixed English month names.",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(_ *cobra.Command, args []string) error {
			return app.printDate(args)
		},
	}
}

func (a *App) execute(args []string) error {
	// cobra routes a leading completion request to its hidden __complete
	// command before RunE, so those go through the grammar directly.
	if len(args) > 0 && isCompletionRequest(args[0]) {
		return a.printDate(args)
	}

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(a.Stdout)
	cmd.SetErr(a.Stderr)
	return cmd.Execute()
}

func isCompletionRequest(arg string) bool {
	return arg == cobra.ShellCompRequestCmd || arg == cobra.ShellCompNoDescRequestCmd
}
