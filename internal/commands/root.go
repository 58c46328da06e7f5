package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/core/services"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/SscSPs/ledger_core/internal/platform/config"
	"github.com/SscSPs/ledger_core/internal/repositories/database/pgsql"
	"github.com/SscSPs/ledger_core/internal/utils/format"
	"github.com/SscSPs/ledger_core/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags "-X".
var Version = "dev"

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	workplaceID string
	userID      string
	verbose     bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "ledgerctl",
		Short:   "Operate the ledger core from the command line",
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.workplaceID, "workplace", "", "workplace the command acts on")
	rootCmd.PersistentFlags().StringVar(&opts.userID, "user", "ledgerctl", "user recorded in audit fields")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(
		newMigrateCommand(opts),
		newSeedChartCommand(opts),
		newImportChartCommand(opts),
		newImportStatementCommand(opts),
		newSummaryCommand(opts),
		newRebuildBalancesCommand(opts),
		newTokenCommand(opts),
	)

	return rootCmd
}

// requireWorkplace fails commands that need --workplace when it is missing.
func (o *globalOptions) requireWorkplace() error {
	if o.workplaceID == "" {
		return fmt.Errorf("--workplace is required")
	}
	return nil
}

// newLogger writes text logs to stderr so stdout stays clean for command output.
func (o *globalOptions) newLogger() *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// app is the wiring a database-backed command runs against.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	pool      *pgxpool.Pool
	services  *portssvc.ServiceContainer
	formatter format.Formatter
}

// openApp loads configuration and connects to the database. The returned
// context carries the logger the services read.
func openApp(ctx context.Context, opts *globalOptions) (context.Context, *app, error) {
	logger := opts.newLogger()
	cfg, err := config.LoadConfig()
	if err != nil {
		return ctx, nil, fmt.Errorf("loading config: %w", err)
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return ctx, nil, fmt.Errorf("connecting to database: %w", err)
	}

	repos := pgsql.NewRepositoryProvider(pool)
	a := &app{
		cfg:       cfg,
		logger:    logger,
		pool:      pool,
		services:  services.NewServiceContainer(cfg, repos),
		formatter: format.New(cfg.DisplayDecimalPlaces, cfg.DisplayDateFormat),
	}
	ctx = middleware.WithLogger(ctx, logger.With(slog.String("workplace_id", opts.workplaceID)))
	return ctx, a, nil
}

func (a *app) Close() {
	database.ClosePgxPool(a.pool)
}
