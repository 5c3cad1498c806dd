// Package cli implements drawerctl, the back-office command line for the shift engine.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	portssvc "github.com/SscSPs/pos_shift_app/internal/core/ports/services"
	"github.com/SscSPs/pos_shift_app/internal/core/services"
	"github.com/SscSPs/pos_shift_app/internal/middleware"
	"github.com/SscSPs/pos_shift_app/internal/platform/config"
	"github.com/SscSPs/pos_shift_app/internal/platform/storage"
)

// cliActor is recorded as creator of rows written from the command line.
const cliActor = "drawerctl"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// LoadConfig and OpenStore default to the environment-driven server setup.
	LoadConfig func() (*config.Config, error)
	OpenStore  func(ctx context.Context, cfg *config.Config, migrate bool) (*storage.Store, error)
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for drawerctl.
func NewRootCommand(opts *RootOptions) *cobra.Command {
	if opts == nil {
		opts = &RootOptions{}
	}
	if opts.LoadConfig == nil {
		opts.LoadConfig = config.LoadConfig
	}
	if opts.OpenStore == nil {
		opts.OpenStore = storage.Open
	}

	cmd := &cobra.Command{
		Use:   "drawerctl",
		Short: "Back-office tooling for cash-drawer shifts",
		Long:  "Inspect, reconcile and print shifts, manage operators and check storage integrity.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewOperatorCommand(opts))
	cmd.AddCommand(NewSummaryCommand(opts))
	cmd.AddCommand(NewReportCommand(opts))
	cmd.AddCommand(NewIntegrityCommand(opts))

	return cmd
}

// env is what a command needs once configuration and storage are up.
type env struct {
	ctx      context.Context
	cfg      *config.Config
	store    *storage.Store
	services *portssvc.ServiceContainer
}

// setup loads config, opens storage and wires the services. Callers must close the store.
func (o *RootOptions) setup(cmd *cobra.Command, migrate bool) (*env, error) {
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	ctx := middleware.WithLogger(cmd.Context(), logger)

	cfg, err := o.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	store, err := o.OpenStore(ctx, cfg, migrate)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return &env{
		ctx:      ctx,
		cfg:      cfg,
		store:    store,
		services: services.NewServiceContainer(cfg, store.Repos),
	}, nil
}
