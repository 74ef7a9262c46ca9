// Command migrate applies the embedded schema migrations to the configured
// database.
//
//	migrate up | down | status
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/adaptation-catalog/internal/config"
	"github.com/heartmarshall/adaptation-catalog/migrations"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the catalog schema",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $CONFIG_PATH or ./config.yaml)")
	withProvider := providerRunner(&configPath)

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration",
			Args:  cobra.NoArgs,
			RunE: withProvider(func(ctx context.Context, p *goose.Provider, out io.Writer) error {
				results, err := p.Up(ctx)
				for _, r := range results {
					fmt.Fprintln(out, r)
				}
				return err
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the latest migration",
			Args:  cobra.NoArgs,
			RunE: withProvider(func(ctx context.Context, p *goose.Provider, out io.Writer) error {
				r, err := p.Down(ctx)
				if r != nil {
					fmt.Fprintln(out, r)
				}
				return err
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the state of every migration",
			Args:  cobra.NoArgs,
			RunE: withProvider(func(ctx context.Context, p *goose.Provider, out io.Writer) error {
				statuses, err := p.Status(ctx)
				if err != nil {
					return err
				}
				for _, s := range statuses {
					fmt.Fprintf(out, "%-8s %s\n", s.State, s.Source.Path)
				}
				return nil
			}),
		},
	)
	return root
}

type providerFunc func(ctx context.Context, p *goose.Provider, out io.Writer) error

// providerRunner returns a RunE builder that opens the configured database
// and hands a goose provider to fn.
func providerRunner(configPath *string) func(providerFunc) func(*cobra.Command, []string) error {
	return func(fn providerFunc) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			return runProvider(cmd, *configPath, fn)
		}
	}
}

func runProvider(cmd *cobra.Command, configPath string, fn providerFunc) error {
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}
	return fn(cmd.Context(), provider, cmd.OutOrStdout())
}
