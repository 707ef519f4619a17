package main

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/agora-events/agora/internal/app"
	"github.com/agora-events/agora/internal/config"
	"github.com/agora-events/agora/internal/database"
	"github.com/agora-events/agora/internal/logging"
	"github.com/agora-events/agora/internal/services/auth"
	"github.com/agora-events/agora/internal/tui"
	"github.com/agora-events/agora/internal/tui/components"
	"github.com/agora-events/agora/internal/version"
)

var categoryFilter int

var rootCmd = &cobra.Command{
	Use:   "agora",
	Short: "Browse events and register for tickets from your terminal",
	Long: `Agora is a terminal client for an events listing and
registration service.

Sign in with your email, browse events by category, register for a
ticket tier and manage your registrations.

If no command is specified, the interactive TUI launches.`,
	Version: version.Version,
	RunE:    runTUI,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	eventsCmd.Flags().IntVar(&categoryFilter, "category", 0, "Filter by category ID (0 = all)")

	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup initializes logging, config, the database and the service
// container shared by every command
func setup(ctx context.Context) (*app.App, *config.Config, func(), error) {
	if err := logging.Init(); err != nil {
		return nil, nil, nil, fmt.Errorf("init logging: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	db, err := database.InitDB(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init database: %w", err)
	}

	salt, err := auth.LoadOrCreateSalt()
	if err != nil {
		_ = db.Close()
		return nil, nil, nil, fmt.Errorf("load auth salt: %w", err)
	}

	application := app.New(database.NewRepository(db), salt)
	cleanup := func() {
		_ = application.Close()
		_ = db.Close()
	}
	return application, cfg, cleanup, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	application, cfg, cleanup, err := setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	model := tui.InitialModel(ctx, application, cfg)
	program := tea.NewProgram(model)
	if _, err := program.Run(); err != nil {
		slog.Error("program exited with error", "error", err)
		return err
	}
	return nil
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List events without entering the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		application, cfg, cleanup, err := setup(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		components.InitStyles(cfg.ColorScheme)

		events, err := application.EventService.ListEvents(ctx, categoryFilter)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println("No events found.")
			return nil
		}

		for _, summary := range events {
			fmt.Printf("%-36s  %-24s  %-16s  %s\n",
				summary.ID,
				summary.Title,
				summary.StartsAt.Format("2006-01-02 15:04"),
				components.FormatPrice(summary.FromCents, summary.Free),
			)
		}
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List event categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		application, _, cleanup, err := setup(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		categories, err := application.EventService.ListCategories(ctx)
		if err != nil {
			return err
		}
		for _, category := range categories {
			fmt.Printf("%3d  %s\n", category.ID, category.Name)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("agora %s\n", version.Full())
	},
}
