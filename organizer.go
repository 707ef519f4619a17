package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/agora-events/agora/internal/services/event"
)

// eventDefinition is the YAML shape accepted by 'agora events create'
type eventDefinition struct {
	Title          string    `yaml:"title"`
	Description    string    `yaml:"description"`
	Organizer      string    `yaml:"organizer"`
	Venue          string    `yaml:"venue"`
	StartsAt       time.Time `yaml:"starts_at"`
	CategoryID     int       `yaml:"category_id"`
	MaxSupply      int       `yaml:"max_supply"`
	PlatformFeeBps int       `yaml:"platform_fee_bps"`
	Tiers          []struct {
		Name       string `yaml:"name"`
		PriceCents int64  `yaml:"price_cents"`
		TierLimit  int    `yaml:"tier_limit"`
		Refundable bool   `yaml:"refundable"`
	} `yaml:"tiers"`
}

var (
	eventFile       string
	cancelOrganizer string
)

func init() {
	createEventCmd.Flags().StringVar(&eventFile, "file", "", "YAML event definition (required)")
	_ = createEventCmd.MarkFlagRequired("file")

	cancelEventCmd.Flags().StringVar(&cancelOrganizer, "organizer", "", "Organizer email (required)")
	_ = cancelEventCmd.MarkFlagRequired("organizer")

	eventsCmd.AddCommand(createEventCmd)
	eventsCmd.AddCommand(cancelEventCmd)
}

var createEventCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an event from a YAML definition",
	Example: `  agora events create --file event.yaml

  # event.yaml
  title: Synthwave Night
  organizer: org@example.com
  venue: Warehouse 9
  starts_at: 2026-09-12T20:00:00Z
  category_id: 1
  tiers:
    - name: General
      price_cents: 2500
      refundable: true`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(eventFile)
		if err != nil {
			return fmt.Errorf("read event file: %w", err)
		}

		var definition eventDefinition
		if err := yaml.Unmarshal(data, &definition); err != nil {
			return fmt.Errorf("parse event file: %w", err)
		}

		req := event.CreateEventRequest{
			Title:          definition.Title,
			Description:    definition.Description,
			Organizer:      definition.Organizer,
			Venue:          definition.Venue,
			StartsAt:       definition.StartsAt,
			CategoryID:     definition.CategoryID,
			MaxSupply:      definition.MaxSupply,
			PlatformFeeBps: definition.PlatformFeeBps,
		}
		for _, tier := range definition.Tiers {
			req.Tiers = append(req.Tiers, event.TierRequest{
				Name:       tier.Name,
				PriceCents: tier.PriceCents,
				TierLimit:  tier.TierLimit,
				Refundable: tier.Refundable,
			})
		}

		ctx := cmd.Context()
		application, _, cleanup, err := setup(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		created, err := application.EventService.CreateEvent(ctx, req)
		if err != nil {
			return err
		}
		fmt.Printf("Created event %s (%s)\n", created.ID, created.Title)
		return nil
	},
}

var cancelEventCmd = &cobra.Command{
	Use:   "cancel <event-id>",
	Short: "Cancel an event you organize",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		application, _, cleanup, err := setup(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := application.EventService.CancelEvent(ctx, args[0], cancelOrganizer); err != nil {
			return err
		}
		fmt.Println("Event cancelled.")
		return nil
	},
}
