// Package main is the entry point for Treasure Hunter.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/samdwyer/treasurehunter/internal/game"
	"github.com/samdwyer/treasurehunter/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	var (
		name string
		mode string
		seed int64
	)

	cmd := &cobra.Command{
		Use:           "treasurehunter",
		Short:         "Travel from town to town hunting for treasure",
		Long:          "Treasure Hunter is a turn-based terminal game: trade, brawl and dig your way to the crown, the gem and the trophy before your gold runs out.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := game.LoadConfig()
			if err != nil {
				return err
			}

			// Flags win over the environment.
			flags := cmd.Flags()
			if flags.Changed("name") {
				cfg.HunterName = name
			}
			if flags.Changed("mode") {
				cfg.Mode = mode
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}

			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "hunter name (asked for when empty)")
	cmd.Flags().StringVarP(&mode, "mode", "m", "normal", "game mode: hard, normal, easy, samurai or test")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for a reproducible hunt (0 picks one)")
	return cmd
}

func run(ctx context.Context, cfg game.Config) error {
	if telemetry.Enabled() {
		telemetry.ConfigureHoneycomb()
		shutdown, err := telemetry.Setup(ctx, cfg.Mode)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	g, err := game.New(cfg)
	if err != nil {
		return err
	}
	return g.Run(ctx)
}
