package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/youqu117/Bookkeeping/internal/assistant"
	"github.com/youqu117/Bookkeeping/internal/config"
	"github.com/youqu117/Bookkeeping/internal/logger"
	"github.com/youqu117/Bookkeeping/internal/seed"
)

var (
	configPath string
	seedPath   string
)

var rootCmd = &cobra.Command{
	Use:   "assistant-cli [input...]",
	Short: "Send one bookkeeping request to the AI assistant",
	Long: `assistant-cli sends a single free-text input (e.g. "Lunch 20") to the
assistant together with the tags, accounts, and recent transactions from a
seed JSON file, and prints the classified response as JSON.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (optional)")
	rootCmd.Flags().StringVarP(&seedPath, "seed", "s", "", "Path to seed JSON file with tags, accounts, and transactions")
}

func run(cmd *cobra.Command, args []string) error {
	log := logger.New()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if seedPath == "" {
		seedPath = cfg.SeedFile
	}

	appCtx := assistant.Context{}
	if seedPath != "" {
		data, err := seed.Load(seedPath)
		if err != nil {
			return err
		}
		appCtx.Tags = data.Tags
		appCtx.Accounts = data.Accounts
		appCtx.Recent = data.Transactions
	}

	a := assistant.New(assistant.GeminiGenerator{}, cfg.Model, log)
	input := strings.Join(args, " ")

	resp := a.Process(context.Background(), cfg.APIKey, input, appCtx)

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
