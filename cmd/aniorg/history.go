package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/aniorg/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded organize outcomes",
	Long: `Show recorded organize outcomes.

Requires history.path to be set in the config file; organize records
every non-dry-run attempt there.

Examples:
  aniorg history
  aniorg history --limit 20
  aniorg history --failed`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Int("limit", 50, "Maximum number of entries to show")
	historyCmd.Flags().Bool("failed", false, "Only show failed attempts")
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	failedOnly, _ := cmd.Flags().GetBool("failed")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.History.Path == "" {
		return fmt.Errorf("history not configured (set history.path in config)")
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	filter := history.Filter{Limit: limit}
	if failedOnly {
		filter.Outcome = history.OutcomeFailed
	}

	entries, err := store.List(filter)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("no history entries")
		return nil
	}

	for _, e := range entries {
		line := fmt.Sprintf("%s  %-6s %-4s %s -> %s",
			e.CreatedAt.Format("2006-01-02 15:04:05"), e.Outcome, e.Mode, e.Source, e.Destination)
		if e.Error != "" {
			line += fmt.Sprintf("  (%s)", e.Error)
		}
		fmt.Println(line)
	}
	return nil
}
