package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zjrosen/vimline/internal/config"
	"github.com/zjrosen/vimline/internal/history"
	"github.com/zjrosen/vimline/internal/infrastructure/sqlite"
)

var (
	historyPrompt string
	historyLimit  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded submissions",
	Long:  `List submissions recorded by the editor, newest first. Filter to one prompt with --prompt.`,
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded submissions",
	RunE:  runHistoryClear,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyClearCmd)

	historyCmd.Flags().StringVar(&historyPrompt, "prompt", "", "only show entries for this prompt")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of entries to show")
}

func openHistoryRepo() (history.Repository, func(), error) {
	dbPath := cfg.History.Path
	if dbPath == "" {
		dbPath = config.DefaultHistoryPath()
	}

	db, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening history database: %w", err)
	}
	return sqlite.NewHistoryRepository(db), func() { _ = db.Close() }, nil
}

func runHistoryList(_ *cobra.Command, _ []string) error {
	repo, closeDB, err := openHistoryRepo()
	if err != nil {
		return err
	}
	defer closeDB()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entries, err := repo.Recent(ctx, historyPrompt, historyLimit)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("no history entries")
		return nil
	}

	for _, entry := range entries {
		fmt.Fprintf(os.Stdout, "%s  %-8s  %s\n",
			entry.SubmittedAt.Local().Format("2006-01-02 15:04:05"),
			entry.Prompt,
			entry.Value)
	}
	return nil
}

func runHistoryClear(_ *cobra.Command, _ []string) error {
	repo, closeDB, err := openHistoryRepo()
	if err != nil {
		return err
	}
	defer closeDB()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := repo.Clear(ctx); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}

	fmt.Println("history cleared")
	return nil
}
