package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gitfeed/gitfeed/internal/config"
	"github.com/gitfeed/gitfeed/internal/emoji"
	"github.com/gitfeed/gitfeed/internal/feed"
	"github.com/gitfeed/gitfeed/internal/gitlog"
	"github.com/gitfeed/gitfeed/internal/ui"

	"github.com/spf13/cobra"
)

var count int

func main() {
	rootCmd := &cobra.Command{
		Use:   "gitfeed",
		Short: "Show recent git activity with conventional-commit emoji ✨",
		RunE:  run,
	}

	rootCmd.Flags().IntVarP(&count, "count", "n", 5, "Number of commits to show")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	n := count
	if !cmd.Flags().Changed("count") {
		n = cfg.Feed.Count
	}
	if n <= 0 {
		return fmt.Errorf("count must be positive, got %d", n)
	}

	resolver := emoji.NewResolver(emoji.Shortcodes{}, cfg.Emoji.Extra)
	styles := ui.DefaultStyles()
	formatter := feed.NewFormatter(resolver, styles, func(url, text string) string {
		return styles.Hash.Render(ui.Hyperlink(url, text))
	})

	commits := gitlog.RecentCommits(n, cfg.Feed.Remote)
	return formatter.Render(os.Stdout, commits, time.Now())
}
