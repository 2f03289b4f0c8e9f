package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows the levels in the configured playlist, in menu order, followed by
any other level files found.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	playlist, err := loadLevels(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Playlist:")
	fmt.Fprintln(out)
	printLevels(cmd, playlist)

	// Levels on disk that are not in the playlist
	listed := make(map[string]bool, len(playlist))
	for _, l := range playlist {
		listed[l.ID] = true
	}
	var extra []levels.Level
	for _, loader := range levelLoaders() {
		all, err := loader.LoadAll()
		if err != nil {
			return err
		}
		for _, l := range all {
			if !listed[l.ID] {
				listed[l.ID] = true
				extra = append(extra, l)
			}
		}
	}
	if len(extra) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Not in playlist:")
		fmt.Fprintln(out)
		printLevels(cmd, extra)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'breakout play --level <id>' to start on a level.")
	return nil
}

func printLevels(cmd *cobra.Command, lvls []levels.Level) {
	out := cmd.OutOrStdout()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxNameLen := 4
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Fprintf(out, "  %-*s  %-*s  %5s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Size", "Bricks")
	fmt.Fprintf(out, "  %-*s  %-*s  %5s  %s\n", maxIDLen, "--", maxNameLen, "----", "----", "------")
	for _, l := range lvls {
		size := fmt.Sprintf("%dx%d", l.Cols(), l.Rows())
		fmt.Fprintf(out, "  %-*s  %-*s  %5s  %d\n", maxIDLen, l.ID, maxNameLen, l.Name, size, l.CountBreakable())
	}
}
