package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all variants",
	Long:  `Shows every registered Breakout variant and how it is controlled.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	games := registry.List()
	out := cmd.OutOrStdout()

	if len(games) == 0 {
		fmt.Fprintln(out, "No variants available.")
		return
	}

	fmt.Fprintln(out, "Available variants:")
	fmt.Fprintln(out)

	idLen, titleLen := len("ID"), len("Title")
	for _, g := range games {
		idLen = max(idLen, len(g.ID))
		titleLen = max(titleLen, len(g.Title))
	}

	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", idLen, "ID", titleLen, "Title", "Controls")
	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", idLen, "--", titleLen, "-----", "--------")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %-*s  %s\n", idLen, g.ID, titleLen, g.Title, g.Controls)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'breakout play <id>' to play a variant.")
}
