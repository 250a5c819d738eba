package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/srlehn/imgresize/tui"
)

func init() { rootCmd.AddCommand(tuiCmd) }

var tuiCmd = &cobra.Command{
	Use:   `tui [dir]`,
	Short: `pick an image and resize it interactively`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func(e *env) error {
			dir := ``
			if len(args) > 0 {
				dir = args[0]
			} else if cwd, err := os.Getwd(); err == nil {
				dir = cwd
			}
			return tui.Run(e.proc, dir, tea.WithAltScreen())
		})
	},
}
