package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srlehn/imgresize/resize/rall"
)

func init() { rootCmd.AddCommand(resamplersCmd) }

var resamplersCmd = &cobra.Command{
	Use:   `resamplers`,
	Short: `list resamplers for --resampler`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range rall.Names() {
			if name == rall.DefaultName {
				fmt.Println(name + ` (default)`)
				continue
			}
			fmt.Println(name)
		}
	},
}
