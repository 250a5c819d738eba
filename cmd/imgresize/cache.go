package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cacheClearFlag bool

func init() {
	cacheCmd.Flags().BoolVar(&cacheClearFlag, `clear`, false, `remove resized images`)
	rootCmd.AddCommand(cacheCmd)
}

var cacheCmd = &cobra.Command{
	Use:   `cache`,
	Short: `list or clear resized images in the cache directory`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func(e *env) error {
			if cacheClearFlag {
				return e.store.Clear()
			}
			paths, err := e.store.List()
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Println(p)
			}
			return nil
		})
	},
}
