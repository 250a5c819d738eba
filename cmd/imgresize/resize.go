package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srlehn/imgresize/imgproc"
	"github.com/srlehn/imgresize/internal/errors"
	"github.com/srlehn/imgresize/viewstate"
)

var resizeQuietFlag bool

func init() {
	resizeCmd.Flags().BoolVarP(&resizeQuietFlag, `quiet`, `q`, false, `only print the output path`)
	rootCmd.AddCommand(resizeCmd)
}

var resizeCmd = &cobra.Command{
	Use:   resizeCmdStr + ` <image> <w>x<h>`,
	Short: `stretch an image to the given size`,
	Long: `Stretch an image to exactly the given size, the aspect ratio is not kept.

` + resizeUsageStr + `

The result is written as JPEG (quality 100) into the cache directory.
The path of the written file and its details are printed.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		run(resizeFunc(cmd, args))
	},
}

var (
	resizeCmdStr   = "resize"
	resizeUsageStr = `usage: ` + os.Args[0] + ` ` + resizeCmdStr + ` <path or file:// uri> <width>x<height>`
)

func resizeFunc(cmd *cobra.Command, args []string) envFunc {
	return func(e *env) error {
		// invalid input is rejected before the processor sees it
		req, err := viewstate.ParseSize(args[1])
		if err != nil {
			return errors.New(err.Error() + "\n" + resizeUsageStr)
		}
		a, err := e.proc.Resize(imgproc.Reference(args[0]), req)
		if err != nil {
			return err
		}
		if resizeQuietFlag {
			fmt.Println(a.Path)
			return nil
		}
		md, err := e.proc.ReadMetadata(a.Reference())
		if err != nil {
			return err
		}
		fmt.Println(a.Path)
		printDetails(viewstate.FromArtifact(a, md))
		return nil
	}
}
