package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srlehn/imgresize/imgproc"
	"github.com/srlehn/imgresize/viewstate"
)

var (
	infoPlainFlag   bool
	infoPreviewFlag bool
)

func init() {
	infoCmd.Flags().BoolVarP(&infoPlainFlag, `plain`, `p`, false, `single undecorated line`)
	infoCmd.Flags().BoolVarP(&infoPreviewFlag, `preview`, `v`, false, `draw the image with half blocks`)
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   infoCmdStr + ` <image>`,
	Short: `print resolution, size and name of an image`,
	Long: `Print resolution, size and name of an image.

` + infoUsageStr,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(infoFunc(cmd, args))
	},
}

var (
	infoCmdStr   = "info"
	infoUsageStr = `usage: ` + os.Args[0] + ` ` + infoCmdStr + ` <path or file:// uri>`
)

func infoFunc(cmd *cobra.Command, args []string) envFunc {
	return func(e *env) error {
		ref := imgproc.Reference(args[0])
		img, md, err := e.proc.ReadImage(ref)
		if err != nil {
			return err
		}
		d := viewstate.FromMetadata(ref, md)
		if infoPreviewFlag {
			d = d.WithPreview(img)
		}
		printDetails(d)
		return nil
	}
}

func printDetails(d viewstate.Details) {
	if infoPlainFlag {
		fmt.Println(d.Plain())
		return
	}
	fmt.Println(d.Render())
}
