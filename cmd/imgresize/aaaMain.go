package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/srlehn/imgresize/config"
	"github.com/srlehn/imgresize/imgproc"
	"github.com/srlehn/imgresize/internal/errors"
	"github.com/srlehn/imgresize/internal/logx"
	"github.com/srlehn/imgresize/resize/rall"
	"github.com/srlehn/imgresize/resolve/fsresolver"
	"github.com/srlehn/imgresize/store/cachedir"
)

var rootCmd = &cobra.Command{
	Use:              filepath.Base(os.Args[0]),
	Short:            "imgresize shows image metadata and resizes images",
	Long:             "imgresize shows image metadata and stretches images to a given size.\nResized images are written as JPEG into a cache directory.",
	SilenceUsage:     true,
	SilenceErrors:    true,
	TraverseChildren: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, `debug`, `d`, false, `debug errors`)
	rootCmd.PersistentFlags().BoolVarP(&silentFlag, `silent`, `s`, false, `silence errors`)
	rootCmd.PersistentFlags().StringVarP(&logFileFlag, `log-file`, `l`, ``, `log file`)
	rootCmd.PersistentFlags().StringVarP(&configFlag, `config`, `c`, ``, `config file (default `+config.DefaultPath()+`)`)
	rootCmd.PersistentFlags().StringVar(&cacheDirFlag, `cache-dir`, ``, `directory for resized images (default `+cachedir.DefaultDir()+`)`)
	rootCmd.PersistentFlags().StringVarP(&resamplerFlag, `resampler`, `r`, ``, `resampler, see "resamplers" (default `+rall.DefaultName+`)`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	debugFlag     bool
	silentFlag    bool
	logFileFlag   string
	configFlag    string
	cacheDirFlag  string
	resamplerFlag string
)

// env is what a command needs, built from config file and flags.
type env struct {
	proc  *imgproc.Processor
	store *cachedir.Store
	cfg   *config.Config
}

func newEnv() (*env, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, err
	}
	if len(cacheDirFlag) > 0 {
		cfg.CacheDir = cacheDirFlag
	}
	if len(resamplerFlag) > 0 {
		cfg.Resampler = resamplerFlag
	}
	if len(logFileFlag) > 0 {
		cfg.LogFile = logFileFlag
	}
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	if debugFlag {
		lvl = slog.LevelDebug
	}
	rsz, err := rall.ByName(cfg.Resampler)
	if err != nil {
		return nil, err
	}
	store := cachedir.New(cfg.CacheDir)
	proc, err := imgproc.NewProcessor(
		imgproc.SetResolver(fsresolver.New(``)),
		imgproc.SetStore(store),
		imgproc.SetResizer(rsz),
		imgproc.SetLogFile(cfg.LogFile, lvl, len(cfg.LogFile) > 0),
	)
	if err != nil {
		return nil, err
	}
	logx.Debug(`configured`, proc, `cache_dir`, store.Dir, `resampler`, cfg.Resampler)
	return &env{proc: proc, store: store, cfg: cfg}, nil
}

func (e *env) Close() error {
	if e == nil {
		return nil
	}
	return e.proc.Close()
}

type envFunc func(e *env) error

// run builds the env, runs fn and exits non-zero on failure.
func run(fn envFunc) {
	var exitCode int
	defer func() { os.Exit(exitCode) }()
	if fn == nil {
		printErr(errors.NilParam())
		exitCode = 1
		return
	}
	e, err := newEnv()
	if err != nil {
		printErr(err)
		exitCode = 1
		return
	}
	defer e.Close()
	if err := fn(e); err != nil {
		logx.IsErr(err, e.proc, slog.LevelError)
		printErr(err)
		exitCode = 1
	}
}

func printErr(err error) {
	if silentFlag || err == nil {
		return
	}
	if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
		fmt.Fprintln(os.Stderr, stackFramer.ErrorStack())
	} else {
		fmt.Fprintln(os.Stderr, err.Error())
	}
}
