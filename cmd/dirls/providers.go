package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hayeah/dirls/internal/config"
	"github.com/hayeah/dirls/internal/logging"
	"github.com/hayeah/dirls/lister"
)

// ProvideLogger logs to stderr; --verbose lowers the level to debug.
func ProvideLogger(args Args) *slog.Logger {
	return logging.New(os.Stderr, logging.Options{Verbose: args.Verbose})
}

// ProvideListerConfig merges defaults, the config file and flags, in that order.
func ProvideListerConfig(args Args, logger *slog.Logger) (lister.Config, error) {
	cfg := lister.DefaultConfig()
	cfg.Logger = logger

	if args.Config != "" {
		f, err := config.Load(args.Config)
		if err != nil {
			return cfg, err
		}
		if err := f.Apply(&cfg); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", args.Config, err)
		}
	}

	override(&cfg.Detailed, args.Detailed)
	override(&cfg.Stats, args.Stats)
	override(&cfg.FilterDirectories, args.FilterDirs)
	override(&cfg.SortByName, args.SortByName)
	override(&cfg.GitIgnore, args.GitIgnore)
	if args.KeepLinks {
		cfg.IgnoreSymbolicLinks = false
	}
	if args.HideHidden {
		cfg.ShowHidden = false
	}
	if args.Human {
		cfg.SizeFormatter = config.HumanSize
	}

	black, err := lister.ParseRules(args.Black)
	if err != nil {
		return cfg, fmt.Errorf("--black: %w", err)
	}
	white, err := lister.ParseRules(args.White)
	if err != nil {
		return cfg, fmt.Errorf("--white: %w", err)
	}
	cfg.BlackList = append(cfg.BlackList, black...)
	cfg.WhiteList = append(cfg.WhiteList, white...)
	return cfg, nil
}

// override sets dst to a flag given on the command line; "--flag=false"
// turns off an option the config file enabled.
func override(dst *bool, flag *bool) {
	if flag != nil {
		*dst = *flag
	}
}

func ProvideLister(cfg lister.Config) *lister.Lister {
	return lister.NewFromConfig(cfg)
}

func ProvidePrinter(args Args, out io.Writer) (*Printer, error) {
	format, err := ParseFormat(args.Format)
	if err != nil {
		return nil, err
	}
	return &Printer{Out: out, Format: format}, nil
}
