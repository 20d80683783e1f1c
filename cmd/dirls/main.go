package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alexflint/go-arg"
)

// Args defines the command-line arguments. Listing options come before
// the subcommand. Pointer flags are unset unless given, so "--gitignore=false"
// can turn off what the config file turned on.
type Args struct {
	Config     string   `arg:"--config,env:DIRLS_CONFIG" help:"TOML or JSONC file with listing options"`
	Detailed   *bool    `arg:"-d,--detailed" help:"Output objects instead of paths"`
	Stats      *bool    `arg:"-s,--stats" help:"Attach file stats (implies --detailed)"`
	Black      []string `arg:"-b,--black,separate" help:"Exclude names ending with a suffix or matching /regex/flags (repeatable)"`
	White      []string `arg:"-w,--white,separate" help:"Only include names ending with a suffix or matching /regex/flags; overrides --black (repeatable)"`
	FilterDirs *bool    `arg:"--filter-dirs" help:"Apply --black/--white to directory names too"`
	KeepLinks  bool     `arg:"--keep-links" help:"List symbolic links instead of dropping them"`
	SortByName *bool    `arg:"--sort-by-name" help:"Keep name order instead of listing directories first"`
	HideHidden bool     `arg:"--hide-hidden" help:"Drop dot-files and dot-directories"`
	GitIgnore  *bool    `arg:"--gitignore" help:"Drop entries matched by .gitignore files"`
	Human      bool     `arg:"-H,--human" help:"Report sizes like 1.5 KiB"`
	Format     string   `arg:"-f,--format" default:"lines" help:"Output format: lines, json or tree"`
	Verbose    bool     `arg:"-v,--verbose" help:"Log skipped directories and entries"`

	Files *FilesCmd `arg:"subcommand:files" help:"List files, descending into subdirectories"`
	Dir   *DirCmd   `arg:"subcommand:dir" help:"List files and directories of one directory"`
	Tree  *TreeCmd  `arg:"subcommand:tree" help:"List a directory as a nested tree"`
	IsDir *IsDirCmd `arg:"subcommand:isdir" help:"Print whether a path is a directory"`
}

type FilesCmd struct {
	Path        string `arg:"positional" help:"Directory to list (default: current directory)"`
	NoRecursive bool   `arg:"--no-recursive" help:"Only list the directory itself"`
	MaxDepth    int    `arg:"--max-depth" default:"-1" help:"Do not descend deeper than this; -1 for no limit"`
}

type DirCmd struct {
	Path string `arg:"positional" help:"Directory to list (default: current directory)"`
}

type TreeCmd struct {
	Path     string `arg:"positional" help:"Directory to list (default: current directory)"`
	MaxDepth int    `arg:"--max-depth" default:"-1" help:"Do not expand deeper than this; -1 for no limit"`
}

type IsDirCmd struct {
	Path string `arg:"positional,required" help:"Path to check"`
}

// main is our entrypoint: parse args and run the application
func main() {
	var args Args
	parser := arg.MustParse(&args)

	if parser.Subcommand() == nil {
		parser.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	runner, err := BuildRunner(args, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing dirls: %v\n", err)
		os.Exit(1)
	}
	if err := runner.Run(); err != nil {
		log.Fatal(err)
	}
}
