package main

import (
	"fmt"
	"log/slog"

	"github.com/hayeah/dirls/lister"
)

// Runner dispatches the parsed subcommand to the lister.
type Runner struct {
	Args    Args
	Lister  *lister.Lister
	Printer *Printer
	Logger  *slog.Logger
}

func orCwd(path string) string {
	if path == "" {
		return "."
	}
	return path
}

// Run executes the selected subcommand
func (r *Runner) Run() error {
	switch {
	case r.Args.Files != nil:
		cmd := r.Args.Files
		root := orCwd(cmd.Path)
		return r.print(root, r.Lister.ListFiles(root, !cmd.NoRecursive, cmd.MaxDepth))
	case r.Args.Dir != nil:
		root := orCwd(r.Args.Dir.Path)
		return r.print(root, r.Lister.ListOneDir(root))
	case r.Args.Tree != nil:
		cmd := r.Args.Tree
		root := orCwd(cmd.Path)
		return r.print(root, r.Lister.ListFilesTree(root, cmd.MaxDepth))
	case r.Args.IsDir != nil:
		_, err := fmt.Fprintln(r.Printer.Out, r.Lister.IsDirectory(r.Args.IsDir.Path))
		return err
	default:
		return fmt.Errorf("no subcommand specified, use 'files', 'dir', 'tree' or 'isdir'")
	}
}

func (r *Runner) print(root string, items []lister.Item) error {
	if items == nil {
		r.Logger.Warn("not a directory", slog.String("path", root))
	}
	return r.Printer.Print(root, items)
}
