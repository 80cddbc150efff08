// debugparse converts a debug-formatted value (the human-readable rendering
// of a nested struct/enum/collection) into JSON, CBOR, or YAML.
//
// Input comes from a file argument, or from stdin when the argument is
// absent or "-". With --watch the file is re-parsed and re-emitted on every
// change, which makes the tool usable as a live inspector for a log field
// being edited or appended elsewhere.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/NishantJoshi00/debug-parser/encode"
	"github.com/NishantJoshi00/debug-parser/parser"
)

func main() {
	var (
		format   string
		strict   bool
		maxDepth int
		watch    bool
	)

	rootCmd := &cobra.Command{
		Use:   "debugparse [file]",
		Short: "Convert debug-formatted values to JSON, CBOR, or YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := "-"
			if len(args) == 1 {
				file = args[0]
			}

			f, err := encode.ParseFormat(format)
			if err != nil {
				return err
			}

			opts := []parser.Option{parser.WithMaxDepth(maxDepth)}
			if strict {
				opts = append(opts, parser.WithTrailingDisallowed())
			}

			if watch {
				if file == "-" {
					return fmt.Errorf("--watch requires a file argument")
				}
				return watchFile(cmd.OutOrStdout(), file, f, opts)
			}

			input, err := readInput(file)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), input, f, opts)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json, cbor, or yaml")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Treat trailing input after the parsed value as an error")
	rootCmd.Flags().IntVar(&maxDepth, "max-depth", parser.DefaultMaxDepth, "Maximum structural nesting depth")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-parse and re-emit whenever the input file changes")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// readInput reads the whole input: stdin for "-", a file otherwise.
func readInput(file string) (string, error) {
	if file == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", file, err)
	}
	return string(data), nil
}

// emit parses input and writes the serialized tree followed by a newline.
func emit(w io.Writer, input string, f encode.Format, opts []parser.Option) error {
	v, err := parser.Parse(input, opts...)
	if err != nil {
		return err
	}
	out, err := encode.Marshal(v, f)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return err
	}
	if f != encode.YAML { // yaml.Marshal already ends with a newline
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// watchFile emits once, then re-emits on every change to file. A parse
// error from an intermediate save is printed to stderr and watching
// continues; only watcher failures terminate the loop.
func watchFile(w io.Writer, file string, f encode.Format, opts []parser.Option) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(file); err != nil {
		return fmt.Errorf("watching %s: %w", file, err)
	}

	reload := func() {
		input, err := readInput(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return
		}
		if err := emit(w, input, f, opts); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
	}

	reload()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				reload()
			}
			if event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				// Editors replace files on save; re-arm the watch
				if err := watcher.Add(file); err == nil {
					reload()
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher: %w", err)
		}
	}
}
