// Copyright (c) 2024, The brace Authors
// See LICENSE for licensing information

// brx is a command-line brace pattern expander.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/google/renameio/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/oxpand/brace/expand"
)

var (
	showVersion = flag.Bool("version", false, "")

	sep     = flag.String("sep", "", "")
	maxRes  = flag.Uint64("max", 0, "")
	escape  = flag.String("esc", `\`, "")
	outPath = flag.String("o", "", "")

	in  io.Reader = os.Stdin
	out io.Writer = os.Stdout

	version = "(devel)" // to match the default from runtime/debug
)

func main() {
	os.Exit(main1())
}

func main1() int {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: brx [flags] [pattern ...]

If the only argument is a dash ('-') or no arguments are given, patterns are
read from standard input, one per line.

  -version  show version and exit

  -sep str  separator between results (default: space when stdout is a
            terminal, newline otherwise)
  -max n    largest number of results a single pattern may expand to
  -esc ch   escape character (default "\")
  -o file   write the results to a file instead of stdout
`)
	}
	flag.Parse()

	if *showVersion {
		// don't overwrite the version if it was set by -ldflags=-X
		if info, ok := debug.ReadBuildInfo(); ok && version == "(devel)" {
			mod := &info.Main
			if mod.Replace != nil {
				mod = mod.Replace
			}
			version = mod.Version
		}
		fmt.Println(version)
		return 0
	}
	if len(*escape) != 1 {
		fmt.Fprintln(os.Stderr, "-esc must be a single character")
		return 1
	}
	cfg := &expand.Config{MaxResults: *maxRes, Escape: (*escape)[0]}

	patterns := flag.Args()
	if len(patterns) == 0 || (len(patterns) == 1 && patterns[0] == "-") {
		patterns = nil
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			patterns = append(patterns, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	separator := *sep
	if separator == "" {
		separator = "\n"
		if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			separator = " "
		}
	}

	// expand the patterns concurrently, but emit them in argument order
	results := make([][]string, len(patterns))
	var g errgroup.Group
	for i, pattern := range patterns {
		i, pattern := i, pattern
		g.Go(func() error {
			res, err := expand.Pattern(cfg, pattern)
			if err != nil {
				return fmt.Errorf("%s: %w", pattern, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	var buf bytes.Buffer
	first := true
	for _, res := range results {
		for _, s := range res {
			if !first {
				buf.WriteString(separator)
			}
			buf.WriteString(s)
			first = false
		}
	}
	buf.WriteString("\n")

	if *outPath != "" {
		if err := renameio.WriteFile(*outPath, buf.Bytes(), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}
	if _, err := out.Write(buf.Bytes()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
