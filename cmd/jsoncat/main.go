/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

// Command jsoncat reads a JSON document from stdin, parses it into a value
// tree, re-serializes it, and writes the result to stdout. With -stats it
// prints tree statistics to stdout instead of re-emitting the document.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kcenon/jsonvalue/domparser"
	"github.com/kcenon/jsonvalue/log"
	"github.com/kcenon/jsonvalue/serializer"
	"github.com/kcenon/jsonvalue/traverse"
	"github.com/kcenon/jsonvalue/value"
)

func main() {
	maxDepth := flag.Int("max-depth", 0, "maximum nesting depth (0 uses the library default)")
	stats := flag.Bool("stats", false, "print node/depth statistics instead of re-emitting the document")
	verbose := flag.Bool("v", false, "log parse warnings to stderr")
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, *maxDepth, *stats, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "jsoncat:", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, maxDepth int, stats, verbose bool) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var opts []domparser.Option
	if maxDepth > 0 {
		opts = append(opts, domparser.WithMaxDepth(maxDepth))
	}
	if verbose {
		opts = append(opts, domparser.WithLogger(log.New(os.Stderr, log.LevelWarn)))
	}

	root, err := domparser.Parse(data, opts...)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	if stats {
		return printStats(out, root)
	}
	return reemit(out, root)
}

func reemit(out io.Writer, root value.Value) error {
	s := serializer.New(root)
	w := bufio.NewWriter(out)
	buf := make([]byte, 4096)
	for !s.Done() {
		n, err := s.Write(buf)
		if err != nil {
			return fmt.Errorf("serialize: %w", err)
		}
		if _, err := w.Write(buf[:n]); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return err
	}
	return w.Flush()
}

type treeStats struct {
	nodes, scalars, containers, maxDepth int
}

func printStats(out io.Writer, root value.Value) error {
	var st treeStats
	it := traverse.New(root)
	for !it.Done() {
		rec := it.Next()
		if rec.End {
			continue
		}
		st.nodes++
		if rec.Value.IsStructured() {
			st.containers++
		} else {
			st.scalars++
		}
		if rec.Depth > st.maxDepth {
			st.maxDepth = rec.Depth
		}
	}
	_, err := fmt.Fprintf(out, "nodes=%d scalars=%d containers=%d max_depth=%d\n",
		st.nodes, st.scalars, st.containers, st.maxDepth)
	return err
}
