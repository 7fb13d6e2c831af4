package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/riff-kit/dump"
	"github.com/wippyai/riff-kit/riff"
)

func main() {
	var (
		interactive = flag.Bool("i", false, "Interactive tree browser (needs a terminal)")
		outFile     = flag.String("o", "", "Re-encode the parsed tree into this file")
		padValue    = flag.String("pad", "0x00", "Padding byte used when re-encoding")
		verbose     = flag.Bool("v", false, "Verbose debug logging to stderr")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: riff [flags] <file>")
		fmt.Fprintln(os.Stderr, "       riff file.wav                        (print the chunk tree)")
		fmt.Fprintln(os.Stderr, "       riff -i file.wav                     (interactive browser)")
		fmt.Fprintln(os.Stderr, "       riff -o out.wav -pad 0x30 file.wav   (re-encode with pad byte)")
		os.Exit(1)
	}
	file := flag.Arg(0)

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		riff.SetLogger(logger)
	}

	pad, err := parsePad(*padValue)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The browser needs a real terminal; otherwise fall back to the
	// plain dump so piped invocations still work.
	if *interactive && term.IsTerminal(int(os.Stdout.Fd())) {
		if err := runInteractive(file); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(file, *outFile, pad); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parsePad(s string) (byte, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("pad byte %q: %w", s, err)
	}
	return byte(v), nil
}

func run(file, outFile string, pad byte) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	root, err := riff.Parse(data)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	if err := dump.WriteTree(os.Stdout, root); err != nil {
		return fmt.Errorf("print tree: %w", err)
	}

	if outFile == "" {
		return nil
	}

	out, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	n, err := root.EncodeTo(out, pad)
	if err != nil {
		out.Close()
		return fmt.Errorf("encode: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	fmt.Printf("\nWrote %s (%d bytes)\n", outFile, n)
	return nil
}
