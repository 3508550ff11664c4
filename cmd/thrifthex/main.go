// thrifthex dumps serialized payload bytes for debugging.
//
// It reads a file (or piped stdin) and prints the bytes alongside their hex
// rendering, ten groups per line by default. With --cbor the input is also
// shown in CBOR diagnostic notation, which is how the diagnostic codec lays
// out structs (field id to value).
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/thriftcore/codec"
	tcerrors "github.com/wippyai/thriftcore/errors"
	"github.com/wippyai/thriftcore/hexutil"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin *os.File, stdout io.Writer) error {
	var (
		filePath string
		delim    string
		count    int
		oneLine  bool
		showCBOR bool
		verbose  bool
	)

	flagSet := pflag.NewFlagSet("thrifthex", pflag.ContinueOnError)
	flagSet.StringVarP(&filePath, "file", "f", "", "read bytes from this file instead of stdin")
	flagSet.StringVarP(&delim, "delimiter", "d", " ", "separator between hex groups in --one-line output")
	flagSet.IntVarP(&count, "count", "n", hexutil.DefaultCount, "hex groups per line")
	flagSet.BoolVar(&oneLine, "one-line", false, "print only the hex groups on a single line")
	flagSet.BoolVar(&showCBOR, "cbor", false, "also print the input in CBOR diagnostic notation")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	logger := zap.NewNop()
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		logger = l
	}
	defer func() { _ = logger.Sync() }()
	codec.SetLogger(logger)

	data, err := readInput(filePath, stdin)
	if err != nil {
		return err
	}
	logger.Debug("read input", zap.String("file", filePath), zap.Int("bytes", len(data)))

	if oneLine {
		fmt.Fprintln(stdout, hexutil.Hexlify(data, delim))
	} else if err := hexutil.Hexprint(stdout, data, count); err != nil {
		return tcerrors.Wrap(tcerrors.PhaseDump, tcerrors.KindInvalidData, err, "write dump")
	}

	if showCBOR {
		diag, err := codec.Diagnose(data)
		if err != nil {
			return tcerrors.Wrap(tcerrors.PhaseDump, tcerrors.KindInvalidData, err, "cbor diagnostic")
		}
		fmt.Fprintf(stdout, "\nCBOR:\n%s\n", diag)
	}
	return nil
}

func readInput(filePath string, stdin *os.File) ([]byte, error) {
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, tcerrors.Wrap(tcerrors.PhaseDump, tcerrors.KindInvalidInput, err, "read file")
		}
		return data, nil
	}

	if term.IsTerminal(int(stdin.Fd())) {
		return nil, tcerrors.InvalidInput(tcerrors.PhaseDump, "no input: pass --file or pipe bytes on stdin")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, tcerrors.Wrap(tcerrors.PhaseDump, tcerrors.KindInvalidInput, err, "read stdin")
	}
	return data, nil
}
