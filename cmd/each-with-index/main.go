// Prints every line of its input prefixed with the line's position.
//
// Example run:
// $ each-with-index --offset 1 go.mod
// 1	module github.com/anacrolix/enumerable
// 2
// 3	go 1.24.0
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/anacrolix/envpprof"
	"github.com/anacrolix/log"
	"github.com/davecgh/go-spew/spew"

	"github.com/anacrolix/enumerable"
	"github.com/anacrolix/enumerable/containers"
	"github.com/anacrolix/enumerable/internal/errorsx"
)

var logger = log.Default.WithNames("main")

type args struct {
	Offset int      `help:"position of the first line"`
	Lazy   bool     `help:"collect the lines through an enumerator before printing"`
	Dump   bool     `help:"dump the indexed lines instead of printing them"`
	Debug  bool     `help:"log every line as it's read"`
	Files  []string `arg:"positional" help:"files to read, stdin if none"`
}

func main() {
	defer envpprof.Stop()
	err := mainErr(os.Args[1:], os.Stdin, os.Stdout)
	if err != nil {
		logger.Levelf(log.Error, "error in main: %v", err)
		os.Exit(1)
	}
}

func mainErr(argv []string, stdin io.Reader, stdout io.Writer) error {
	var flags args
	p, err := arg.NewParser(arg.Config{Program: "each-with-index"}, &flags)
	if err != nil {
		return err
	}
	err = p.Parse(argv)
	if errors.Is(err, arg.ErrHelp) {
		p.WriteHelp(stdout)
		return nil
	}
	if err != nil {
		return err
	}
	if len(flags.Files) == 0 {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		return printLines(flags, containers.Lines{R: bytes.NewReader(b)}, stdout)
	}
	for _, name := range flags.Files {
		err := printFile(flags, name, stdout)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func printFile(flags args, name string, stdout io.Writer) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	err = printLines(flags, containers.Lines{R: f}, stdout)
	return errorsx.Compact(err, f.Close())
}

func printLines(flags args, lines containers.Lines, stdout io.Writer) error {
	var c enumerable.Eacher[string] = lines
	opts := []enumerable.Option{enumerable.Offset(flags.Offset)}
	if flags.Debug {
		c = containers.Traced[string]{Inner: c, Logger: logger}
		opts = append(opts, enumerable.Logger(logger))
	}
	if flags.Lazy || flags.Dump {
		pairs, err := enumerable.WithIndex(c, opts...).ToSlice()
		if err != nil {
			return err
		}
		if flags.Dump {
			spew.Fdump(stdout, pairs)
			return nil
		}
		for _, p := range pairs {
			if _, err := fmt.Fprintf(stdout, "%d\t%s\n", p.Index, p.Elem); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := enumerable.EachWithIndex(c, func(line string, i int) error {
		_, err := fmt.Fprintf(stdout, "%d\t%s\n", i, line)
		return err
	}, opts...)
	return err
}
