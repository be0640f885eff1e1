// Command argfmt-demo compiles a format string and parses tokens against it.
//
// The first argument is the format string. Any further arguments are parsed
// once, after which the table is dumped. With no further arguments an
// interactive prompt parses each entered line against the table.
package main

import (
	"errors"
	"fmt"
	"github.com/mgreer/argfmt/pkg/argfmt"
	"github.com/peterh/liner"
	"io"
	"os"
	"strings"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <format> [token ...]\n", os.Args[0])
		os.Exit(2)
	}

	a, err := argfmt.New(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if 2 < len(os.Args) {
		tokens := append([]string{os.Args[0]}, os.Args[2:]...)
		rest, ok := a.ParseFilter(tokens)

		a.Dump(os.Stdout)
		fmt.Printf("rest: %v\n", rest)

		if !ok {
			os.Exit(1)
		}
		return
	}

	if err := repl(a); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// repl parses one line of tokens at a time, resetting the set flags between
// lines. The help, dump and quit words are handled by the prompt itself.
func repl(a *argfmt.Args) error {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer line.Close()

	for {
		input, err := line.Prompt("argfmt> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		switch input {
		case "help":
			a.Usage(os.Args[0])
			continue
		case "dump":
			a.Dump(os.Stdout)
			continue
		case "quit", "exit":
			return nil
		}

		a.Reset()
		tokens := append([]string{os.Args[0]}, splitTokens(input)...)
		rest, ok := a.ParseFilter(tokens)

		fmt.Printf("rest: %v ok: %t\n", rest, ok)
	}
}
