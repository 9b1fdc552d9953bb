package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/rs/zerolog"

	"github.com/zephyrtronium/calcbrain"
)

const historyFile = ".calcbrain_history"

func main() {
	log.SetFlags(0)
	var (
		inname  string
		with    [][2]string
		verbose bool
		digits  int
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file of key lines (default stdin if no args given)")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.IntVar(&digits, "digits", -1, "decimal places to show, or negative for all")
	flag.BoolVar(&verbose, "v", false, "log evaluation traces to stderr")
	flag.Parse()

	opts := []calcbrain.Option{}
	if verbose {
		l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
		opts = append(opts, calcbrain.Logger(l))
	}
	for _, d := range with {
		v, err := strconv.ParseFloat(d[1], 64)
		if err != nil {
			log.Fatalf("setting %s: %v", d[0], err)
		}
		opts = append(opts, calcbrain.SetVar(d[0], v))
	}
	k := newKeypad(calcbrain.New(opts...), int32(digits))

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			press(k, arg)
		}
		return
	}
	if inname == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		repl(k)
		return
	}
	f, err := infile(inname)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		press(k, sc.Text())
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}

// press presses the keys in a line and prints the display and history.
func press(k *keypad, line string) {
	if err := k.PressAll(line); err != nil {
		fmt.Println(err)
	}
	fmt.Printf("%s\t%s\n", k.Display(), k.History())
}

func repl(k *keypad) {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(k.Display() + " > ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return
		}
		if err != nil {
			log.Print(err)
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if err := k.PressAll(line); err != nil {
			fmt.Println(err)
		}
		fmt.Println(k.History())
	}
}

func infile(inname string) (io.ReadCloser, error) {
	if inname == "" || inname == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(inname)
}
