package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/JeffThomas/climb"
	"github.com/JeffThomas/climb/calc"
	"github.com/midbel/cli"
	"github.com/peterh/liner"
)

const (
	historyFile = ".climb_history"
	promptMain  = "> "
	promptCont  = ". "
)

var replCmd = cli.Command{
	Name:    "repl",
	Summary: "evaluate expressions interactively",
	Handler: &ReplCmd{},
}

type ReplCmd struct {
	Tree bool
}

func (c *ReplCmd) Run(args []string) error {
	set := flag.NewFlagSet("repl", flag.ContinueOnError)
	set.BoolVar(&c.Tree, "tree", false, "print the parsed tree before its value")
	if err := set.Parse(args); err != nil {
		return err
	}

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		src, ok := readExpr(ln)
		if !ok {
			fmt.Println()
			return nil
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		list, err := calc.ParseScript(src)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		for _, n := range list {
			if c.Tree {
				fmt.Println(n)
			}
			v, err := n.Eval()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			fmt.Println(v)
		}
	}
}

// readExpr keeps reading lines as long as the input so far is a valid prefix
// of an expression, i.e. it only fails for lack of input.
func readExpr(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.TrimSpace(src) == "" || !incomplete(src) {
			return src, true
		}
	}
}

func incomplete(src string) bool {
	_, err := calc.Check(src)
	var perr *climb.ParseError
	if !errors.As(err, &perr) {
		return false
	}
	return perr.Found == climb.EndOfInput
}
