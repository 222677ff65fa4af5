package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/midbel/cli"
)

var errFail = errors.New("fail")

var (
	summary = "climb parses and evaluates integer expressions"
	help    = `operators, from the loosest to the tightest:

  + -        left associative
  * / %      left associative
  ^          right associative
  - !        prefix

parentheses group sub expressions, ';' separates expressions.`
)

func main() {
	var (
		set  = cli.NewFlagSet("climb")
		root = prepare()
	)
	root.SetSummary(summary)
	root.SetHelp(help)
	if err := set.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			root.Help()
			os.Exit(2)
		}
	}
	err := root.Execute(set.Args())
	if err != nil {
		if s, ok := err.(cli.SuggestionError); ok && len(s.Others) > 0 {
			fmt.Fprintln(os.Stderr, "similar command(s)")
			for _, n := range s.Others {
				fmt.Fprintln(os.Stderr, "-", n)
			}
		}
		if !errors.Is(err, errFail) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func prepare() *cli.CommandTrie {
	root := cli.New()
	root.Register([]string{"eval"}, &evalCmd)
	root.Register([]string{"tree"}, &treeCmd)
	root.Register([]string{"rpn"}, &rpnCmd)
	root.Register([]string{"check"}, &checkCmd)
	root.Register([]string{"repl"}, &replCmd)
	return root
}
