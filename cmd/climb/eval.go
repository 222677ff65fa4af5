package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/JeffThomas/climb/calc"
	"github.com/midbel/cli"
)

var evalCmd = cli.Command{
	Name:    "eval",
	Summary: "evaluate expressions separated by ';', going on after a failed one",
	Handler: &EvalCmd{},
}

var treeCmd = cli.Command{
	Name:    "tree",
	Summary: "print an expression fully parenthesised",
	Handler: &TreeCmd{},
}

var rpnCmd = cli.Command{
	Name:    "rpn",
	Summary: "print the postfix program of an expression",
	Handler: &RpnCmd{},
}

var checkCmd = cli.Command{
	Name:    "check",
	Summary: "validate an expression without building it",
	Handler: &CheckCmd{},
}

type EvalCmd struct {
	Lazy bool
}

func (c *EvalCmd) Run(args []string) error {
	set := flag.NewFlagSet("eval", flag.ContinueOnError)
	set.BoolVar(&c.Lazy, "lazy", false, "run the compiled program instead of walking the tree")
	if err := set.Parse(args); err != nil {
		return err
	}
	list, err := calc.ParseScript(strings.Join(set.Args(), " "))
	if err != nil {
		return err
	}
	var failed bool
	for _, n := range list {
		var v int
		if c.Lazy {
			v, err = calc.Compile(n).Run()
		} else {
			v, err = n.Eval()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s", n, err)
			fmt.Fprintln(os.Stderr)
			failed = true
			continue
		}
		fmt.Fprintln(os.Stdout, v)
	}
	if failed {
		return errFail
	}
	return nil
}

type TreeCmd struct {
	Lexx bool
}

func (c *TreeCmd) Run(args []string) error {
	set := flag.NewFlagSet("tree", flag.ContinueOnError)
	set.BoolVar(&c.Lexx, "lexx", false, "tokenize input with lexx")
	if err := set.Parse(args); err != nil {
		return err
	}
	n, err := parse(strings.Join(set.Args(), " "), c.Lexx)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, n)
	return nil
}

type RpnCmd struct {
	Lexx bool
}

func (c *RpnCmd) Run(args []string) error {
	set := flag.NewFlagSet("rpn", flag.ContinueOnError)
	set.BoolVar(&c.Lexx, "lexx", false, "tokenize input with lexx")
	if err := set.Parse(args); err != nil {
		return err
	}
	n, err := parse(strings.Join(set.Args(), " "), c.Lexx)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, calc.Compile(n))
	return nil
}

type CheckCmd struct {
	Lexx bool
}

func (c *CheckCmd) Run(args []string) error {
	set := flag.NewFlagSet("check", flag.ContinueOnError)
	set.BoolVar(&c.Lexx, "lexx", false, "tokenize input with lexx")
	if err := set.Parse(args); err != nil {
		return err
	}
	var (
		src = strings.Join(set.Args(), " ")
		n   int
		err error
	)
	if c.Lexx {
		n, err = calc.CheckTokens(src)
	} else {
		n, err = calc.Check(src)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "valid: %d consumed", n)
	fmt.Fprintln(os.Stdout)
	return nil
}

func parse(src string, lexx bool) (*calc.Node, error) {
	if lexx {
		return calc.ParseTokens(src)
	}
	return calc.Parse(src)
}
