package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/calcyard/mathcalc/internal/mathparse"
	"github.com/calcyard/mathcalc/internal/symbol"
)

func main() {
	eval := mathparse.Default()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("mathcalc - type an expression, /help for commands")
	for {
		fmt.Print("calc> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "/quit" || input == "/exit" {
			break
		}
		if strings.HasPrefix(input, "/") {
			runCommand(eval, input)
			continue
		}

		postfix, err := eval.Parse(strings.ToLower(input))
		if err != nil {
			printError(err)
			continue
		}
		result, err := eval.EvaluatePostfix(postfix)
		if err != nil {
			printError(err)
			continue
		}
		fmt.Println(mathparse.FormatResult(result))
	}
}

func runCommand(eval *mathparse.Evaluator, input string) {
	fields := strings.Fields(input)
	switch fields[0] {
	case "/help":
		fmt.Println("expressions:  2 + 3 * 4, 2pi, sin(pi/2), 5!")
		fmt.Println("/const <name> <expr>      define a constant")
		fmt.Println("/func <name> <n> <expr>   define an n-ary function over x_1..x_n")
		fmt.Println("/symbols                  list registered symbols")
		fmt.Println("/quit                     exit")
	case "/symbols":
		listSymbols(eval)
	case "/const":
		if len(fields) < 3 {
			fmt.Println("usage: /const <name> <expr>")
			return
		}
		defineConstant(eval, fields[1], strings.Join(fields[2:], " "))
	case "/func":
		if len(fields) < 4 {
			fmt.Println("usage: /func <name> <n> <expr>")
			return
		}
		nVar, err := strconv.Atoi(fields[2])
		if err != nil {
			fmt.Println("usage: /func <name> <n> <expr>")
			return
		}
		if _, err := eval.DefineFunction(fields[1], nVar, strings.Join(fields[3:], " ")); err != nil {
			printError(err)
			return
		}
		fmt.Printf("defined %s/%d\n", fields[1], nVar)
	default:
		fmt.Printf("unknown command %s, try /help\n", fields[0])
	}
}

func defineConstant(eval *mathparse.Evaluator, name, expr string) {
	postfix, err := eval.Parse(strings.ToLower(expr))
	if err != nil {
		printError(err)
		return
	}
	value, err := eval.EvaluatePostfix(postfix)
	if err != nil {
		printError(err)
		return
	}
	c, err := symbol.NewConstant(name, value)
	if err != nil {
		printError(err)
		return
	}
	if err := eval.AddConstant(c); err != nil {
		printError(err)
		return
	}
	fmt.Printf("%s = %s\n", name, mathparse.FormatResult(value))
}

func listSymbols(eval *mathparse.Evaluator) {
	for token := range eval.Operators() {
		fmt.Printf("operator  %s\n", token)
	}
	for token, fn := range eval.Functions() {
		fmt.Printf("function  %s/%d\n", token, fn.NVar())
	}
	for token, c := range eval.Constants() {
		fmt.Printf("constant  %s = %s\n", token, mathparse.FormatResult(c.Value()))
	}
	if token, ok := eval.ImplicitOperation(); ok {
		fmt.Printf("implicit  %s\n", token)
	}
}

func printError(err error) {
	var opErr *mathparse.OperatorError
	var odErr *mathparse.OperandError
	if errors.As(err, &opErr) || errors.As(err, &odErr) {
		fmt.Println(err)
		return
	}
	fmt.Printf("unexpected error: %v\n", err)
}
