// Command texcalc is the calculator CLI: it normalizes and evaluates lines
// of math markup or plain calculator text.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"golang.org/x/text/language"

	"calclab.net/texcalc/pkg/texcalc"
)

func main() {
	var (
		evalStr    = flag.String("e", "", "Evaluate a single expression and exit")
		degrees    = flag.Bool("deg", false, "Use degrees for trigonometric functions")
		dbPath     = flag.String("db", "", "SQLite constants-catalog path")
		locale     = flag.String("locale", "en", "Display locale for digit grouping")
		noBuiltins = flag.Bool("no-builtins", false, "Disable the built-in physical constants")
		showNorm   = flag.Bool("n", false, "Print the canonical expression instead of evaluating")
	)

	flag.Parse()

	tag, err := language.Parse(*locale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unknown locale: %s\n", *locale)
		os.Exit(1)
	}

	opts := []texcalc.Option{texcalc.WithLocale(tag)}
	if *degrees {
		opts = append(opts, texcalc.WithAngleUnit(texcalc.Degrees))
	}
	if *dbPath != "" {
		opts = append(opts, texcalc.WithSQLiteStore(*dbPath))
	}
	if *noBuiltins {
		opts = append(opts, texcalc.WithoutBuiltinConstants())
	}

	calc := texcalc.New(opts...)
	defer calc.Close()
	if err := calc.StoreErr(); err != nil {
		fmt.Fprintf(os.Stderr, "Cannot open constants store: %v\n", err)
		os.Exit(1)
	}

	if *evalStr != "" {
		if *showNorm {
			fmt.Println(calc.Normalize(*evalStr))
			return
		}
		res := calc.EvalLine(*evalStr)
		fmt.Println(res.Text)
		return
	}

	if isTerminal() {
		runREPL(calc, *showNorm)
		return
	}
	runBatch(calc, *showNorm)
}

// runBatch reads all of stdin and evaluates the lines as one ordered pass,
// printing one result (possibly blank) per line.
func runBatch(calc *texcalc.Calculator, showNorm bool) {
	var lines []string
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Read error: %v\n", err)
		os.Exit(1)
	}
	if showNorm {
		for _, line := range lines {
			fmt.Println(calc.Normalize(line))
		}
		return
	}
	for _, res := range calc.EvalAll(lines) {
		fmt.Println(res.Text)
	}
}
