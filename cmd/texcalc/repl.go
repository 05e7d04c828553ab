package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"calclab.net/texcalc/pkg/texcalc"
)

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// runREPL keeps the full line history and re-evaluates it on every entry,
// so ans always reflects the lines above. This is the same full-recompute
// model the editor uses.
func runREPL(calc *texcalc.Calculator, showNorm bool) {
	fmt.Println("texcalc (Ctrl+D to exit); ans holds the previous result")
	var history []string
	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !in.Scan() {
			fmt.Println()
			return
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		if showNorm {
			fmt.Println(calc.Normalize(line))
			continue
		}
		history = append(history, line)
		results := calc.EvalAll(history)
		last := results[len(results)-1]
		if !last.OK {
			// Blank is the error signal; no point re-evaluating a bad
			// line on every later entry.
			history = history[:len(history)-1]
			fmt.Println()
			continue
		}
		fmt.Println(last.Text)
	}
}
