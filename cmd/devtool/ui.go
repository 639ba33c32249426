package main

import (
	"fmt"
	"io"
	"os"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// output is swapped by tests.
var output io.Writer = os.Stdout

// colorEnabled honours the NO_COLOR convention.
var colorEnabled = os.Getenv("NO_COLOR") == ""

func printLine(color, symbol, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if !colorEnabled {
		fmt.Fprintf(output, "%s %s\n", symbol, msg)
		return
	}
	fmt.Fprintf(output, "%s%s %s%s\n", color, symbol, msg, colorReset)
}

func PrintInfo(format string, a ...interface{})    { printLine(colorBlue, "ℹ", format, a...) }
func PrintSuccess(format string, a ...interface{}) { printLine(colorGreen, "✓", format, a...) }
func PrintWarning(format string, a ...interface{}) { printLine(colorYellow, "⚠", format, a...) }
func PrintError(format string, a ...interface{})   { printLine(colorRed, "✗", format, a...) }

func PrintHeader(title string) {
	fmt.Fprintln(output)
	printLine(colorYellow, "===", "%s ===", title)
}
