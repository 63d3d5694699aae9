package output

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ColorsEnabled returns true if terminal colors should be used.
// Respects NO_COLOR (https://no-color.org/).
func ColorsEnabled() bool {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	white  = "\033[37m"
)

// ASCII status symbols, safe on terminals without Unicode fonts.
const (
	SymbolSuccess = "+"
	SymbolError   = "x"
	SymbolWarning = "!"
	SymbolInfo    = "*"
	SymbolArrow   = "->"
)

func colorize(color, text string) string {
	if !ColorsEnabled() {
		return text
	}
	return fmt.Sprintf("%s%s%s", color, text, reset)
}

func Bold(text string) string    { return colorize(bold, text) }
func Dim(text string) string     { return colorize(dim, text) }
func Success(text string) string { return colorize(green, text) }
func Error(text string) string   { return colorize(red, text) }
func Warning(text string) string { return colorize(yellow, text) }
func Info(text string) string    { return colorize(cyan, text) }

// Header returns text styled as a section header.
func Header(text string) string { return colorize(bold+white, text) }

// PrintHeader prints a bold section header.
func PrintHeader(text string) {
	fmt.Println(Header(text))
}

func PrintSuccess(message string) {
	fmt.Printf("%s %s\n", Success(SymbolSuccess), Success(message))
}

// PrintError prints an error message to stderr.
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", Error(SymbolError), Error(message))
}

// PrintWarning prints a warning message to stderr.
func PrintWarning(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", Warning(SymbolWarning), Warning(message))
}

func PrintInfo(message string) {
	fmt.Printf("%s %s\n", Info(SymbolInfo), Info(message))
}

// PrintStep prints a step being executed.
func PrintStep(message string) {
	fmt.Printf("  %s %s\n", SymbolArrow, message)
}

// Plural returns the singular or plural form based on count.
func Plural(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
