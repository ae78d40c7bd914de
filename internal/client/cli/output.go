package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	headerWidth = 80
	headerTitle = "NeumoDiagnostics - Interfaz de línea de comandos"
)

func separator() string { return strings.Repeat("=", headerWidth) }

// centered pads s on the left so it sits in the middle of the header.
func centered(s string) string {
	n := utf8.RuneCountInString(s)
	if n >= headerWidth {
		return s
	}
	return strings.Repeat(" ", (headerWidth-n)/2) + s
}

func printSeparator(w io.Writer) {
	fmt.Fprintln(w, separator())
}

func printHeader(w io.Writer) {
	fmt.Fprintln(w, separator())
	fmt.Fprintln(w, centered(headerTitle))
	fmt.Fprintln(w, separator())
}

// printSection prints a centered title followed by a separator.
func printSection(w io.Writer, title string) {
	fmt.Fprintln(w, centered(title))
	printSeparator(w)
}

// clearPreviousLines erases the last n lines. It does nothing unless w is a
// terminal.
func clearPreviousLines(w io.Writer, tty bool, n int) {
	if !tty {
		return
	}
	for ; n > 0; n-- {
		fmt.Fprint(w, "\x1b[1A\x1b[2K\r")
	}
}
