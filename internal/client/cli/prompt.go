package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ErrInputClosed is returned by prompts once standard input is exhausted.
var ErrInputClosed = errors.New("input closed")

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// isTerminal is a test seam for terminal detection.
var isTerminal = func(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Prompter asks the user for input.
type Prompter interface {
	// Select shows items and returns the chosen index. An empty answer
	// picks def.
	Select(prompt string, items []string, def int) (int, error)
	// Text reads one trimmed line.
	Text(prompt string) (string, error)
	// Password reads a line without echo when attached to a terminal. The
	// caller should wipe the result.
	Password(prompt string) ([]byte, error)
}

// linePrompter is a line-oriented Prompter: choices are numbered and
// answered by number.
type linePrompter struct {
	reader *bufio.Reader
	w      io.Writer
	in     *os.File // used for masked input; nil when not a file
}

func newLinePrompter(in io.Reader, w io.Writer) *linePrompter {
	p := &linePrompter{reader: bufio.NewReader(in), w: w}
	if f, ok := in.(*os.File); ok {
		p.in = f
	}
	return p
}

// selectLines is how many lines Select leaves on screen for n items with a
// prompt.
func selectLines(n int) int { return n + 2 }

func (p *linePrompter) Select(prompt string, items []string, def int) (int, error) {
	if len(items) == 0 {
		return 0, errors.New("select: no items")
	}
	if def < 0 || def >= len(items) {
		def = 0
	}

	for {
		if prompt != "" {
			fmt.Fprintln(p.w, prompt)
		}
		for i, item := range items {
			fmt.Fprintf(p.w, "  %d) %s\n", i+1, item)
		}
		fmt.Fprintf(p.w, "Opción [%d]: ", def+1)

		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(items) {
			return n - 1, nil
		}
		for i, item := range items {
			if strings.EqualFold(line, item) {
				return i, nil
			}
		}
		fmt.Fprintln(p.w, "Opción no válida.")
	}
}

func (p *linePrompter) Text(prompt string) (string, error) {
	fmt.Fprintf(p.w, "%s: ", prompt)
	return p.readLine()
}

func (p *linePrompter) Password(prompt string) ([]byte, error) {
	fmt.Fprintf(p.w, "%s: ", prompt)

	if p.in == nil || !isTerminal(p.in.Fd()) {
		line, err := p.readLine()
		if err != nil {
			return nil, err
		}
		return []byte(line), nil
	}

	pw, err := readPassword(int(p.in.Fd()))
	fmt.Fprintln(p.w)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrInputClosed
		}
		return nil, err
	}
	return pw, nil
}

// readLine returns the next line without surrounding whitespace. A final
// line without a newline is still returned; EOF with nothing read is
// ErrInputClosed.
func (p *linePrompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if len(line) > 0 {
				return strings.TrimSpace(line), nil
			}
			return "", ErrInputClosed
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
