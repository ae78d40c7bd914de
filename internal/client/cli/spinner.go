package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
)

// spinnerIndicator draws a one-line spinner with a message. On a terminal
// every tick redraws the line in place; otherwise the message is printed
// once and ticks are silent.
type spinnerIndicator struct {
	w      io.Writer
	tty    bool
	msg    string
	frames []string
	frame  int
	drawn  bool
}

func newSpinner(w io.Writer, tty bool, msg string) *spinnerIndicator {
	return &spinnerIndicator{w: w, tty: tty, msg: msg, frames: spinner.Line.Frames}
}

func (s *spinnerIndicator) Tick() {
	if !s.tty {
		if !s.drawn {
			fmt.Fprintln(s.w, s.msg)
			s.drawn = true
		}
		return
	}
	fmt.Fprintf(s.w, "\r%s %s", s.frames[s.frame%len(s.frames)], s.msg)
	s.frame++
	s.drawn = true
}

func (s *spinnerIndicator) Stop() {
	if s.tty && s.drawn {
		fmt.Fprint(s.w, "\r\x1b[2K")
	}
	s.drawn = false
}
