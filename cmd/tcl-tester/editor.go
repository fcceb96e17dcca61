package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// LineEditor is a minimal raw-mode line editor: cursor movement, backspace,
// Ctrl-C to cancel the current line, Ctrl-D on an empty line to exit, and
// up/down arrow history. It has no completion popup: this dialect has no
// namespaces or foreign types to complete against.
type LineEditor struct {
	fd       int
	oldState *term.State

	history []string
}

func NewLineEditor() *LineEditor {
	return &LineEditor{fd: int(os.Stdin.Fd())}
}

func (e *LineEditor) enterRawMode() error {
	oldState, err := term.MakeRaw(e.fd)
	if err != nil {
		return err
	}
	e.oldState = oldState
	return nil
}

func (e *LineEditor) exitRawMode() {
	if e.oldState != nil {
		term.Restore(e.fd, e.oldState)
		e.oldState = nil
	}
}

// errEOF is returned by ReadLine when the user presses Ctrl-D on an empty
// line.
var errEOF = fmt.Errorf("eof")

// ReadLine writes prompt to stdout and reads one line of input. It returns
// errEOF if the user asked to end the session.
func (e *LineEditor) ReadLine(prompt string) (string, error) {
	fmt.Print(prompt)

	line := []rune{}
	cursor := 0
	histIdx := len(e.history)

	redraw := func() {
		fmt.Print("\r\x1b[K", prompt, string(line))
		if back := len(line) - cursor; back > 0 {
			fmt.Printf("\x1b[%dD", back)
		}
	}

	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return "", errEOF
		}
		c := buf[0]

		switch c {
		case '\r', '\n':
			fmt.Print("\r\n")
			return string(line), nil
		case 3: // Ctrl-C: cancel this line, start a fresh one
			fmt.Print("^C\r\n")
			return "", nil
		case 4: // Ctrl-D
			if len(line) == 0 {
				fmt.Print("\r\n")
				return "", errEOF
			}
		case 127, 8: // Backspace
			if cursor > 0 {
				line = append(line[:cursor-1], line[cursor:]...)
				cursor--
				redraw()
			}
		case 27: // escape sequence, e.g. arrow keys
			var seq [2]byte
			if n, _ := os.Stdin.Read(seq[:1]); n == 0 {
				continue
			}
			if seq[0] != '[' {
				continue
			}
			if n, _ := os.Stdin.Read(seq[1:2]); n == 0 {
				continue
			}
			switch seq[1] {
			case 'C': // right
				if cursor < len(line) {
					cursor++
					redraw()
				}
			case 'D': // left
				if cursor > 0 {
					cursor--
					redraw()
				}
			case 'A': // up: older history
				if histIdx > 0 {
					histIdx--
					line = []rune(e.history[histIdx])
					cursor = len(line)
					redraw()
				}
			case 'B': // down: newer history
				if histIdx < len(e.history)-1 {
					histIdx++
					line = []rune(e.history[histIdx])
					cursor = len(line)
					redraw()
				} else if histIdx == len(e.history)-1 {
					histIdx++
					line = nil
					cursor = 0
					redraw()
				}
			}
		default:
			if c >= 32 {
				line = append(line[:cursor], append([]rune{rune(c)}, line[cursor:]...)...)
				cursor++
				redraw()
			}
		}
	}
}

func (e *LineEditor) remember(line string) {
	if line == "" {
		return
	}
	e.history = append(e.history, line)
}
