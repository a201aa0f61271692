package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the operator questions. The tool is an interactive
// operator aid; there is no non-interactive mode.
type Prompter interface {
	// Confirm asks a yes/no question. Only "y" or "Y" count as yes;
	// anything else, including EOF, is a decline.
	Confirm(question string) (bool, error)
	// Ask reads one line of free text.
	Ask(question string) (string, error)
}

// Term implements Prompter over a reader/writer pair.
type Term struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerm(in io.Reader, out io.Writer) *Term {
	return &Term{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (t *Term) Confirm(question string) (bool, error) {
	fmt.Fprintf(t.out, "%s [y/N] ", question)
	line, err := t.readLine()
	if err != nil {
		return false, err
	}
	return line == "y" || line == "Y", nil
}

func (t *Term) Ask(question string) (string, error) {
	fmt.Fprintf(t.out, "%s ", question)
	return t.readLine()
}

func (t *Term) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
