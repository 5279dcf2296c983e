package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bft-labs/mdmedium/internal/domain"
	"github.com/bft-labs/mdmedium/internal/ports"
)

// LinePrompter implements ports.Prompter over plain line input: numbered
// menus and y/n questions. It serves piped input, where no terminal is
// available for arrow-key menus.
type LinePrompter struct {
	in        *bufio.Reader
	out       io.Writer
	presenter ports.Presenter
}

// NewLinePrompter creates a prompter reading answers from in and writing
// questions to out. Rejected answers are reported through presenter.
func NewLinePrompter(in io.Reader, out io.Writer, presenter ports.Presenter) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out, presenter: presenter}
}

// Input prints label and returns the trimmed answer. A final answer
// without a newline is accepted; an empty read at end of input is io.EOF.
func (p *LinePrompter) Input(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Select lists options numbered from 1 and returns the chosen index.
// An empty answer picks the first option.
func (p *LinePrompter) Select(label string, options []string) (int, error) {
	for {
		fmt.Fprintln(p.out, label)
		for i, o := range options {
			fmt.Fprintf(p.out, "  %d) %s\n", i+1, o)
		}

		answer, err := p.Input(fmt.Sprintf("Choice [1-%d]", len(options)))
		if err != nil {
			return 0, err
		}
		if answer == "" {
			return 0, nil
		}

		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		p.presenter.Warn(fmt.Sprintf("%v: %q is not a choice", domain.ErrInvalidInput, answer))
	}
}

// Confirm asks until the answer is y, yes, n, no or empty.
func (p *LinePrompter) Confirm(label string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	for {
		answer, err := p.Input(fmt.Sprintf("%s [%s]", label, hint))
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		p.presenter.Warn(fmt.Sprintf("%v: answer y or n", domain.ErrInvalidInput))
	}
}

var _ ports.Prompter = (*LinePrompter)(nil)
