package terminal

import (
	"errors"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	surveyterm "github.com/AlecAivazis/survey/v2/terminal"

	"github.com/bft-labs/mdmedium/internal/ports"
)

// SurveyPrompter implements ports.Prompter with arrow-key menus. It needs a
// real terminal on both ends; use app.NewLinePrompter for pipes.
type SurveyPrompter struct {
	opts []survey.AskOpt
}

// NewSurveyPrompter creates a prompter reading keys from in and drawing
// on out.
func NewSurveyPrompter(in surveyterm.FileReader, out surveyterm.FileWriter) *SurveyPrompter {
	return &SurveyPrompter{opts: []survey.AskOpt{survey.WithStdio(in, out, out)}}
}

// Input asks for a line of text.
func (p *SurveyPrompter) Input(label string) (string, error) {
	var answer string
	if err := survey.AskOne(&survey.Input{Message: label}, &answer, p.opts...); err != nil {
		return "", promptError(err)
	}
	return strings.TrimSpace(answer), nil
}

// Select shows options as a menu with the first one highlighted.
func (p *SurveyPrompter) Select(label string, options []string) (int, error) {
	q := &survey.Select{Message: label, Options: options}
	if len(options) > 0 {
		q.Default = options[0]
	}

	var index int
	if err := survey.AskOne(q, &index, p.opts...); err != nil {
		return 0, promptError(err)
	}
	return index, nil
}

// Confirm asks a yes/no question.
func (p *SurveyPrompter) Confirm(label string, def bool) (bool, error) {
	answer := def
	if err := survey.AskOne(&survey.Confirm{Message: label, Default: def}, &answer, p.opts...); err != nil {
		return false, promptError(err)
	}
	return answer, nil
}

// promptError maps Ctrl-C and Ctrl-D to io.EOF so the session ends the
// same way it does when piped input runs out.
func promptError(err error) error {
	if errors.Is(err, surveyterm.InterruptErr) || errors.Is(err, io.EOF) {
		return io.EOF
	}
	return err
}

var _ ports.Prompter = (*SurveyPrompter)(nil)
