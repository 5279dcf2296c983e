package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	logAdapter "github.com/bft-labs/mdmedium/internal/adapters/log"
	"github.com/bft-labs/mdmedium/internal/domain"
	"github.com/bft-labs/mdmedium/internal/ports"
)

// Session drives the interactive prompt loop: pick a file, pick an output
// method, convert, then decide what to do next.
type Session struct {
	converter *Converter
	store     ports.DocumentStore
	presenter ports.Presenter
	prompter  ports.Prompter
	logger    ports.Logger

	out io.Writer
}

// NewSession creates a session asking questions through prompter and
// writing separators to out.
func NewSession(
	converter *Converter,
	store ports.DocumentStore,
	presenter ports.Presenter,
	prompter ports.Prompter,
	logger ports.Logger,
	out io.Writer,
) *Session {
	if logger == nil {
		logger = logAdapter.NewNoopLogger()
	}
	return &Session{
		converter: converter,
		store:     store,
		presenter: presenter,
		prompter:  prompter,
		logger:    logger,
		out:       out,
	}
}

const (
	choiceSaveAlso = "Save to file as well"
	choiceAnother  = "Process another markdown file"
	choiceExit     = "Exit the application"
)

// Run loops until the user exits, input ends or ctx is canceled.
// Reaching the end of input is a normal exit.
func (s *Session) Run(ctx context.Context) error {
	s.presenter.Banner()

	err := s.loop(ctx)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err == nil {
		s.farewell()
	}
	return err
}

func (s *Session) loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		path, err := s.askFilePath()
		if err != nil {
			return err
		}

		mode, err := s.askOutputMethod()
		if err != nil {
			return err
		}

		req := Request{Path: path, Mode: mode}
		result, err := s.converter.Convert(ctx, req)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			s.logger.Error("conversion failed", ports.String("path", path), ports.Err(err))
			s.presenter.Error(err.Error())
			continue
		}

		fmt.Fprintln(s.out)
		s.presenter.Success("🎉 File processed successfully!")

		again, err := s.askNext(ctx, path, mode, result)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}

		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, strings.Repeat("─", 60))
	}
}

// askNext returns true to process another file.
func (s *Session) askNext(ctx context.Context, path string, mode Mode, result Result) (bool, error) {
	choices := []string{choiceAnother, choiceExit}
	if mode == ModeDisplay {
		choices = []string{choiceSaveAlso, choiceAnother, choiceExit}
	}

	choice, err := s.prompter.Select("What would you like to do next?", choices)
	if err != nil {
		return false, err
	}

	if choices[choice] == choiceSaveAlso {
		if _, err := s.converter.Save(ctx, path, result.Conversion); err != nil {
			s.presenter.Error(err.Error())
		} else {
			s.presenter.Success("✅ Also saved to file!")
		}
		choices = []string{choiceAnother, choiceExit}
		if choice, err = s.prompter.Select("What would you like to do next?", choices); err != nil {
			return false, err
		}
	}

	return choices[choice] == choiceAnother, nil
}

func (s *Session) askFilePath() (string, error) {
	s.presenter.Section("📝 Select your markdown file")

	for {
		path, err := s.prompter.Input("Enter the path to your markdown file")
		if err != nil {
			return "", err
		}
		if path == "" {
			continue
		}

		if !s.store.Exists(path) {
			s.presenter.Error("File not found. Please try again.")
			continue
		}

		if domain.IsMarkdownPath(path) {
			s.presenter.Info("✅ Found markdown file: " + path)
			return path, nil
		}

		s.presenter.Warn("Warning: File doesn't have .md or .markdown extension")
		ok, err := s.prompter.Confirm("Continue anyway?", false)
		if err != nil {
			return "", err
		}
		if ok {
			return path, nil
		}
	}
}

func (s *Session) askOutputMethod() (Mode, error) {
	s.presenter.Section("📤 Choose output method")

	choice, err := s.prompter.Select("How would you like to view the formatted content?",
		[]string{"Save to file", "Display in terminal"})
	if err != nil {
		return ModeSave, err
	}
	if choice == 1 {
		return ModeDisplay, nil
	}
	return ModeSave, nil
}

func (s *Session) farewell() {
	fmt.Fprintln(s.out)
	s.presenter.Success("👋 Thank you for using mdmedium!")
	s.presenter.Info("Happy writing!")
}
