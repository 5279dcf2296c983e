package app

import (
	"context"
	"fmt"
	"time"

	logAdapter "github.com/bft-labs/mdmedium/internal/adapters/log"
	"github.com/bft-labs/mdmedium/internal/domain"
	"github.com/bft-labs/mdmedium/internal/markdown"
	"github.com/bft-labs/mdmedium/internal/ports"
)

// Mode selects what happens to a converted document.
type Mode int

const (
	// ModeSave writes the clean output to disk.
	ModeSave Mode = iota
	// ModeDisplay prints the styled output to the terminal.
	ModeDisplay
)

// String returns a human-readable representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeSave:
		return "save"
	case ModeDisplay:
		return "display"
	default:
		return "unknown"
	}
}

// ConverterConfig contains the defaults applied to every conversion.
type ConverterConfig struct {
	// DefaultTitle is used when neither the request nor the document
	// provides a title. Default: "Untitled Post"
	DefaultTitle string

	// Tags are used when the request carries none.
	Tags []string

	// FrontMatter enables reading title and tags from a leading
	// front matter block, which is then removed from the body.
	FrontMatter bool

	// PreviewLines is how many saved lines are echoed after a save.
	PreviewLines int
}

// Request describes one conversion.
type Request struct {
	Path string
	Mode Mode

	// Title overrides every other title source when set.
	Title string

	// Tags override the configured tags when non-nil.
	Tags []string
}

// Result is the outcome of a successful conversion.
type Result struct {
	domain.Conversion

	// OutputPath is set when the clean output was saved.
	OutputPath string
}

// Converter reads Markdown files, formats them for Medium and hands the
// result to the presenter or the document store.
type Converter struct {
	config    ConverterConfig
	store     ports.DocumentStore
	presenter ports.Presenter
	logger    ports.Logger
}

// NewConverter creates a converter with the given dependencies.
func NewConverter(
	config ConverterConfig,
	store ports.DocumentStore,
	presenter ports.Presenter,
	logger ports.Logger,
) *Converter {
	if config.DefaultTitle == "" {
		config.DefaultTitle = domain.DefaultTitle
	}
	if logger == nil {
		logger = logAdapter.NewNoopLogger()
	}
	return &Converter{
		config:    config,
		store:     store,
		presenter: presenter,
		logger:    logger,
	}
}

// Prepare reads the document and produces both renderings without
// displaying or saving anything.
func (c *Converter) Prepare(ctx context.Context, req Request) (domain.Conversion, error) {
	doc, err := c.store.Read(ctx, req.Path)
	if err != nil {
		return domain.Conversion{}, err
	}
	return c.Format(doc, req)
}

// Format converts an already loaded document.
func (c *Converter) Format(doc domain.Document, req Request) (domain.Conversion, error) {
	body := doc.Text
	var meta markdown.FrontMatter

	if c.config.FrontMatter {
		var err error
		meta, body, err = markdown.SplitFrontMatter(doc.Text)
		if err != nil {
			return domain.Conversion{}, fmt.Errorf("%s: %w", doc.Path, err)
		}
	}

	title := req.Title
	if title == "" {
		title = meta.Title
	}
	if title == "" {
		title = markdown.TitleOrDefault(body, c.config.DefaultTitle)
	}

	tags := req.Tags
	if tags == nil {
		tags = meta.Tags
	}
	if len(tags) == 0 {
		tags = c.config.Tags
	}

	styled := markdown.FormatForMedium(body, title, tags)
	return domain.Conversion{
		Title:  title,
		Tags:   tags,
		Styled: styled,
		Clean:  markdown.StripStyling(styled),
	}, nil
}

// Convert runs one full conversion and reports it through the presenter.
func (c *Converter) Convert(ctx context.Context, req Request) (Result, error) {
	start := time.Now()

	c.presenter.Section("⚙️  Processing your markdown file")
	progress := c.presenter.StartProgress("Reading and formatting markdown...")

	conv, err := c.Prepare(ctx, req)
	if err != nil {
		progress.Stop("❌ Formatting failed")
		return Result{}, fmt.Errorf("convert %s: %w", req.Path, err)
	}
	progress.Stop("✅ Formatting complete!")

	result := Result{Conversion: conv}

	switch req.Mode {
	case ModeDisplay:
		c.presenter.Display(conv.Styled)
	default:
		path, err := c.Save(ctx, req.Path, conv)
		if err != nil {
			return Result{}, err
		}
		result.OutputPath = path
	}

	c.presenter.NextSteps(req.Mode == ModeDisplay)

	c.logger.Debug("converted document",
		ports.String("path", req.Path),
		ports.String("mode", req.Mode.String()),
		ports.String("title", conv.Title),
		ports.Any("tags", conv.Tags),
		ports.Duration("took", time.Since(start)),
	)
	return result, nil
}

// Save persists the clean rendering of conv and previews it.
func (c *Converter) Save(ctx context.Context, inputPath string, conv domain.Conversion) (string, error) {
	path, err := c.store.Save(ctx, inputPath, conv.Clean)
	if err != nil {
		return "", fmt.Errorf("save %s: %w", inputPath, err)
	}

	c.presenter.Success("✅ Successfully converted markdown to Medium format!")
	c.presenter.Preview(path, conv.Clean, c.config.PreviewLines)
	c.logger.Info("saved output", ports.String("input", inputPath), ports.String("output", path))
	return path, nil
}
