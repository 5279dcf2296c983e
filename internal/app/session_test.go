package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSession(t *testing.T, f *fixture, input string) (*bytes.Buffer, error) {
	t.Helper()

	var out bytes.Buffer
	s := newTestSession(f, input, &out)
	return &out, s.Run(context.Background())
}

func newTestSession(f *fixture, input string, out *bytes.Buffer) *Session {
	prompter := NewLinePrompter(strings.NewReader(input), out, f.presenter)
	return NewSession(f.converter, f.store, f.presenter, prompter, mockLogger{}, out)
}

func hasMessage(messages []string, substr string) bool {
	for _, m := range messages {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

func TestSession_SaveThenExit(t *testing.T) {
	f := newFixture(t, ConverterConfig{})
	src := f.writeSource(t, "post.md", "# Post\n")

	out, err := runSession(t, f, src+"\n1\n2\n")
	require.NoError(t, err)

	assert.True(t, f.outputExists("post_medium.txt"))
	assert.Empty(t, f.presenter.Displayed())
	assert.Contains(t, out.String(), "Enter the path to your markdown file")
	assert.Contains(t, out.String(), "1) Process another markdown file")
	assert.True(t, hasMessage(f.presenter.Messages(), "Thank you for using mdmedium"))
}

func TestSession_DisplayThenExit(t *testing.T) {
	f := newFixture(t, ConverterConfig{})
	src := f.writeSource(t, "post.md", "# Post\n")

	out, err := runSession(t, f, src+"\n2\n3\n")
	require.NoError(t, err)

	assert.Len(t, f.presenter.Displayed(), 1)
	assert.False(t, f.outputExists("post_medium.txt"))
	assert.Contains(t, out.String(), "1) Save to file as well")
}

func TestSession_DisplayThenSaveAsWell(t *testing.T) {
	f := newFixture(t, ConverterConfig{})
	src := f.writeSource(t, "post.md", "# Post\n- item\n")

	_, err := runSession(t, f, src+"\n2\n1\n2\n")
	require.NoError(t, err)

	saved := f.readOutput(t, "post_medium.txt")
	assert.Contains(t, saved, "• item")
	assert.NotContains(t, saved, "\x1b")
	assert.True(t, hasMessage(f.presenter.Messages(), "Also saved to file"))
}

func TestSession_ProcessAnother(t *testing.T) {
	f := newFixture(t, ConverterConfig{})
	a := f.writeSource(t, "a.md", "# A\n")
	b := f.writeSource(t, "b.md", "# B\n")

	_, err := runSession(t, f, a+"\n1\n1\n"+b+"\n1\n2\n")
	require.NoError(t, err)

	assert.True(t, f.outputExists("a_medium.txt"))
	assert.True(t, f.outputExists("b_medium.txt"))
}

func TestSession_MissingFileReprompts(t *testing.T) {
	f := newFixture(t, ConverterConfig{})
	src := f.writeSource(t, "post.md", "# Post\n")

	_, err := runSession(t, f, "/does/not/exist.md\n"+src+"\n1\n2\n")
	require.NoError(t, err)

	assert.True(t, hasMessage(f.presenter.Messages(), "File not found"))
	assert.True(t, f.outputExists("post_medium.txt"))
}

func TestSession_NonMarkdownExtension(t *testing.T) {
	f := newFixture(t, ConverterConfig{})
	txt := f.writeSource(t, "notes.txt", "# Notes\n")

	t.Run("declined then accepted", func(t *testing.T) {
		_, err := runSession(t, f, txt+"\n\n"+txt+"\ny\n1\n2\n")
		require.NoError(t, err)

		assert.True(t, hasMessage(f.presenter.Messages(), "doesn't have .md or .markdown extension"))
		assert.True(t, f.outputExists("notes_medium.txt"))
	})
}

func TestSession_InvalidChoiceReprompts(t *testing.T) {
	f := newFixture(t, ConverterConfig{})
	src := f.writeSource(t, "post.md", "# Post\n")

	_, err := runSession(t, f, src+"\n9\nabc\n1\n2\n")
	require.NoError(t, err)

	assert.True(t, hasMessage(f.presenter.Messages(), "\"9\" is not a choice"))
	assert.True(t, f.outputExists("post_medium.txt"))
}

func TestSession_EndOfInput(t *testing.T) {
	f := newFixture(t, ConverterConfig{})

	_, err := runSession(t, f, "")
	assert.NoError(t, err)
	assert.True(t, hasMessage(f.presenter.Messages(), "banner"))
}

func TestSession_AnswerWithoutTrailingNewline(t *testing.T) {
	f := newFixture(t, ConverterConfig{})
	src := f.writeSource(t, "post.md", "# Post\n")

	_, err := runSession(t, f, src+"\n1\n2")
	require.NoError(t, err)
	assert.True(t, f.outputExists("post_medium.txt"))
}

func TestSession_ConfiguredTags(t *testing.T) {
	f := newFixture(t, ConverterConfig{Tags: []string{"go", "writing"}})
	src := f.writeSource(t, "post.md", "# Post\n")

	_, err := runSession(t, f, src+"\n1\n2\n")
	require.NoError(t, err)

	assert.Contains(t, f.readOutput(t, "post_medium.txt"), "Tags: go, writing")
}

func TestSession_NilLogger(t *testing.T) {
	f := newFixture(t, ConverterConfig{})
	src := f.writeSource(t, "post.md", "# Post\n")

	var out bytes.Buffer
	prompter := NewLinePrompter(strings.NewReader("/does/not/exist.md\n"+src+"\n1\n2\n"), &out, f.presenter)
	s := NewSession(NewConverter(ConverterConfig{}, f.store, f.presenter, nil), f.store, f.presenter, prompter, nil, &out)

	require.NoError(t, s.Run(context.Background()))
	assert.True(t, f.outputExists("post_medium.txt"))
}

func TestSession_CanceledContext(t *testing.T) {
	f := newFixture(t, ConverterConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := newTestSession(f, "x\n", &bytes.Buffer{})
	assert.ErrorIs(t, s.Run(ctx), context.Canceled)
}
