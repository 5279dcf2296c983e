package app

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bft-labs/mdmedium/internal/adapters/fs"
	"github.com/bft-labs/mdmedium/internal/ports"
)

// mockLogger implements ports.Logger for testing.
type mockLogger struct{}

func (mockLogger) Debug(msg string, fields ...ports.Field) {}
func (mockLogger) Info(msg string, fields ...ports.Field)  {}
func (mockLogger) Warn(msg string, fields ...ports.Field)  {}
func (mockLogger) Error(msg string, fields ...ports.Field) {}

// recordingPresenter captures what would be shown to the user.
type recordingPresenter struct {
	mu        sync.Mutex
	displayed []string
	previews  []string
	messages  []string
	nextSteps []bool
}

func (p *recordingPresenter) record(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
}

func (p *recordingPresenter) Banner()              { p.record("banner") }
func (p *recordingPresenter) Section(title string) { p.record(title) }
func (p *recordingPresenter) Info(msg string)      { p.record(msg) }
func (p *recordingPresenter) Success(msg string)   { p.record(msg) }
func (p *recordingPresenter) Warn(msg string)      { p.record("warn: " + msg) }
func (p *recordingPresenter) Error(msg string)     { p.record("error: " + msg) }

func (p *recordingPresenter) Display(styled string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.displayed = append(p.displayed, styled)
}

func (p *recordingPresenter) Preview(path, clean string, lines int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.previews = append(p.previews, path)
}

func (p *recordingPresenter) NextSteps(displayed bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextSteps = append(p.nextSteps, displayed)
}

func (p *recordingPresenter) StartProgress(msg string) ports.Progress { return noopProgress{} }

func (p *recordingPresenter) Messages() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string{}, p.messages...)
}

func (p *recordingPresenter) Displayed() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string{}, p.displayed...)
}

func (p *recordingPresenter) Previews() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string{}, p.previews...)
}

type noopProgress struct{}

func (noopProgress) Stop(string) {}

type fixture struct {
	srcDir    string
	outDir    string
	store     *fs.DocumentFileStore
	presenter *recordingPresenter
	converter *Converter
}

func newFixture(t *testing.T, cfg ConverterConfig) *fixture {
	t.Helper()

	f := &fixture{
		srcDir:    t.TempDir(),
		outDir:    t.TempDir(),
		presenter: &recordingPresenter{},
	}
	f.store = fs.NewDocumentFileStore(f.outDir, "")
	f.converter = NewConverter(cfg, f.store, f.presenter, mockLogger{})
	return f
}

func (f *fixture) writeSource(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(f.srcDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func (f *fixture) readOutput(t *testing.T, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(f.outDir, name))
	if err != nil {
		t.Fatalf("read output %s: %v", name, err)
	}
	return string(data)
}

func (f *fixture) outputExists(name string) bool {
	_, err := os.Stat(filepath.Join(f.outDir, name))
	return err == nil
}
