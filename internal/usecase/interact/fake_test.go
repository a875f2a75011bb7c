package interact

import (
	"context"
	"sync"
	"time"

	"page-helper/internal/application/port/output"
	"page-helper/internal/domain/entity"
)

// nopLogger satisfies output.LoggerPort for tests.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any)                        {}
func (nopLogger) Info(string, ...any)                         {}
func (nopLogger) Warn(string, ...any)                         {}
func (nopLogger) Error(string, ...any)                        {}
func (n nopLogger) WithField(string, any) output.LoggerPort   { return n }
func (n nopLogger) WithFields(map[string]any) output.LoggerPort { return n }
func (nopLogger) Close() error                                { return nil }

// fakeElement is a programmable ElementPort. Nil hooks default to a visible,
// interactable element whose actions succeed.
type fakeElement struct {
	mu sync.Mutex

	visibleFn      func() (bool, error)
	interactableFn func() (bool, error)
	clickFn        func() error
	scriptClickFn  func() error
	hoverFn        func() error
	clearFn        func() error
	inputFn        func(string) error
	textFn         func() (string, error)
	attrFn         func(string) (string, bool, error)
	scrollFn       func(int) error

	clicks       int
	clickTimes   []time.Time
	scriptClicks int
	hovers       int
	scrollCalls  []int
	inputs       []string
	cleared      int
}

var _ output.ElementPort = (*fakeElement)(nil)

func (f *fakeElement) Visible() (bool, error) {
	if f.visibleFn != nil {
		return f.visibleFn()
	}
	return true, nil
}

func (f *fakeElement) Interactable() (bool, error) {
	if f.interactableFn != nil {
		return f.interactableFn()
	}
	return true, nil
}

func (f *fakeElement) Click() error {
	f.mu.Lock()
	f.clicks++
	f.clickTimes = append(f.clickTimes, time.Now())
	f.mu.Unlock()
	if f.clickFn != nil {
		return f.clickFn()
	}
	return nil
}

func (f *fakeElement) ScriptClick() error {
	f.mu.Lock()
	f.scriptClicks++
	f.mu.Unlock()
	if f.scriptClickFn != nil {
		return f.scriptClickFn()
	}
	return nil
}

func (f *fakeElement) Hover() error {
	f.mu.Lock()
	f.hovers++
	f.mu.Unlock()
	if f.hoverFn != nil {
		return f.hoverFn()
	}
	return nil
}

func (f *fakeElement) Clear() error {
	f.mu.Lock()
	f.cleared++
	f.mu.Unlock()
	if f.clearFn != nil {
		return f.clearFn()
	}
	return nil
}

func (f *fakeElement) Input(text string) error {
	f.mu.Lock()
	f.inputs = append(f.inputs, text)
	f.mu.Unlock()
	if f.inputFn != nil {
		return f.inputFn(text)
	}
	return nil
}

func (f *fakeElement) Text() (string, error) {
	if f.textFn != nil {
		return f.textFn()
	}
	return "", nil
}

func (f *fakeElement) Attribute(name string) (string, bool, error) {
	if f.attrFn != nil {
		return f.attrFn(name)
	}
	return "", false, nil
}

func (f *fakeElement) ScrollIntoView(offset int) error {
	f.mu.Lock()
	f.scrollCalls = append(f.scrollCalls, offset)
	f.mu.Unlock()
	if f.scrollFn != nil {
		return f.scrollFn(offset)
	}
	return nil
}

// fakeSession is a programmable SessionPort. Nil hooks default to "nothing
// matches".
type fakeSession struct {
	findFn    func(loc entity.Locator) (output.ElementPort, error)
	findAllFn func(loc entity.Locator) ([]output.ElementPort, error)
	evalFn    func(script string, args ...any) (string, error)
	readyFn   func() (string, error)
	pageFn    func() (string, string, error)
	uiFn      func() ([]entity.UIElement, error)
	shotFn    func() (*entity.Screenshot, error)

	url          string
	enterPressed int
}

var _ output.SessionPort = (*fakeSession)(nil)

func (f *fakeSession) Find(_ context.Context, loc entity.Locator) (output.ElementPort, error) {
	if f.findFn != nil {
		return f.findFn(loc)
	}
	return nil, entity.ErrNotFound
}

func (f *fakeSession) FindAll(_ context.Context, loc entity.Locator) ([]output.ElementPort, error) {
	if f.findAllFn != nil {
		return f.findAllFn(loc)
	}
	return nil, entity.ErrNotFound
}

func (f *fakeSession) Eval(_ context.Context, script string, args ...any) (string, error) {
	if f.evalFn != nil {
		return f.evalFn(script, args...)
	}
	return "", nil
}

func (f *fakeSession) ReadyState(context.Context) (string, error) {
	if f.readyFn != nil {
		return f.readyFn()
	}
	return "complete", nil
}

func (f *fakeSession) Navigate(_ context.Context, url string) error {
	f.url = url
	return nil
}

func (f *fakeSession) CurrentURL() string { return f.url }

func (f *fakeSession) PressEnter(context.Context) error {
	f.enterPressed++
	return nil
}

func (f *fakeSession) PageHTML(context.Context) (string, string, error) {
	if f.pageFn != nil {
		return f.pageFn()
	}
	return "", "", nil
}

func (f *fakeSession) UIElements(context.Context) ([]entity.UIElement, error) {
	if f.uiFn != nil {
		return f.uiFn()
	}
	return nil, nil
}

func (f *fakeSession) Screenshot(context.Context) (*entity.Screenshot, error) {
	if f.shotFn != nil {
		return f.shotFn()
	}
	return &entity.Screenshot{Format: "jpeg"}, nil
}

func (f *fakeSession) Close() {}

// singleElementSession matches loc for every locator and returns el.
func singleElementSession(el output.ElementPort) *fakeSession {
	return &fakeSession{
		findFn: func(entity.Locator) (output.ElementPort, error) { return el, nil },
		findAllFn: func(entity.Locator) ([]output.ElementPort, error) {
			return []output.ElementPort{el}, nil
		},
	}
}

// fastConfig keeps test waits short while preserving the retry shapes.
func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.LocateTimeout = 200 * time.Millisecond
	cfg.PollInterval = 10 * time.Millisecond
	cfg.SafeClickDelay = 30 * time.Millisecond
	cfg.ForceClickDelay = 40 * time.Millisecond
	cfg.OverlayTimeout = 300 * time.Millisecond
	cfg.ConsentProbeTimeout = 100 * time.Millisecond
	return cfg
}

func newTestInteractor(session output.SessionPort, cfg Config) *Interactor {
	return New(session, nopLogger{}, cfg)
}
