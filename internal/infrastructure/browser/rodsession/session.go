package rodsession

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"page-helper/internal/application/port/output"
	"page-helper/internal/domain/entity"
)

var _ output.SessionPort = (*Session)(nil)

// ErrInvalidURL rejects navigation targets outside http/https.
var ErrInvalidURL = errors.New("navigation URL must use http or https")

type Config struct {
	Headless   bool
	SlowMotion time.Duration
	NoSandbox  bool
	DevTools   bool
	Trace      bool
	// IdleWait bounds the network-idle settle after navigation.
	IdleWait time.Duration
}

func DefaultConfig() Config {
	return Config{
		Headless:   true,
		SlowMotion: 0,
		NoSandbox:  false,
		DevTools:   false,
		Trace:      false,
		IdleWait:   5 * time.Second,
	}
}

// Session owns one launched browser and one page. It is not safe for
// concurrent use; one logical caller drives one session at a time.
type Session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
	idleWait time.Duration
	closed   bool
}

func New(ctx context.Context, cfg Config) (*Session, error) {
	if cfg.IdleWait <= 0 {
		cfg.IdleWait = 5 * time.Second
	}

	l := launcher.New().
		Headless(cfg.Headless).
		Devtools(cfg.DevTools).
		NoSandbox(cfg.NoSandbox).
		Delete("use-mock-keychain")

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().
		ControlURL(controlURL).
		Trace(cfg.Trace).
		SlowMotion(cfg.SlowMotion).
		Context(ctx)
	if err := browser.Connect(); err != nil {
		l.Kill()
		l.Cleanup()
		return nil, fmt.Errorf("connect browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		_ = browser.Close()
		l.Kill()
		l.Cleanup()
		return nil, fmt.Errorf("open page: %w", err)
	}

	return &Session{
		browser:  browser,
		launcher: l,
		page:     page,
		idleWait: cfg.IdleWait,
	}, nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: got %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return nil
}

func (s *Session) Navigate(ctx context.Context, rawURL string) error {
	if err := validateURL(rawURL); err != nil {
		return err
	}
	page := s.page.Context(ctx)
	if err := page.Navigate(rawURL); err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("page load: %w", err)
	}
	// Give late XHR-driven rendering a moment to settle; not an error if it
	// never goes fully idle.
	_ = page.WaitIdle(s.idleWait)
	return nil
}

// Find performs one non-polling lookup. The interactor owns all waiting, so
// the read uses a sleeper that gives up on the first miss.
func (s *Session) Find(ctx context.Context, loc entity.Locator) (output.ElementPort, error) {
	page := s.page.Context(ctx).Sleeper(rod.NotFoundSleeper)

	var el *rod.Element
	var err error
	if loc.Strategy == entity.StrategyXPath {
		el, err = page.ElementX(loc.Expr)
	} else {
		el, err = page.Element(loc.Expr)
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %s: %v", entity.ErrNotFound, loc, err)
	}
	return &element{el: el}, nil
}

func (s *Session) FindAll(ctx context.Context, loc entity.Locator) ([]output.ElementPort, error) {
	page := s.page.Context(ctx).Sleeper(rod.NotFoundSleeper)

	var els rod.Elements
	var err error
	if loc.Strategy == entity.StrategyXPath {
		els, err = page.ElementsX(loc.Expr)
	} else {
		els, err = page.Elements(loc.Expr)
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("query %s: %v", loc, err)
	}
	result := make([]output.ElementPort, 0, len(els))
	for _, el := range els {
		result = append(result, &element{el: el})
	}
	return result, nil
}

func (s *Session) Eval(ctx context.Context, script string, args ...any) (string, error) {
	res, err := s.page.Context(ctx).Eval(script, args...)
	if err != nil {
		return "", mapElementErr(err)
	}
	return res.Value.JSON("", ""), nil
}

func (s *Session) ReadyState(ctx context.Context) (string, error) {
	res, err := s.page.Context(ctx).Eval(`() => document.readyState`)
	if err != nil {
		return "", fmt.Errorf("read document.readyState: %w", err)
	}
	return res.Value.Str(), nil
}

// PressEnter sends a real keydown/keyup pair so default actions like form
// submission fire, unlike CDP text insertion.
func (s *Session) PressEnter(ctx context.Context) error {
	if err := s.page.Context(ctx).KeyActions().Press(input.Enter).Do(); err != nil {
		return fmt.Errorf("press enter: %w", err)
	}
	return nil
}

func (s *Session) CurrentURL() string {
	info, err := s.page.Info()
	if err != nil {
		return ""
	}
	return info.URL
}

func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.browser != nil {
		_ = s.browser.Close()
	}
	if s.launcher != nil {
		s.launcher.Kill()
		s.launcher.Cleanup()
	}
}
