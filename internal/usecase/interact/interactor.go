package interact

import (
	"context"
	"fmt"
	"time"

	"page-helper/internal/application/port/input"
	"page-helper/internal/application/port/output"
	"page-helper/internal/domain/entity"
)

var _ input.Interactor = (*Interactor)(nil)

// Interactor wraps raw element location and interaction with waiting,
// retrying and scripted fallbacks so page objects do not hand-roll retry
// logic. One Interactor drives one session; methods must not be called
// concurrently against the same session.
type Interactor struct {
	session output.SessionPort
	log     output.LoggerPort
	cfg     Config
}

type Config struct {
	// LocateTimeout bounds every locate-style wait unless the caller passes
	// an explicit timeout.
	LocateTimeout time.Duration
	PollInterval  time.Duration

	SafeClickRetries int
	SafeClickDelay   time.Duration

	ForceClickRetries int
	// ForceClickDelay spaces native force-click attempts and also bounds the
	// per-attempt wait for clickability. Animation settling is short and
	// bounded, so the delay stays fixed rather than exponential.
	ForceClickDelay time.Duration

	// OverlayLocator matches the known blocking overlay ForceClick waits out
	// before touching the target.
	OverlayLocator entity.Locator
	OverlayTimeout time.Duration

	// ConsentLocator matches the cookie-consent accept control by its
	// visible label.
	ConsentLocator      entity.Locator
	ConsentProbeTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		LocateTimeout:       10 * time.Second,
		PollInterval:        100 * time.Millisecond,
		SafeClickRetries:    3,
		SafeClickDelay:      300 * time.Millisecond,
		ForceClickRetries:   3,
		ForceClickDelay:     200 * time.Millisecond,
		OverlayLocator:      entity.CSS(".modal-backdrop, .loading-overlay, [data-blocking-overlay]"),
		OverlayTimeout:      10 * time.Second,
		ConsentLocator:      entity.XPath(`//button[contains(., 'Accept') or contains(., 'I agree') or contains(., 'Got it')]`),
		ConsentProbeTimeout: 2 * time.Second,
	}
}

func New(session output.SessionPort, log output.LoggerPort, cfg Config) *Interactor {
	def := DefaultConfig()
	if cfg.LocateTimeout <= 0 {
		cfg.LocateTimeout = def.LocateTimeout
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = def.PollInterval
	}
	if cfg.SafeClickRetries <= 0 {
		cfg.SafeClickRetries = def.SafeClickRetries
	}
	if cfg.SafeClickDelay <= 0 {
		cfg.SafeClickDelay = def.SafeClickDelay
	}
	if cfg.ForceClickRetries <= 0 {
		cfg.ForceClickRetries = def.ForceClickRetries
	}
	if cfg.ForceClickDelay <= 0 {
		cfg.ForceClickDelay = def.ForceClickDelay
	}
	if cfg.OverlayTimeout <= 0 {
		cfg.OverlayTimeout = def.OverlayTimeout
	}
	if cfg.ConsentProbeTimeout <= 0 {
		cfg.ConsentProbeTimeout = def.ConsentProbeTimeout
	}
	return &Interactor{
		session: session,
		log:     log.WithField("component", "interactor"),
		cfg:     cfg,
	}
}

func (i *Interactor) Navigate(ctx context.Context, url string) error {
	if err := i.session.Navigate(ctx, url); err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	return nil
}

// LocateVisible polls for a node matching loc that is rendered visible.
// Zero matches after the full wait yields ErrNotFound, a match that never
// becomes visible yields ErrTimeout.
func (i *Interactor) LocateVisible(ctx context.Context, loc entity.Locator, timeout time.Duration) (output.ElementPort, error) {
	var found output.ElementPort
	err := i.awaitCondition(ctx, timeout, 0, func(ctx context.Context) (bool, error) {
		el, err := i.session.Find(ctx, loc)
		if err != nil {
			return false, err
		}
		visible, err := el.Visible()
		if err != nil {
			return false, err
		}
		if !visible {
			return false, nil
		}
		found = el
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("locate visible %s: %w", loc, err)
	}
	return found, nil
}

// LocateClickable is LocateVisible with the stronger predicate that the node
// is enabled and not obscured by another element.
func (i *Interactor) LocateClickable(ctx context.Context, loc entity.Locator, timeout time.Duration) (output.ElementPort, error) {
	var found output.ElementPort
	err := i.awaitCondition(ctx, timeout, 0, func(ctx context.Context) (bool, error) {
		el, err := i.session.Find(ctx, loc)
		if err != nil {
			return false, err
		}
		ok, err := el.Interactable()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		found = el
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("locate clickable %s: %w", loc, err)
	}
	return found, nil
}

func (i *Interactor) Hover(ctx context.Context, loc entity.Locator) error {
	el, err := i.LocateVisible(ctx, loc, i.cfg.LocateTimeout)
	if err != nil {
		return fmt.Errorf("hover %s: %w", loc, err)
	}
	if err := el.Hover(); err != nil {
		return fmt.Errorf("hover %s: %w", loc, err)
	}
	return nil
}

// Type locates the field, clears its current content and sends text literally.
func (i *Interactor) Type(ctx context.Context, loc entity.Locator, text string) error {
	el, err := i.LocateVisible(ctx, loc, i.cfg.LocateTimeout)
	if err != nil {
		return fmt.Errorf("type into %s: %w", loc, err)
	}
	if err := el.Clear(); err != nil {
		i.log.Debug("clearing field failed, typing anyway", "locator", loc.String(), "error", err)
	}
	if err := el.Input(text); err != nil {
		return fmt.Errorf("type into %s: %w", loc, err)
	}
	return nil
}

// PressEnter sends Enter to whatever currently holds focus.
func (i *Interactor) PressEnter(ctx context.Context) error {
	if err := i.session.PressEnter(ctx); err != nil {
		return fmt.Errorf("press enter: %w", err)
	}
	return nil
}

// ScrollIntoView is best-effort: it scrolls so the node's top sits
// offsetPixels below the viewport top and logs failures instead of
// propagating them.
func (i *Interactor) ScrollIntoView(ctx context.Context, loc entity.Locator, offsetPixels int) {
	el, err := i.LocateVisible(ctx, loc, i.cfg.LocateTimeout)
	if err == nil {
		err = el.ScrollIntoView(offsetPixels)
	}
	if err != nil {
		i.log.Warn("scroll into view failed",
			"locator", loc.String(), "offset", offsetPixels, "error", err)
	}
}

// IsVisible reports whether a matching node is rendered right now. Any
// underlying failure is false, never an error.
func (i *Interactor) IsVisible(ctx context.Context, loc entity.Locator) bool {
	el, err := i.session.Find(ctx, loc)
	if err != nil {
		return false
	}
	visible, err := el.Visible()
	return err == nil && visible
}

// IsPresent reports whether any node matches loc, visible or not.
func (i *Interactor) IsPresent(ctx context.Context, loc entity.Locator) bool {
	_, err := i.session.Find(ctx, loc)
	return err == nil
}

func (i *Interactor) PageSnapshot(ctx context.Context) (*entity.PageContent, error) {
	title, html, err := i.session.PageHTML(ctx)
	if err != nil {
		return nil, fmt.Errorf("page snapshot: %w", err)
	}
	elements, err := i.session.UIElements(ctx)
	if err != nil {
		i.log.Debug("ui element summary unavailable", "error", err)
		elements = nil
	}
	return &entity.PageContent{
		URL:        i.session.CurrentURL(),
		Title:      title,
		HTML:       html,
		UIElements: elements,
	}, nil
}

func (i *Interactor) Screenshot(ctx context.Context) (*entity.Screenshot, error) {
	return i.session.Screenshot(ctx)
}
