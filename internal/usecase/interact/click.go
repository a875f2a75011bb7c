package interact

import (
	"context"
	"fmt"
	"time"

	"page-helper/internal/domain/entity"
)

// clickStrategy is one way of getting a click to land. Strategies run in
// order; the first success wins and the rest never execute.
type clickStrategy struct {
	name string
	run  func(ctx context.Context) error
}

func (i *Interactor) runChain(ctx context.Context, loc entity.Locator, chain []clickStrategy) error {
	var lastErr error
	for _, s := range chain {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.run(ctx); err != nil {
			lastErr = err
			i.log.Warn("click strategy failed",
				"strategy", s.name, "locator", loc.String(),
				"outcome", entity.OutcomeOf(err), "error", err)
			continue
		}
		i.log.Info("click landed", "strategy", s.name, "locator", loc.String())
		return nil
	}
	return lastErr
}

func (i *Interactor) nativeClick(ctx context.Context, loc entity.Locator, timeout time.Duration) error {
	el, err := i.LocateClickable(ctx, loc, timeout)
	if err != nil {
		return err
	}
	return el.Click()
}

func (i *Interactor) scriptedClick(ctx context.Context, loc entity.Locator) error {
	el, err := i.LocateVisible(ctx, loc, i.cfg.LocateTimeout)
	if err != nil {
		return err
	}
	return el.ScriptClick()
}

// nativeClickRetried waits for clickability (bounded by attemptTimeout) and
// dispatches a native click, up to attempts times with a fixed delay between
// tries. One log line per attempt.
func (i *Interactor) nativeClickRetried(loc entity.Locator, attempts int, delay, attemptTimeout time.Duration) clickStrategy {
	return clickStrategy{
		name: fmt.Sprintf("native-click-x%d", attempts),
		run: func(ctx context.Context) error {
			var lastErr error
			for n := 1; n <= attempts; n++ {
				err := i.nativeClick(ctx, loc, attemptTimeout)
				if err == nil {
					i.log.Info("native click attempt succeeded",
						"locator", loc.String(), "attempt", n)
					return nil
				}
				lastErr = err
				i.log.Warn("native click attempt failed",
					"locator", loc.String(), "attempt", n,
					"outcome", entity.OutcomeOf(err), "error", err)
				if n == attempts {
					break
				}
				select {
				case <-time.After(delay):
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return lastErr
		},
	}
}

func (i *Interactor) scriptedClickStrategy(loc entity.Locator) clickStrategy {
	return clickStrategy{
		name: "scripted-click",
		run:  func(ctx context.Context) error { return i.scriptedClick(ctx, loc) },
	}
}

// Click locates a clickable node and dispatches a native click; on any
// failure along that path it falls back to a single scripted click against a
// re-located visible node. Exactly one of the two paths executes. Failure of
// the fallback propagates.
func (i *Interactor) Click(ctx context.Context, loc entity.Locator) error {
	chain := []clickStrategy{
		i.nativeClickRetried(loc, 1, 0, i.cfg.LocateTimeout),
		i.scriptedClickStrategy(loc),
	}
	if err := i.runChain(ctx, loc, chain); err != nil {
		return fmt.Errorf("click %s: %w", loc, err)
	}
	return nil
}

// SafeClick retries the native path up to SafeClickRetries times with a
// fixed delay, then falls back to one scripted click. The final failure is
// swallowed by contract: callers get a bool, and the outcome is logged.
// Use Click or ForceClick when the caller must observe the failure.
func (i *Interactor) SafeClick(ctx context.Context, loc entity.Locator) bool {
	chain := []clickStrategy{
		i.nativeClickRetried(loc, i.cfg.SafeClickRetries, i.cfg.SafeClickDelay, i.cfg.LocateTimeout),
		i.scriptedClickStrategy(loc),
	}
	if err := i.runChain(ctx, loc, chain); err != nil {
		i.log.Error("safe click failed, swallowing",
			"locator", loc.String(), "outcome", entity.OutcomeOf(err), "error", err)
		return false
	}
	return true
}

// ForceClick pushes a click through transient obstructions: it waits out the
// configured blocking overlay (best-effort), scrolls the target into view
// with the given offset, hovers, then retries the native path with each
// attempt re-waiting for clickability inside the retry delay window. The
// scripted fallback's failure propagates, unlike SafeClick.
func (i *Interactor) ForceClick(ctx context.Context, loc entity.Locator, offsetPixels int) error {
	if i.cfg.OverlayLocator.Expr != "" {
		if err := i.WaitUntilInvisible(ctx, i.cfg.OverlayLocator, i.cfg.OverlayTimeout); err != nil {
			i.log.Warn("blocking overlay still visible, clicking anyway",
				"overlay", i.cfg.OverlayLocator.String(), "error", err)
		}
	}

	i.ScrollIntoView(ctx, loc, offsetPixels)

	if el, err := i.LocateVisible(ctx, loc, i.cfg.LocateTimeout); err == nil {
		if err := el.Hover(); err != nil {
			i.log.Warn("hover before force click failed",
				"locator", loc.String(), "error", err)
		}
	}

	chain := []clickStrategy{
		i.nativeClickRetried(loc, i.cfg.ForceClickRetries, i.cfg.ForceClickDelay, i.cfg.ForceClickDelay),
		i.scriptedClickStrategy(loc),
	}
	if err := i.runChain(ctx, loc, chain); err != nil {
		return fmt.Errorf("force click %s: %w", loc, err)
	}
	return nil
}
