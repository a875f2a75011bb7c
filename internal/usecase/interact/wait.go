package interact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"page-helper/internal/domain/entity"
)

// condition is re-evaluated on every poll tick. (false, nil) keeps polling,
// as do entity.ErrNotFound and entity.ErrStale; any other error aborts.
type condition func(ctx context.Context) (bool, error)

// awaitCondition is the single polling primitive behind every wait in this
// package. It always terminates within timeout plus one poll interval. At
// expiry the last observation decides the sentinel: a node that was never
// found yields ErrNotFound, everything else ErrTimeout.
func (i *Interactor) awaitCondition(ctx context.Context, timeout, poll time.Duration, cond condition) error {
	if timeout <= 0 {
		timeout = i.cfg.LocateTimeout
	}
	if poll <= 0 {
		poll = i.cfg.PollInterval
	}

	deadline := time.Now().Add(timeout)
	var lastErr error
	for {
		ok, err := cond(ctx)
		switch {
		case err == nil && ok:
			return nil
		case err == nil:
			lastErr = entity.ErrTimeout
		case errors.Is(err, entity.ErrNotFound) || errors.Is(err, entity.ErrStale):
			lastErr = err
		default:
			return err
		}

		if !time.Now().Before(deadline) {
			break
		}
		select {
		case <-time.After(poll):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if errors.Is(lastErr, entity.ErrNotFound) {
		return fmt.Errorf("%w (waited %s)", entity.ErrNotFound, timeout)
	}
	return fmt.Errorf("%w (waited %s)", entity.ErrTimeout, timeout)
}

// WaitForTextContains blocks until the node's rendered text contains
// substring. Timeout propagates.
func (i *Interactor) WaitForTextContains(ctx context.Context, loc entity.Locator, substring string) error {
	err := i.awaitCondition(ctx, 0, 0, func(ctx context.Context) (bool, error) {
		el, err := i.session.Find(ctx, loc)
		if err != nil {
			return false, err
		}
		text, err := el.Text()
		if err != nil {
			return false, err
		}
		return strings.Contains(text, substring), nil
	})
	if err != nil {
		return fmt.Errorf("wait for text %q in %s: %w", substring, loc, err)
	}
	return nil
}

// WaitForAttributeEquals blocks until the named attribute's string value
// equals value. A missing attribute keeps polling.
func (i *Interactor) WaitForAttributeEquals(ctx context.Context, loc entity.Locator, attribute, value string) error {
	err := i.awaitCondition(ctx, 0, 0, func(ctx context.Context) (bool, error) {
		el, err := i.session.Find(ctx, loc)
		if err != nil {
			return false, err
		}
		got, ok, err := el.Attribute(attribute)
		if err != nil {
			return false, err
		}
		return ok && got == value, nil
	})
	if err != nil {
		return fmt.Errorf("wait for %s[%s=%q]: %w", loc, attribute, value, err)
	}
	return nil
}

// WaitUntilInvisible blocks until no matching node is visible. An already
// absent locator satisfies the wait on the first tick.
func (i *Interactor) WaitUntilInvisible(ctx context.Context, loc entity.Locator, timeout time.Duration) error {
	err := i.awaitCondition(ctx, timeout, 0, func(ctx context.Context) (bool, error) {
		els, err := i.session.FindAll(ctx, loc)
		if err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				return true, nil
			}
			return false, err
		}
		if len(els) == 0 {
			return true, nil
		}
		for _, el := range els {
			visible, err := el.Visible()
			if err != nil {
				if errors.Is(err, entity.ErrStale) {
					// Detached while we looked at it, so not visible.
					continue
				}
				return false, err
			}
			if visible {
				return false, nil
			}
		}
		return true, nil
	})
	if err != nil {
		return fmt.Errorf("wait until invisible %s: %w", loc, err)
	}
	return nil
}

// WaitForDocumentReady blocks until the document reports a fully loaded
// state. Transient evaluation failures during navigation keep polling.
func (i *Interactor) WaitForDocumentReady(ctx context.Context, timeout time.Duration) error {
	err := i.awaitCondition(ctx, timeout, 0, func(ctx context.Context) (bool, error) {
		state, err := i.session.ReadyState(ctx)
		if err != nil {
			return false, nil
		}
		return state == "complete", nil
	})
	if err != nil {
		return fmt.Errorf("wait for document ready: %w", err)
	}
	return nil
}
