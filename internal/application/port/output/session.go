package output

import (
	"context"

	"page-helper/internal/domain/entity"
)

// SessionPort is the automation-session capability set the helper consumes.
// One session drives one browser page; it is not safe for concurrent callers.
type SessionPort interface {
	// Find performs a single, non-polling lookup. It returns entity.ErrNotFound
	// (wrapped) when no node matches right now; the caller owns all polling.
	Find(ctx context.Context, loc entity.Locator) (ElementPort, error)
	FindAll(ctx context.Context, loc entity.Locator) ([]ElementPort, error)

	// Eval runs browser-side code in the page and returns its JSON-encoded result.
	Eval(ctx context.Context, script string, args ...any) (string, error)
	ReadyState(ctx context.Context) (string, error)

	Navigate(ctx context.Context, url string) error
	CurrentURL() string

	// PressEnter dispatches a real Enter keystroke to the focused element.
	PressEnter(ctx context.Context) error

	PageHTML(ctx context.Context) (title, html string, err error)
	UIElements(ctx context.Context) ([]entity.UIElement, error)
	Screenshot(ctx context.Context) (*entity.Screenshot, error)

	Close()
}

// ElementPort is a live handle to a located node. It is valid only until the
// document mutates; operations on a detached handle return entity.ErrStale.
type ElementPort interface {
	Visible() (bool, error)
	// Interactable reports whether the node is enabled, visible and not
	// obscured by another element.
	Interactable() (bool, error)

	// Click dispatches a native input click.
	Click() error
	// ScriptClick invokes the node's click handler from browser-side code,
	// bypassing input simulation.
	ScriptClick() error
	// Hover moves the virtual pointer over the node without clicking.
	Hover() error

	Clear() error
	Input(text string) error

	Text() (string, error)
	Attribute(name string) (value string, ok bool, err error)

	// ScrollIntoView scrolls so the node's top sits offsetPixels below the
	// viewport top, using smooth-scroll behavior.
	ScrollIntoView(offsetPixels int) error
}
