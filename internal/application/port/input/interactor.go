package input

import (
	"context"
	"time"

	"page-helper/internal/application/port/output"
	"page-helper/internal/domain/entity"
)

// Interactor is the public operation surface of the helper.
//
// Error policy is part of each signature: operations returning error propagate
// entity.ErrNotFound / entity.ErrTimeout (wrapped); operations returning bool
// or nothing never raise and log their failures instead.
type Interactor interface {
	Navigate(ctx context.Context, url string) error

	LocateVisible(ctx context.Context, loc entity.Locator, timeout time.Duration) (output.ElementPort, error)
	LocateClickable(ctx context.Context, loc entity.Locator, timeout time.Duration) (output.ElementPort, error)

	Click(ctx context.Context, loc entity.Locator) error
	SafeClick(ctx context.Context, loc entity.Locator) bool
	ForceClick(ctx context.Context, loc entity.Locator, offsetPixels int) error
	Hover(ctx context.Context, loc entity.Locator) error
	Type(ctx context.Context, loc entity.Locator, text string) error
	PressEnter(ctx context.Context) error

	ScrollIntoView(ctx context.Context, loc entity.Locator, offsetPixels int)

	IsVisible(ctx context.Context, loc entity.Locator) bool
	IsPresent(ctx context.Context, loc entity.Locator) bool

	WaitForTextContains(ctx context.Context, loc entity.Locator, substring string) error
	WaitForAttributeEquals(ctx context.Context, loc entity.Locator, attribute, value string) error
	WaitUntilInvisible(ctx context.Context, loc entity.Locator, timeout time.Duration) error
	WaitForDocumentReady(ctx context.Context, timeout time.Duration) error

	AcceptCookieConsentIfPresent(ctx context.Context)

	PageSnapshot(ctx context.Context) (*entity.PageContent, error)
	Screenshot(ctx context.Context) (*entity.Screenshot, error)
}
