package rodsession

import (
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"page-helper/internal/application/port/output"
)

var _ output.ElementPort = (*element)(nil)

// element adapts one *rod.Element to the port. The handle is only good
// until the document mutates; detachment surfaces as entity.ErrStale.
type element struct {
	el *rod.Element
}

func (e *element) Visible() (bool, error) {
	visible, err := e.el.Visible()
	if err != nil {
		return false, mapElementErr(err)
	}
	return visible, nil
}

func (e *element) Interactable() (bool, error) {
	// Hit-testing covers visibility and obstruction by other elements.
	if _, err := e.el.Interactable(); err != nil {
		if stale := mapElementErr(err); stale != err {
			return false, stale
		}
		// Invisible or covered: not clickable yet, keep polling.
		return false, nil
	}
	res, err := e.el.Eval(`() => !this.disabled`)
	if err != nil {
		return false, mapElementErr(err)
	}
	return res.Value.Bool(), nil
}

func (e *element) Click() error {
	return mapElementErr(e.el.Click(proto.InputMouseButtonLeft, 1))
}

func (e *element) ScriptClick() error {
	_, err := e.el.Eval(`() => this.click()`)
	return mapElementErr(err)
}

func (e *element) Hover() error {
	return mapElementErr(e.el.Hover())
}

func (e *element) Clear() error {
	if err := e.el.SelectAllText(); err != nil {
		return mapElementErr(err)
	}
	return mapElementErr(e.el.Input(""))
}

func (e *element) Input(text string) error {
	return mapElementErr(e.el.Input(text))
}

func (e *element) Text() (string, error) {
	text, err := e.el.Text()
	if err != nil {
		return "", mapElementErr(err)
	}
	return text, nil
}

func (e *element) Attribute(name string) (string, bool, error) {
	val, err := e.el.Attribute(name)
	if err != nil {
		return "", false, mapElementErr(err)
	}
	if val == nil {
		return "", false, nil
	}
	return *val, true, nil
}

func (e *element) ScrollIntoView(offsetPixels int) error {
	_, err := e.el.Eval(`(offset) => {
		const top = this.getBoundingClientRect().top + window.pageYOffset - offset;
		window.scrollTo({ top: top, behavior: 'smooth' });
	}`, offsetPixels)
	return mapElementErr(err)
}
