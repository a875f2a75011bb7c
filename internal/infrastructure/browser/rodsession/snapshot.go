package rodsession

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"

	"page-helper/internal/domain/entity"
)

const maxUIElements = 500

// PageHTML returns the page title and the cleaned body markup.
func (s *Session) PageHTML(ctx context.Context) (string, string, error) {
	page := s.page.Context(ctx)

	info, err := page.Info()
	if err != nil {
		return "", "", fmt.Errorf("page info: %w", err)
	}

	body, err := page.Sleeper(rod.NotFoundSleeper).Element("body")
	if err != nil {
		return "", "", fmt.Errorf("%w: body", entity.ErrNotFound)
	}
	raw, err := body.HTML()
	if err != nil {
		return "", "", fmt.Errorf("read body html: %w", err)
	}

	return info.Title, CleanHTML(raw, nil), nil
}

// UIElements summarizes the visible interactable nodes on the page, capped
// at maxUIElements.
func (s *Session) UIElements(ctx context.Context) ([]entity.UIElement, error) {
	page := s.page.Context(ctx)

	var result []entity.UIElement
	seen := make(map[string]bool)

	add := func(el *rod.Element, typ string) {
		if el == nil || len(result) >= maxUIElements {
			return
		}
		visible, err := el.Visible()
		if err != nil || !visible {
			return
		}

		selector, err := el.GetXPath(true)
		if err != nil || seen[selector] {
			return
		}
		seen[selector] = true

		text, _ := el.Text()
		aria, _ := el.Attribute("aria-label")
		role, _ := el.Attribute("role")

		result = append(result, entity.UIElement{
			ID:         fmt.Sprintf("ui-%04d", len(result)),
			Type:       typ,
			Text:       strings.TrimSpace(text),
			AriaLabel:  deref(aria),
			Role:       deref(role),
			Visible:    true,
			InViewport: inViewport(el),
			Selector:   selector,
		})
	}

	groups := []struct {
		selector string
		typ      string
	}{
		{"button, [role='button'], [aria-label]:not([aria-label=''])", "button"},
		{"input, textarea, select", "input"},
		{"a[href]", "link"},
	}
	for _, g := range groups {
		els, err := page.Sleeper(rod.NotFoundSleeper).Elements(g.selector)
		if err != nil {
			continue
		}
		for _, el := range els {
			add(el, g.typ)
		}
	}

	return result, nil
}

func inViewport(el *rod.Element) bool {
	res, err := el.Eval(`() => {
		const rect = this.getBoundingClientRect();
		return rect.top < window.innerHeight && rect.bottom >= 0 &&
			rect.left < window.innerWidth && rect.right >= 0;
	}`)
	if err != nil {
		return false
	}
	return res.Value.Bool()
}

// Screenshot captures the viewport as JPEG, downscaled to at most 1024px
// wide so failure artifacts stay small.
func (s *Session) Screenshot(ctx context.Context) (*entity.Screenshot, error) {
	imgBytes, err := s.page.Context(ctx).Screenshot(false, &proto.PageCaptureScreenshot{
		Format:  proto.PageCaptureScreenshotFormatJpeg,
		Quality: gson.Int(80),
	})
	if err != nil {
		return nil, fmt.Errorf("screenshot failed: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode screenshot: %w", err)
	}

	if img.Bounds().Dx() > 1024 {
		img = imaging.Resize(img, 1024, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 75}); err != nil {
		return nil, fmt.Errorf("encode screenshot: %w", err)
	}

	return &entity.Screenshot{
		Data:   buf.Bytes(),
		Format: "jpeg",
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}, nil
}

func deref(s *string) string {
	if s != nil {
		return *s
	}
	return ""
}
