package rodsession

import (
	"strings"

	"golang.org/x/net/html"
)

// CleanConfig controls how much of the raw markup survives into a snapshot.
type CleanConfig struct {
	StripTags  []string
	StripAttrs []string
	MaxBytes   int
	// KeepAttr, when set, overrides the default attribute filter.
	KeepAttr func(attr html.Attribute) bool
}

var DefaultCleanConfig = CleanConfig{
	StripTags: []string{
		"script", "style", "noscript", "svg", "iframe",
		"link", "meta", "head", "title",
	},
	StripAttrs: []string{
		"style", "srcset", "sizes", "loading", "decoding", "fetchpriority",
	},
	MaxBytes: 130_000,
}

// CleanHTML strips scripts, styles, comments and presentation attributes
// from raw markup so snapshots stay readable, and caps the output size.
// Unparseable input is returned as-is.
func CleanHTML(raw string, cfg *CleanConfig) string {
	if cfg == nil {
		cfg = &DefaultCleanConfig
	}

	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return raw
	}
	body := findBody(doc)
	if body == nil {
		return raw
	}

	strip(body, cfg)

	var sb strings.Builder
	_ = html.Render(&sb, body)
	return capBytes(sb.String(), cfg.MaxBytes)
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

func strip(n *html.Node, cfg *CleanConfig) {
	if n.Type == html.CommentNode {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
		return
	}
	if n.Type != html.ElementNode {
		return
	}

	for _, tag := range cfg.StripTags {
		if n.Data == tag {
			if n.Parent != nil {
				n.Parent.RemoveChild(n)
			}
			return
		}
	}

	kept := n.Attr[:0]
	for _, attr := range n.Attr {
		if keepAttr(attr, cfg) {
			kept = append(kept, attr)
		}
	}
	n.Attr = kept

	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		strip(c, cfg)
		c = next
	}
}

func keepAttr(attr html.Attribute, cfg *CleanConfig) bool {
	if cfg.KeepAttr != nil {
		return cfg.KeepAttr(attr)
	}
	for _, drop := range cfg.StripAttrs {
		if attr.Key == drop {
			return false
		}
	}
	// Inline handlers never help a snapshot reader.
	return !strings.HasPrefix(attr.Key, "on")
}

func capBytes(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "\n<!-- truncated -->"
}
