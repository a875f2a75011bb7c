package entity

import "strings"

type Strategy string

const (
	StrategyCSS   Strategy = "css"
	StrategyXPath Strategy = "xpath"
)

// Locator identifies zero or more nodes in the current document.
// It is supplied by the caller and never constructed by the helper itself.
type Locator struct {
	Strategy Strategy
	Expr     string
}

func CSS(expr string) Locator {
	return Locator{Strategy: StrategyCSS, Expr: expr}
}

func XPath(expr string) Locator {
	return Locator{Strategy: StrategyXPath, Expr: expr}
}

// Auto guesses the strategy from the expression shape: expressions starting
// with "/" or mentioning xpath are treated as XPath, everything else as CSS.
func Auto(expr string) Locator {
	if strings.HasPrefix(expr, "/") || strings.Contains(expr, "xpath") {
		return XPath(expr)
	}
	return CSS(expr)
}

func (l Locator) String() string {
	return string(l.Strategy) + "=" + l.Expr
}
