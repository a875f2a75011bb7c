package entity

// PageContent is a snapshot of the current document, cleaned for triage output.
type PageContent struct {
	URL        string
	Title      string
	HTML       string
	UIElements []UIElement
}

// UIElement is a summary of one interactable node on the page.
type UIElement struct {
	ID         string
	Type       string
	Text       string
	AriaLabel  string
	Role       string
	Visible    bool
	InViewport bool
	Selector   string
}

type Screenshot struct {
	Data   []byte
	Format string
	Width  int
	Height int
}
