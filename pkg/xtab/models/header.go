package models

// ContentType is the kind of a header cell content element.
type ContentType string

const (
	// LabelContent is a static text label.
	LabelContent ContentType = "label"
	// DataContent is a data item bound to an expression.
	DataContent ContentType = "data"
	// TextContent is a free-form text item.
	TextContent ContentType = "text"
)

// HeaderCell is one logical cell of the crosstab header region.
type HeaderCell struct {
	ID       string     `json:"id,omitempty" yaml:"id,omitempty"`
	Contents []*Content `json:"contents,omitempty" yaml:"contents,omitempty"`
}

// Content is a report element placed inside a header cell.
type Content struct {
	ID   string      `json:"id,omitempty" yaml:"id,omitempty"`
	Type ContentType `json:"type" yaml:"type"`
	Name string      `json:"name,omitempty" yaml:"name,omitempty"`
	Text string      `json:"text,omitempty" yaml:"text,omitempty"`
}

// IsLabel reports whether the content is a label.
func (c *Content) IsLabel() bool {
	return c != nil && c.Type == LabelContent
}

// Text returns the text of the first content, or "" when the cell is empty.
func (h *HeaderCell) Text() string {
	if h == nil || len(h.Contents) == 0 {
		return ""
	}
	return h.Contents[0].Text
}
