package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Content is the payload of a chat message. It is a closed union: plain text,
// or an ordered list of mixed parts (text and chart parts). Only assistant
// messages carry mixed content; user messages are always plain text.
type Content struct {
	Text  string
	Parts []Content_Part
}

// Content_Part is one element of a mixed-content message.
// Type is either "text" or "chart".
type Content_Part struct {
	Type    string                 `json:"type"`
	Text    string                 `json:"text,omitempty"`
	Figure  map[string]interface{} `json:"figure,omitempty"`
	Display map[string]interface{} `json:"display_options,omitempty"`
}

const (
	Part_Type_Text  = "text"
	Part_Type_Chart = "chart"
)

// Text_Content wraps a plain string as message content.
func Text_Content(text string) Content {
	return Content{Text: text}
}

// Mixed_Content builds an ordered mixed-content value: a leading text part
// followed by one chart part per figure, in the order given.
func Mixed_Content(text string, figures []map[string]interface{}) Content {
	parts := []Content_Part{}
	if strings.TrimSpace(text) != "" {
		parts = append(parts, Content_Part{
			Type: Part_Type_Text,
			Text: strings.TrimSpace(text),
		})
	}
	for _, fig := range figures {
		if fig == nil {
			continue
		}
		parts = append(parts, Content_Part{
			Type:    Part_Type_Chart,
			Figure:  fig,
			Display: Default_Display_Options(),
		})
	}
	return Content{Parts: parts}
}

// Default_Display_Options returns the renderer hints attached to every chart part.
func Default_Display_Options() map[string]interface{} {
	return map[string]interface{}{
		"responsive":  true,
		"displaylogo": false,
		"style":       map[string]interface{}{"height": "400px", "width": "100%"},
	}
}

// Clone returns a copy sharing no mutable state with the receiver. Plain
// text content is returned as-is; mixed content gets its parts and nested
// figure maps copied recursively.
func (c Content) Clone() Content {
	if !c.IsMixed() {
		return c
	}
	parts := make([]Content_Part, len(c.Parts))
	for i, part := range c.Parts {
		parts[i] = Content_Part{
			Type:    part.Type,
			Text:    part.Text,
			Figure:  clone_map(part.Figure),
			Display: clone_map(part.Display),
		}
	}
	return Content{Parts: parts}
}

func clone_map(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = clone_value(v)
	}
	return out
}

func clone_value(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		return clone_map(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, e := range val {
			out[i] = clone_value(e)
		}
		return out
	default:
		return v
	}
}

// IsMixed reports whether the content carries mixed parts rather than plain text.
func (c Content) IsMixed() bool {
	return c.Parts != nil
}

// AsText flattens content to a best-effort textual summary. Plain text is
// returned as-is; mixed content concatenates text parts and replaces each
// chart with a placeholder. Used when replaying history to the model, which
// only ever receives text.
func (c Content) AsText() string {
	if !c.IsMixed() {
		return c.Text
	}
	pieces := []string{}
	for _, part := range c.Parts {
		switch part.Type {
		case Part_Type_Text:
			if part.Text != "" {
				pieces = append(pieces, part.Text)
			}
		case Part_Type_Chart:
			pieces = append(pieces, "[chart content displayed]")
		default:
			pieces = append(pieces, fmt.Sprintf("[%s content displayed]", part.Type))
		}
	}
	return strings.Join(pieces, " ")
}

// MarshalJSON emits a bare string for plain text and an array of parts for
// mixed content, matching what the chat front-end consumes.
func (c Content) MarshalJSON() ([]byte, error) {
	if c.IsMixed() {
		return json.Marshal(c.Parts)
	}
	return json.Marshal(c.Text)
}

// UnmarshalJSON accepts either wire shape.
func (c *Content) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		c.Text = text
		c.Parts = nil
		return nil
	}
	var parts []Content_Part
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("content must be a string or an array of parts: %w", err)
	}
	c.Text = ""
	c.Parts = parts
	return nil
}
