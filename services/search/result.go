package search

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind tags the shape a search provider answered with.
type Kind int

const (
	KindItems       Kind = iota // list of result items with text bodies
	KindAnswer                  // object exposing an "answer" field
	KindResultField             // object exposing a "result" field
	KindOther                   // anything else, already stringified
)

func (k Kind) String() string {
	switch k {
	case KindItems:
		return "items"
	case KindAnswer:
		return "answer"
	case KindResultField:
		return "result"
	default:
		return "other"
	}
}

// Item is one search hit.
type Item struct {
	Title   string `json:"title,omitempty"`
	URL     string `json:"url,omitempty"`
	Content string `json:"content"`
}

// Result is the normalized search response. Items is set for KindItems, Text
// for every other kind.
type Result struct {
	Kind  Kind   `json:"kind"`
	Items []Item `json:"items,omitempty"`
	Text  string `json:"text,omitempty"`
}

// Flatten renders the result as one text blob; item bodies are separated by a
// blank line.
func (r Result) Flatten() string {
	if r.Kind != KindItems {
		return r.Text
	}
	bodies := make([]string, 0, len(r.Items))
	for _, it := range r.Items {
		bodies = append(bodies, it.Content)
	}
	return strings.Join(bodies, "\n\n")
}

// Classify maps a decoded provider payload onto a Result.
func Classify(raw any) Result {
	switch v := raw.(type) {
	case []Item:
		return Result{Kind: KindItems, Items: v}
	case []any:
		items := make([]Item, 0, len(v))
		for _, el := range v {
			items = append(items, toItem(el))
		}
		return Result{Kind: KindItems, Items: items}
	case map[string]any:
		if answer, ok := v["answer"]; ok {
			return Result{Kind: KindAnswer, Text: stringify(answer)}
		}
		if result, ok := v["result"]; ok {
			return Result{Kind: KindResultField, Text: stringify(result)}
		}
	}
	return Result{Kind: KindOther, Text: stringify(raw)}
}

func toItem(el any) Item {
	m, ok := el.(map[string]any)
	if !ok {
		return Item{Content: stringify(el)}
	}
	it := Item{}
	it.Title, _ = m["title"].(string)
	it.URL, _ = m["url"].(string)
	for _, key := range []string{"content", "page_content"} {
		if s, ok := m[key].(string); ok {
			it.Content = s
			return it
		}
	}
	it.Content = stringify(m)
	return it
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	}
	if b, err := json.Marshal(v); err == nil {
		return string(b)
	}
	return fmt.Sprint(v)
}
