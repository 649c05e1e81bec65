// Package ast defines the language-neutral message representation exchanged
// with the translation host.
//
// A Resource holds every message of one language. Each Message carries a
// Pattern, which at present is always a single literal Text element.
package ast

// LanguageTag names one language variant, e.g. "en" or "pt-BR".
// It is derived from a resource file name and treated as opaque.
type LanguageTag string

// String returns the tag as a plain string.
func (t LanguageTag) String() string {
	return string(t)
}

// Resource is the complete translation set of one language.
// Body keeps the order in which messages were found in the source document.
type Resource struct {
	LanguageTag LanguageTag `json:"languageTag"`
	Body        []Message   `json:"body"`
}

// Message is one translatable unit. ID may contain "." as a hierarchy separator.
type Message struct {
	ID      string  `json:"id"`
	Pattern Pattern `json:"pattern"`
}

// Pattern is the ordered list of rendering elements of a message.
type Pattern struct {
	Elements []Text `json:"elements"`
}

// Text is a literal text segment.
type Text struct {
	Value string `json:"value"`
}

// NewMessage builds a message with a single text element.
func NewMessage(id, value string) Message {
	return Message{
		ID:      id,
		Pattern: Pattern{Elements: []Text{{Value: value}}},
	}
}

// Text returns the value of the first pattern element.
// Any further elements are ignored; ok is false when the pattern is empty.
func (m Message) Text() (value string, ok bool) {
	if len(m.Pattern.Elements) == 0 {
		return "", false
	}
	return m.Pattern.Elements[0].Value, true
}

// Lookup returns the message with the given id.
func (r Resource) Lookup(id string) (Message, bool) {
	for _, msg := range r.Body {
		if msg.ID == id {
			return msg, true
		}
	}
	return Message{}, false
}

// IDs returns message identifiers in body order.
func (r Resource) IDs() []string {
	ids := make([]string, 0, len(r.Body))
	for _, msg := range r.Body {
		ids = append(ids, msg.ID)
	}
	return ids
}
