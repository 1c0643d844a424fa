// Package email parses raw RFC 822 messages into the headers and decoded
// body parts the extraction engine consumes.
package email

import (
	"strings"
	"time"
)

// Message is a parsed email: lowercased headers plus the decoded MIME parts
// in document order.
type Message struct {
	Headers map[string][]string `json:"headers"`
	Parts   []Part              `json:"parts"`
}

// Part is one decoded MIME part.
type Part struct {
	ContentType string `json:"content_type"`
	Body        string `json:"body"`
	Parts       []Part `json:"parts,omitempty"`
}

// Subject returns the subject header, or "".
func (m *Message) Subject() string {
	return m.header("subject")
}

// From returns the bare sender address, lowercased, with any display name
// stripped.
func (m *Message) From() string {
	from := m.header("from")
	if start := strings.Index(from, "<"); start != -1 {
		if end := strings.Index(from[start:], ">"); end != -1 {
			from = from[start+1 : start+end]
		}
	}
	return strings.ToLower(strings.TrimSpace(from))
}

// Date returns the parsed Date header, or nil.
func (m *Message) Date() *time.Time {
	return ParseDate(m.header("date"))
}

// Body returns the part best suited for display: the first text/html part if
// any, else the first text/plain part, else the first part at all. The
// second return reports whether the chosen part is HTML.
func (m *Message) Body() (string, bool) {
	if part := findPart(m.Parts, "text/html"); part != nil {
		return part.Body, true
	}
	if part := findPart(m.Parts, "text/plain"); part != nil {
		return part.Body, false
	}
	if len(m.Parts) > 0 {
		return m.Parts[0].Body, false
	}
	return "", false
}

func (m *Message) header(key string) string {
	if m.Headers == nil {
		return ""
	}
	values := m.Headers[key]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func findPart(parts []Part, contentType string) *Part {
	for i := range parts {
		if strings.HasPrefix(parts[i].ContentType, contentType) {
			return &parts[i]
		}
		if nested := findPart(parts[i].Parts, contentType); nested != nil {
			return nested
		}
	}
	return nil
}

// ParseDate parses an RFC 5322 date string from email headers.
func ParseDate(dateStr string) *time.Time {
	if dateStr == "" {
		return nil
	}

	formats := []string{
		time.RFC1123Z,
		time.RFC1123,
		"Mon, 2 Jan 2006 15:04:05 -0700",
		"Mon, 2 Jan 2006 15:04:05 MST",
		"2 Jan 2006 15:04:05 -0700",
		"Mon, 02 Jan 2006 15:04:05 -0700 (MST)",
		"Mon, 2 Jan 2006 15:04 -0700",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return &t
		}
	}
	return nil
}
