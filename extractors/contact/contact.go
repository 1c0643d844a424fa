// Package contact finds phone numbers, email addresses and websites in
// normalized email text.
package contact

import (
	"fmt"
	"strings"

	"github.com/skyhighcrm/email-extraction/content"
	"github.com/skyhighcrm/email-extraction/extractors/common"
)

// Extract scans text for contact details. Every match is returned; matches
// are not deduplicated across the document.
func Extract(text string) []content.ContactInfo {
	var contacts []content.ContactInfo

	for _, match := range common.PhonePattern.FindAllStringSubmatch(text, -1) {
		info := content.ContactInfo{
			Kind:  content.ContactPhone,
			Value: strings.TrimSpace(match[0]),
		}
		if ext := strings.TrimSpace(match[1]); ext != "" {
			info.Label = ext
		}
		contacts = append(contacts, info)
	}

	emailSpans := common.EmailPattern.FindAllStringIndex(text, -1)
	for _, span := range emailSpans {
		contacts = append(contacts, content.ContactInfo{
			Kind:  content.ContactEmail,
			Value: text[span[0]:span[1]],
		})
	}

	for _, span := range common.WebsitePattern.FindAllStringIndex(text, -1) {
		// Domain-like tokens inside an email address belong to the email
		// match, not to a website entry.
		if overlapsAny(span, emailSpans) {
			continue
		}
		contacts = append(contacts, content.ContactInfo{
			Kind:  content.ContactWebsite,
			Value: strings.TrimRight(text[span[0]:span[1]], ".,;"),
		})
	}

	return contacts
}

func overlapsAny(span []int, spans [][]int) bool {
	for _, other := range spans {
		if span[0] < other[1] && other[0] < span[1] {
			return true
		}
	}
	return false
}

// FormatPhone reduces a matched phone value to its digit groups and formats
// it for display. Values that are not ten digits (after an optional leading
// country code) are returned unchanged.
func FormatPhone(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	d := digits.String()
	if len(d) == 11 && d[0] == '1' {
		d = d[1:]
	}
	if len(d) != 10 {
		return value
	}
	return fmt.Sprintf("(%s) %s-%s", d[0:3], d[3:6], d[6:10])
}
