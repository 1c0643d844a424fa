// Package quote splits normalized email text into nested quoted blocks and
// coarse thread fragments.
package quote

import (
	"regexp"
	"strings"

	"github.com/skyhighcrm/email-extraction/content"
	"github.com/skyhighcrm/email-extraction/extractors/common"
)

var threadSeparatorPattern = regexp.MustCompile(`(?m)^On\s.+wrote:\s*$|^From:\s.+$|^\s*>+`)

// ExtractQuotedSections walks the text line by line, accumulating runs of
// equal quote depth. A depth change (including to or from unquoted text)
// flushes the buffer as one section at the previous depth, with the leading
// markers stripped.
func ExtractQuotedSections(text string) []content.QuotedSection {
	var sections []content.QuotedSection
	var buf []string
	currentLevel := 0
	sender := ""

	flush := func() {
		if currentLevel > 0 && len(buf) > 0 {
			sections = append(sections, content.QuotedSection{
				Level:          currentLevel,
				Content:        strings.TrimSpace(strings.Join(buf, "\n")),
				OriginalSender: sender,
			})
		}
		buf = nil
	}

	for _, line := range common.Lines(text) {
		level, stripped := quoteLevel(line)
		if level != currentLevel {
			flush()
			currentLevel = level
		}

		if level == 0 {
			trimmed := strings.TrimSpace(line)
			if strings.HasPrefix(trimmed, "On ") && strings.Contains(trimmed, "wrote:") {
				sender = common.FindStringWithoutMarkers(trimmed, "On ", " wrote:")
			} else if trimmed != "" {
				sender = ""
			}
			continue
		}
		buf = append(buf, stripped)
	}
	flush()

	return sections
}

// quoteLevel counts the leading quote markers of line, allowing whitespace
// between them, and returns the depth together with the marker-stripped
// remainder.
func quoteLevel(line string) (int, string) {
	level := 0
	i := 0
	for i < len(line) {
		switch line[i] {
		case '>':
			level++
			i++
		case ' ', '\t':
			j := i
			for j < len(line) && (line[j] == ' ' || line[j] == '\t') {
				j++
			}
			if j < len(line) && line[j] == '>' {
				i = j
				continue
			}
			if level > 0 {
				i = j
			}
			return level, line[i:]
		default:
			return level, line[i:]
		}
	}
	return level, ""
}

// ParseThread splits the text on reply separators ("On ... wrote:" lines,
// "From:" header lines, or runs of quote markers) into coarse thread
// fragments. Every fragment after the first separator is quoted, even when
// the body opens with one and the leading fragment is empty. The separators
// do not reliably expose structured headers, so sender and date are left
// unresolved.
func ParseThread(text string) []content.ThreadMessage {
	var messages []content.ThreadMessage
	separators := threadSeparatorPattern.FindAllStringIndex(text, -1)

	prev := 0
	for i := 0; i <= len(separators); i++ {
		end := len(text)
		if i < len(separators) {
			end = separators[i][0]
		}
		fragment := strings.TrimSpace(text[prev:end])
		if i < len(separators) {
			prev = separators[i][1]
		}
		if fragment == "" {
			continue
		}
		messages = append(messages, content.ThreadMessage{
			From:     "Unknown",
			Date:     "",
			Content:  fragment,
			IsQuoted: i > 0,
		})
	}
	return messages
}
