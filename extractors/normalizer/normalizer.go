// Package normalizer converts a raw email body (HTML or plain text) into a
// clean plain-text representation and extracts inline image references.
package normalizer

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/skyhighcrm/email-extraction/content"
)

// The removal patterns run before any structural conversion so that style
// rules and script bodies never leak into the output as prose.
var (
	commentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)
	stylePattern   = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	scriptPattern  = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	headPattern    = regexp.MustCompile(`(?is)<head[^>]*>.*?</head>`)

	breakPattern      = regexp.MustCompile(`(?i)<br[^>]*>`)
	paragraphPattern  = regexp.MustCompile(`(?i)</?p(?:\s[^>]*)?>`)
	headingPattern    = regexp.MustCompile(`(?i)</?h[1-6](?:\s[^>]*)?>`)
	boldPattern       = regexp.MustCompile(`(?i)</?(?:b|strong)(?:\s[^>]*)?>`)
	italicPattern     = regexp.MustCompile(`(?i)</?(?:i|em)(?:\s[^>]*)?>`)
	quoteOpenPattern  = regexp.MustCompile(`(?i)<blockquote(?:\s[^>]*)?>`)
	quoteClosePattern = regexp.MustCompile(`(?i)</blockquote>`)
	linkPattern       = regexp.MustCompile(`(?is)<a\s[^>]*href=["']([^"']+)["'][^>]*>(.*?)</a>`)
	tagPattern        = regexp.MustCompile(`<[^>]+>`)

	spaceRunPattern = regexp.MustCompile(`[ \t\x{00a0}]+`)
)

// Normalize converts rawBody to plain text and returns the inline images it
// referenced. It never fails: on any internal error the original input is
// returned unchanged with no images.
func Normalize(rawBody string) (cleaned string, images []content.ImageInfo) {
	defer func() {
		if r := recover(); r != nil {
			cleaned, images = rawBody, nil
		}
	}()

	s := rawBody

	// 1. Unsafe and invisible regions go first.
	s = commentPattern.ReplaceAllString(s, "")
	s = stylePattern.ReplaceAllString(s, "")
	s = scriptPattern.ReplaceAllString(s, "")
	s = headPattern.ReplaceAllString(s, "")

	// 2. Image references, before generic tag stripping eats them.
	if strings.Contains(strings.ToLower(s), "<img") {
		s, images = extractImages(s)
	}

	// 3. Structural markup to text equivalents.
	s = breakPattern.ReplaceAllString(s, "\n")
	s = paragraphPattern.ReplaceAllString(s, "\n\n")
	s = headingPattern.ReplaceAllString(s, "\n\n")
	s = boldPattern.ReplaceAllString(s, "**")
	s = italicPattern.ReplaceAllString(s, "*")
	s = quoteOpenPattern.ReplaceAllString(s, "\n> ")
	s = quoteClosePattern.ReplaceAllString(s, "\n")
	s = linkPattern.ReplaceAllString(s, "$2 ($1)")

	// 4. Everything else is noise.
	s = tagPattern.ReplaceAllString(s, "")

	// 5. Character entities, named and numeric.
	s = html.UnescapeString(s)

	// 6. Whitespace.
	s = collapseWhitespace(s)

	if strings.TrimSpace(s) == "" && strings.TrimSpace(rawBody) != "" {
		return rawBody, nil
	}
	return s, images
}

// extractImages parses the body as HTML, records every <img> carrying both a
// src and a non-empty alt, and replaces each with an inline textual marker.
// On any parse problem the input is returned untouched.
func extractImages(s string) (string, []content.ImageInfo) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s, nil
	}

	var images []content.ImageInfo
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, hasSrc := sel.Attr("src")
		alt, hasAlt := sel.Attr("alt")
		alt = strings.TrimSpace(alt)
		if !hasSrc || !hasAlt || alt == "" {
			return
		}

		images = append(images, content.ImageInfo{
			Kind:        classifyImage(alt),
			Description: alt,
			Alt:         alt,
			Inline:      strings.HasPrefix(src, "cid:") || strings.HasPrefix(src, "data:"),
		})
		sel.ReplaceWithHtml("[image: " + html.EscapeString(alt) + "]")
	})

	out, err := doc.Find("body").Html()
	if err != nil || out == "" {
		return s, images
	}
	return out, images
}

func classifyImage(description string) content.ImageKind {
	desc := strings.ToLower(description)
	switch {
	case strings.Contains(desc, "photo") || strings.Contains(desc, "picture"):
		return content.ImagePhoto
	case strings.Contains(desc, "icon"):
		return content.ImageIcon
	case strings.Contains(desc, "logo"):
		return content.ImageLogo
	default:
		return content.ImageAttachment
	}
}

// collapseWhitespace trims each line, collapses horizontal runs and reduces
// consecutive blank lines to at most one.
func collapseWhitespace(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r", ""), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(spaceRunPattern.ReplaceAllString(line, " "))
		if line == "" {
			if len(out) > 0 && out[len(out)-1] == "" {
				continue
			}
			out = append(out, "")
			continue
		}
		out = append(out, line)
	}
	for len(out) > 0 && out[0] == "" {
		out = out[1:]
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
