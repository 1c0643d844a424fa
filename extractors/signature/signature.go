// Package signature locates the trailing signature block of an email and
// classifies its lines into name, title, company, contact details and
// address.
package signature

import (
	"regexp"
	"strings"

	"github.com/skyhighcrm/email-extraction/content"
	"github.com/skyhighcrm/email-extraction/extractors/common"
)

const (
	// How far up from the end the boundary search looks.
	searchWindow = 15
	// Fallback region size when no boundary is found.
	defaultRegion = 10
)

var (
	dashBoundaryPattern = regexp.MustCompile(`^-{2,}$`)
	namePattern         = regexp.MustCompile(`^[A-Z][A-Za-z'.-]*(?:\s+[A-Z][A-Za-z'.-]*){1,3}$`)
	digitPattern        = regexp.MustCompile(`\d`)
)

var closingPhrases = []string{
	"best regards",
	"kind regards",
	"warm regards",
	"regards",
	"sincerely",
	"thank you",
	"thanks",
	"best wishes",
	"cheers",
}

var titleKeywords = []string{"expert", "agent", "manager", "specialist", "consultant", "advisor", "director"}

var companyKeywords = []string{"travel", "tours", "agency", "vacations", "holidays", "group", "inc", "llc", "ltd"}

var addressKeywords = []string{
	"street", "avenue", "ave.", "suite", "ste.", "blvd", "boulevard",
	"road", "drive", "lane", "floor", "p.o. box",
	"miami", "new york", "los angeles", "chicago", "orlando",
}

// Extract returns the trailing business signature, or nil when no line in
// the candidate region looks like a person's name. A signature without an
// identified person is not a signature.
func Extract(text string) *content.BusinessSignature {
	lines := common.TrimmedLines(text)
	if len(lines) == 0 {
		return nil
	}

	region := signatureRegion(lines)
	if len(region) == 0 {
		return nil
	}

	sig := &content.BusinessSignature{}
	phoneSeen := make(map[string]bool)

	for _, line := range region {
		if line == "" {
			continue
		}

		switch {
		case sig.Name == "" && isNameLine(line):
			sig.Name = line
		case sig.Company == "" && isNameLine(line) && isCompanyLine(line):
			// A later name-shaped line carrying a business word is read as
			// the company name.
			sig.Company = line
		case sig.Title == "" && isTitleLine(line):
			sig.Title = line
		case common.PhonePattern.MatchString(line):
			phone := strings.TrimSpace(common.PhonePattern.FindString(line))
			if !phoneSeen[phone] {
				phoneSeen[phone] = true
				sig.Phones = append(sig.Phones, phone)
			}
		case sig.Email == "" && common.EmailPattern.MatchString(line):
			sig.Email = common.EmailPattern.FindString(line)
		case sig.Website == "" && common.WebsitePattern.MatchString(line):
			sig.Website = common.WebsitePattern.FindString(line)
		case sig.Address == "" && isAddressLine(line):
			sig.Address = line
		}
	}

	if sig.Name == "" {
		return nil
	}
	return sig
}

// signatureRegion finds the candidate signature block: the lines below the
// topmost boundary marker or name-shaped line within the search window, or
// the last few lines of the document when no boundary is found.
func signatureRegion(lines []string) []string {
	window := len(lines) - searchWindow
	if window < 0 {
		window = 0
	}

	start := -1
	for i := len(lines) - 1; i >= window; i-- {
		line := lines[i]
		if dashBoundaryPattern.MatchString(line) || isClosingPhrase(line) {
			start = i + 1
		} else if isNameLine(line) {
			start = i
		}
	}

	if start == -1 {
		start = len(lines) - defaultRegion
		if start < 0 {
			start = 0
		}
	}
	if start >= len(lines) {
		return nil
	}
	return lines[start:]
}

func isClosingPhrase(line string) bool {
	trimmed := strings.ToLower(strings.TrimRight(line, ",.!"))
	for _, phrase := range closingPhrases {
		if trimmed == phrase {
			return true
		}
	}
	return false
}

// isNameLine reports whether line is a short title-case run of two or more
// words with no digits or contact markers.
func isNameLine(line string) bool {
	if len(line) > 50 {
		return false
	}
	if strings.ContainsAny(line, "@") || strings.Contains(strings.ToLower(line), "www") {
		return false
	}
	if digitPattern.MatchString(line) {
		return false
	}
	return namePattern.MatchString(line)
}

// isCompanyLine reports whether a name-shaped line reads as a business name
// rather than a job title.
func isCompanyLine(line string) bool {
	if isTitleLine(line) {
		return false
	}
	lower := strings.ToLower(line)
	for _, kw := range companyKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func isTitleLine(line string) bool {
	if len(line) >= 100 {
		return false
	}
	lower := strings.ToLower(line)
	for _, kw := range titleKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func isAddressLine(line string) bool {
	if len(line) >= 200 {
		return false
	}
	lower := strings.ToLower(line)
	for _, kw := range addressKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
