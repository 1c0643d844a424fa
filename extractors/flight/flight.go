// Package flight finds airline/flight-number tokens, origin-destination
// routes, reservation-system segment dumps and booking reference codes in
// normalized email text.
package flight

import (
	"regexp"
	"strings"

	"github.com/skyhighcrm/email-extraction/content"
	"github.com/skyhighcrm/email-extraction/extractors/common"
)

var (
	// Airline code plus flight number, e.g. "AA 100" or "UA2345". The
	// separator never crosses a line break; a trailing code on one line does
	// not pair with a number opening the next.
	flightTokenPattern = regexp.MustCompile(`\b([A-Z]{2,3})[ \t]?(\d{1,4})\b`)

	// Adjacent or hyphenated 3-letter airport pairs, e.g. "JFK-LAX".
	routePattern = regexp.MustCompile(`\b([A-Z]{3})\s*-?\s*([A-Z]{3})\b`)

	// One reservation-system segment dump line:
	// seats, airline, flight number, origin, destination, date, departure
	// time, arrival time, day-offset letter and parenthesized class code.
	// Field widths are rigid; a line that does not match the exact shape is
	// not a segment.
	segmentPattern = regexp.MustCompile(`^(\d)([A-Z]{2,3})(\d{1,4})([A-Z]{3})([A-Z]{3})(\d{2}[A-Z]{3})(\d{4})(\d{4})([A-Z])\(([A-Z])\)$`)
)

// Booking reference patterns, in extraction order. The label-anchored forms
// run first, then the code-before-"Booked" form, then the bare 6-letter
// fallback.
var bookingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i:\bbooking(?:\s+(?:ref(?:erence)?|code|number))?)\s*[:#]\s*([A-Z0-9]{5,8})\b`),
	regexp.MustCompile(`(?i:\bpnr)\s*[:#]?\s*([A-Z0-9]{5,8})\b`),
	regexp.MustCompile(`(?i:\breference)\s*[:#]\s*([A-Z0-9]{5,8})\b`),
	regexp.MustCompile(`(?i:\bconfirmation(?:\s+(?:number|code))?)\s*[:#]?\s*([A-Z0-9]{5,8})\b`),
	regexp.MustCompile(`\b([A-Z0-9]{5,8})\s+(?i:booked)\b`),
	regexp.MustCompile(`\b([A-Z]{6})\b`),
}

// Extract returns the flight legs found in text. Segment-dump lines are
// decoded field-by-field; the remaining text goes through the heuristic
// token and route scans, with each discovered route attached to the last
// item still missing one.
func Extract(text string) []content.FlightItem {
	var items []content.FlightItem
	var plain []string

	for _, line := range common.TrimmedLines(text) {
		if item, ok := decodeSegment(line); ok {
			items = append(items, item)
			continue
		}
		plain = append(plain, line)
	}

	remaining := strings.Join(plain, "\n")

	// Token and route matches are replayed in text order so that each route
	// lands on the item discovered just before it.
	tokens := flightTokenPattern.FindAllStringSubmatchIndex(remaining, -1)
	routes := routePattern.FindAllStringSubmatchIndex(remaining, -1)

	ti, ri := 0, 0
	for ti < len(tokens) || ri < len(routes) {
		if ri >= len(routes) || (ti < len(tokens) && tokens[ti][0] <= routes[ri][0]) {
			m := tokens[ti]
			airline := remaining[m[2]:m[3]]
			items = append(items, content.FlightItem{
				Airline:      airline,
				FlightNumber: airline + remaining[m[4]:m[5]],
			})
			ti++
			continue
		}

		m := routes[ri]
		route := remaining[m[2]:m[3]] + "-" + remaining[m[4]:m[5]]
		if i := lastOpenItem(items); i >= 0 {
			items[i].Route = route
		} else {
			items = append(items, content.FlightItem{Route: route})
		}
		ri++
	}

	return items
}

// lastOpenItem returns the index of the most recently discovered item that
// has no route yet, or -1. Route-to-flight association is positional; the
// text gives no structural link between the two.
func lastOpenItem(items []content.FlightItem) int {
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].Route == "" {
			return i
		}
	}
	return -1
}

// decodeSegment decodes one fixed-width reservation dump line into a fully
// populated item. Lines that do not match the exact field widths are skipped
// rather than partially decoded.
func decodeSegment(line string) (content.FlightItem, bool) {
	match := segmentPattern.FindStringSubmatch(line)
	if match == nil {
		return content.FlightItem{}, false
	}

	return content.FlightItem{
		Airline:      match[2],
		FlightNumber: match[2] + match[3],
		Route:        match[4] + "-" + match[5],
		Date:         match[6],
		Departure:    match[7],
		Arrival:      match[8],
		ServiceClass: match[10],
	}, true
}

// ExtractBookingReferences returns every booking reference code in text,
// deduplicated with first-seen order preserved across all patterns.
func ExtractBookingReferences(text string) []string {
	var refs []string
	seen := make(map[string]bool)

	for _, pattern := range bookingPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			ref := strings.ToUpper(match[1])
			if seen[ref] {
				continue
			}
			seen[ref] = true
			refs = append(refs, ref)
		}
	}

	return refs
}
