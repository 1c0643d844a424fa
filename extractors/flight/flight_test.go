package flight

import (
	"reflect"
	"testing"

	"github.com/skyhighcrm/email-extraction/content"
)

func TestDecodeSegment(t *testing.T) {
	items := Extract("1AA100JFKLAX15JAN08301145M(Y)")

	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d: %v", len(items), items)
	}
	want := content.FlightItem{
		Airline:      "AA",
		FlightNumber: "AA100",
		Route:        "JFK-LAX",
		Date:         "15JAN",
		Departure:    "0830",
		Arrival:      "1145",
		ServiceClass: "Y",
	}
	if !reflect.DeepEqual(items[0], want) {
		t.Errorf("Decoded segment mismatch:\n got %+v\nwant %+v", items[0], want)
	}
}

func TestDecodeSegmentThreeLetterAirline(t *testing.T) {
	items := Extract("2UAL2345MIAJFK03FEB14052359M(J)")

	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d: %v", len(items), items)
	}
	if items[0].Airline != "UAL" {
		t.Errorf("Expected airline UAL, got %s", items[0].Airline)
	}
	if items[0].FlightNumber != "UAL2345" {
		t.Errorf("Expected flight number UAL2345, got %s", items[0].FlightNumber)
	}
	if items[0].Route != "MIA-JFK" {
		t.Errorf("Expected route MIA-JFK, got %s", items[0].Route)
	}
	if items[0].ServiceClass != "J" {
		t.Errorf("Expected class J, got %s", items[0].ServiceClass)
	}
}

func TestMalformedSegmentIsSkipped(t *testing.T) {
	// Two-digit seat counts are not part of the dump format.
	items := Extract("12AA100JFKLAX15JAN08301145M(Y)")

	for _, item := range items {
		if item.Date != "" || item.ServiceClass != "" {
			t.Errorf("Malformed segment must not be decoded: %+v", item)
		}
	}
}

func TestTokenAndRouteAssociation(t *testing.T) {
	text := "Outbound flight AA 100\n" +
		"Route: JFK-LAX\n" +
		"Return flight DL 2450 MIA-JFK"

	items := Extract(text)

	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d: %v", len(items), items)
	}
	if items[0].FlightNumber != "AA100" || items[0].Route != "JFK-LAX" {
		t.Errorf("First item should pair AA100 with JFK-LAX, got %+v", items[0])
	}
	if items[1].FlightNumber != "DL2450" || items[1].Route != "MIA-JFK" {
		t.Errorf("Second item should pair DL2450 with MIA-JFK, got %+v", items[1])
	}
}

func TestRouteWithoutFlightCreatesItem(t *testing.T) {
	items := Extract("Your trip: JFK-LAX")

	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d: %v", len(items), items)
	}
	if items[0].Route != "JFK-LAX" {
		t.Errorf("Expected route-only item, got %+v", items[0])
	}
	if items[0].FlightNumber != "" {
		t.Errorf("Expected no flight number, got %+v", items[0])
	}
}

func TestBookingReferenceDedup(t *testing.T) {
	text := "PNR: ABC123 is confirmed.\nYour reference again: PNR: ABC123"

	refs := ExtractBookingReferences(text)

	if len(refs) != 1 || refs[0] != "ABC123" {
		t.Errorf("Expected single deduplicated ABC123, got %v", refs)
	}
}

func TestBookingReferencePatterns(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Booking: VX5M2P confirmed", "VX5M2P"},
		{"PNR: QW8RTZ", "QW8RTZ"},
		{"Confirmation number HJ4K9L", "HJ4K9L"},
		{"GHKWER Booked on 15 Jan", "GHKWER"},
		{"Reservation code XYZRWQ issued", "XYZRWQ"},
	}

	for _, tc := range cases {
		refs := ExtractBookingReferences(tc.text)
		if len(refs) == 0 {
			t.Errorf("ExtractBookingReferences(%q) found nothing, want %s", tc.text, tc.want)
			continue
		}
		found := false
		for _, ref := range refs {
			if ref == tc.want {
				found = true
			}
		}
		if !found {
			t.Errorf("ExtractBookingReferences(%q) = %v, want %s", tc.text, refs, tc.want)
		}
	}
}

func TestTokenDoesNotSpanLines(t *testing.T) {
	items := Extract("Operated by AA\n100 Main Street, Suite 4")

	if len(items) != 0 {
		t.Errorf("A code ending one line must not pair with a number opening the next, got %v", items)
	}
}

func TestNoFlightsInPlainProse(t *testing.T) {
	items := Extract("We truly enjoyed the beach and the food during our stay.")

	if len(items) != 0 {
		t.Errorf("Expected no items in plain prose, got %v", items)
	}
}
