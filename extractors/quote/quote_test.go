package quote

import (
	"testing"
)

func TestExtractNestedQuoteLevels(t *testing.T) {
	text := `> first level reply
> still first level
>> second level
>>> third level`

	sections := ExtractQuotedSections(text)

	if len(sections) != 3 {
		t.Fatalf("Expected 3 sections, got %d: %v", len(sections), sections)
	}
	for i, wantLevel := range []int{1, 2, 3} {
		if sections[i].Level != wantLevel {
			t.Errorf("Section %d: expected level %d, got %d", i, wantLevel, sections[i].Level)
		}
	}
	if sections[0].Content != "first level reply\nstill first level" {
		t.Errorf("Unexpected level-1 content: %q", sections[0].Content)
	}
	if sections[1].Content != "second level" {
		t.Errorf("Expected markers stripped, got %q", sections[1].Content)
	}
	if sections[2].Content != "third level" {
		t.Errorf("Expected markers stripped, got %q", sections[2].Content)
	}
}

func TestExtractQuoteLevelTransitions(t *testing.T) {
	text := `my reply text
> quoted once
back to my text
> quoted again`

	sections := ExtractQuotedSections(text)

	if len(sections) != 2 {
		t.Fatalf("Expected 2 sections, got %d: %v", len(sections), sections)
	}
	if sections[0].Content != "quoted once" || sections[1].Content != "quoted again" {
		t.Errorf("Unexpected contents: %v", sections)
	}
}

func TestExtractQuoteOriginalSender(t *testing.T) {
	text := `Sounds good to me.

On Mon, Jan 5, 2026, Anna Kovacs wrote:
> the fare expires tonight`

	sections := ExtractQuotedSections(text)

	if len(sections) != 1 {
		t.Fatalf("Expected 1 section, got %d: %v", len(sections), sections)
	}
	if sections[0].OriginalSender != "Mon, Jan 5, 2026, Anna Kovacs" {
		t.Errorf("Unexpected original sender: %q", sections[0].OriginalSender)
	}
}

func TestExtractNoQuotes(t *testing.T) {
	sections := ExtractQuotedSections("just a plain body with no quoting at all")

	if len(sections) != 0 {
		t.Errorf("Expected no sections, got %v", sections)
	}
}

func TestParseThreadSplitsOnWroteLine(t *testing.T) {
	text := `Thanks, see below.

On Mon, Jan 5, 2026 John wrote:
> earlier message`

	messages := ParseThread(text)

	if len(messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d: %v", len(messages), messages)
	}
	if messages[0].IsQuoted {
		t.Error("First fragment must not be quoted")
	}
	if !messages[1].IsQuoted {
		t.Error("Later fragments must be quoted")
	}
	if messages[0].From != "Unknown" || messages[0].Date != "" {
		t.Errorf("Sender/date must stay unresolved, got %+v", messages[0])
	}
	if messages[0].Content != "Thanks, see below." {
		t.Errorf("Unexpected first content: %q", messages[0].Content)
	}
	if messages[1].Content != "earlier message" {
		t.Errorf("Unexpected quoted content: %q", messages[1].Content)
	}
}

func TestParseThreadSplitsOnFromHeader(t *testing.T) {
	text := `Confirmed, thank you!

From: reservations@skyhightravel.com
Great news, your upgrade cleared.`

	messages := ParseThread(text)

	if len(messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d: %v", len(messages), messages)
	}
	if messages[1].Content != "Great news, your upgrade cleared." {
		t.Errorf("Unexpected second fragment: %q", messages[1].Content)
	}
}

func TestParseThreadLeadingSeparatorQuoted(t *testing.T) {
	text := `> forwarded fare details
valid through Friday`

	messages := ParseThread(text)

	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d: %v", len(messages), messages)
	}
	if !messages[0].IsQuoted {
		t.Error("Fragment after a leading separator must be quoted")
	}
	if messages[0].Content != "forwarded fare details\nvalid through Friday" {
		t.Errorf("Unexpected content: %q", messages[0].Content)
	}
}

func TestParseThreadSingleFragment(t *testing.T) {
	messages := ParseThread("no separators anywhere in this body")

	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}
	if messages[0].IsQuoted {
		t.Error("Single fragment must not be quoted")
	}
}
