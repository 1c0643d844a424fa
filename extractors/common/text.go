package common

import "strings"

// Lines splits text into lines with carriage returns removed.
func Lines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
}

// TrimmedLines returns the lines of text with surrounding whitespace removed
// from each line.
func TrimmedLines(text string) []string {
	lines := Lines(text)
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}

// FindStringWithoutMarkers returns the trimmed text between startMarker and
// endMarker. An empty endMarker means end of line. Returns "" when the start
// marker is absent.
func FindStringWithoutMarkers(text, startMarker, endMarker string) string {
	startIdx := strings.Index(text, startMarker)
	if startIdx == -1 {
		return ""
	}

	remaining := text[startIdx+len(startMarker):]
	if endMarker == "" {
		endMarker = "\n"
	}

	endIdx := strings.Index(remaining, endMarker)
	if endIdx == -1 {
		return strings.TrimSpace(remaining)
	}
	return strings.TrimSpace(remaining[:endIdx])
}
