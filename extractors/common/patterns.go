// Package common provides patterns and text helpers shared by the extractors.
package common

import "regexp"

// Compiled patterns shared across extractor packages. Go regexps carry no
// search cursor, so sharing them across calls and goroutines is safe; every
// FindAll* invocation starts from an independent search state.
var (
	// PhonePattern matches North-American-style phone numbers with an
	// optional country code and an optional extension. The extension clause
	// is the first capture group.
	PhonePattern = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?\b\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b(\s*(?:ext\.?|extension|x)\s*\d{1,5})?`)

	// EmailPattern matches bare email addresses.
	EmailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// WebsitePattern matches scheme-prefixed URLs, www-prefixed hosts and
	// bare domain-like tokens with a recognizable TLD.
	WebsitePattern = regexp.MustCompile(`(?i)\b(?:https?://[^\s<>()"']+|www\.[A-Za-z0-9.-]+\.[A-Za-z]{2,}(?:/[^\s<>()"']*)?|[A-Za-z0-9-]+(?:\.[A-Za-z0-9-]+)*\.(?:com|net|org|io|co|travel|info|biz)\b(?:/[^\s<>()"']*)?)`)
)
