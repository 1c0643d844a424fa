// Package extractors runs the email content extraction pipeline: one
// normalization pass followed by the independent entity extractors, merged
// into a single ParsedEmailContent.
package extractors

import (
	"github.com/rs/zerolog"

	"github.com/skyhighcrm/email-extraction/content"
	"github.com/skyhighcrm/email-extraction/extractors/contact"
	"github.com/skyhighcrm/email-extraction/extractors/financial"
	"github.com/skyhighcrm/email-extraction/extractors/flight"
	"github.com/skyhighcrm/email-extraction/extractors/normalizer"
	"github.com/skyhighcrm/email-extraction/extractors/quote"
	"github.com/skyhighcrm/email-extraction/extractors/signature"
)

// Engine ties the extractors together. The zero value is usable; extraction
// is a pure function with no state beyond the injected logger.
type Engine struct {
	log zerolog.Logger
}

// NewEngine returns an engine that reports recovered extractor failures to
// logger.
func NewEngine(logger zerolog.Logger) *Engine {
	return &Engine{log: logger}
}

// Parse is a convenience wrapper around a silent engine.
func Parse(rawBody, subject string, extractionEnabled bool) *content.ParsedEmailContent {
	return NewEngine(zerolog.Nop()).Parse(rawBody, subject, extractionEnabled)
}

// Parse normalizes rawBody and, unless extraction is disabled, runs every
// entity extractor against the normalized text. A failure inside one
// extractor yields an empty result for that entity kind only; Parse itself
// never fails.
func (e *Engine) Parse(rawBody, subject string, extractionEnabled bool) *content.ParsedEmailContent {
	cleaned, images := normalizer.Normalize(rawBody)

	result := &content.ParsedEmailContent{CleanedText: cleaned}
	if !extractionEnabled {
		return result
	}
	result.Images = images

	e.run(subject, "contacts", func() { result.ContactInfo = contact.Extract(cleaned) })
	e.run(subject, "financial", func() { result.FinancialItems = financial.Extract(cleaned) })
	e.run(subject, "flights", func() { result.FlightItems = flight.Extract(cleaned) })
	e.run(subject, "booking_references", func() { result.BookingReferences = flight.ExtractBookingReferences(cleaned) })
	e.run(subject, "signature", func() { result.Signature = signature.Extract(cleaned) })
	e.run(subject, "quoted_sections", func() { result.QuotedSections = quote.ExtractQuotedSections(cleaned) })
	e.run(subject, "thread", func() { result.ThreadMessages = quote.ParseThread(cleaned) })

	result.HasStructuredContent = len(result.ContactInfo) > 0 ||
		len(result.FinancialItems) > 0 ||
		len(result.FlightItems) > 0 ||
		result.Signature != nil ||
		len(result.BookingReferences) > 0 ||
		len(result.Images) > 0

	return result
}

// run isolates one extractor call so a panic in it cannot abort the others.
func (e *Engine) run(subject, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn().
				Str("extractor", name).
				Str("subject", subject).
				Interface("panic", r).
				Msg("extractor failed, result dropped")
		}
	}()
	fn()
}
