// Package content provides the entity models produced by the email content
// extraction engine. Every record is created fresh inside one extraction call
// and has no identity beyond it; callers may cache a ParsedEmailContent keyed
// by (body, subject) since extraction is a pure function of its inputs.
package content

// ContactKind classifies a ContactInfo entry.
type ContactKind string

const (
	ContactPhone   ContactKind = "phone"
	ContactEmail   ContactKind = "email"
	ContactWebsite ContactKind = "website"
)

// FinancialKind classifies a FinancialItem entry.
type FinancialKind string

const (
	FinancialPrice  FinancialKind = "price"
	FinancialProfit FinancialKind = "profit"
	FinancialFee    FinancialKind = "fee"
	FinancialTotal  FinancialKind = "total"
)

// ImageKind classifies an inline image reference.
type ImageKind string

const (
	ImagePhoto      ImageKind = "photo"
	ImageIcon       ImageKind = "icon"
	ImageLogo       ImageKind = "logo"
	ImageAttachment ImageKind = "attachment"
)

// ContactInfo is a phone number, email address or website found in the body.
type ContactInfo struct {
	Kind  ContactKind `json:"kind"`
	Value string      `json:"value"`
	Label string      `json:"label,omitempty"`
}

// FinancialItem is a labeled monetary figure. Amount has thousands separators
// removed; unparsable matches are dropped by the extractor, never emitted.
type FinancialItem struct {
	Kind     FinancialKind `json:"kind"`
	Amount   float64       `json:"amount"`
	Currency string        `json:"currency"`
	Label    string        `json:"label"`
}

// FlightItem is one flight leg. Partial records are valid: route, flight
// number and booking reference are discovered by independent passes and
// merged positionally, so every field is optional.
type FlightItem struct {
	FlightNumber string `json:"flight_number,omitempty"`
	Airline      string `json:"airline,omitempty"`
	Route        string `json:"route,omitempty"`
	Date         string `json:"date,omitempty"`
	Departure    string `json:"departure,omitempty"`
	Arrival      string `json:"arrival,omitempty"`
	BookingRef   string `json:"booking_ref,omitempty"`
	ServiceClass string `json:"service_class,omitempty"`
}

// BusinessSignature is the trailing name/title/contact block of an email.
// A record only exists when a name was identified.
type BusinessSignature struct {
	Name    string   `json:"name"`
	Title   string   `json:"title,omitempty"`
	Company string   `json:"company,omitempty"`
	Phones  []string `json:"phones,omitempty"`
	Email   string   `json:"email,omitempty"`
	Website string   `json:"website,omitempty"`
	Address string   `json:"address,omitempty"`
}

// QuotedSection is one contiguous quoted block. Level is the leading
// quote-marker depth; Content has the markers stripped.
type QuotedSection struct {
	Level          int    `json:"level"`
	Content        string `json:"content"`
	OriginalSender string `json:"original_sender,omitempty"`
}

// ThreadMessage is one fragment of a reply thread. Sender and date are left
// unresolved because the split separators do not reliably expose headers.
type ThreadMessage struct {
	From     string `json:"from"`
	Date     string `json:"date"`
	Content  string `json:"content"`
	IsQuoted bool   `json:"is_quoted"`
}

// ImageInfo describes an inline image reference extracted during
// normalization.
type ImageInfo struct {
	Kind        ImageKind `json:"kind"`
	Description string    `json:"description"`
	Alt         string    `json:"alt,omitempty"`
	Inline      bool      `json:"inline"`
}

// ParsedEmailContent is the root record produced by one extraction call.
type ParsedEmailContent struct {
	CleanedText          string              `json:"cleaned_text"`
	ContactInfo          []ContactInfo       `json:"contact_info,omitempty"`
	FinancialItems       []FinancialItem     `json:"financial_items,omitempty"`
	FlightItems          []FlightItem        `json:"flight_items,omitempty"`
	Signature            *BusinessSignature  `json:"signature,omitempty"`
	BookingReferences    []string            `json:"booking_references,omitempty"`
	QuotedSections       []QuotedSection     `json:"quoted_sections,omitempty"`
	ThreadMessages       []ThreadMessage     `json:"thread_messages,omitempty"`
	Images               []ImageInfo         `json:"images,omitempty"`
	HasStructuredContent bool                `json:"has_structured_content"`
}
