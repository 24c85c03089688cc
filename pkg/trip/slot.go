package trip

// TicketKind identifies what one ticket slot holds.
type TicketKind string

// String returns the string representation of a TicketKind.
func (k TicketKind) String() string {
	return string(k)
}

// Ticket slot kinds.
const (
	// KindPDF is a PDF document slot.
	KindPDF TicketKind = "pdf"
	// KindQRImage is a QR-code image slot.
	KindQRImage TicketKind = "qr_image"
	// KindLink is a plain external ticket link.
	KindLink TicketKind = "link"
	// KindLinkWithCode is an external link paired with a verification code.
	KindLinkWithCode TicketKind = "link_with_code"
	// KindApp is a jump into a native application.
	KindApp TicketKind = "app"
	// KindGmail is a jump into a Gmail subject search.
	KindGmail TicketKind = "gmail"
)

// TicketType is the overall ticketing classification of an activity.
type TicketType string

// String returns the string representation of a TicketType.
func (t TicketType) String() string {
	return string(t)
}

// Ticket type classifications.
const (
	TicketNone         TicketType = "NONE"
	TicketQRImage      TicketType = "QR_IMAGE"
	TicketPDFFile      TicketType = "PDF_FILE"
	TicketLink         TicketType = "LINK"
	TicketLinkWithCode TicketType = "LINK_WITH_CODE"
	TicketAppJump      TicketType = "APP_JUMP"
	TicketGmailJump    TicketType = "GMAIL_JUMP"
)

// TicketSlot is one unit of proof attached to an activity: a PDF, a QR
// image, a link, an app jump, or an email reference. Slots are created as
// placeholders by the format parser, filled in during reconciliation, and
// immutable afterwards.
type TicketSlot struct {
	ID    string     `json:"id" yaml:"id"`
	Kind  TicketKind `json:"kind" yaml:"kind"`
	Label string     `json:"label" yaml:"label"`

	// Value carries the kind-specific payload. Nil for an unfilled
	// placeholder (the consumer renders it as pending manual input).
	Value *SlotValue `json:"value,omitempty" yaml:"value,omitempty"`
}

// Filled reports whether the slot has a value payload.
func (s TicketSlot) Filled() bool {
	return s.Value != nil
}

// SlotValue is the kind-specific payload of a ticket slot. Which fields are
// set depends on the slot kind:
//
//   - pdf, qr_image, link: URL (a file locator or external link)
//   - link_with_code: URL, Code, and optionally ServiceName/ReservationID
//   - app: AppName, PackageName, PlayStoreURL, IntentURL
//   - gmail: Subject and the prebuilt search URL
type SlotValue struct {
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Verification-code voucher fields.
	ServiceName   string `json:"service_name,omitempty" yaml:"service_name,omitempty"`
	ReservationID string `json:"reservation_id,omitempty" yaml:"reservation_id,omitempty"`
	Code          string `json:"code,omitempty" yaml:"code,omitempty"`

	// App-jump fields.
	AppName      string `json:"app_name,omitempty" yaml:"app_name,omitempty"`
	PackageName  string `json:"package_name,omitempty" yaml:"package_name,omitempty"`
	PlayStoreURL string `json:"play_store_url,omitempty" yaml:"play_store_url,omitempty"`
	IntentURL    string `json:"intent_url,omitempty" yaml:"intent_url,omitempty"`

	// Gmail fields.
	Subject string `json:"subject,omitempty" yaml:"subject,omitempty"`
}

// SlotsOfKind returns the activity's slots of the given kind, in order.
func (a *Activity) SlotsOfKind(kind TicketKind) []TicketSlot {
	var out []TicketSlot
	for _, s := range a.TicketSlots {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}
