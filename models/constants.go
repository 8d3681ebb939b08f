package models

// Case lifecycle statuses. These are the only values the status column may hold.
const (
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusPending    = "pending-confirmation"
	StatusCancelled  = "cancelled"

	// StatusAll is the filter sentinel meaning "no status filter".
	StatusAll = "all"

	// PaymentMethodUnpaid marks a case with no payment made yet.
	PaymentMethodUnpaid = "unpaid"
)

// CaseStatuses lists every valid status in display order.
var CaseStatuses = []string{
	StatusInProgress,
	StatusCompleted,
	StatusPending,
	StatusCancelled,
}

// CaseCategories is the fixed category set for the case form.
var CaseCategories = []string{
	"travel", "lodging", "venue", "dining", "transport", "meeting", "equipment", "service",
}

// Vendors are the known counterparties offered as suggestions.
var Vendors = []string{
	"KGI", "EXPEDIA", "TRIP", "SHAIJK", "Taiwan High Speed Rail", "Taichung Football Club",
}

// PaymentMethods are the common payment method presets.
var PaymentMethods = []string{
	"credit-card-online", "cash", "booking-credit-card", "installment", "bank-transfer", PaymentMethodUnpaid,
}

// CommonTags are suggested labels for quick tagging.
var CommonTags = []string{
	"flight", "lodging", "meeting", "business-trip", "taichung", "hong-kong", "business", "venue-rental", "transport", "dining",
}

// StatusColor is a background/text color pair used by clients to render badges.
type StatusColor struct {
	Bg   string `json:"bg"`
	Text string `json:"text"`
}

// StatusColors maps each status to its badge colors.
var StatusColors = map[string]StatusColor{
	StatusCompleted:  {Bg: "#dcfce7", Text: "#166534"},
	StatusInProgress: {Bg: "#dbeafe", Text: "#1e40af"},
	StatusPending:    {Bg: "#fef3c7", Text: "#92400e"},
	StatusCancelled:  {Bg: "#fecaca", Text: "#dc2626"},
}

// ValidStatus reports whether s is one of the fixed statuses.
func ValidStatus(s string) bool {
	for _, v := range CaseStatuses {
		if s == v {
			return true
		}
	}
	return false
}
