package constants

// Status ketersediaan penyedia jasa
const (
	AvailabilityAvailable   = "available"
	AvailabilityBusy        = "busy"
	AvailabilityUnavailable = "unavailable"
)

// Status permintaan layanan
const (
	RequestPending    = "pending"
	RequestAccepted   = "accepted"
	RequestInProgress = "in_progress"
	RequestCompleted  = "completed"
	RequestCancelled  = "cancelled"
)

// Metode pembayaran
const (
	MethodCreditCard   = "credit_card"
	MethodDebitCard    = "debit_card"
	MethodCash         = "cash"
	MethodPaypal       = "paypal"
	MethodBankTransfer = "bank_transfer"
)

// Status pembayaran
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

var availabilityStatuses = map[string]bool{
	AvailabilityAvailable:   true,
	AvailabilityBusy:        true,
	AvailabilityUnavailable: true,
}

var requestStatuses = map[string]bool{
	RequestPending:    true,
	RequestAccepted:   true,
	RequestInProgress: true,
	RequestCompleted:  true,
	RequestCancelled:  true,
}

var paymentMethods = map[string]bool{
	MethodCreditCard:   true,
	MethodDebitCard:    true,
	MethodCash:         true,
	MethodPaypal:       true,
	MethodBankTransfer: true,
}

var paymentStatuses = map[string]bool{
	PaymentPending:   true,
	PaymentCompleted: true,
	PaymentFailed:    true,
	PaymentRefunded:  true,
}

func IsValidAvailability(s string) bool  { return availabilityStatuses[s] }
func IsValidRequestStatus(s string) bool { return requestStatuses[s] }
func IsValidPaymentMethod(s string) bool { return paymentMethods[s] }
func IsValidPaymentStatus(s string) bool { return paymentStatuses[s] }
