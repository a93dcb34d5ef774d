package constants

type PaymentStatus int

const (
	PaymentStatusUnknown PaymentStatus = iota
	PaymentStatusPending
	PaymentStatusPartial
	PaymentStatusPaid
	PaymentStatusOverdue
	PaymentStatusWaived
)

func (s PaymentStatus) String() string {
	switch s {
	case PaymentStatusPending:
		return "pending"
	case PaymentStatusPartial:
		return "partial"
	case PaymentStatusPaid:
		return "paid"
	case PaymentStatusOverdue:
		return "overdue"
	case PaymentStatusWaived:
		return "waived"
	default:
		return "unknown"
	}
}

var paymentStatusMap = map[string]PaymentStatus{
	"pending": PaymentStatusPending,
	"partial": PaymentStatusPartial,
	"paid":    PaymentStatusPaid,
	"overdue": PaymentStatusOverdue,
	"waived":  PaymentStatusWaived,
	"unknown": PaymentStatusUnknown,
}

func ParsePaymentStatus(s string) PaymentStatus {
	if status, ok := paymentStatusMap[s]; ok {
		return status
	}
	return PaymentStatusUnknown
}
