package constants

// BillAction defines the type for bill lifecycle actions in messaging.
// Using a dedicated type enhances type safety.
type BillAction string

const (
	BillActionCreate        BillAction = "create"
	BillActionPaymentUpdate BillAction = "payment_update"
	BillActionDelete        BillAction = "delete"
)

// String returns the string representation of the BillAction.
func (a BillAction) String() string {
	return string(a)
}
