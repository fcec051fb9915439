package intake

// Exact rejection messages are part of the API contract; clients match
// on them.
const (
	MsgEmptyOrderItems    = "orderItems must be a non-empty array"
	MsgIncompleteShipping = "Incomplete shippingInfo"
	MsgBadTotalPrice      = "totalPrice must be a number"
	MsgBadOrderItem       = "Each order item must include id, name, imageUrl, price and quantity"
	MsgStoreValidation    = "Validation error"
)

// ValidationError marks a submission the client can fix and resend.
// Fields carries store-level field errors when the persisted document
// failed schema constraints.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}
