package entities

// PaymentStatus is the storefront payment status set by the bridge.
type PaymentStatus string

const PaymentStatusPaid PaymentStatus = "PAID"

// NotificationSignatureHeader carries PayU's signature of the webhook body.
const NotificationSignatureHeader = "OpenPayu-Signature"

// PaymentNotification is the webhook body PayU posts to /payu/notify.
// Only the fields the bridge reads are modelled.
type PaymentNotification struct {
	Order *NotificationOrder `json:"order"`
}

type NotificationOrder struct {
	OrderID      string  `json:"orderId,omitempty"`
	ExtOrderID   OrderID `json:"extOrderId,omitempty"`
	Status       string  `json:"status,omitempty"`
	TotalAmount  string  `json:"totalAmount,omitempty"`
	CurrencyCode string  `json:"currencyCode,omitempty"`
}

// ExtOrderID returns the storefront order id carried by the notification,
// or "" when the order object or the id is missing. Numeric ids decode the
// same way as on Order.
func (n PaymentNotification) ExtOrderID() string {
	if n.Order == nil || n.Order.ExtOrderID.IsZero() {
		return ""
	}
	return n.Order.ExtOrderID.String()
}

func (n PaymentNotification) ProcessorStatus() string {
	if n.Order == nil {
		return ""
	}
	return n.Order.Status
}
