package entities

import "encoding/json"

// ProcessorStatusSuccess is the statusCode PayU reports for an accepted order.
const ProcessorStatusSuccess = "SUCCESS"

// ProcessorOrder is the order-creation payload sent to PayU
// (POST {API_URL}/api/v2_1/orders). Amounts are in minor units.
type ProcessorOrder struct {
	NotifyURL     string             `json:"notifyUrl"`
	CustomerIP    string             `json:"customerIp"`
	MerchantPosID string             `json:"merchantPosId"`
	Description   string             `json:"description"`
	ExtOrderID    string             `json:"extOrderId"`
	CurrencyCode  string             `json:"currencyCode"`
	TotalAmount   string             `json:"totalAmount"`
	Products      []ProcessorProduct `json:"products"`
}

type ProcessorProduct struct {
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

type ProcessorStatus struct {
	StatusCode string `json:"statusCode"`
	StatusDesc string `json:"statusDesc,omitempty"`
	Code       string `json:"code,omitempty"`
}

// ProcessorOrderResult is PayU's answer to order creation.
//
// Raw keeps the full response body: on rejection it is echoed back to the
// storefront unchanged.
type ProcessorOrderResult struct {
	Status      *ProcessorStatus `json:"status,omitempty"`
	RedirectURI string           `json:"redirectUri,omitempty"`
	OrderID     string           `json:"orderId,omitempty"`
	ExtOrderID  string           `json:"extOrderId,omitempty"`

	Raw json.RawMessage `json:"-"`
}

func (r ProcessorOrderResult) Succeeded() bool {
	return r.Status != nil && r.Status.StatusCode == ProcessorStatusSuccess
}
