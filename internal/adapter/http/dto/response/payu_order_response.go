package response

import "payu_bridge/internal/usecase"

// PayUOrderResponse tells Ecwid where to send the customer.
type PayUOrderResponse struct {
	RedirectURL string `json:"redirectUrl"`
}

func FromCreatePaymentResult(r usecase.CreatePaymentResult) PayUOrderResponse {
	return PayUOrderResponse{RedirectURL: r.RedirectURL}
}
