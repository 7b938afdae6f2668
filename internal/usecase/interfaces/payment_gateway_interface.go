package interfaces

import (
	"context"

	"payu_bridge/internal/domain/entities"
)

// IPaymentGateway abstracts the payment processor (PayU).
//
// AccessToken performs a client_credentials grant. The token is never cached:
// the order bridge fetches a fresh one per request and uses it for exactly one
// CreateOrder call.
type IPaymentGateway interface {
	AccessToken(ctx context.Context) (string, error)
	CreateOrder(ctx context.Context, accessToken string, order entities.ProcessorOrder) (entities.ProcessorOrderResult, error)
}

// INotificationVerifier checks that a webhook body was signed by the processor.
type INotificationVerifier interface {
	Verify(signatureHeader string, body []byte) error
}
