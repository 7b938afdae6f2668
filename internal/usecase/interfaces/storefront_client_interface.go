package interfaces

import (
	"context"

	"payu_bridge/internal/domain/entities"
)

// IStorefrontClient abstracts the storefront order API (Ecwid).
type IStorefrontClient interface {
	UpdatePaymentStatus(ctx context.Context, orderID string, status entities.PaymentStatus) error
}
