package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"payu_bridge/internal/domain/entities"
	"payu_bridge/internal/usecase/interfaces"
)

// IPaymentNotificationUseCase relays PayU payment notifications to Ecwid.
type IPaymentNotificationUseCase interface {
	HandleNotification(ctx context.Context, body []byte, signatureHeader string) error
}

// PaymentNotificationUseCase marks the originating storefront order as PAID.
//
// Without a verifier any caller can trigger the update; the verifier is only
// wired when VERIFY_NOTIFY_SIGNATURE is enabled.
type PaymentNotificationUseCase struct {
	storefront interfaces.IStorefrontClient
	verifier   interfaces.INotificationVerifier
	log        *zap.Logger
}

var _ IPaymentNotificationUseCase = (*PaymentNotificationUseCase)(nil)

func NewPaymentNotificationUseCase(storefront interfaces.IStorefrontClient, verifier interfaces.INotificationVerifier, log *zap.Logger) *PaymentNotificationUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentNotificationUseCase{storefront: storefront, verifier: verifier, log: log.Named("usecase.notify")}
}

func (u *PaymentNotificationUseCase) HandleNotification(ctx context.Context, body []byte, signatureHeader string) error {
	u.log.Info("payu notification received", zap.ByteString("body", body))

	if u.verifier != nil {
		if err := u.verifier.Verify(signatureHeader, body); err != nil {
			u.log.Error("notification signature rejected", zap.String("signature", signatureHeader), zap.Error(err))
			return entities.ErrInvalidSignature
		}
	}

	var n entities.PaymentNotification
	if err := json.Unmarshal(body, &n); err != nil {
		u.log.Error("notification body is not valid json", zap.Error(err))
		return entities.NewValidationError("", "Invalid notification body")
	}

	orderID := n.ExtOrderID()
	if orderID == "" {
		u.log.Error("no order id found in payu notification")
		return entities.NewValidationError("order.extOrderId", "is required")
	}

	if u.storefront == nil {
		return &entities.InternalError{Op: "update payment status", Err: errors.New("storefront client not configured")}
	}

	if err := u.storefront.UpdatePaymentStatus(ctx, orderID, entities.PaymentStatusPaid); err != nil {
		u.log.Error("failed to update ecwid order",
			zap.String("order_id", orderID),
			zap.String("payu_status", n.ProcessorStatus()),
			zap.Error(err),
		)
		return entities.AsInternal("update payment status", err)
	}

	u.log.Info("order marked as paid",
		zap.String("order_id", orderID),
		zap.String("payu_status", n.ProcessorStatus()),
	)
	return nil
}
