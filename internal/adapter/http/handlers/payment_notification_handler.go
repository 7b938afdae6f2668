package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"payu_bridge/internal/domain/entities"
	"payu_bridge/internal/usecase"
)

// PaymentNotificationHandler receives PayU webhooks. Responses carry no body.
type PaymentNotificationHandler struct {
	usecase usecase.IPaymentNotificationUseCase
	log     *zap.Logger
}

func NewPaymentNotificationHandler(uc usecase.IPaymentNotificationUseCase, log *zap.Logger) *PaymentNotificationHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentNotificationHandler{usecase: uc, log: log.Named("http.notify")}
}

// Notify godoc
// @Summary      PayU payment notification
// @Tags         payu
// @Accept       json
// @Param        OpenPayu-Signature  header  string  false  "PayU signature"
// @Success      200
// @Failure      400
// @Failure      401
// @Failure      500
// @Router       /payu/notify [post]
func (h *PaymentNotificationHandler) Notify(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		h.log.Warn("unreadable notification body", zap.Error(err))
		c.Status(http.StatusBadRequest)
		return
	}

	err = h.usecase.HandleNotification(c.Request.Context(), raw, c.GetHeader(entities.NotificationSignatureHeader))
	if err != nil {
		status := mapNotificationError(err)
		h.log.Error("notification failed", zap.Int("status", status), zap.Error(err))
		c.Status(status)
		return
	}

	c.Status(http.StatusOK)
}

func mapNotificationError(err error) int {
	var validErr *entities.ValidationError
	switch {
	case errors.As(err, &validErr):
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrInvalidSignature):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
