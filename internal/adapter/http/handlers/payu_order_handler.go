package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "payu_bridge/internal/adapter/http/dto/request"
	response "payu_bridge/internal/adapter/http/dto/response"
	"payu_bridge/internal/adapter/http/middleware"
	"payu_bridge/internal/domain/entities"
	"payu_bridge/internal/usecase"
	"payu_bridge/pkg"
)

const MsgPaymentInitFailed = "Payment initialization failed"

// PayUOrderHandler handles order-creation requests coming from Ecwid.
type PayUOrderHandler struct {
	usecase usecase.IOrderBridgeUseCase
	log     *zap.Logger
}

func NewPayUOrderHandler(uc usecase.IOrderBridgeUseCase, log *zap.Logger) *PayUOrderHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PayUOrderHandler{usecase: uc, log: log.Named("http.payu")}
}

// CreateOrder godoc
// @Summary      Create a PayU checkout for an Ecwid order
// @Tags         payu
// @Accept       json
// @Produce      json
// @Param        body  body      request.PayUOrderRequest  true  "Ecwid order"
// @Success      200   {object}  response.PayUOrderResponse
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /payu [post]
func (h *PayUOrderHandler) CreateOrder(c *gin.Context) {
	payload, err := readPayUOrderRequest(c)
	if err != nil {
		h.log.Warn("invalid request body", zap.Error(err))
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.CreatePayment(c.Request.Context(), usecase.CreatePaymentCommand{
		Order:      payload.Order,
		CustomerIP: c.ClientIP(),
		Origin:     requestOrigin(c.Request, c.GetBool(middleware.ContextKeyTrustedProxy)),
	})
	if err != nil {
		appErr := mapOrderBridgeError(err)
		h.log.Error("create payment failed",
			zap.String("code", appErr.Code),
			zap.Int("status", appErr.HTTPStatus),
			zap.Error(err),
		)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCreatePaymentResult(res))
}

func readPayUOrderRequest(c *gin.Context) (request.PayUOrderRequest, error) {
	var payload request.PayUOrderRequest
	raw, err := c.GetRawData()
	if err != nil {
		return payload, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, err
	}
	return payload, nil
}

// requestOrigin rebuilds scheme://host as the caller reached this service.
// X-Forwarded-Proto is only read when the peer is a trusted proxy.
func requestOrigin(r *http.Request, trustForwarded bool) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); trustForwarded && proto != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}
	return scheme + "://" + r.Host
}

// mapOrderBridgeError echoes processor rejections and hides everything else
// behind a generic message.
func mapOrderBridgeError(err error) *pkg.AppError {
	var (
		validErr    *entities.ValidationError
		upstreamErr *entities.UpstreamError
	)
	switch {
	case errors.As(err, &validErr):
		return pkg.NewDomainError("INVALID_REQUEST", validErr.Error(), err, http.StatusBadRequest)
	case errors.As(err, &upstreamErr):
		appErr := pkg.NewDomainError("PAYMENT_PROVIDER_REJECTED", "Payment provider rejected the order", err, http.StatusBadRequest)
		if len(upstreamErr.Payload) > 0 && json.Valid(upstreamErr.Payload) {
			return appErr.WithDetail(upstreamErr.Payload)
		}
		return appErr
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", MsgPaymentInitFailed, err, http.StatusInternalServerError)
	}
}
