package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"payu_bridge/internal/domain/entities"
	"payu_bridge/internal/usecase/interfaces"
)

const (
	// NotifyPath is where PayU delivers payment notifications.
	NotifyPath = "/payu/notify"

	defaultCustomerIP = "127.0.0.1"

	MsgNoOrderData = "No order data received from Ecwid"
)

// IOrderBridgeUseCase turns a storefront order into a PayU checkout.
type IOrderBridgeUseCase interface {
	CreatePayment(ctx context.Context, cmd CreatePaymentCommand) (CreatePaymentResult, error)
}

// CreatePaymentCommand carries the inbound order plus what the HTTP layer
// knows about the caller and about this service's own origin.
type CreatePaymentCommand struct {
	Order      *entities.Order
	CustomerIP string
	Origin     string
}

type CreatePaymentResult struct {
	RedirectURL      string
	ProcessorOrderID string
	ExtOrderID       string
}

type OrderBridgeSettings struct {
	MerchantPosID   string
	DefaultCurrency string
	// PublicBaseURL, when set, replaces the request-derived origin in the
	// notify-callback URL.
	PublicBaseURL string
}

type OrderBridgeUseCase struct {
	gateway  interfaces.IPaymentGateway
	settings OrderBridgeSettings
	log      *zap.Logger
}

var _ IOrderBridgeUseCase = (*OrderBridgeUseCase)(nil)

func NewOrderBridgeUseCase(gateway interfaces.IPaymentGateway, settings OrderBridgeSettings, log *zap.Logger) *OrderBridgeUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderBridgeUseCase{gateway: gateway, settings: settings, log: log.Named("usecase.order")}
}

// CreatePayment acquires a fresh token, validates and converts the order,
// submits it to PayU and returns the checkout redirect URL.
//
// Errors belong to the entities taxonomy: *AuthError, *ValidationError,
// *UpstreamError (Payload = PayU body) or *InternalError.
func (u *OrderBridgeUseCase) CreatePayment(ctx context.Context, cmd CreatePaymentCommand) (CreatePaymentResult, error) {
	if u.gateway == nil {
		return CreatePaymentResult{}, &entities.InternalError{Op: "create payment", Err: errors.New("payment gateway not configured")}
	}

	token, err := u.gateway.AccessToken(ctx)
	if err != nil {
		u.log.Error("access token failed", zap.Error(err))
		return CreatePaymentResult{}, entities.AsInternal("access token", err)
	}

	if cmd.Order == nil {
		u.log.Warn("request without order data")
		return CreatePaymentResult{}, entities.NewValidationError("", MsgNoOrderData)
	}
	if err := validateOrder(*cmd.Order); err != nil {
		u.log.Warn("invalid order", zap.String("order_id", cmd.Order.ID.String()), zap.Error(err))
		return CreatePaymentResult{}, err
	}

	payload := u.buildProcessorOrder(*cmd.Order, cmd.CustomerIP, cmd.Origin)
	u.log.Info("submitting order",
		zap.String("ext_order_id", payload.ExtOrderID),
		zap.String("total_amount", payload.TotalAmount),
		zap.String("currency", payload.CurrencyCode),
		zap.Int("products", len(payload.Products)),
	)

	result, err := u.gateway.CreateOrder(ctx, token, payload)
	if err != nil {
		u.log.Error("create order failed", zap.String("ext_order_id", payload.ExtOrderID), zap.Error(err))
		return CreatePaymentResult{}, entities.AsInternal("create order", err)
	}

	if !result.Succeeded() {
		u.log.Error("payu order creation rejected",
			zap.String("ext_order_id", payload.ExtOrderID),
			zap.ByteString("response", result.Raw),
		)
		return CreatePaymentResult{}, &entities.UpstreamError{
			Source:  "payu",
			Body:    string(result.Raw),
			Payload: result.Raw,
		}
	}

	u.log.Info("payu order created",
		zap.String("ext_order_id", payload.ExtOrderID),
		zap.String("payu_order_id", result.OrderID),
	)
	return CreatePaymentResult{
		RedirectURL:      result.RedirectURI,
		ProcessorOrderID: result.OrderID,
		ExtOrderID:       payload.ExtOrderID,
	}, nil
}

func (u *OrderBridgeUseCase) buildProcessorOrder(o entities.Order, customerIP, origin string) entities.ProcessorOrder {
	products := make([]entities.ProcessorProduct, 0, len(o.Items))
	for _, it := range o.Items {
		products = append(products, entities.ProcessorProduct{
			Name:      it.Name,
			UnitPrice: entities.ToMinorUnits(it.Price.Decimal),
			Quantity:  it.Quantity,
		})
	}

	customerIP = strings.TrimSpace(customerIP)
	if customerIP == "" {
		customerIP = defaultCustomerIP
	}

	extOrderID := o.ID.String()
	return entities.ProcessorOrder{
		NotifyURL:     u.notifyURL(origin),
		CustomerIP:    customerIP,
		MerchantPosID: u.settings.MerchantPosID,
		Description:   fmt.Sprintf("Order #%s", extOrderID),
		ExtOrderID:    extOrderID,
		CurrencyCode:  o.CurrencyOr(u.settings.DefaultCurrency),
		TotalAmount:   strconv.FormatInt(entities.ToMinorUnits(o.Total.Decimal), 10),
		Products:      products,
	}
}

func (u *OrderBridgeUseCase) notifyURL(origin string) string {
	base := strings.TrimSpace(u.settings.PublicBaseURL)
	if base == "" {
		base = origin
	}
	return strings.TrimRight(base, "/") + NotifyPath
}

func validateOrder(o entities.Order) error {
	if o.ID.IsZero() {
		return entities.NewValidationError("order.id", "is required")
	}
	if len(o.Items) == 0 {
		return entities.NewValidationError("order.items", "must contain at least one item")
	}
	if err := validateAmount("order.total", o.Total); err != nil {
		return err
	}
	for i, it := range o.Items {
		if err := validateAmount(fmt.Sprintf("order.items[%d].price", i), it.Price); err != nil {
			return err
		}
		if it.Quantity <= 0 {
			return entities.NewValidationError(fmt.Sprintf("order.items[%d].quantity", i), "must be greater than 0")
		}
	}
	return nil
}

func validateAmount(field string, amount decimal.NullDecimal) error {
	switch {
	case !amount.Valid:
		return entities.NewValidationError(field, "is required")
	case amount.Decimal.IsNegative():
		return entities.NewValidationError(field, "must not be negative")
	case !entities.FitsMinorUnits(amount.Decimal):
		return entities.NewValidationError(field, "is out of range")
	}
	return nil
}
