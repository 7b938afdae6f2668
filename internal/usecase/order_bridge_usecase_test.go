package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"payu_bridge/internal/domain/entities"
	mock_interfaces "payu_bridge/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func sampleOrder() *entities.Order {
	return &entities.Order{
		ID:    "123",
		Items: []entities.LineItem{{Name: "A", Price: decimal.NewNullDecimal(decimal.RequireFromString("5.00")), Quantity: 2}},
		Total: decimal.NewNullDecimal(decimal.RequireFromString("10.00")),
	}
}

func amount(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func defaultSettings() OrderBridgeSettings {
	return OrderBridgeSettings{MerchantPosID: "300746", DefaultCurrency: "PLN"}
}

func TestOrderBridgeUseCase_CreatePayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewOrderBridgeUseCase(gateway, defaultSettings(), nil)

	gateway.EXPECT().AccessToken(gomock.Any()).Return("tok-1", nil)
	gateway.EXPECT().CreateOrder(gomock.Any(), "tok-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, p entities.ProcessorOrder) (entities.ProcessorOrderResult, error) {
			if p.TotalAmount != "1000" {
				t.Fatalf("expected totalAmount 1000, got %s", p.TotalAmount)
			}
			if len(p.Products) != 1 || p.Products[0].UnitPrice != 500 || p.Products[0].Quantity != 2 || p.Products[0].Name != "A" {
				t.Fatalf("unexpected products: %+v", p.Products)
			}
			if p.ExtOrderID != "123" || p.Description != "Order #123" {
				t.Fatalf("unexpected ids: %+v", p)
			}
			if p.CurrencyCode != "PLN" || p.MerchantPosID != "300746" {
				t.Fatalf("unexpected merchant fields: %+v", p)
			}
			if p.NotifyURL != "https://bridge.example.com/payu/notify" {
				t.Fatalf("unexpected notifyUrl: %s", p.NotifyURL)
			}
			if p.CustomerIP != "10.0.0.7" {
				t.Fatalf("unexpected customerIp: %s", p.CustomerIP)
			}
			return entities.ProcessorOrderResult{
				Status:      &entities.ProcessorStatus{StatusCode: entities.ProcessorStatusSuccess},
				RedirectURI: "https://secure.payu.com/pay/?orderId=WZ1",
				OrderID:     "WZ1",
			}, nil
		})

	res, err := uc.CreatePayment(context.Background(), CreatePaymentCommand{
		Order:      sampleOrder(),
		CustomerIP: "10.0.0.7",
		Origin:     "https://bridge.example.com/",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.RedirectURL != "https://secure.payu.com/pay/?orderId=WZ1" || res.ProcessorOrderID != "WZ1" || res.ExtOrderID != "123" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestOrderBridgeUseCase_CreatePayment_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	settings := defaultSettings()
	settings.PublicBaseURL = "https://public.example.com"
	uc := NewOrderBridgeUseCase(gateway, settings, nil)

	order := sampleOrder()
	order.Currency = "EUR"
	order.Total = decimal.NewNullDecimal(decimal.RequireFromString("19.99"))

	gateway.EXPECT().AccessToken(gomock.Any()).Return("tok", nil)
	gateway.EXPECT().CreateOrder(gomock.Any(), "tok", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, p entities.ProcessorOrder) (entities.ProcessorOrderResult, error) {
			if p.CustomerIP != "127.0.0.1" {
				t.Fatalf("expected default customer ip, got %q", p.CustomerIP)
			}
			if p.NotifyURL != "https://public.example.com/payu/notify" {
				t.Fatalf("expected public base url to win, got %s", p.NotifyURL)
			}
			if p.CurrencyCode != "EUR" || p.TotalAmount != "1999" {
				t.Fatalf("unexpected amount fields: %+v", p)
			}
			return entities.ProcessorOrderResult{Status: &entities.ProcessorStatus{StatusCode: "SUCCESS"}, RedirectURI: "https://r"}, nil
		})

	if _, err := uc.CreatePayment(context.Background(), CreatePaymentCommand{Order: order, Origin: "http://ignored"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrderBridgeUseCase_CreatePayment_AuthFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewOrderBridgeUseCase(gateway, defaultSettings(), nil)

	gateway.EXPECT().AccessToken(gomock.Any()).Return("", &entities.AuthError{StatusCode: 401, Body: `{"error":"invalid_client"}`})

	_, err := uc.CreatePayment(context.Background(), CreatePaymentCommand{Order: sampleOrder()})
	var authErr *entities.AuthError
	if !errors.As(err, &authErr) || authErr.StatusCode != 401 {
		t.Fatalf("expected AuthError 401, got %v", err)
	}
}

func TestOrderBridgeUseCase_CreatePayment_TokenTransportFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewOrderBridgeUseCase(gateway, defaultSettings(), nil)

	gateway.EXPECT().AccessToken(gomock.Any()).Return("", context.DeadlineExceeded)

	_, err := uc.CreatePayment(context.Background(), CreatePaymentCommand{Order: sampleOrder()})
	var internal *entities.InternalError
	if !errors.As(err, &internal) {
		t.Fatalf("expected InternalError, got %v", err)
	}
}

func TestOrderBridgeUseCase_CreatePayment_Validation(t *testing.T) {
	cases := []struct {
		name  string
		order *entities.Order
		field string
	}{
		{"missing order", nil, ""},
		{"missing id", &entities.Order{Items: sampleOrder().Items, Total: amount("1")}, "order.id"},
		{"no items", &entities.Order{ID: "1", Total: amount("1")}, "order.items"},
		{"negative total", &entities.Order{ID: "1", Items: sampleOrder().Items, Total: amount("-1")}, "order.total"},
		{"negative price", &entities.Order{ID: "1", Total: amount("1"), Items: []entities.LineItem{{Name: "A", Price: amount("-1"), Quantity: 1}}}, "order.items[0].price"},
		{"zero quantity", &entities.Order{ID: "1", Total: amount("1"), Items: []entities.LineItem{{Name: "A", Price: amount("1")}}}, "order.items[0].quantity"},
		{"missing total", &entities.Order{ID: "1", Items: sampleOrder().Items}, "order.total"},
		{"missing price", &entities.Order{ID: "1", Total: amount("1"), Items: []entities.LineItem{{Name: "x", Quantity: 1}}}, "order.items[0].price"},
		{"total overflows minor units", &entities.Order{ID: "1", Total: amount("1e20"), Items: sampleOrder().Items}, "order.total"},
		{"price overflows minor units", &entities.Order{ID: "1", Total: amount("1"), Items: []entities.LineItem{{Name: "x", Price: amount("92233720368547758.08"), Quantity: 1}}}, "order.items[0].price"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewOrderBridgeUseCase(gateway, defaultSettings(), nil)

			gateway.EXPECT().AccessToken(gomock.Any()).Return("tok", nil)

			_, err := uc.CreatePayment(context.Background(), CreatePaymentCommand{Order: tc.order})
			var validErr *entities.ValidationError
			if !errors.As(err, &validErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if validErr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, validErr.Field)
			}
			if tc.order == nil && validErr.Message != MsgNoOrderData {
				t.Fatalf("unexpected message: %s", validErr.Message)
			}
		})
	}
}

func TestOrderBridgeUseCase_CreatePayment_ProcessorRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewOrderBridgeUseCase(gateway, defaultSettings(), nil)

	raw := json.RawMessage(`{"status":{"statusCode":"ERROR_VALUE_MISSING","statusDesc":"Missing required field"}}`)
	gateway.EXPECT().AccessToken(gomock.Any()).Return("tok", nil)
	gateway.EXPECT().CreateOrder(gomock.Any(), "tok", gomock.Any()).Return(entities.ProcessorOrderResult{
		Status: &entities.ProcessorStatus{StatusCode: "ERROR_VALUE_MISSING"},
		Raw:    raw,
	}, nil)

	_, err := uc.CreatePayment(context.Background(), CreatePaymentCommand{Order: sampleOrder()})
	var upstream *entities.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.Source != "payu" || string(upstream.Payload) != string(raw) {
		t.Fatalf("unexpected upstream error: %+v", upstream)
	}
}

func TestOrderBridgeUseCase_CreatePayment_GatewayError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewOrderBridgeUseCase(gateway, defaultSettings(), nil)

	gateway.EXPECT().AccessToken(gomock.Any()).Return("tok", nil)
	gateway.EXPECT().CreateOrder(gomock.Any(), "tok", gomock.Any()).Return(entities.ProcessorOrderResult{}, errors.New("connection reset"))

	_, err := uc.CreatePayment(context.Background(), CreatePaymentCommand{Order: sampleOrder()})
	var internal *entities.InternalError
	if !errors.As(err, &internal) || internal.Op != "create order" {
		t.Fatalf("expected InternalError, got %v", err)
	}
}

func TestOrderBridgeUseCase_CreatePayment_GatewayNotConfigured(t *testing.T) {
	uc := NewOrderBridgeUseCase(nil, defaultSettings(), nil)
	_, err := uc.CreatePayment(context.Background(), CreatePaymentCommand{Order: sampleOrder()})
	var internal *entities.InternalError
	if !errors.As(err, &internal) {
		t.Fatalf("expected InternalError, got %v", err)
	}
}
