package handlers

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"payu_bridge/internal/adapter/http/handlers/mocks"
	"payu_bridge/internal/adapter/http/middleware"
	"payu_bridge/internal/domain/entities"
	"payu_bridge/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPayURouter(uc usecase.IOrderBridgeUseCase) *gin.Engine {
	h := NewPayUOrderHandler(uc, nil)
	r := gin.New()
	r.POST("/payu", h.CreateOrder)
	return r
}

func newTrustedPayURouter(uc usecase.IOrderBridgeUseCase) *gin.Engine {
	h := NewPayUOrderHandler(uc, nil)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextKeyTrustedProxy, true)
		c.Next()
	})
	r.POST("/payu", h.CreateOrder)
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not json: %s", w.Body.String())
	}
	return body
}

func TestPayUOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderBridgeUseCase(ctrl)

		w := postJSON(newPayURouter(uc), "/payu", "{")

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeBody(t, w)["error"] != "Invalid request body" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderBridgeUseCase(ctrl)

		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.CreatePaymentCommand) (usecase.CreatePaymentResult, error) {
				if cmd.Order != nil {
					t.Fatalf("expected nil order")
				}
				return usecase.CreatePaymentResult{}, entities.NewValidationError("", usecase.MsgNoOrderData)
			})

		w := postJSON(newPayURouter(uc), "/payu", `{}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if w.Body.String() != `{"error":"No order data received from Ecwid"}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("empty body behaves like missing order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderBridgeUseCase(ctrl)

		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(usecase.CreatePaymentResult{}, entities.NewValidationError("", usecase.MsgNoOrderData))

		w := postJSON(newPayURouter(uc), "/payu", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("auth failure is generic 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderBridgeUseCase(ctrl)

		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(usecase.CreatePaymentResult{}, &entities.AuthError{StatusCode: 401, Body: "secret internals"})

		w := postJSON(newPayURouter(uc), "/payu", `{"order":{"id":"1"}}`)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if w.Body.String() != `{"error":"Payment initialization failed"}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("processor rejection echoes payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderBridgeUseCase(ctrl)

		payload := json.RawMessage(`{"status":{"statusCode":"ERROR_VALUE_MISSING","statusDesc":"Missing required field"}}`)
		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(usecase.CreatePaymentResult{}, &entities.UpstreamError{Source: "payu", Payload: payload})

		w := postJSON(newPayURouter(uc), "/payu", `{"order":{"id":"1"}}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		errObj, ok := decodeBody(t, w)["error"].(map[string]any)
		if !ok {
			t.Fatalf("expected error object, got %s", w.Body.String())
		}
		status, _ := errObj["status"].(map[string]any)
		if status["statusCode"] != "ERROR_VALUE_MISSING" {
			t.Fatalf("unexpected error object: %+v", errObj)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderBridgeUseCase(ctrl)

		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.CreatePaymentCommand) (usecase.CreatePaymentResult, error) {
				if cmd.Order == nil || cmd.Order.ID != "123" {
					t.Fatalf("unexpected order: %+v", cmd.Order)
				}
				if cmd.Origin != "https://bridge.example.com" {
					t.Fatalf("unexpected origin: %s", cmd.Origin)
				}
				if cmd.CustomerIP == "" {
					t.Fatalf("expected customer ip")
				}
				return usecase.CreatePaymentResult{RedirectURL: "https://secure.payu.com/pay/?orderId=WZ1"}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/payu", bytes.NewBufferString(`{"order":{"id":123,"items":[{"name":"A","price":5.00,"quantity":2}],"total":10.00}}`))
		req.Host = "bridge.example.com"
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-Proto", "https")
		w := httptest.NewRecorder()
		newTrustedPayURouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"redirectUrl":"https://secure.payu.com/pay/?orderId=WZ1"}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestRequestOrigin(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/payu", nil)
	r.Host = "example.com:3000"
	if got := requestOrigin(r, true); got != "http://example.com:3000" {
		t.Fatalf("unexpected origin: %s", got)
	}

	r.TLS = &tls.ConnectionState{}
	if got := requestOrigin(r, false); got != "https://example.com:3000" {
		t.Fatalf("unexpected tls origin: %s", got)
	}

	r.TLS = nil
	r.Header.Set("X-Forwarded-Proto", "HTTPS, http")
	if got := requestOrigin(r, false); got != "http://example.com:3000" {
		t.Fatalf("forwarded proto from untrusted peer must be ignored, got %s", got)
	}
	if got := requestOrigin(r, true); got != "https://example.com:3000" {
		t.Fatalf("unexpected forwarded origin: %s", got)
	}
}

func TestMapOrderBridgeError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{entities.NewValidationError("", usecase.MsgNoOrderData), http.StatusBadRequest},
		{&entities.UpstreamError{Source: "payu", Payload: json.RawMessage(`{"a":1}`)}, http.StatusBadRequest},
		{&entities.UpstreamError{Source: "payu"}, http.StatusBadRequest},
		{&entities.AuthError{StatusCode: 401}, http.StatusInternalServerError},
		{&entities.InternalError{Op: "x", Err: errors.New("boom")}, http.StatusInternalServerError},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapOrderBridgeError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
		if tc.code == http.StatusInternalServerError && got.ToHTTPError()["error"] != MsgPaymentInitFailed {
			t.Fatalf("internal errors must stay generic, got %+v", got.ToHTTPError())
		}
	}
}
