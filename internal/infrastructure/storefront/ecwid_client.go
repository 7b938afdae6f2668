package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"payu_bridge/internal/domain/entities"
	"payu_bridge/internal/usecase/interfaces"
)

const maxErrorBody = 64 << 10

var ErrMissingEcwidCredentials = errors.New("missing ECWID_STORE_ID or ECWID_API_TOKEN")

type EcwidConfig struct {
	APIURL   string
	StoreID  string
	APIToken string
}

// EcwidClient updates orders through the Ecwid REST API v3.
type EcwidClient struct {
	cfg    EcwidConfig
	client *http.Client
	log    *zap.Logger
}

var _ interfaces.IStorefrontClient = (*EcwidClient)(nil)

func NewEcwidClient(cfg EcwidConfig, client *http.Client, log *zap.Logger) (*EcwidClient, error) {
	if strings.TrimSpace(cfg.StoreID) == "" || strings.TrimSpace(cfg.APIToken) == "" {
		return nil, ErrMissingEcwidCredentials
	}
	if strings.TrimSpace(cfg.APIURL) == "" {
		return nil, errors.New("missing Ecwid API URL")
	}
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	return &EcwidClient{cfg: cfg, client: client, log: log.Named("ecwid.client")}, nil
}

type paymentStatusRequest struct {
	PaymentStatus entities.PaymentStatus `json:"paymentStatus"`
}

// UpdatePaymentStatus sets the payment status of orderID. Any non-2xx answer
// is returned as *entities.UpstreamError with the response body.
func (c *EcwidClient) UpdatePaymentStatus(ctx context.Context, orderID string, status entities.PaymentStatus) error {
	if strings.TrimSpace(orderID) == "" {
		return errors.New("empty order id")
	}

	body, err := json.Marshal(paymentStatusRequest{PaymentStatus: status})
	if err != nil {
		return errors.Wrap(err, "encode payment status")
	}

	endpoint := c.paymentStatusURL(orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build payment status request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "ecwid update payment status")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return errors.Wrap(err, "read ecwid response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error("payment status update rejected",
			zap.String("order_id", orderID),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody),
		)
		return &entities.UpstreamError{Source: "ecwid", StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	c.log.Debug("payment status updated", zap.String("order_id", orderID), zap.String("payment_status", string(status)))
	return nil
}

func (c *EcwidClient) paymentStatusURL(orderID string) string {
	return c.cfg.APIURL + "/" + url.PathEscape(c.cfg.StoreID) + "/orders/" + url.PathEscape(orderID) + "/payment_status"
}
