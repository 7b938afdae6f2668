package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"payu_bridge/internal/domain/entities"
	"payu_bridge/internal/infrastructure/httpclient"
	"payu_bridge/internal/usecase/interfaces"
)

const (
	authorizePath   = "/pl/standard/user/oauth/authorize"
	createOrderPath = "/api/v2_1/orders"

	maxResponseBody = 1 << 20
)

var ErrMissingPayUCredentials = errors.New("missing PayU client credentials")

type PayUConfig struct {
	APIURL       string
	ClientID     string
	ClientSecret string
	// MockMode answers locally without calling PayU (local storefront testing).
	MockMode bool
}

// PayUGateway talks to the PayU REST API.
type PayUGateway struct {
	cfg    PayUConfig
	client *http.Client
	log    *zap.Logger
}

var _ interfaces.IPaymentGateway = (*PayUGateway)(nil)

func NewPayUGateway(cfg PayUConfig, client *http.Client, log *zap.Logger) (*PayUGateway, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("payu.gateway")

	if cfg.MockMode {
		log.Info("mock mode enabled")
		return &PayUGateway{cfg: cfg, log: log}, nil
	}

	if strings.TrimSpace(cfg.ClientID) == "" || strings.TrimSpace(cfg.ClientSecret) == "" {
		log.Error("missing PAYU_CLIENT_ID or PAYU_CLIENT_SECRET")
		return nil, ErrMissingPayUCredentials
	}
	if strings.TrimSpace(cfg.APIURL) == "" {
		return nil, errors.New("missing PayU API URL")
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	// PayU answers order creation with 302 + JSON body; the redirect must not
	// be followed or the JSON is lost.
	return &PayUGateway{cfg: cfg, client: httpclient.WithoutRedirects(client), log: log}, nil
}

// AccessToken performs the client_credentials grant. A non-2xx answer becomes
// *entities.AuthError carrying the status and body.
func (g *PayUGateway) AccessToken(ctx context.Context) (string, error) {
	if g.cfg.MockMode {
		return "mock-access-token", nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {g.cfg.ClientID},
		"client_secret": {g.cfg.ClientSecret},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.APIURL+authorizePath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "build authorize request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "payu authorize")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return "", errors.Wrap(err, "read authorize response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		g.log.Error("authorize rejected", zap.Int("status", resp.StatusCode), zap.ByteString("body", body))
		return "", &entities.AuthError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var tok struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", errors.Wrap(err, "decode authorize response")
	}
	if tok.AccessToken == "" {
		g.log.Error("authorize response without access_token", zap.ByteString("body", body))
		return "", &entities.AuthError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	g.log.Debug("access token acquired", zap.Int("expires_in", tok.ExpiresIn))
	return tok.AccessToken, nil
}

// CreateOrder submits the order. The decoded result is returned whatever
// statusCode PayU reports; deciding success is up to the caller.
func (g *PayUGateway) CreateOrder(ctx context.Context, accessToken string, order entities.ProcessorOrder) (entities.ProcessorOrderResult, error) {
	if g.cfg.MockMode {
		return mockOrderResult(order)
	}

	payload, err := json.Marshal(order)
	if err != nil {
		return entities.ProcessorOrderResult{}, errors.Wrap(err, "encode order")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.APIURL+createOrderPath, bytes.NewReader(payload))
	if err != nil {
		return entities.ProcessorOrderResult{}, errors.Wrap(err, "build order request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	g.log.Debug("create order start", zap.String("ext_order_id", order.ExtOrderID), zap.Int("payload_len", len(payload)))

	resp, err := g.client.Do(req)
	if err != nil {
		return entities.ProcessorOrderResult{}, errors.Wrap(err, "payu create order")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return entities.ProcessorOrderResult{}, errors.Wrap(err, "read order response")
	}

	var result entities.ProcessorOrderResult
	if err := json.Unmarshal(body, &result); err != nil {
		g.log.Error("order response is not json", zap.Int("status", resp.StatusCode), zap.ByteString("body", body))
		return entities.ProcessorOrderResult{}, errors.Wrapf(err, "decode order response (status %d)", resp.StatusCode)
	}
	result.Raw = json.RawMessage(body)

	g.log.Debug("create order done",
		zap.String("ext_order_id", order.ExtOrderID),
		zap.Int("status", resp.StatusCode),
		zap.Bool("success", result.Succeeded()),
	)
	return result, nil
}

func mockOrderResult(order entities.ProcessorOrder) (entities.ProcessorOrderResult, error) {
	id := "MOCK" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	result := entities.ProcessorOrderResult{
		Status:      &entities.ProcessorStatus{StatusCode: entities.ProcessorStatusSuccess},
		RedirectURI: "https://merch-prod.snd.payu.com/pay/?orderId=" + id,
		OrderID:     id,
		ExtOrderID:  order.ExtOrderID,
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return entities.ProcessorOrderResult{}, err
	}
	result.Raw = raw
	return result, nil
}
