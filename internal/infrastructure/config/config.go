package config

import (
	"strings"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config is built once at startup and shared read-only by every handler.
//
// Values come from the environment (a .env file is loaded beforehand by
// godotenv) and optionally from config.yaml. Environment names match the
// ones the storefront integration has always used.
type Config struct {
	PayUClientID     string `env:"PAYU_CLIENT_ID" yaml:"payu_client_id" usage:"PayU OAuth client id"`
	PayUClientSecret string `env:"PAYU_CLIENT_SECRET" yaml:"payu_client_secret" usage:"PayU OAuth client secret"`
	PayUPosID        string `env:"PAYU_POS_ID" yaml:"payu_pos_id" usage:"PayU merchant POS id"`
	PayUSecondKey    string `env:"PAYU_SECOND_KEY" yaml:"payu_second_key" usage:"PayU second key (MD5), used for notification signatures"`
	PayUAPIURL       string `env:"PAYU_API_URL" yaml:"payu_api_url" default:"https://secure.payu.com" usage:"PayU API base URL"`

	EcwidStoreID  string `env:"ECWID_STORE_ID" yaml:"ecwid_store_id" usage:"Ecwid store id"`
	EcwidAPIToken string `env:"ECWID_API_TOKEN" yaml:"ecwid_api_token" usage:"Ecwid secret API token"`
	EcwidAPIURL   string `env:"ECWID_API_URL" yaml:"ecwid_api_url" default:"https://app.ecwid.com/api/v3" usage:"Ecwid REST API base URL"`

	Port                  int           `env:"PORT" yaml:"port" default:"3000" usage:"HTTP listen port"`
	PublicBaseURL         string        `env:"PUBLIC_BASE_URL" yaml:"public_base_url" usage:"Externally reachable origin used for the PayU notify URL"`
	DefaultCurrency       string        `env:"DEFAULT_CURRENCY" yaml:"default_currency" default:"PLN" usage:"Currency used when the order has none"`
	HTTPClientTimeout     time.Duration `env:"HTTP_CLIENT_TIMEOUT" yaml:"http_client_timeout" default:"10s" usage:"Timeout for outbound PayU and Ecwid calls"`
	VerifyNotifySignature bool          `env:"VERIFY_NOTIFY_SIGNATURE" yaml:"verify_notify_signature" default:"false" usage:"Reject PayU notifications with an invalid OpenPayu-Signature"`
	ShutdownTimeout       time.Duration `env:"SHUTDOWN_TIMEOUT" yaml:"shutdown_timeout" default:"10s" usage:"Graceful shutdown deadline"`
	LogLevel              string        `env:"LOG_LEVEL" yaml:"log_level" default:"info" usage:"zap log level"`
	GinMode               string        `env:"GIN_MODE" yaml:"gin_mode" default:"release" usage:"gin mode (debug, release, test)"`
	TrustedProxies        []string      `env:"TRUSTED_PROXIES" yaml:"trusted_proxies" usage:"Comma-separated proxy IPs/CIDRs whose X-Forwarded-* headers are honoured"`
	PaymentGatewayMock    bool          `env:"PAYMENT_GATEWAY_MOCK" yaml:"payment_gateway_mock" default:"false" usage:"Answer PayU calls locally without contacting PayU"`
}

// Load reads the configuration and validates it.
func Load() (*Config, error) {
	return load(aconfig.Config{
		SkipFlags:        true,
		AllowUnknownEnvs: true,
		Files:            []string{"config.yaml", "/etc/payu-bridge/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
}

func load(acfg aconfig.Config) (*Config, error) {
	var cfg Config
	if err := aconfig.LoaderFor(&cfg, acfg).Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	c.PayUAPIURL = strings.TrimRight(strings.TrimSpace(c.PayUAPIURL), "/")
	c.EcwidAPIURL = strings.TrimRight(strings.TrimSpace(c.EcwidAPIURL), "/")
	c.PublicBaseURL = strings.TrimRight(strings.TrimSpace(c.PublicBaseURL), "/")
	c.DefaultCurrency = strings.ToUpper(strings.TrimSpace(c.DefaultCurrency))

	proxies := c.TrustedProxies[:0]
	for _, p := range c.TrustedProxies {
		if p = strings.TrimSpace(p); p != "" {
			proxies = append(proxies, p)
		}
	}
	c.TrustedProxies = proxies
}

type setting struct {
	name  string
	value string
}

// Validate reports the first missing required setting.
func (c *Config) Validate() error {
	required := []setting{
		{"PAYU_POS_ID", c.PayUPosID},
		{"PAYU_API_URL", c.PayUAPIURL},
		{"ECWID_STORE_ID", c.EcwidStoreID},
		{"ECWID_API_TOKEN", c.EcwidAPIToken},
		{"ECWID_API_URL", c.EcwidAPIURL},
	}
	if !c.PaymentGatewayMock {
		required = append([]setting{
			{"PAYU_CLIENT_ID", c.PayUClientID},
			{"PAYU_CLIENT_SECRET", c.PayUClientSecret},
		}, required...)
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return errors.Errorf("%s is required", r.name)
		}
	}
	if c.VerifyNotifySignature && strings.TrimSpace(c.PayUSecondKey) == "" {
		return errors.New("PAYU_SECOND_KEY is required when VERIFY_NOTIFY_SIGNATURE is enabled")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return errors.Errorf("invalid PORT %d", c.Port)
	}
	if c.HTTPClientTimeout <= 0 {
		return errors.New("HTTP_CLIENT_TIMEOUT must be positive")
	}
	return nil
}
