package routes

import (
	"context"
	"net/http"
	"strconv"
	"time"

	_ "payu_bridge/docs" // swagger spec
	"payu_bridge/internal/adapter/http/handlers"
	"payu_bridge/internal/adapter/http/middleware"
	"payu_bridge/internal/infrastructure/config"
	"payu_bridge/internal/infrastructure/httpclient"
	"payu_bridge/internal/infrastructure/payments"
	"payu_bridge/internal/infrastructure/storefront"
	"payu_bridge/internal/usecase"
	"payu_bridge/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const readHeaderTimeout = 5 * time.Second

// Handlers groups the HTTP handlers the router mounts.
type Handlers struct {
	PayUOrder    *handlers.PayUOrderHandler
	Notification *handlers.PaymentNotificationHandler
}

// NewHandlers wires clients, use cases and handlers from cfg.
func NewHandlers(cfg *config.Config, log *zap.Logger) (Handlers, error) {
	client := httpclient.New(cfg.HTTPClientTimeout)

	gateway, err := payments.NewPayUGateway(payments.PayUConfig{
		APIURL:       cfg.PayUAPIURL,
		ClientID:     cfg.PayUClientID,
		ClientSecret: cfg.PayUClientSecret,
		MockMode:     cfg.PaymentGatewayMock,
	}, client, log)
	if err != nil {
		return Handlers{}, errors.Wrap(err, "payu gateway")
	}

	var verifier interfaces.INotificationVerifier
	if cfg.VerifyNotifySignature {
		v, err := payments.NewSignatureVerifier(cfg.PayUSecondKey)
		if err != nil {
			return Handlers{}, errors.Wrap(err, "signature verifier")
		}
		verifier = v
	}

	ecwid, err := storefront.NewEcwidClient(storefront.EcwidConfig{
		APIURL:   cfg.EcwidAPIURL,
		StoreID:  cfg.EcwidStoreID,
		APIToken: cfg.EcwidAPIToken,
	}, client, log)
	if err != nil {
		return Handlers{}, errors.Wrap(err, "ecwid client")
	}

	orderUseCase := usecase.NewOrderBridgeUseCase(gateway, usecase.OrderBridgeSettings{
		MerchantPosID:   cfg.PayUPosID,
		DefaultCurrency: cfg.DefaultCurrency,
		PublicBaseURL:   cfg.PublicBaseURL,
	}, log)
	notificationUseCase := usecase.NewPaymentNotificationUseCase(ecwid, verifier, log)

	return Handlers{
		PayUOrder:    handlers.NewPayUOrderHandler(orderUseCase, log),
		Notification: handlers.NewPaymentNotificationHandler(notificationUseCase, log),
	}, nil
}

// NewRouter builds the gin engine with middlewares and every route mounted.
// Forwarded headers are honoured only from trustedProxies (IPs or CIDRs).
func NewRouter(h Handlers, trustedProxies []string, log *zap.Logger) (*gin.Engine, error) {
	proxies, err := middleware.ParseTrustedProxies(trustedProxies)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	if err := router.SetTrustedProxies(trustedProxies); err != nil {
		return nil, errors.Wrap(err, "set trusted proxies")
	}
	router.Use(
		middleware.RequestID(),
		middleware.TrustedProxy(proxies),
		middleware.AccessLog(log),
		middleware.Recovery(log),
	)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addPayURoutes(router, h)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	return router, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most cfg.ShutdownTimeout.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	h, err := NewHandlers(cfg, log)
	if err != nil {
		return err
	}

	router, err := NewRouter(h, cfg.TrustedProxies, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return errors.Wrap(err, "listen")
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return nil
}
