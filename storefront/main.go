package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eatsfront/config"
	httpapi "eatsfront/storefront/internal/api/http"
	"eatsfront/storefront/internal/backend"
	"eatsfront/storefront/internal/identity"
	"eatsfront/storefront/internal/service"
	"eatsfront/storefront/internal/storage"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	sweepInterval   = 5 * time.Minute
	shutdownTimeout = 15 * time.Second
)

func main() {
	log := newLogger()

	settings, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}
	level, _ := logrus.ParseLevel(settings.LogLevel)
	log.SetLevel(level)

	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{}, propagation.Baggage{}))

	var tp *sdktrace.TracerProvider
	if settings.EnableTracing {
		log.Info("tracing enabled")
		tp = initTracing(log)
	} else {
		log.Info("tracing disabled")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	store, closeStore := newScratchStore(ctx, settings, log)
	defer closeStore()

	httpClient := &http.Client{Timeout: settings.HTTPClientTimeout}
	if settings.EnableTracing {
		httpClient.Transport = otelhttp.NewTransport(http.DefaultTransport)
	}
	api := backend.NewClient(settings.APIBaseURL, httpClient)

	sessions := service.NewSessions(api, store, settings.ScratchTTL, log.WithField("component", "sessions"))
	go sweepSessions(ctx, sessions, log)

	opts := service.Options{
		QR:       &service.DefaultQRGenerator{BaseURL: settings.PublicBaseURL},
		Location: settings.Location(),
		Log:      log.WithField("component", "storefront"),
	}
	if writer := config.NewKafkaWriter(settings.KafkaBroker, settings.CheckoutTopic); writer != nil {
		defer writer.Close()
		opts.Publisher = storage.NewKafkaCheckoutPublisher(writer)
		log.WithField("topic", settings.CheckoutTopic).Info("publishing checkout events")
	}
	storefront := service.NewStorefrontService(api, sessions, opts)

	provider := identity.NewHeaderProvider(identity.Config{
		Domain:      settings.Auth0.Domain,
		ClientID:    settings.Auth0.ClientID,
		Audience:    settings.Auth0.Audience,
		CallbackURL: settings.Auth0.CallbackURL,
	})

	h := httpapi.NewHandler(storefront, provider, log)
	handler := httpapi.NewRouter(h, settings.CORSAllowedOrigins, log)
	if settings.EnableTracing {
		handler = otelhttp.NewHandler(handler, "storefront")
	}

	srv := &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("storefront starting on port %s", settings.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}
	if tp != nil {
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("failed to flush traces")
		}
	}
	log.Info("server stopped gracefully")
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.Formatter = &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "severity",
			logrus.FieldKeyMsg:   "message",
		},
		TimestampFormat: time.RFC3339Nano,
	}
	log.Out = os.Stdout
	return log
}

func initTracing(log logrus.FieldLogger) *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()))
	otel.SetTracerProvider(tp)
	log.Info("tracing provider initialized (no exporter configured)")
	return tp
}

// newScratchStore picks the per-session scratch backend. The returned func
// releases whatever connection it opened.
func newScratchStore(ctx context.Context, settings *config.Settings, log logrus.FieldLogger) (storage.ScratchStore, func()) {
	log = log.WithField("driver", settings.ScratchDriver)

	switch settings.ScratchDriver {
	case config.ScratchRedis:
		client := config.MustInitRedis(settings.Redis)
		log.Info("scratch store on redis")
		return storage.NewRedisScratchStore(client, settings.ScratchTTL), func() { client.Close() }

	case config.ScratchPostgres:
		db := config.MustInitPostgres(settings.Postgres)
		store := storage.NewPostgresScratchStore(db, settings.ScratchTTL)
		if err := store.EnsureSchema(ctx); err != nil {
			log.WithError(err).Fatal("failed to ensure scratch schema")
		}
		go purgeExpired(ctx, store, log)
		log.Info("scratch store on postgres")
		return store, func() { closeDB(db, log) }

	default:
		store := storage.NewMemoryScratchStoreWithTTL(settings.ScratchTTL)
		go purgeExpired(ctx, store, log)
		log.Info("scratch store in memory")
		return store, func() {}
	}
}

func closeDB(db *sql.DB, log logrus.FieldLogger) {
	if err := db.Close(); err != nil {
		log.WithError(err).Warn("failed to close database")
	}
}

func purgeExpired(ctx context.Context, store storage.Purger, log logrus.FieldLogger) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := store.PurgeExpired(ctx)
			if err != nil {
				log.WithError(err).Warn("failed to purge expired scratch entries")
				continue
			}
			if n > 0 {
				log.WithField("purged", n).Debug("purged expired scratch entries")
			}
		}
	}
}

func sweepSessions(ctx context.Context, sessions *service.Sessions, log logrus.FieldLogger) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessions.Sweep(); n > 0 {
				log.WithFields(logrus.Fields{"evicted": n, "active": sessions.Len()}).Debug("swept idle sessions")
			}
		}
	}
}
