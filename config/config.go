package config

import (
	"context"
	"database/sql"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

const (
	ScratchMemory   = "memory"
	ScratchRedis    = "redis"
	ScratchPostgres = "postgres"
)

// Settings is everything the storefront needs at construction time. Nothing
// outside this package reads the environment.
type Settings struct {
	Port          string
	APIBaseURL    string
	PublicBaseURL string
	LogLevel      string
	Timezone      string

	HTTPClientTimeout  time.Duration
	EnableTracing      bool
	CORSAllowedOrigins []string

	Auth0 Auth0Settings

	ScratchDriver string
	ScratchTTL    time.Duration

	Postgres PostgresSettings
	Redis    RedisSettings

	KafkaBroker   string
	CheckoutTopic string
}

type Auth0Settings struct {
	Domain      string
	ClientID    string
	Audience    string
	CallbackURL string
}

type PostgresSettings struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

type RedisSettings struct {
	Host string
	Port string
}

// Load reads settings from the environment. A .env file in the working
// directory is honoured when present.
func Load() (*Settings, error) {
	_ = godotenv.Load()

	s := &Settings{
		Port:               getEnv("PORT", "8080"),
		APIBaseURL:         strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:7000"), "/"),
		PublicBaseURL:      strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Timezone:           getEnv("TIMEZONE", "Local"),
		HTTPClientTimeout:  getEnvAsDuration("HTTP_CLIENT_TIMEOUT", 10*time.Second),
		EnableTracing:      os.Getenv("ENABLE_TRACING") == "1",
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		Auth0: Auth0Settings{
			Domain:      os.Getenv("AUTH0_DOMAIN"),
			ClientID:    os.Getenv("AUTH0_CLIENT_ID"),
			Audience:    os.Getenv("AUTH0_AUDIENCE"),
			CallbackURL: getEnv("AUTH0_CALLBACK_URL", "http://localhost:8080/api/auth/callback"),
		},
		ScratchDriver: strings.ToLower(getEnv("SCRATCH_DRIVER", ScratchMemory)),
		ScratchTTL:    getEnvAsDuration("SCRATCH_TTL", 48*time.Hour),
		Postgres: PostgresSettings{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     os.Getenv("DB_NAME"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Redis: RedisSettings{
			Host: getEnv("REDIS_HOST", "localhost"),
			Port: getEnv("REDIS_PORT", "6379"),
		},
		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		CheckoutTopic: getEnv("CHECKOUT_TOPIC", "checkouts"),
	}

	if err := s.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return s, nil
}

func (s *Settings) Validate() error {
	if s.Port == "" {
		return errors.New("PORT is required")
	}
	if s.APIBaseURL == "" {
		return errors.New("API_BASE_URL is required")
	}
	if _, err := logrus.ParseLevel(s.LogLevel); err != nil {
		return errors.Errorf("invalid log level: %s", s.LogLevel)
	}
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return errors.Wrapf(err, "invalid timezone %q", s.Timezone)
	}
	switch s.ScratchDriver {
	case ScratchMemory, ScratchRedis:
	case ScratchPostgres:
		if s.Postgres.Name == "" || s.Postgres.User == "" {
			return errors.New("DB_NAME and DB_USER are required for the postgres scratch driver")
		}
	default:
		return errors.Errorf("unknown SCRATCH_DRIVER %q (must be memory, redis or postgres)", s.ScratchDriver)
	}
	return nil
}

// Location returns the time zone used for delivery estimates.
func (s *Settings) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func MustInitPostgres(pg PostgresSettings) *sql.DB {
	connStr := "host=" + pg.Host + " port=" + pg.Port + " user=" + pg.User +
		" password=" + pg.Password + " dbname=" + pg.Name + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	if err = db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping database")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(rs RedisSettings) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: rs.Host + ":" + rs.Port,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.WithError(err).Fatal("failed to connect to redis")
	}

	return client
}

// NewKafkaWriter returns nil when no broker is configured; publishing is
// optional for the storefront.
func NewKafkaWriter(broker, topic string) *kafka.Writer {
	if broker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	// bare integers are seconds
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
