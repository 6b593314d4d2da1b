package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	JWTSecret string        `env:"JWT_SECRET, required"`
	JWTTTL    time.Duration `env:"JWT_TTL,    default=24h"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Geocoding GeocodingConfig
	Email     EmailConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=venha"`
}

type RedisConfig struct {
	Addr    string        `env:"REDIS_ADDR,    default=localhost:6379"`
	DB      int           `env:"REDIS_DB,      default=0"`
	Timeout time.Duration `env:"REDIS_TIMEOUT, default=5s"`
}

type GeocodingConfig struct {
	GoogleAPIKey  string        `env:"GOOGLE_GEOCODING_API_KEY"`
	GoogleURL     string        `env:"GOOGLE_GEOCODING_URL,     default=https://maps.googleapis.com/maps/api/geocode/json"`
	GoogleTimeout time.Duration `env:"GOOGLE_GEOCODING_TIMEOUT, default=5s"`

	NominatimURL       string        `env:"NOMINATIM_URL,        default=https://nominatim.openstreetmap.org/search"`
	NominatimUserAgent string        `env:"NOMINATIM_USER_AGENT, default=VenhaApp/1.0"`
	NominatimTimeout   time.Duration `env:"NOMINATIM_TIMEOUT,    default=3s"`
}

type EmailConfig struct {
	SendGridAPIKey string `env:"SENDGRID_API_KEY"`
	SendGridHost   string `env:"SENDGRID_HOST, default=https://api.sendgrid.com"`
	SenderAddress  string `env:"EMAIL_SENDER_ADDRESS, default=noreply@venha.app"`
}

type RateLimitConfig struct {
	RSVPLimit  int           `env:"RSVP_RATE_LIMIT,  default=5"`
	RSVPWindow time.Duration `env:"RSVP_RATE_WINDOW, default=1m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration through the given lookuper.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.RateLimit.RSVPLimit <= 0 {
		return fmt.Errorf("RSVP_RATE_LIMIT must be positive, got %d", c.RateLimit.RSVPLimit)
	}
	if c.RateLimit.RSVPWindow <= 0 {
		return fmt.Errorf("RSVP_RATE_WINDOW must be positive, got %s", c.RateLimit.RSVPWindow)
	}
	return nil
}

// IsProduction reports whether ENV is "production".
func (c *Config) IsProduction() bool { return c.Env == "production" }
