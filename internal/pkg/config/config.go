package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend URL, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Storage StorageConfig
	CORS    CORSConfig
	Log     LogConfig
	Cookie  CookieConfig
	JWT     JWTConfig
	Merge   MergeConfig
	Visitor VisitorConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type BackendConfig struct {
	BaseURL string        `envconfig:"BACKEND_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"10s"`
}

const (
	StorageDriverRedis    = "redis"
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type StorageConfig struct {
	Driver    string `envconfig:"GUEST_CART_STORAGE" default:"redis"`
	KeyPrefix string `envconfig:"GUEST_CART_KEY" default:"guest_cart"`
	Redis     RedisConfig
	DB        DBConfig
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDRESS" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	TTL      time.Duration `envconfig:"GUEST_CART_TTL" default:"720h"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:""`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:""`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type CookieConfig struct {
	Domain        string        `envconfig:"COOKIE_DOMAIN" default:""`
	Secure        bool          `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite      string        `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
	VisitorMaxAge time.Duration `envconfig:"VISITOR_COOKIE_MAX_AGE" default:"8760h"`
}

// Secret is optional: without it the backend token is only decoded for its expiry, not verified.
type JWTConfig struct {
	Secret          string        `envconfig:"BACKEND_JWT_SECRET" default:""`
	DefaultDuration time.Duration `envconfig:"ACCESS_TOKEN_FALLBACK_TTL" default:"24h"`
}

type MergeConfig struct {
	Concurrency int `envconfig:"MERGE_CONCURRENCY" default:"4"`
}

// Idle visitors are dropped from memory; their guest cart stays in storage and the token in the cookie.
type VisitorConfig struct {
	IdleTTL       time.Duration `envconfig:"VISITOR_IDLE_TTL" default:"2h"`
	SweepInterval time.Duration `envconfig:"VISITOR_SWEEP_INTERVAL" default:"5m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env は任意。存在しなくてもエラーにしない
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Backend: BackendConfig{
			BaseURL: "http://localhost:3001",
			Timeout: 2 * time.Second,
		},
		Storage: StorageConfig{
			Driver:    StorageDriverMemory,
			KeyPrefix: "guest_cart",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Cookie: CookieConfig{
			SameSite:      "Lax",
			VisitorMaxAge: 24 * time.Hour,
		},
		JWT: JWTConfig{
			DefaultDuration: time.Hour,
		},
		Merge: MergeConfig{
			Concurrency: 4,
		},
		Visitor: VisitorConfig{
			IdleTTL:       time.Hour,
			SweepInterval: time.Minute,
		},
	}
}
