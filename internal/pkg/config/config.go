package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (tokens, DB connection, admin identity)
// - default: Values common across all environments (TTLs, caps, bonus amounts)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Telegram TelegramConfig
	Session  SessionConfig
	Points   PointsConfig
	Promo    PromoConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type TelegramConfig struct {
	BotToken      string `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`
	WebhookSecret string `envconfig:"TELEGRAM_WEBHOOK_SECRET" required:"true"`
	// Chat ID of the moderation admin. Only this identity may approve or
	// reject businesses and offers.
	AdminChatID int64 `envconfig:"TELEGRAM_ADMIN_CHAT_ID" required:"true"`
	SendRetries uint64 `envconfig:"TELEGRAM_SEND_RETRIES" default:"4"`
}

type SessionConfig struct {
	// Backend selects where conversation state lives: "memory" or "redis".
	Backend string        `envconfig:"SESSION_BACKEND" default:"memory"`
	TTL     time.Duration `envconfig:"SESSION_TTL" default:"30m"`
}

type PointsConfig struct {
	DailyCap      int `envconfig:"POINTS_DAILY_CAP" default:"2000"`
	StarterPoints int `envconfig:"POINTS_STARTER" default:"100"`
	ProfileBonus  int `envconfig:"POINTS_PROFILE_BONUS" default:"50"`
	ReferralBonus int `envconfig:"POINTS_REFERRAL_BONUS" default:"50"`
	ClaimBonus    int `envconfig:"POINTS_CLAIM_BONUS" default:"20"`
	BookingBonus  int `envconfig:"POINTS_BOOKING_BONUS" default:"100"`
}

type PromoConfig struct {
	CodeLength  int           `envconfig:"PROMO_CODE_LENGTH" default:"6"`
	MaxAttempts int           `envconfig:"PROMO_MAX_ATTEMPTS" default:"50"`
	Validity    time.Duration `envconfig:"PROMO_VALIDITY" default:"720h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
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
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Telegram: TelegramConfig{
			BotToken:      "test-token",
			WebhookSecret: "test-webhook-secret",
			AdminChatID:   999,
			SendRetries:   1,
		},
		Session: SessionConfig{
			Backend: "memory",
			TTL:     30 * time.Minute,
		},
		Points: PointsConfig{
			DailyCap:      2000,
			StarterPoints: 100,
			ProfileBonus:  50,
			ReferralBonus: 50,
			ClaimBonus:    20,
			BookingBonus:  100,
		},
		Promo: PromoConfig{
			CodeLength:  6,
			MaxAttempts: 50,
			Validity:    720 * time.Hour,
		},
	}
}
