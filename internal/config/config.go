package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort          = "8080"
	defaultJWTTTL        = 24 * time.Hour
	defaultCommissionPct = 10
)

// Config holds application configuration (env + optional .env file).
type Config struct {
	Env                string
	Port               string
	DatabaseURL        string
	JWTSecret          string
	JWTTTL             time.Duration
	RedisURL           string
	TelegramBotToken   string
	TelegramChatID     int64
	DefaultCommission  float64
	CORSAllowedOrigins []string
	LogLevel           string
}

// Load reads configuration from the environment and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	port := viper.GetString("PORT")
	if port == "" {
		port = defaultPort
	}

	ttl := viper.GetDuration("JWT_TTL")
	if ttl == 0 {
		ttl = defaultJWTTTL
	}

	commission := viper.GetFloat64("DEFAULT_COMMISSION_PCT")
	if commission == 0 {
		commission = defaultCommissionPct
	}

	var origins []string
	for _, o := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return &Config{
		Env:                env,
		Port:               port,
		DatabaseURL:        viper.GetString("DATABASE_URL"),
		JWTSecret:          viper.GetString("JWT_SECRET"),
		JWTTTL:             ttl,
		RedisURL:           viper.GetString("REDIS_URL"),
		TelegramBotToken:   viper.GetString("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:     viper.GetInt64("TELEGRAM_CHAT_ID"),
		DefaultCommission:  commission,
		CORSAllowedOrigins: origins,
		LogLevel:           viper.GetString("LOG_LEVEL"),
	}, nil
}
