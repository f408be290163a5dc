package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string `env:"PORT,         default=8080"`
	DBDSN       string `env:"DB_DSN,       default=opticaluna.db"`
	LogLevel    string `env:"LOG_LEVEL,    default=info"`
	LogFile     string `env:"LOG_FILE"`
	JWTSecret   string `env:"JWT_SECRET,   default=dev-only-secret"`
	FrontendURL string `env:"FRONTEND_URL, default=http://localhost:8080"`

	Mail MailConfig
}

type MailConfig struct {
	Host string `env:"SMTP_HOST"`
	Port int    `env:"SMTP_PORT, default=587"`
	User string `env:"SMTP_USER"`
	Pass string `env:"SMTP_PASS"`
	From string `env:"MAIL_FROM, default=no-reply@opticaluna.test"`
}

// Live reports whether real SMTP credentials are configured. When false the
// mailer runs in test mode and logs message previews instead of delivering.
func (m MailConfig) Live() bool {
	return m.Host != "" && m.User != "" && m.Pass != ""
}

// Load resolves configuration from the environment once at startup.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
