package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the server reads from the environment.
type Config struct {
	Port        int    `env:"PORT" envDefault:"3000"`
	DataDir     string `env:"DATA_DIR" envDefault:"./data"`
	DatabaseURL string `env:"DATABASE_URL"`
	PublicDir   string `env:"PUBLIC_DIR" envDefault:"./public"`
	CarsFile    string `env:"CARS_FILE"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"*"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"INFO"`
	AdminToken  string `env:"ADMIN_TOKEN"`

	SMTP    SMTPConfig    `envPrefix:"SMTP_"`
	Contact ContactConfig `envPrefix:"CONTACT_"`

	SiteName      string `env:"SITE_NAME" envDefault:"Temp Dev"`
	MailOutboxDir string `env:"MAIL_OUTBOX_DIR"`
}

// SMTPConfig is the outbound relay. Host, Port, User and Pass are only
// usable together; see Configured.
type SMTPConfig struct {
	Host    string        `env:"HOST"`
	Port    int           `env:"PORT"`
	User    string        `env:"USER"`
	Pass    string        `env:"PASS"`
	From    string        `env:"FROM"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// ContactConfig controls the contact-intake emails.
type ContactConfig struct {
	To         string `env:"TO" envDefault:"info@tempdev.xyz"`
	ReplyHours int    `env:"REPLY_HOURS" envDefault:"12"`
}

// DefaultSender is used when neither SMTP_FROM nor SMTP_USER is set.
const DefaultSender = "info@tempdev.xyz"

// Configured reports whether all four required SMTP settings are present.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.Port != 0 && c.User != "" && c.Pass != ""
}

// Sender returns the From address: SMTP_FROM, then SMTP_USER, then DefaultSender.
func (c SMTPConfig) Sender() string {
	if c.From != "" {
		return c.From
	}
	if c.User != "" {
		return c.User
	}
	return DefaultSender
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// CatalogPath returns CARS_FILE or the default cars.json inside DATA_DIR.
func (c *Config) CatalogPath() string {
	if c.CarsFile != "" {
		return c.CarsFile
	}
	return filepath.Join(c.DataDir, "cars.json")
}

// Load reads .env (if present) and parses the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse parses the process environment without touching .env files.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Contact.ReplyHours <= 0 {
		return nil, fmt.Errorf("config: CONTACT_REPLY_HOURS must be positive, got %d", cfg.Contact.ReplyHours)
	}
	return &cfg, nil
}
