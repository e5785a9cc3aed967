package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kelseyhightower/envconfig"

	"github.com/primeasset/recruit-landing/pkg/clients/leadsink"
)

// Config holds all application configuration values
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`
	// LeadEndpointURL is the script URL that receives leads. Empty means
	// submissions are blocked with a configuration notice.
	LeadEndpointURL string `envconfig:"LEAD_ENDPOINT_URL"`
	// LeadDeliveryMode is "opaque" or "acknowledged"
	LeadDeliveryMode    string        `envconfig:"LEAD_DELIVERY_MODE" default:"opaque"`
	LeadDispatchTimeout time.Duration `envconfig:"LEAD_DISPATCH_TIMEOUT" default:"30s"`
	CORSAllowedOrigins  []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	GinMode             string        `envconfig:"GIN_MODE" default:"release"`
	CompanyURL          string        `envconfig:"COMPANY_URL" default:"https://www.primeasset.kr/about/company"`
}

// LoadConfig reads configuration from environment variables
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error reading configuration: %w", err)
	}
	cfg.LeadEndpointURL = strings.TrimSpace(cfg.LeadEndpointURL)
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if _, err := cfg.DeliveryMode(); err != nil {
		return nil, err
	}
	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return nil, fmt.Errorf("GIN_MODE must be one of %s, %s or %s, got %q",
			gin.DebugMode, gin.ReleaseMode, gin.TestMode, cfg.GinMode)
	}
	if cfg.LeadDispatchTimeout < 0 {
		return nil, fmt.Errorf("LEAD_DISPATCH_TIMEOUT must not be negative, got %s", cfg.LeadDispatchTimeout)
	}
	return &cfg, nil
}

// DeliveryMode parses LeadDeliveryMode
func (c *Config) DeliveryMode() (leadsink.Mode, error) {
	return leadsink.ParseMode(strings.ToLower(strings.TrimSpace(c.LeadDeliveryMode)))
}

// EndpointConfigured reports whether a lead endpoint was supplied
func (c *Config) EndpointConfigured() bool {
	return c.LeadEndpointURL != ""
}

// Addr is the listen address derived from Port
func (c *Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
