package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string `mapstructure:"PORT"`
	Environment   string `mapstructure:"ENVIRONMENT"`
	SessionSecret string `mapstructure:"SESSION_SECRET"`

	DBHost     string `mapstructure:"POSTGRES_HOST"`
	DBPort     string `mapstructure:"POSTGRES_PORT"`
	DBUser     string `mapstructure:"POSTGRES_USER"`
	DBPassword string `mapstructure:"POSTGRES_PASSWORD"`
	DBName     string `mapstructure:"POSTGRES_DB"`

	MailHost     string `mapstructure:"MAIL_HOST"`
	MailPort     int    `mapstructure:"MAIL_PORT"`
	MailUser     string `mapstructure:"MAIL_USER"`
	MailPassword string `mapstructure:"MAIL_PASSWORD"`
	MailSender   string `mapstructure:"MAIL_SENDER"`

	// AdminEmail is the contact-form recipient. Defaults to MailUser.
	AdminEmail string `mapstructure:"ADMIN_EMAIL"`

	RateLimitEnabled bool    `mapstructure:"RATE_LIMIT_ENABLED"`
	RateLimitRPS     float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst   int     `mapstructure:"RATE_LIMIT_BURST"`
}

func loadConfig(path string) (*Config, error) {
	viper.SetConfigFile(path)

	viper.SetDefault("RATE_LIMIT_ENABLED", true)
	viper.SetDefault("RATE_LIMIT_RPS", 2)
	viper.SetDefault("RATE_LIMIT_BURST", 4)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.AdminEmail == "" {
		config.AdminEmail = config.MailUser
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// validate reports every missing required key at once so a broken deployment
// fails with a single actionable message.
func (c *Config) validate() error {
	required := map[string]string{
		"PORT":              c.Port,
		"SESSION_SECRET":    c.SessionSecret,
		"POSTGRES_HOST":     c.DBHost,
		"POSTGRES_PORT":     c.DBPort,
		"POSTGRES_USER":     c.DBUser,
		"POSTGRES_PASSWORD": c.DBPassword,
		"POSTGRES_DB":       c.DBName,
		"MAIL_HOST":         c.MailHost,
		"MAIL_USER":         c.MailUser,
		"MAIL_PASSWORD":     c.MailPassword,
		"MAIL_SENDER":       c.MailSender,
	}

	var missing []string
	for key, value := range required {
		if value == "" {
			missing = append(missing, key)
		}
	}

	if c.MailPort == 0 {
		missing = append(missing, "MAIL_PORT")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return nil
}
