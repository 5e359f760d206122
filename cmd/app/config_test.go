package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfigFile(t *testing.T, data string) string {
	tempFile, err := os.CreateTemp("", "config*.env")
	if err != nil {
		t.Fatalf("Failed to create temporary config file: %v", err)
	}
	t.Cleanup(func() { os.Remove(tempFile.Name()) })

	if _, err := tempFile.WriteString(data); err != nil {
		t.Fatalf("Failed to write test configuration to temporary file: %v", err)
	}

	return tempFile.Name()
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
PORT=:8080
ENVIRONMENT=development
SESSION_SECRET=super-secret
POSTGRES_HOST=localhost
POSTGRES_PORT=5432
POSTGRES_USER=testuser
POSTGRES_PASSWORD=testpassword
POSTGRES_DB=testdb
MAIL_HOST=smtp.example.com
MAIL_PORT=587
MAIL_USER=operator@example.com
MAIL_PASSWORD=testpassword
MAIL_SENDER=sender@example.com
`)

	config, err := loadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.Equal(t, ":8080", config.Port)
	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, "super-secret", config.SessionSecret)
	assert.Equal(t, "localhost", config.DBHost)
	assert.Equal(t, "5432", config.DBPort)
	assert.Equal(t, "testuser", config.DBUser)
	assert.Equal(t, "testpassword", config.DBPassword)
	assert.Equal(t, "testdb", config.DBName)
	assert.Equal(t, "smtp.example.com", config.MailHost)
	assert.Equal(t, 587, config.MailPort)
	assert.Equal(t, "operator@example.com", config.MailUser)
	assert.Equal(t, "testpassword", config.MailPassword)
	assert.Equal(t, "sender@example.com", config.MailSender)

	// The contact recipient falls back to the operator credential.
	assert.Equal(t, "operator@example.com", config.AdminEmail)

	// Limiter settings default when the file omits them.
	assert.True(t, config.RateLimitEnabled)
	assert.Equal(t, float64(2), config.RateLimitRPS)
	assert.Equal(t, 4, config.RateLimitBurst)
}

func TestLoadConfigMissingKeys(t *testing.T) {
	path := writeConfigFile(t, `
PORT=:8080
ENVIRONMENT=development
`)

	_, err := loadConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing required configuration")
	assert.Contains(t, err.Error(), "SESSION_SECRET")
	assert.Contains(t, err.Error(), "POSTGRES_HOST")
}
