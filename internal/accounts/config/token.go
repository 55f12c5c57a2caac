package config

import "time"

// TokenConfig содержит настройки токенов доступа.
type TokenConfig struct {
	SecretKey  string `yaml:"secret_key" env:"ACCOUNTS_TOKEN_SECRET_KEY" env-default:"super-secret-key-change-me-in-production"`
	TTL        string `yaml:"ttl" env:"ACCOUNTS_TOKEN_TTL" env-default:"24h"`
	BCryptCost int    `yaml:"bcrypt_cost" env:"ACCOUNTS_BCRYPT_COST" env-default:"8"`
}

// GetTTL возвращает время жизни токена доступа.
func (c *TokenConfig) GetTTL() time.Duration {
	duration, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 24 * time.Hour
	}
	return duration
}
