package config

// AppConfig содержит общие настройки приложения.
// URL используется как база для ссылок в письмах.
type AppConfig struct {
	URL string `yaml:"url" env:"ACCOUNTS_APP_URL" env-default:"http://localhost:3000"`
}
