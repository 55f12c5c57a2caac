package config

// SMTPConfig содержит настройки отправки почты.
// Mode "log" пишет письма в лог вместо реальной доставки.
type SMTPConfig struct {
	Mode     string `yaml:"mode" env:"ACCOUNTS_SMTP_MODE" env-default:"log"`
	Host     string `yaml:"host" env:"ACCOUNTS_SMTP_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"ACCOUNTS_SMTP_PORT" env-default:"587"`
	Username string `yaml:"username" env:"ACCOUNTS_SMTP_USERNAME" env-default:""`
	Password string `yaml:"password" env:"ACCOUNTS_SMTP_PASSWORD" env-default:""`
	From     string `yaml:"from" env:"ACCOUNTS_SMTP_FROM" env-default:"no-reply@betola.local"`
}

// IsLogMode сообщает, включен ли режим записи писем в лог.
func (c *SMTPConfig) IsLogMode() bool {
	return c.Mode != "smtp"
}
