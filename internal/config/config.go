package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// ModeProduction binds every channel to its real transport.
	ModeProduction = "production"
	// ModeLogOnly binds the email and sms channels to the log driver.
	ModeLogOnly = "log_only"
)

// Config is the main struct that holds all configuration for the application.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Notifiers NotifiersConfig `mapstructure:"notifiers"`
}

// LoggerConfig holds logging-specific settings.
type LoggerConfig struct {
	Level string `mapstructure:"level"`
	// Format is "console" for human readable output or "json".
	Format string `mapstructure:"format"`
}

// HTTPConfig holds HTTP server-specific settings.
type HTTPConfig struct {
	Port    string `mapstructure:"port"`
	GinMode string `mapstructure:"gin_mode"`
}

// NotifiersConfig holds configurations for all notification channels.
type NotifiersConfig struct {
	// Mode can be "production" or "log_only".
	Mode string `mapstructure:"mode"`
	// Default is the channel used when a caller does not name one.
	Default  string         `mapstructure:"default"`
	Email    EmailConfig    `mapstructure:"email"`
	SMS      SMSConfig      `mapstructure:"sms"`
	Telegram TelegramConfig `mapstructure:"telegram"`
}

// EmailConfig is the email channel settings.
type EmailConfig struct {
	// FromAddress is carried for the channel but not read when sending;
	// the SMTP transport supplies the sender.
	FromAddress string     `mapstructure:"from_address"`
	ToAddress   string     `mapstructure:"to_address"`
	SMTP        SMTPConfig `mapstructure:"smtp"`
}

// SMTPConfig holds the mail transport settings.
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	// From is the sender put on outgoing mail. Email delivery fails without it.
	From string `mapstructure:"from"`
}

// SMSConfig holds the SMS gateway settings.
type SMSConfig struct {
	SenderID string        `mapstructure:"sender_id"`
	APIToken string        `mapstructure:"api_token"`
	APIURL   string        `mapstructure:"api_url"`
	ToNumber string        `mapstructure:"to_number"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// TelegramConfig holds settings for the Telegram channel.
type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// NewConfig reads configs/config.yaml when present and applies environment
// overrides (NOTIFIERS_SMS_API_TOKEN overrides notifiers.sms.api_token).
func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("configs")

	return load(v)
}

// Load reads the configuration from an explicit file path.
// An empty path falls back to environment variables and defaults only.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	}
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// NOTIFIERS_SMS_API_TOKEN -> notifiers.sms.api_token
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The file is optional; environment and defaults are enough to start.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can resolve it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("http.port", ":8080")
	v.SetDefault("http.gin_mode", "release")

	v.SetDefault("notifiers.mode", ModeProduction)
	v.SetDefault("notifiers.default", "")

	v.SetDefault("notifiers.email.from_address", "")
	v.SetDefault("notifiers.email.to_address", "")
	v.SetDefault("notifiers.email.smtp.host", "")
	v.SetDefault("notifiers.email.smtp.port", 587)
	v.SetDefault("notifiers.email.smtp.username", "")
	v.SetDefault("notifiers.email.smtp.password", "")
	v.SetDefault("notifiers.email.smtp.from", "") // Required for email; there is no usable default sender

	v.SetDefault("notifiers.sms.sender_id", "")
	v.SetDefault("notifiers.sms.api_token", "")
	v.SetDefault("notifiers.sms.api_url", "")
	v.SetDefault("notifiers.sms.to_number", "")
	v.SetDefault("notifiers.sms.timeout", 10*time.Second)

	v.SetDefault("notifiers.telegram.bot_token", "")
	v.SetDefault("notifiers.telegram.chat_id", 0)
}
