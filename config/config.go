package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Model   ModelConfig   `yaml:"model" mapstructure:"model"`
	Booking BookingConfig `yaml:"booking" mapstructure:"booking"`
	Redis   RedisConfig   `yaml:"redis" mapstructure:"redis"`
	SMTP    SMTPConfig    `yaml:"smtp" mapstructure:"smtp"`
	Twilio  TwilioConfig  `yaml:"twilio" mapstructure:"twilio"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// ModelConfig locates the trained efficiency model artifact.
type ModelConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// BookingConfig configures the append-only booking log.
type BookingConfig struct {
	LogPath string `yaml:"log_path" mapstructure:"log_path"`
}

// RedisConfig configures the session store backend. An empty address falls
// back to the in-process store.
type RedisConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// SMTPConfig holds the mail relay settings. Credentials come from the
// environment (SOLARECO_SMTP_USERNAME, SOLARECO_SMTP_PASSWORD), never from
// source.
type SMTPConfig struct {
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`
	From     string `yaml:"from" mapstructure:"from"`
}

// TwilioConfig holds the telephony credentials. Sourced from the
// environment, never from source.
type TwilioConfig struct {
	AccountSID string `yaml:"account_sid" mapstructure:"account_sid"`
	AuthToken  string `yaml:"auth_token" mapstructure:"auth_token"`
	FromNumber string `yaml:"from_number" mapstructure:"from_number"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("SOLARECO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("model.path", "solar_model.json")
	v.SetDefault("booking.log_path", "booking.txt")
	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Credentials and backends default to empty so viper binds their
	// environment variables; values only ever come from env or file.
	v.SetDefault("redis.addr", "")
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "")
	v.SetDefault("twilio.account_sid", "")
	v.SetDefault("twilio.auth_token", "")
	v.SetDefault("twilio.from_number", "")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
