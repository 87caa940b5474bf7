package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds every setting the application reads at startup.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Telegram TelegramConfig
	RabbitMQ RabbitMQConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Port     string
	Name     string
	Version  string
	LogLevel string
}

type DatabaseConfig struct {
	Path string
}

// TelegramConfig keeps the general channel link and the link handed out by
// the order endpoint as separate values.
type TelegramConfig struct {
	ChannelURL      string
	OrderChannelURL string
}

// RabbitMQConfig configures product event publishing. An empty URL disables it.
type RabbitMQConfig struct {
	URL   string
	Queue string
}

type CORSConfig struct {
	AllowOrigins string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found, using system environment variables")
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8000")
	v.SetDefault("APP_NAME", "Gift Business API")
	v.SetDefault("APP_VERSION", "1.0.0")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATABASE_PATH", "gifts.db")
	v.SetDefault("TELEGRAM_CHANNEL_URL", "https://t.me/your_gift_channel")
	v.SetDefault("ORDER_CHANNEL_URL", "https://t.me/amoragifts")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_QUEUE", "product_events")
}

func fromViper(v *viper.Viper) *Config {
	port := v.GetString("APP_PORT")
	if port != "" && !strings.Contains(port, ":") {
		port = ":" + port
	}

	return &Config{
		App: AppConfig{
			Port:     port,
			Name:     v.GetString("APP_NAME"),
			Version:  v.GetString("APP_VERSION"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		Database: DatabaseConfig{
			Path: v.GetString("DATABASE_PATH"),
		},
		Telegram: TelegramConfig{
			ChannelURL:      v.GetString("TELEGRAM_CHANNEL_URL"),
			OrderChannelURL: v.GetString("ORDER_CHANNEL_URL"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:   v.GetString("RABBITMQ_URL"),
			Queue: v.GetString("RABBITMQ_QUEUE"),
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
	}
}
