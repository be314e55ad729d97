package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort          int           `mapstructure:"APP_PORT"`
	DatabasePath     string        `mapstructure:"DATABASE_PATH"`
	BackendURL       string        `mapstructure:"BACKEND_URL"`
	BackendEventsURL string        `mapstructure:"BACKEND_EVENTS_URL"`
	LicenseAPIURL    string        `mapstructure:"LICENSE_API_URL"`
	LicenseProductID int64         `mapstructure:"LICENSE_PRODUCT_ID"`
	InstanceName     string        `mapstructure:"INSTANCE_NAME"`
	GracePeriodDays  int           `mapstructure:"GRACE_PERIOD_DAYS"`
	RAGTopK          int           `mapstructure:"RAG_TOP_K"`
	RequestTimeout   time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	MessageCacheSize int           `mapstructure:"MESSAGE_CACHE_SIZE"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "omnichat-desktop"
	}

	viper.SetDefault("APP_PORT", 8765)
	viper.SetDefault("DATABASE_PATH", "./data/omnichat.db")
	viper.SetDefault("BACKEND_URL", "http://127.0.0.1:1420")
	viper.SetDefault("BACKEND_EVENTS_URL", "ws://127.0.0.1:1420/events")
	viper.SetDefault("LICENSE_API_URL", "https://api.lemonsqueezy.com/v1/licenses")
	viper.SetDefault("LICENSE_PRODUCT_ID", 795978)
	viper.SetDefault("INSTANCE_NAME", hostname)
	viper.SetDefault("GRACE_PERIOD_DAYS", 7)
	viper.SetDefault("RAG_TOP_K", 5)
	viper.SetDefault("REQUEST_TIMEOUT", "120s")
	viper.SetDefault("MESSAGE_CACHE_SIZE", 32)
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./client")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
