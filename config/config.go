// Ininicializing common application configuration
package config

import (
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Services ServicesConfig `mapstructure:"services"`
	Client   ClientConfig   `mapstructure:"client"`
	Session  SessionConfig  `mapstructure:"session"`
	Checkout CheckoutConfig `mapstructure:"checkout"`
	Notify   NotifyConfig   `mapstructure:"notify"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type ServerConfig struct {
	AppVersion   string `json:"appVersion"`
	Host         string `json:"host" validate:"required"`
	Port         string `json:"port" validate:"required"`
	Timeout      time.Duration
	Idle_timeout time.Duration
	Env          string `json:"environment"`
	Mode         string `mapstructure:"mode"`
}

// ServicesConfig holds the base URLs of the remote ticketing services
// the storefront orchestrates.
type ServicesConfig struct {
	UserBaseURL    string `mapstructure:"user_base_url"`
	EventBaseURL   string `mapstructure:"event_base_url"`
	CartBaseURL    string `mapstructure:"cart_base_url"`
	BookingBaseURL string `mapstructure:"booking_base_url"`
}

// ClientConfig tunes the outbound HTTP client. A zero timeout keeps
// the source behavior: no deadline, failure comes from the transport.
type ClientConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type SessionConfig struct {
	KeyPrefix  string        `mapstructure:"key_prefix"`
	TTL        time.Duration `mapstructure:"ttl"`
	SweepEvery time.Duration `mapstructure:"sweep_every"`
}

// CheckoutConfig names the clear-cart policy explicitly. The source
// client cleared the cart even when some booking attempts failed;
// setting ClearCartOnFailure to false gates the clear on a fully
// successful batch instead.
type CheckoutConfig struct {
	ClearCartOnFailure bool `mapstructure:"clear_cart_on_failure"`
}

type NotifyConfig struct {
	URL       string `mapstructure:"url"`
	QueueName string `mapstructure:"queue_name"`
	Enabled   bool   `mapstructure:"enabled"`
}

type RedisConfig struct {
	Host     string `json:"host" validate:"required"`
	Port     int    `json:"port" validate:"required"`
	Password string `json:"password"`
	DB       int    `json:"db"`

	MaxRetries   int
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration
}

func LoadConfig() (*viper.Viper, error) {

	viperInstance := viper.New()

	viperInstance.AddConfigPath("./config")
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")

	setDefaults(viperInstance)

	err := viperInstance.ReadInConfig()

	if err != nil {
		return nil, err
	}
	return viperInstance, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {

	var c Config

	err := v.Unmarshal(&c)
	if err != nil {
		log.Fatalf("unable to decode config into struct, %v", err)
		return nil, err
	}
	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.mode", "debug")

	v.SetDefault("services.user_base_url", "http://localhost:8081")
	v.SetDefault("services.event_base_url", "http://localhost:8082")
	v.SetDefault("services.cart_base_url", "http://localhost:8083")
	v.SetDefault("services.booking_base_url", "http://localhost:8084")

	v.SetDefault("client.timeout", 0)

	v.SetDefault("session.key_prefix", "storefront:user:")
	v.SetDefault("session.ttl", 24*time.Hour)
	v.SetDefault("session.sweep_every", 30*time.Minute)

	v.SetDefault("checkout.clear_cart_on_failure", true)

	v.SetDefault("notify.enabled", false)
	v.SetDefault("notify.queue_name", "storefront:notifications")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
