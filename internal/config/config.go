// Package config предоставялет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Режимы обработки выбора тарифа.
const (
	SelectionSinkLog  = "log"
	SelectionSinkAMQP = "amqp"
)

// Config общая структура для хранения настроек
type Config struct {
	Env             string `yaml:"env" env-default:"local"`
	Demo            bool   `yaml:"demo" env:"PORTAL_DEMO"`
	HTTPServer      `yaml:"http_server"`
	RedisConnection `yaml:"redis_connection"`
	RabbitMQ        `yaml:"rabbitmq"`
	Selection       `yaml:"selection"`
	Hero            Hero `yaml:"hero"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection структура для настройки подключения к redis,
// откуда читаются снимки кабинета. Пустой адрес — redis не используется.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis"`
	Password     string        `yaml:"password"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
}

// RabbitMQ структура для настройки публикации событий выбора тарифа
type RabbitMQ struct {
	URL        string        `yaml:"url"`
	Exchange   string        `yaml:"exchange" env-default:"checkout"`
	RoutingKey string        `yaml:"routing_key" env-default:"plan.selected"`
	Retries    int           `yaml:"retries" env-default:"5"`
	RetryDelay time.Duration `yaml:"retry_delay" env-default:"2s"`
}

// Selection структура для настройки обработчика выбора тарифа
type Selection struct {
	Sink      string  `yaml:"sink" env-default:"log"`
	RateLimit float64 `yaml:"rate_limit" env-default:"5"`
	RateBurst int     `yaml:"rate_burst" env-default:"10"`
}

// Hero переопределения текстов главной страницы. Пустые поля заменяются стандартными.
type Hero struct {
	Title                  string `yaml:"title"`
	Description            string `yaml:"description"`
	BrowseReportsLabel     string `yaml:"browse_reports_label"`
	SubscriptionPlansLabel string `yaml:"subscription_plans_label"`
	BackgroundImage        string `yaml:"background_image"`
}

// MustLoad функция для загрузки конфига из файла, путь к которому задан в CONFIG_PATH
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// Load читает и проверяет конфиг из файла path.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Sink {
	case SelectionSinkLog:
	case SelectionSinkAMQP:
		if c.RabbitMQ.URL == "" {
			return fmt.Errorf("selection sink %q requires rabbitmq.url", c.Sink)
		}
	default:
		return fmt.Errorf("unknown selection sink %q", c.Sink)
	}
	if !c.Demo && c.AddressRedis == "" {
		return fmt.Errorf("redis_connection.addressredis is required when demo is off")
	}
	return nil
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"Demo: %t\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  User: %s\n"+
			"  DB: %d\n"+
			"RabbitMQ:\n"+
			"  Exchange: %s\n"+
			"  RoutingKey: %s\n"+
			"Selection:\n"+
			"  Sink: %s\n",
		c.Env,
		c.Demo,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.AddressRedis,
		c.User,
		c.DB,
		c.Exchange,
		c.RoutingKey,
		c.Sink,
	)
}
