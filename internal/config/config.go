package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type MQConfig struct {
	URL        string `yaml:"url"`
	Queue      string `yaml:"queue"`
	RoutingKey string `yaml:"routing_key"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type PushConfig struct {
	URL       string `yaml:"url"`
	ServerKey string `yaml:"server_key"`
}

// ServicesConfig holds base URLs of the remote read-only collaborators.
type ServicesConfig struct {
	CoursesURL string `yaml:"courses_url"`
	UsersURL   string `yaml:"users_url"`
	TokensURL  string `yaml:"tokens_url"`
}

type DispatchConfig struct {
	WorkerLimit             int `yaml:"worker_limit"`
	HTTPTimeoutSeconds      int `yaml:"http_timeout_seconds"`
	RecipientTimeoutSeconds int `yaml:"recipient_timeout_seconds"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

type Config struct {
	DB       DBConfig       `yaml:"db"`
	MQ       MQConfig       `yaml:"mq"`
	Redis    RedisConfig    `yaml:"redis"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Push     PushConfig     `yaml:"push"`
	Services ServicesConfig `yaml:"services"`
	Dispatch DispatchConfig `yaml:"dispatch"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

func Load() *Config {
	f, err := os.Open("config.yaml")
	if err != nil {
		log.Fatalf("failed to open config.yaml: %v", err)
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		log.Fatalf("failed to decode config.yaml: %v", err)
	}

	overrideFromEnv(&cfg)
	applyDefaults(&cfg)

	return &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Dispatch.WorkerLimit <= 0 {
		cfg.Dispatch.WorkerLimit = 8
	}
	if cfg.Dispatch.HTTPTimeoutSeconds <= 0 {
		cfg.Dispatch.HTTPTimeoutSeconds = 5
	}
	if cfg.Dispatch.RecipientTimeoutSeconds <= 0 {
		cfg.Dispatch.RecipientTimeoutSeconds = 15
	}
}

// overrideFromEnv applies environment variable overrides (used in production).
func overrideFromEnv(cfg *Config) {
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.DB.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.DB.Port = p
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.DB.Password = password
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.DB.Name = name
	}

	if url := os.Getenv("MQ_URL"); url != "" {
		cfg.MQ.URL = url
	}
	if queue := os.Getenv("NOTIFICATIONS_QUEUE_NAME"); queue != "" {
		cfg.MQ.Queue = queue
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}

	if addr := os.Getenv("EMAIL_ADDRESS"); addr != "" {
		cfg.SMTP.Username = addr
		cfg.SMTP.From = addr
	}
	if password := os.Getenv("EMAIL_APP_PASSWORD"); password != "" {
		cfg.SMTP.Password = password
	}

	if key := os.Getenv("FCM_SERVER_KEY"); key != "" {
		cfg.Push.ServerKey = key
	}

	if url := os.Getenv("COURSES_SERVICE_URL"); url != "" {
		cfg.Services.CoursesURL = url
	}
	if url := os.Getenv("USERS_SERVICE_URL"); url != "" {
		cfg.Services.UsersURL = url
	}
	if url := os.Getenv("TOKENS_SERVICE_URL"); url != "" {
		cfg.Services.TokensURL = url
	}

	if addr := os.Getenv("METRICS_ADDR"); addr != "" {
		cfg.Metrics.Addr = addr
	}
}
