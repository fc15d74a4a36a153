package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/Domenick1991/cargoeta/internal/domain"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP       HTTPConfig      `yaml:"http"`
	GRPC       GRPCConfig      `yaml:"grpc"`
	Database   DatabaseConfig  `yaml:"database"`
	Redis      RedisConfig     `yaml:"redis"`
	Kafka      KafkaConfig     `yaml:"kafka"`
	Voyage     VoyageConfig    `yaml:"voyage"`
	Cache      CacheConfig     `yaml:"cache"`
	RateLimit  RateLimitConfig `yaml:"rate_limit"`
	Ports      []PortConfig    `yaml:"ports"`
	Containers []ContainerSeed `yaml:"containers"`
	Worker     WorkerConfig    `yaml:"worker"`
}

type HTTPConfig struct {
	Address         string `yaml:"address"`
	ShutdownSeconds int    `yaml:"shutdown_timeout_seconds"`
}

type GRPCConfig struct {
	Address string `yaml:"address"`
}

// DatabaseConfig points at an existing container master-data table.
// When disabled the in-memory seed list is served instead.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers  []string `yaml:"brokers"`
	EtaTopic string   `yaml:"eta_topic"`
	GroupID  string   `yaml:"group_id"`
}

type VoyageConfig struct {
	DefaultDays int           `yaml:"default_days"`
	Routes      []RouteConfig `yaml:"routes"`
	// Strict disables the default_days fallback for pairs missing from routes.
	Strict bool `yaml:"strict"`
}

type RouteConfig struct {
	Origin      string `yaml:"origin"`
	Destination string `yaml:"destination"`
	Days        int    `yaml:"days"`
}

type CacheConfig struct {
	ContainerTTLSeconds int `yaml:"container_ttl_seconds"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

type PortConfig struct {
	ID       string `yaml:"id"`
	Timezone string `yaml:"timezone"`
}

type ContainerSeed struct {
	ID               string  `yaml:"id"`
	Weight           float64 `yaml:"weight"`
	PortOfOrigin     string  `yaml:"port_of_origin"`
	IsDangerousGoods bool    `yaml:"is_dangerous_goods"`
}

type WorkerConfig struct {
	NotifyLayout string `yaml:"notify_layout"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads .env if present, then the file named by CONFIG_PATH
// (config.yaml by default). A missing default file yields Default().
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = "config.yaml"
	}

	cfg, err := LoadConfig(path)
	if err != nil && !explicit && errors.Is(err, fs.ErrNotExist) {
		log.Printf("config file %s not found, using defaults", path)
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes YAML, fills defaults for unset values and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.HTTP.ShutdownSeconds == 0 {
		c.HTTP.ShutdownSeconds = 5
	}
	if c.GRPC.Address == "" {
		c.GRPC.Address = ":9090"
	}
	if c.Voyage.DefaultDays == 0 {
		c.Voyage.DefaultDays = 10
	}
	if c.Cache.ContainerTTLSeconds == 0 {
		c.Cache.ContainerTTLSeconds = 300
	}
	if c.RateLimit.RequestsPerSecond == 0 {
		c.RateLimit.RequestsPerSecond = 50
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 100
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = "cargoeta-worker"
	}
	if c.Worker.NotifyLayout == "" {
		c.Worker.NotifyLayout = "2006-01-02 15:04 MST"
	}
	if len(c.Ports) == 0 {
		c.Ports = []PortConfig{
			{ID: "Shanghai", Timezone: "Asia/Shanghai"},
			{ID: "Singapore", Timezone: "Asia/Singapore"},
			{ID: "Rotterdam", Timezone: "Europe/Amsterdam"},
			{ID: "NewYork", Timezone: "America/New_York"},
			{ID: "LosAngeles", Timezone: "America/Los_Angeles"},
			{ID: "Hamburg", Timezone: "Europe/Berlin"},
		}
	}
	if len(c.Containers) == 0 {
		c.Containers = []ContainerSeed{
			{ID: "OOCL123", Weight: 25000, PortOfOrigin: "Shanghai"},
			{ID: "OOCL456", Weight: 30000, PortOfOrigin: "Singapore"},
			{ID: "OOCL789", Weight: 20000, PortOfOrigin: "Rotterdam"},
		}
	}
}

func (c *Config) Validate() error {
	if c.Voyage.DefaultDays < 0 || c.Voyage.DefaultDays > domain.MaxVoyageDays {
		return fmt.Errorf("voyage.default_days must be within [0, %d]", domain.MaxVoyageDays)
	}
	for _, r := range c.Voyage.Routes {
		if r.Origin == "" || r.Destination == "" {
			return errors.New("voyage.routes entries need origin and destination")
		}
		if r.Days < 0 || r.Days > domain.MaxVoyageDays {
			return fmt.Errorf("voyage route %s -> %s: days must be within [0, %d]", r.Origin, r.Destination, domain.MaxVoyageDays)
		}
	}

	seenPorts := make(map[string]struct{}, len(c.Ports))
	for _, p := range c.Ports {
		if p.ID == "" || p.Timezone == "" {
			return errors.New("ports entries need id and timezone")
		}
		if _, dup := seenPorts[p.ID]; dup {
			return fmt.Errorf("duplicate port %q", p.ID)
		}
		seenPorts[p.ID] = struct{}{}
	}

	seenContainers := make(map[string]struct{}, len(c.Containers))
	for _, s := range c.Containers {
		if s.ID == "" {
			return errors.New("containers entries need id")
		}
		if s.Weight < 0 {
			return fmt.Errorf("container %s: weight must not be negative", s.ID)
		}
		if _, dup := seenContainers[s.ID]; dup {
			return fmt.Errorf("duplicate container %q", s.ID)
		}
		seenContainers[s.ID] = struct{}{}
	}

	if c.Database.Enabled && c.Database.Host == "" {
		return errors.New("database.host is required when database is enabled")
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return errors.New("redis.addr is required when redis is enabled")
	}
	if c.Kafka.EtaTopic != "" && len(c.Kafka.Brokers) == 0 {
		return errors.New("kafka.brokers is required when kafka.eta_topic is set")
	}
	if c.RateLimit.RequestsPerSecond < 0 || c.RateLimit.Burst < 0 {
		return errors.New("rate_limit values must not be negative")
	}
	return nil
}
