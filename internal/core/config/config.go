package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var v *viper.Viper
var cfg *Config

// Config App-wide configuration
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Cache     CacheConfig
	Snowflake SnowflakeConfig
	Logging   LoggingConfig
	Security  SecurityConfig
	SEO       SEOConfig
}

// AppConfig Application Configuration
type AppConfig struct {
	Host    string
	Port    int
	Mode    string
	BaseURL string
}

// DatabaseConfig MySQL Database Configuration
type DatabaseConfig struct {
	Host            string
	Port            int
	Username        string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
}

// RedisConfig Redis Configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// JWTConfig JWT Configuration
type JWTConfig struct {
	Secret string
	Expiry int // token lifetime in seconds
}

// CacheConfig Cache Configuration
type CacheConfig struct {
	L1CapMB int // bigcache hard limit, MB
	L2TTL   int // redis TTL, seconds
}

// SnowflakeConfig Snowflake Configuration
type SnowflakeConfig struct {
	WorkerID int64
}

// LoggingConfig Logging Configuration
type LoggingConfig struct {
	Level string
	Mode  string // "dev" uses console encoding, anything else JSON
}

// CORSConfig CORS Configuration
type CORSConfig struct {
	Enabled          bool
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// SecurityConfig Security Configuration
type SecurityConfig struct {
	CORS      CORSConfig
	RateLimit int // requests per IP per minute, 0 disables
}

// SEOConfig Sitemap/robots Configuration
type SEOConfig struct {
	SitemapTTL     int // sitemap cache, seconds
	SitemapMaxURLs int
}

// Init Initialize configuration with Viper
func Init(configPath string) error {
	v = viper.New()
	cfg = &Config{}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// no config file: defaults + env only
	}

	v.SetEnvPrefix("LUMIERE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindEnvs()

	return parseConfig()
}

func setDefaults() {
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", 8000)
	v.SetDefault("app.mode", "release")
	v.SetDefault("app.base_url", "")

	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "lumiere")
	v.SetDefault("database.name", "lumiere")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.conn_max_lifetime", 300)

	v.SetDefault("redis.host", "127.0.0.1")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.expiry", 86400)

	v.SetDefault("cache.l1_cap_mb", 32)
	v.SetDefault("cache.l2_ttl", 600)

	v.SetDefault("snowflake.worker_id", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.mode", "prod")

	v.SetDefault("security.rate_limit", 120)
	v.SetDefault("security.cors.enabled", true)
	v.SetDefault("security.cors.allowed_origins", []string{})
	v.SetDefault("security.cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("security.cors.allowed_headers", []string{"Authorization", "Content-Type"})
	v.SetDefault("security.cors.allow_credentials", false)
	v.SetDefault("security.cors.max_age", 3600)

	v.SetDefault("seo.sitemap_ttl", 300)
	v.SetDefault("seo.sitemap_max_urls", 5000)
}

func bindEnvs() {
	v.BindEnv("database.host", "LUMIERE_DATABASE_HOST")
	v.BindEnv("database.port", "LUMIERE_DATABASE_PORT")
	v.BindEnv("database.username", "LUMIERE_DATABASE_USERNAME")
	v.BindEnv("database.password", "LUMIERE_DATABASE_PASSWORD")
	v.BindEnv("database.name", "LUMIERE_DATABASE_NAME")

	v.BindEnv("redis.host", "LUMIERE_REDIS_HOST")
	v.BindEnv("redis.port", "LUMIERE_REDIS_PORT")
	v.BindEnv("redis.password", "LUMIERE_REDIS_PASSWORD")

	v.BindEnv("jwt.secret", "LUMIERE_JWT_SECRET")
}

func parseConfig() error {
	cfg.App.Host = v.GetString("app.host")
	cfg.App.Port = v.GetInt("app.port")
	cfg.App.Mode = v.GetString("app.mode")
	cfg.App.BaseURL = strings.TrimSpace(v.GetString("app.base_url"))

	cfg.Database.Host = v.GetString("database.host")
	cfg.Database.Port = v.GetInt("database.port")
	cfg.Database.Username = v.GetString("database.username")
	cfg.Database.Password = v.GetString("database.password")
	cfg.Database.Name = v.GetString("database.name")
	cfg.Database.MaxOpenConns = v.GetInt("database.max_open_conns")
	cfg.Database.MaxIdleConns = v.GetInt("database.max_idle_conns")
	cfg.Database.ConnMaxLifetime = v.GetInt("database.conn_max_lifetime")

	cfg.Redis.Host = v.GetString("redis.host")
	cfg.Redis.Port = v.GetInt("redis.port")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")
	cfg.Redis.PoolSize = v.GetInt("redis.pool_size")

	cfg.JWT.Secret = v.GetString("jwt.secret")
	cfg.JWT.Expiry = v.GetInt("jwt.expiry")

	cfg.Cache.L1CapMB = v.GetInt("cache.l1_cap_mb")
	cfg.Cache.L2TTL = v.GetInt("cache.l2_ttl")

	cfg.Snowflake.WorkerID = v.GetInt64("snowflake.worker_id")

	cfg.Logging.Level = v.GetString("logging.level")
	cfg.Logging.Mode = v.GetString("logging.mode")

	cfg.Security.RateLimit = v.GetInt("security.rate_limit")
	cfg.Security.CORS.Enabled = v.GetBool("security.cors.enabled")
	cfg.Security.CORS.AllowedOrigins = v.GetStringSlice("security.cors.allowed_origins")
	cfg.Security.CORS.AllowedMethods = v.GetStringSlice("security.cors.allowed_methods")
	cfg.Security.CORS.AllowedHeaders = v.GetStringSlice("security.cors.allowed_headers")
	cfg.Security.CORS.AllowCredentials = v.GetBool("security.cors.allow_credentials")
	cfg.Security.CORS.MaxAge = v.GetInt("security.cors.max_age")

	cfg.SEO.SitemapTTL = v.GetInt("seo.sitemap_ttl")
	cfg.SEO.SitemapMaxURLs = v.GetInt("seo.sitemap_max_urls")

	return nil
}

// Get Get configuration instance
func Get() *Config {
	return cfg
}

// GetDSN Get MySQL DSN
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Username, c.Password, c.Host, c.Port, c.Name)
}

// GetRedisAddr Get Redis address
func (c *RedisConfig) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GetServerAddr Get server listen address
func (c *AppConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
