package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/utils"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Payroll  PayrollConfig
	Leave    LeaveConfig
	Cron     CronConfig
	CORS     CORSConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	CompanyName string
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	Name        string
	SSLMode     string
	MaxConns    int32
	MinConns    int32
	AutoMigrate bool
}

// RedisConfig holds the salary law cache connection. An empty Addr disables the cache.
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	SalaryLawTTL time.Duration
}

// KafkaConfig holds the payroll event broker. No brokers disables publishing.
type KafkaConfig struct {
	Brokers      []string
	PayrollTopic string
}

type PayrollConfig struct {
	StandardDaysInMonth  int
	DefaultLunchDuration string
	BatchConcurrency     int
}

type LeaveConfig struct {
	DefaultAnnualEntitlement decimal.Decimal
	AccrualFormula           string
}

type CronConfig struct {
	SalaryLawCheckInterval time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads .env when present and builds the configuration from the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	} else if err != nil {
		slog.Debug("no .env file, using process environment")
	}

	return FromEnv()
}

// FromEnv builds the configuration from the process environment only
func FromEnv() (*Config, error) {
	config := &Config{}

	// Application configuration
	appPort, err := getEnvInt("APP_PORT", 8080)
	if err != nil {
		return nil, err
	}
	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CompanyName: getEnv("COMPANY_NAME", "CMLabs"),
	}

	// Database configuration
	dbPort, err := getEnvInt("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}
	maxConns, err := getEnvInt("DB_MAX_CONNS", 25)
	if err != nil {
		return nil, err
	}
	minConns, err := getEnvInt("DB_MIN_CONNS", 5)
	if err != nil {
		return nil, err
	}
	autoMigrate, err := getEnvBool("DB_AUTO_MIGRATE", true)
	if err != nil {
		return nil, err
	}
	config.Database = DatabaseConfig{
		Host:        getEnv("DB_HOST", "localhost"),
		Port:        dbPort,
		User:        getEnv("DB_USER", "postgres"),
		Password:    getEnv("DB_PASSWORD", ""),
		Name:        getEnv("DB_NAME", "cmlabs-hris-payroll"),
		SSLMode:     getEnv("DB_SSL_MODE", "disable"),
		MaxConns:    int32(maxConns),
		MinConns:    int32(minConns),
		AutoMigrate: autoMigrate,
	}

	// Redis configuration
	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := getEnvDuration("SALARY_LAW_CACHE_TTL", time.Hour)
	if err != nil {
		return nil, err
	}
	config.Redis = RedisConfig{
		Addr:         getEnv("REDIS_ADDR", ""),
		Password:     getEnv("REDIS_PASSWORD", ""),
		DB:           redisDB,
		SalaryLawTTL: cacheTTL,
	}

	// Kafka configuration
	config.Kafka = KafkaConfig{
		Brokers:      getEnvSlice("KAFKA_BROKERS"),
		PayrollTopic: getEnv("KAFKA_PAYROLL_TOPIC", "payroll.approved"),
	}

	// Payroll configuration
	standardDays, err := getEnvInt("PAYROLL_STANDARD_DAYS_IN_MONTH", 30)
	if err != nil {
		return nil, err
	}
	concurrency, err := getEnvInt("PAYROLL_BATCH_CONCURRENCY", 4)
	if err != nil {
		return nil, err
	}
	config.Payroll = PayrollConfig{
		StandardDaysInMonth:  standardDays,
		DefaultLunchDuration: getEnv("PAYROLL_DEFAULT_LUNCH_DURATION", "1:00"),
		BatchConcurrency:     concurrency,
	}

	// Leave configuration
	entitlement, err := decimal.NewFromString(getEnv("LEAVE_DEFAULT_ANNUAL_ENTITLEMENT", "12"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_DEFAULT_ANNUAL_ENTITLEMENT: %w", err)
	}
	config.Leave = LeaveConfig{
		DefaultAnnualEntitlement: entitlement,
		AccrualFormula:           getEnv("LEAVE_ACCRUAL_FORMULA", ""),
	}

	checkInterval, err := getEnvDuration("SALARY_LAW_CHECK_INTERVAL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	config.Cron = CronConfig{SalaryLawCheckInterval: checkInterval}

	config.CORS = CORSConfig{AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS")}
	if len(config.CORS.AllowedOrigins) == 0 {
		config.CORS.AllowedOrigins = []string{"*"}
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Payroll.StandardDaysInMonth <= 0 {
		return fmt.Errorf("PAYROLL_STANDARD_DAYS_IN_MONTH must be positive")
	}
	if c.Payroll.BatchConcurrency <= 0 {
		return fmt.Errorf("PAYROLL_BATCH_CONCURRENCY must be positive")
	}
	if !utils.IsValidClockTime(c.Payroll.DefaultLunchDuration) {
		return fmt.Errorf("PAYROLL_DEFAULT_LUNCH_DURATION must be H:MM, got %q", c.Payroll.DefaultLunchDuration)
	}
	if c.Leave.DefaultAnnualEntitlement.IsNegative() {
		return fmt.Errorf("LEAVE_DEFAULT_ANNUAL_ENTITLEMENT must not be negative")
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.PayrollTopic == "" {
		return fmt.Errorf("KAFKA_PAYROLL_TOPIC is required when KAFKA_BROKERS is set")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
