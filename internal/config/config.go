package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Issuer     string `yaml:"issuer"`
	AccessTTL  string `yaml:"access_ttl"`
	RefreshTTL string `yaml:"refresh_ttl"`
}

type OTPConfig struct {
	Step         string `yaml:"step"`
	Digits       int    `yaml:"digits"`
	Skew         int    `yaml:"skew"`
	ResendWindow string `yaml:"resend_window"`
}

type SessionConfig struct {
	TTL string `yaml:"ttl"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	OTP      OTPConfig      `yaml:"otp"`
	Session  SessionConfig  `yaml:"session"`
	Twilio   TwilioConfig   `yaml:"twilio"`
	Casbin   CasbinConfig   `yaml:"casbin"`
}

// Config is the immutable runtime configuration. The three signing secrets
// come from the environment only and are required: a missing secret is fatal
// at boot, never a per-request failure.
type Config struct {
	Port    string
	GinMode string

	DSN           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AccessKey  string
	RefreshKey string
	OTPKey     string

	JWTIssuer  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	OTPStep         time.Duration
	OTPDigits       int
	OTPSkew         int
	OTPResendWindow time.Duration

	SessionTTL time.Duration

	TwilioSID   string
	TwilioToken string
	TwilioFrom  string

	CasbinModelPath string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml, applies environment overrides and validates
// the required secrets.
func Load() (*Config, error) {
	return LoadFrom(env("CONFIG_PATH", "config/config.yml"))
}

// LoadFrom loads configuration from an explicit file path.
func LoadFrom(path string) (*Config, error) {
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	accessKey := os.Getenv("ACCESS_KEY")
	refreshKey := os.Getenv("REFRESH_KEY")
	otpKey := os.Getenv("OTP_KEY")
	if accessKey == "" || refreshKey == "" || otpKey == "" {
		return nil, fmt.Errorf("missing required environment variables ACCESS_KEY, REFRESH_KEY or OTP_KEY")
	}

	accTTL, err := parseDuration(configFile.JWT.AccessTTL, time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}

	refTTL, err := parseDuration(configFile.JWT.RefreshTTL, 30*24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT refresh TTL: %w", err)
	}

	otpStep, err := parseDuration(configFile.OTP.Step, 5*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP step: %w", err)
	}

	resWnd, err := parseDuration(configFile.OTP.ResendWindow, time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP resend window: %w", err)
	}

	sessTTL, err := parseDuration(configFile.Session.TTL, 7*24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	digits := configFile.OTP.Digits
	if digits == 0 {
		digits = 6
	}

	return &Config{
		Port:            fmt.Sprintf("%d", configFile.App.Port),
		GinMode:         configFile.App.GinMode,
		DSN:             env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:       env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:   configFile.Redis.Password,
		RedisDB:         configFile.Redis.DB,
		AccessKey:       accessKey,
		RefreshKey:      refreshKey,
		OTPKey:          otpKey,
		JWTIssuer:       configFile.JWT.Issuer,
		AccessTTL:       accTTL,
		RefreshTTL:      refTTL,
		OTPStep:         otpStep,
		OTPDigits:       digits,
		OTPSkew:         configFile.OTP.Skew,
		OTPResendWindow: resWnd,
		SessionTTL:      sessTTL,
		TwilioSID:       configFile.Twilio.AccountSID,
		TwilioToken:     configFile.Twilio.AuthToken,
		TwilioFrom:      configFile.Twilio.FromNumber,
		CasbinModelPath: configFile.Casbin.ModelPath,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}

func parseDuration(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	return time.ParseDuration(s)
}
