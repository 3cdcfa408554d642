package config

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config centraliza a configuração carregada do ambiente.
type Config struct {
	Port            int
	Env             string
	LogLevel        zerolog.Level
	LogFormat       string
	SessionSecret   string
	SessionTTL      time.Duration
	SessionStore    string
	RedisURL        string
	CSRFKey         []byte
	SecureCookies   bool
	RateLimitPublic RateLimitConfig
	RateLimitLogin  RateLimitConfig
	// GeneratedSecret indica segredo aleatório gerado nesta execução.
	GeneratedSecret bool
}

// RateLimitConfig representa limites simples para throttling.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load carrega variáveis de ambiente e aplica defaults seguros.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil || port <= 0 {
		return nil, errors.New("PORT inválida")
	}
	cfg.Port = port

	cfg.Env = strings.ToLower(strings.TrimSpace(getEnv("APP_ENV", EnvDevelopment)))
	if cfg.Env != EnvDevelopment && cfg.Env != EnvProduction {
		return nil, errors.New("APP_ENV deve ser development ou production")
	}

	level, err := zerolog.ParseLevel(strings.ToLower(getEnv("LOG_LEVEL", "info")))
	if err != nil {
		return nil, errors.New("LOG_LEVEL inválido")
	}
	cfg.LogLevel = level

	defaultFormat := "console"
	if cfg.Production() {
		defaultFormat = "json"
	}
	cfg.LogFormat = strings.ToLower(getEnv("LOG_FORMAT", defaultFormat))
	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		return nil, errors.New("LOG_FORMAT deve ser console ou json")
	}

	cfg.SessionSecret = strings.TrimSpace(getEnv("SESSION_SECRET", ""))
	if cfg.SessionSecret == "" && !cfg.Production() {
		secret, err := randomSecret()
		if err != nil {
			return nil, err
		}
		cfg.SessionSecret = secret
		cfg.GeneratedSecret = true
	}
	if len(cfg.SessionSecret) < 32 {
		return nil, errors.New("SESSION_SECRET deve ter pelo menos 32 caracteres")
	}

	ttl, err := parseDurationEnv("SESSION_TTL", 12*time.Hour)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		return nil, errors.New("SESSION_TTL deve ser positivo")
	}
	cfg.SessionTTL = ttl

	cfg.SessionStore = strings.ToLower(strings.TrimSpace(getEnv("SESSION_STORE", StoreMemory)))
	switch cfg.SessionStore {
	case StoreMemory:
	case StoreRedis:
		cfg.RedisURL = strings.TrimSpace(getEnv("REDIS_URL", ""))
		if cfg.RedisURL == "" {
			return nil, errors.New("REDIS_URL obrigatório quando SESSION_STORE=redis")
		}
	default:
		return nil, errors.New("SESSION_STORE deve ser memory ou redis")
	}

	if raw := strings.TrimSpace(getEnv("CSRF_KEY", "")); raw != "" {
		key, err := hex.DecodeString(raw)
		if err != nil || len(key) != 32 {
			return nil, errors.New("CSRF_KEY deve ter 64 caracteres hexadecimais")
		}
		cfg.CSRFKey = key
	} else {
		sum := sha256.Sum256([]byte("csrf:" + cfg.SessionSecret))
		cfg.CSRFKey = sum[:]
	}

	secure, err := parseBoolEnv("SECURE_COOKIES", cfg.Production())
	if err != nil {
		return nil, err
	}
	cfg.SecureCookies = secure

	cfg.RateLimitPublic, err = parseRateLimit("RATE_LIMIT_PUBLIC", RateLimitConfig{RequestsPerSecond: 10, Burst: 20})
	if err != nil {
		return nil, err
	}
	cfg.RateLimitLogin, err = parseRateLimit("RATE_LIMIT_LOGIN", RateLimitConfig{RequestsPerSecond: 1, Burst: 5})
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Production informa se o ambiente é de produção.
func (c *Config) Production() bool {
	return c.Env == EnvProduction
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	val := getEnv(key, "")
	if val == "" {
		return def, nil
	}
	dur, err := time.ParseDuration(val)
	if err != nil {
		return 0, errors.New(key + " inválido")
	}
	return dur, nil
}

func parseBoolEnv(key string, def bool) (bool, error) {
	val := strings.TrimSpace(getEnv(key, ""))
	if val == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, errors.New(key + " inválido")
	}
	return b, nil
}

func parseRateLimit(prefix string, def RateLimitConfig) (RateLimitConfig, error) {
	out := def
	if raw := strings.TrimSpace(getEnv(prefix+"_RPS", "")); raw != "" {
		rps, err := strconv.ParseFloat(raw, 64)
		if err != nil || rps <= 0 {
			return out, errors.New(prefix + "_RPS inválido")
		}
		out.RequestsPerSecond = rps
	}
	if raw := strings.TrimSpace(getEnv(prefix+"_BURST", "")); raw != "" {
		burst, err := strconv.Atoi(raw)
		if err != nil || burst <= 0 {
			return out, errors.New(prefix + "_BURST inválido")
		}
		out.Burst = burst
	}
	return out, nil
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
