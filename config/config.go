package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string        `mapstructure:"APP_PORT"`
	Env               string        `mapstructure:"ENV"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int           `mapstructure:"MAX_REQUESTS_PER_MIN"`
	RequestTimeout    time.Duration `mapstructure:"REQUEST_TIMEOUT"`

	// Redis configuration, only used by the search cache.
	RedisAddr          string        `mapstructure:"REDIS_ADDR"`
	RedisPassword      string        `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB       int           `mapstructure:"REDIS_CACHE_DB"`
	SearchCacheEnabled bool          `mapstructure:"SEARCH_CACHE_ENABLED"`
	SearchCacheTTL     time.Duration `mapstructure:"SEARCH_CACHE_TTL"`

	// Tavily search.
	TavilyAPIKey     string `mapstructure:"TAVILY_API_KEY"`
	TavilyBaseURL    string `mapstructure:"TAVILY_BASE_URL"`
	SearchMaxResults int    `mapstructure:"SEARCH_MAX_RESULTS"`

	// Completion provider: "groq" or "gemini".
	CompletionProvider string `mapstructure:"COMPLETION_PROVIDER"`
	GroqAPIKey         string `mapstructure:"GROQ_API_KEY"`
	GroqBaseURL        string `mapstructure:"GROQ_BASE_URL"`
	GroqModel          string `mapstructure:"GROQ_MODEL"`
	GeminiAPIKey       string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel        string `mapstructure:"GEMINI_MODEL"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("REQUEST_TIMEOUT", 2*time.Minute)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("SEARCH_CACHE_ENABLED", false)
	v.SetDefault("SEARCH_CACHE_TTL", 6*time.Hour)
	v.SetDefault("TAVILY_API_KEY", "")
	v.SetDefault("TAVILY_BASE_URL", "https://api.tavily.com")
	v.SetDefault("SEARCH_MAX_RESULTS", 5)
	v.SetDefault("COMPLETION_PROVIDER", ProviderGroq)
	v.SetDefault("GROQ_API_KEY", "")
	v.SetDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1/")
	v.SetDefault("GROQ_MODEL", "llama3-8b-8192")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "models/gemini-1.5-pro")
}

// LoadConfig reads .env, config.yaml and the environment into AppConfig and
// validates it. A non-nil error means the process must not start.
func LoadConfig() error {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	v := viper.New()
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	cfg, err := load(v)
	if err != nil {
		return err
	}
	AppConfig = cfg
	return nil
}

func load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.CompletionProvider = strings.ToLower(strings.TrimSpace(cfg.CompletionProvider))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports missing credentials. Both the search key and the key of
// the selected completion provider are required.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.TavilyAPIKey) == "" {
		errs = append(errs, errors.New("TAVILY_API_KEY must be set"))
	}
	switch c.CompletionProvider {
	case ProviderGroq:
		if strings.TrimSpace(c.GroqAPIKey) == "" {
			errs = append(errs, errors.New("GROQ_API_KEY must be set"))
		}
	case ProviderGemini:
		if strings.TrimSpace(c.GeminiAPIKey) == "" {
			errs = append(errs, errors.New("GEMINI_API_KEY must be set"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown COMPLETION_PROVIDER %q", c.CompletionProvider))
	}
	if c.SearchMaxResults <= 0 {
		errs = append(errs, errors.New("SEARCH_MAX_RESULTS must be positive"))
	}
	return errors.Join(errs...)
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
