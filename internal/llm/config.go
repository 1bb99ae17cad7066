package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Provider names accepted by DISCERN_LLM_PROVIDER.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
)

// Config selects the model behind theme extraction and report synthesis.
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one Generate call, retries included. A report makes
	// two calls, so the HTTP write timeout must cover twice this.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // any OpenAI-compatible endpoint
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string

	// Referer and Title identify the app on openrouter.ai rankings.
	// Title defaults to "discern"; Referer is sent only when set.
	Referer string
	Title   string
}

// RetryConfig configures backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig uses Claude Sonnet; synthesis output quality matters more
// here than per-call cost.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderAnthropic,
		Anthropic:  AnthropicConfig{Model: "claude-sonnet"},
		OpenAI:     OpenAIConfig{Model: "gpt"},
		Gemini:     GeminiConfig{Model: "gemini-pro"},
		OpenRouter: OpenRouterConfig{Model: "anthropic/claude-sonnet-4.5"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 90 * time.Second,
	}
}

// ConfigFromEnv overlays DISCERN_* variables on DefaultConfig. Malformed
// numbers and durations keep the default.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	envString(&cfg.Provider, "DISCERN_LLM_PROVIDER")
	envString(&cfg.Anthropic.APIKey, "DISCERN_ANTHROPIC_API_KEY")
	envString(&cfg.Anthropic.Model, "DISCERN_ANTHROPIC_MODEL")
	envString(&cfg.OpenAI.APIKey, "DISCERN_OPENAI_API_KEY")
	envString(&cfg.OpenAI.Model, "DISCERN_OPENAI_MODEL")
	envString(&cfg.OpenAI.BaseURL, "DISCERN_OPENAI_BASE_URL")
	envString(&cfg.Gemini.APIKey, "DISCERN_GEMINI_API_KEY")
	envString(&cfg.Gemini.Model, "DISCERN_GEMINI_MODEL")
	envString(&cfg.OpenRouter.APIKey, "DISCERN_OPENROUTER_API_KEY")
	envString(&cfg.OpenRouter.Model, "DISCERN_OPENROUTER_MODEL")
	envString(&cfg.OpenRouter.Referer, "DISCERN_OPENROUTER_REFERER")
	envString(&cfg.OpenRouter.Title, "DISCERN_OPENROUTER_TITLE")

	if v := os.Getenv("DISCERN_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if v := os.Getenv("DISCERN_LLM_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Retry.MaxAttempts = n
		}
	}
	return cfg
}

func envString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// vendorKeys lists the provider-native key variables DiscoverConfig checks,
// in priority order.
var vendorKeys = []struct {
	env      string
	provider string
	set      func(*Config, string)
}{
	{"ANTHROPIC_API_KEY", ProviderAnthropic, func(c *Config, k string) { c.Anthropic.APIKey = k }},
	{"OPENAI_API_KEY", ProviderOpenAI, func(c *Config, k string) { c.OpenAI.APIKey = k }},
	{"GEMINI_API_KEY", ProviderGemini, func(c *Config, k string) { c.Gemini.APIKey = k }},
	{"OPENROUTER_API_KEY", ProviderOpenRouter, func(c *Config, k string) { c.OpenRouter.APIKey = k }},
}

// DiscoverConfig selects the first provider whose vendor key variable is
// set, keeping every other DISCERN_* setting.
func DiscoverConfig() (Config, bool) {
	cfg := ConfigFromEnv()
	for _, vk := range vendorKeys {
		if k := os.Getenv(vk.env); k != "" {
			cfg.Provider = vk.provider
			vk.set(&cfg, k)
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider is known and has a key.
func (c Config) Validate() error {
	var key, env string
	switch c.Provider {
	case ProviderAnthropic:
		key, env = c.Anthropic.APIKey, "DISCERN_ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		key, env = c.OpenAI.APIKey, "DISCERN_OPENAI_API_KEY"
	case ProviderGemini:
		key, env = c.Gemini.APIKey, "DISCERN_GEMINI_API_KEY"
	case ProviderOpenRouter:
		key, env = c.OpenRouter.APIKey, "DISCERN_OPENROUTER_API_KEY"
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", env, c.Provider)
	}
	return nil
}
