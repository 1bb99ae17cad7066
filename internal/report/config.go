package report

import (
	"fmt"
	"os"
	"strconv"

	"github.com/abhisek/discern/internal/prompts"
)

// Config tunes report generation.
type Config struct {
	ThemeMaxTokens     int
	SynthesisMaxTokens int
	PromptVersion      prompts.Version
	// IncludeAnything feeds the "anything else" reflection into theme
	// extraction and synthesis.
	IncludeAnything bool
	// DefaultName addresses users without a display name.
	DefaultName string
}

// DefaultConfig returns the reference settings.
func DefaultConfig() Config {
	return Config{
		ThemeMaxTokens:     500,
		SynthesisMaxTokens: 4000,
		PromptVersion:      prompts.DefaultVersion,
		DefaultName:        prompts.DefaultName,
	}
}

// ConfigFromEnv overlays DISCERN_* variables on the defaults.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("DISCERN_PROMPT_VERSION"); v != "" {
		cfg.PromptVersion = prompts.Version(v)
	}
	if v := os.Getenv("DISCERN_FREETEXT_INCLUDE_ANYTHING"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("DISCERN_FREETEXT_INCLUDE_ANYTHING: %w", err)
		}
		cfg.IncludeAnything = b
	}
	for name, dst := range map[string]*int{
		"DISCERN_THEME_MAX_TOKENS":     &cfg.ThemeMaxTokens,
		"DISCERN_SYNTHESIS_MAX_TOKENS": &cfg.SynthesisMaxTokens,
	} {
		if v := os.Getenv(name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return cfg, fmt.Errorf("%s: %w", name, err)
			}
			*dst = n
		}
	}
	return cfg, cfg.Validate()
}

// Validate rejects unknown prompt versions and non-positive budgets.
func (c Config) Validate() error {
	if _, err := prompts.SystemInstruction(c.PromptVersion); err != nil {
		return err
	}
	if c.ThemeMaxTokens <= 0 || c.SynthesisMaxTokens <= 0 {
		return fmt.Errorf("token budgets must be positive (theme %d, synthesis %d)", c.ThemeMaxTokens, c.SynthesisMaxTokens)
	}
	return nil
}
