package prompts

import (
	"fmt"
	"strings"
)

// Version names a registered set of prompt templates.
type Version string

const (
	// V1 is the pastoral voice.
	V1 Version = "v1"

	DefaultVersion = V1
)

// templates maps each registered version to its system instruction.
var templates = map[Version]string{
	V1: systemV1,
}

// ParseVersion validates s. An empty string selects DefaultVersion.
func ParseVersion(s string) (Version, error) {
	v := Version(strings.TrimSpace(strings.ToLower(s)))
	if v == "" {
		return DefaultVersion, nil
	}
	if _, ok := templates[v]; !ok {
		return "", fmt.Errorf("unknown prompt version %q", s)
	}
	return v, nil
}

// SystemInstruction returns the fixed system text for v.
func SystemInstruction(v Version) (string, error) {
	text, ok := templates[v]
	if !ok {
		return "", fmt.Errorf("unknown prompt version %q", v)
	}
	return text, nil
}
