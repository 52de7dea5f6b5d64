package config

import (
	"os"
	"strconv"

	"github.com/resonara/resonara/internal/synth"
)

// Config holds runtime defaults, loaded from environment variables.
// Command-line flags override these per invocation.
type Config struct {
	OutputDir string
	Duration  float64 // seconds per generated file
	Amplitude float64 // normalized peak in (0, 1]
	BaseFreq  float64 // carrier for binaural and isochronic presets
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	return Config{
		OutputDir: envStr("RESONARA_OUTPUT_DIR", "./output"),
		Duration:  envFloat("RESONARA_DURATION", 60),
		Amplitude: envFloat("RESONARA_AMPLITUDE", synth.DefaultAmplitude),
		BaseFreq:  envFloat("RESONARA_BASE_FREQ", 200),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
