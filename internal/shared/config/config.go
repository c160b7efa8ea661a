package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port             string
	Env              string
	Debug            bool
	CORSAllowOrigins []string

	DatabaseURL string

	GeminiAPIKey string
	LLMModel     string
	LLMTimeout   time.Duration

	StageMaxAttempts int
	RetryBaseDelay   time.Duration

	// Match engine combination weights. Must sum to 1.0.
	WeightSkill        float64
	WeightSeniority    float64
	WeightRate         float64
	WeightAvailability float64

	MaxRecommendations int

	// Candidate floors applied before recommendations are truncated.
	// Zero disables the corresponding bound.
	MatchMinScore        float64
	MatchMaxHourlyRate   float64
	MatchMinAvailability float64
}

// Load reads configuration from the environment with sensible defaults.
// Local .env files are loaded best-effort for dev convenience.
func Load() Config {
	_ = godotenv.Load(".env", "cmd/.env")

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("env", "dev")
	v.SetDefault("debug", false)
	v.SetDefault("cors_allow_origins", "http://localhost:5173")
	v.SetDefault("database_url", "")
	v.SetDefault("gemini_api_key", "")
	v.SetDefault("llm_model", "gemini-2.0-flash")
	v.SetDefault("llm_timeout", "120s")
	v.SetDefault("stage_max_attempts", 3)
	v.SetDefault("retry_base_delay", "500ms")
	v.SetDefault("weight_skill", 0.5)
	v.SetDefault("weight_seniority", 0.2)
	v.SetDefault("weight_rate", 0.15)
	v.SetDefault("weight_availability", 0.15)
	v.SetDefault("max_recommendations", 3)
	v.SetDefault("match_min_score", 0)
	v.SetDefault("match_max_hourly_rate", 0)
	v.SetDefault("match_min_availability", 0)

	return Config{
		Port:               v.GetString("port"),
		Env:                normalizeEnv(v.GetString("env")),
		Debug:              v.GetBool("debug"),
		CORSAllowOrigins:   splitAndTrim(v.GetString("cors_allow_origins")),
		DatabaseURL:        v.GetString("database_url"),
		GeminiAPIKey:       v.GetString("gemini_api_key"),
		LLMModel:           v.GetString("llm_model"),
		LLMTimeout:         v.GetDuration("llm_timeout"),
		StageMaxAttempts:   v.GetInt("stage_max_attempts"),
		RetryBaseDelay:     v.GetDuration("retry_base_delay"),
		WeightSkill:        v.GetFloat64("weight_skill"),
		WeightSeniority:    v.GetFloat64("weight_seniority"),
		WeightRate:         v.GetFloat64("weight_rate"),
		WeightAvailability: v.GetFloat64("weight_availability"),
		MaxRecommendations: v.GetInt("max_recommendations"),

		MatchMinScore:        v.GetFloat64("match_min_score"),
		MatchMaxHourlyRate:   v.GetFloat64("match_max_hourly_rate"),
		MatchMinAvailability: v.GetFloat64("match_min_availability"),
	}
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
