package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Fetch    FetchConfig
	OCR      OCRConfig
	LLM      LLMConfig
	Analysis AnalysisConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Addr            string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// FetchConfig holds remote file download configuration
type FetchConfig struct {
	Timeout  time.Duration
	MaxBytes int64
}

// OCRConfig holds the remote OCR service configuration
type OCRConfig struct {
	Endpoint string
	APIKey   string
	Language string
	Timeout  time.Duration
}

// LLMConfig holds LLM-related configuration
type LLMConfig struct {
	Model        string
	APIKey       string
	BaseURL      string
	Temperature  float32
	MaxTokens    int
	Timeout      time.Duration
	PromptWindow int
}

// AnalysisConfig holds extractive analyzer tunables
type AnalysisConfig struct {
	MinSentenceWords    int
	MaxSummarySentences int
	MaxKeyPoints        int
	MaxActions          int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            getEnv("HTTP_ADDR", ":8080"),
			RequestTimeout:  getEnvAsDuration("HTTP_REQUEST_TIMEOUT", 2*time.Minute),
			ShutdownTimeout: getEnvAsDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Fetch: FetchConfig{
			Timeout:  getEnvAsDuration("FETCH_TIMEOUT", 30*time.Second),
			MaxBytes: getEnvAsInt64("FETCH_MAX_BYTES", 25*1024*1024),
		},
		OCR: OCRConfig{
			Endpoint: getEnv("OCR_ENDPOINT", "https://api.ocr.space/parse/image"),
			APIKey:   getEnv("OCR_API_KEY", "helloworld"),
			Language: getEnv("OCR_LANGUAGE", "eng"),
			Timeout:  getEnvAsDuration("OCR_TIMEOUT", 60*time.Second),
		},
		LLM: LLMConfig{
			Model:        getEnv("LLM_MODEL", "gpt-4o-mini"),
			APIKey:       getEnv("LLM_API_KEY", ""),
			BaseURL:      getEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
			Temperature:  getEnvAsFloat32("LLM_TEMPERATURE", 0.2),
			MaxTokens:    getEnvAsInt("LLM_MAX_TOKENS", 1024),
			Timeout:      getEnvAsDuration("LLM_TIMEOUT", 45*time.Second),
			PromptWindow: getEnvAsInt("LLM_PROMPT_WINDOW", 6000),
		},
		Analysis: AnalysisConfig{
			MinSentenceWords:    getEnvAsInt("ANALYSIS_MIN_SENTENCE_WORDS", 5),
			MaxSummarySentences: getEnvAsInt("ANALYSIS_MAX_SUMMARY_SENTENCES", 5),
			MaxKeyPoints:        getEnvAsInt("ANALYSIS_MAX_KEY_POINTS", 5),
			MaxActions:          getEnvAsInt("ANALYSIS_MAX_ACTIONS", 3),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
