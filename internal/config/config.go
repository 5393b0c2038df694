package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	"github.com/syam1133/portfolio-assistant/internal/model/chat"
)

// Config aggregates every configuration section of the service.
type Config struct {
	Server    ServerConfig
	Assistant AssistantConfig
	Contact   ContactConfig
}

// Load reads the whole configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	assistant, err := loadAssistantConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Assistant: assistant, Contact: loadContactConfig()}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AssistantConfig describes the completion model and local-responder knobs.
type AssistantConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature *float64
	MaxTokens   *int
	Timeout     time.Duration
	LocalDelay  time.Duration
}

// Enabled reports whether a completion credential is present. Presence alone
// flips the mode; validity is only discovered through the failure path.
func (c AssistantConfig) Enabled() bool {
	return c.APIKey != ""
}

// Mode is the session-lifetime responder selection derived from Enabled.
func (c AssistantConfig) Mode() chat.Mode {
	if c.Enabled() {
		return chat.ModeRemote
	}
	return chat.ModeLocal
}

// NewChatModel builds the completion model from this configuration.
func (c AssistantConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("OpenAI credential missing, set OPENAI_API_KEY")
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	var maxTokens *int
	if c.MaxTokens != nil {
		val := *c.MaxTokens
		maxTokens = &val
	}

	cfg := &openai.ChatModelConfig{
		APIKey:      c.APIKey,
		BaseURL:     c.BaseURL,
		Model:       c.Model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		Timeout:     c.Timeout,
	}

	return openai.NewChatModel(ctx, cfg)
}

func loadAssistantConfig() (AssistantConfig, error) {
	temperature, err := parseOptionalFloatEnv("OPENAI_TEMPERATURE")
	if err != nil {
		return AssistantConfig{}, err
	}
	if temperature == nil {
		val := 0.7
		temperature = &val
	}

	maxTokens, err := parseOptionalIntEnv("OPENAI_MAX_TOKENS")
	if err != nil {
		return AssistantConfig{}, err
	}
	if maxTokens == nil {
		val := 500
		maxTokens = &val
	}

	timeoutSeconds := 30
	if override, err := parseOptionalIntEnv("OPENAI_TIMEOUT"); err != nil {
		return AssistantConfig{}, err
	} else if override != nil && *override > 0 {
		timeoutSeconds = *override
	}

	localDelayMillis := 500
	if override, err := parseOptionalIntEnv("ASSISTANT_LOCAL_DELAY_MS"); err != nil {
		return AssistantConfig{}, err
	} else if override != nil && *override >= 0 {
		localDelayMillis = *override
	}

	return AssistantConfig{
		APIKey:      strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		Model:       getEnvOrDefault("OPENAI_MODEL", "gpt-3.5-turbo"),
		BaseURL:     getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Timeout:     time.Duration(timeoutSeconds) * time.Second,
		LocalDelay:  time.Duration(localDelayMillis) * time.Millisecond,
	}, nil
}

// ContactConfig describes the outbound contact-form relay.
type ContactConfig struct {
	AccessKey string
	Endpoint  string
}

// Enabled reports whether the relay access key is configured.
func (c ContactConfig) Enabled() bool {
	return c.AccessKey != ""
}

func loadContactConfig() ContactConfig {
	return ContactConfig{
		AccessKey: strings.TrimSpace(os.Getenv("CONTACT_ACCESS_KEY")),
		Endpoint:  getEnvOrDefault("CONTACT_ENDPOINT", "https://api.web3forms.com/submit"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
