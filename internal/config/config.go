package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// EventPolicy decides what happens to Slack events the dispatcher has no
// handler for.
type EventPolicy string

const (
	// EventPolicyReject answers unmatched events with 400.
	EventPolicyReject EventPolicy = "reject"
	// EventPolicyIgnore acknowledges unmatched events with 200.
	EventPolicyIgnore EventPolicy = "ignore"
)

// Config holds all configuration for the application. Callers receive it from
// Load and pass it into constructors; there is no package-level instance.
type Config struct {
	// LLM configuration
	LLMAPIURL        string // Required: LLM endpoint URL
	LLMApplicationID int    // Application ID sent with every LLM request

	// Slack configuration
	SlackWebhookURL    string // Required: incoming webhook for posting replies
	SlackSigningSecret string // Optional: enables request signature verification

	// RequestTimeout bounds each outbound HTTP call
	RequestTimeout time.Duration

	// UnmatchedEventPolicy is applied to events without a handler
	UnmatchedEventPolicy EventPolicy

	// Log level
	LogLevel string
}

// Load creates a new Config instance from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}

	// Load required values
	requiredVars := map[string]*string{
		"LLM_API_URL":       &cfg.LLMAPIURL,
		"SLACK_WEBHOOK_URL": &cfg.SlackWebhookURL,
	}

	var missingVars []string
	for env, ptr := range requiredVars {
		*ptr = os.Getenv(env)
		if *ptr == "" {
			missingVars = append(missingVars, env)
		}
	}

	if len(missingVars) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	cfg.SlackSigningSecret = os.Getenv("SLACK_SIGNING_SECRET")
	cfg.LogLevel = getEnvDefault("LOG_LEVEL", "info")

	appID, err := strconv.Atoi(getEnvDefault("LLM_APPLICATION_ID", "3550"))
	if err != nil {
		return nil, fmt.Errorf("invalid LLM_APPLICATION_ID: %w", err)
	}
	cfg.LLMApplicationID = appID

	timeoutSec, err := strconv.Atoi(getEnvDefault("REQUEST_TIMEOUT", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}
	if timeoutSec <= 0 {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: must be positive, got %d", timeoutSec)
	}
	cfg.RequestTimeout = time.Duration(timeoutSec) * time.Second

	policy := EventPolicy(getEnvDefault("UNMATCHED_EVENT_POLICY", string(EventPolicyReject)))
	switch policy {
	case EventPolicyReject, EventPolicyIgnore:
		cfg.UnmatchedEventPolicy = policy
	default:
		return nil, fmt.Errorf("invalid UNMATCHED_EVENT_POLICY: %q (want %q or %q)",
			policy, EventPolicyReject, EventPolicyIgnore)
	}

	return cfg, nil
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
