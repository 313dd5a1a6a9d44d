package config

import (
	"strings"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("LLM_API_URL", "http://llm.internal.test/chat")
	t.Setenv("SLACK_WEBHOOK_URL", "https://hooks.slack.test/services/T000/B000/XXX")
}

func clearOptionalEnv(t *testing.T) {
	t.Setenv("LLM_APPLICATION_ID", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("SLACK_SIGNING_SECRET", "")
	t.Setenv("UNMATCHED_EVENT_POLICY", "")
	t.Setenv("LOG_LEVEL", "")
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("LLM_API_URL", "")
	t.Setenv("SLACK_WEBHOOK_URL", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected an error for missing required variables, got nil")
	}
	for _, name := range []string{"LLM_API_URL", "SLACK_WEBHOOK_URL"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("Expected error to name %s, got %q", name, err.Error())
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	clearOptionalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.LLMApplicationID != 3550 {
		t.Errorf("Expected default application ID 3550, got %d", cfg.LLMApplicationID)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("Expected default timeout 30s, got %v", cfg.RequestTimeout)
	}
	if cfg.UnmatchedEventPolicy != EventPolicyReject {
		t.Errorf("Expected default policy %q, got %q", EventPolicyReject, cfg.UnmatchedEventPolicy)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %q", cfg.LogLevel)
	}
	if cfg.SlackSigningSecret != "" {
		t.Errorf("Expected empty signing secret, got %q", cfg.SlackSigningSecret)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LLM_APPLICATION_ID", "42")
	t.Setenv("REQUEST_TIMEOUT", "5")
	t.Setenv("SLACK_SIGNING_SECRET", "fake-signing-secret")
	t.Setenv("UNMATCHED_EVENT_POLICY", "ignore")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.LLMAPIURL != "http://llm.internal.test/chat" {
		t.Errorf("Unexpected LLM API URL %q", cfg.LLMAPIURL)
	}
	if cfg.LLMApplicationID != 42 {
		t.Errorf("Expected application ID 42, got %d", cfg.LLMApplicationID)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("Expected timeout 5s, got %v", cfg.RequestTimeout)
	}
	if cfg.SlackSigningSecret != "fake-signing-secret" {
		t.Errorf("Unexpected signing secret %q", cfg.SlackSigningSecret)
	}
	if cfg.UnmatchedEventPolicy != EventPolicyIgnore {
		t.Errorf("Expected ignore policy, got %q", cfg.UnmatchedEventPolicy)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %q", cfg.LogLevel)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non-numeric application ID", key: "LLM_APPLICATION_ID", value: "abc"},
		{name: "non-numeric timeout", key: "REQUEST_TIMEOUT", value: "soon"},
		{name: "negative timeout", key: "REQUEST_TIMEOUT", value: "-5"},
		{name: "unknown event policy", key: "UNMATCHED_EVENT_POLICY", value: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			clearOptionalEnv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("Expected an error for %s=%q, got nil", tt.key, tt.value)
			}
		})
	}
}
