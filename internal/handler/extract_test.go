package handler

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/slack-go/slack"
)

func blocksFromJSON(t *testing.T, raw string) slack.Blocks {
	t.Helper()
	var blocks slack.Blocks
	if err := json.Unmarshal([]byte(raw), &blocks); err != nil {
		t.Fatalf("Failed to unmarshal blocks fixture: %v", err)
	}
	return blocks
}

func TestMentionText(t *testing.T) {
	mention := `[
		{
			"type": "rich_text",
			"block_id": "Vz5Qm",
			"elements": [
				{
					"type": "rich_text_section",
					"elements": [
						{"type": "user", "user_id": "U0123ABCDEF"},
						{"type": "text", "text": " hello bot"}
					]
				}
			]
		}
	]`

	got, err := mentionText(blocksFromJSON(t, mention))
	if err != nil {
		t.Fatalf("mentionText failed: %v", err)
	}
	if got != "hello bot" {
		t.Errorf("Expected %q, got %q", "hello bot", got)
	}
}

func TestMentionText_Failures(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
		wantErr error
	}{
		{
			name:    "no blocks",
			fixture: `[]`,
			wantErr: ErrNoBlocks,
		},
		{
			name: "first block not rich_text",
			fixture: `[
				{"type": "section", "text": {"type": "mrkdwn", "text": "hi"}}
			]`,
			wantErr: ErrUnsupportedBlockLayout,
		},
		{
			name: "rich_text block without elements",
			fixture: `[
				{"type": "rich_text", "elements": []}
			]`,
			wantErr: ErrUnsupportedBlockLayout,
		},
		{
			name: "first element not a section",
			fixture: `[
				{"type": "rich_text", "elements": [
					{"type": "rich_text_list", "style": "bullet", "elements": []}
				]}
			]`,
			wantErr: ErrUnsupportedBlockLayout,
		},
		{
			name: "section with only the mention",
			fixture: `[
				{"type": "rich_text", "elements": [
					{"type": "rich_text_section", "elements": [
						{"type": "user", "user_id": "U0123ABCDEF"}
					]}
				]}
			]`,
			wantErr: ErrUnsupportedBlockLayout,
		},
		{
			name: "second element not text",
			fixture: `[
				{"type": "rich_text", "elements": [
					{"type": "rich_text_section", "elements": [
						{"type": "user", "user_id": "U0123ABCDEF"},
						{"type": "user", "user_id": "U0456GHIJKL"}
					]}
				]}
			]`,
			wantErr: ErrUnsupportedBlockLayout,
		},
		{
			name: "whitespace-only text",
			fixture: `[
				{"type": "rich_text", "elements": [
					{"type": "rich_text_section", "elements": [
						{"type": "user", "user_id": "U0123ABCDEF"},
						{"type": "text", "text": "   "}
					]}
				]}
			]`,
			wantErr: ErrEmptyMentionText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mentionText(blocksFromJSON(t, tt.fixture))
			if err == nil {
				t.Fatal("Expected an error, got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestMentionText_ZeroValueBlocks(t *testing.T) {
	_, err := mentionText(slack.Blocks{})
	if !errors.Is(err, ErrNoBlocks) {
		t.Errorf("Expected ErrNoBlocks, got %v", err)
	}
}
