package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/slack-go/slack"
)

// Extraction failures callers can branch on with errors.Is. The relay treats
// every one of them as a hard failure rather than posting an empty message.
var (
	// ErrNoBlocks means the event carried no Block Kit payload at all.
	ErrNoBlocks = errors.New("event has no blocks")
	// ErrUnsupportedBlockLayout means the payload does not match the shape
	// of a plain "@bot message" mention.
	ErrUnsupportedBlockLayout = errors.New("unsupported block layout")
	// ErrEmptyMentionText means the mention carried no text beyond whitespace.
	ErrEmptyMentionText = errors.New("mention text is empty")
)

// mentionText returns the message that follows the bot mention. Slack encodes
// a plain "@bot message" as a single rich_text block holding one section whose
// first element is the user mention and whose second element is the message
// text. Anything else fails with a named kind.
func mentionText(blocks slack.Blocks) (string, error) {
	if len(blocks.BlockSet) == 0 {
		return "", ErrNoBlocks
	}

	richText, ok := blocks.BlockSet[0].(*slack.RichTextBlock)
	if !ok {
		return "", fmt.Errorf("%w: first block is %q, want rich_text",
			ErrUnsupportedBlockLayout, blocks.BlockSet[0].BlockType())
	}
	if len(richText.Elements) == 0 {
		return "", fmt.Errorf("%w: rich_text block has no elements", ErrUnsupportedBlockLayout)
	}

	section, ok := richText.Elements[0].(*slack.RichTextSection)
	if !ok {
		return "", fmt.Errorf("%w: first element is %q, want rich_text_section",
			ErrUnsupportedBlockLayout, richText.Elements[0].RichTextElementType())
	}
	if len(section.Elements) < 2 {
		return "", fmt.Errorf("%w: section has %d elements, want mention plus text",
			ErrUnsupportedBlockLayout, len(section.Elements))
	}

	textElement, ok := section.Elements[1].(*slack.RichTextSectionTextElement)
	if !ok {
		return "", fmt.Errorf("%w: second section element is %q, want text",
			ErrUnsupportedBlockLayout, section.Elements[1].RichTextSectionElementType())
	}

	text := strings.TrimSpace(textElement.Text)
	if text == "" {
		return "", ErrEmptyMentionText
	}
	return text, nil
}
