package model

// LLMRequest is the request body of the LLM chat endpoint.
type LLMRequest struct {
	ApplicationID int          `json:"application_id"`
	Stream        bool         `json:"stream"`
	Messages      []LLMMessage `json:"messages"`
}

// LLMMessage is one conversation turn.
type LLMMessage struct {
	Role     string       `json:"role"`
	Contents []LLMContent `json:"contents"`
}

// LLMContent is one typed content part of a message.
type LLMContent struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// LLMResponse is the response body of the LLM chat endpoint. The generated
// text is at Reply[0].Contents[0].Content.
type LLMResponse struct {
	Reply []LLMMessage `json:"reply"`
}
