package llmprovider

import (
	"context"

	"task-suggestion-service/pkg/gemini"
	"task-suggestion-service/pkg/openai"
)

// OpenAIAdapter adapts an OpenAI-compatible chat client to the Provider interface.
// The same client serves OpenAI, Qwen (DashScope) and DeepSeek endpoints.
type OpenAIAdapter struct {
	name   string
	client openai.IOpenAI
}

// NewOpenAIAdapter creates an adapter reported under the given provider name.
func NewOpenAIAdapter(name string, client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider.GenerateContent
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, toOpenAIRequest(req))
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	out := &Response{
		Content:      TextMessage("assistant", resp.Content),
		ProviderName: a.name,
		ModelName:    a.client.Model(),
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name implements Provider.Name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model implements Provider.Model
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

func toOpenAIRequest(req *Request) *openai.Request {
	out := &openai.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]openai.Message, 0, len(req.Messages)),
	}
	if req.SystemInstruction != nil {
		out.SystemInstruction = req.SystemInstruction.Text()
	}
	for _, msg := range req.Messages {
		out.Messages = append(out.Messages, openai.Message{Role: msg.Role, Content: msg.Text()})
	}
	return out
}

// GeminiAdapter adapts the Gemini client to the Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider.GenerateContent
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, toGeminiRequest(req))
	if err != nil {
		return nil, &ProviderError{Provider: "gemini", Err: err}
	}

	out := &Response{
		Content:      TextMessage("assistant", resp.Text()),
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name implements Provider.Name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model implements Provider.Model
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func toGeminiRequest(req *Request) *gemini.Request {
	out := &gemini.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]gemini.Content, 0, len(req.Messages)),
	}
	if req.SystemInstruction != nil {
		out.SystemInstruction = &gemini.Content{Parts: toGeminiParts(req.SystemInstruction.Parts)}
	}
	for _, msg := range req.Messages {
		role := msg.Role
		// Gemini names the assistant turn "model".
		if role == "assistant" {
			role = "model"
		}
		out.Messages = append(out.Messages, gemini.Content{Role: role, Parts: toGeminiParts(msg.Parts)})
	}
	return out
}

func toGeminiParts(parts []Part) []gemini.Part {
	out := make([]gemini.Part, len(parts))
	for i, p := range parts {
		out[i] = gemini.Part{Text: p.Text}
	}
	return out
}
