package openai

import "time"

const (
	// DefaultModel is the default chat completion model
	DefaultModel = "gpt-4o-mini"

	// DefaultBaseURL is the default OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// DefaultTemperature keeps paraphrasing close to the input.
	DefaultTemperature = 0.1

	// DefaultMaxTokens bounds a single completion.
	DefaultMaxTokens = 100
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
