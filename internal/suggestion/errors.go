package suggestion

import "errors"

// Domain-specific errors for the suggestion package.
var (
	ErrEmptyInput           = errors.New("input text is empty")
	ErrInvalidTotal         = errors.New("total must be between 1 and 20")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidTimezone      = errors.New("invalid timezone")
	ErrModelNotLoaded       = errors.New("model not loaded")
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")
	ErrLLMUnavailable       = errors.New("llm service unavailable")
	ErrEmptyVector          = errors.New("empty embedding vector")
)

// MaxTotal bounds the requested number of suggestions.
const MaxTotal = 20
