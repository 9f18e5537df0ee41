package usecase

import (
	"fmt"
	"strings"
	"time"

	"task-suggestion-service/pkg/llmprovider"
)

const (
	titleTemperature = 0.1
	titleMaxTokens   = 100
)

const titleSystemPrompt = `You rewrite a user's plans as short task titles.
Return one task per line and nothing else, in the form:
title, duration, date, time
- title: a short imperative phrase without commas if possible
- duration: one of %s
- date: a relative or absolute date such as "today", "tomorrow", "next monday", "2024-07-01", or null
- time: a clock time such as "5pm", "07:30", a daypart (morning, afternoon, evening, night), or null
Do not number the lines. Do not add explanations.`

// buildTitleRequest builds the paraphraser request for input.
func buildTitleRequest(input string, now time.Time, durations []string) *llmprovider.Request {
	sys := llmprovider.TextMessage("system", fmt.Sprintf(titleSystemPrompt, strings.Join(durations, ", ")))
	user := fmt.Sprintf("Current date: %s (%s)\nPlans: %s",
		now.Format("2006-01-02 Monday 15:04"), now.Location(), input)

	return &llmprovider.Request{
		SystemInstruction: &sys,
		Messages:          []llmprovider.Message{llmprovider.TextMessage("user", user)},
		Temperature:       titleTemperature,
		MaxTokens:         titleMaxTokens,
	}
}
