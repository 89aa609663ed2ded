package assistant

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/youqu117/Bookkeeping/internal/domain"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// User-facing fallback texts. Every failure on the assistant path collapses
// to one of these; errors never reach the caller.
const (
	msgConfigureKey = "Please configure a Gemini API key in settings before using the assistant."
	msgFallback     = "Sorry, I couldn't process that right now. Please try again."
)

// Context is the application state serialized into the prompt.
type Context struct {
	Tags     []domain.Tag
	Accounts []domain.Account
	// Recent holds the most recent transactions, newest first. Only the
	// first 10 are sent to the model.
	Recent []domain.Transaction
}

// Assistant classifies free-text bookkeeping input into a structured intent
// by calling a generative model.
type Assistant struct {
	gen   Generator
	model string
	log   zerolog.Logger
}

// New creates an Assistant backed by the given generator. An empty model
// selects DefaultModel.
func New(gen Generator, model string, log zerolog.Logger) *Assistant {
	if model == "" {
		model = DefaultModel
	}
	return &Assistant{gen: gen, model: model, log: log}
}

// Process builds a prompt from input and app context, sends it to the model,
// and decodes the reply. It always returns exactly one Response: with no API
// key configured it short-circuits to a chat response without calling the
// model, and any failure (network, empty body, malformed JSON) becomes the
// fixed fallback chat response. It never retries.
func (a *Assistant) Process(ctx context.Context, apiKey, input string, appCtx Context) domain.Response {
	if strings.TrimSpace(apiKey) == "" {
		return domain.Response{Action: domain.ActionChat, Text: msgConfigureKey}
	}

	prompt := buildPrompt(input, appCtx, time.Now())

	raw, err := a.gen.Generate(ctx, apiKey, a.model, prompt)
	if err != nil {
		a.log.Error().Err(err).Str("model", a.model).Msg("assistant: generate failed")
		return fallback()
	}

	resp, err := decodeResponse(raw)
	if err != nil {
		a.log.Error().Err(err).Str("raw", truncate(raw, 500)).Msg("assistant: decode failed")
		return fallback()
	}

	return resp
}

func fallback() domain.Response {
	return domain.Response{Action: domain.ActionChat, Text: msgFallback}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
