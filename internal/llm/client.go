package llm

import (
	"context"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"infa2sql/internal/config"
)

// ChatClient is the part of the OpenAI client the converters use.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// NewClient builds an OpenAI client from cfg. It fails with
// config.ErrMissingAPIKey when no key is configured.
func NewClient(cfg *config.Config) (*openai.Client, error) {
	if err := cfg.RequireAPIKey(); err != nil {
		return nil, err
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return openai.NewClientWithConfig(clientCfg), nil
}

type settings struct {
	logger   *zap.Logger
	timeout  time.Duration
	maxTurns int
}

func newSettings(opts []Option) settings {
	s := settings{
		logger:   zap.NewNop(),
		timeout:  config.DefaultLLMTimeout,
		maxTurns: DefaultMaxTurns,
	}

	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// Option configures a Converter or an Agent.
type Option func(*settings)

// WithLogger sets the logger for request events.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTimeout bounds a whole conversion, including every agent turn.
// Zero or negative disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) {
		s.timeout = d
	}
}

// WithMaxTurns caps the number of model round trips an Agent may take.
func WithMaxTurns(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxTurns = n
		}
	}
}

func (s settings) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, s.timeout)
}

func firstContent(resp openai.ChatCompletionResponse) string {
	if len(resp.Choices) == 0 {
		return ""
	}

	return resp.Choices[0].Message.Content
}
