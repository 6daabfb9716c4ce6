package judge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"rpsplus/meta"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/rs/zerolog/log"
)

// OpenAIConfig configures a chat-completions judge. Any OpenAI-compatible
// endpoint works; the defaults target Gemini.
type OpenAIConfig struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

type OpenAIOracle struct {
	client openai.Client
	model  string
	hasKey bool
}

// NewOpenAIOracle builds a judge client. A missing API key is not an error
// here; every Judge call reports ErrUnavailable instead so the match can go on
// once the key is fixed.
func NewOpenAIOracle(cfg OpenAIConfig) *OpenAIOracle {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = meta.DEFAULT_BASE_URL
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = meta.DEFAULT_MODEL
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithMaxRetries(0),
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	return &OpenAIOracle{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
		hasKey: strings.TrimSpace(cfg.APIKey) != "",
	}
}

func (o *OpenAIOracle) Judge(ctx context.Context, system, instruction string) (string, error) {
	if !o.hasKey {
		return "", fmt.Errorf("%w: set %s or %s in your environment", ErrUnavailable, meta.EnvGeminiAPIKey, meta.EnvGoogleAPIKey)
	}

	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(instruction),
		},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden) {
			return "", fmt.Errorf("%w: credentials rejected (status %d)", ErrUnavailable, apiErr.StatusCode)
		}
		return "", fmt.Errorf("judge request failed: %w", err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		log.Warn().Str("model", o.model).Msg("judge returned no text")
		return meta.NO_TEXT_REPLY, nil
	}
	return resp.Choices[0].Message.Content, nil
}
