package ai

import (
	"context"
	"fmt"

	"pdfchat/internal/config"
	"pdfchat/internal/models"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"
)

const DefaultMaxTokens = 1024

// Service holds the chat model for the configured provider. Models are
// constructed once at startup and never mutated afterwards, so a single
// Service is safe to share across concurrent requests.
type Service struct {
	chatModel model.BaseChatModel
	provider  string
}

// NewService builds the chat model for the configured default provider.
func NewService(cfg *config.Config) (*Service, error) {
	provider := cfg.BasicConfig.DefaultProvider
	provCfg, ok := cfg.Providers[provider]
	if !ok {
		return nil, fmt.Errorf("provider %s not configured", provider)
	}
	if provCfg.APIKey == "" {
		return nil, fmt.Errorf("api key for provider %s not configured", provider)
	}
	maxTokens := provCfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	var chatModel model.BaseChatModel
	var err error
	switch provider {
	case "openai":
		chatModel, err = openai.NewChatModel(context.Background(), &openai.ChatModelConfig{
			BaseURL:   provCfg.BaseURL,
			Model:     provCfg.Model,
			APIKey:    provCfg.APIKey,
			MaxTokens: &maxTokens,
		})
	case "gemini":
		client, cerr := genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey: provCfg.APIKey,
		})
		if cerr != nil {
			return nil, fmt.Errorf("init gemini client: %w", cerr)
		}
		chatModel, err = gemini.NewChatModel(context.Background(), &gemini.Config{
			Client:    client,
			Model:     provCfg.Model,
			MaxTokens: &maxTokens,
		})
	case "claude":
		var baseURLPtr *string
		if provCfg.BaseURL != "" {
			baseURLPtr = &provCfg.BaseURL
		}
		chatModel, err = claude.NewChatModel(context.Background(), &claude.Config{
			APIKey:    provCfg.APIKey,
			Model:     provCfg.Model,
			BaseURL:   baseURLPtr,
			MaxTokens: maxTokens,
		})
	default:
		return nil, fmt.Errorf("invalid provider: %s", provider)
	}
	if err != nil {
		return nil, fmt.Errorf("init %s chat model: %w", provider, err)
	}

	return &Service{chatModel: chatModel, provider: provider}, nil
}

// Provider reports which provider answers requests.
func (s *Service) Provider() string {
	return s.provider
}

// Answer sends a single user-role message and returns the completion as
// content blocks. One request, one response; callers own the deadline.
func (s *Service) Answer(ctx context.Context, prompt string) ([]models.ContentBlock, error) {
	msg, err := s.chatModel.Generate(ctx, []*schema.Message{
		{Role: schema.User, Content: prompt},
	})
	if err != nil {
		return nil, fmt.Errorf("generate completion: %w", err)
	}
	return []models.ContentBlock{{Type: "text", Text: msg.Content}}, nil
}
