package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/Morwran/yagpt"
)

type YandexProvider struct {
	oauthToken string
	folderID   string
}

type YandexClient struct {
	ya       yagpt.YaGPTFace
	iamToken string
}

func NewYandex(oauthToken, folderID string) *YandexProvider {
	return &YandexProvider{oauthToken: oauthToken, folderID: folderID}
}

func (p *YandexProvider) Name() string { return ProviderYandex }

// Load exchanges the OAuth token for an IAM token. Only the lite model is served.
func (p *YandexProvider) Load(_ context.Context, identifier string, _ LoadConfig) (Model, error) {
	if identifier != "" && identifier != string(yagpt.YaModelLite) {
		return nil, &LoadError{Provider: p.Name(), Identifier: identifier, Err: errors.New("unsupported yandex model")}
	}
	if p.oauthToken == "" || p.folderID == "" {
		return nil, &LoadError{Provider: p.Name(), Identifier: identifier, Err: errors.New("YANDEX_OAUTH_TOKEN and YANDEX_FOLDER_ID are required")}
	}

	// Create IAM token from OAuth token
	iam, err := yagpt.NewYaIam(p.oauthToken)
	if err != nil {
		return nil, &LoadError{Provider: p.Name(), Identifier: identifier, Err: fmt.Errorf("failed to init yandex iam: %w", err)}
	}
	resp, err := iam.Create()
	if err != nil {
		return nil, &LoadError{Provider: p.Name(), Identifier: identifier, Err: fmt.Errorf("failed to create iam token: %w", err)}
	}

	// Create YaGPT client for a folder
	ya, err := yagpt.NewYagpt(p.folderID)
	if err != nil {
		return nil, &LoadError{Provider: p.Name(), Identifier: identifier, Err: fmt.Errorf("failed to init yagpt: %w", err)}
	}

	return &YandexClient{ya: ya, iamToken: resp.IamToken}, nil
}

func (c *YandexClient) Identifier() string { return string(yagpt.YaModelLite) }

// Generate sends the template's system and user parts as messages; the service applies its own
// template and sampling, and the answer arrives as a single chunk.
func (c *YandexClient) Generate(ctx context.Context, prompt string, _ SamplingConfig, onChunk StreamFunc) (Response, error) {
	systemPrompt, userPrompt, ok := SplitChatMLPrompt(prompt)
	if !ok {
		userPrompt = prompt
	}

	var messages []yagpt.Message
	if systemPrompt != "" {
		messages = append(messages, yagpt.Message{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, yagpt.Message{Role: "user", Content: userPrompt})

	resp, err := c.ya.CompletionWithCtx(ctx, c.iamToken, messages)
	if err != nil {
		return Response{}, fmt.Errorf("yagpt completion failed: %w", err)
	}
	if resp == nil || len(resp.Alternatives) == 0 {
		return Response{}, fmt.Errorf("yagpt returned empty response")
	}
	out := Response{Content: StripSpecialTokens(resp.Alternatives[0].Message.Content), Model: c.Identifier()}
	out.PromptTokens = int(resp.Usage.InputTextTokens)
	out.CompletionTokens = int(resp.Usage.CompletionTokens)
	out.TotalTokens = int(resp.Usage.TotalTokens)

	if onChunk != nil && out.Content != "" {
		if err := onChunk(out.Content); err != nil {
			return Response{}, err
		}
	}
	return out, nil
}
