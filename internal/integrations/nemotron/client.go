package nemotron

import (
	"context"
	"log"
	"time"

	"github.com/linskybing/catalyst/internal/integrations"
	"github.com/linskybing/catalyst/internal/metrics"
	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
)

var ErrUnknownOperation = errors.New("unknown prompt operation")

type Options struct {
	BaseURL       string
	NemotronModel string
	AgentModel    string
	// APIKey is called for every request.
	APIKey func() string
}

// Client calls an OpenAI-compatible chat completion endpoint.
type Client struct {
	opts    Options
	prompts Prompts
}

func New(opts Options, prompts Prompts) *Client {
	return &Client{opts: opts, prompts: prompts}
}

func (c *Client) Configured() bool {
	return c.opts.APIKey != nil && c.opts.APIKey() != ""
}

func (c *Client) model(p *Prompt) string {
	if p.Model == ModelAgent {
		return c.opts.AgentModel
	}
	return c.opts.NemotronModel
}

func (c *Client) Generate(ctx context.Context, op string, data any) (string, error) {
	prompt, ok := c.prompts[op]
	if !ok {
		return "", errors.Wrap(ErrUnknownOperation, op)
	}
	if !c.Configured() {
		return "", errors.Wrap(integrations.ErrMissingAPIKey, "NVIDIA_API_KEY")
	}

	system, user, err := prompt.Render(data)
	if err != nil {
		return "", errors.Wrapf(err, "render %s prompt", op)
	}

	cfg := openai.DefaultConfig(c.opts.APIKey())
	if c.opts.BaseURL != "" {
		cfg.BaseURL = c.opts.BaseURL
	}
	api := openai.NewClientWithConfig(cfg)

	var messages []openai.ChatCompletionMessage
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: system})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: user})

	start := time.Now()
	resp, err := api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model(prompt),
		Messages:    messages,
		Temperature: prompt.Temperature,
		MaxTokens:   prompt.MaxTokens,
	})
	if err == nil && len(resp.Choices) == 0 {
		err = errors.New("no choices returned")
	}
	metrics.ObserveLLM(op, time.Since(start), err)
	if err != nil {
		log.Printf("[Nemotron] %s failed after %s: %v", op, time.Since(start).Round(time.Millisecond), err)
		return "", errors.Wrapf(err, "%s completion", op)
	}

	content := resp.Choices[0].Message.Content
	log.Printf("[Nemotron] %s completed in %s (%d chars)", op, time.Since(start).Round(time.Millisecond), len(content))
	return content, nil
}

var _ integrations.LLM = (*Client)(nil)
