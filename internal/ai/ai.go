package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/matheuskafuri/grid7/internal/config"
	"golang.org/x/time/rate"
)

// Source is a web page a generated answer was grounded on.
type Source struct {
	Title string
	URI   string
}

// Response holds the output of a single generation call.
type Response struct {
	Text    string
	Sources []Source
}

// Generator produces text from a prompt. When search is true, providers
// that support web grounding use it and report the pages they relied on.
type Generator interface {
	Generate(ctx context.Context, prompt string, search bool) (Response, error)
}

// New creates a Generator from the given AI config.
func New(cfg *config.AIConfig, apiKey string) (Generator, error) {
	if cfg == nil || apiKey == "" {
		return nil, fmt.Errorf("AI not configured")
	}

	client := &http.Client{Timeout: 60 * time.Second}

	switch cfg.Provider {
	case "gemini", "":
		model := cfg.Model
		if model == "" {
			model = "gemini-2.5-flash"
		}
		return &geminiProvider{apiKey: apiKey, model: model, client: client, endpoint: geminiEndpoint}, nil
	case "claude":
		model := cfg.Model
		if model == "" {
			model = "claude-haiku-4-5-20251001"
		}
		return &claudeProvider{apiKey: apiKey, model: model, client: client, endpoint: claudeEndpoint}, nil
	case "openai":
		model := cfg.Model
		if model == "" {
			model = "gpt-4o-mini"
		}
		return &openaiProvider{apiKey: apiKey, model: model, client: client, endpoint: openaiEndpoint}, nil
	default:
		return nil, fmt.Errorf("unknown AI provider: %q (valid: gemini, claude, openai)", cfg.Provider)
	}
}

// WithRateLimit spaces calls to g at least every apart. A zero interval
// returns g unchanged.
func WithRateLimit(g Generator, every time.Duration) Generator {
	if every <= 0 {
		return g
	}
	return &limited{next: g, limiter: rate.NewLimiter(rate.Every(every), 2)}
}

type limited struct {
	next    Generator
	limiter *rate.Limiter
}

func (l *limited) Generate(ctx context.Context, prompt string, search bool) (Response, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return Response{}, fmt.Errorf("rate limit: %w", err)
	}
	return l.next.Generate(ctx, prompt, search)
}

func postJSON(ctx context.Context, client *http.Client, endpoint string, payload any, headers map[string]string, provider string, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", provider, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s API error: %w", provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%s API %d: %s", provider, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// --- Gemini provider ---

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"

type geminiProvider struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
	Tools    []map[string]any `json:"tools,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content           geminiContent `json:"content"`
		GroundingMetadata *struct {
			GroundingChunks []struct {
				Web *struct {
					URI   string `json:"uri"`
					Title string `json:"title"`
				} `json:"web"`
			} `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
}

func (g *geminiProvider) Generate(ctx context.Context, prompt string, search bool) (Response, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
	}
	if search {
		reqBody.Tools = []map[string]any{{"google_search": map[string]any{}}}
	}

	endpoint := fmt.Sprintf("%s/%s:generateContent?key=%s", g.endpoint, url.PathEscape(g.model), url.QueryEscape(g.apiKey))

	var gr geminiResponse
	if err := postJSON(ctx, g.client, endpoint, reqBody, nil, "gemini", &gr); err != nil {
		return Response{}, err
	}
	if len(gr.Candidates) == 0 {
		return Response{}, fmt.Errorf("empty gemini response")
	}

	cand := gr.Candidates[0]
	var sb strings.Builder
	for _, p := range cand.Content.Parts {
		sb.WriteString(p.Text)
	}

	out := Response{Text: sb.String()}
	if cand.GroundingMetadata != nil {
		for _, chunk := range cand.GroundingMetadata.GroundingChunks {
			if chunk.Web == nil || chunk.Web.URI == "" {
				continue
			}
			out.Sources = append(out.Sources, Source{Title: chunk.Web.Title, URI: chunk.Web.URI})
		}
	}
	return out, nil
}

// --- Claude provider ---

const claudeEndpoint = "https://api.anthropic.com/v1/messages"

type claudeProvider struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

type claudeRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	Messages  []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func (c *claudeProvider) Generate(ctx context.Context, prompt string, _ bool) (Response, error) {
	headers := map[string]string{
		"x-api-key":         c.apiKey,
		"anthropic-version": "2023-06-01",
	}
	var cr claudeResponse
	err := postJSON(ctx, c.client, c.endpoint, claudeRequest{
		Model:     c.model,
		MaxTokens: 2048,
		Messages:  []claudeMessage{{Role: "user", Content: prompt}},
	}, headers, "claude", &cr)
	if err != nil {
		return Response{}, err
	}
	if len(cr.Content) == 0 {
		return Response{}, fmt.Errorf("empty claude response")
	}
	return Response{Text: cr.Content[0].Text}, nil
}

// --- OpenAI provider ---

const openaiEndpoint = "https://api.openai.com/v1/chat/completions"

type openaiProvider struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

type openaiRequest struct {
	Model    string          `json:"model"`
	Messages []openaiMessage `json:"messages"`
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (o *openaiProvider) Generate(ctx context.Context, prompt string, _ bool) (Response, error) {
	var or openaiResponse
	err := postJSON(ctx, o.client, o.endpoint, openaiRequest{
		Model:    o.model,
		Messages: []openaiMessage{{Role: "user", Content: prompt}},
	}, map[string]string{"Authorization": "Bearer " + o.apiKey}, "openai", &or)
	if err != nil {
		return Response{}, err
	}
	if len(or.Choices) == 0 {
		return Response{}, fmt.Errorf("empty openai response")
	}
	return Response{Text: or.Choices[0].Message.Content}, nil
}
