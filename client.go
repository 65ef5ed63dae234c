package analyst

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"google.golang.org/genai"
)

// ErrMissingAPIKey is returned by NewClient when no credential is supplied
// and GEMINI_API_KEY is unset. It is the only error the package lets
// propagate; callers typically treat it as "feature disabled".
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY não configurada")

// Invoker abstraction allows mocking the model call in tests.
type Invoker interface {
	Generate(ctx context.Context, model string, prompt string) (string, error)
}

// Client holds the fixed configuration for analysis generation. It is
// immutable after construction; concurrent calls need no coordination.
type Client struct {
	invoker Invoker
	prompts PromptProvider
	model   string
	gen     GenerationConfig
	safety  []SafetySetting
	log     *slog.Logger
}

// NewClient builds a Client. The credential comes from WithAPIKey or the
// GEMINI_API_KEY environment variable; without one the constructor fails
// with ErrMissingAPIKey.
func NewClient(ctx context.Context, opts ...Option) (*Client, error) {
	o := Options{
		Model:      defaultModel,
		Generation: DefaultGenerationConfig(),
		Safety:     DefaultSafetyPolicy(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	if o.Prompts == nil {
		p, err := DefaultPromptProvider()
		if err != nil {
			return nil, fmt.Errorf("load prompt templates: %w", err)
		}
		o.Prompts = p
	}

	if o.Invoker == nil {
		key := o.APIKey
		if key == "" {
			key = os.Getenv("GEMINI_API_KEY")
		}
		if key == "" {
			return nil, ErrMissingAPIKey
		}
		gc, err := genai.NewClient(ctx, &genai.ClientConfig{
			Backend: genai.BackendGeminiAPI,
			APIKey:  key,
		})
		if err != nil {
			return nil, fmt.Errorf("create Gemini client: %w", err)
		}
		o.Invoker = &genaiInvoker{client: gc, gen: o.Generation, safety: o.Safety, log: o.Logger}
	}

	return &Client{
		invoker: o.Invoker,
		prompts: o.Prompts,
		model:   o.Model,
		gen:     o.Generation,
		safety:  o.Safety,
		log:     o.Logger,
	}, nil
}

// TestConnection sends a trivial prompt and reports whether the model
// answered with the expected token. Errors are absorbed and count as a
// failed check.
func (c *Client) TestConnection(ctx context.Context) bool {
	reply, err := c.invoker.Generate(ctx, c.model, connectivityPrompt)
	if err != nil {
		c.log.Error("connectivity test failed", "error", err)
		return false
	}
	return strings.Contains(reply, "OK")
}

// GenerateDetailedAnalysis runs one analysis round trip. It never returns
// an error: a transport failure or an empty reply degrades to the static
// emergency record, a reply that does not decode degrades to the heuristic
// record, and the Result's Quality field says which path was taken.
func (c *Client) GenerateDetailedAnalysis(ctx context.Context, req AnalysisRequest, opts ...CallOption) *Result {
	var co CallOptions
	for _, opt := range opts {
		opt(&co)
	}

	start := time.Now()

	prompt, err := c.buildPrompt(req, co)
	if err != nil {
		c.log.Error("prompt build failed", "error", err)
		return c.emergencyResult(req, time.Since(start))
	}

	c.log.Info("starting detailed analysis", "model", c.model, "prompt_length", len(prompt))

	reply, err := c.invoker.Generate(ctx, c.model, prompt)
	if err != nil {
		c.log.Error("analysis generation failed", "error", err)
		return c.emergencyResult(req, time.Since(start))
	}
	if reply == "" {
		c.log.Error("empty reply from model")
		return c.emergencyResult(req, time.Since(start))
	}

	res := c.parseAnalysis(reply, req, time.Since(start))
	c.log.Info("detailed analysis finished", "quality", res.Quality.String(), "elapsed", res.Elapsed)
	return res
}

// buildPrompt renders the analysis template with the request fields and the
// optional context blocks. Absent fields render as the literal placeholder.
func (c *Client) buildPrompt(req AnalysisRequest, co CallOptions) (string, error) {
	vars := req.templateContext()
	vars["search_context"] = co.SearchContext
	vars["attachments_context"] = co.AttachmentsContext
	return c.prompts.Render(analysisPromptTag, vars)
}

func (c *Client) emergencyResult(req AnalysisRequest, elapsed time.Duration) *Result {
	return &Result{
		Analysis: emergencyAnalysis(req, time.Now()),
		Quality:  QualityFallback,
		Model:    emergencyModelTag,
		Elapsed:  elapsed,
	}
}

// genaiInvoker implements Invoker over the Gemini API.
type genaiInvoker struct {
	client *genai.Client
	gen    GenerationConfig
	safety []SafetySetting
	log    *slog.Logger
}

func (gv *genaiInvoker) Generate(ctx context.Context, model string, prompt string) (string, error) {
	if gv.client == nil {
		return "", fmt.Errorf("client not initialized")
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	temperature := gv.gen.Temperature
	topP := gv.gen.TopP
	topK := gv.gen.TopK
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		TopP:            &topP,
		TopK:            &topK,
		MaxOutputTokens: gv.gen.MaxOutputTokens,
	}
	for _, s := range gv.safety {
		config.SafetySettings = append(config.SafetySettings, &genai.SafetySetting{
			Category:  s.Category,
			Threshold: s.Threshold,
		})
	}

	gv.log.Debug("generating content", "model", model, "prompt_length", len(prompt))

	resp, err := gv.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no parts in candidate content")
	}

	var out strings.Builder
	for _, part := range candidate.Content.Parts {
		out.WriteString(part.Text)
	}

	gv.log.Debug("received response", "response_length", out.Len())
	return out.String(), nil
}
