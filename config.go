package analyst

import (
	"log/slog"

	"google.golang.org/genai"
)

// defaultModel is the model identifier used for every call unless
// overridden at construction.
const defaultModel = "gemini-1.5-flash"

// analysisVersion tags every metadata_gemini sub-record.
const analysisVersion = "2.0.0"

// GenerationConfig holds the fixed tuning parameters applied to every
// generate call. The defaults favor long, creative replies because the
// analysis schema asks for a very large structured document.
type GenerationConfig struct {
	Temperature     float32
	TopP            float32
	TopK            float32
	MaxOutputTokens int32
}

// DefaultGenerationConfig returns the process-wide generation constants.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Temperature:     0.8,
		TopP:            0.9,
		TopK:            40,
		MaxOutputTokens: 32768,
	}
}

// SafetySetting pairs a harm category with its block threshold.
type SafetySetting struct {
	Category  genai.HarmCategory
	Threshold genai.HarmBlockThreshold
}

// DefaultSafetyPolicy returns the ordered content-safety thresholds sent
// with every call.
func DefaultSafetyPolicy() []SafetySetting {
	return []SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
	}
}

// Options collects the constructor configuration.
type Options struct {
	APIKey     string
	Model      string
	Logger     *slog.Logger
	Generation GenerationConfig
	Safety     []SafetySetting
	Prompts    PromptProvider
	Invoker    Invoker
}

// Option mutates the constructor configuration.
type Option func(*Options)

// WithAPIKey sets the credential explicitly instead of reading it from the
// GEMINI_API_KEY environment variable.
func WithAPIKey(key string) Option {
	return func(o *Options) { o.APIKey = key }
}

// WithModel overrides the model identifier.
func WithModel(name string) Option {
	return func(o *Options) { o.Model = name }
}

// WithLogger lets the caller supply their own logger.
func WithLogger(log *slog.Logger) Option {
	return func(o *Options) { o.Logger = log }
}

// WithGenerationConfig overrides the generation constants.
func WithGenerationConfig(cfg GenerationConfig) Option {
	return func(o *Options) { o.Generation = cfg }
}

// WithSafetyPolicy overrides the content-safety thresholds.
func WithSafetyPolicy(policy []SafetySetting) Option {
	return func(o *Options) { o.Safety = policy }
}

// WithPromptProvider substitutes the template source, e.g. to load edited
// templates from disk instead of the embedded copies.
func WithPromptProvider(p PromptProvider) Option {
	return func(o *Options) { o.Prompts = p }
}

// WithInvoker substitutes the transport. Used by tests; production code
// should let the constructor build the Gemini-backed invoker.
func WithInvoker(inv Invoker) Option {
	return func(o *Options) { o.Invoker = inv }
}

// CallOptions carries the optional per-call context blocks.
type CallOptions struct {
	SearchContext      string
	AttachmentsContext string
}

// CallOption mutates a single analysis call.
type CallOption func(*CallOptions)

// WithSearchContext appends a deep-research section to the prompt.
func WithSearchContext(s string) CallOption {
	return func(o *CallOptions) { o.SearchContext = s }
}

// WithAttachmentsContext appends an attachments section to the prompt.
// BuildAttachmentsContext produces a suitable value from local files.
func WithAttachmentsContext(s string) CallOption {
	return func(o *CallOptions) { o.AttachmentsContext = s }
}
