package analyst

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/tyler-sommer/stick"
)

// analysisPromptTag names the template that builds the full analysis prompt.
const analysisPromptTag = "analysis"

// connectivityPrompt is the fixed prompt used by TestConnection. The reply
// must contain the literal token "OK".
const connectivityPrompt = "Teste de conexão. Responda apenas: OK"

//go:embed prompts
var promptFS embed.FS

// PromptProvider returns the rendered prompt text for the given tag.
type PromptProvider interface {
	Render(tag string, vars map[string]any) (string, error)
}

// StickPromptProvider renders Twig templates with stick. It is fs-agnostic:
// templates can come from the embedded prompts directory, any fs.FS, or an
// in-memory map.
type StickPromptProvider struct {
	env       *stick.Env
	templates map[string]string
	vars      map[string]any // variables shared by all templates
}

// PromptOption keeps the provider constructor flexible.
type PromptOption func(*StickPromptProvider) error

// WithFS loads every *.twig file found under dir in the supplied FS.
func WithFS[F fs.FS](fsys F, dir string) PromptOption {
	return func(p *StickPromptProvider) error {
		return fs.WalkDir(fsys, dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".twig") {
				return nil
			}
			content, readErr := fs.ReadFile(fsys, path)
			if readErr != nil {
				return fmt.Errorf("read %s: %w", path, readErr)
			}
			tag := strings.TrimSuffix(filepath.Base(path), ".twig")
			p.templates[tag] = string(content)
			return nil
		})
	}
}

// WithTemplates lets you inject an in-memory map.
func WithTemplates(m map[string]string) PromptOption {
	return func(p *StickPromptProvider) error {
		for k, v := range m {
			p.templates[k] = v
		}
		return nil
	}
}

// WithVar adds a variable available in every template.
func WithVar(key string, value any) PromptOption {
	return func(p *StickPromptProvider) error {
		p.vars[key] = value
		return nil
	}
}

// NewStickPromptProvider builds a provider from any combination of options.
func NewStickPromptProvider(opts ...PromptOption) (*StickPromptProvider, error) {
	p := &StickPromptProvider{
		env:       stick.New(nil),
		templates: make(map[string]string),
		vars:      make(map[string]any),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// DefaultPromptProvider loads the templates shipped with the package.
func DefaultPromptProvider() (*StickPromptProvider, error) {
	return NewStickPromptProvider(WithFS(promptFS, "prompts"))
}

// AddTemplate updates or inserts one template.
func (p *StickPromptProvider) AddTemplate(tag, tpl string) { p.templates[tag] = tpl }

// Render executes the template for the given tag with the supplied
// variables plus any provider-wide ones.
func (p *StickPromptProvider) Render(tag string, vars map[string]any) (string, error) {
	tpl, ok := p.templates[tag]
	if !ok {
		return "", fmt.Errorf("template %q not found", tag)
	}

	templateCtx := make(map[string]stick.Value, len(vars)+len(p.vars)+1)
	templateCtx["tag"] = tag
	for k, v := range p.vars {
		templateCtx[k] = v
	}
	for k, v := range vars {
		templateCtx[k] = v
	}

	var out strings.Builder
	if err := p.env.Execute(tpl, &out, templateCtx); err != nil {
		return "", fmt.Errorf("execute %q: %w", tag, err)
	}
	return out.String(), nil
}
