package analyst

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchHeader = "## CONTEXTO DE PESQUISA PROFUNDA:"
const attachmentsHeader = "## CONTEXTO DOS ANEXOS:"

func newPromptTestClient(t *testing.T) (*Client, *staticInvoker) {
	t.Helper()
	inv := &staticInvoker{reply: "OK"}
	client, err := NewForTesting(inv)
	require.NoError(t, err)
	return client, inv
}

func TestBuildPrompt_EmptyRequest(t *testing.T) {
	client, _ := newPromptTestClient(t)

	prompt, err := client.buildPrompt(AnalysisRequest{}, CallOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, prompt)

	// every absent field renders the literal placeholder, none is omitted
	labels := []string{
		"- **Segmento**: " + notInformed,
		"- **Produto/Serviço**: " + notInformed,
		"- **Público-Alvo**: " + notInformed,
		"- **Preço**: R$ " + notInformed,
		"- **Concorrentes**: " + notInformed,
		"- **Objetivo de Receita**: R$ " + notInformed,
		"- **Orçamento Marketing**: R$ " + notInformed,
		"- **Prazo de Lançamento**: " + notInformed,
		"- **Dados Adicionais**: " + notInformed,
	}
	for _, label := range labels {
		assert.Contains(t, prompt, label)
	}
}

func TestBuildPrompt_FieldSubstitution(t *testing.T) {
	client, _ := newPromptTestClient(t)

	req := AnalysisRequest{
		Segmento: "coaching",
		Produto:  "curso online",
		Publico:  "coaches",
		Preco:    "997",
	}
	prompt, err := client.buildPrompt(req, CallOptions{})
	require.NoError(t, err)

	assert.Contains(t, prompt, "- **Segmento**: coaching")
	assert.Contains(t, prompt, "- **Produto/Serviço**: curso online")
	assert.Contains(t, prompt, "- **Público-Alvo**: coaches")
	assert.Contains(t, prompt, "- **Preço**: R$ 997")
	// fields that were not set still fall back to the placeholder
	assert.Contains(t, prompt, "- **Concorrentes**: "+notInformed)
}

func TestBuildPrompt_SearchContext(t *testing.T) {
	client, _ := newPromptTestClient(t)

	t.Run("absent", func(t *testing.T) {
		prompt, err := client.buildPrompt(AnalysisRequest{}, CallOptions{})
		require.NoError(t, err)
		assert.NotContains(t, prompt, searchHeader)
	})

	t.Run("present", func(t *testing.T) {
		prompt, err := client.buildPrompt(AnalysisRequest{}, CallOptions{
			SearchContext: "tendências do nicho em 2024",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(prompt, searchHeader))

		// the supplied text follows the header
		idx := strings.Index(prompt, searchHeader)
		require.GreaterOrEqual(t, idx, 0)
		assert.Contains(t, prompt[idx:], "tendências do nicho em 2024")
	})
}

func TestBuildPrompt_AttachmentsContext(t *testing.T) {
	client, _ := newPromptTestClient(t)

	t.Run("absent", func(t *testing.T) {
		prompt, err := client.buildPrompt(AnalysisRequest{}, CallOptions{})
		require.NoError(t, err)
		assert.NotContains(t, prompt, attachmentsHeader)
	})

	t.Run("present", func(t *testing.T) {
		prompt, err := client.buildPrompt(AnalysisRequest{}, CallOptions{
			AttachmentsContext: "### plano.txt\nconteúdo do anexo",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(prompt, attachmentsHeader))
		assert.Contains(t, prompt, "conteúdo do anexo")
	})
}

func TestBuildPrompt_SchemaAndDirectives(t *testing.T) {
	client, _ := newPromptTestClient(t)

	prompt, err := client.buildPrompt(AnalysisRequest{}, CallOptions{})
	require.NoError(t, err)

	// the instructional schema template is reproduced verbatim
	assert.Contains(t, prompt, `"avatar_ultra_detalhado"`)
	assert.Contains(t, prompt, `"drivers_mentais_customizados"`)
	assert.Contains(t, prompt, `"sistema_monitoramento"`)
	assert.Contains(t, prompt, "## DIRETRIZES ULTRA-CRÍTICAS:")
	assert.Contains(t, prompt, "Gere APENAS o JSON válido")
}

func TestStickPromptProvider(t *testing.T) {
	t.Run("in-memory templates", func(t *testing.T) {
		p, err := NewStickPromptProvider(WithTemplates(map[string]string{
			"greet": "Olá {{ nome }}",
		}))
		require.NoError(t, err)

		out, err := p.Render("greet", map[string]any{"nome": "Maria"})
		require.NoError(t, err)
		assert.Equal(t, "Olá Maria", out)
	})

	t.Run("missing template", func(t *testing.T) {
		p, err := NewStickPromptProvider()
		require.NoError(t, err)

		_, err = p.Render("nonexistent", nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("provider-wide vars", func(t *testing.T) {
		p, err := NewStickPromptProvider(
			WithTemplates(map[string]string{"v": "versão {{ versao }}"}),
			WithVar("versao", "2.0"),
		)
		require.NoError(t, err)

		out, err := p.Render("v", nil)
		require.NoError(t, err)
		assert.Equal(t, "versão 2.0", out)
	})

	t.Run("AddTemplate", func(t *testing.T) {
		p, err := NewStickPromptProvider()
		require.NoError(t, err)
		p.AddTemplate("x", "conteúdo")

		out, err := p.Render("x", nil)
		require.NoError(t, err)
		assert.Equal(t, "conteúdo", out)
	})
}

func TestDefaultPromptProvider(t *testing.T) {
	p, err := DefaultPromptProvider()
	require.NoError(t, err)

	out, err := p.Render(analysisPromptTag, map[string]any{
		"segmento":            "coaching",
		"produto":             notInformed,
		"publico":             notInformed,
		"preco":               notInformed,
		"concorrentes":        notInformed,
		"objetivo_receita":    notInformed,
		"orcamento_marketing": notInformed,
		"prazo_lancamento":    notInformed,
		"dados_adicionais":    notInformed,
		"search_context":      "",
		"attachments_context": "",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "ANÁLISE ULTRA-DETALHADA DE MERCADO")
	assert.Contains(t, out, "- **Segmento**: coaching")
}
