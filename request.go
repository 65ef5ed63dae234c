package analyst

// notInformed is rendered in the prompt for every field the caller left
// empty; fields are never omitted from the data block.
const notInformed = "Não informado"

// AnalysisRequest carries the project parameters for one analysis. Every
// field is optional; empty fields render as a literal placeholder in the
// prompt so the model always sees the full labeled block.
type AnalysisRequest struct {
	Segmento           string
	Produto            string
	Publico            string
	Preco              string
	Concorrentes       string
	ObjetivoReceita    string
	OrcamentoMarketing string
	PrazoLancamento    string
	DadosAdicionais    string
}

// templateContext maps the request onto the variables the analysis template
// expects, substituting the placeholder for absent values.
func (r AnalysisRequest) templateContext() map[string]any {
	return map[string]any{
		"segmento":            orDefault(r.Segmento),
		"produto":             orDefault(r.Produto),
		"publico":             orDefault(r.Publico),
		"preco":               orDefault(r.Preco),
		"concorrentes":        orDefault(r.Concorrentes),
		"objetivo_receita":    orDefault(r.ObjetivoReceita),
		"orcamento_marketing": orDefault(r.OrcamentoMarketing),
		"prazo_lancamento":    orDefault(r.PrazoLancamento),
		"dados_adicionais":    orDefault(r.DadosAdicionais),
	}
}

// segmentoOr returns the request's segment or a generic stand-in used by
// the degraded record builders.
func (r AnalysisRequest) segmentoOr(fallback string) string {
	if r.Segmento == "" {
		return fallback
	}
	return r.Segmento
}

func orDefault(s string) string {
	if s == "" {
		return notInformed
	}
	return s
}
