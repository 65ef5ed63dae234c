package analyst

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"surrounding prose", "Aqui está:\n```json\n{\"a\":1}\n```\nEspero que ajude!", `{"a":1}`},
		{"unclosed fence", "```json\n{\"a\":1}", `{"a":1}`},
		{"whitespace only", "  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripFence(tt.in))
		})
	}
}

func TestStripFence_InnerFenceKept(t *testing.T) {
	// the closing delimiter is the last fence in the text, so fenced
	// content inside the payload does not cut the document short
	in := "```json\n{\"script\": \"use ``` for code\", \"b\": 2}\n```"
	got := stripFence(in)
	assert.Contains(t, got, `"b": 2`)
}

func TestParseAnalysis_RoundTrip(t *testing.T) {
	client, _ := newPromptTestClient(t)

	payload := map[string]any{
		"avatar_ultra_detalhado": map[string]any{"nome_ficticio": "Ana"},
		"escopo_posicionamento":  map[string]any{"nicho_especifico": "coaching executivo"},
		"insights_exclusivos_ultra": []any{"insight um", "insight dois"},
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	res := client.parseAnalysis("```json\n"+string(raw)+"\n```", AnalysisRequest{}, time.Second)

	require.Equal(t, QualityFull, res.Quality)
	// section-for-section equality with the original payload
	for key, want := range payload {
		assert.Equal(t, want, res.Analysis[key], "section %s", key)
	}

	meta, ok := res.Analysis["metadata_gemini"].(map[string]any)
	require.True(t, ok, "metadata_gemini sub-record missing")
	assert.Equal(t, defaultModel, meta["model"])
	assert.Equal(t, analysisVersion, meta["version"])
	assert.Equal(t, "ultra_detailed", meta["analysis_type"])
	assert.Len(t, meta["systems_implemented"], 5)

	_, err = time.Parse(time.RFC3339, meta["generated_at"].(string))
	assert.NoError(t, err)
}

func TestParseAnalysis_FencedScalar(t *testing.T) {
	client, _ := newPromptTestClient(t)

	res := client.parseAnalysis("```json\n{\"foo\":1}\n```", AnalysisRequest{}, 0)

	require.Equal(t, QualityFull, res.Quality)
	assert.Equal(t, float64(1), res.Analysis["foo"])
	assert.Contains(t, res.Analysis, "metadata_gemini")
}

func TestParseAnalysis_InvalidJSON(t *testing.T) {
	client, _ := newPromptTestClient(t)

	garbage := "A análise do seu mercado é: {\"avatar\": incompleto..."
	res := client.parseAnalysis(garbage, AnalysisRequest{Segmento: "fitness"}, 0)

	require.Equal(t, QualityHeuristic, res.Quality)
	for _, key := range []string{
		"avatar_ultra_detalhado",
		"drivers_mentais_customizados",
		"provas_visuais_sugeridas",
		"insights_exclusivos_ultra",
		"raw_response",
		"metadata_gemini",
	} {
		assert.Contains(t, res.Analysis, key)
	}

	// the diagnostic field holds a prefix of the original input
	rawField, ok := res.Analysis["raw_response"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(garbage, rawField) || strings.Contains(garbage, rawField))
}

func TestParseAnalysis_LongInvalidReplyTruncated(t *testing.T) {
	client, _ := newPromptTestClient(t)

	long := strings.Repeat("x", 5000)
	res := client.parseAnalysis(long, AnalysisRequest{}, 0)

	require.Equal(t, QualityHeuristic, res.Quality)
	rawField := res.Analysis["raw_response"].(string)
	assert.Len(t, rawField, rawResponseLimit)
	assert.True(t, strings.HasPrefix(long, rawField))
}
