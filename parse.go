package analyst

import (
	"encoding/json"
	"strings"
	"time"
)

// emergencyModelTag marks a metadata sub-record produced by the static
// emergency path so callers can tell degraded output from genuine output.
const emergencyModelTag = "emergency_fallback"

// rawResponseLimit caps the diagnostic copy of an undecodable reply.
const rawResponseLimit = 2000

// logExcerptLimit caps the reply excerpt attached to decode-failure logs.
const logExcerptLimit = 1000

// parseAnalysis converts the model reply into a Result. A reply that
// decodes cleanly becomes a full-quality record with metadata merged in;
// one that does not decode becomes the hand-authored heuristic record with
// the raw reply attached for diagnostics. Neither path fails.
func (c *Client) parseAnalysis(reply string, req AnalysisRequest, elapsed time.Duration) *Result {
	cleaned := stripFence(reply)

	var analysis map[string]any
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		c.log.Error("failed to decode analysis JSON",
			"error", err,
			"response_excerpt", truncate(cleaned, logExcerptLimit))
		return &Result{
			Analysis: heuristicAnalysis(req, cleaned, c.model, time.Now()),
			Quality:  QualityHeuristic,
			Model:    c.model,
			Elapsed:  elapsed,
		}
	}

	analysis["metadata_gemini"] = fullMetadata(c.model, time.Now())
	return &Result{
		Analysis: analysis,
		Quality:  QualityFull,
		Model:    c.model,
		Elapsed:  elapsed,
	}
}

// stripFence removes an optional fenced code-block wrapper. The opening
// delimiter is the first occurrence, the closing one the last, so stray
// fences inside the payload do not cut the document short. Without a fence
// the text passes through untouched.
func stripFence(s string) string {
	if i := strings.Index(s, "```json"); i >= 0 {
		start := i + len("```json")
		end := strings.LastIndex(s, "```")
		if end > start {
			return strings.TrimSpace(s[start:end])
		}
		return strings.TrimSpace(s[start:])
	}
	if i := strings.Index(s, "```"); i >= 0 {
		start := i + len("```")
		end := strings.LastIndex(s, "```")
		if end > start {
			return strings.TrimSpace(s[start:end])
		}
		return strings.TrimSpace(s[start:])
	}
	return strings.TrimSpace(s)
}

// fullMetadata is the sub-record merged into every cleanly decoded analysis.
func fullMetadata(model string, now time.Time) map[string]any {
	return map[string]any{
		"generated_at":  now.Format(time.RFC3339),
		"model":         model,
		"version":       analysisVersion,
		"analysis_type": "ultra_detailed",
		"systems_implemented": []any{
			"drivers_mentais",
			"provas_visuais",
			"pre_pitch_invisivel",
			"anti_objecao",
			"ancoragem_psicologica",
		},
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
