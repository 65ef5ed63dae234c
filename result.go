package analyst

import "time"

// Quality reports which recovery tier produced a Result. Callers can treat
// every Result uniformly and branch on Quality only when they care whether
// the analysis came from the model or from a degraded path.
type Quality int

const (
	// QualityFull means the model reply decoded cleanly.
	QualityFull Quality = iota
	// QualityHeuristic means the reply did not decode and a hand-authored
	// record was returned instead, with the raw reply attached for
	// diagnostics.
	QualityHeuristic
	// QualityFallback means the model call itself failed (transport error,
	// safety block, empty reply) and a static emergency record was returned.
	QualityFallback
)

func (q Quality) String() string {
	switch q {
	case QualityFull:
		return "full"
	case QualityHeuristic:
		return "heuristic"
	case QualityFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single analysis call. Analysis always carries
// the standard top-level sections plus a metadata_gemini sub-record, no
// matter which tier produced it. A Result is never mutated after return.
type Result struct {
	Analysis map[string]any
	Quality  Quality
	Model    string
	Elapsed  time.Duration
}
