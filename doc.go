// Package analyst is a thin client over the Gemini API that turns a set of
// project parameters into an ultra-detailed market-analysis record.
//
// The flow per call is deliberately linear: render the analysis prompt from
// an embedded Twig template, make one synchronous generate call, and decode
// the reply into a nested map. What makes the package useful is that the
// round trip never fails from the caller's point of view:
//
//   - a reply that decodes cleanly becomes a full-quality record with a
//     metadata_gemini sub-record merged in
//   - a reply that is not valid JSON becomes a hand-authored heuristic
//     record with the raw reply attached for diagnostics
//   - a transport error, safety block, or empty reply becomes a static
//     emergency record whose metadata marks it as degraded
//
// Every Result carries the same top-level sections regardless of the path
// taken, plus an explicit Quality tag (Full, Heuristic, Fallback) so
// callers can tell genuine output from fallback without inspecting the map.
//
// # Basic Usage
//
//	client, err := analyst.NewClient(ctx)
//	if err != nil {
//		// missing GEMINI_API_KEY: treat the feature as disabled
//	}
//
//	res := client.GenerateDetailedAnalysis(ctx, analyst.AnalysisRequest{
//		Segmento: "coaching",
//		Produto:  "curso online",
//		Publico:  "coaches",
//		Preco:    "997",
//	}, analyst.WithSearchContext(research))
//
//	if res.Quality == analyst.QualityFull {
//		// res.Analysis["avatar_ultra_detalhado"], etc.
//	}
//
// Prompt templates live in the embedded prompts directory and can be
// swapped at construction with WithPromptProvider, so content edits do not
// require code changes. BuildAttachmentsContext assembles the optional
// attachments block from local files, and GenerateBatch fans independent
// requests out through a bounded runner.
package analyst
