package analytics

import "github.com/Fasterbrick/CLI-Analyser/internal/model"

// NoPattern is the placeholder entry reported while real chart-pattern
// recognition remains unimplemented.
const NoPattern = "no significant pattern"

// DetectPatterns is an explicit stub kept as an extension point. It always
// reports a single zero-confidence entry.
func DetectPatterns(_ []model.Record) []model.PatternMatch {
	return []model.PatternMatch{{Name: NoPattern, Confidence: 0}}
}
