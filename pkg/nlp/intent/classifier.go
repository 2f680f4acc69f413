// Package intent classifies inbound chat messages. A prioritized pattern
// table handles the common phrasings at high confidence; everything else
// falls back to term-weighted similarity against a fixed training corpus.
// Classification never fails - unmatched text degrades to general_help at
// minimal confidence.
package intent

import (
	"wa-bazaar-be/pkg/nlp/extract"
	"wa-bazaar-be/pkg/store"
)

// Alternative is a runner-up intent whose score came close to the winner.
type Alternative struct {
	Intent     string
	Confidence float64
}

// Result is the classifier's transient output for one message.
type Result struct {
	Intent     string
	Confidence float64
	Context    string // store.ContextOffer, store.ContextFind, or ""
	Entities   extract.Entities
	Language   string
	// Alternatives holds close-second intents from the statistical path,
	// kept for potential disambiguation by callers.
	Alternatives []Alternative
}

// Confident reports whether the result clears the acceptance threshold.
// Callers must treat non-confident results as needing clarification.
func (r *Result) Confident() bool {
	return r.Confidence >= ConfidenceThreshold
}

// Category returns the listing category the resolved intent maps to.
func (r *Result) Category() string {
	return CategoryFor(r.Intent)
}

// Classify analyzes one message. It always returns a usable result.
func Classify(text string) *Result {
	result := &Result{
		Intent:     IntentGeneralHelp,
		Confidence: MinConfidence,
		Language:   DetectLanguage(text),
	}
	if text == "" {
		result.Entities = extract.Entities{}
		return result
	}

	// 1. Fast path: first pattern hit wins.
	matched := false
	for _, fp := range fastPatterns {
		if fp.pattern.MatchString(text) {
			result.Intent = fp.intent
			result.Confidence = FastPathConfidence
			matched = true
			break
		}
	}

	// 2. Statistical fallback when no pattern matched.
	if !matched {
		ranking, total := index.rank(text)
		if len(ranking) > 0 && total > 0 {
			top := ranking[0]
			result.Intent = top.intent
			result.Confidence = top.score / total
			for _, runnerUp := range ranking[1:] {
				conf := runnerUp.score / total
				if result.Confidence-conf > alternativeMargin {
					break
				}
				result.Alternatives = append(result.Alternatives, Alternative{
					Intent:     runnerUp.intent,
					Confidence: conf,
				})
			}
		}
	}

	// 3. Offer/find context, then remap the base intent through it.
	result.Context = DetectContext(text)
	result.Intent = RemapForContext(result.Intent, result.Context)

	// 4. Entities, keyed by the resolved intent's category.
	if category := CategoryFor(result.Intent); category != "" {
		result.Entities = extract.Extract(text, category)
	} else {
		result.Entities = extract.ExtractAll(text)
	}

	return result
}

// DetectContext scans for offering versus seeking language. Offer patterns
// are checked first; no hit in either table returns "".
func DetectContext(text string) string {
	for _, p := range offerPatterns {
		if p.MatchString(text) {
			return store.ContextOffer
		}
	}
	for _, p := range findPatterns {
		if p.MatchString(text) {
			return store.ContextFind
		}
	}
	return ""
}
