package intent

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// termIndex is the statistical fallback: term weights per intent, built
// once from trainingCorpus at package init and read-only afterwards.
type termIndex struct {
	// weights[intent][term] = summed tf-idf weight of term in that
	// intent's example utterances.
	weights map[string]map[string]float64
	intents []string
}

var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

var index = buildIndex(trainingCorpus)

func buildIndex(corpus map[string][]string) *termIndex {
	// Document frequency over individual utterances.
	totalDocs := 0
	docFreq := make(map[string]int)
	for _, examples := range corpus {
		for _, example := range examples {
			totalDocs++
			seen := make(map[string]bool)
			for _, term := range tokenize(example) {
				if !seen[term] {
					seen[term] = true
					docFreq[term]++
				}
			}
		}
	}

	idx := &termIndex{weights: make(map[string]map[string]float64)}
	for label, examples := range corpus {
		weights := make(map[string]float64)
		for _, example := range examples {
			for _, term := range tokenize(example) {
				idf := math.Log(float64(totalDocs+1) / float64(docFreq[term]+1))
				weights[term] += idf
			}
		}
		idx.weights[label] = weights
		idx.intents = append(idx.intents, label)
	}
	// Deterministic iteration order for stable tie-breaks.
	sort.Strings(idx.intents)
	return idx
}

// scored is one intent's aggregate similarity to a query.
type scored struct {
	intent string
	score  float64
}

// rank scores the query terms against every intent and returns the ranking
// in descending score order (ties broken by intent name for determinism)
// along with the total score mass for confidence normalization.
func (idx *termIndex) rank(text string) ([]scored, float64) {
	terms := tokenize(text)
	if len(terms) == 0 {
		return nil, 0
	}

	results := make([]scored, 0, len(idx.intents))
	total := 0.0
	for _, label := range idx.intents {
		weights := idx.weights[label]
		score := 0.0
		for _, term := range terms {
			score += weights[term]
		}
		if score > 0 {
			results = append(results, scored{intent: label, score: score})
			total += score
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].intent < results[j].intent
	})
	return results, total
}
