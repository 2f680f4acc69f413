// Package extract pulls structured entities out of free-form chat text
// using deterministic pattern tables. No network calls; extraction is pure
// and idempotent, and malformed input degrades to an empty result.
package extract

import (
	"strconv"
	"strings"
)

// Entities maps entity names to extracted values. Values are strings,
// float64 amounts, or []string when a pattern matched more than once.
type Entities map[string]interface{}

// Extract runs common extraction plus the target category's table. An empty
// category runs the common extractors only. Array-valued results collapse
// to a scalar when exactly one match was found.
func Extract(text, category string) Entities {
	entities := make(Entities)
	if strings.TrimSpace(text) == "" {
		return entities
	}

	extractCommon(text, entities)

	for _, cp := range categoryPatterns[category] {
		if _, done := entities[cp.entity]; done {
			continue
		}
		matches := cp.pattern.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			continue
		}
		values := make([]string, 0, len(matches))
		for _, m := range matches {
			values = append(values, normalizeMatch(strings.ToLower(m[1])))
		}
		entities[cp.entity] = collapse(dedupe(values))
	}

	return entities
}

// ExtractAll runs every category table against the text, for callers that
// do not yet know the target category (classification stage).
func ExtractAll(text string) Entities {
	entities := make(Entities)
	if strings.TrimSpace(text) == "" {
		return entities
	}

	extractCommon(text, entities)

	for _, category := range categoryOrder {
		for _, cp := range categoryPatterns[category] {
			if _, done := entities[cp.entity]; done {
				continue
			}
			if m := cp.pattern.FindStringSubmatch(text); m != nil {
				entities[cp.entity] = normalizeMatch(strings.ToLower(m[1]))
			}
		}
	}
	return entities
}

// categoryOrder fixes the table evaluation order for ExtractAll so results
// are deterministic. urban_help first, mirroring category detection.
var categoryOrder = []string{
	"urban_help", "housing", "vehicle", "electronics", "furniture", "job", "commodity",
}

func extractCommon(text string, entities Entities) {
	if loc, ok := extractLocation(text); ok {
		entities["location"] = loc
	}
	if price, ok := extractPrice(text); ok {
		entities["price"] = price
	}
	if m := bhkPattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			entities["bhk"] = float64(n)
		}
	}
	if m := quantityPattern.FindStringSubmatch(text); m != nil {
		if q, err := strconv.ParseFloat(m[1], 64); err == nil {
			entities["quantity"] = q
			entities["unit"] = strings.ToLower(m[2])
		}
	}
	if m := phonePattern.FindStringSubmatch(text); m != nil {
		entities["phone"] = m[1]
	}
}

func extractLocation(text string) (string, bool) {
	for _, m := range locationPattern.FindAllStringSubmatch(text, -1) {
		words := strings.Fields(strings.ToLower(m[1]))
		if len(words) == 0 || locationStopwords[words[0]] {
			continue
		}
		// The capture is greedy; drop trailing words that are clearly
		// sentence continuation rather than part of the place name.
		for len(words) > 1 && (trailingStopwords[words[len(words)-1]] || isDigits(words[len(words)-1])) {
			words = words[:len(words)-1]
		}
		candidate := strings.Join(words, " ")
		// A capture that is all digits is a number, not a place.
		if _, err := strconv.Atoi(candidate); err == nil {
			continue
		}
		return titleWords(candidate), true
	}
	return "", false
}

// trailingStopwords end a location capture early.
var trailingStopwords = map[string]bool{
	"available": true, "urgently": true, "looking": true, "selling": true,
	"contact": true, "call": true, "price": true, "rent": true, "sale": true,
	"only": true, "daily": true, "for": true, "on": true, "and": true,
	"with": true, "area": true, "side": true, "at": true, "in": true,
	"near": true, "to": true, "by": true,
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func titleWords(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 && r[0] >= 'a' && r[0] <= 'z' {
			r[0] -= 32
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

func normalizeMatch(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := values[:0]
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func collapse(values []string) interface{} {
	if len(values) == 1 {
		return values[0]
	}
	return values
}
