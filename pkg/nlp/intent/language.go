package intent

// Language detection is a coarse secondary signal: count known
// function-word hits per language and pick the highest. Fewer than two
// hits for every language defaults to English.
const minLanguageHits = 2

var languageWords = map[string]map[string]bool{
	"hi": {
		"hai": true, "nahi": true, "chahiye": true, "kya": true,
		"mera": true, "meri": true, "mujhe": true, "bhai": true,
		"haan": true, "kaam": true, "aur": true, "par": true,
		"koi": true, "wala": true, "karna": true, "raha": true,
		"rahi": true, "hoon": true, "bechna": true, "sasta": true,
	},
	"ta": {
		"venum": true, "illai": true, "enna": true, "vanakkam": true,
		"irukku": true, "veedu": true, "velai": true, "vandi": true,
		"nalla": true, "romba": true, "epdi": true, "inga": true,
	},
	"en": {
		"the": true, "is": true, "are": true, "want": true,
		"need": true, "for": true, "and": true, "have": true,
		"looking": true, "my": true, "a": true, "to": true,
	},
}

// DetectLanguage returns a two-letter language code for the text.
func DetectLanguage(text string) string {
	hits := make(map[string]int, len(languageWords))
	for _, term := range tokenize(text) {
		for lang, words := range languageWords {
			if words[term] {
				hits[lang]++
			}
		}
	}

	best, bestHits := "en", 0
	// Fixed check order so equal scores resolve the same way every time.
	for _, lang := range []string{"hi", "ta", "en"} {
		if hits[lang] > bestHits {
			best, bestHits = lang, hits[lang]
		}
	}
	if bestHits < minLanguageHits {
		return "en"
	}
	return best
}
