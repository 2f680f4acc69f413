package intent

import (
	"testing"

	"wa-bazaar-be/pkg/store"
)

func TestClassifyConfidenceBounds(t *testing.T) {
	inputs := []string{
		"",
		"hello",
		"need a flat in noida",
		"xyzzy qwerty gibberish",
		"i am a plumber in noida",
		"selling my car for 2 lakh",
		"asdf 1234 !!!",
	}
	for _, text := range inputs {
		r := Classify(text)
		if r.Confidence < 0 || r.Confidence > 1 {
			t.Errorf("Classify(%q).Confidence = %v, out of [0,1]", text, r.Confidence)
		}
		if r.Intent == "" {
			t.Errorf("Classify(%q) returned empty intent", text)
		}
	}
}

func TestClassifyGreetingWinsTies(t *testing.T) {
	r := Classify("hello, I want to sell my car")
	if r.Intent != IntentGreeting {
		t.Errorf("intent = %q, want greeting (greetings are checked first)", r.Intent)
	}
	if r.Confidence < 0.8 {
		t.Errorf("fast-path confidence = %v, want >= 0.8", r.Confidence)
	}
}

func TestClassifyGibberishDegradesToGeneralHelp(t *testing.T) {
	r := Classify("xyzzy qwerty plugh")
	if r.Intent != IntentGeneralHelp {
		t.Errorf("intent = %q, want general_help", r.Intent)
	}
	if r.Confident() {
		t.Errorf("gibberish must not be confident (confidence %v)", r.Confidence)
	}
}

func TestClassifyContextDetection(t *testing.T) {
	tests := []struct {
		text         string
		wantContext  string
		wantCategory string
	}{
		{"I am a plumber in Noida", store.ContextOffer, store.CategoryUrbanHelp},
		{"I need a plumber in Noida", store.ContextFind, store.CategoryUrbanHelp},
		{"selling my sofa in Pune", store.ContextOffer, store.CategoryFurniture},
		{"looking for a 2 bhk flat", store.ContextFind, store.CategoryHousing},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			r := Classify(tt.text)
			if r.Context != tt.wantContext {
				t.Errorf("context = %q, want %q", r.Context, tt.wantContext)
			}
			if got := r.Category(); got != tt.wantCategory {
				t.Errorf("category = %q, want %q (intent %q)", got, tt.wantCategory, r.Intent)
			}
		})
	}
}

func TestContextRemap(t *testing.T) {
	tests := []struct {
		base    string
		context string
		want    string
	}{
		{IntentPropertySearch, store.ContextOffer, IntentPropertySale},
		{IntentPropertySearch, store.ContextFind, IntentPropertySearch},
		{IntentServiceRequest, store.ContextOffer, IntentServiceOffer},
		{IntentServiceOffer, store.ContextFind, IntentServiceRequest},
		{IntentGreeting, store.ContextOffer, IntentGreeting}, // not remappable
		{IntentVehicleSearch, "", IntentVehicleSearch},
	}
	for _, tt := range tests {
		if got := RemapForContext(tt.base, tt.context); got != tt.want {
			t.Errorf("RemapForContext(%s, %s) = %s, want %s", tt.base, tt.context, got, tt.want)
		}
	}
}

func TestClassifyMultilingual(t *testing.T) {
	tests := []struct {
		text       string
		wantIntent string
	}{
		{"namaste bhai", IntentGreeting},
		{"ghar chahiye kiraye par noida me", IntentPropertySearch},
		{"gaadi bechni hai urgent", IntentVehicleSale},
		{"naukri chahiye koi bhi kaam", IntentJobSearch},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			r := Classify(tt.text)
			if r.Intent != tt.wantIntent {
				t.Errorf("intent = %q, want %q", r.Intent, tt.wantIntent)
			}
		})
	}
}

func TestClassifyAlternativesComputed(t *testing.T) {
	// An ambiguous utterance that only the statistical path can score:
	// shared vocabulary across intents should keep a close runner-up.
	r := Classify("purana wala batao")
	for _, alt := range r.Alternatives {
		if alt.Confidence > r.Confidence {
			t.Errorf("alternative %s (%v) scored above winner (%v)",
				alt.Intent, alt.Confidence, r.Confidence)
		}
		if r.Confidence-alt.Confidence > alternativeMargin+1e-9 {
			t.Errorf("alternative %s outside margin: %v vs %v",
				alt.Intent, alt.Confidence, r.Confidence)
		}
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"mujhe naukri chahiye bhai", "hi"},
		{"enna velai irukku inga", "ta"},
		{"I am looking for a flat", "en"},
		{"chahiye", "en"}, // single hit, below threshold
		{"", "en"},
		{"zzz qqq", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := DetectLanguage(tt.text); got != tt.want {
				t.Errorf("DetectLanguage(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyEntitiesKeyedByCategory(t *testing.T) {
	r := Classify("I am a plumber in Noida")
	if r.Entities["serviceType"] != "plumber" {
		t.Errorf("serviceType = %v, want plumber", r.Entities["serviceType"])
	}
	if r.Entities["location"] != "Noida" {
		t.Errorf("location = %v, want Noida", r.Entities["location"])
	}
}
