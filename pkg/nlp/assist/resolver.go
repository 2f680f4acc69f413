// Package assist layers an optional LLM pass on top of the deterministic
// intent classifier. The pattern classifier always runs first; the model
// is only consulted when the pattern result is not confident, and every
// failure path falls back to the deterministic result so the bot keeps
// working with no model configured at all.
package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"wa-bazaar-be/pkg/llm"
	"wa-bazaar-be/pkg/nlp/intent"
	"wa-bazaar-be/pkg/store"
)

// llmIntent is the JSON shape we ask the model to produce.
type llmIntent struct {
	Intent     string  `json:"intent"`
	Context    string  `json:"context"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// Resolver resolves intents with the classifier, escalating to an LLM
// when the classifier is unsure.
type Resolver struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

// NewResolver creates a resolver. llmProvider may be nil, in which case
// Resolve is a pure classifier call.
func NewResolver(llmProvider llm.LLMProvider, logger *log.Logger) *Resolver {
	return &Resolver{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Resolve classifies text, consulting the LLM only for low-confidence
// results. The returned Result always carries extracted entities from
// the deterministic pipeline, whichever path decided the intent.
func (r *Resolver) Resolve(ctx context.Context, text string, session *store.Session) *intent.Result {
	base := intent.Classify(text)
	if base.Confident() || r.llmProvider == nil {
		return base
	}

	prompt := r.buildPrompt(text, session, base)
	response, err := r.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.0), llm.WithMaxTokens(200))
	if err != nil {
		r.logger.Printf("[WARN] LLM intent assist failed, keeping classifier result: %v", err)
		return base
	}

	resolved, err := r.parseIntent(response)
	if err != nil {
		r.logger.Printf("[WARN] LLM intent parse failed, keeping classifier result: %v", err)
		return base
	}

	r.logger.Printf("[INTENT] LLM assist: %s -> %s (confidence %.2f)", base.Intent, resolved.Intent, resolved.Confidence)

	out := *base
	out.Intent = resolved.Intent
	if resolved.Confidence > out.Confidence {
		out.Confidence = resolved.Confidence
	}
	if resolved.Context == store.ContextOffer || resolved.Context == store.ContextFind {
		out.Context = resolved.Context
		out.Intent = intent.RemapForContext(out.Intent, out.Context)
	}
	return &out
}

func (r *Resolver) buildPrompt(text string, session *store.Session, base *intent.Result) string {
	var prompt strings.Builder

	prompt.WriteString("<system>\n")
	prompt.WriteString("You classify WhatsApp marketplace messages from India. Your ONLY job is to pick an intent label.\n")
	prompt.WriteString("Messages mix English, Hindi and Tamil. You do NOT reply to the user.\n")
	prompt.WriteString("</system>\n\n")

	prompt.WriteString("<session_state>\n")
	if session != nil && session.Mode == store.ModePosting {
		prompt.WriteString(fmt.Sprintf("POSTING: user is mid-way through posting a %s listing.\n", session.Category))
	} else {
		prompt.WriteString("IDLE: no conversation in progress.\n")
	}
	prompt.WriteString("</session_state>\n\n")

	prompt.WriteString("<user_message>\n")
	prompt.WriteString(text)
	prompt.WriteString("\n</user_message>\n\n")

	prompt.WriteString("<intent_labels>\n")
	prompt.WriteString("Pick exactly one:\n")
	for _, label := range intent.Labels() {
		prompt.WriteString("  " + label + "\n")
	}
	prompt.WriteString("Suffix rule: _sale / service_offer / job_offer means the user is OFFERING something; _search means the user is LOOKING FOR it.\n")
	prompt.WriteString("</intent_labels>\n\n")

	prompt.WriteString("<hints>\n")
	prompt.WriteString(fmt.Sprintf("Pattern classifier guessed %q at %.2f confidence", base.Intent, base.Confidence))
	if len(base.Alternatives) > 0 {
		names := make([]string, len(base.Alternatives))
		for i, alt := range base.Alternatives {
			names[i] = alt.Intent
		}
		prompt.WriteString(", alternatives: " + strings.Join(names, ", "))
	}
	prompt.WriteString(".\n</hints>\n\n")

	prompt.WriteString("<output_format>\n")
	prompt.WriteString("Respond with ONLY valid JSON:\n")
	prompt.WriteString("{\n")
	prompt.WriteString("  \"intent\": \"one of the labels above\",\n")
	prompt.WriteString("  \"context\": \"offer|find|\",\n")
	prompt.WriteString("  \"confidence\": 0.9,\n")
	prompt.WriteString("  \"reasoning\": \"Brief explanation\"\n")
	prompt.WriteString("}\n")
	prompt.WriteString("</output_format>")

	return prompt.String()
}

func (r *Resolver) parseIntent(response string) (*llmIntent, error) {
	jsonContent := extractJSON(response)
	if jsonContent == "" {
		return nil, fmt.Errorf("no JSON found in response")
	}

	var out llmIntent
	if err := json.Unmarshal([]byte(jsonContent), &out); err != nil {
		return nil, fmt.Errorf("JSON unmarshal failed: %w", err)
	}

	out.Intent = strings.ToLower(strings.TrimSpace(out.Intent))
	out.Context = strings.ToLower(strings.TrimSpace(out.Context))
	if !intent.IsKnown(out.Intent) {
		return nil, fmt.Errorf("unknown intent label %q", out.Intent)
	}
	if out.Confidence <= 0 || out.Confidence > 1 {
		out.Confidence = 0.5
	}
	return &out, nil
}

// extractJSON pulls the first balanced JSON object out of a model reply,
// tolerating prose or markdown fences around it.
func extractJSON(response string) string {
	start := strings.Index(response, "{")
	if start < 0 {
		return ""
	}
	depth := 0
	for i := start; i < len(response); i++ {
		switch response[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return response[start : i+1]
			}
		}
	}
	return ""
}
