package constant

import "strings"

// Canonical replies. Keep wording stable - the simulation script and the
// tests assert on prefixes of these.
const (
	ReplyGreeting = "Namaste! I can help you post a listing or find one. " +
		"Try something like \"2 BHK flat for rent in Noida\" or \"I am a plumber in Indirapuram\"."
	ReplyFarewell = "Dhanyavaad! Message me anytime to post or find a listing."
	ReplyHelp     = "I can help you with:\n" +
		"- Posting: property, services, vehicles, electronics, furniture, jobs, farm produce\n" +
		"- Finding: tell me what you need, e.g. \"need a carpenter in Sector 18\"\n" +
		"Just describe it in your own words."

	ReplyNotUnderstood = "Sorry, I did not quite get that. " +
		"You can post a listing (\"selling my Activa\") or search (\"need a 1 BHK in Meerut\")."

	ReplyCategoryChoice = "What would you like to post?"

	ReplySessionExpired = "Your earlier conversation timed out, but I saved your progress. " +
		"Continuing where we left off."

	ReplyDraftConflict = "You already have an unfinished listing. What should I do?"

	ReplyPublished = "Your listing is live! Interested people will contact you on this number. " +
		"It stays active for 30 days."
	ReplyCancelled = "Okay, I have discarded that listing. Message me when you want to start again."

	ReplyConfirmHint = "Please reply Yes to publish, No to cancel, or Edit to change a field."
	ReplyEditPrompt  = "Which field do you want to change?"

	ReplyNoResults = "No matching listings right now. I will keep your request in mind - " +
		"try again in a few days or change the area."

	ReplyVoiceUnavailable = "I could not process that voice note. Please type your message."

	ReplyDraftGone = "Looks like that unfinished listing is no longer around. " +
		"No problem - tell me again what you want to post or find."

	ReplyTryLater = "Sorry, something went wrong on my side. Please try again in a minute."

	ReplyListingGone = "That listing is not available anymore. Try searching again."

	// ReplyListingExpiredNotice takes the listing title.
	ReplyListingExpiredNotice = "Your listing %q has expired after 30 days. " +
		"Message me if you want to post it again."
)

// Button ids for interactive replies.
const (
	ButtonYes  = "confirm_yes"
	ButtonNo   = "confirm_no"
	ButtonEdit = "confirm_edit"

	ButtonDraftResume  = "draft_resume"
	ButtonDraftDiscard = "draft_discard"
	ButtonDraftKeep    = "draft_keep"
)

// yesWords and noWords accept the common English/Hindi affirmations seen
// in field trials. Matched on the whole trimmed message only.
var yesWords = map[string]bool{
	"yes": true, "y": true, "yeah": true, "ok": true, "okay": true,
	"haan": true, "han": true, "ha": true, "ji": true, "ji haan": true,
	"sahi": true, "sahi hai": true, "theek hai": true, "correct": true,
	"right": true, "confirm": true, "done": true, "publish": true,
}

var noWords = map[string]bool{
	"no": true, "n": true, "nope": true,
	"nahi": true, "nahin": true, "na": true, "mat": true,
	"galat": true, "wrong": true, "incorrect": true,
	"cancel": true, "stop": true, "chhodo": true, "rehne do": true,
}

var editWords = map[string]bool{
	"edit": true, "change": true, "badlo": true, "badal do": true,
	"modify": true, "update": true,
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// IsYes reports whether the message is an affirmation.
func IsYes(text string) bool {
	return yesWords[normalize(text)]
}

// IsNo reports whether the message is a refusal.
func IsNo(text string) bool {
	return noWords[normalize(text)]
}

// IsEdit reports whether the message asks to change a field at the
// confirmation step.
func IsEdit(text string) bool {
	return editWords[normalize(text)]
}

// postingKeywords give low-confidence classifications a second chance to
// enter the posting flow: any of these substrings marks selling intent.
var postingKeywords = []string{
	"sell", "selling", "bech", "sale",
	"rent out", "kiraye pe de", "kiraye par de",
	"offer", "available for", "vacancy", "hiring",
}

// HasPostingKeyword reports whether the text contains an explicit selling
// or offering keyword.
func HasPostingKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range postingKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
