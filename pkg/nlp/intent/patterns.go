package intent

import "regexp"

// fastPattern binds a compiled pattern to an intent label. The fastPatterns
// slice is evaluated top to bottom and the FIRST match wins - the listed
// order is the normative priority, do not reorder casually.
type fastPattern struct {
	intent  string
	pattern *regexp.Regexp
}

// Fast-path table. Greetings and farewells come first so they win ties
// against everything else. Hindi and Tamil transliterations sit beside
// their English forms.
var fastPatterns = []fastPattern{
	{IntentGreeting, regexp.MustCompile(`(?i)^\s*(hi+|hey+|hello+|namaste|namaskar|vanakkam|salaam|good\s*(morning|afternoon|evening))\b`)},
	{IntentFarewell, regexp.MustCompile(`(?i)^\s*(bye+|goodbye|good\s*night|alvida|tata|see\s*(you|ya))\b`)},

	// Housing
	{IntentPropertySale, regexp.MustCompile(`(?i)\b(flat|house|room|plot|villa|pg|makaan|ghar|veedu)\b.*\b(for\s+(sale|rent)|bech|kiraye|kiraya|available)\b`)},
	{IntentPropertySale, regexp.MustCompile(`(?i)\b(sell(ing)?|rent(ing)?\s+out|bechn[ai]|bech\s+rah[ai])\b.*\b(flat|house|room|plot|villa|pg|makaan|ghar|veedu|property)\b`)},
	{IntentPropertySearch, regexp.MustCompile(`(?i)\b(need|want|looking\s+for|search(ing)?|chahiye|dhoond|venum)\b.*\b(flat|house|room|plot|villa|pg|makaan|ghar|veedu|property|accommodation)\b`)},

	// Urban help / services
	{IntentServiceOffer, regexp.MustCompile(`(?i)\b(i\s*('?m|am)\s*an?|i\s+work\s+as)\s+\w*\s*(plumber|electrician|carpenter|painter|maid|cook|driver|mechanic|tutor|beautician|cleaner|mistri|tailor)\b`)},
	{IntentServiceRequest, regexp.MustCompile(`(?i)\b(need|want|looking\s+for|chahiye|venum)\b.*\b(plumber|electrician|carpenter|painter|maid|cook|driver|mechanic|tutor|beautician|cleaner|mistri|tailor)\b`)},
	{IntentServiceRequest, regexp.MustCompile(`(?i)\b(plumber|electrician|carpenter|painter|maid|cook|driver|mechanic|mistri)\b.*\b(chahiye|needed|required|urgent)\b`)},

	// Vehicles
	{IntentVehicleSale, regexp.MustCompile(`(?i)\b(sell(ing)?|bechn[ai]|bech\s+rah[ai]|virpanai)\b.*\b(car|bike|scooter|scooty|auto|truck|gaadi|gadi|vandi)\b`)},
	{IntentVehicleSale, regexp.MustCompile(`(?i)\b(car|bike|scooter|scooty|auto|gaadi|gadi|vandi)\b.*\b(for\s+sale|bechn[ai]|bech\s+rah[ai])\b`)},
	{IntentVehicleSearch, regexp.MustCompile(`(?i)\b(need|want|buy(ing)?|looking\s+for|chahiye|venum)\b.*\b(car|bike|scooter|scooty|auto|second\s*hand|gaadi|gadi|vandi)\b`)},

	// Electronics
	{IntentElectronicsSale, regexp.MustCompile(`(?i)\b(sell(ing)?|bechn[ai]|bech\s+rah[ai])\b.*\b(phone|mobile|laptop|tv|fridge|washing\s+machine|ac|cooler)\b`)},
	{IntentElectronicsSearch, regexp.MustCompile(`(?i)\b(need|want|buy(ing)?|looking\s+for|chahiye|venum)\b.*\b(phone|mobile|laptop|tv|fridge|washing\s+machine|ac|cooler)\b`)},

	// Furniture
	{IntentFurnitureSale, regexp.MustCompile(`(?i)\b(sell(ing)?|bechn[ai]|bech\s+rah[ai])\b.*\b(sofa|bed|table|chair|wardrobe|almirah|mattress|furniture)\b`)},
	{IntentFurnitureSearch, regexp.MustCompile(`(?i)\b(need|want|buy(ing)?|looking\s+for|chahiye|venum)\b.*\b(sofa|bed|table|chair|wardrobe|almirah|mattress|furniture)\b`)},

	// Jobs
	{IntentJobOffer, regexp.MustCompile(`(?i)\b(hiring|vacancy|job\s+(opening|available)|staff\s+(needed|required)|naukri\s+hai)\b`)},
	{IntentJobSearch, regexp.MustCompile(`(?i)\b(need|want|looking\s+for|searching)\b.*\b(job|work|naukri|kaam|velai)\b`)},
	{IntentJobSearch, regexp.MustCompile(`(?i)\b(naukri|kaam|velai)\b.*\b(chahiye|venum|dhoond)\b`)},

	// Commodities
	{IntentCommoditySale, regexp.MustCompile(`(?i)\b(sell(ing)?|bechn[ai]|bech\s+rah[ai])\b.*\b(rice|wheat|atta|dal|vegetables|onion|potato|tomato|milk|sugar|grain)\b`)},
	{IntentCommoditySearch, regexp.MustCompile(`(?i)\b(need|want|buy(ing)?|chahiye|venum)\b.*\b(rice|wheat|atta|dal|vegetables|onion|potato|tomato|milk|sugar|grain)\b`)},
}

// Offering language is checked BEFORE seeking language; the first table
// with a hit decides the context.
var offerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bi\s*('?m|am)\s+an?\b`),
	regexp.MustCompile(`(?i)\bi\s+(provide|offer|do|sell)\b`),
	regexp.MustCompile(`(?i)\b(for\s+sale|selling|sell\s+my)\b`),
	regexp.MustCompile(`(?i)\bavailable\s+(for|in)\b`),
	regexp.MustCompile(`(?i)\b(bech(n[ai]|\s+rah[ai])?|virpanai)\b`),
	regexp.MustCompile(`(?i)\b(hiring|vacancy|rent(ing)?\s+out)\b`),
}

var findPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bi\s+(need|want|require)\b`),
	regexp.MustCompile(`(?i)\b(looking|searching)\s+for\b`),
	regexp.MustCompile(`(?i)\bwant\s+to\s+(buy|hire|rent)\b`),
	regexp.MustCompile(`(?i)\b(need|needed|required)\b`),
	regexp.MustCompile(`(?i)\b(chahiye|dhoond\s+rah[ai]|venum|kidaikkum)\b`),
}
