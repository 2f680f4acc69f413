package extract

import (
	"regexp"

	"wa-bazaar-be/pkg/store"
)

// categoryPattern binds an entity name to a compiled pattern within one
// category. Patterns are evaluated top to bottom; the listed order is the
// effective priority and must be preserved.
type categoryPattern struct {
	entity  string
	pattern *regexp.Regexp
}

// Common entities attempted for every message, regardless of category.
var (
	phonePattern    = regexp.MustCompile(`\b([6-9]\d{9})\b`)
	bhkPattern      = regexp.MustCompile(`(?i)\b(\d+)\s*bhk\b`)
	quantityPattern = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(kg|kgs|quintal|quintals|litre|litres|liter|liters|ton|tons|dozen|pieces?)\b`)

	// "in Noida", "at Sector 62", "near Indirapuram". The capture stops at
	// common sentence continuations so trailing clauses don't leak in.
	locationPattern = regexp.MustCompile(`(?i)\b(?:in|at|near|from)\s+([a-z][a-z0-9]*(?:\s+[a-z0-9]+){0,2})`)
)

// locationStopwords are words a location capture must not start with -
// they indicate the preposition introduced something other than a place.
var locationStopwords = map[string]bool{
	"a": true, "an": true, "the": true, "my": true, "your": true,
	"good": true, "need": true, "want": true, "this": true, "that": true,
	"front": true, "touch": true, "cash": true, "case": true,
	"morning": true, "evening": true, "week": true, "month": true,
}

// Per-category entity tables. First match per entity wins.
var categoryPatterns = map[string][]categoryPattern{
	store.CategoryHousing: {
		{"propertyType", regexp.MustCompile(`(?i)\b(flat|apartment|house|villa|plot|pg|room|shop|office)\b`)},
		{"furnishing", regexp.MustCompile(`(?i)\b(semi[- ]?furnished|unfurnished|furnished)\b`)},
		{"listingType", regexp.MustCompile(`(?i)\b(rent|sale|sell|lease)\b`)},
	},
	store.CategoryUrbanHelp: {
		{"serviceType", regexp.MustCompile(`(?i)\b(plumber|electrician|carpenter|painter|maid|cook|driver|mechanic|tutor|beautician|gardener|cleaner|mistri|tailor|guard|nanny)\b`)},
		{"experience", regexp.MustCompile(`(?i)\b(\d+)\s*(?:\+\s*)?(?:years?|yrs?|saal)\b`)},
	},
	store.CategoryVehicle: {
		{"vehicleType", regexp.MustCompile(`(?i)\b(car|bike|scooter|scooty|auto|truck|tempo|cycle|motorcycle)\b`)},
		{"brand", regexp.MustCompile(`(?i)\b(maruti|suzuki|hyundai|tata|mahindra|honda|toyota|kia|hero|bajaj|tvs|royal enfield|yamaha|ola|ather)\b`)},
		{"year", regexp.MustCompile(`\b(19[89]\d|20[0-2]\d)\b`)},
	},
	store.CategoryElectronics: {
		{"itemType", regexp.MustCompile(`(?i)\b(phone|mobile|smartphone|laptop|computer|tv|television|fridge|refrigerator|washing machine|ac|air conditioner|cooler|microwave|camera)\b`)},
		{"brand", regexp.MustCompile(`(?i)\b(samsung|apple|iphone|xiaomi|redmi|oneplus|vivo|oppo|realme|lg|sony|dell|hp|lenovo|asus|whirlpool|voltas|haier)\b`)},
	},
	store.CategoryFurniture: {
		{"itemType", regexp.MustCompile(`(?i)\b(sofa|bed|table|chair|wardrobe|almirah|mattress|desk|shelf|bookshelf|dining set|cupboard)\b`)},
		{"material", regexp.MustCompile(`(?i)\b(wood|wooden|teak|sheesham|metal|steel|plastic|leather)\b`)},
	},
	store.CategoryJob: {
		{"position", regexp.MustCompile(`(?i)\b(driver|cook|maid|guard|watchman|delivery boy|delivery|helper|salesman|receptionist|accountant|telecaller|peon|waiter|manager|tailor)\b`)},
		{"jobType", regexp.MustCompile(`(?i)\b(full[- ]?time|part[- ]?time|contract|temporary|permanent)\b`)},
	},
	store.CategoryCommodity: {
		{"commodityType", regexp.MustCompile(`(?i)\b(rice|wheat|atta|dal|pulses|vegetables|onion|potato|tomato|milk|ghee|sugar|oil|eggs|fruits|mango|banana)\b`)},
	},
}
