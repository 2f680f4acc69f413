package intent

import "wa-bazaar-be/pkg/store"

// Intent labels. Search-form labels are the classifier's base vocabulary;
// the offer/find context remaps them through contextRemap below.
const (
	IntentGreeting    = "greeting"
	IntentFarewell    = "farewell"
	IntentGeneralHelp = "general_help"

	IntentPropertySearch    = "property_search"
	IntentPropertySale      = "property_sale"
	IntentServiceRequest    = "service_request"
	IntentServiceOffer      = "service_offer"
	IntentVehicleSearch     = "vehicle_search"
	IntentVehicleSale       = "vehicle_sale"
	IntentElectronicsSearch = "electronics_search"
	IntentElectronicsSale   = "electronics_sale"
	IntentFurnitureSearch   = "furniture_search"
	IntentFurnitureSale     = "furniture_sale"
	IntentJobSearch         = "job_search"
	IntentJobOffer          = "job_offer"
	IntentCommoditySearch   = "commodity_search"
	IntentCommoditySale     = "commodity_sale"
)

// allIntents lists every label the classifier can emit, in a stable order.
var allIntents = []string{
	IntentGreeting, IntentFarewell, IntentGeneralHelp,
	IntentPropertySearch, IntentPropertySale,
	IntentServiceRequest, IntentServiceOffer,
	IntentVehicleSearch, IntentVehicleSale,
	IntentElectronicsSearch, IntentElectronicsSale,
	IntentFurnitureSearch, IntentFurnitureSale,
	IntentJobSearch, IntentJobOffer,
	IntentCommoditySearch, IntentCommoditySale,
}

// Labels returns a copy of every known intent label.
func Labels() []string {
	out := make([]string, len(allIntents))
	copy(out, allIntents)
	return out
}

// IsKnown reports whether label is a valid intent label.
func IsKnown(label string) bool {
	for _, l := range allIntents {
		if l == label {
			return true
		}
	}
	return false
}

// Confidence bounds.
const (
	FastPathConfidence  = 0.9
	ConfidenceThreshold = 0.3
	MinConfidence       = 0.1

	// alternativeMargin: a runner-up within this margin of the winner is
	// kept as an alternative for later disambiguation.
	alternativeMargin = 0.1
)

// contextRemap maps a base intent to its (offer, find) forms. The detected
// conversational context picks the column; no context leaves the intent as
// classified.
var contextRemap = map[string][2]string{
	IntentPropertySearch:    {IntentPropertySale, IntentPropertySearch},
	IntentPropertySale:      {IntentPropertySale, IntentPropertySearch},
	IntentServiceRequest:    {IntentServiceOffer, IntentServiceRequest},
	IntentServiceOffer:      {IntentServiceOffer, IntentServiceRequest},
	IntentVehicleSearch:     {IntentVehicleSale, IntentVehicleSearch},
	IntentVehicleSale:       {IntentVehicleSale, IntentVehicleSearch},
	IntentElectronicsSearch: {IntentElectronicsSale, IntentElectronicsSearch},
	IntentElectronicsSale:   {IntentElectronicsSale, IntentElectronicsSearch},
	IntentFurnitureSearch:   {IntentFurnitureSale, IntentFurnitureSearch},
	IntentFurnitureSale:     {IntentFurnitureSale, IntentFurnitureSearch},
	IntentJobSearch:         {IntentJobOffer, IntentJobSearch},
	IntentJobOffer:          {IntentJobOffer, IntentJobSearch},
	IntentCommoditySearch:   {IntentCommoditySale, IntentCommoditySearch},
	IntentCommoditySale:     {IntentCommoditySale, IntentCommoditySearch},
}

// RemapForContext resolves an intent through the offer/find table. Unknown
// intents and an empty context pass through unchanged.
func RemapForContext(base, context string) string {
	pair, ok := contextRemap[base]
	if !ok {
		return base
	}
	switch context {
	case store.ContextOffer:
		return pair[0]
	case store.ContextFind:
		return pair[1]
	default:
		return base
	}
}

// intentCategory maps intents to listing categories.
var intentCategory = map[string]string{
	IntentPropertySearch:    store.CategoryHousing,
	IntentPropertySale:      store.CategoryHousing,
	IntentServiceRequest:    store.CategoryUrbanHelp,
	IntentServiceOffer:      store.CategoryUrbanHelp,
	IntentVehicleSearch:     store.CategoryVehicle,
	IntentVehicleSale:       store.CategoryVehicle,
	IntentElectronicsSearch: store.CategoryElectronics,
	IntentElectronicsSale:   store.CategoryElectronics,
	IntentFurnitureSearch:   store.CategoryFurniture,
	IntentFurnitureSale:     store.CategoryFurniture,
	IntentJobSearch:         store.CategoryJob,
	IntentJobOffer:          store.CategoryJob,
	IntentCommoditySearch:   store.CategoryCommodity,
	IntentCommoditySale:     store.CategoryCommodity,
}

// CategoryFor returns the listing category an intent belongs to, or "".
func CategoryFor(intent string) string {
	return intentCategory[intent]
}

// postingIntents is the whitelist of intents that mean the user is posting
// (offering) rather than searching.
var postingIntents = map[string]bool{
	IntentPropertySale:    true,
	IntentServiceOffer:    true,
	IntentVehicleSale:     true,
	IntentElectronicsSale: true,
	IntentFurnitureSale:   true,
	IntentJobOffer:        true,
	IntentCommoditySale:   true,
}

// IsPostingIntent reports whether the intent is in the posting whitelist.
func IsPostingIntent(intent string) bool {
	return postingIntents[intent]
}
