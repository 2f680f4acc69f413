package intent

// trainingCorpus holds example utterances per intent for the statistical
// fallback. Loaded once at init into the term index; never mutated at
// runtime.
var trainingCorpus = map[string][]string{
	IntentGreeting: {
		"hi there",
		"hello bhai",
		"namaste ji",
		"good morning",
		"vanakkam",
	},
	IntentFarewell: {
		"bye for now",
		"goodbye thank you",
		"alvida dost",
		"talk to you later bye",
	},
	IntentGeneralHelp: {
		"what can you do",
		"how does this work",
		"help me please",
		"what is this service",
		"kaise kaam karta hai",
	},
	IntentPropertySearch: {
		"need a flat on rent",
		"looking for 2 bhk apartment",
		"want a room near my office",
		"ghar chahiye kiraye par",
		"searching for pg accommodation",
		"any house available for rent",
		"flat chahiye noida me",
	},
	IntentPropertySale: {
		"want to rent out my flat",
		"selling my house",
		"flat available for rent",
		"makaan bechna hai",
		"plot for sale urgent",
		"room available in my house",
	},
	IntentServiceRequest: {
		"need a plumber urgently",
		"looking for a maid for cleaning",
		"electrician chahiye",
		"want a cook for daily meals",
		"need driver for office pickup",
		"ac repair wala chahiye",
	},
	IntentServiceOffer: {
		"i am a plumber",
		"i do electrical work",
		"i provide home cleaning service",
		"main driver hoon kaam chahiye",
		"i am a carpenter with experience",
		"cook available for homes",
	},
	IntentVehicleSearch: {
		"want to buy a second hand car",
		"looking for used bike",
		"scooty chahiye sasti",
		"need an auto for purchase",
		"koi achhi gaadi batao",
	},
	IntentVehicleSale: {
		"selling my car",
		"bike for sale good condition",
		"want to sell my scooter",
		"gaadi bechni hai",
		"auto for sale urgent",
	},
	IntentElectronicsSearch: {
		"want to buy a used phone",
		"looking for second hand laptop",
		"need a fridge cheap",
		"purana tv chahiye",
	},
	IntentElectronicsSale: {
		"selling my phone",
		"laptop for sale barely used",
		"want to sell washing machine",
		"fridge bechna hai",
	},
	IntentFurnitureSearch: {
		"need a sofa set",
		"looking for used bed",
		"want to buy study table",
		"purana furniture chahiye",
	},
	IntentFurnitureSale: {
		"selling my sofa",
		"bed for sale with mattress",
		"wardrobe bechna hai",
		"dining table for sale",
	},
	IntentJobSearch: {
		"i need a job",
		"looking for work as driver",
		"naukri chahiye koi bhi",
		"part time kaam chahiye",
		"any job opening for helper",
	},
	IntentJobOffer: {
		"hiring delivery boys",
		"need staff for my shop",
		"vacancy for cook in restaurant",
		"driver ki naukri hai",
		"looking to hire a maid",
	},
	IntentCommoditySearch: {
		"want to buy rice in bulk",
		"need fresh vegetables daily",
		"atta chahiye wholesale",
		"looking for milk supplier",
	},
	IntentCommoditySale: {
		"selling rice wholesale",
		"fresh vegetables for sale",
		"milk supply available",
		"wheat bechna hai direct farm",
	},
}
