// Package schema holds the per-category declarative field definitions that
// drive the posting dialogue: which fields are required, in what order they
// are asked, the question for each, and optional validators.
package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"wa-bazaar-be/pkg/dialog/fieldpath"
	"wa-bazaar-be/pkg/store"
)

// Field describes a single collectable field.
type Field struct {
	Question string
	Label    string // human-readable label for summaries
	// Validate rejects an unusable answer. A nil Validate accepts anything.
	Validate func(answer string) error
	// Hint is appended to the question when re-asking after a rejected answer.
	Hint string
}

// CategorySchema defines the fields of one listing category. The order of
// Required is normative - it is the question sequence.
type CategorySchema struct {
	Required []string
	Optional []string
	Fields   map[string]Field
}

var ErrUnknownCategory = errors.New("unknown category")

// DataPath maps a schema field path to its location inside draft data.
// "location.*" paths resolve against the shared location object; everything
// else lives under the category's own namespace.
func DataPath(category, path string) string {
	if strings.HasPrefix(path, "location.") {
		return path
	}
	return category + "." + path
}

// Get returns the schema for a category.
func Get(category string) (CategorySchema, bool) {
	s, ok := registry[category]
	return s, ok
}

// NextRequiredField scans the category's required paths in declared order
// and returns the first whose value in data is missing or blank. An empty
// return means every required field is filled - the completion signal.
func NextRequiredField(category string, data map[string]interface{}) (string, error) {
	s, ok := registry[category]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	for _, path := range s.Required {
		if fieldpath.IsBlank(data, DataPath(category, path)) {
			return path, nil
		}
	}
	return "", nil
}

// QuestionFor returns the configured question for a field path, with the
// hint appended when reasking is true.
func QuestionFor(category, path string, reasking bool) string {
	s, ok := registry[category]
	if !ok {
		return "Please provide " + path + "."
	}
	f, ok := s.Fields[path]
	if !ok {
		return "Please provide " + path + "."
	}
	if reasking && f.Hint != "" {
		return f.Question + " " + f.Hint
	}
	return f.Question
}

// ValidateAnswer runs the field's validator, if any.
func ValidateAnswer(category, path, answer string) error {
	s, ok := registry[category]
	if !ok {
		return nil
	}
	f, ok := s.Fields[path]
	if !ok || f.Validate == nil {
		return nil
	}
	return f.Validate(answer)
}

// LabelFor returns the summary label of a field path.
func LabelFor(category, path string) string {
	if s, ok := registry[category]; ok {
		if f, ok := s.Fields[path]; ok && f.Label != "" {
			return f.Label
		}
	}
	return path
}

// PrimaryTypeField names the field whose value derives the listing
// sub-category and title for each category.
func PrimaryTypeField(category string) string {
	switch category {
	case store.CategoryHousing:
		return "propertyType"
	case store.CategoryUrbanHelp:
		return "serviceType"
	case store.CategoryVehicle:
		return "vehicleType"
	case store.CategoryElectronics, store.CategoryFurniture:
		return "itemType"
	case store.CategoryJob:
		return "position"
	case store.CategoryCommodity:
		return "commodityType"
	}
	return ""
}

// Validators

func validateNumeric(answer string) error {
	cleaned := strings.TrimSpace(answer)
	if cleaned == "" {
		return errors.New("empty value")
	}
	// Suffixed amounts ("15 lakh", "50k") are normalized downstream; here we
	// only reject answers with no digits at all.
	for _, r := range cleaned {
		if r >= '0' && r <= '9' {
			return nil
		}
	}
	return errors.New("expected a number")
}

func validateBHK(answer string) error {
	cleaned := strings.TrimSpace(strings.ToLower(answer))
	cleaned = strings.TrimSpace(strings.TrimSuffix(cleaned, "bhk"))
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return errors.New("expected a BHK count like 2 or 2BHK")
	}
	if n < 1 || n > 10 {
		return errors.New("BHK count out of range")
	}
	return nil
}

func validateYear(answer string) error {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return errors.New("expected a year")
	}
	if n < 1980 || n > time.Now().Year()+1 {
		return errors.New("year out of range")
	}
	return nil
}

var registry = map[string]CategorySchema{
	store.CategoryHousing: {
		Required: []string{"propertyType", "bhk", "location.area", "price", "description"},
		Optional: []string{"furnishing", "location.city"},
		Fields: map[string]Field{
			"propertyType": {
				Question: "What type of property is it? (flat / house / villa / PG / plot / room)",
				Label:    "Property",
			},
			"bhk": {
				Question: "How many BHK?",
				Label:    "BHK",
				Validate: validateBHK,
				Hint:     "Reply with a number, e.g. 2 or 2BHK.",
			},
			"location.area": {
				Question: "Which area or locality is the property in?",
				Label:    "Location",
			},
			"price": {
				Question: "What is the expected price or rent?",
				Label:    "Price",
				Validate: validateNumeric,
				Hint:     "Reply with an amount, e.g. 15000 or 15 lakh.",
			},
			"description": {
				Question: "Add a short description of the property.",
				Label:    "Details",
			},
			"furnishing": {
				Question: "Is it furnished, semi-furnished or unfurnished?",
				Label:    "Furnishing",
			},
			"location.city": {
				Question: "Which city?",
				Label:    "City",
			},
		},
	},
	store.CategoryUrbanHelp: {
		Required: []string{"serviceType", "location.area", "description"},
		Optional: []string{"experience", "charges"},
		Fields: map[string]Field{
			"serviceType": {
				Question: "What service do you provide? (plumber / electrician / maid / cook / driver ...)",
				Label:    "Service",
			},
			"location.area": {
				Question: "Which area do you work in?",
				Label:    "Location",
			},
			"description": {
				Question: "Tell us a bit about your work and availability.",
				Label:    "Details",
			},
			"experience": {
				Question: "How many years of experience do you have?",
				Label:    "Experience",
				Validate: validateNumeric,
				Hint:     "Reply with a number of years.",
			},
			"charges": {
				Question: "What are your usual charges?",
				Label:    "Charges",
				Validate: validateNumeric,
				Hint:     "Reply with an amount.",
			},
		},
	},
	store.CategoryVehicle: {
		Required: []string{"vehicleType", "brand", "price", "location.area", "description"},
		Optional: []string{"year", "kmDriven"},
		Fields: map[string]Field{
			"vehicleType": {
				Question: "What type of vehicle? (car / bike / scooter / auto / truck)",
				Label:    "Vehicle",
			},
			"brand": {
				Question: "Which brand and model?",
				Label:    "Brand",
			},
			"price": {
				Question: "What is the asking price?",
				Label:    "Price",
				Validate: validateNumeric,
				Hint:     "Reply with an amount, e.g. 2.5 lakh.",
			},
			"location.area": {
				Question: "Which area is the vehicle in?",
				Label:    "Location",
			},
			"description": {
				Question: "Add a short description (condition, ownership, etc).",
				Label:    "Details",
			},
			"year": {
				Question: "Which year is the vehicle?",
				Label:    "Year",
				Validate: validateYear,
				Hint:     "Reply with a year like 2019.",
			},
			"kmDriven": {
				Question: "How many kilometres driven?",
				Label:    "Driven",
				Validate: validateNumeric,
				Hint:     "Reply with a number.",
			},
		},
	},
	store.CategoryElectronics: {
		Required: []string{"itemType", "brand", "price", "location.area", "description"},
		Optional: []string{"age"},
		Fields: map[string]Field{
			"itemType": {
				Question: "What item is it? (phone / laptop / TV / fridge / AC / washing machine)",
				Label:    "Item",
			},
			"brand": {
				Question: "Which brand?",
				Label:    "Brand",
			},
			"price": {
				Question: "What is the asking price?",
				Label:    "Price",
				Validate: validateNumeric,
				Hint:     "Reply with an amount.",
			},
			"location.area": {
				Question: "Which area are you in?",
				Label:    "Location",
			},
			"description": {
				Question: "Add a short description (condition, warranty, etc).",
				Label:    "Details",
			},
			"age": {
				Question: "How old is the item?",
				Label:    "Age",
			},
		},
	},
	store.CategoryFurniture: {
		Required: []string{"itemType", "price", "location.area", "description"},
		Optional: []string{"material"},
		Fields: map[string]Field{
			"itemType": {
				Question: "What furniture is it? (sofa / bed / table / chair / wardrobe / mattress)",
				Label:    "Item",
			},
			"price": {
				Question: "What is the asking price?",
				Label:    "Price",
				Validate: validateNumeric,
				Hint:     "Reply with an amount.",
			},
			"location.area": {
				Question: "Which area are you in?",
				Label:    "Location",
			},
			"description": {
				Question: "Add a short description (condition, size, etc).",
				Label:    "Details",
			},
			"material": {
				Question: "What material is it made of?",
				Label:    "Material",
			},
		},
	},
	store.CategoryJob: {
		Required: []string{"position", "jobType", "salary", "location.area", "description"},
		Optional: []string{},
		Fields: map[string]Field{
			"position": {
				Question: "What is the job position or role?",
				Label:    "Position",
			},
			"jobType": {
				Question: "Is it full time or part time?",
				Label:    "Type",
			},
			"salary": {
				Question: "What is the offered salary?",
				Label:    "Salary",
				Validate: validateNumeric,
				Hint:     "Reply with an amount, e.g. 18000.",
			},
			"location.area": {
				Question: "Which area is the job in?",
				Label:    "Location",
			},
			"description": {
				Question: "Describe the job requirements briefly.",
				Label:    "Details",
			},
		},
	},
	store.CategoryCommodity: {
		Required: []string{"commodityType", "quantity", "price", "location.area", "description"},
		Optional: []string{"unit"},
		Fields: map[string]Field{
			"commodityType": {
				Question: "What commodity are you selling? (rice / wheat / vegetables / milk ...)",
				Label:    "Commodity",
			},
			"quantity": {
				Question: "What quantity is available?",
				Label:    "Quantity",
				Validate: validateNumeric,
				Hint:     "Reply with a number, e.g. 50.",
			},
			"price": {
				Question: "What is the price?",
				Label:    "Price",
				Validate: validateNumeric,
				Hint:     "Reply with an amount.",
			},
			"location.area": {
				Question: "Which area are you in?",
				Label:    "Location",
			},
			"description": {
				Question: "Add a short description (quality, delivery, etc).",
				Label:    "Details",
			},
			"unit": {
				Question: "What unit is the quantity in? (kg / quintal / litre)",
				Label:    "Unit",
			},
		},
	},
}
