package extract

import (
	"reflect"
	"testing"

	"wa-bazaar-be/pkg/store"
)

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		text   string
		want   float64
		wantOk bool
	}{
		{"15 lakh", 1500000, true},
		{"2.5 cr", 25000000, true},
		{"50k", 50000, true},
		{"15000", 15000, true},
		{"Rs 12000", 12000, true},
		{"₹ 3 crore", 30000000, true},
		{"1.5 lacs", 150000, true},
		{"2 thousand", 2000, true},
		{"no numbers here", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := NormalizePrice(tt.text)
			if ok != tt.wantOk {
				t.Fatalf("NormalizePrice(%q) ok = %v, want %v", tt.text, ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Errorf("NormalizePrice(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractIdempotent(t *testing.T) {
	text := "2 BHK flat for rent in Indirapuram, 15000 rent, call 9876543210"
	first := Extract(text, store.CategoryHousing)
	second := Extract(text, store.CategoryHousing)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("extraction not idempotent:\n%v\n%v", first, second)
	}
}

func TestExtractHousing(t *testing.T) {
	text := "2 BHK furnished flat for rent in Indirapuram at 15000, call 9876543210"
	got := Extract(text, store.CategoryHousing)

	if got["propertyType"] != "flat" {
		t.Errorf("propertyType = %v, want flat", got["propertyType"])
	}
	if got["bhk"] != float64(2) {
		t.Errorf("bhk = %v, want 2", got["bhk"])
	}
	if got["furnishing"] != "furnished" {
		t.Errorf("furnishing = %v, want furnished", got["furnishing"])
	}
	if got["location"] != "Indirapuram" {
		t.Errorf("location = %v, want Indirapuram", got["location"])
	}
	if got["price"] != float64(15000) {
		t.Errorf("price = %v, want 15000", got["price"])
	}
	if got["phone"] != "9876543210" {
		t.Errorf("phone = %v, want 9876543210", got["phone"])
	}
}

func TestExtractUrbanHelp(t *testing.T) {
	got := Extract("I am a plumber in Noida with 5 years experience", store.CategoryUrbanHelp)

	if got["serviceType"] != "plumber" {
		t.Errorf("serviceType = %v, want plumber", got["serviceType"])
	}
	if got["location"] != "Noida" {
		t.Errorf("location = %v, want Noida", got["location"])
	}
	if got["experience"] != "5" {
		t.Errorf("experience = %v, want 5", got["experience"])
	}
}

func TestExtractSuffixedPriceBeatsBareNumber(t *testing.T) {
	got := Extract("3 BHK villa in Gurgaon for 2.5 cr", store.CategoryHousing)
	if got["price"] != float64(25000000) {
		t.Errorf("price = %v, want 25000000", got["price"])
	}
}

func TestExtractVehicle(t *testing.T) {
	got := Extract("selling my 2019 maruti car in Pune for 3 lakh", store.CategoryVehicle)

	if got["vehicleType"] != "car" {
		t.Errorf("vehicleType = %v, want car", got["vehicleType"])
	}
	if got["brand"] != "maruti" {
		t.Errorf("brand = %v, want maruti", got["brand"])
	}
	if got["year"] != "2019" {
		t.Errorf("year = %v, want 2019", got["year"])
	}
	if got["price"] != float64(300000) {
		t.Errorf("price = %v, want 300000", got["price"])
	}
}

func TestExtractCommodityQuantity(t *testing.T) {
	got := Extract("selling 50 kg rice in Meerut for 2000", store.CategoryCommodity)

	if got["commodityType"] != "rice" {
		t.Errorf("commodityType = %v, want rice", got["commodityType"])
	}
	if got["quantity"] != float64(50) {
		t.Errorf("quantity = %v, want 50", got["quantity"])
	}
	if got["unit"] != "kg" {
		t.Errorf("unit = %v, want kg", got["unit"])
	}
}

func TestExtractEmptyAndMalformed(t *testing.T) {
	if got := Extract("", store.CategoryHousing); len(got) != 0 {
		t.Errorf("empty text should yield no entities, got %v", got)
	}
	if got := Extract("   ", ""); len(got) != 0 {
		t.Errorf("blank text should yield no entities, got %v", got)
	}
	// Unknown category still runs the common extractors.
	got := Extract("room in Noida for 8000", "unknown_category")
	if got["location"] != "Noida" {
		t.Errorf("location = %v, want Noida", got["location"])
	}
}

func TestExtractCollapsesSingleMatch(t *testing.T) {
	got := Extract("sofa and bed for sale in Pune", store.CategoryFurniture)
	values, ok := got["itemType"].([]string)
	if !ok {
		t.Fatalf("itemType = %T, want []string for multiple matches", got["itemType"])
	}
	if !reflect.DeepEqual(values, []string{"sofa", "bed"}) {
		t.Errorf("itemType = %v, want [sofa bed]", values)
	}

	single := Extract("sofa for sale in Pune", store.CategoryFurniture)
	if single["itemType"] != "sofa" {
		t.Errorf("single match should collapse to scalar, got %v", single["itemType"])
	}
}
