package summary

import (
	"strings"
	"testing"

	"wa-bazaar-be/pkg/store"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{25000000, "2.5 Cr"},
		{10000000, "1 Cr"},
		{1500000, "15 Lakh"},
		{150000, "1.5 Lakh"},
		{50000, "50K"},
		{15000, "15K"},
		{1500, "1.5K"},
		{999, "999"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.amount); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestGroupIndian(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{123, "123"},
		{1234, "1,234"},
		{123456, "1,23,456"},
		{1234567, "12,34,567"},
	}
	for _, tt := range tests {
		if got := groupIndian(tt.n); got != tt.want {
			t.Errorf("groupIndian(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestBuildUrbanHelpSummary(t *testing.T) {
	data := map[string]interface{}{
		store.CategoryUrbanHelp: map[string]interface{}{
			"serviceType": "plumber",
			"description": "available all week",
		},
		"location": map[string]interface{}{"area": "Noida"},
	}

	got := Build(store.CategoryUrbanHelp, data)

	for _, want := range []string{"Service:", "Plumber", "Location: Noida", "publish"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestBuildFormatsAmounts(t *testing.T) {
	data := map[string]interface{}{
		store.CategoryHousing: map[string]interface{}{
			"propertyType": "flat",
			"bhk":          "2",
			"price":        float64(1500000),
			"description":  "near metro",
		},
		"location": map[string]interface{}{"area": "Indirapuram"},
	}

	got := Build(store.CategoryHousing, data)
	if !strings.Contains(got, "15 Lakh") {
		t.Errorf("summary should format price as 15 Lakh:\n%s", got)
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name     string
		category string
		data     map[string]interface{}
		want     string
	}{
		{
			name:     "service title",
			category: store.CategoryUrbanHelp,
			data: map[string]interface{}{
				store.CategoryUrbanHelp: map[string]interface{}{"serviceType": "plumber"},
				"location":              map[string]interface{}{"area": "Noida"},
			},
			want: "Plumber in Noida",
		},
		{
			name:     "housing title includes bhk",
			category: store.CategoryHousing,
			data: map[string]interface{}{
				store.CategoryHousing: map[string]interface{}{"propertyType": "flat", "bhk": "2"},
				"location":            map[string]interface{}{"area": "Indirapuram"},
			},
			want: "2 BHK Flat in Indirapuram",
		},
		{
			name:     "missing area falls back to type only",
			category: store.CategoryUrbanHelp,
			data: map[string]interface{}{
				store.CategoryUrbanHelp: map[string]interface{}{"serviceType": "electrician"},
				"location":              map[string]interface{}{},
			},
			want: "Electrician",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Title(tt.category, tt.data); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}
