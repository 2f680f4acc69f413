package scoring

import (
	"testing"

	"github.com/google/uuid"

	"wa-bazaar-be/internal/entity"
)

func makeListing(category string, data map[string]interface{}, contact string) *entity.Listing {
	return &entity.Listing{
		Id:       uuid.New(),
		Status:   entity.ListingStatusActive,
		Category: category,
		Data:     data,
		Contact:  contact,
	}
}

func TestScoreCityAndArea(t *testing.T) {
	listing := makeListing("housing", map[string]interface{}{
		"housing":  map[string]interface{}{"propertyType": "flat", "price": float64(14000)},
		"location": map[string]interface{}{"city": "Noida", "area": "Sector 62"},
	}, "")

	cases := []struct {
		name  string
		query map[string]interface{}
		want  int
	}{
		{"exact city", map[string]interface{}{"city": "noida"}, pointsCityExact},
		{"partial area", map[string]interface{}{"location": "sector"}, pointsAreaPartial},
		{"exact area", map[string]interface{}{"location": "sector 62"}, pointsAreaExact},
		{"no match", map[string]interface{}{"city": "delhi"}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Score(listing, c.query); got != c.want {
				t.Errorf("Score(%v) = %d, want %d", c.query, got, c.want)
			}
		})
	}
}

func TestScoreCityFallsBackToArea(t *testing.T) {
	// No stored city: the city signal should still fire on the area.
	listing := makeListing("urban_help", map[string]interface{}{
		"urban_help": map[string]interface{}{"serviceType": "plumber"},
		"location":   map[string]interface{}{"area": "Indirapuram"},
	}, "")

	if got := Score(listing, map[string]interface{}{"city": "indirapuram"}); got != pointsCityExact {
		t.Errorf("Score = %d, want %d", got, pointsCityExact)
	}
}

func TestScoreBudget(t *testing.T) {
	within := makeListing("housing", map[string]interface{}{
		"housing":  map[string]interface{}{"price": float64(14000)},
		"location": map[string]interface{}{"city": "Noida"},
	}, "")
	near := makeListing("housing", map[string]interface{}{
		"housing":  map[string]interface{}{"price": float64(17000)},
		"location": map[string]interface{}{"city": "Noida"},
	}, "")
	over := makeListing("housing", map[string]interface{}{
		"housing":  map[string]interface{}{"price": float64(20000)},
		"location": map[string]interface{}{"city": "Noida"},
	}, "")

	query := map[string]interface{}{"city": "noida", "budget": float64(15000)}

	sWithin := Score(within, query)
	sNear := Score(near, query)
	sOver := Score(over, query)

	if !(sWithin > sNear && sNear > sOver) {
		t.Errorf("budget ordering broken: within=%d near=%d over=%d", sWithin, sNear, sOver)
	}
	if sWithin-sOver != pointsBudgetFull {
		t.Errorf("within-budget bonus = %d, want %d", sWithin-sOver, pointsBudgetFull)
	}
	// Scenario: identical Noida listings at 14000 vs 20000 against a
	// 15000 budget - the affordable one must rank higher.
	results := Search([]*entity.Listing{over, within}, query, Options{})
	if len(results) != 2 || results[0] != within {
		t.Fatalf("Search did not rank the within-budget listing first")
	}
}

func TestScoreBHKAndType(t *testing.T) {
	listing := makeListing("housing", map[string]interface{}{
		"housing":  map[string]interface{}{"propertyType": "flat", "bhk": float64(2)},
		"location": map[string]interface{}{"city": "Noida"},
	}, "9876543210")
	listing.SubCategory = "flat"

	got := Score(listing, map[string]interface{}{"type": "flat", "bhk": float64(2)})
	want := pointsTypeExact + pointsBHK + pointsContactBonus
	if got != want {
		t.Errorf("Score = %d, want %d", got, want)
	}

	if got := Score(listing, map[string]interface{}{"bhk": float64(3)}); got != pointsContactBonus {
		t.Errorf("mismatched bhk scored %d, want contact bonus only %d", got, pointsContactBonus)
	}
}

func TestScoreDescriptionTokens(t *testing.T) {
	listing := makeListing("vehicle", map[string]interface{}{
		"vehicle":  map[string]interface{}{"description": "Well maintained Honda City, single owner"},
		"location": map[string]interface{}{"city": "Meerut"},
	}, "")

	got := Score(listing, map[string]interface{}{"keywords": "honda owner"})
	if got != 2*pointsToken {
		t.Errorf("Score = %d, want %d", got, 2*pointsToken)
	}
	// Short tokens are skipped.
	if got := Score(listing, map[string]interface{}{"keywords": "a an"}); got != 0 {
		t.Errorf("short tokens scored %d, want 0", got)
	}
}

func TestSearchThresholdFiltersNoise(t *testing.T) {
	relevant := makeListing("urban_help", map[string]interface{}{
		"urban_help": map[string]interface{}{"serviceType": "plumber"},
		"location":   map[string]interface{}{"city": "Noida"},
	}, "")
	noise := makeListing("furniture", map[string]interface{}{
		"furniture": map[string]interface{}{"itemType": "sofa"},
		"location":  map[string]interface{}{"city": "Pune"},
	}, "9876543210")

	results := Search([]*entity.Listing{noise, relevant}, map[string]interface{}{"city": "noida"}, Options{})
	if len(results) != 1 || results[0] != relevant {
		t.Fatalf("threshold did not filter the contact-bonus-only listing, got %d results", len(results))
	}

	// Empty query: everything passes.
	results = Search([]*entity.Listing{noise, relevant}, map[string]interface{}{}, Options{})
	if len(results) != 2 {
		t.Errorf("empty query returned %d results, want 2", len(results))
	}
}

func TestSearchStableOrderAndCap(t *testing.T) {
	listings := make([]*entity.Listing, 60)
	for i := range listings {
		listings[i] = makeListing("housing", map[string]interface{}{
			"housing":  map[string]interface{}{},
			"location": map[string]interface{}{"city": "Noida"},
		}, "")
	}

	results := Search(listings, map[string]interface{}{"city": "noida"}, Options{MaxResults: 10})
	if len(results) != MinResultCap {
		t.Fatalf("cap = %d results, want %d", len(results), MinResultCap)
	}
	// Equal scores keep input order.
	for i := 0; i < MinResultCap; i++ {
		if results[i] != listings[i] {
			t.Fatalf("stable sort broken at index %d", i)
		}
	}
}
