// Package scoring ranks listings against a partial entity query with an
// additive point scheme. Scoring does the real filtering; the result cap
// only guards against pathological input sizes.
package scoring

import (
	"fmt"
	"sort"
	"strings"

	"wa-bazaar-be/internal/entity"
	"wa-bazaar-be/pkg/dialog/fieldpath"
)

// Point values per signal. Exact full-string matches outscore partial
// token matches of the same signal.
const (
	pointsCityExact    = 30
	pointsCityPartial  = 15
	pointsAreaExact    = 25
	pointsAreaPartial  = 12
	pointsTypeExact    = 20
	pointsTypePartial  = 10
	pointsBHK          = 15
	pointsToken        = 5
	pointsBudgetFull   = 20
	pointsBudgetNear   = 10
	pointsContactBonus = 5

	// budgetSlack: listings up to 20% over budget still earn partial points.
	budgetSlack = 1.2
)

// DefaultThreshold applies whenever the query carries at least one entity.
const DefaultThreshold = 10

// MinResultCap is the floor for the result cap: max(maxResults, 50).
const MinResultCap = 50

// Options tunes a Search call.
type Options struct {
	MaxResults int
	// Threshold overrides the default minimum score when >= 0.
	Threshold int
}

// Score computes the additive relevance of one listing for the query
// entities. Always >= 0.
func Score(listing *entity.Listing, query map[string]interface{}) int {
	score := 0

	city := strings.ToLower(fieldpath.GetString(listing.Data, "location.city"))
	area := strings.ToLower(fieldpath.GetString(listing.Data, "location.area"))

	if want := queryString(query, "city"); want != "" {
		score += matchPoints(city, want, pointsCityExact, pointsCityPartial)
		// The city signal also fires on the area when the stored city is
		// blank - users often give only a locality.
		if city == "" {
			score += matchPoints(area, want, pointsCityExact, pointsCityPartial)
		}
	}
	if want := queryString(query, "location"); want != "" {
		score += matchPoints(area, want, pointsAreaExact, pointsAreaPartial)
	}
	if want := queryString(query, "type"); want != "" {
		score += matchPoints(strings.ToLower(listing.SubCategory), want, pointsTypeExact, pointsTypePartial)
	}
	if want, ok := queryNumber(query, "bhk"); ok {
		if have, haveOk := listingNumber(listing, "bhk"); haveOk && have == want {
			score += pointsBHK
		}
	}
	if tokens := queryString(query, "keywords"); tokens != "" {
		description := strings.ToLower(fieldpath.GetString(listing.Data, listing.Category+".description"))
		title := strings.ToLower(listing.Title)
		for _, token := range strings.Fields(strings.ToLower(tokens)) {
			if len(token) < 3 {
				continue
			}
			if strings.Contains(description, token) || strings.Contains(title, token) {
				score += pointsToken
			}
		}
	}

	if budget, ok := queryNumber(query, "budget"); ok && budget > 0 {
		if price, priceOk := listingNumber(listing, "price"); priceOk && price > 0 {
			switch {
			case price <= budget:
				score += pointsBudgetFull
			case price <= budget*budgetSlack:
				score += pointsBudgetNear
			}
		}
	}

	if listing.Contact != "" {
		score += pointsContactBonus
	}

	return score
}

// Search scores every listing, filters by threshold, sorts descending by
// score (stable - equal scores keep their input order) and truncates to
// max(opts.MaxResults, 50).
func Search(listings []*entity.Listing, query map[string]interface{}, opts Options) []*entity.Listing {
	threshold := opts.Threshold
	if threshold < 0 || (threshold == 0 && len(query) > 0) {
		threshold = DefaultThreshold
	}
	if len(query) == 0 {
		threshold = 0
	}

	type rankedListing struct {
		listing *entity.Listing
		score   int
	}
	ranked := make([]rankedListing, 0, len(listings))
	for _, l := range listings {
		s := Score(l, query)
		if s >= threshold {
			ranked = append(ranked, rankedListing{listing: l, score: s})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	cap := opts.MaxResults
	if cap < MinResultCap {
		cap = MinResultCap
	}
	if len(ranked) > cap {
		ranked = ranked[:cap]
	}

	out := make([]*entity.Listing, len(ranked))
	for i, r := range ranked {
		out[i] = r.listing
	}
	return out
}

func queryString(query map[string]interface{}, key string) string {
	v, ok := query[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.ToLower(strings.TrimSpace(s))
	case []string:
		return strings.ToLower(strings.Join(s, " "))
	default:
		return strings.ToLower(strings.TrimSpace(fmt.Sprintf("%v", v)))
	}
}

func queryNumber(query map[string]interface{}, key string) (float64, bool) {
	return asNumber(query[key])
}

func listingNumber(listing *entity.Listing, field string) (float64, bool) {
	v, ok := fieldpath.Get(listing.Data, listing.Category+"."+field)
	if !ok {
		return 0, false
	}
	return asNumber(v)
}

func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		var f float64
		if _, err := fmt.Sscanf(strings.TrimSpace(n), "%g", &f); err == nil {
			return f, true
		}
	}
	return 0, false
}

// matchPoints scores a stored value against a wanted value: exact match
// earns full points, substring either way earns partial points.
func matchPoints(have, want string, exact, partial int) int {
	if have == "" || want == "" {
		return 0
	}
	if have == want {
		return exact
	}
	if strings.Contains(have, want) || strings.Contains(want, have) {
		return partial
	}
	return 0
}
