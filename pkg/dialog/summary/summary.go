// Package summary renders human-readable confirmations and titles for a
// draft before publishing, including Indian currency-style magnitudes.
package summary

import (
	"fmt"
	"strconv"
	"strings"

	"wa-bazaar-be/pkg/dialog/fieldpath"
	"wa-bazaar-be/pkg/dialog/schema"
)

// FormatAmount renders an amount with Indian magnitude suffixes:
// >= 1e7 Cr, >= 1e5 Lakh, >= 1e3 K, otherwise a grouped integer.
func FormatAmount(amount float64) string {
	switch {
	case amount >= 1e7:
		return trimZeros(fmt.Sprintf("%.2f", amount/1e7)) + " Cr"
	case amount >= 1e5:
		return trimZeros(fmt.Sprintf("%.2f", amount/1e5)) + " Lakh"
	case amount >= 1e3:
		return trimZeros(fmt.Sprintf("%.2f", amount/1e3)) + "K"
	default:
		return groupIndian(int64(amount))
	}
}

func trimZeros(s string) string {
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// groupIndian applies the Indian digit grouping (last three digits, then
// pairs): 1234567 -> 12,34,567.
func groupIndian(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	head := s[:len(s)-3]
	tail := s[len(s)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	out := strings.Join(parts, ",") + "," + tail
	if neg {
		return "-" + out
	}
	return out
}

// amountFields are rendered through FormatAmount in summaries.
var amountFields = map[string]bool{
	"price":   true,
	"salary":  true,
	"charges": true,
}

// IsAmountField reports whether a schema field path holds a rupee amount.
func IsAmountField(path string) bool {
	return amountFields[path]
}

// Build renders the confirmation summary for a draft: one line per required
// field in schema order, with labels and currency formatting, followed by
// any filled optional fields.
func Build(category string, data map[string]interface{}) string {
	s, ok := schema.Get(category)
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString("Here is your listing:\n")
	writeFieldLines(&b, category, s.Required, data)
	writeFieldLines(&b, category, s.Optional, data)
	b.WriteString("\nShall I publish it?")
	return b.String()
}

func writeFieldLines(b *strings.Builder, category string, paths []string, data map[string]interface{}) {
	for _, path := range paths {
		value := fieldValue(category, path, data)
		if value == "" {
			continue
		}
		fmt.Fprintf(b, "%s: %s\n", schema.LabelFor(category, path), value)
	}
}

func fieldValue(category, path string, data map[string]interface{}) string {
	raw, ok := fieldpath.Get(data, schema.DataPath(category, path))
	if !ok || raw == nil {
		return ""
	}
	switch v := raw.(type) {
	case float64:
		if amountFields[path] {
			return FormatAmount(v)
		}
		return trimZeros(fmt.Sprintf("%.2f", v))
	case int:
		if amountFields[path] {
			return FormatAmount(float64(v))
		}
		return strconv.Itoa(v)
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		return TitleCase(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// TitleCase uppercases the first letter of each word. Values arrive as
// free text from chat, so a light normalization keeps summaries tidy.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 && r[0] >= 'a' && r[0] <= 'z' {
			r[0] = r[0] - 32
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// Title derives a listing title from the category's primary type field and
// the location area, e.g. "Plumber in Noida" or "2 BHK Flat in Noida".
func Title(category string, data map[string]interface{}) string {
	primary := fieldpath.GetString(data, schema.DataPath(category, schema.PrimaryTypeField(category)))
	area := fieldpath.GetString(data, "location.area")

	head := TitleCase(primary)
	if category == "housing" {
		if bhk, ok := fieldpath.Get(data, schema.DataPath(category, "bhk")); ok && bhk != nil {
			head = fmt.Sprintf("%v BHK %s", bhk, head)
		}
	}
	if head == "" {
		head = TitleCase(strings.ReplaceAll(category, "_", " "))
	}
	if area == "" {
		return head
	}
	return head + " in " + TitleCase(area)
}
