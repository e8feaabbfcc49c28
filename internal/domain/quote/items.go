package quote

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Item is one line item on a quote. Amount is quantity times unit price.
type Item struct {
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

var nonDigits = regexp.MustCompile(`[^0-9]`)

// ParseItemsFromText parses line items from plain text, one item per line in
// the form "name | quantity | unitPrice | [description]". A line holding only
// a name becomes a quantity-1, zero-price item. Malformed lines are skipped.
func ParseItemsFromText(text string) []Item {
	if strings.TrimSpace(text) == "" {
		return []Item{}
	}

	items := []Item{}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.Split(line, "|")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		switch {
		case len(parts) >= 3:
			quantity, err := strconv.Atoi(parts[1])
			if err != nil || quantity <= 0 {
				quantity = 1
			}
			unitPrice, err := strconv.ParseFloat(nonDigits.ReplaceAllString(parts[2], ""), 64)
			if err != nil {
				unitPrice = 0
			}

			item := Item{
				Name:      parts[0],
				Quantity:  quantity,
				UnitPrice: unitPrice,
				Amount:    float64(quantity) * unitPrice,
			}
			if len(parts) >= 4 {
				item.Description = parts[3]
			}
			items = append(items, item)

		case len(parts) == 1 && parts[0] != "":
			items = append(items, Item{Name: parts[0], Quantity: 1})
		}
	}

	return items
}

// ParseItemsFromJSON parses line items from a JSON array of objects. Entries
// without a name are skipped; malformed JSON yields an empty slice.
func ParseItemsFromJSON(raw string) []Item {
	var rawEntries []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &rawEntries); err != nil {
		return []Item{}
	}

	items := []Item{}
	for _, rawEntry := range rawEntries {
		var e struct {
			Name        string  `json:"name"`
			Quantity    float64 `json:"quantity"`
			UnitPrice   float64 `json:"unitPrice"`
			Amount      float64 `json:"amount"`
			Description string  `json:"description"`
		}
		if err := json.Unmarshal(rawEntry, &e); err != nil || e.Name == "" {
			continue
		}

		quantity := int(e.Quantity)
		if quantity <= 0 {
			quantity = 1
		}

		items = append(items, Item{
			Name:        e.Name,
			Quantity:    quantity,
			UnitPrice:   e.UnitPrice,
			Amount:      e.Amount,
			Description: e.Description,
		})
	}

	return items
}
