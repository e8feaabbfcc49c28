package notion

import (
	"fmt"
	"strings"
	"time"

	"quoteshare/internal/domain/quote"
	"quoteshare/internal/pkg/errs"

	"github.com/google/uuid"
)

// PropertyMapping declares which named external property feeds each canonical
// quote field. Optional fields left empty are skipped.
type PropertyMapping struct {
	QuoteNumber   string
	ClientName    string
	ClientContact string
	ClientPhone   string
	ClientEmail   string
	TotalAmount   string
	IssueDate     string
	ValidUntil    string
	Notes         string
	// Items names a property whose text holds line items (JSON array or
	// pipe-delimited lines). Unset leaves items empty.
	Items  string
	Status string
}

// DefaultMapping matches the Korean property names of the stock quote
// database template.
var DefaultMapping = PropertyMapping{
	QuoteNumber:   "견적서 번호",
	ClientName:    "클라이언트",
	ClientContact: "담당자",
	ClientPhone:   "연락처",
	ClientEmail:   "이메일",
	TotalAmount:   "총 금액",
	IssueDate:     "발행일",
	ValidUntil:    "유효기간",
	Notes:         "비고",
	Status:        "상태",
}

// StatusPropertyName is the select property written on status write-back.
const StatusPropertyName = "상태"

// MapPage converts one Notion page into the canonical quote input. Pure
// function of its inputs except for the synthetic quote number, which falls
// back to the current time when the source holds none. Accessors tolerate
// mismatched property types, so a partially restructured database degrades
// to defaults instead of failing the record; only a record without a usable
// property bag is rejected.
func MapPage(page Page, ownerID uuid.UUID, mapping PropertyMapping, now time.Time) (quote.CanonicalInput, error) {
	if page.ID == "" {
		return quote.CanonicalInput{}, errs.New("page has no id")
	}
	if len(page.Properties) == 0 {
		return quote.CanonicalInput{}, errs.Newf("page %s has no properties", page.ID)
	}

	props := page.Properties

	quoteNumber := firstNonEmpty(
		GetTitle(PropertyByName(props, mapping.QuoteNumber)),
		GetRichText(PropertyByName(props, mapping.QuoteNumber)),
	)
	if quoteNumber == "" {
		quoteNumber = fmt.Sprintf("Q-%d", now.UnixMilli())
	}

	clientName := firstNonEmpty(
		GetTitle(PropertyByName(props, mapping.ClientName)),
		GetRichText(PropertyByName(props, mapping.ClientName)),
	)
	if clientName == "" {
		clientName = "미지정"
	}

	input := quote.CanonicalInput{
		UserID:       ownerID,
		NotionPageID: page.ID,
		QuoteNumber:  quoteNumber,
		ClientName:   clientName,
		Items:        []quote.Item{},
		IssueDate:    now,
		Status:       quote.StatusFromLabel(GetSelect(PropertyByName(props, mapping.Status))),
	}

	if mapping.ClientContact != "" {
		input.ClientContact = optional(firstNonEmpty(
			GetRichText(PropertyByName(props, mapping.ClientContact)),
			GetTitle(PropertyByName(props, mapping.ClientContact)),
		))
	}
	if mapping.ClientPhone != "" {
		input.ClientPhone = optional(firstNonEmpty(
			GetPhone(PropertyByName(props, mapping.ClientPhone)),
			GetRichText(PropertyByName(props, mapping.ClientPhone)),
		))
	}
	if mapping.ClientEmail != "" {
		input.ClientEmail = optional(firstNonEmpty(
			GetEmail(PropertyByName(props, mapping.ClientEmail)),
			GetRichText(PropertyByName(props, mapping.ClientEmail)),
		))
	}

	if amount := GetNumber(PropertyByName(props, mapping.TotalAmount)); amount != nil && *amount > 0 {
		input.TotalAmount = *amount
	}

	if issued := GetDate(PropertyByName(props, mapping.IssueDate)); issued != nil {
		input.IssueDate = *issued
	}
	if mapping.ValidUntil != "" {
		input.ValidUntil = GetDate(PropertyByName(props, mapping.ValidUntil))
	}
	if mapping.Notes != "" {
		input.Notes = optional(GetRichText(PropertyByName(props, mapping.Notes)))
	}

	if mapping.Items != "" {
		input.Items = parseItems(firstNonEmpty(
			GetRichText(PropertyByName(props, mapping.Items)),
			GetTitle(PropertyByName(props, mapping.Items)),
		))
	}

	return input, nil
}

// parseItems tries the JSON format first, then the pipe-delimited format.
func parseItems(text string) []quote.Item {
	if strings.TrimSpace(text) == "" {
		return []quote.Item{}
	}
	if items := quote.ParseItemsFromJSON(text); len(items) > 0 {
		return items
	}
	return quote.ParseItemsFromText(text)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
