package notion

import (
	"strings"
	"time"
)

// PropertyType discriminates the tagged union inside a page's property bag.
type PropertyType string

const (
	PropertyTitle       PropertyType = "title"
	PropertyRichText    PropertyType = "rich_text"
	PropertyNumber      PropertyType = "number"
	PropertySelect      PropertyType = "select"
	PropertyDate        PropertyType = "date"
	PropertyCheckbox    PropertyType = "checkbox"
	PropertyURL         PropertyType = "url"
	PropertyEmail       PropertyType = "email"
	PropertyPhoneNumber PropertyType = "phone_number"
)

type RichText struct {
	PlainText string `json:"plain_text"`
}

type SelectOption struct {
	Name string `json:"name"`
}

type DateValue struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// Property is one value from a page's property bag. Exactly one of the typed
// fields is populated, per Type; accessors on a mismatched type return the
// zero value instead of failing.
type Property struct {
	ID          string        `json:"id,omitempty"`
	Type        PropertyType  `json:"type"`
	Title       []RichText    `json:"title,omitempty"`
	RichText    []RichText    `json:"rich_text,omitempty"`
	Number      *float64      `json:"number,omitempty"`
	Select      *SelectOption `json:"select,omitempty"`
	Date        *DateValue    `json:"date,omitempty"`
	Checkbox    bool          `json:"checkbox,omitempty"`
	URL         *string       `json:"url,omitempty"`
	Email       *string       `json:"email,omitempty"`
	PhoneNumber *string       `json:"phone_number,omitempty"`
}

// Page is one record from a Notion database listing, observed immutably.
type Page struct {
	ID             string              `json:"id"`
	CreatedTime    time.Time           `json:"created_time"`
	LastEditedTime time.Time           `json:"last_edited_time"`
	Archived       bool                `json:"archived"`
	URL            string              `json:"url"`
	Properties     map[string]Property `json:"properties"`
}

// PropertyByName finds a property by name, exact match first, then
// case-insensitive.
func PropertyByName(properties map[string]Property, name string) (Property, bool) {
	if p, ok := properties[name]; ok {
		return p, true
	}

	lower := strings.ToLower(name)
	for key, p := range properties {
		if strings.ToLower(key) == lower {
			return p, true
		}
	}

	return Property{}, false
}

func joinPlainText(parts []RichText) string {
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(part.PlainText)
	}
	return b.String()
}

// GetTitle returns the concatenated plain text of a title property.
func GetTitle(p Property, ok bool) string {
	if !ok || p.Type != PropertyTitle {
		return ""
	}
	return joinPlainText(p.Title)
}

// GetRichText returns the concatenated plain text of a rich_text property.
func GetRichText(p Property, ok bool) string {
	if !ok || p.Type != PropertyRichText {
		return ""
	}
	return joinPlainText(p.RichText)
}

func GetNumber(p Property, ok bool) *float64 {
	if !ok || p.Type != PropertyNumber {
		return nil
	}
	return p.Number
}

func GetSelect(p Property, ok bool) string {
	if !ok || p.Type != PropertySelect || p.Select == nil {
		return ""
	}
	return p.Select.Name
}

// GetDate parses the start of a date property. Notion sends either a bare
// date or RFC3339 with time.
func GetDate(p Property, ok bool) *time.Time {
	if !ok || p.Type != PropertyDate || p.Date == nil || p.Date.Start == "" {
		return nil
	}

	if t, err := time.Parse(time.RFC3339, p.Date.Start); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", p.Date.Start); err == nil {
		return &t
	}
	return nil
}

func GetCheckbox(p Property, ok bool) bool {
	if !ok || p.Type != PropertyCheckbox {
		return false
	}
	return p.Checkbox
}

func GetURL(p Property, ok bool) string {
	if !ok || p.Type != PropertyURL || p.URL == nil {
		return ""
	}
	return *p.URL
}

func GetEmail(p Property, ok bool) string {
	if !ok || p.Type != PropertyEmail || p.Email == nil {
		return ""
	}
	return *p.Email
}

func GetPhone(p Property, ok bool) string {
	if !ok || p.Type != PropertyPhoneNumber || p.PhoneNumber == nil {
		return ""
	}
	return *p.PhoneNumber
}
