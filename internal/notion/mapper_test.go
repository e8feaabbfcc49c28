//go:build unit

package notion_test

import (
	"fmt"
	"testing"
	"time"

	"quoteshare/internal/domain/quote"
	"quoteshare/internal/notion"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mapNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func titleProp(text string) notion.Property {
	return notion.Property{Type: notion.PropertyTitle, Title: []notion.RichText{{PlainText: text}}}
}

func richTextProp(text string) notion.Property {
	return notion.Property{Type: notion.PropertyRichText, RichText: []notion.RichText{{PlainText: text}}}
}

func numberProp(n float64) notion.Property {
	return notion.Property{Type: notion.PropertyNumber, Number: &n}
}

func selectProp(name string) notion.Property {
	return notion.Property{Type: notion.PropertySelect, Select: &notion.SelectOption{Name: name}}
}

func dateProp(start string) notion.Property {
	return notion.Property{Type: notion.PropertyDate, Date: &notion.DateValue{Start: start}}
}

func fullPage() notion.Page {
	return notion.Page{
		ID: "page-1",
		Properties: map[string]notion.Property{
			"견적서 번호": titleProp("Q-2024-001"),
			"클라이언트":  richTextProp("Acme Corp"),
			"담당자":    richTextProp("김철수"),
			"연락처":    {Type: notion.PropertyPhoneNumber, PhoneNumber: strPtr("010-1234-5678")},
			"이메일":    {Type: notion.PropertyEmail, Email: strPtr("kim@acme.example")},
			"총 금액":   numberProp(1500000),
			"발행일":    dateProp("2024-05-20"),
			"유효기간":   dateProp("2024-06-20"),
			"비고":     richTextProp("부가세 별도"),
			"상태":     selectProp("발송완료"),
		},
	}
}

func TestMapPage_FullRecord(t *testing.T) {
	ownerID := uuid.New()

	got, err := notion.MapPage(fullPage(), ownerID, notion.DefaultMapping, mapNow)
	require.NoError(t, err)

	assert.Equal(t, ownerID, got.UserID)
	assert.Equal(t, "page-1", got.NotionPageID)
	assert.Equal(t, "Q-2024-001", got.QuoteNumber)
	assert.Equal(t, "Acme Corp", got.ClientName)
	require.NotNil(t, got.ClientContact)
	assert.Equal(t, "김철수", *got.ClientContact)
	require.NotNil(t, got.ClientPhone)
	assert.Equal(t, "010-1234-5678", *got.ClientPhone)
	require.NotNil(t, got.ClientEmail)
	assert.Equal(t, "kim@acme.example", *got.ClientEmail)
	assert.Equal(t, 1500000.0, got.TotalAmount)
	assert.Equal(t, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), got.IssueDate)
	require.NotNil(t, got.ValidUntil)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "부가세 별도", *got.Notes)
	assert.Equal(t, quote.StatusSent, got.Status)
}

func TestMapPage_Fallbacks(t *testing.T) {
	page := notion.Page{
		ID:         "page-empty",
		Properties: map[string]notion.Property{"상태": selectProp("")},
	}

	got, err := notion.MapPage(page, uuid.New(), notion.DefaultMapping, mapNow)
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("Q-%d", mapNow.UnixMilli()), got.QuoteNumber)
	assert.Equal(t, "미지정", got.ClientName)
	assert.Nil(t, got.ClientContact)
	assert.Nil(t, got.ClientPhone)
	assert.Nil(t, got.ClientEmail)
	assert.Zero(t, got.TotalAmount)
	assert.Equal(t, mapNow, got.IssueDate)
	assert.Nil(t, got.ValidUntil)
	assert.Nil(t, got.Notes)
	assert.Equal(t, quote.StatusDraft, got.Status)
	assert.Empty(t, got.Items)
	assert.NotNil(t, got.Items)
}

func TestMapPage_RejectsUnusableRecords(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		_, err := notion.MapPage(notion.Page{Properties: fullPage().Properties}, uuid.New(), notion.DefaultMapping, mapNow)
		assert.Error(t, err)
	})

	t.Run("empty property bag", func(t *testing.T) {
		_, err := notion.MapPage(notion.Page{ID: "page-2"}, uuid.New(), notion.DefaultMapping, mapNow)
		assert.Error(t, err)
	})
}

func TestMapPage_NegativeAmountClampedToZero(t *testing.T) {
	page := fullPage()
	page.Properties["총 금액"] = numberProp(-500)

	got, err := notion.MapPage(page, uuid.New(), notion.DefaultMapping, mapNow)
	require.NoError(t, err)
	assert.Zero(t, got.TotalAmount)
}

func TestMapPage_ToleratesRestructuredTypes(t *testing.T) {
	// A client name column converted to a number should degrade to the
	// fallback, not fail the record.
	page := fullPage()
	page.Properties["클라이언트"] = numberProp(7)
	page.Properties["발행일"] = richTextProp("not a date")

	got, err := notion.MapPage(page, uuid.New(), notion.DefaultMapping, mapNow)
	require.NoError(t, err)
	assert.Equal(t, "미지정", got.ClientName)
	assert.Equal(t, mapNow, got.IssueDate)
}

func TestMapPage_ItemsHook(t *testing.T) {
	mapping := notion.DefaultMapping
	mapping.Items = "품목"

	t.Run("pipe format", func(t *testing.T) {
		page := fullPage()
		page.Properties["품목"] = richTextProp("디자인 작업 | 2 | 500000")

		got, err := notion.MapPage(page, uuid.New(), mapping, mapNow)
		require.NoError(t, err)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "디자인 작업", got.Items[0].Name)
		assert.Equal(t, 2, got.Items[0].Quantity)
		assert.Equal(t, 1000000.0, got.Items[0].Amount)
	})

	t.Run("json format", func(t *testing.T) {
		page := fullPage()
		page.Properties["품목"] = richTextProp(`[{"name":"개발","quantity":3,"unitPrice":200000,"amount":600000}]`)

		got, err := notion.MapPage(page, uuid.New(), mapping, mapNow)
		require.NoError(t, err)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "개발", got.Items[0].Name)
		assert.Equal(t, 600000.0, got.Items[0].Amount)
	})

	t.Run("unset hook leaves items empty", func(t *testing.T) {
		got, err := notion.MapPage(fullPage(), uuid.New(), notion.DefaultMapping, mapNow)
		require.NoError(t, err)
		assert.Empty(t, got.Items)
	})
}

func strPtr(s string) *string { return &s }
