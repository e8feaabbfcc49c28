package quote

import "strings"

// Status is the canonical quote lifecycle state, decoupled from the free-form
// status labels owners use in their Notion databases.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusSent      Status = "SENT"
	StatusViewed    Status = "VIEWED"
	StatusExpired   Status = "EXPIRED"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) String() string { return string(s) }

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusViewed, StatusExpired, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// statusLabels maps the status labels seen in the wild onto canonical states.
// Intentionally many-to-one; not derived from notionLabels.
var statusLabels = map[string]Status{
	// DRAFT
	"작성중": StatusDraft,
	"작성 중": StatusDraft,
	"초안":  StatusDraft,
	"draft": StatusDraft,

	// SENT
	"발송완료":  StatusSent,
	"발송 완료": StatusSent,
	"발송됨":   StatusSent,
	"발송":    StatusSent,
	"전송완료":  StatusSent,
	"sent":  StatusSent,

	// VIEWED
	"조회":     StatusViewed,
	"조회됨":    StatusViewed,
	"열람":     StatusViewed,
	"열람됨":    StatusViewed,
	"viewed": StatusViewed,

	// EXPIRED
	"만료":      StatusExpired,
	"만료됨":     StatusExpired,
	"기간만료":    StatusExpired,
	"expired": StatusExpired,

	// APPROVED
	"승인":       StatusApproved,
	"승인됨":      StatusApproved,
	"수락":       StatusApproved,
	"approved": StatusApproved,
	"accepted": StatusApproved,

	// REJECTED
	"거절":       StatusRejected,
	"거절됨":      StatusRejected,
	"반려":       StatusRejected,
	"rejected": StatusRejected,
	"declined": StatusRejected,

	// COMPLETED
	"작성완료":      StatusCompleted,
	"완료":        StatusCompleted,
	"completed": StatusCompleted,
	"done":      StatusCompleted,
}

// notionLabels is the inverse table: one canonical Notion select label per
// state, used when writing statuses back to the source database.
var notionLabels = map[Status]string{
	StatusDraft:     "작성중",
	StatusSent:      "발송완료",
	StatusViewed:    "조회됨",
	StatusExpired:   "만료됨",
	StatusApproved:  "승인",
	StatusRejected:  "거절",
	StatusCompleted: "작성완료",
}

// StatusFromLabel normalizes an external status label. Lookup is exact first,
// then trimmed-lowercase; anything unmatched (including empty) is DRAFT.
func StatusFromLabel(label string) Status {
	if s, ok := statusLabels[label]; ok {
		return s
	}

	normalized := strings.ToLower(strings.TrimSpace(label))
	if s, ok := statusLabels[normalized]; ok {
		return s
	}

	return StatusDraft
}

// NotionLabel returns the select label written back to Notion for a status.
func NotionLabel(s Status) string {
	if label, ok := notionLabels[s]; ok {
		return label
	}
	return notionLabels[StatusDraft]
}
