package shared

import "time"

// NotionSettingsSnapshot is one user's stored integration state.
// APIKeyCiphertext is AEAD ciphertext straight from storage; only the
// usecases that hold the cipher may open it.
type NotionSettingsSnapshot struct {
	APIKeyCiphertext *string
	DatabaseID       *string
	LastSyncAt       *time.Time
}

func (s NotionSettingsSnapshot) Configured() bool {
	return s.APIKeyCiphertext != nil && *s.APIKeyCiphertext != "" &&
		s.DatabaseID != nil && *s.DatabaseID != ""
}
