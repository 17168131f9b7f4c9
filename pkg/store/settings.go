package store

import "github.com/entrhq/jobflow/pkg/types"

// Settings returns a snapshot of the settings.
func (s *Store) Settings() types.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.settings
	out.Resume = copyResume(s.settings.Resume)
	return out
}

// APIKey returns the configured generative-backend credential, empty if
// none is set.
func (s *Store) APIKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.APIKey
}

// UpdateSettings applies a partial update. Top-level fields merge
// shallowly; the nested résumé patch merges one level deeper, so a
// partial résumé update never wipes untouched résumé fields.
func (s *Store) UpdateSettings(patch types.SettingsPatch) {
	s.mu.Lock()
	patch.Apply(&s.settings)
	s.persistSettingsLocked()
	s.mu.Unlock()

	s.notify(CollectionSettings)
}
