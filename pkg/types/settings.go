package types

// Settings aggregates the résumé with the API credential for the
// generative-language backend.
type Settings struct {
	Resume Resume `json:"resume"`
	APIKey string `json:"apiKey"`
}

// SettingsPatch is a partial update for Settings. Top-level fields merge
// shallowly; the nested résumé patch merges one level deeper, so a partial
// résumé update never wipes untouched résumé fields.
type SettingsPatch struct {
	Resume *ResumePatch
	APIKey *string
}

// Apply merges the patch into the settings.
func (p *SettingsPatch) Apply(s *Settings) {
	if p == nil {
		return
	}
	if p.APIKey != nil {
		s.APIKey = *p.APIKey
	}
	p.Resume.Apply(&s.Resume)
}
