package types

// Section is one entry in an ordered résumé list (experience or
// education). All fields are free text.
type Section struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

// Project is one portfolio entry on the résumé.
type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
}

// Resume is the singleton résumé record. Experience, education, and
// projects keep insertion order; updates replace items in place and
// removal never reindexes siblings.
type Resume struct {
	FullName   string    `json:"fullName"`
	Summary    string    `json:"summary"`
	Experience []Section `json:"experience"`
	Education  []Section `json:"education"`
	Projects   []Project `json:"projects"`
	Skills     string    `json:"skills"`
	Avatar     string    `json:"avatar"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Location   string    `json:"location,omitempty"`
}

// SectionPatch is a partial update for a Section. Nil fields keep their
// current value.
type SectionPatch struct {
	Title   *string
	Content *string
	Date    *string
}

// Apply merges the patch into the section.
func (p *SectionPatch) Apply(s *Section) {
	if p == nil {
		return
	}
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Content != nil {
		s.Content = *p.Content
	}
	if p.Date != nil {
		s.Date = *p.Date
	}
}

// ProjectPatch is a partial update for a Project. A nil Tech slice keeps
// the current list; a non-nil slice replaces it wholesale.
type ProjectPatch struct {
	Name        *string
	Description *string
	Tech        []string
}

// Apply merges the patch into the project.
func (p *ProjectPatch) Apply(pr *Project) {
	if p == nil {
		return
	}
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.Tech != nil {
		pr.Tech = p.Tech
	}
}

// ResumePatch is a partial update for the résumé. Nil scalar fields keep
// their value; nil list fields keep the current list, non-nil lists
// replace it wholesale (item-level edits go through the store's
// section/project operations instead).
type ResumePatch struct {
	FullName   *string
	Summary    *string
	Skills     *string
	Avatar     *string
	Email      *string
	Phone      *string
	Location   *string
	Experience []Section
	Education  []Section
	Projects   []Project
}

// Apply merges the patch into the résumé.
func (p *ResumePatch) Apply(r *Resume) {
	if p == nil {
		return
	}
	if p.FullName != nil {
		r.FullName = *p.FullName
	}
	if p.Summary != nil {
		r.Summary = *p.Summary
	}
	if p.Skills != nil {
		r.Skills = *p.Skills
	}
	if p.Avatar != nil {
		r.Avatar = *p.Avatar
	}
	if p.Email != nil {
		r.Email = *p.Email
	}
	if p.Phone != nil {
		r.Phone = *p.Phone
	}
	if p.Location != nil {
		r.Location = *p.Location
	}
	if p.Experience != nil {
		r.Experience = p.Experience
	}
	if p.Education != nil {
		r.Education = p.Education
	}
	if p.Projects != nil {
		r.Projects = p.Projects
	}
}
