package store

import (
	"github.com/google/uuid"

	"github.com/entrhq/jobflow/pkg/types"
)

// Resume returns a snapshot of the résumé.
func (s *Store) Resume() types.Resume {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyResume(s.resume)
}

// UpdateResume applies a partial update to the résumé's top-level fields.
func (s *Store) UpdateResume(patch types.ResumePatch) {
	s.mu.Lock()
	patch.Apply(&s.resume)
	s.persistResumeLocked()
	s.mu.Unlock()

	s.notify(CollectionResume)
}

// AddExperience appends a new experience entry with a generated id.
func (s *Store) AddExperience(sec types.Section) types.Section {
	return s.addSection(&s.resume.Experience, sec)
}

// UpdateExperience applies a partial update to the experience entry with
// the given id. The entry is replaced in place; list order is preserved.
// An absent id is a silent no-op.
func (s *Store) UpdateExperience(id string, patch types.SectionPatch) {
	s.updateSection(&s.resume.Experience, id, patch)
}

// RemoveExperience removes the experience entry with the given id.
// Sibling entries keep their identity and order.
func (s *Store) RemoveExperience(id string) {
	s.removeSection(&s.resume.Experience, id)
}

// AddEducation appends a new education entry with a generated id.
func (s *Store) AddEducation(sec types.Section) types.Section {
	return s.addSection(&s.resume.Education, sec)
}

// UpdateEducation applies a partial update to the education entry with
// the given id. An absent id is a silent no-op.
func (s *Store) UpdateEducation(id string, patch types.SectionPatch) {
	s.updateSection(&s.resume.Education, id, patch)
}

// RemoveEducation removes the education entry with the given id.
func (s *Store) RemoveEducation(id string) {
	s.removeSection(&s.resume.Education, id)
}

// AddProject appends a new project with a generated id.
func (s *Store) AddProject(project types.Project) types.Project {
	project.ID = uuid.New().String()

	s.mu.Lock()
	s.resume.Projects = append(s.resume.Projects, project)
	s.persistResumeLocked()
	s.mu.Unlock()

	s.notify(CollectionResume)
	return project
}

// UpdateProject applies a partial update to the project with the given
// id. An absent id is a silent no-op.
func (s *Store) UpdateProject(id string, patch types.ProjectPatch) {
	s.mu.Lock()
	found := false
	for i := range s.resume.Projects {
		if s.resume.Projects[i].ID == id {
			patch.Apply(&s.resume.Projects[i])
			found = true
			break
		}
	}
	if found {
		s.persistResumeLocked()
	}
	s.mu.Unlock()

	if found {
		s.notify(CollectionResume)
	}
}

// RemoveProject removes the project with the given id.
func (s *Store) RemoveProject(id string) {
	s.mu.Lock()
	found := false
	for i := range s.resume.Projects {
		if s.resume.Projects[i].ID == id {
			s.resume.Projects = append(s.resume.Projects[:i], s.resume.Projects[i+1:]...)
			found = true
			break
		}
	}
	if found {
		s.persistResumeLocked()
	}
	s.mu.Unlock()

	if found {
		s.notify(CollectionResume)
	}
}

func (s *Store) addSection(list *[]types.Section, sec types.Section) types.Section {
	sec.ID = uuid.New().String()

	s.mu.Lock()
	*list = append(*list, sec)
	s.persistResumeLocked()
	s.mu.Unlock()

	s.notify(CollectionResume)
	return sec
}

func (s *Store) updateSection(list *[]types.Section, id string, patch types.SectionPatch) {
	s.mu.Lock()
	found := false
	for i := range *list {
		if (*list)[i].ID == id {
			patch.Apply(&(*list)[i])
			found = true
			break
		}
	}
	if found {
		s.persistResumeLocked()
	}
	s.mu.Unlock()

	if found {
		s.notify(CollectionResume)
	}
}

func (s *Store) removeSection(list *[]types.Section, id string) {
	s.mu.Lock()
	found := false
	for i := range *list {
		if (*list)[i].ID == id {
			*list = append((*list)[:i], (*list)[i+1:]...)
			found = true
			break
		}
	}
	if found {
		s.persistResumeLocked()
	}
	s.mu.Unlock()

	if found {
		s.notify(CollectionResume)
	}
}

// copyResume deep-copies the slices so callers cannot mutate store state
// through a snapshot.
func copyResume(r types.Resume) types.Resume {
	out := r
	if r.Experience != nil {
		out.Experience = append([]types.Section(nil), r.Experience...)
	}
	if r.Education != nil {
		out.Education = append([]types.Section(nil), r.Education...)
	}
	if r.Projects != nil {
		out.Projects = make([]types.Project, len(r.Projects))
		for i, p := range r.Projects {
			out.Projects[i] = p
			if p.Tech != nil {
				out.Projects[i].Tech = append([]string(nil), p.Tech...)
			}
		}
	}
	return out
}
