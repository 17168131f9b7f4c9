package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/entrhq/jobflow/pkg/storage"
	"github.com/entrhq/jobflow/pkg/types"
)

func newTestStore(t *testing.T) (*Store, *storage.FileStore) {
	t.Helper()

	adapter, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create adapter: %v", err)
	}
	return New(adapter), adapter
}

func TestAddJob(t *testing.T) {
	t.Run("inserts at head with fresh id", func(t *testing.T) {
		s, _ := newTestStore(t)

		first, err := s.AddJob(types.Job{Company: "Acme", Role: "Engineer", Status: types.StatusApplied})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := s.AddJob(types.Job{Company: "Globex", Role: "Analyst", Status: types.StatusApplied})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		jobs := s.Jobs()
		if len(jobs) != 2 {
			t.Fatalf("expected 2 jobs, got %d", len(jobs))
		}
		if jobs[0].ID != second.ID {
			t.Errorf("newest job should be at the head, got %q", jobs[0].Company)
		}
		if first.ID == "" || second.ID == "" || first.ID == second.ID {
			t.Errorf("ids must be fresh and unique, got %q and %q", first.ID, second.ID)
		}
	})

	t.Run("defaults origin to application", func(t *testing.T) {
		s, _ := newTestStore(t)

		job, err := s.AddJob(types.Job{Company: "Acme", Role: "Engineer"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Origin != types.OriginApplication {
			t.Errorf("expected application origin, got %q", job.Origin)
		}
	})

	t.Run("rejects missing identity fields", func(t *testing.T) {
		tests := []struct {
			name string
			job  types.Job
		}{
			{"empty company", types.Job{Role: "Engineer"}},
			{"empty role", types.Job{Company: "Acme"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				s, _ := newTestStore(t)

				_, err := s.AddJob(tt.job)
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("expected ErrValidation, got %v", err)
				}
				if len(s.Jobs()) != 0 {
					t.Error("rejected add must not mutate the collection")
				}
			})
		}
	})
}

func TestUpdateJob(t *testing.T) {
	t.Run("changes only supplied fields", func(t *testing.T) {
		s, _ := newTestStore(t)

		job, _ := s.AddJob(types.Job{
			Company:     "Acme",
			Role:        "Engineer",
			Status:      types.StatusApplied,
			Salary:      "100k",
			Location:    "Remote",
			DateApplied: "2026-08-01",
			Origin:      types.OriginApplication,
		})

		status := types.StatusOffer
		s.UpdateJob(job.ID, types.JobPatch{Status: &status})

		got := s.Jobs()[0]
		if got.Status != types.StatusOffer {
			t.Errorf("status not updated, got %q", got.Status)
		}
		if got.Company != "Acme" || got.Role != "Engineer" || got.Salary != "100k" ||
			got.Location != "Remote" || got.DateApplied != "2026-08-01" {
			t.Error("untouched fields must retain prior values")
		}
		if got.Origin != types.OriginApplication {
			t.Errorf("origin must never change on a status update, got %q", got.Origin)
		}
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		s, _ := newTestStore(t)
		s.AddJob(types.Job{Company: "Acme", Role: "Engineer"})

		role := "Designer"
		s.UpdateJob("missing", types.JobPatch{Role: &role})

		if s.Jobs()[0].Role != "Engineer" {
			t.Error("update of absent id must not touch other records")
		}
	})
}

func TestRemoveJob(t *testing.T) {
	t.Run("remove is idempotent", func(t *testing.T) {
		s, _ := newTestStore(t)

		job, _ := s.AddJob(types.Job{Company: "Acme", Role: "Engineer"})
		keep, _ := s.AddJob(types.Job{Company: "Globex", Role: "Analyst"})

		s.RemoveJob(job.ID)
		s.RemoveJob(job.ID) // second remove: no error, no change

		jobs := s.Jobs()
		if len(jobs) != 1 || jobs[0].ID != keep.ID {
			t.Fatalf("expected only %q to remain, got %d jobs", keep.ID, len(jobs))
		}
	})
}

func TestResumeSections(t *testing.T) {
	t.Run("update replaces in place and preserves order", func(t *testing.T) {
		s, _ := newTestStore(t)

		a := s.AddExperience(types.Section{Title: "First"})
		b := s.AddExperience(types.Section{Title: "Second"})
		c := s.AddExperience(types.Section{Title: "Third"})

		title := "Second, revised"
		s.UpdateExperience(b.ID, types.SectionPatch{Title: &title})

		exp := s.Resume().Experience
		if len(exp) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(exp))
		}
		wantOrder := []string{a.ID, b.ID, c.ID}
		for i, id := range wantOrder {
			if exp[i].ID != id {
				t.Fatalf("order changed at %d: got %q want %q", i, exp[i].ID, id)
			}
		}
		if exp[1].Title != "Second, revised" {
			t.Errorf("entry not updated in place, got %q", exp[1].Title)
		}
	})

	t.Run("removal keeps sibling identity", func(t *testing.T) {
		s, _ := newTestStore(t)

		a := s.AddEducation(types.Section{Title: "BSc"})
		b := s.AddEducation(types.Section{Title: "MSc"})
		c := s.AddEducation(types.Section{Title: "PhD"})

		s.RemoveEducation(b.ID)

		edu := s.Resume().Education
		if len(edu) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(edu))
		}
		if edu[0].ID != a.ID || edu[1].ID != c.ID {
			t.Error("siblings must keep their ids and order after removal")
		}
	})

	t.Run("projects get generated ids", func(t *testing.T) {
		s, _ := newTestStore(t)

		p := s.AddProject(types.Project{Name: "Tracker", Tech: []string{"go"}})
		if p.ID == "" {
			t.Fatal("project id must be generated")
		}

		desc := "CLI job tracker"
		s.UpdateProject(p.ID, types.ProjectPatch{Description: &desc})

		got := s.Resume().Projects[0]
		if got.Description != desc || got.Name != "Tracker" {
			t.Errorf("partial project update wrong: %+v", got)
		}
	})
}

func TestUpdateSettings(t *testing.T) {
	t.Run("nested resume merge keeps untouched fields", func(t *testing.T) {
		s, _ := newTestStore(t)

		name := "Ada Lovelace"
		summary := "Engineer"
		s.UpdateSettings(types.SettingsPatch{
			Resume: &types.ResumePatch{FullName: &name, Summary: &summary},
		})

		skills := "Go, SQL"
		s.UpdateSettings(types.SettingsPatch{
			Resume: &types.ResumePatch{Skills: &skills},
		})

		got := s.Settings().Resume
		if got.FullName != "Ada Lovelace" || got.Summary != "Engineer" {
			t.Errorf("partial resume update wiped untouched fields: %+v", got)
		}
		if got.Skills != "Go, SQL" {
			t.Errorf("skills not updated, got %q", got.Skills)
		}
	})

	t.Run("api key merges independently of resume", func(t *testing.T) {
		s, _ := newTestStore(t)

		name := "Ada Lovelace"
		s.UpdateSettings(types.SettingsPatch{Resume: &types.ResumePatch{FullName: &name}})

		key := "secret"
		s.UpdateSettings(types.SettingsPatch{APIKey: &key})

		if s.APIKey() != "secret" {
			t.Errorf("api key not updated, got %q", s.APIKey())
		}
		if s.Settings().Resume.FullName != "Ada Lovelace" {
			t.Error("api key update must not touch the resume")
		}
	})
}

func TestPersistence(t *testing.T) {
	t.Run("mutations survive a restart", func(t *testing.T) {
		dir := t.TempDir()
		adapter, err := storage.NewFileStore(dir)
		if err != nil {
			t.Fatalf("failed to create adapter: %v", err)
		}

		s := New(adapter)
		job, _ := s.AddJob(types.Job{Company: "Acme", Role: "Engineer", DateApplied: "2026-08-15"})
		name := "Ada Lovelace"
		s.UpdateResume(types.ResumePatch{FullName: &name})

		reopened := New(adapter)
		jobs := reopened.Jobs()
		if len(jobs) != 1 || jobs[0].ID != job.ID {
			t.Fatalf("jobs not reloaded, got %d", len(jobs))
		}
		if reopened.Resume().FullName != "Ada Lovelace" {
			t.Error("resume not reloaded")
		}
	})

	t.Run("corrupt snapshot degrades to defaults", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "jobs.json"), []byte("{not json"), 0600); err != nil {
			t.Fatalf("failed to write corrupt snapshot: %v", err)
		}

		adapter, err := storage.NewFileStore(dir)
		if err != nil {
			t.Fatalf("failed to create adapter: %v", err)
		}

		s := New(adapter)
		if len(s.Jobs()) != 0 {
			t.Error("corrupt snapshot must degrade to an empty collection")
		}

		// The store must still accept mutations afterwards.
		if _, err := s.AddJob(types.Job{Company: "Acme", Role: "Engineer"}); err != nil {
			t.Fatalf("store unusable after corrupt load: %v", err)
		}
	})
}

func TestSubscribe(t *testing.T) {
	s, _ := newTestStore(t)

	var changes []Collection
	s.Subscribe(func(c Collection) {
		changes = append(changes, c)
	})

	job, _ := s.AddJob(types.Job{Company: "Acme", Role: "Engineer"})
	s.RemoveJob(job.ID)
	name := "Ada"
	s.UpdateResume(types.ResumePatch{FullName: &name})
	key := "secret"
	s.UpdateSettings(types.SettingsPatch{APIKey: &key})

	want := []Collection{CollectionJobs, CollectionJobs, CollectionResume, CollectionSettings}
	if len(changes) != len(want) {
		t.Fatalf("expected %d notifications, got %d", len(want), len(changes))
	}
	for i, c := range want {
		if changes[i] != c {
			t.Errorf("notification %d: got %q want %q", i, changes[i], c)
		}
	}

	// No-op mutations must not notify.
	s.RemoveJob("missing")
	if len(changes) != len(want) {
		t.Error("no-op remove must not notify subscribers")
	}
}
