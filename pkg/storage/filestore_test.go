package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/entrhq/jobflow/pkg/types"
)

func TestFileStore(t *testing.T) {
	t.Run("snapshots round-trip losslessly", func(t *testing.T) {
		fs, err := NewFileStore(t.TempDir())
		if err != nil {
			t.Fatalf("NewFileStore failed: %v", err)
		}

		in := []types.Job{{
			ID:             "id-1",
			Company:        "Acme",
			Role:           "Engineer",
			Status:         types.StatusInterview,
			Salary:         "100k",
			Location:       "Remote",
			DateApplied:    "2026-08-15",
			Description:    "desc",
			CoverLetter:    "letter",
			InterviewGuide: "guide",
			Origin:         types.OriginOffer,
		}}
		if err := fs.Save(KeyJobs, in); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		var out []types.Job
		found, err := fs.Load(KeyJobs, &out)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if !found {
			t.Fatal("expected snapshot to be found")
		}
		if len(out) != 1 || out[0] != in[0] {
			t.Errorf("round-trip mismatch: got %+v", out)
		}
	})

	t.Run("absent key reports not found without error", func(t *testing.T) {
		fs, err := NewFileStore(t.TempDir())
		if err != nil {
			t.Fatalf("NewFileStore failed: %v", err)
		}

		var out types.Settings
		found, err := fs.Load(KeySettings, &out)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Error("expected not found for absent key")
		}
	})

	t.Run("corrupt snapshot returns an error", func(t *testing.T) {
		dir := t.TempDir()
		fs, err := NewFileStore(dir)
		if err != nil {
			t.Fatalf("NewFileStore failed: %v", err)
		}

		if err := os.WriteFile(filepath.Join(dir, "resume.json"), []byte("{broken"), 0600); err != nil {
			t.Fatalf("failed to write corrupt file: %v", err)
		}

		var out types.Resume
		if _, err := fs.Load(KeyResume, &out); err == nil {
			t.Error("expected decode error for corrupt snapshot")
		}
	})

	t.Run("save leaves no temp file behind", func(t *testing.T) {
		dir := t.TempDir()
		fs, err := NewFileStore(dir)
		if err != nil {
			t.Fatalf("NewFileStore failed: %v", err)
		}

		if err := fs.Save(KeyResume, types.Resume{FullName: "Ada"}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		if _, err := os.Stat(filepath.Join(dir, "resume.json.tmp")); !os.IsNotExist(err) {
			t.Error("temp file should be renamed away after save")
		}
	})
}
