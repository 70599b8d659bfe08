package store

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"DataSci/internal/types"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Create(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndGetRun(t *testing.T) {
	s := openTemp(t)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	run := types.Run{ID: "r1", Kind: types.KindWordCount, Status: types.RunRunning, Inputs: 3, CreatedAt: created}
	if err := s.SaveRun(run); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	run.Status = types.RunCompleted
	run.Outputs = 4
	if err := s.SaveRun(run); err != nil {
		t.Fatalf("updating run failed: %v", err)
	}

	got, err := s.GetRun("r1")
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("created_at = %v, want %v", got.CreatedAt, created)
	}
	got.CreatedAt = run.CreatedAt
	if !reflect.DeepEqual(got, run) {
		t.Fatalf("got %+v, want %+v", got, run)
	}
}

func TestGetRunNotFound(t *testing.T) {
	s := openTemp(t)
	if _, err := s.GetRun("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListRunsOldestFirst(t *testing.T) {
	s := openTemp(t)
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"late", "early"} {
		run := types.Run{ID: id, Kind: types.KindGrep, Status: types.RunCompleted, CreatedAt: base.Add(time.Duration(1-i) * time.Hour)}
		if err := s.SaveRun(run); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	runs, err := s.ListRuns()
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != "early" || runs[1].ID != "late" {
		t.Fatalf("unexpected order: %+v", runs)
	}
}

func TestPairs(t *testing.T) {
	s := openTemp(t)
	if err := s.SaveRun(types.Run{ID: "r1", Kind: types.KindWordCount, Status: types.RunCompleted, CreatedAt: time.Now()}); err != nil {
		t.Fatal(err)
	}

	in := []types.Pair{{Key: "science", Value: "2"}, {Key: "data", Value: "2"}, {Key: "big", Value: "1"}}
	if err := s.SavePairs("r1", in); err != nil {
		t.Fatalf("SavePairs failed: %v", err)
	}

	got, err := s.Pairs("r1")
	if err != nil {
		t.Fatalf("Pairs failed: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("got %v, want insertion order %v", got, in)
	}
	if s.Path() == "" {
		t.Fatalf("Path is empty")
	}

	if err := s.SavePairs("r1", []types.Pair{{Key: "alpha", Value: "9"}}); err != nil {
		t.Fatalf("second SavePairs failed: %v", err)
	}
	got, err = s.Pairs("r1")
	if err != nil {
		t.Fatalf("Pairs failed: %v", err)
	}
	want := append(append([]types.Pair{}, in...), types.Pair{Key: "alpha", Value: "9"})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	n, err := s.RowCount()
	if err != nil || n != 4 {
		t.Fatalf("RowCount = %d, %v", n, err)
	}
}

func TestSavePairsRequiresRun(t *testing.T) {
	s := openTemp(t)
	if err := s.SavePairs("ghost", []types.Pair{{Key: "k", Value: "v"}}); err == nil {
		t.Fatalf("expected foreign key violation")
	}
	if n, _ := s.RowCount(); n != 0 {
		t.Fatalf("failed insert left %d rows", n)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keep.db")
	s, err := Open(Options{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SaveRun(types.Run{ID: "r1", Kind: types.KindGrep, Status: types.RunFailed, Error: "boom", CreatedAt: time.Now()}); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = Open(Options{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	run, err := s.GetRun("r1")
	if err != nil || run.Error != "boom" {
		t.Fatalf("reopened run = %+v, %v", run, err)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(Options{}); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
