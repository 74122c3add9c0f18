package pipeline

import (
	"testing"
	"time"

	"github.com/dgallion1/outliner/internal/outline"
)

func TestJob_StatusTransitions(t *testing.T) {
	job := &Job{ID: "j1", Filename: "a.pdf", Status: StatusQueued, CreatedAt: time.Now()}

	job.SetStatus(StatusParsing)
	if job.Snapshot().Status != StatusParsing {
		t.Errorf("expected parsing, got %s", job.Snapshot().Status)
	}

	res := &outline.Result{Title: "T", Outline: []outline.Entry{}}
	job.Complete(res)
	snap := job.Snapshot()
	if snap.Status != StatusCompleted {
		t.Errorf("expected completed, got %s", snap.Status)
	}
	if snap.Result == nil || snap.Result.Title != "T" {
		t.Errorf("completed snapshot must carry the result, got %+v", snap.Result)
	}
}

func TestJob_SnapshotHidesResultUntilComplete(t *testing.T) {
	job := &Job{ID: "j2", Status: StatusParsing}
	job.result = &outline.Result{Title: "early"}

	if snap := job.Snapshot(); snap.Result != nil {
		t.Error("in-flight snapshot must not expose a result")
	}
}

func TestJob_FailRecordsReason(t *testing.T) {
	job := &Job{ID: "j3", Status: StatusParsing}
	job.Fail("parse: broken xref")

	snap := job.Snapshot()
	if snap.Status != StatusFailed {
		t.Errorf("expected failed, got %s", snap.Status)
	}
	if snap.Error != "parse: broken xref" {
		t.Errorf("got error %q", snap.Error)
	}
}

func TestJobStore_CleanupEvictsExpired(t *testing.T) {
	store := NewJobStore(10 * time.Millisecond)

	old := &Job{ID: "old", UpdatedAt: time.Now().Add(-time.Minute)}
	fresh := &Job{ID: "fresh", UpdatedAt: time.Now()}
	store.Put(old)
	store.Put(fresh)

	store.Cleanup()

	if store.Get("old") != nil {
		t.Error("expected expired job to be evicted")
	}
	if store.Get("fresh") == nil {
		t.Error("expected fresh job to survive")
	}
}

func TestNewJobID_Distinct(t *testing.T) {
	a := NewJobID("report.pdf", time.Now())
	b := NewJobID("report.pdf", time.Now().Add(time.Nanosecond))
	if a == b {
		t.Error("expected distinct IDs for distinct submission times")
	}
	if len(a) != 20 {
		t.Errorf("expected 20-char ID, got %d", len(a))
	}
}
