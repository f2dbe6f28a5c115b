package task

import (
	"errors"
	"testing"
	"time"

	domain "github.com/example/task-manager-demo/domain/task"
)

func newStoredTask(id, title string) *domain.Task {
	now := time.Now()
	return &domain.Task{
		ID:          id,
		Title:       title,
		Description: "description of " + title,
		Status:      domain.StatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestRepository_InsertPreservesOrder(t *testing.T) {
	repo := NewTaskRepository()

	ids := []string{"id-1", "id-2", "id-3"}
	for _, id := range ids {
		if err := repo.Insert(newStoredTask(id, "task "+id)); err != nil {
			t.Fatalf("Insert(%s) error = %v", id, err)
		}
	}

	all := repo.All()
	if len(all) != len(ids) {
		t.Fatalf("All() returned %d tasks, want %d", len(all), len(ids))
	}
	for i, id := range ids {
		if all[i].ID != id {
			t.Errorf("All()[%d].ID = %s, want %s", i, all[i].ID, id)
		}
	}
}

func TestRepository_InsertDuplicateID(t *testing.T) {
	repo := NewTaskRepository()

	if err := repo.Insert(newStoredTask("id-1", "first")); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	err := repo.Insert(newStoredTask("id-1", "second"))
	if !errors.Is(err, ErrTaskExists) {
		t.Errorf("Insert() with duplicate id error = %v, want ErrTaskExists", err)
	}

	// The original record must be untouched
	stored, err := repo.FindByID("id-1")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if stored.Title != "first" {
		t.Errorf("stored title = %s, want first", stored.Title)
	}
}

func TestRepository_ReplacePreservesPosition(t *testing.T) {
	repo := NewTaskRepository()

	for _, id := range []string{"id-1", "id-2", "id-3"} {
		if err := repo.Insert(newStoredTask(id, "task "+id)); err != nil {
			t.Fatalf("Insert(%s) error = %v", id, err)
		}
	}

	updated := newStoredTask("id-2", "renamed")
	if err := repo.Replace("id-2", updated); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	all := repo.All()
	if all[1].ID != "id-2" || all[1].Title != "renamed" {
		t.Errorf("All()[1] = %s/%s, want id-2/renamed", all[1].ID, all[1].Title)
	}
}

func TestRepository_ReplaceMissing(t *testing.T) {
	repo := NewTaskRepository()

	err := repo.Replace("nope", newStoredTask("nope", "ghost"))
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Replace() error = %v, want ErrTaskNotFound", err)
	}
}

func TestRepository_Remove(t *testing.T) {
	repo := NewTaskRepository()

	for _, id := range []string{"id-1", "id-2", "id-3"} {
		if err := repo.Insert(newStoredTask(id, "task "+id)); err != nil {
			t.Fatalf("Insert(%s) error = %v", id, err)
		}
	}

	if err := repo.Remove("id-2"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	if _, err := repo.FindByID("id-2"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("FindByID() after Remove error = %v, want ErrTaskNotFound", err)
	}

	all := repo.All()
	if len(all) != 2 || all[0].ID != "id-1" || all[1].ID != "id-3" {
		t.Errorf("All() after Remove = %v, want [id-1 id-3]", taskIDs(all))
	}

	if err := repo.Remove("id-2"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("second Remove() error = %v, want ErrTaskNotFound", err)
	}
}

func TestRepository_ReadsReturnCopies(t *testing.T) {
	repo := NewTaskRepository()

	if err := repo.Insert(newStoredTask("id-1", "original")); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	got, err := repo.FindByID("id-1")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	got.Title = "mutated"

	repo.All()[0].Title = "also mutated"

	stored, err := repo.FindByID("id-1")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if stored.Title != "original" {
		t.Errorf("stored title = %s, caller mutation leaked into the store", stored.Title)
	}
}

func taskIDs(tasks []*domain.Task) []string {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}
