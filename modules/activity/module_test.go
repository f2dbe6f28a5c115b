package activity

import (
	"context"
	"testing"
	"time"

	"github.com/example/task-manager-demo/events"
)

func TestActivityLog_RecordsEvents(t *testing.T) {
	m := NewModule()
	ctx := context.Background()

	if err := m.handleTaskCreated(ctx, events.TaskCreatedEvent{
		TaskID: "id-1", Title: "write tests", CreatedAt: time.Now(),
	}, nil); err != nil {
		t.Fatalf("handleTaskCreated() error = %v", err)
	}
	if err := m.handleTaskUpdated(ctx, events.TaskUpdatedEvent{
		TaskID: "id-1", Status: "CLOSED", UpdatedAt: time.Now(),
	}, nil); err != nil {
		t.Fatalf("handleTaskUpdated() error = %v", err)
	}
	if err := m.handleTaskDeleted(ctx, events.TaskDeletedEvent{
		TaskID: "id-1", DeletedAt: time.Now(),
	}, nil); err != nil {
		t.Fatalf("handleTaskDeleted() error = %v", err)
	}

	resp, err := m.recentActivity(ctx, RecentActivityRequest{}, nil)
	if err != nil {
		t.Fatalf("recentActivity() error = %v", err)
	}
	if resp.Total != 3 {
		t.Fatalf("recentActivity() Total = %d, want 3", resp.Total)
	}

	// Newest first
	wantTypes := []string{"task_deleted", "task_updated", "task_created"}
	for i, want := range wantTypes {
		if resp.Entries[i].Type != want {
			t.Errorf("Entries[%d].Type = %s, want %s", i, resp.Entries[i].Type, want)
		}
	}
}

func TestActivityLog_Limit(t *testing.T) {
	m := NewModule()
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		m.record("id", "task_created", "entry")
	}

	resp, err := m.recentActivity(ctx, RecentActivityRequest{Limit: 4}, nil)
	if err != nil {
		t.Fatalf("recentActivity() error = %v", err)
	}
	if resp.Total != 4 || len(resp.Entries) != 4 {
		t.Errorf("recentActivity(limit=4) returned %d entries, want 4", len(resp.Entries))
	}
}

func TestActivityLog_CapsEntries(t *testing.T) {
	m := NewModule()

	for i := 0; i < maxEntries+50; i++ {
		m.record("id", "task_created", "entry")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.entries) != maxEntries {
		t.Errorf("log holds %d entries, want cap of %d", len(m.entries), maxEntries)
	}
}
