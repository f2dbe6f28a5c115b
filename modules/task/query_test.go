package task

import (
	"testing"
	"time"

	domain "github.com/example/task-manager-demo/domain/task"
)

// queryFixture returns tasks in insertion order with distinct fields for
// every sortable/filterable attribute.
func queryFixture() []*domain.Task {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return []*domain.Task{
		{
			ID: "id-1", Title: "Write report", Description: "Quarterly Summary",
			Status: domain.StatusOpen, CreatedAt: base, UpdatedAt: base.Add(3 * time.Hour),
		},
		{
			ID: "id-2", Title: "buy groceries", Description: "milk and eggs",
			Status: domain.StatusClosed, CreatedAt: base.Add(time.Hour), UpdatedAt: base.Add(time.Hour),
		},
		{
			ID: "id-3", Title: "Call dentist", Description: "reschedule appointment",
			Status: domain.StatusOpen, CreatedAt: base.Add(2 * time.Hour), UpdatedAt: base.Add(2 * time.Hour),
		},
	}
}

func TestApplyQuery(t *testing.T) {
	tests := []struct {
		name  string
		query ListQuery
		want  []string
	}{
		{
			name:  "no parameters keeps insertion order",
			query: ListQuery{},
			want:  []string{"id-1", "id-2", "id-3"},
		},
		{
			name:  "status filter keeps relative order",
			query: ListQuery{Status: "OPEN"},
			want:  []string{"id-1", "id-3"},
		},
		{
			name:  "status filter is exact, no case folding",
			query: ListQuery{Status: "open"},
			want:  []string{},
		},
		{
			name:  "search matches title case-insensitively",
			query: ListQuery{SearchTerm: "WRITE"},
			want:  []string{"id-1"},
		},
		{
			name:  "search matches description case-insensitively",
			query: ListQuery{SearchTerm: "summary"},
			want:  []string{"id-1"},
		},
		{
			name:  "search matches title or description",
			query: ListQuery{SearchTerm: "e"},
			want:  []string{"id-1", "id-2", "id-3"},
		},
		{
			name:  "sort by title ascending ignores letter case",
			query: ListQuery{SortBy: "title"},
			want:  []string{"id-2", "id-3", "id-1"},
		},
		{
			name:  "sort by title descending",
			query: ListQuery{SortBy: "title", SortOrder: "desc"},
			want:  []string{"id-1", "id-3", "id-2"},
		},
		{
			name:  "sort by createdAt descending",
			query: ListQuery{SortBy: "createdAt", SortOrder: "desc"},
			want:  []string{"id-3", "id-2", "id-1"},
		},
		{
			name:  "sort by updatedAt ascending",
			query: ListQuery{SortBy: "updatedAt"},
			want:  []string{"id-2", "id-3", "id-1"},
		},
		{
			name:  "sort by status groups closed before open",
			query: ListQuery{SortBy: "status"},
			want:  []string{"id-2", "id-1", "id-3"},
		},
		{
			name:  "unknown sortBy is silently ignored",
			query: ListQuery{SortBy: "priority"},
			want:  []string{"id-1", "id-2", "id-3"},
		},
		{
			name:  "filter and sort combine",
			query: ListQuery{Status: "OPEN", SortBy: "title", SortOrder: "desc"},
			want:  []string{"id-1", "id-3"},
		},
		{
			name:  "search with no matches returns empty",
			query: ListQuery{SearchTerm: "zzz"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyQuery(queryFixture(), tt.query)
			gotIDs := taskIDs(got)
			if len(gotIDs) != len(tt.want) {
				t.Fatalf("applyQuery() = %v, want %v", gotIDs, tt.want)
			}
			for i := range tt.want {
				if gotIDs[i] != tt.want[i] {
					t.Fatalf("applyQuery() = %v, want %v", gotIDs, tt.want)
				}
			}
		})
	}
}

func TestApplyQuery_DescExactlyReversesAsc(t *testing.T) {
	for _, field := range []string{"title", "description", "createdAt", "updatedAt"} {
		asc := applyQuery(queryFixture(), ListQuery{SortBy: field})
		desc := applyQuery(queryFixture(), ListQuery{SortBy: field, SortOrder: "desc"})

		if len(asc) != len(desc) {
			t.Fatalf("sortBy=%s: asc has %d entries, desc has %d", field, len(asc), len(desc))
		}
		for i := range asc {
			j := len(desc) - 1 - i
			if asc[i].ID != desc[j].ID {
				t.Errorf("sortBy=%s: asc[%d]=%s, desc[%d]=%s, want mirror images",
					field, i, asc[i].ID, j, desc[j].ID)
			}
		}
	}
}

func TestApplyQuery_EmptyInput(t *testing.T) {
	got := applyQuery(nil, ListQuery{Status: "OPEN", SearchTerm: "x", SortBy: "title"})
	if len(got) != 0 {
		t.Errorf("applyQuery(nil) returned %d tasks, want 0", len(got))
	}
}
