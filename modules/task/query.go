package task

import (
	"sort"
	"strings"

	domain "github.com/example/task-manager-demo/domain/task"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ListQuery carries the optional filter, search, and sort parameters for
// listing tasks. Zero values mean the parameter was not supplied.
type ListQuery struct {
	Status     string `json:"status,omitempty"`
	SearchTerm string `json:"searchTerm,omitempty"`
	SortBy     string `json:"sortBy,omitempty"`
	SortOrder  string `json:"sortOrder,omitempty"`
}

// applyQuery narrows and orders a task snapshot according to q.
//
// Filtering is an exact status match, search a case-insensitive substring
// match on title or description. Sorting only happens for a known field
// name; unknown sortBy values are silently ignored and the filtered
// insertion order is kept. The sort is stable, so records with equal keys
// retain their prior relative order.
func applyQuery(tasks []*domain.Task, q ListQuery) []*domain.Task {
	result := tasks

	if q.Status != "" {
		filtered := make([]*domain.Task, 0, len(result))
		for _, t := range result {
			if string(t.Status) == q.Status {
				filtered = append(filtered, t)
			}
		}
		result = filtered
	}

	if q.SearchTerm != "" {
		term := strings.ToLower(q.SearchTerm)
		filtered := make([]*domain.Task, 0, len(result))
		for _, t := range result {
			if strings.Contains(strings.ToLower(t.Title), term) ||
				strings.Contains(strings.ToLower(t.Description), term) {
				filtered = append(filtered, t)
			}
		}
		result = filtered
	}

	if cmp, ok := comparatorFor(q.SortBy); ok {
		order := 1
		if q.SortOrder == "desc" {
			order = -1
		}
		sort.SliceStable(result, func(i, j int) bool {
			return cmp(result[i], result[j])*order < 0
		})
	}

	return result
}

// comparatorFor returns a three-way comparison for a sortable field name.
// The second return value is false for unknown fields. String fields use a
// locale-aware collator; a collate.Collator is not safe for concurrent use,
// so each call builds its own.
func comparatorFor(field string) (func(a, b *domain.Task) int, bool) {
	collator := collate.New(language.Und)
	switch field {
	case "title":
		return func(a, b *domain.Task) int {
			return collator.CompareString(a.Title, b.Title)
		}, true
	case "description":
		return func(a, b *domain.Task) int {
			return collator.CompareString(a.Description, b.Description)
		}, true
	case "status":
		return func(a, b *domain.Task) int {
			return collator.CompareString(string(a.Status), string(b.Status))
		}, true
	case "createdAt":
		return func(a, b *domain.Task) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		}, true
	case "updatedAt":
		return func(a, b *domain.Task) int {
			return a.UpdatedAt.Compare(b.UpdatedAt)
		}, true
	default:
		return nil, false
	}
}
