package task

import (
	"sync"

	domain "github.com/example/task-manager-demo/domain/task"
)

// TaskRepository provides in-memory task storage with stable insertion
// order. It owns the authoritative set of task records: every read returns
// a clone, and ids are compared with exact string equality.
//
// All operations take the single mutex, so interleaved read/modify/write
// cycles cannot corrupt the uniqueness invariant or lose updates.
type TaskRepository struct {
	tasks map[string]*domain.Task
	order []string
	mu    sync.RWMutex
}

// NewTaskRepository creates an empty task repository.
func NewTaskRepository() *TaskRepository {
	return &TaskRepository{
		tasks: make(map[string]*domain.Task),
	}
}

// Insert appends a task. Returns ErrTaskExists if the id is already present.
func (r *TaskRepository) Insert(task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, found := r.tasks[task.ID]; found {
		return ErrTaskExists
	}
	r.tasks[task.ID] = task.Clone()
	r.order = append(r.order, task.ID)
	return nil
}

// Replace overwrites the record with the matching id, preserving its
// position in the insertion order. Returns ErrTaskNotFound if absent.
func (r *TaskRepository) Replace(id string, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, found := r.tasks[id]; !found {
		return ErrTaskNotFound
	}
	r.tasks[id] = task.Clone()
	return nil
}

// Remove deletes the record with the matching id.
func (r *TaskRepository) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, found := r.tasks[id]; !found {
		return ErrTaskNotFound
	}
	delete(r.tasks, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// FindByID returns a copy of the task with the matching id.
func (r *TaskRepository) FindByID(id string) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, found := r.tasks[id]
	if !found {
		return nil, ErrTaskNotFound
	}
	return task.Clone(), nil
}

// All returns a snapshot of all tasks in insertion order.
func (r *TaskRepository) All() []*domain.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Task, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.tasks[id].Clone())
	}
	return result
}
