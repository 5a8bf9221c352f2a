package task

import (
	"fmt"
)

// Registry holds the static task set. It preserves declaration order so
// that listings come out the way tasks were registered.
type Registry struct {
	order []string
	tasks map[string]Task
}

func NewRegistry() *Registry {
	return &Registry{
		tasks: make(map[string]Task),
	}
}

// Register adds a task to the set. Task names must be unique.
func (r *Registry) Register(t Task) error {
	if t.Name == "" {
		return fmt.Errorf("task name is required")
	}
	if _, exists := r.tasks[t.Name]; exists {
		return fmt.Errorf("task %q is already registered", t.Name)
	}
	r.order = append(r.order, t.Name)
	r.tasks[t.Name] = t
	return nil
}

// Get looks up a task by name.
func (r *Registry) Get(name string) (Task, error) {
	t, ok := r.tasks[name]
	if !ok {
		return Task{}, &UnknownTaskError{Name: name, Available: r.Names()}
	}
	return t, nil
}

// Names returns all declared task names in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// List returns all tasks in declaration order.
func (r *Registry) List() []Task {
	tasks := make([]Task, 0, len(r.order))
	for _, name := range r.order {
		tasks = append(tasks, r.tasks[name])
	}
	return tasks
}
