package engine

import (
	"errors"
	"sort"
)

// ErrDuplicateProgram is returned when a program name is already registered.
var ErrDuplicateProgram = errors.New("a program with that name already exists")

// ProgramRegistry maps program names to linked program handles.
// Names are unique under exact equality.
type ProgramRegistry struct {
	programs map[string]uint32
}

// NewProgramRegistry returns an empty registry.
func NewProgramRegistry() *ProgramRegistry {
	return &ProgramRegistry{programs: make(map[string]uint32)}
}

// Add registers handle under name. It fails without modifying the registry
// if the name is taken.
func (r *ProgramRegistry) Add(name string, handle uint32) error {
	if _, ok := r.programs[name]; ok {
		return ErrDuplicateProgram
	}
	r.programs[name] = handle
	return nil
}

// Get returns the handle registered under name.
func (r *ProgramRegistry) Get(name string) (uint32, bool) {
	h, ok := r.programs[name]
	return h, ok
}

// Remove unregisters name and returns its handle. The program itself is not
// deleted; whoever compiled it still owns it.
func (r *ProgramRegistry) Remove(name string) (uint32, bool) {
	h, ok := r.programs[name]
	if ok {
		delete(r.programs, name)
	}
	return h, ok
}

// Len returns the number of registered programs.
func (r *ProgramRegistry) Len() int {
	return len(r.programs)
}

// Names returns the registered names in sorted order.
func (r *ProgramRegistry) Names() []string {
	names := make([]string, 0, len(r.programs))
	for name := range r.programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
