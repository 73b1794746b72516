package fieldptr

import (
	"fmt"

	"github.com/arthur-debert/fieldptr/pkg/logging"
)

// Registry maps roles of type R to sublists of *T handles. The zero value is
// unusable; create one with New.
type Registry[R ~int, T any] struct {
	n     int
	cells []cell[T]
}

// Entry is one role's sublist as returned by Snapshot. Handles is nil for a
// role that was never mapped.
type Entry[R ~int, T any] struct {
	Role    R
	Handles []*T
}

// New returns an uninitialized registry for n roles
func New[R ~int, T any](n int) *Registry[R, T] {
	if n < 0 {
		panic(fmt.Sprintf("fieldptr: negative role count %d", n))
	}
	return &Registry[R, T]{n: n}
}

// Len returns the number of roles
func (r *Registry[R, T]) Len() int {
	return r.n
}

// Ready reports whether the table is allocated
func (r *Registry[R, T]) Ready() bool {
	return r.cells != nil
}

// EnsureReady allocates an empty table if there is none. It is idempotent.
func (r *Registry[R, T]) EnsureReady() {
	if r.cells != nil {
		return
	}
	r.cells = make([]cell[T], r.n)
	logger := logging.GetLogger("fieldptr")
	logger.Trace().Int("roles", r.n).Msg("Field pointer table allocated")
}

// Teardown releases every promoted sublist and the table. The referenced
// fields are left untouched. The registry may be made ready again.
func (r *Registry[R, T]) Teardown() {
	if r.cells == nil {
		panic("fieldptr: teardown of uninitialized registry")
	}
	promoted := 0
	for i := range r.cells {
		if r.cells[i].kind == cellArray {
			promoted++
		}
		r.cells[i].release()
	}
	r.cells = nil
	logger := logging.GetLogger("fieldptr")
	logger.Trace().Int("promoted", promoted).Msg("Field pointer table released")
}

// Map maps h to role; it is MapIndexed(role, 0, h)
func (r *Registry[R, T]) Map(role R, h *T) {
	r.MapIndexed(role, 0, h)
}

// MapIndexed maps h to (role, index), growing the role's sublist to
// index+1 when needed. New slots are nil. The last write to an index wins.
func (r *Registry[R, T]) MapIndexed(role R, index int, h *T) {
	if index < 0 {
		panic(fmt.Sprintf("fieldptr: negative sublist index %d for role %d", index, int(role)))
	}
	r.EnsureReady()
	r.cellOf(role).set(index, h)
}

// Lookup returns the handle at index 0 of role, or nil
func (r *Registry[R, T]) Lookup(role R) *T {
	return r.LookupIndexed(role, 0)
}

// LookupIndexed returns the handle at (role, index), or nil if that index
// was never written or lies beyond the sublist.
func (r *Registry[R, T]) LookupIndexed(role R, index int) *T {
	if index < 0 {
		panic(fmt.Sprintf("fieldptr: negative sublist index %d for role %d", index, int(role)))
	}
	return r.readCell(role).get(index)
}

// SublistSize returns the number of slots of role: 0 if never mapped
func (r *Registry[R, T]) SublistSize(role R) int {
	return r.readCell(role).size()
}

// Snapshot copies every role's sublist, in role order
func (r *Registry[R, T]) Snapshot() []Entry[R, T] {
	if r.cells == nil {
		panic("fieldptr: snapshot of uninitialized registry")
	}
	out := make([]Entry[R, T], len(r.cells))
	for i := range r.cells {
		out[i] = Entry[R, T]{Role: R(i), Handles: r.cells[i].handles()}
	}
	return out
}

func (r *Registry[R, T]) readCell(role R) *cell[T] {
	if r.cells == nil {
		panic(fmt.Sprintf("fieldptr: lookup of role %d in uninitialized registry", int(role)))
	}
	return r.cellOf(role)
}

func (r *Registry[R, T]) cellOf(role R) *cell[T] {
	i := int(role)
	if i < 0 || i >= r.n {
		panic(fmt.Sprintf("fieldptr: role %d out of range [0, %d)", i, r.n))
	}
	return &r.cells[i]
}
