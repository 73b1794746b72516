package fieldptr

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellScalar
	cellArray
)

// cell is the storage of one role: nothing, one inline handle, or a slice.
type cell[T any] struct {
	kind   cellKind
	scalar *T
	array  []*T
}

func (c *cell[T]) size() int {
	switch c.kind {
	case cellScalar:
		return 1
	case cellArray:
		return len(c.array)
	}
	return 0
}

func (c *cell[T]) get(index int) *T {
	switch c.kind {
	case cellScalar:
		if index == 0 {
			return c.scalar
		}
	case cellArray:
		if index < len(c.array) {
			return c.array[index]
		}
	}
	return nil
}

func (c *cell[T]) set(index int, h *T) {
	if index == 0 && c.kind != cellArray {
		c.kind = cellScalar
		c.scalar = h
		return
	}
	if c.size() <= index {
		c.grow(index + 1)
	}
	c.array[index] = h
}

// grow makes the cell an array of n slots, n > size(). A scalar moves into
// slot 0; an existing array keeps its slots.
func (c *cell[T]) grow(n int) {
	switch c.kind {
	case cellArray:
		c.array = append(c.array, make([]*T, n-len(c.array))...)
	default:
		array := make([]*T, n)
		array[0] = c.scalar
		c.array = array
		c.scalar = nil
		c.kind = cellArray
	}
}

func (c *cell[T]) handles() []*T {
	switch c.kind {
	case cellScalar:
		return []*T{c.scalar}
	case cellArray:
		out := make([]*T, len(c.array))
		copy(out, c.array)
		return out
	}
	return nil
}

func (c *cell[T]) release() {
	c.array = nil
	c.scalar = nil
	c.kind = cellEmpty
}
