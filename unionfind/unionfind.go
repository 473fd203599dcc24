package unionfind

import "fmt"

// DisjointSet is a union-find structure over the element ids [0, m).
// Roots are tracked with a parent slice; size is meaningful only at roots.
type DisjointSet struct {
	parent []int
	size   []int
	count  int // number of disjoint sets remaining
}

// New constructs a DisjointSet of m singleton sets.
// Returns ErrInvalidArgument if m < 1.
// Complexity: O(m) time and memory.
func New(m int) (*DisjointSet, error) {
	if m < 1 {
		return nil, fmt.Errorf("%w: size %d must be positive", ErrInvalidArgument, m)
	}
	ds := &DisjointSet{
		parent: make([]int, m),
		size:   make([]int, m),
		count:  m,
	}
	for i := range ds.parent {
		ds.parent[i] = i
		ds.size[i] = 1
	}

	return ds, nil
}

// Len returns the number of elements in the universe.
func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}

// Count returns the number of disjoint sets.
func (ds *DisjointSet) Count() int {
	return ds.count
}

// Find returns the root of the set containing x.
// Each visited node is re-pointed to its grandparent (path halving), so
// repeated queries flatten the tree.
// Complexity: O(α(m)) amortized.
func (ds *DisjointSet) Find(x int) (int, error) {
	if err := ds.validate(x); err != nil {
		return 0, err
	}

	return ds.root(x), nil
}

// Union merges the sets containing x and y. The root of the larger set
// survives; on equal sizes the root of x wins. Joining elements that already
// share a set is a no-op.
// Complexity: O(α(m)) amortized.
func (ds *DisjointSet) Union(x, y int) error {
	if err := ds.validate(x); err != nil {
		return err
	}
	if err := ds.validate(y); err != nil {
		return err
	}

	rx, ry := ds.root(x), ds.root(y)
	if rx == ry {
		return nil
	}
	if ds.size[rx] < ds.size[ry] {
		rx, ry = ry, rx
	}
	ds.parent[ry] = rx
	ds.size[rx] += ds.size[ry]
	ds.count--

	return nil
}

// Connected reports whether x and y belong to the same set.
func (ds *DisjointSet) Connected(x, y int) (bool, error) {
	if err := ds.validate(x); err != nil {
		return false, err
	}
	if err := ds.validate(y); err != nil {
		return false, err
	}

	return ds.root(x) == ds.root(y), nil
}

// SizeOf returns the number of elements in the set containing x.
func (ds *DisjointSet) SizeOf(x int) (int, error) {
	if err := ds.validate(x); err != nil {
		return 0, err
	}

	return ds.size[ds.root(x)], nil
}

// root walks to the root of x with path halving. x must be valid.
func (ds *DisjointSet) root(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}

	return x
}

func (ds *DisjointSet) validate(x int) error {
	if x < 0 || x >= len(ds.parent) {
		return fmt.Errorf("%w: element %d outside [0,%d)", ErrInvalidArgument, x, len(ds.parent))
	}

	return nil
}
