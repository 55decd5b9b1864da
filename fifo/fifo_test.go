package fifo

import (
	"testing"
)

func TestPushPopInOrder(t *testing.T) {
	for size := 1; size <= 8; size++ {
		for n := 0; n <= size; n++ {
			f := New[int](size)
			for i := 0; i < n; i++ {
				f.Push(i)
			}
			if f.Len() != n {
				t.Fatalf("size=%d n=%d: (got len: %v) (expected: %v)", size, n, f.Len(), n)
			}
			for i := 0; i < n; i++ {
				v, ok := f.Pop()
				if !ok || v != i {
					t.Fatalf("size=%d n=%d: (got: %v, %v) (expected: %v, true)", size, n, v, ok, i)
				}
			}
			if !f.IsEmpty() {
				t.Fatalf("size=%d n=%d: not empty after draining", size, n)
			}
		}
	}
}

func TestOverwriteOldest(t *testing.T) {
	table := []struct {
		size, pushes int
		expected     []int
	}{
		{4, 5, []int{1, 2, 3, 4}},
		{4, 6, []int{2, 3, 4, 5}},
		{4, 11, []int{7, 8, 9, 10}},
		{1, 3, []int{2}},
	}

	for _, entry := range table {
		f := New[int](entry.size)
		for i := 0; i < entry.pushes; i++ {
			f.Push(i)
		}
		if f.Len() != f.Cap() {
			t.Fatalf("%+v: (got len: %v) (expected: %v)", entry, f.Len(), f.Cap())
		}
		for _, expected := range entry.expected {
			v, ok := f.Pop()
			if !ok || v != expected {
				t.Fatalf("%+v: (got: %v, %v) (expected: %v, true)", entry, v, ok, expected)
			}
		}
		if _, ok := f.Pop(); ok {
			t.Fatalf("%+v: pop succeeded on drained buffer", entry)
		}
	}
}

func TestPopEmpty(t *testing.T) {
	f := New[string](4)
	if !f.IsEmpty() {
		t.Fatalf("new buffer is not empty")
	}
	v, ok := f.Pop()
	if ok || v != "" {
		t.Fatalf("(got: %q, %v) (expected: \"\", false)", v, ok)
	}
}

func TestIsEmptyTracksPushesAndPops(t *testing.T) {
	f := New[int](4)
	pushes, pops := 0, 0
	// Interleave without ever exceeding capacity, crossing the wrap point several times.
	ops := "pppoopoppoopppooo"
	for i, op := range ops {
		if op == 'p' {
			f.Push(i)
			pushes++
		} else {
			if _, ok := f.Pop(); !ok {
				t.Fatalf("step %d: unexpected empty buffer", i)
			}
			pops++
		}
		if f.IsEmpty() != (pushes == pops) {
			t.Fatalf("step %d: (got empty: %v) (pushes: %d, pops: %d)", i, f.IsEmpty(), pushes, pops)
		}
	}
}

func TestPopReleasesSlot(t *testing.T) {
	f := New[*int](2)
	x := 1
	f.Push(&x)
	f.Pop()
	for _, p := range f.buf {
		if p != nil {
			t.Fatalf("popped slot still holds a reference")
		}
	}
}

func TestNewRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("New(%d) did not panic", size)
				}
			}()
			New[int](size)
		}()
	}
}
