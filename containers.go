package aoc

// NewQueue returns a FIFO queue holding in.
func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{
		q: in,
	}
}

// Queue is a FIFO queue. The zero value is ready to use.
type Queue[T any] struct {
	q []T
}

func (q *Queue[T]) Len() int {
	return len(q.q)
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	if len(q.q) == 0 {
		var zero T
		return zero, false
	}
	v := q.q[0]
	q.q = q.q[1:]
	return v, true
}

// While pops values and passes them to f until the queue is empty or f
// returns false. f may push more values.
func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}

// Set is a set of comparable values.
type Set[K comparable] map[K]struct{}

// SetOf returns a set holding vs.
func SetOf[K comparable](vs ...K) Set[K] {
	s := make(Set[K], len(vs))
	for _, v := range vs {
		s.Add(v)
	}
	return s
}

func (s Set[K]) Add(v K) { s[v] = struct{}{} }

func (s Set[K]) Has(v K) bool {
	_, ok := s[v]
	return ok
}
