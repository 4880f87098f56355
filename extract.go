package opt

// Extract recovers the wrapped objective as its concrete type. It is the
// capability-query counterpart of wrapping: optional data that lives on
// the user-defined type but not on the container surface (for example
// reference solutions on a test problem) stays reachable after wrapping.
//
//	p, _ := opt.New(opt.Quadratic{})
//	q, ok := opt.Extract[opt.Quadratic](p)
//	if ok {
//		fmt.Println(q.BestKnown())
//	}
//
// The second return value is false when the wrapped objective is not a T.
func Extract[T Objective](p *Problem) (T, bool) {
	t, ok := p.obj.(T)
	return t, ok
}
