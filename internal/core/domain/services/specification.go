package services

// Specification is a composable yes/no business rule evaluated against a
// candidate. Specifications never mutate state and never fail: a candidate
// either satisfies the rule or it does not, and the calling operation decides
// how to react to false.
type Specification[T any] interface {
	IsSatisfiedBy(candidate T) bool
}

// SpecificationFunc adapts an ordinary predicate function to the
// Specification interface.
type SpecificationFunc[T any] func(candidate T) bool

// IsSatisfiedBy evaluates the wrapped predicate.
func (f SpecificationFunc[T]) IsSatisfiedBy(candidate T) bool {
	return f(candidate)
}

// And builds a specification satisfied only when every given specification
// is satisfied. With no arguments it is always satisfied.
func And[T any](specs ...Specification[T]) Specification[T] {
	return SpecificationFunc[T](func(candidate T) bool {
		for _, spec := range specs {
			if !spec.IsSatisfiedBy(candidate) {
				return false
			}
		}
		return true
	})
}

// Or builds a specification satisfied when at least one of the given
// specifications is satisfied. With no arguments it is never satisfied.
func Or[T any](specs ...Specification[T]) Specification[T] {
	return SpecificationFunc[T](func(candidate T) bool {
		for _, spec := range specs {
			if spec.IsSatisfiedBy(candidate) {
				return true
			}
		}
		return false
	})
}

// Not inverts a specification.
func Not[T any](spec Specification[T]) Specification[T] {
	return SpecificationFunc[T](func(candidate T) bool {
		return !spec.IsSatisfiedBy(candidate)
	})
}
