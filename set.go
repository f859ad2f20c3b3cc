package main

import (
	"iter"
	"maps"
)

type Set[T comparable] struct {
	values map[T]struct{}
}

func SetOf[T comparable](values ...T) Set[T] {
	var set Set[T]
	for _, value := range values {
		set.Insert(value)
	}

	return set
}

func (s *Set[T]) Insert(value T) {
	if s.values == nil {
		s.values = make(map[T]struct{})
	}

	s.values[value] = struct{}{}
}

func (s *Set[T]) Remove(value T) {
	delete(s.values, value)
}

func (s *Set[T]) Has(value T) bool {
	_, ok := s.values[value]
	return ok
}

func (s *Set[T]) Iter() iter.Seq[T] {
	return maps.Keys(s.values)
}

func (s *Set[T]) Len() int {
	return len(s.values)
}
