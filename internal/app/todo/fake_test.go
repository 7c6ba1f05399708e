package todo

import (
	"context"
	"sync"
)

// memoryStore is an in-memory Store used by the handler tests.
type memoryStore struct {
	mux   sync.Mutex
	todos []Todo
	err   error

	lastOffset int64
	lastLimit  int64
}

func (s *memoryStore) Create(_ context.Context, todo Todo) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.err != nil {
		return s.err
	}

	s.todos = append(s.todos, todo)
	return nil
}

func (s *memoryStore) List(_ context.Context, offset, limit int64) ([]Todo, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.err != nil {
		return nil, s.err
	}

	s.lastOffset, s.lastLimit = offset, limit

	todos := []Todo{}
	for i := offset; i < int64(len(s.todos)) && i < offset+limit; i++ {
		todos = append(todos, s.todos[i])
	}

	return todos, nil
}

func (s *memoryStore) Update(_ context.Context, input UpdateInput) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.err != nil {
		return s.err
	}

	for i := range s.todos {
		if s.todos[i].ID != input.ID {
			continue
		}

		if input.Description != nil {
			s.todos[i].Description = *input.Description
		}

		if input.Completed != nil {
			s.todos[i].Completed = *input.Completed
		}

		return nil
	}

	return ErrNotFound
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.err != nil {
		return s.err
	}

	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return nil
		}
	}

	return ErrNotFound
}
