// Package memory is an in-memory model store.
//
// It backs the CLI (documents are loaded from and saved to JSON files) and
// serves as the test double for every core component. Transactions work on a
// snapshot: if the unit of work fails, the snapshot is restored.
package memory

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/matzehuels/framewright/pkg/errors"
	"github.com/matzehuels/framewright/pkg/model"
)

// Store holds a document in memory. It is safe for concurrent use; at most
// one transaction runs at a time.
type Store struct {
	mu       sync.Mutex
	elements map[model.ID]*model.Element
	order    []model.ID
	newID    func() model.ID
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the uuid-based id generator. Tests use it to get
// predictable ids.
func WithIDGenerator(fn func() model.ID) Option {
	return func(s *Store) { s.newID = fn }
}

// New creates a store holding copies of elements.
// It returns an error if an id is empty or repeated.
func New(elements []*model.Element, opts ...Option) (*Store, error) {
	s := &Store{
		elements: make(map[model.ID]*model.Element, len(elements)),
		newID:    func() model.ID { return model.ID(uuid.NewString()) },
	}
	for _, o := range opts {
		o(s)
	}
	for _, e := range elements {
		if err := s.insert(e.Clone()); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MustNew is New for fixtures; it panics on error.
func MustNew(elements ...*model.Element) *Store {
	s, err := New(elements)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Store) insert(e *model.Element) error {
	if e == nil || e.ID == "" {
		return errors.New(errors.ErrCodeInvalidModel, "element without id")
	}
	if _, dup := s.elements[e.ID]; dup {
		return errors.New(errors.ErrCodeInvalidModel, "duplicate element id %s", e.ID)
	}
	switch {
	case e.Class == model.ClassView && e.View == nil:
		return errors.New(errors.ErrCodeInvalidModel, "view %s has no view frame", e.ID)
	case e.Class == model.ClassSheet && e.Sheet == nil:
		return errors.New(errors.ErrCodeInvalidModel, "sheet %s has no sheet info", e.ID)
	case e.Class == model.ClassViewport && e.Viewport == nil:
		return errors.New(errors.ErrCodeInvalidModel, "viewport %s has no placement", e.ID)
	}
	s.elements[e.ID] = e
	s.order = append(s.order, e.ID)
	return nil
}

// Element returns a copy of the element.
func (s *Store) Element(id model.ID) (*model.Element, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(id)
}

// Elements returns copies of every element of the class in insertion order.
func (s *Store) Elements(class model.Class) ([]*model.Element, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list(class), nil
}

// All returns copies of every element in insertion order.
func (s *Store) All() []*model.Element {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.Element, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.elements[id].Clone())
	}
	return out
}

// Len returns the number of elements in the document.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

func (s *Store) get(id model.ID) (*model.Element, error) {
	e, ok := s.elements[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "element %s not found", id)
	}
	return e.Clone(), nil
}

func (s *Store) list(class model.Class) []*model.Element {
	var out []*model.Element
	for _, id := range s.order {
		if e := s.elements[id]; e.Class == class {
			out = append(out, e.Clone())
		}
	}
	return out
}

// Transact runs fn as one unit of work. Any error from fn (or a panic)
// restores the document to its state before the call.
func (s *Store) Transact(name string, fn func(tx model.Tx) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[model.ID]*model.Element, len(s.elements))
	for id, e := range s.elements {
		snapshot[id] = e.Clone()
	}
	order := slices.Clone(s.order)

	tx := &tx{s: s}
	defer func() {
		if r := recover(); r != nil {
			err = errors.New(errors.ErrCodeInternal, "transaction %q panicked: %v", name, r)
		}
		if err != nil {
			s.elements = snapshot
			s.order = order
		}
		tx.closed = true
	}()
	return fn(tx)
}

// nextName returns the first "<prefix> <n>" not used by a view.
func (s *Store) nextName(prefix string) string {
	for n := 1; ; n++ {
		name := fmt.Sprintf("%s %d", prefix, n)
		if !s.viewNameTaken(name, "") {
			return name
		}
	}
}

func (s *Store) viewNameTaken(name string, except model.ID) bool {
	for id, e := range s.elements {
		if id != except && e.Class == model.ClassView && e.Name == name {
			return true
		}
	}
	return false
}
