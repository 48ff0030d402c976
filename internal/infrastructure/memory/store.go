// Package memory implementa los repositorios del dominio sobre colecciones en memoria.
// El estado vive lo que vive el proceso: no hay persistencia.
package memory

import "sync"

// store colección protegida por RWMutex. Guarda valores y entrega copias,
// de modo que quien lee no puede alterar el estado sin pasar por update.
type store[K comparable, T any] struct {
	mu    sync.RWMutex
	items []T // más reciente primero
	key   func(*T) K
}

func newStore[K comparable, T any](key func(*T) K, seed []T) *store[K, T] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &store[K, T]{items: items, key: key}
}

// prepend construye el registro con seq = tamaño previo + 1 y lo inserta al principio.
// build corre bajo el lock: seq y la inserción son atómicos.
func (s *store[K, T]) prepend(build func(seq int) *T) (*T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := build(len(s.items) + 1)
	if rec == nil {
		return nil, false
	}
	s.items = append([]T{*rec}, s.items...)
	out := *rec
	return &out, true
}

func (s *store[K, T]) get(id K) (*T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if s.key(&s.items[i]) == id {
			v := s.items[i]
			return &v, true
		}
	}
	return nil, false
}

// list devuelve copias de los registros que cumplen keep (nil = todos).
func (s *store[K, T]) list(keep func(*T) bool) []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*T, 0, len(s.items))
	for i := range s.items {
		if keep != nil && !keep(&s.items[i]) {
			continue
		}
		v := s.items[i]
		out = append(out, &v)
	}
	return out
}

// update aplica mutate sobre una copia del registro y la guarda solo si mutate no
// devuelve error. La lectura del estado actual y la escritura ocurren bajo el mismo lock.
func (s *store[K, T]) update(id K, mutate func(*T) error) (*T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.key(&s.items[i]) == id {
			v := s.items[i]
			if err := mutate(&v); err != nil {
				return nil, true, err
			}
			s.items[i] = v
			return &v, true, nil
		}
	}
	return nil, false, nil
}

func (s *store[K, T]) size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
