// Package block keeps the block tree of every open root document.
//
// Blocks are stored by value. Get and Children return copies whose content
// payload is shared and must be treated as read only; the store replaces a
// payload instead of mutating it.
package block

import (
	"maps"
	"slices"
	"sync"

	"github.com/blockgraph/blockgraph.go/pkg/logger"
	"github.com/blockgraph/blockgraph.go/pkg/models"
)

type Store struct {
	mu     sync.RWMutex
	roots  map[string]map[string]models.Block
	logger logger.Logger
}

func New(l logger.Logger) *Store {
	if l == nil {
		l = logger.Discard()
	}
	return &Store{
		roots:  make(map[string]map[string]models.Block),
		logger: l,
	}
}

func (s *Store) rootLocked(root string) map[string]models.Block {
	m, ok := s.roots[root]
	if !ok {
		m = make(map[string]models.Block)
		s.roots[root] = m
		s.logger.Debug("block root created", "rootId", root)
	}
	return m
}

// Set replaces the whole tree of root.
func (s *Store) Set(root string, blocks []models.Block) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.roots, root)
	m := s.rootLocked(root)
	for _, b := range blocks {
		b.Normalize()
		m[b.ID] = b
	}
}

// Add inserts or replaces blocks. Parents are not touched, the backend
// follows up with SetChildrenIDs.
func (s *Store) Add(root string, blocks ...models.Block) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.rootLocked(root)
	for _, b := range blocks {
		b.Normalize()
		m[b.ID] = b
	}
}

// Delete removes blocks and drops them from every parent's children.
func (s *Store) Delete(root string, ids ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.roots[root]
	if !ok {
		return
	}
	for _, id := range ids {
		delete(m, id)
	}
	for id, b := range m {
		kept := slices.DeleteFunc(slices.Clone(b.ChildrenIDs), func(c string) bool {
			return slices.Contains(ids, c)
		})
		if len(kept) != len(b.ChildrenIDs) {
			b.ChildrenIDs = kept
			m[id] = b
		}
	}
}

func (s *Store) SetChildrenIDs(root, id string, childrenIDs []string) {
	s.update(root, id, func(b *models.Block) {
		b.ChildrenIDs = append([]string{}, childrenIDs...)
	})
}

func (s *Store) SetFields(root, id string, fields map[string]any) {
	s.update(root, id, func(b *models.Block) {
		b.Fields = maps.Clone(fields)
		if b.Fields == nil {
			b.Fields = map[string]any{}
		}
	})
}

func (s *Store) update(root, id string, fn func(b *models.Block)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.roots[root][id]
	if !ok {
		return
	}
	fn(&b)
	s.roots[root][id] = b
}

func (s *Store) Get(root, id string) (models.Block, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.roots[root][id]
	if ok {
		b.ChildrenIDs = slices.Clone(b.ChildrenIDs)
	}
	return b, ok
}

// Children returns the child blocks of id in order. Ids without a stored
// block are skipped.
func (s *Store) Children(root, id string) []models.Block {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m := s.roots[root]
	parent, ok := m[id]
	if !ok {
		return []models.Block{}
	}

	out := make([]models.Block, 0, len(parent.ChildrenIDs))
	for _, childID := range parent.ChildrenIDs {
		if child, ok := m[childID]; ok {
			child.ChildrenIDs = slices.Clone(child.ChildrenIDs)
			out = append(out, child)
		}
	}
	return out
}

// Views returns the views of a dataview block.
func (s *Store) Views(root, blockID string) []models.View {
	b, ok := s.Get(root, blockID)
	if !ok {
		return []models.View{}
	}
	dv, ok := b.Dataview()
	if !ok {
		return []models.View{}
	}
	return slices.Clone(dv.Views)
}

// ViewSet replaces the view with the same id, or appends it.
func (s *Store) ViewSet(root, blockID string, view models.View) {
	s.updateDataview(root, blockID, func(dv *models.DataviewContent) {
		view = models.NewView(view)
		i := slices.IndexFunc(dv.Views, func(v models.View) bool { return v.ID == view.ID })
		if i >= 0 {
			dv.Views[i] = view
		} else {
			dv.Views = append(dv.Views, view)
		}
	})
}

func (s *Store) ViewDelete(root, blockID, viewID string) {
	s.updateDataview(root, blockID, func(dv *models.DataviewContent) {
		dv.Views = slices.DeleteFunc(dv.Views, func(v models.View) bool { return v.ID == viewID })
	})
}

func (s *Store) updateDataview(root, blockID string, fn func(dv *models.DataviewContent)) {
	s.update(root, blockID, func(b *models.Block) {
		dv, ok := b.Dataview()
		if !ok {
			return
		}
		next := *dv
		next.Views = slices.Clone(dv.Views)
		fn(&next)
		b.Content = &next
	})
}

func (s *Store) Clear(root string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.roots, root)
	s.logger.Debug("block root cleared", "rootId", root)
}

func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roots = make(map[string]map[string]models.Block)
}
