// Package record keeps the record id lists of search subscriptions, keyed
// by subscription id, and the manual object order of board groups.
package record

import (
	"slices"
	"strings"
	"sync"

	"github.com/blockgraph/blockgraph.go/pkg/logger"
	"github.com/blockgraph/blockgraph.go/pkg/models"
	"github.com/blockgraph/blockgraph.go/pkg/observable"
)

const separator = "-"

// SubID is the subscription id of a dataview block. Empty parts are
// skipped, so SubID(sub, "") == sub.
func SubID(root, block string) string {
	return join(root, block)
}

// GroupSubID is the subscription id of one board group of a dataview block.
func GroupSubID(root, block, group string) string {
	return join(root, block, group)
}

func join(parts ...string) string {
	return strings.Join(slices.DeleteFunc(parts, func(s string) bool { return s == "" }), separator)
}

// Meta describes the state of a subscription beyond its record ids.
type Meta struct {
	Total     int64
	NextCount int64
	PrevCount int64
	Offset    int64
	ViewID    string
}

type Store struct {
	mu      sync.RWMutex
	records map[string]*observable.Cell[[]string]
	meta    map[string]Meta
	orders  map[string][]models.ObjectOrder

	logger logger.Logger
}

func New(l logger.Logger) *Store {
	if l == nil {
		l = logger.Discard()
	}
	return &Store{
		records: make(map[string]*observable.Cell[[]string]),
		meta:    make(map[string]Meta),
		orders:  make(map[string][]models.ObjectOrder),
		logger:  l,
	}
}

func (s *Store) cell(key string) *observable.Cell[[]string] {
	s.mu.RLock()
	c, ok := s.records[key]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok = s.records[key]; !ok {
		c = observable.NewCell([]string{}, observable.WithEqual(slices.Equal[[]string]))
		s.records[key] = c
	}
	return c
}

// RecordsSet replaces the record ids of a subscription.
func (s *Store) RecordsSet(root, block string, ids []string) {
	s.cell(SubID(root, block)).Set(slices.Clone(nonNil(ids)))
}

func (s *Store) RecordsClear(root, block string) {
	s.cell(SubID(root, block)).Set([]string{})
}

// RecordIDs returns a copy of the subscription's record ids.
func (s *Store) RecordIDs(root, block string) []string {
	s.mu.RLock()
	c, ok := s.records[SubID(root, block)]
	s.mu.RUnlock()
	if !ok {
		return []string{}
	}
	return slices.Clone(c.Get())
}

// RecordAdd inserts id after afterID, or first when afterID is empty or
// unknown. An id already in the list is moved.
func (s *Store) RecordAdd(root, block, id, afterID string) {
	c := s.cell(SubID(root, block))

	ids := slices.DeleteFunc(slices.Clone(c.Get()), func(v string) bool { return v == id })
	pos := 0
	if afterID != "" {
		if i := slices.Index(ids, afterID); i >= 0 {
			pos = i + 1
		}
	}
	c.Set(slices.Insert(ids, pos, id))
}

func (s *Store) RecordDelete(root, block, id string) {
	c := s.cell(SubID(root, block))
	c.Set(slices.DeleteFunc(slices.Clone(c.Get()), func(v string) bool { return v == id }))
}

func (s *Store) MetaSet(root, block string, meta Meta) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta[SubID(root, block)] = meta
}

func (s *Store) Meta(root, block string) Meta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.meta[SubID(root, block)]
}

// ObjectOrderSet replaces the manual orders of a dataview block.
func (s *Store) ObjectOrderSet(root, block string, orders []models.ObjectOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[SubID(root, block)] = slices.Clone(orders)
}

// ObjectOrderUpdate replaces the order of one view group, or adds it.
func (s *Store) ObjectOrderUpdate(root, block string, order models.ObjectOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := SubID(root, block)
	orders := slices.Clone(s.orders[key])
	i := slices.IndexFunc(orders, func(o models.ObjectOrder) bool {
		return o.ViewID == order.ViewID && o.GroupID == order.GroupID
	})
	if i >= 0 {
		orders[i] = order
	} else {
		orders = append(orders, order)
	}
	s.orders[key] = orders
}

// ApplyObjectOrder sorts ids by their position in the manual order of the
// view group. Ids the order does not mention keep their relative order and
// come first. Without an order ids are returned unchanged.
func (s *Store) ApplyObjectOrder(root, block, viewID, groupID string, ids []string) []string {
	out := slices.Clone(nonNil(ids))

	s.mu.RLock()
	orders := s.orders[SubID(root, block)]
	i := slices.IndexFunc(orders, func(o models.ObjectOrder) bool {
		return o.ViewID == viewID && o.GroupID == groupID
	})
	var objectIDs []string
	if i >= 0 {
		objectIDs = orders[i].ObjectIDs
	}
	s.mu.RUnlock()

	if i < 0 {
		return out
	}

	slices.SortStableFunc(out, func(a, b string) int {
		return slices.Index(objectIDs, a) - slices.Index(objectIDs, b)
	})
	return out
}

// Watch calls fn with the new record ids whenever they change.
func (s *Store) Watch(root, block string, fn func(ids []string)) func() {
	return s.cell(SubID(root, block)).Subscribe(func(_, next []string) {
		fn(slices.Clone(next))
	})
}

// Clear drops every subscription and order that belongs to root.
func (s *Store) Clear(root string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	owned := func(key string) bool {
		return key == root || strings.HasPrefix(key, root+separator)
	}
	dropped := 0
	for key := range s.records {
		if owned(key) {
			delete(s.records, key)
			dropped++
		}
	}
	for key := range s.meta {
		if owned(key) {
			delete(s.meta, key)
		}
	}
	for key := range s.orders {
		if owned(key) {
			delete(s.orders, key)
		}
	}
	s.logger.Debug("record root cleared", "rootId", root, "subscriptions", dropped)
}

func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make(map[string]*observable.Cell[[]string])
	s.meta = make(map[string]Meta)
	s.orders = make(map[string][]models.ObjectOrder)
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
