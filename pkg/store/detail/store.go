// Package detail is the reactive store of object details.
//
// Details are kept per root document and per object id as an ordered list
// of (relation key, value) cells. Updating a key that already has a cell
// writes through that cell, so anyone holding it sees the new value without
// resubscribing. Writing a value equal to the current one is dropped.
package detail

import (
	"maps"
	"reflect"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/blockgraph/blockgraph.go/pkg/models"
	"github.com/blockgraph/blockgraph.go/pkg/observable"
)

// Detail is a single relation key/value cell.
type Detail struct {
	RelationKey string
	value       *observable.Cell[any]
}

func newDetail(key string, value any) *Detail {
	return &Detail{RelationKey: key, value: observable.NewCell(value)}
}

func (d *Detail) Value() any {
	return d.value.Get()
}

// Subscribe calls fn whenever the cell value changes.
func (d *Detail) Subscribe(fn observable.Listener[any]) func() {
	return d.value.Subscribe(fn)
}

type entry struct {
	list  []*Detail
	index map[string]*Detail
}

func newEntry() *entry {
	return &entry{index: make(map[string]*Detail)}
}

func (e *entry) add(d *Detail) {
	e.list = append(e.list, d)
	e.index[d.RelationKey] = d
}

func (e *entry) snapshot() map[string]any {
	out := make(map[string]any, len(e.list))
	for _, d := range e.list {
		out[d.RelationKey] = d.Value()
	}
	return out
}

type watchKey struct {
	root string
	id   string
}

// Store holds details for any number of root documents. The zero value is
// not usable, use New.
type Store struct {
	mu    sync.RWMutex
	roots map[string]map[string]*entry

	watchMu  sync.Mutex
	watchers map[watchKey]*observable.Cell[uint64]
	version  atomic.Uint64

	opts options
}

func New(opts ...Option) *Store {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Store{
		roots:    make(map[string]map[string]*entry),
		watchers: make(map[watchKey]*observable.Cell[uint64]),
		opts:     o,
	}
}

// rootLocked returns the root map, creating it when create is set.
func (s *Store) rootLocked(root string, create bool) map[string]*entry {
	m, ok := s.roots[root]
	if !ok && create {
		m = make(map[string]*entry)
		s.roots[root] = m
		s.opts.logger.Debug("detail root created", "rootId", root)
	}
	return m
}

// Set replaces the detail lists of every item in items.
func (s *Store) Set(root string, items []models.Details) {
	changed := make([]string, 0, len(items))

	s.mu.Lock()
	m := s.rootLocked(root, true)
	for _, item := range items {
		e := newEntry()
		for _, k := range sortedKeys(item.Details) {
			e.add(newDetail(k, item.Details[k]))
		}

		prev, ok := m[item.ID]
		m[item.ID] = e
		if !ok || !reflect.DeepEqual(prev.snapshot(), e.snapshot()) {
			changed = append(changed, item.ID)
		}
	}
	s.mu.Unlock()

	for _, id := range changed {
		s.notify(root, id)
	}
}

type pendingWrite struct {
	detail *Detail
	value  any
}

// Update merges item into the object's detail list. With clear set the
// existing list is dropped first, so keys absent from item are lost.
// Existing cells are written in place, new keys are appended. A nil item,
// an item without id or without details is ignored.
func (s *Store) Update(root string, item *models.Details, clear bool) {
	if item == nil || item.ID == "" || item.Details == nil {
		return
	}

	var (
		writes  []pendingWrite
		changed bool
	)

	s.mu.Lock()
	m := s.rootLocked(root, true)

	var before map[string]any
	if prev, ok := m[item.ID]; ok && clear {
		before = prev.snapshot()
		delete(m, item.ID)
	}

	e, ok := m[item.ID]
	if !ok {
		e = newEntry()
		changed = !clear || before == nil
	}

	for _, k := range sortedKeys(item.Details) {
		if d, ok := e.index[k]; ok {
			writes = append(writes, pendingWrite{detail: d, value: item.Details[k]})
			continue
		}
		e.add(newDetail(k, item.Details[k]))
		changed = true
	}
	m[item.ID] = e

	if before != nil {
		changed = !reflect.DeepEqual(before, e.snapshot())
	}
	s.mu.Unlock()

	for _, w := range writes {
		if w.detail.value.Set(w.value) {
			changed = true
		}
	}

	if changed {
		s.notify(root, item.ID)
	}
}

// Delete removes the named keys from the object. Other keys are untouched,
// unknown keys are ignored.
func (s *Store) Delete(root, id string, keys []string) {
	s.mu.Lock()
	m := s.rootLocked(root, false)
	e, ok := m[id]
	if !ok {
		s.mu.Unlock()
		return
	}

	kept := newEntry()
	for _, d := range e.list {
		if slices.Contains(keys, d.RelationKey) {
			continue
		}
		kept.add(d)
	}
	m[id] = kept
	removed := len(kept.list) != len(e.list)
	s.mu.Unlock()

	if removed {
		s.notify(root, id)
	}
}

// GetArray returns the object's cells in insertion order. The slice is a
// copy, the cells are shared.
func (s *Store) GetArray(root, id string) []*Detail {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.roots[root][id]
	if !ok {
		return []*Detail{}
	}
	return slices.Clone(e.list)
}

// Get resolves the object into a flat Object with derived fields filled in.
//
// A nil keys slice returns every key. Otherwise only the listed keys are
// returned, together with the default relation keys unless forceKeys is
// set. An object without details yields {id, _empty_: true}.
func (s *Store) Get(root, id string, keys []string, forceKeys bool) Object {
	list := s.GetArray(root, id)
	if len(list) == 0 {
		return Object{"id": id, EmptyKey: true}
	}

	if keys != nil {
		if !forceKeys {
			keys = append(slices.Clone(keys), s.opts.defaultKeys...)
		}
		list = slices.DeleteFunc(list, func(d *Detail) bool {
			return !slices.Contains(keys, d.RelationKey)
		})
	}

	object := make(Object, len(list)+16)
	for _, d := range list {
		object[d.RelationKey] = d.Value()
	}

	layout := orNumber(object["layout"], float64(models.LayoutPage))
	name := s.opts.defaultName
	if truthy(object["name"]) {
		name = stringValue(object["name"])
	}
	snippet := ""
	if truthy(object["snippet"]) {
		snippet = strings.ReplaceAll(stringValue(object["snippet"]), "\n", " ")
	}

	if models.ObjectLayout(layout) == models.LayoutNote {
		object["coverType"] = float64(models.CoverNone)
		object["coverId"] = ""
		object["iconEmoji"] = ""
		object["iconImage"] = ""
		name = snippet
	}

	if truthy(object["isDeleted"]) {
		name = s.opts.deletedName
	}

	object["id"] = id
	object["name"] = name
	object["layout"] = layout
	object["snippet"] = snippet
	object["type"] = stringValue(object["type"])
	object["iconImage"] = stringValue(object["iconImage"])
	object["layoutAlign"] = orNumber(object["layoutAlign"], float64(models.AlignLeft))
	object["recommendedLayout"] = orNumber(object["recommendedLayout"], float64(models.LayoutPage))
	object["relationFormat"] = orNumber(object["relationFormat"], float64(models.FormatLongText))
	object["coverX"] = number(object["coverX"])
	object["coverY"] = number(object["coverY"])
	object["coverScale"] = number(object["coverScale"])

	return object
}

// Watch calls fn after every change to the object's details, including
// changes made by Clear. It returns a function that stops watching.
func (s *Store) Watch(root, id string, fn func()) func() {
	key := watchKey{root: root, id: id}

	s.watchMu.Lock()
	c, ok := s.watchers[key]
	if !ok {
		c = observable.NewCell[uint64](0)
		s.watchers[key] = c
	}
	s.watchMu.Unlock()

	unsubscribe := c.Subscribe(func(uint64, uint64) { fn() })
	return func() {
		unsubscribe()

		s.watchMu.Lock()
		defer s.watchMu.Unlock()
		if cur, ok := s.watchers[key]; ok && cur == c && c.Len() == 0 {
			delete(s.watchers, key)
		}
	}
}

func (s *Store) notify(root, id string) {
	s.watchMu.Lock()
	c, ok := s.watchers[watchKey{root: root, id: id}]
	s.watchMu.Unlock()

	if ok {
		c.Set(s.version.Add(1))
	}
}

// Clear drops every object of root.
func (s *Store) Clear(root string) {
	s.mu.Lock()
	m, ok := s.roots[root]
	delete(s.roots, root)
	s.mu.Unlock()

	if !ok {
		return
	}
	s.opts.logger.Debug("detail root cleared", "rootId", root)

	for _, id := range slices.Sorted(maps.Keys(m)) {
		s.notify(root, id)
	}
}

// ClearAll drops every root.
func (s *Store) ClearAll() {
	s.mu.Lock()
	roots := s.roots
	s.roots = make(map[string]map[string]*entry)
	s.mu.Unlock()

	s.opts.logger.Debug("detail store cleared", "roots", len(roots))

	for root, m := range roots {
		for id := range m {
			s.notify(root, id)
		}
	}
}

// Close drops all data and all watchers without notifying anyone.
func (s *Store) Close() {
	s.mu.Lock()
	s.roots = make(map[string]map[string]*entry)
	s.mu.Unlock()

	s.watchMu.Lock()
	s.watchers = make(map[watchKey]*observable.Cell[uint64])
	s.watchMu.Unlock()
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
