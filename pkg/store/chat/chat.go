// Package chat keeps the ordered message list of every open chat.
package chat

import (
	"slices"
	"strings"
	"sync"

	"github.com/blockgraph/blockgraph.go/pkg/logger"
	"github.com/blockgraph/blockgraph.go/pkg/models"
)

type Store struct {
	mu     sync.RWMutex
	chats  map[string][]models.Message
	logger logger.Logger
}

func New(l logger.Logger) *Store {
	if l == nil {
		l = logger.Discard()
	}
	return &Store{
		chats:  make(map[string][]models.Message),
		logger: l,
	}
}

func cloneMessage(m models.Message) models.Message {
	m.Attachments = slices.Clone(m.Attachments)
	m.Reactions = slices.Clone(m.Reactions)
	for i := range m.Reactions {
		m.Reactions[i].Authors = slices.Clone(m.Reactions[i].Authors)
	}
	return m
}

func byOrderID(a, b models.Message) int {
	return strings.Compare(a.OrderID, b.OrderID)
}

// Set replaces the messages of a chat, ordered by OrderID.
func (s *Store) Set(chatID string, messages []models.Message) {
	list := make([]models.Message, 0, len(messages))
	for _, m := range messages {
		list = append(list, cloneMessage(m))
	}
	slices.SortStableFunc(list, byOrderID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.chats[chatID] = list
}

// Add inserts msg right after the message whose OrderID is afterOrderID.
// When there is no such message it is placed by its own OrderID. A message
// with the same id is replaced.
func (s *Store) Add(chatID string, msg models.Message, afterOrderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := slices.DeleteFunc(slices.Clone(s.chats[chatID]), func(m models.Message) bool {
		return m.ID == msg.ID
	})

	pos := -1
	if afterOrderID != "" {
		if i := slices.IndexFunc(list, func(m models.Message) bool { return m.OrderID == afterOrderID }); i >= 0 {
			pos = i + 1
		}
	}
	if pos < 0 {
		pos, _ = slices.BinarySearchFunc(list, msg, byOrderID)
	}

	s.chats[chatID] = slices.Insert(list, pos, cloneMessage(msg))
}

// UpdateReactions replaces the reactions of a message. Reactions without
// authors are dropped.
func (s *Store) UpdateReactions(chatID, msgID string, reactions []models.Reaction) {
	s.update(chatID, msgID, func(m *models.Message) {
		m.Reactions = slices.DeleteFunc(slices.Clone(reactions), func(r models.Reaction) bool {
			return len(r.Authors) == 0
		})
	})
}

// ToggleReaction flips author's reaction with icon on a stored message and
// reports whether the author now reacts with it.
func (s *Store) ToggleReaction(chatID, msgID, icon, author string) bool {
	var added bool
	s.update(chatID, msgID, func(m *models.Message) {
		added = m.ToggleReaction(icon, author)
	})
	return added
}

func (s *Store) update(chatID, msgID string, fn func(m *models.Message)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.chats[chatID]
	i := slices.IndexFunc(list, func(m models.Message) bool { return m.ID == msgID })
	if i < 0 {
		return
	}

	list = slices.Clone(list)
	m := cloneMessage(list[i])
	fn(&m)
	list[i] = m
	s.chats[chatID] = list
}

func (s *Store) Delete(chatID, msgID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.chats[chatID]
	if !ok {
		return
	}
	s.chats[chatID] = slices.DeleteFunc(slices.Clone(list), func(m models.Message) bool {
		return m.ID == msgID
	})
}

func (s *Store) Get(chatID, msgID string) (models.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.chats[chatID]
	i := slices.IndexFunc(list, func(m models.Message) bool { return m.ID == msgID })
	if i < 0 {
		return models.Message{}, false
	}
	return cloneMessage(list[i]), true
}

func (s *Store) List(chatID string) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.chats[chatID]
	out := make([]models.Message, 0, len(list))
	for _, m := range list {
		out = append(out, cloneMessage(m))
	}
	return out
}

func (s *Store) Clear(chatID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.chats, chatID)
	s.logger.Debug("chat cleared", "chatId", chatID)
}

func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chats = make(map[string][]models.Message)
}
