package models

import "slices"

type Message struct {
	ID          string
	OrderID     string
	Creator     string
	CreatedAt   int64
	ModifiedAt  int64
	ReplyToID   string
	Content     MessageContent
	Attachments []Attachment
	Reactions   []Reaction
}

type MessageContent struct {
	Text  string
	Style TextStyle
	Marks []Mark
}

type Attachment struct {
	Target string
	Type   int32
}

// Reaction is one emoji with the identities that picked it. Authors is
// never empty for a reaction held by a Message.
type Reaction struct {
	Icon    string
	Authors []string
}

// ToggleReaction adds author to the icon's reaction, or removes it when it
// is already there. A reaction left without authors is dropped. It reports
// whether author now reacts with icon.
func (m *Message) ToggleReaction(icon, author string) bool {
	idx := slices.IndexFunc(m.Reactions, func(r Reaction) bool { return r.Icon == icon })
	if idx < 0 {
		m.Reactions = append(m.Reactions, Reaction{Icon: icon, Authors: []string{author}})
		return true
	}

	r := &m.Reactions[idx]
	if i := slices.Index(r.Authors, author); i >= 0 {
		r.Authors = slices.Delete(slices.Clone(r.Authors), i, i+1)
		if len(r.Authors) == 0 {
			m.Reactions = slices.Delete(m.Reactions, idx, idx+1)
		}
		return false
	}

	r.Authors = append(slices.Clone(r.Authors), author)
	return true
}

// Reacted reports whether author reacts with icon.
func (m *Message) Reacted(icon, author string) bool {
	for _, r := range m.Reactions {
		if r.Icon == icon {
			return slices.Contains(r.Authors, author)
		}
	}
	return false
}
