package blockgraph

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/blockgraph/blockgraph.go/pkg/mapper"
	"github.com/blockgraph/blockgraph.go/pkg/models"
	"github.com/blockgraph/blockgraph.go/pkg/wire"
)

// dispatch is the only writer into the stores for pushed events and for
// the responses of calls that change them, applied in arrival order. It
// stops when the connection closes its event channel or the session is
// closed.
func (s *Session) dispatch() {
	defer close(s.stopped)

	events := s.conn.Events()
	for {
		select {
		case <-s.done:
			return
		case frame, ok := <-events:
			if !ok {
				s.logger.Debug("event channel closed", "sessionId", s.ID)
				return
			}
			if frame.RequestID != "" {
				s.applyResponse(frame.RequestID, frame.Payload)
				continue
			}
			s.handleRaw(frame.Payload)
		}
	}
}

// pendingApply is a response a caller waits on the event loop to apply.
type pendingApply struct {
	apply func(raw cbor.RawMessage) error
	err   error
	done  chan struct{}
}

func (s *Session) addPending(id string, p *pendingApply) {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()
	s.pending[id] = p
}

func (s *Session) takePending(id string) *pendingApply {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()
	p := s.pending[id]
	delete(s.pending, id)
	return p
}

// applyResponse applies the response of request id. A response whose
// caller already gave up is dropped.
func (s *Session) applyResponse(id string, raw cbor.RawMessage) {
	p := s.takePending(id)
	if p == nil {
		s.logger.Debug("response without waiting caller", "id", id)
		return
	}

	p.err = p.apply(raw)
	close(p.done)
}

func (s *Session) handleRaw(raw cbor.RawMessage) {
	var ev wire.Event
	if err := s.conn.GetUnmarshaler().Unmarshal(raw, &ev); err != nil {
		s.reportError(&EventError{Err: err})
		return
	}

	s.Apply(&ev)
}

// Apply applies every message of ev to the stores, in order, then runs the
// event hooks for it. It is what the event loop calls for each pushed
// event, exposed for replaying recorded events.
func (s *Session) Apply(ev *wire.Event) {
	if ev == nil {
		return
	}

	hooks := s.eventHooks()
	for _, msg := range ev.Messages {
		if !s.applyMessage(ev.ContextID, msg) {
			s.logger.Warn("unhandled event", "contextId", ev.ContextID, "type", msg.ValueCase().String())
		}

		for _, fn := range hooks {
			fn(ev.ContextID, msg)
		}
	}
}

// detailRoots lists the detail roots an event addressed to subIDs touches.
func detailRoots(contextID string, subIDs []string) []string {
	if len(subIDs) == 0 {
		return []string{contextID}
	}
	return subIDs
}

// applyMessage reports whether msg was understood.
func (s *Session) applyMessage(contextID string, msg *wire.EventMessage) bool {
	switch msg.ValueCase() {
	case wire.EventCaseObjectDetailsSet:
		data := msg.ObjectDetailsSet
		item := &models.Details{ID: data.ID, Details: wire.DecodeStruct(data.Details)}
		for _, root := range detailRoots(contextID, data.SubIDs) {
			s.Details.Update(root, item, true)
		}

	case wire.EventCaseObjectDetailsAmend:
		data := msg.ObjectDetailsAmend
		details := make(map[string]any, len(data.Details))
		for _, kv := range data.Details {
			if kv == nil {
				continue
			}
			details[kv.Key] = wire.DecodeValue(kv.Value)
		}
		item := &models.Details{ID: data.ID, Details: details}
		for _, root := range detailRoots(contextID, data.SubIDs) {
			s.Details.Update(root, item, false)
		}

	case wire.EventCaseObjectDetailsUnset:
		data := msg.ObjectDetailsUnset
		for _, root := range detailRoots(contextID, data.SubIDs) {
			s.Details.Delete(root, data.ID, data.Keys)
		}

	case wire.EventCaseSubscriptionAdd:
		data := msg.SubscriptionAdd
		s.Records.RecordAdd(data.SubID, "", data.ID, data.AfterID)

	case wire.EventCaseSubscriptionRemove:
		data := msg.SubscriptionRemove
		s.Records.RecordDelete(data.SubID, "", data.ID)

	case wire.EventCaseSubscriptionCounters:
		s.applyCounters(msg.SubscriptionCounters)

	case wire.EventCaseBlockAdd:
		s.Blocks.Add(contextID, mapper.FromBlocks(msg.BlockAdd.Blocks)...)

	case wire.EventCaseBlockDelete:
		s.Blocks.Delete(contextID, msg.BlockDelete.BlockIDs...)

	case wire.EventCaseBlockSetChildrenIDs:
		data := msg.BlockSetChildrenIDs
		s.Blocks.SetChildrenIDs(contextID, data.ID, data.ChildrenIDs)

	case wire.EventCaseBlockDataviewViewSet:
		data := msg.BlockDataviewViewSet
		view := mapper.FromView(data.View)
		if view.ID == "" {
			view.ID = data.ViewID
		}
		s.Blocks.ViewSet(contextID, data.ID, view)

	case wire.EventCaseBlockDataviewViewDelete:
		data := msg.BlockDataviewViewDelete
		s.Blocks.ViewDelete(contextID, data.ID, data.ViewID)

	case wire.EventCaseChatAdd:
		data := msg.ChatAdd
		m := mapper.FromChatMessage(data.Message)
		if m.ID == "" {
			m.ID = data.ID
		}
		if m.OrderID == "" {
			m.OrderID = data.OrderID
		}
		s.Chats.Add(contextID, m, data.AfterOrderID)

	case wire.EventCaseChatUpdateReactions:
		data := msg.ChatUpdateReactions
		s.Chats.UpdateReactions(contextID, data.ID, mapper.FromChatReactions(data.Reactions))

	case wire.EventCaseChatDelete:
		s.Chats.Delete(contextID, msg.ChatDelete.ID)

	case wire.EventCaseThreadStatus:
		s.setThreadStatus(mapper.FromThreadStatus(msg.ThreadStatus))

	default:
		return false
	}

	return true
}

func (s *Session) applyCounters(data *wire.EventSubscriptionCounters) {
	meta := s.Records.Meta(data.SubID, "")
	meta.Total = data.Total
	meta.NextCount = data.NextCount
	meta.PrevCount = data.PrevCount
	s.Records.MetaSet(data.SubID, "", meta)
}

// ThreadStatus returns the last sync status pushed by the backend.
func (s *Session) ThreadStatus() models.ThreadStatusInfo {
	s.accountMu.RLock()
	defer s.accountMu.RUnlock()
	return s.threadStatus
}

func (s *Session) setThreadStatus(st models.ThreadStatusInfo) {
	s.accountMu.Lock()
	defer s.accountMu.Unlock()
	s.threadStatus = st
}
