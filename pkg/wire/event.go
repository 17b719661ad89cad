package wire

// Event is a batch of messages pushed by the backend for one context.
type Event struct {
	ContextID string          `cbor:"contextId"`
	Messages  []*EventMessage `cbor:"messages,omitempty"`
}

// EventCase discriminates the value oneof of an EventMessage.
type EventCase int32

const (
	EventCaseNotSet EventCase = iota
	EventCaseObjectDetailsSet
	EventCaseObjectDetailsAmend
	EventCaseObjectDetailsUnset
	EventCaseSubscriptionAdd
	EventCaseSubscriptionRemove
	EventCaseSubscriptionCounters
	EventCaseBlockAdd
	EventCaseBlockDelete
	EventCaseBlockSetChildrenIDs
	EventCaseBlockDataviewViewSet
	EventCaseBlockDataviewViewDelete
	EventCaseChatAdd
	EventCaseChatUpdateReactions
	EventCaseChatDelete
	EventCaseThreadStatus
)

var eventCaseNames = map[EventCase]string{
	EventCaseNotSet:                  "notSet",
	EventCaseObjectDetailsSet:        "objectDetailsSet",
	EventCaseObjectDetailsAmend:      "objectDetailsAmend",
	EventCaseObjectDetailsUnset:      "objectDetailsUnset",
	EventCaseSubscriptionAdd:         "subscriptionAdd",
	EventCaseSubscriptionRemove:      "subscriptionRemove",
	EventCaseSubscriptionCounters:    "subscriptionCounters",
	EventCaseBlockAdd:                "blockAdd",
	EventCaseBlockDelete:             "blockDelete",
	EventCaseBlockSetChildrenIDs:     "blockSetChildrenIds",
	EventCaseBlockDataviewViewSet:    "blockDataviewViewSet",
	EventCaseBlockDataviewViewDelete: "blockDataviewViewDelete",
	EventCaseChatAdd:                 "chatAdd",
	EventCaseChatUpdateReactions:     "chatUpdateReactions",
	EventCaseChatDelete:              "chatDelete",
	EventCaseThreadStatus:            "threadStatus",
}

func (c EventCase) String() string {
	if name, ok := eventCaseNames[c]; ok {
		return name
	}
	return "unknown"
}

type EventMessage struct {
	ObjectDetailsSet        *EventObjectDetailsSet        `cbor:"objectDetailsSet,omitempty"`
	ObjectDetailsAmend      *EventObjectDetailsAmend      `cbor:"objectDetailsAmend,omitempty"`
	ObjectDetailsUnset      *EventObjectDetailsUnset      `cbor:"objectDetailsUnset,omitempty"`
	SubscriptionAdd         *EventSubscriptionAdd         `cbor:"subscriptionAdd,omitempty"`
	SubscriptionRemove      *EventSubscriptionRemove      `cbor:"subscriptionRemove,omitempty"`
	SubscriptionCounters    *EventSubscriptionCounters    `cbor:"subscriptionCounters,omitempty"`
	BlockAdd                *EventBlockAdd                `cbor:"blockAdd,omitempty"`
	BlockDelete             *EventBlockDelete             `cbor:"blockDelete,omitempty"`
	BlockSetChildrenIDs     *EventBlockSetChildrenIDs     `cbor:"blockSetChildrenIds,omitempty"`
	BlockDataviewViewSet    *EventBlockDataviewViewSet    `cbor:"blockDataviewViewSet,omitempty"`
	BlockDataviewViewDelete *EventBlockDataviewViewDelete `cbor:"blockDataviewViewDelete,omitempty"`
	ChatAdd                 *EventChatAdd                 `cbor:"chatAdd,omitempty"`
	ChatUpdateReactions     *EventChatUpdateReactions     `cbor:"chatUpdateReactions,omitempty"`
	ChatDelete              *EventChatDelete              `cbor:"chatDelete,omitempty"`
	ThreadStatus            *EventThreadStatus            `cbor:"threadStatus,omitempty"`
}

// ValueCase reports which variant is set, first in declaration order.
func (m *EventMessage) ValueCase() EventCase {
	switch {
	case m == nil:
		return EventCaseNotSet
	case m.ObjectDetailsSet != nil:
		return EventCaseObjectDetailsSet
	case m.ObjectDetailsAmend != nil:
		return EventCaseObjectDetailsAmend
	case m.ObjectDetailsUnset != nil:
		return EventCaseObjectDetailsUnset
	case m.SubscriptionAdd != nil:
		return EventCaseSubscriptionAdd
	case m.SubscriptionRemove != nil:
		return EventCaseSubscriptionRemove
	case m.SubscriptionCounters != nil:
		return EventCaseSubscriptionCounters
	case m.BlockAdd != nil:
		return EventCaseBlockAdd
	case m.BlockDelete != nil:
		return EventCaseBlockDelete
	case m.BlockSetChildrenIDs != nil:
		return EventCaseBlockSetChildrenIDs
	case m.BlockDataviewViewSet != nil:
		return EventCaseBlockDataviewViewSet
	case m.BlockDataviewViewDelete != nil:
		return EventCaseBlockDataviewViewDelete
	case m.ChatAdd != nil:
		return EventCaseChatAdd
	case m.ChatUpdateReactions != nil:
		return EventCaseChatUpdateReactions
	case m.ChatDelete != nil:
		return EventCaseChatDelete
	case m.ThreadStatus != nil:
		return EventCaseThreadStatus
	default:
		return EventCaseNotSet
	}
}

// EventObjectDetailsSet replaces the full detail set of an object. SubIDs
// lists the subscriptions the object belongs to; when empty the event
// applies to the context.
type EventObjectDetailsSet struct {
	ID      string   `cbor:"id"`
	Details *Struct  `cbor:"details,omitempty"`
	SubIDs  []string `cbor:"subIds,omitempty"`
}

type EventObjectDetailsAmend struct {
	ID      string      `cbor:"id"`
	Details []*DetailKV `cbor:"details,omitempty"`
	SubIDs  []string    `cbor:"subIds,omitempty"`
}

type EventObjectDetailsUnset struct {
	ID     string   `cbor:"id"`
	Keys   []string `cbor:"keys,omitempty"`
	SubIDs []string `cbor:"subIds,omitempty"`
}

type EventSubscriptionAdd struct {
	ID      string `cbor:"id"`
	AfterID string `cbor:"afterId"`
	SubID   string `cbor:"subId"`
}

type EventSubscriptionRemove struct {
	ID    string `cbor:"id"`
	SubID string `cbor:"subId"`
}

type EventSubscriptionCounters struct {
	Total     int64  `cbor:"total"`
	NextCount int64  `cbor:"nextCount"`
	PrevCount int64  `cbor:"prevCount"`
	SubID     string `cbor:"subId"`
}

type EventBlockAdd struct {
	Blocks []*Block `cbor:"blocks,omitempty"`
}

type EventBlockDelete struct {
	BlockIDs []string `cbor:"blockIds,omitempty"`
}

type EventBlockSetChildrenIDs struct {
	ID          string   `cbor:"id"`
	ChildrenIDs []string `cbor:"childrenIds,omitempty"`
}

type EventBlockDataviewViewSet struct {
	ID     string `cbor:"id"`
	ViewID string `cbor:"viewId"`
	View   *View  `cbor:"view,omitempty"`
}

type EventBlockDataviewViewDelete struct {
	ID     string `cbor:"id"`
	ViewID string `cbor:"viewId"`
}

type EventChatAdd struct {
	ID           string       `cbor:"id"`
	OrderID      string       `cbor:"orderId"`
	AfterOrderID string       `cbor:"afterOrderId"`
	Message      *ChatMessage `cbor:"message,omitempty"`
}

type EventChatUpdateReactions struct {
	ID        string         `cbor:"id"`
	Reactions *ChatReactions `cbor:"reactions,omitempty"`
}

type EventChatDelete struct {
	ID string `cbor:"id"`
}

type EventThreadStatus struct {
	Summary  *ThreadSummary   `cbor:"summary,omitempty"`
	Cafe     *ThreadCafe      `cbor:"cafe,omitempty"`
	Accounts []*ThreadAccount `cbor:"accounts,omitempty"`
}
