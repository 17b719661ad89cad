package blockgraph

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/blockgraph/blockgraph.go/internal/fakeserver"
	"github.com/blockgraph/blockgraph.go/pkg/connection"
	"github.com/blockgraph/blockgraph.go/pkg/mapper"
	"github.com/blockgraph/blockgraph.go/pkg/models"
	"github.com/blockgraph/blockgraph.go/pkg/store/detail"
	"github.com/blockgraph/blockgraph.go/pkg/store/record"
	"github.com/blockgraph/blockgraph.go/pkg/wire"
)

type SessionTestSuite struct {
	suite.Suite

	server  *fakeserver.Server
	session *Session
	applied chan string
}

func TestSessionTestSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) SetupTest() {
	s.server = fakeserver.NewServer("127.0.0.1:0")
	s.Require().NoError(s.server.Start())

	session, err := FromEndpointURLString(context.Background(), s.server.URL())
	s.Require().NoError(err)
	s.session = session

	s.Require().Eventually(func() bool {
		return s.server.Connections() == 1
	}, time.Second, 10*time.Millisecond)

	s.applied = make(chan string, 64)
	s.session.OnEvent(func(_ string, msg *wire.EventMessage) {
		s.applied <- msg.ValueCase().String()
	})
}

func (s *SessionTestSuite) TearDownTest() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.NoError(s.session.Close(ctx))
	s.NoError(s.server.Stop())
}

// waitApplied waits until n event messages were applied.
func (s *SessionTestSuite) waitApplied(n int) {
	for range n {
		select {
		case <-s.applied:
		case <-time.After(2 * time.Second):
			s.FailNow("event not applied")
		}
	}
}

// emit pushes one event and waits until each of its messages was applied.
func (s *SessionTestSuite) emit(contextID string, msgs ...*wire.EventMessage) {
	s.Require().NoError(s.server.Emit(&wire.Event{ContextID: contextID, Messages: msgs}))
	for range msgs {
		select {
		case <-s.applied:
		case <-time.After(2 * time.Second):
			s.FailNow("event not applied")
		}
	}
}

func textBlock(id, text string) models.Block {
	return models.Block{
		ID:      id,
		Type:    models.BlockTypeText,
		Content: &models.TextContent{Text: text},
	}
}

func (s *SessionTestSuite) openPage() {
	page := models.Block{
		ID:          "page",
		Type:        models.BlockTypePage,
		ChildrenIDs: []string{"t1", "dv"},
		Content:     &models.PageContent{},
	}
	dv := models.Block{
		ID:   "dv",
		Type: models.BlockTypeDataview,
		Content: &models.DataviewContent{
			Views: []models.View{{ID: "v1", Type: models.ViewBoard, Name: "Board"}},
			ObjectOrders: []models.ObjectOrder{
				{ViewID: "v1", GroupID: "g1", ObjectIDs: []string{"c", "a"}},
			},
		},
	}

	s.server.Handle(string(connection.ObjectOpen), func(req *fakeserver.Request) (any, error) {
		var r wire.ObjectOpenRequest
		if err := req.Decode(0, &r); err != nil {
			return nil, err
		}
		return &wire.ObjectOpenResponse{ObjectView: &wire.ObjectView{
			RootID: r.ObjectID,
			Blocks: []*wire.Block{
				mapper.ToBlock(page),
				mapper.ToBlock(textBlock("t1", "hello")),
				mapper.ToBlock(dv),
			},
			Details: []*wire.ObjectDetails{{
				ID:      r.ObjectID,
				Details: wire.EncodeStruct(map[string]any{"name": "Page", "layout": 0}),
			}},
		}}, nil
	})

	view, err := s.session.ObjectOpen(context.Background(), "page")
	s.Require().NoError(err)
	s.Equal("page", view.RootID)
	s.Len(view.Blocks, 3)
}

func (s *SessionTestSuite) TestObjectOpenFillsStores() {
	s.openPage()

	b, ok := s.session.Blocks.Get("page", "t1")
	s.Require().True(ok)
	text, ok := b.Text()
	s.Require().True(ok)
	s.Equal("hello", text.Text)

	children := s.session.Blocks.Children("page", "page")
	s.Len(children, 2)

	s.Equal("Page", s.session.Details.Get("page", "page", nil, false).Name())

	ordered := s.session.Records.ApplyObjectOrder("page", "dv", "v1", "g1", []string{"a", "b", "c"})
	s.Equal([]string{"b", "c", "a"}, ordered)

	reqs := s.server.RequestsFor(string(connection.ObjectOpen))
	s.Require().Len(reqs, 1)
	var r wire.ObjectOpenRequest
	s.Require().NoError(reqs[0].Decode(0, &r))
	s.Equal(s.session.ID, r.TraceID)
}

func (s *SessionTestSuite) TestObjectCloseClearsRoot() {
	s.openPage()
	s.server.AddStubResponse(fakeserver.StubResponse{Method: string(connection.ObjectClose), Result: true})

	s.Require().NoError(s.session.ObjectClose(context.Background(), "page"))

	_, ok := s.session.Blocks.Get("page", "t1")
	s.False(ok)
	s.True(s.session.Details.Get("page", "page", nil, false).IsEmpty())
}

func (s *SessionTestSuite) TestEventAfterOpenResponseWins() {
	blocks := make([]*wire.Block, 0, 2001)
	blocks = append(blocks, mapper.ToBlock(models.Block{ID: "page", Type: models.BlockTypePage, Content: &models.PageContent{}}))
	for i := range 2000 {
		blocks = append(blocks, mapper.ToBlock(textBlock(fmt.Sprintf("t%d", i), "text")))
	}

	s.server.AddStubResponse(fakeserver.StubResponse{
		Method: string(connection.ObjectOpen),
		Result: &wire.ObjectOpenResponse{ObjectView: &wire.ObjectView{
			RootID: "page",
			Blocks: blocks,
			Details: []*wire.ObjectDetails{{
				ID:      "page",
				Details: wire.EncodeStruct(map[string]any{"name": "Old"}),
			}},
		}},
		Then: []any{&wire.Event{
			ContextID: "page",
			Messages: []*wire.EventMessage{{ObjectDetailsAmend: &wire.EventObjectDetailsAmend{
				ID:      "page",
				Details: []*wire.DetailKV{{Key: "name", Value: wire.EncodeValue("New")}},
			}}},
		}},
	})

	view, err := s.session.ObjectOpen(context.Background(), "page")
	s.Require().NoError(err)
	s.Len(view.Blocks, 2001)

	s.waitApplied(1)
	s.Equal("New", s.session.Details.Get("page", "page", nil, false).Name())
}

func (s *SessionTestSuite) TestEventAfterSearchResponseWins() {
	s.server.AddStubResponse(fakeserver.StubResponse{
		Method: string(connection.ObjectSearchSubscribe),
		Result: &wire.ObjectSearchSubscribeResponse{
			SubID: "sub",
			Records: []*wire.Struct{
				wire.EncodeStruct(map[string]any{"id": "a"}),
				wire.EncodeStruct(map[string]any{"id": "b"}),
			},
			Counters: &wire.EventSubscriptionCounters{Total: 2, SubID: "sub"},
		},
		Then: []any{&wire.Event{Messages: []*wire.EventMessage{
			{SubscriptionAdd: &wire.EventSubscriptionAdd{ID: "c", AfterID: "a", SubID: "sub"}},
			{SubscriptionCounters: &wire.EventSubscriptionCounters{Total: 3, SubID: "sub"}},
		}}},
	})

	ids, err := s.session.ObjectSearchSubscribe(context.Background(), SearchParams{SubID: "sub"})
	s.Require().NoError(err)
	s.Equal([]string{"a", "b"}, ids)

	s.waitApplied(2)
	s.Equal([]string{"a", "c", "b"}, s.session.Records.RecordIDs("sub", ""))
	s.Equal(int64(3), s.session.Records.Meta("sub", "").Total)
}

func (s *SessionTestSuite) TestDetailEvents() {
	s.openPage()

	s.emit("page", &wire.EventMessage{ObjectDetailsAmend: &wire.EventObjectDetailsAmend{
		ID:      "page",
		Details: []*wire.DetailKV{{Key: "name", Value: wire.EncodeValue("Renamed")}},
	}})
	s.Equal("Renamed", s.session.Details.Get("page", "page", nil, false).Name())

	s.emit("page", &wire.EventMessage{ObjectDetailsUnset: &wire.EventObjectDetailsUnset{
		ID:   "page",
		Keys: []string{"name"},
	}})
	s.Equal(detail.DefaultName, s.session.Details.Get("page", "page", nil, false).Name())

	s.emit("page", &wire.EventMessage{ObjectDetailsSet: &wire.EventObjectDetailsSet{
		ID:      "obj",
		Details: wire.EncodeStruct(map[string]any{"name": "In sub"}),
		SubIDs:  []string{"sub1"},
	}})
	s.Equal("In sub", s.session.Details.Get("sub1", "obj", nil, false).Name())
	s.True(s.session.Details.Get("page", "obj", nil, false).IsEmpty())
}

func (s *SessionTestSuite) TestBlockEvents() {
	s.openPage()

	s.emit("page",
		&wire.EventMessage{BlockAdd: &wire.EventBlockAdd{Blocks: []*wire.Block{mapper.ToBlock(textBlock("t2", "new"))}}},
		&wire.EventMessage{BlockSetChildrenIDs: &wire.EventBlockSetChildrenIDs{ID: "page", ChildrenIDs: []string{"t2", "t1", "dv"}}},
	)

	children := s.session.Blocks.Children("page", "page")
	s.Require().Len(children, 3)
	s.Equal("t2", children[0].ID)

	s.emit("page", &wire.EventMessage{BlockDataviewViewSet: &wire.EventBlockDataviewViewSet{
		ID:     "dv",
		ViewID: "v2",
		View:   mapper.ToView(models.View{ID: "v2", Type: models.ViewGrid, Name: "Grid"}),
	}})
	views := s.session.Blocks.Views("page", "dv")
	s.Require().Len(views, 2)
	s.Equal("Grid", views[1].Name)
	s.NotNil(views[1].Filters)

	s.emit("page", &wire.EventMessage{BlockDataviewViewDelete: &wire.EventBlockDataviewViewDelete{ID: "dv", ViewID: "v1"}})
	s.Len(s.session.Blocks.Views("page", "dv"), 1)

	s.emit("page", &wire.EventMessage{BlockDelete: &wire.EventBlockDelete{BlockIDs: []string{"t2"}}})
	_, ok := s.session.Blocks.Get("page", "t2")
	s.False(ok)
	s.Len(s.session.Blocks.Children("page", "page"), 2)
}

func (s *SessionTestSuite) stubSearch(ids ...string) {
	s.server.Handle(string(connection.ObjectSearchSubscribe), func(req *fakeserver.Request) (any, error) {
		var r wire.ObjectSearchSubscribeRequest
		if err := req.Decode(0, &r); err != nil {
			return nil, err
		}
		records := make([]*wire.Struct, 0, len(ids))
		for _, id := range ids {
			records = append(records, wire.EncodeStruct(map[string]any{"id": id, "name": "Object " + id}))
		}
		return &wire.ObjectSearchSubscribeResponse{
			SubID:   r.SubID,
			Records: records,
			Counters: &wire.EventSubscriptionCounters{
				Total: int64(len(ids)) + 10,
				SubID: r.SubID,
			},
		}, nil
	})
}

func (s *SessionTestSuite) TestSearchSubscribe() {
	s.stubSearch("a", "b")

	ids, err := s.session.ObjectSearchSubscribe(context.Background(), SearchParams{
		SubID:   "sub",
		Filters: []models.Filter{{RelationKey: "type", Condition: models.ConditionEqual, Value: "note"}},
		Limit:   50,
	})
	s.Require().NoError(err)
	s.Equal([]string{"a", "b"}, ids)
	s.Equal([]string{"a", "b"}, s.session.Records.RecordIDs("sub", ""))
	s.Equal(int64(12), s.session.Records.Meta("sub", "").Total)
	s.Equal("Object a", s.session.Details.Get("sub", "a", nil, false).Name())

	s.emit("",
		&wire.EventMessage{SubscriptionAdd: &wire.EventSubscriptionAdd{ID: "c", AfterID: "a", SubID: "sub"}},
		&wire.EventMessage{SubscriptionRemove: &wire.EventSubscriptionRemove{ID: "b", SubID: "sub"}},
		&wire.EventMessage{SubscriptionCounters: &wire.EventSubscriptionCounters{Total: 3, NextCount: 1, SubID: "sub"}},
	)
	s.Equal([]string{"a", "c"}, s.session.Records.RecordIDs("sub", ""))
	meta := s.session.Records.Meta("sub", "")
	s.Equal(int64(3), meta.Total)
	s.Equal(int64(1), meta.NextCount)

	s.server.AddStubResponse(fakeserver.StubResponse{Method: string(connection.ObjectSearchUnsubscribe), Result: true})
	s.Require().NoError(s.session.ObjectSearchUnsubscribe(context.Background(), "sub"))
	s.Empty(s.session.Records.RecordIDs("sub", ""))
	s.True(s.session.Details.Get("sub", "a", nil, false).IsEmpty())
}

func (s *SessionTestSuite) TestGroupsSubscribeAppliesOrder() {
	s.openPage()
	s.stubSearch("a", "b", "c")

	ids, err := s.session.ObjectGroupsSubscribe(context.Background(), "page", "dv", "v1", "g1", SearchParams{})
	s.Require().NoError(err)
	s.Equal([]string{"b", "c", "a"}, ids)

	sub := record.GroupSubID("page", "dv", "g1")
	s.Equal([]string{"b", "c", "a"}, s.session.Records.RecordIDs(sub, ""))
	s.Equal("v1", s.session.Records.Meta(sub, "").ViewID)
}

func (s *SessionTestSuite) TestGroupsSubscribeStoresOrderOnce() {
	s.openPage()
	s.stubSearch("a", "b", "c")

	var seen [][]string
	unwatch := s.session.Records.Watch(record.GroupSubID("page", "dv", "g1"), "", func(ids []string) {
		seen = append(seen, ids)
	})
	defer unwatch()

	_, err := s.session.ObjectGroupsSubscribe(context.Background(), "page", "dv", "v1", "g1", SearchParams{})
	s.Require().NoError(err)

	s.Equal([][]string{{"b", "c", "a"}}, seen)
}

func (s *SessionTestSuite) TestChatEventsAndReactions() {
	s.server.Handle(string(connection.AccountSelect), func(*fakeserver.Request) (any, error) {
		return &wire.AccountSelectResponse{
			Account: &wire.Account{ID: "me", Name: "Me"},
			Config:  &wire.AccountConfig{EnableSpaces: true},
		}, nil
	})
	account, conf, err := s.session.AccountSelect(context.Background(), "me", "/tmp")
	s.Require().NoError(err)
	s.Equal("me", account.ID)
	s.True(conf.AllowSpaces)

	s.emit("chat",
		&wire.EventMessage{ChatAdd: &wire.EventChatAdd{ID: "m1", OrderID: "001", Message: &wire.ChatMessage{
			Creator: "other",
			Message: &wire.ChatMessageContent{Text: "hi"},
		}}},
		&wire.EventMessage{ChatAdd: &wire.EventChatAdd{ID: "m2", OrderID: "002", AfterOrderID: "001", Message: &wire.ChatMessage{
			Message: &wire.ChatMessageContent{Text: "there"},
		}}},
	)
	list := s.session.Chats.List("chat")
	s.Require().Len(list, 2)
	s.Equal("m1", list[0].ID)
	s.Equal("hi", list[0].Content.Text)

	s.server.AddStubResponse(fakeserver.StubResponse{Method: string(connection.ChatToggleReaction), Result: true})
	s.Require().NoError(s.session.ChatToggleReaction(context.Background(), "chat", "m1", "👍"))
	m, ok := s.session.Chats.Get("chat", "m1")
	s.Require().True(ok)
	s.True(m.Reacted("👍", "me"))

	s.server.AddStubResponse(fakeserver.StubResponse{
		Method: string(connection.ChatToggleReaction),
		Error:  &connection.RPCError{Code: 1, Message: "denied"},
	})
	s.Require().Error(s.session.ChatToggleReaction(context.Background(), "chat", "m1", "🎉"))
	m, _ = s.session.Chats.Get("chat", "m1")
	s.False(m.Reacted("🎉", "me"))
	s.True(m.Reacted("👍", "me"))

	s.emit("chat", &wire.EventMessage{ChatUpdateReactions: &wire.EventChatUpdateReactions{
		ID: "m1",
		Reactions: &wire.ChatReactions{Reactions: map[string]*wire.IdentityList{
			"❤": {IDs: []string{"other"}},
		}},
	}})
	m, _ = s.session.Chats.Get("chat", "m1")
	s.Require().Len(m.Reactions, 1)
	s.Equal("❤", m.Reactions[0].Icon)

	s.emit("chat", &wire.EventMessage{ChatDelete: &wire.EventChatDelete{ID: "m1"}})
	s.Len(s.session.Chats.List("chat"), 1)
}

func (s *SessionTestSuite) TestToggleReactionNeedsAccount() {
	s.emit("chat", &wire.EventMessage{ChatAdd: &wire.EventChatAdd{ID: "m1", OrderID: "001", Message: &wire.ChatMessage{
		Message: &wire.ChatMessageContent{Text: "hi"},
	}}})

	err := s.session.ChatToggleReaction(context.Background(), "chat", "m1", "👍")
	s.ErrorIs(err, ErrNoAccount)

	m, ok := s.session.Chats.Get("chat", "m1")
	s.Require().True(ok)
	s.Empty(m.Reactions)
	s.Empty(s.server.RequestsFor(string(connection.ChatToggleReaction)))
}

func (s *SessionTestSuite) TestThreadStatus() {
	s.emit("", &wire.EventMessage{ThreadStatus: &wire.EventThreadStatus{
		Summary: &wire.ThreadSummary{Status: int32(models.ThreadSynced)},
	}})
	s.Equal(models.ThreadSynced, s.session.ThreadStatus().Summary.Status)
}

func (s *SessionTestSuite) TestUndecodableEvent() {
	errs := make(chan error, 1)
	s.session.OnError(func(err error) {
		errs <- err
	})

	s.Require().NoError(s.server.Emit("not an event"))

	select {
	case err := <-errs:
		var evErr *EventError
		s.ErrorAs(err, &evErr)
	case <-time.After(2 * time.Second):
		s.FailNow("error hook not called")
	}
}

func (s *SessionTestSuite) TestBlockCreateGeneratesID() {
	s.server.Handle(string(connection.BlockCreate), func(req *fakeserver.Request) (any, error) {
		var r wire.BlockCreateRequest
		if err := req.Decode(0, &r); err != nil {
			return nil, err
		}
		if r.Block == nil || r.Block.ID == "" {
			return nil, errors.New("block without id")
		}
		return &wire.BlockCreateResponse{BlockID: r.Block.ID}, nil
	})

	id, err := s.session.BlockCreate(context.Background(), "page", "t1", models.PositionBottom, textBlock("", "x"))
	s.Require().NoError(err)
	s.NotEmpty(id)
}

func (s *SessionTestSuite) TestSmallRPCs() {
	ctx := context.Background()

	s.server.Handle(string(connection.LinkPreview), func(req *fakeserver.Request) (any, error) {
		var r wire.LinkPreviewRequest
		if err := req.Decode(0, &r); err != nil {
			return nil, err
		}
		return &wire.LinkPreviewResponse{LinkPreview: &wire.LinkPreview{URL: r.URL, Title: "T"}}, nil
	})
	preview, err := s.session.LinkPreview(ctx, "https://example.com")
	s.Require().NoError(err)
	s.Equal("T", preview.Title)

	s.server.AddStubResponse(fakeserver.StubResponse{
		Method: string(connection.UnsplashSearch),
		Result: &wire.UnsplashSearchResponse{Pictures: []*wire.UnsplashPicture{{ID: "p1", Artist: "A"}}},
	})
	pics, err := s.session.UnsplashSearch(ctx, "sea", 10)
	s.Require().NoError(err)
	s.Require().Len(pics, 1)
	s.Equal("A", pics[0].Artist)

	s.server.AddStubResponse(fakeserver.StubResponse{
		Method: string(connection.HistoryGetVersions),
		Result: &wire.HistoryGetVersionsResponse{},
	})
	versions, err := s.session.HistoryGetVersions(ctx, "page", "", 10)
	s.Require().NoError(err)
	s.NotNil(versions)
	s.Empty(versions)

	s.server.AddStubResponse(fakeserver.StubResponse{
		Method: string(connection.ObjectGraph),
		Result: &wire.ObjectGraphResponse{
			Nodes: []*wire.GraphNode{{ID: "n1"}, {ID: "n2"}},
			Edges: []*wire.GraphEdge{{Source: "n1", Target: "n2"}},
		},
	})
	graph, err := s.session.ObjectGraph(ctx, nil, 100)
	s.Require().NoError(err)
	s.Len(graph.Nodes, 2)
	s.Len(graph.Edges, 1)

	s.server.AddStubResponse(fakeserver.StubResponse{
		Method: string(connection.ObjectCreateRelation),
		Result: &wire.ObjectCreateRelationResponse{
			ObjectID: "rel1",
			Key:      "priority",
			Details:  wire.EncodeStruct(map[string]any{"name": "Priority"}),
		},
	})
	key, details, err := s.session.ObjectCreateRelation(ctx, map[string]any{"name": "Priority"})
	s.Require().NoError(err)
	s.Equal("priority", key)
	s.Equal("rel1", details.ID)
	s.Equal("Priority", details.Details["name"])

	s.server.Handle(string(connection.ObjectTypeCreate), func(req *fakeserver.Request) (any, error) {
		var r wire.ObjectTypeCreateRequest
		if err := req.Decode(0, &r); err != nil {
			return nil, err
		}
		r.ObjectType.URL = "type1"
		return &wire.ObjectTypeCreateResponse{ObjectType: r.ObjectType}, nil
	})
	typ, err := s.session.ObjectTypeCreate(ctx, models.ObjectType{Name: "Task"})
	s.Require().NoError(err)
	s.Equal("type1", typ.ID)
	s.Equal("Task", typ.Name)

	s.server.AddStubResponse(fakeserver.StubResponse{
		Method: string(connection.BlockPaste),
		Result: &wire.BlockPasteResponse{BlockIDs: []string{"p1"}, CaretPosition: 3},
	})
	paste, err := s.session.BlockPaste(ctx, "page", Paste{Text: "x", Files: []models.PasteFile{{Name: "a.png", Path: "/tmp/a.png"}}})
	s.Require().NoError(err)
	s.Equal([]string{"p1"}, paste.BlockIDs)
	s.Equal(int32(3), paste.CaretPosition)

	for _, m := range []connection.RPCFunction{connection.ObjectSetDetails, connection.BlockListSetFields, connection.BlockDataviewViewUpdate} {
		s.server.AddStubResponse(fakeserver.StubResponse{Method: string(m), Result: true})
	}
	s.NoError(s.session.ObjectSetDetails(ctx, "page", []models.DetailValue{{Key: "done", Value: true}}))
	s.NoError(s.session.BlockListSetFields(ctx, "page", []models.BlockFields{{BlockID: "t1", Fields: map[string]any{"width": 0.5}}}))
	s.NoError(s.session.BlockDataviewViewUpdate(ctx, "page", "dv", models.View{ID: "v1"}))
}

func (s *SessionTestSuite) TestRPCError() {
	s.server.AddStubResponse(fakeserver.StubResponse{
		Method: string(connection.LinkPreview),
		Error:  &connection.RPCError{Code: 2, Message: "bad url"},
	})

	_, err := s.session.LinkPreview(context.Background(), "::")
	var rpcErr *connection.RPCError
	s.Require().ErrorAs(err, &rpcErr)
	s.Equal(2, rpcErr.Code)
}

func (s *SessionTestSuite) TestHookRemoval() {
	calls := make(chan struct{}, 4)
	remove := s.session.OnEvent(func(string, *wire.EventMessage) {
		calls <- struct{}{}
	})

	s.emit("chat", &wire.EventMessage{ChatDelete: &wire.EventChatDelete{ID: "x"}})
	s.Eventually(func() bool { return len(calls) == 1 }, time.Second, 10*time.Millisecond)

	remove()
	s.emit("chat", &wire.EventMessage{ChatDelete: &wire.EventChatDelete{ID: "x"}})
	s.Len(calls, 1)
}

func TestCallAfterClose(t *testing.T) {
	server := fakeserver.NewServer("127.0.0.1:0")
	require.NoError(t, server.Start())
	defer server.Stop()

	session, err := FromEndpointURLString(context.Background(), server.URL())
	require.NoError(t, err)
	require.NoError(t, session.Close(context.Background()))
	require.NoError(t, session.Close(context.Background()))

	_, err = session.LinkPreview(context.Background(), "https://example.com")
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestFromConfigRejectsScheme(t *testing.T) {
	u, err := url.Parse("http://127.0.0.1:1")
	require.NoError(t, err)

	_, err = FromConfig(context.Background(), NewConfig(u))
	assert.Error(t, err)
}

func TestApplyNil(t *testing.T) {
	s := &Session{}
	assert.NotPanics(t, func() { s.Apply(nil) })
}
