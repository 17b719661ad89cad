package blockgraph

import (
	"context"
	"fmt"
	"slices"

	"github.com/fxamacker/cbor/v2"
	"github.com/gofrs/uuid"

	"github.com/blockgraph/blockgraph.go/pkg/connection"
	"github.com/blockgraph/blockgraph.go/pkg/mapper"
	"github.com/blockgraph/blockgraph.go/pkg/models"
	"github.com/blockgraph/blockgraph.go/pkg/store/record"
	"github.com/blockgraph/blockgraph.go/pkg/wire"
)

// call sends one request and decodes its result into T. A response without
// a result yields a nil *T and no error.
func call[T any](ctx context.Context, s *Session, method connection.RPCFunction, req any) (*T, error) {
	if s.closed() {
		return nil, ErrSessionClosed
	}

	var res connection.RPCResponse[T]
	if err := connection.Send(ctx, s.conn, &res, method, req); err != nil {
		s.logger.Debug("rpc failed", "method", string(method), "error", err)
		return nil, err
	}

	return res.Result, nil
}

// update sends one request whose response changes the stores. apply runs
// on the event loop at the position of the response among pushed events,
// with a nil *T for a response without a result, and its error is returned
// to the caller.
func update[T any](ctx context.Context, s *Session, method connection.RPCFunction, req any, apply func(res *T) error) (*T, error) {
	if s.closed() {
		return nil, ErrSessionClosed
	}

	var out *T
	p := &pendingApply{done: make(chan struct{})}
	p.apply = func(raw cbor.RawMessage) error {
		if raw != nil {
			var v T
			if err := s.conn.GetUnmarshaler().Unmarshal(raw, &v); err != nil {
				return fmt.Errorf("%s: error unmarshaling result: %w", method, err)
			}
			out = &v
		}
		return apply(out)
	}

	r := connection.NewRequest(method, req)
	r.Ordered = true
	id := fmt.Sprintf("%v", r.ID)

	s.addPending(id, p)
	defer s.takePending(id)

	if _, err := s.conn.SendRequest(ctx, r); err != nil {
		s.logger.Debug("rpc failed", "method", string(method), "error", err)
		return nil, err
	}

	select {
	case <-p.done:
		return out, p.err
	case <-s.stopped:
		return nil, ErrSessionClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Session) AccountSelect(ctx context.Context, id, rootPath string) (models.Account, models.AccountConfig, error) {
	res, err := call[wire.AccountSelectResponse](ctx, s, connection.AccountSelect, &wire.AccountSelectRequest{
		ID:       id,
		RootPath: rootPath,
	})
	if err != nil {
		return models.Account{}, models.AccountConfig{}, err
	}
	if res == nil || res.Account == nil {
		return models.Account{}, models.AccountConfig{}, &ResponseError{Method: string(connection.AccountSelect), What: "account"}
	}

	account := mapper.FromAccount(res.Account)
	s.setAccount(account)

	return account, mapper.FromAccountConfig(res.Config), nil
}

// ObjectOpen opens an object and loads its blocks, details and the manual
// object order of its dataviews into the stores, under the root id.
func (s *Session) ObjectOpen(ctx context.Context, objectID string) (models.ObjectView, error) {
	var view models.ObjectView
	_, err := update(ctx, s, connection.ObjectOpen, &wire.ObjectOpenRequest{
		ContextID: objectID,
		ObjectID:  objectID,
		TraceID:   s.ID,
	}, func(res *wire.ObjectOpenResponse) error {
		if res == nil || res.ObjectView == nil {
			return &ResponseError{Method: string(connection.ObjectOpen), What: "object view"}
		}

		view = mapper.FromObjectView(res.ObjectView)
		if view.RootID == "" {
			view.RootID = objectID
		}
		root := view.RootID

		s.Blocks.Set(root, view.Blocks)
		s.Details.Set(root, view.Details)
		for _, b := range view.Blocks {
			if dv, ok := b.Dataview(); ok {
				s.Records.ObjectOrderSet(root, b.ID, dv.ObjectOrders)
			}
		}
		return nil
	})
	if err != nil {
		return models.ObjectView{}, err
	}

	s.logger.Debug("object opened", "rootId", view.RootID, "blocks", len(view.Blocks))

	return view, nil
}

// ObjectClose closes an object and drops everything stored under its root.
func (s *Session) ObjectClose(ctx context.Context, objectID string) error {
	_, err := update(ctx, s, connection.ObjectClose, &wire.ObjectCloseRequest{
		ContextID: objectID,
		ObjectID:  objectID,
	}, func(*any) error {
		s.Blocks.Clear(objectID)
		s.Details.Clear(objectID)
		s.Records.Clear(objectID)
		return nil
	})
	return err
}

func (s *Session) ObjectSetDetails(ctx context.Context, contextID string, details []models.DetailValue) error {
	req := &wire.ObjectSetDetailsRequest{
		ContextID: contextID,
		Details:   make([]*wire.DetailKV, 0, len(details)),
	}
	for _, d := range details {
		req.Details = append(req.Details, mapper.ToDetails(d))
	}

	_, err := call[any](ctx, s, connection.ObjectSetDetails, req)
	return err
}

func (s *Session) BlockListSetFields(ctx context.Context, contextID string, fields []models.BlockFields) error {
	req := &wire.BlockListSetFieldsRequest{
		ContextID:   contextID,
		BlockFields: make([]*wire.BlockField, 0, len(fields)),
	}
	for _, f := range fields {
		req.BlockFields = append(req.BlockFields, mapper.ToFields(f))
	}

	_, err := call[any](ctx, s, connection.BlockListSetFields, req)
	return err
}

// BlockCreate creates b next to targetID. A block without an id gets a
// client generated one. The id chosen by the backend is returned.
func (s *Session) BlockCreate(ctx context.Context, contextID, targetID string, position models.BlockPosition, b models.Block) (string, error) {
	if b.ID == "" {
		id, err := uuid.NewV4()
		if err != nil {
			return "", err
		}
		b.ID = id.String()
	}

	res, err := call[wire.BlockCreateResponse](ctx, s, connection.BlockCreate, &wire.BlockCreateRequest{
		ContextID: contextID,
		TargetID:  targetID,
		Position:  int32(position),
		Block:     mapper.ToBlock(b),
	})
	if err != nil {
		return "", err
	}
	if res == nil || res.BlockID == "" {
		return b.ID, nil
	}

	return res.BlockID, nil
}

// Paste is the content pasted by BlockPaste.
type Paste struct {
	FocusedBlockID   string
	SelectedBlockIDs []string
	Text             string
	HTML             string
	Files            []models.PasteFile
}

type PasteResult struct {
	BlockIDs      []string
	CaretPosition int32
	IsSameBlock   bool
}

func (s *Session) BlockPaste(ctx context.Context, contextID string, p Paste) (PasteResult, error) {
	req := &wire.BlockPasteRequest{
		ContextID:        contextID,
		FocusedBlockID:   p.FocusedBlockID,
		SelectedBlockIDs: slices.Clone(p.SelectedBlockIDs),
		TextSlot:         p.Text,
		HTMLSlot:         p.HTML,
		FileSlot:         make([]*wire.PasteFile, 0, len(p.Files)),
	}
	for _, f := range p.Files {
		req.FileSlot = append(req.FileSlot, mapper.ToPasteFile(f))
	}

	res, err := call[wire.BlockPasteResponse](ctx, s, connection.BlockPaste, req)
	if err != nil {
		return PasteResult{}, err
	}
	if res == nil {
		return PasteResult{BlockIDs: []string{}}, nil
	}

	ids := res.BlockIDs
	if ids == nil {
		ids = []string{}
	}

	return PasteResult{
		BlockIDs:      ids,
		CaretPosition: res.CaretPosition,
		IsSameBlock:   res.IsSameBlock,
	}, nil
}

// BlockDataviewViewUpdate sends view and, once accepted, stores it.
func (s *Session) BlockDataviewViewUpdate(ctx context.Context, contextID, blockID string, view models.View) error {
	_, err := update(ctx, s, connection.BlockDataviewViewUpdate, &wire.BlockDataviewViewUpdateRequest{
		ContextID: contextID,
		BlockID:   blockID,
		ViewID:    view.ID,
		View:      mapper.ToView(view),
	}, func(*any) error {
		s.Blocks.ViewSet(contextID, blockID, view)
		return nil
	})
	return err
}

// SearchParams describes a search subscription.
type SearchParams struct {
	SubID        string
	Filters      []models.Filter
	Sorts        []models.Sort
	Keys         []string
	Sources      []string
	Limit        int64
	Offset       int64
	CollectionID string
	NoDeps       bool

	// ViewID is recorded in the subscription meta.
	ViewID string
}

// ObjectSearchSubscribe starts a search subscription. Records and their
// dependencies land in the detail store under the subscription id; the
// record ids and counters land in the record store. The record ids are
// returned.
func (s *Session) ObjectSearchSubscribe(ctx context.Context, p SearchParams) ([]string, error) {
	return s.searchSubscribe(ctx, p, nil)
}

// searchSubscribe runs a search subscription. order, when set, rearranges
// the record ids before they are stored.
func (s *Session) searchSubscribe(ctx context.Context, p SearchParams, order func(ids []string) []string) ([]string, error) {
	req := &wire.ObjectSearchSubscribeRequest{
		SubID:        p.SubID,
		Filters:      make([]*wire.Filter, 0, len(p.Filters)),
		Sorts:        make([]*wire.Sort, 0, len(p.Sorts)),
		Keys:         slices.Clone(p.Keys),
		Sources:      slices.Clone(p.Sources),
		Limit:        p.Limit,
		Offset:       p.Offset,
		CollectionID: p.CollectionID,
		NoDeps:       p.NoDeps,
	}
	for _, f := range p.Filters {
		req.Filters = append(req.Filters, mapper.ToFilter(f))
	}
	for _, o := range p.Sorts {
		req.Sorts = append(req.Sorts, mapper.ToSort(o))
	}

	var ids []string
	_, err := update(ctx, s, connection.ObjectSearchSubscribe, req, func(res *wire.ObjectSearchSubscribeResponse) error {
		if res == nil {
			res = &wire.ObjectSearchSubscribeResponse{}
		}

		ids = make([]string, 0, len(res.Records))
		items := make([]models.Details, 0, len(res.Records)+len(res.Dependencies))
		for _, r := range res.Records {
			rec := mapper.FromRecord(r)
			id, _ := rec["id"].(string)
			if id == "" {
				continue
			}
			ids = append(ids, id)
			items = append(items, models.Details{ID: id, Details: rec})
		}
		for _, r := range res.Dependencies {
			rec := mapper.FromRecord(r)
			if id, _ := rec["id"].(string); id != "" {
				items = append(items, models.Details{ID: id, Details: rec})
			}
		}

		meta := record.Meta{Offset: p.Offset, ViewID: p.ViewID, Total: int64(len(ids))}
		if c := res.Counters; c != nil {
			meta.Total = c.Total
			meta.NextCount = c.NextCount
			meta.PrevCount = c.PrevCount
		}

		if order != nil {
			ids = order(ids)
		}

		s.Details.Set(p.SubID, items)
		s.Records.RecordsSet(p.SubID, "", ids)
		s.Records.MetaSet(p.SubID, "", meta)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ids, nil
}

// ObjectGroupsSubscribe subscribes to one board group of a dataview and
// stores the group's record ids in the manual order of viewID.
func (s *Session) ObjectGroupsSubscribe(ctx context.Context, root, blockID, viewID, groupID string, p SearchParams) ([]string, error) {
	p.SubID = record.GroupSubID(root, blockID, groupID)
	p.ViewID = viewID

	return s.searchSubscribe(ctx, p, func(ids []string) []string {
		return s.Records.ApplyObjectOrder(root, blockID, viewID, groupID, ids)
	})
}

// ObjectSearchUnsubscribe ends subscriptions and drops their records.
func (s *Session) ObjectSearchUnsubscribe(ctx context.Context, subIDs ...string) error {
	if len(subIDs) == 0 {
		return nil
	}

	_, err := update(ctx, s, connection.ObjectSearchUnsubscribe, &wire.ObjectSearchUnsubscribeRequest{
		SubIDs: slices.Clone(subIDs),
	}, func(*any) error {
		for _, sub := range subIDs {
			s.Records.RecordsClear(sub, "")
			s.Details.Clear(sub)
		}
		return nil
	})
	return err
}

// ObjectCreateRelation creates a relation object from details and returns
// its key and details.
func (s *Session) ObjectCreateRelation(ctx context.Context, details map[string]any) (string, models.Details, error) {
	res, err := call[wire.ObjectCreateRelationResponse](ctx, s, connection.ObjectCreateRelation, &wire.ObjectCreateRelationRequest{
		Details: wire.EncodeStruct(details),
	})
	if err != nil {
		return "", models.Details{}, err
	}
	if res == nil || res.ObjectID == "" {
		return "", models.Details{}, &ResponseError{Method: string(connection.ObjectCreateRelation), What: "object id"}
	}

	return res.Key, models.Details{ID: res.ObjectID, Details: wire.DecodeStruct(res.Details)}, nil
}

func (s *Session) ObjectTypeCreate(ctx context.Context, t models.ObjectType) (models.ObjectType, error) {
	res, err := call[wire.ObjectTypeCreateResponse](ctx, s, connection.ObjectTypeCreate, &wire.ObjectTypeCreateRequest{
		ObjectType: mapper.ToObjectType(t),
	})
	if err != nil {
		return models.ObjectType{}, err
	}
	if res == nil || res.ObjectType == nil {
		return models.ObjectType{}, &ResponseError{Method: string(connection.ObjectTypeCreate), What: "object type"}
	}

	return mapper.FromObjectType(res.ObjectType), nil
}

func (s *Session) HistoryGetVersions(ctx context.Context, objectID, lastVersionID string, limit int32) ([]models.HistoryVersion, error) {
	res, err := call[wire.HistoryGetVersionsResponse](ctx, s, connection.HistoryGetVersions, &wire.HistoryGetVersionsRequest{
		ObjectID:      objectID,
		LastVersionID: lastVersionID,
		Limit:         limit,
	})
	if err != nil {
		return nil, err
	}
	if res == nil {
		return []models.HistoryVersion{}, nil
	}

	out := make([]models.HistoryVersion, 0, len(res.Versions))
	for _, v := range res.Versions {
		out = append(out, mapper.FromHistoryVersion(v))
	}
	return out, nil
}

// Graph is the object graph returned by ObjectGraph.
type Graph struct {
	Nodes []models.GraphNode
	Edges []models.GraphEdge
}

func (s *Session) ObjectGraph(ctx context.Context, filters []models.Filter, limit int32) (Graph, error) {
	req := &wire.ObjectGraphRequest{
		Filters: make([]*wire.Filter, 0, len(filters)),
		Limit:   limit,
	}
	for _, f := range filters {
		req.Filters = append(req.Filters, mapper.ToFilter(f))
	}

	res, err := call[wire.ObjectGraphResponse](ctx, s, connection.ObjectGraph, req)
	if err != nil {
		return Graph{}, err
	}
	if res == nil {
		res = &wire.ObjectGraphResponse{}
	}

	g := Graph{
		Nodes: make([]models.GraphNode, 0, len(res.Nodes)),
		Edges: make([]models.GraphEdge, 0, len(res.Edges)),
	}
	for _, n := range res.Nodes {
		g.Nodes = append(g.Nodes, mapper.FromGraphNode(n))
	}
	for _, e := range res.Edges {
		g.Edges = append(g.Edges, mapper.FromGraphEdge(e))
	}
	return g, nil
}

func (s *Session) UnsplashSearch(ctx context.Context, query string, limit int32) ([]models.UnsplashPicture, error) {
	res, err := call[wire.UnsplashSearchResponse](ctx, s, connection.UnsplashSearch, &wire.UnsplashSearchRequest{
		Query: query,
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}
	if res == nil {
		return []models.UnsplashPicture{}, nil
	}

	out := make([]models.UnsplashPicture, 0, len(res.Pictures))
	for _, p := range res.Pictures {
		out = append(out, mapper.FromUnsplashPicture(p))
	}
	return out, nil
}

func (s *Session) LinkPreview(ctx context.Context, url string) (models.PreviewLink, error) {
	res, err := call[wire.LinkPreviewResponse](ctx, s, connection.LinkPreview, &wire.LinkPreviewRequest{URL: url})
	if err != nil {
		return models.PreviewLink{}, err
	}
	if res == nil || res.LinkPreview == nil {
		return models.PreviewLink{}, &ResponseError{Method: string(connection.LinkPreview), What: "link preview"}
	}

	return mapper.FromPreviewLink(res.LinkPreview), nil
}

// ChatToggleReaction toggles emoji for the selected account on a message.
// The chat store is updated before the call and reverted if it fails.
func (s *Session) ChatToggleReaction(ctx context.Context, chatID, messageID, emoji string) error {
	author := s.Account().ID
	if author == "" {
		return ErrNoAccount
	}
	s.Chats.ToggleReaction(chatID, messageID, emoji, author)

	_, err := call[any](ctx, s, connection.ChatToggleReaction, &wire.ChatToggleReactionRequest{
		ChatObjectID: chatID,
		MessageID:    messageID,
		Emoji:        emoji,
	})
	if err != nil {
		s.Chats.ToggleReaction(chatID, messageID, emoji, author)
		return err
	}

	return nil
}
