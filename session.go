package blockgraph

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"sync"

	"github.com/gofrs/uuid"

	"github.com/blockgraph/blockgraph.go/pkg/connection"
	"github.com/blockgraph/blockgraph.go/pkg/connection/gorillaws"
	"github.com/blockgraph/blockgraph.go/pkg/constants"
	"github.com/blockgraph/blockgraph.go/pkg/logger"
	"github.com/blockgraph/blockgraph.go/pkg/models"
	"github.com/blockgraph/blockgraph.go/pkg/store/block"
	"github.com/blockgraph/blockgraph.go/pkg/store/chat"
	"github.com/blockgraph/blockgraph.go/pkg/store/detail"
	"github.com/blockgraph/blockgraph.go/pkg/store/record"
	"github.com/blockgraph/blockgraph.go/pkg/wire"
)

// EventHook observes one event message. contextID is the id of the object
// the event batch was pushed for.
type EventHook func(contextID string, msg *wire.EventMessage)

// ErrorHook observes failures that have no caller to return to, such as
// an undecodable pushed frame.
type ErrorHook func(err error)

// Session is a connection to the backend together with the stores fed by
// its events.
type Session struct {
	ID string

	Details *detail.Store
	Records *record.Store
	Blocks  *block.Store
	Chats   *chat.Store

	conn   connection.Connection
	conf   *Config
	logger logger.Logger

	hooksMu    sync.RWMutex
	hooks      map[int]EventHook
	errorHooks []ErrorHook
	nextHook   int

	pendingMu sync.Mutex
	pending   map[string]*pendingApply

	accountMu    sync.RWMutex
	account      models.Account
	threadStatus models.ThreadStatusInfo

	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

// FromEndpointURLString connects to a ws:// or wss:// endpoint with the
// default configuration.
func FromEndpointURLString(ctx context.Context, endpoint string) (*Session, error) {
	u, err := url.ParseRequestURI(endpoint)
	if err != nil {
		return nil, err
	}

	return FromConfig(ctx, NewConfig(u))
}

// FromConfig dials conf.URL with the gorilla/websocket transport.
func FromConfig(ctx context.Context, conf *Config) (*Session, error) {
	if conf.URL == nil {
		return nil, constants.ErrNoBaseURL
	}

	scheme := conf.URL.Scheme
	if scheme != constants.WebsocketScheme && scheme != constants.WebsocketSecureScheme {
		return nil, fmt.Errorf("%w: %s", constants.ErrUnsupported, scheme)
	}

	connConf := connection.NewConfig(conf.URL)
	connConf.Logger = conf.Logger

	conn := gorillaws.New(connConf).SetTimeOut(conf.Timeout)

	return New(ctx, conn, conf)
}

// New connects conn and starts applying its events to fresh stores.
// A nil conf uses the defaults of NewConfig.
func New(ctx context.Context, conn connection.Connection, conf *Config) (*Session, error) {
	if conf == nil {
		conf = NewConfig(&url.URL{})
	}

	l := conf.Logger
	if l == nil {
		l = logger.Discard()
		conf.Logger = l
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	if err := conn.Connect(ctx); err != nil {
		return nil, err
	}

	s := &Session{
		ID:      id.String(),
		Details: detail.New(conf.detailOptions()...),
		Records: record.New(l),
		Blocks:  block.New(l),
		Chats:   chat.New(l),
		conn:    conn,
		conf:    conf,
		logger:  l,
		hooks:   make(map[int]EventHook),
		pending: make(map[string]*pendingApply),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}

	go s.dispatch()

	l.Info("session started", "sessionId", s.ID)

	return s, nil
}

// OnEvent registers fn to run after every applied event message. Hooks run
// on the event loop and must not wait on calls that update the stores. The
// returned func removes it.
func (s *Session) OnEvent(fn EventHook) func() {
	s.hooksMu.Lock()
	defer s.hooksMu.Unlock()

	id := s.nextHook
	s.nextHook++
	s.hooks[id] = fn

	return func() {
		s.hooksMu.Lock()
		defer s.hooksMu.Unlock()
		delete(s.hooks, id)
	}
}

// OnError registers fn to receive errors raised while handling events.
func (s *Session) OnError(fn ErrorHook) {
	s.hooksMu.Lock()
	defer s.hooksMu.Unlock()
	s.errorHooks = append(s.errorHooks, fn)
}

// Account returns the account selected by AccountSelect.
func (s *Session) Account() models.Account {
	s.accountMu.RLock()
	defer s.accountMu.RUnlock()
	return s.account
}

func (s *Session) setAccount(a models.Account) {
	s.accountMu.Lock()
	defer s.accountMu.Unlock()
	s.account = a
}

// Close closes the connection, waits for the event loop to stop and drops
// the content of every store.
func (s *Session) Close(ctx context.Context) error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.conn.Close(ctx)

		select {
		case <-s.stopped:
		case <-ctx.Done():
			err = errors.Join(err, ctx.Err())
		}

		s.Details.Close()
		s.Records.ClearAll()
		s.Blocks.ClearAll()
		s.Chats.ClearAll()

		s.logger.Info("session closed", "sessionId", s.ID)
	})
	return err
}

func (s *Session) closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

func (s *Session) eventHooks() []EventHook {
	s.hooksMu.RLock()
	defer s.hooksMu.RUnlock()

	keys := make([]int, 0, len(s.hooks))
	for k := range s.hooks {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]EventHook, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.hooks[k])
	}
	return out
}

func (s *Session) reportError(err error) {
	s.logger.Error("event handling failed", "error", err)

	s.hooksMu.RLock()
	hooks := slices.Clone(s.errorHooks)
	s.hooksMu.RUnlock()

	for _, fn := range hooks {
		fn(err)
	}
}
