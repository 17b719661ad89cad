// The [blockgraph] package is a client for a block-based note-taking
// backend spoken to over a CBOR RPC protocol.
//
// # Sessions
//
// A [Session] owns a connection and one instance of each store: details,
// subscription records, block trees and chats. Events pushed by the backend
// are applied to the stores in arrival order by a single goroutine, so a
// reader of the stores never sees a later event before an earlier one.
//
// Provide an endpoint URL to [FromEndpointURLString], or build a
// connection yourself and hand it to [New].
//
// # Data Models
//
// Wire messages live in [github.com/blockgraph/blockgraph.go/pkg/wire] and
// are converted to the typed model of
// [github.com/blockgraph/blockgraph.go/pkg/models] by
// [github.com/blockgraph/blockgraph.go/pkg/mapper]. Session methods take
// and return models only.
//
// # Observing changes
//
// Stores expose Watch methods. Hooks registered with [Session.OnEvent]
// see every event message after it was applied.
package blockgraph
