// Command bgwatch opens an object and prints its resolved details as JSON
// every time they change, until interrupted.
//
//	BLOCKGRAPH_ENDPOINT=ws://127.0.0.1:31007 bgwatch [-keys name,done] <object-id>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	"github.com/blockgraph/blockgraph.go"
	"github.com/blockgraph/blockgraph.go/pkg/constants"
)

func main() {
	if err := Main(); err != nil {
		log.Fatal(err.Error())
	}
}

func Main() error {
	var (
		keys   = flag.String("keys", "", "Comma separated relation keys to print; all when empty")
		indent = flag.Bool("indent", false, "Indent the JSON output")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		return errors.New("usage: bgwatch [-keys k1,k2] [-indent] <object-id>")
	}
	objectID := flag.Arg(0)

	conf, err := blockgraph.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("failed to read configuration: %w", err)
	}
	defer conf.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, err := blockgraph.FromConfig(ctx, conf)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	if _, err := session.ObjectOpen(ctx, objectID); err != nil {
		_ = session.Close(context.Background())
		return fmt.Errorf("failed to open %s: %w", objectID, err)
	}

	return watch(ctx, session, objectID, splitKeys(*keys), newPrinter(os.Stdout, *indent))
}

func splitKeys(s string) []string {
	if s == "" {
		return nil
	}

	var out []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

type printer struct {
	enc *json.Encoder
}

func newPrinter(w io.Writer, indent bool) *printer {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return &printer{enc: enc}
}

func (p *printer) print(v any) error {
	return p.enc.Encode(v)
}

// watch prints the object once, then on every change, until ctx is done.
// The session is closed before watch returns.
func watch(ctx context.Context, session *blockgraph.Session, objectID string, keys []string, p *printer) error {
	changed := make(chan struct{}, 1)
	unwatch := session.Details.Watch(objectID, objectID, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer unwatch()

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		if err := p.print(session.Details.Get(objectID, objectID, keys, false)); err != nil {
			return err
		}

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-changed:
				if err := p.print(session.Details.Get(objectID, objectID, keys, false)); err != nil {
					return err
				}
			}
		}
	})

	eg.Go(func() error {
		<-ctx.Done()

		closeCtx, cancel := context.WithTimeout(context.Background(), constants.DefaultCloseTimeout)
		defer cancel()

		if err := session.ObjectClose(closeCtx, objectID); err != nil {
			log.Printf("failed to close %s: %v", objectID, err)
		}
		return session.Close(closeCtx)
	})

	return eg.Wait()
}
