// Package notify subscribes to backend change events and triggers the
// refetch of the matching mirrored collection. Any insert, update or
// delete on a watched table refreshes the whole mirror regardless of
// which row changed; rapid successive events are not coalesced, and
// overlapping refetches are tolerated (last one to land wins).
package notify

import (
	"context"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Refetcher reloads one mirrored collection.
type Refetcher func(ctx context.Context)

// Notifier dispatches backend change events to registered refetchers.
// Start and Stop are strictly paired: Stop must run on every shutdown
// path once Start succeeded.
type Notifier struct {
	client *redis.Client
	prefix string

	mu      sync.Mutex
	targets map[string]Refetcher

	pubsub *redis.PubSub
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a notifier on the given event transport. A nil client is
// allowed and produces a disabled notifier whose Start is a no-op.
func New(client *redis.Client, channelPrefix string) *Notifier {
	return &Notifier{
		client:  client,
		prefix:  channelPrefix,
		targets: make(map[string]Refetcher),
	}
}

// Watch registers the refetcher run on every change event of the table.
// Must be called before Start.
func (n *Notifier) Watch(table string, refetch Refetcher) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.targets[table] = refetch
}

// Start subscribes to the change channels of all watched tables and
// dispatches events until Stop is called or the context ends.
func (n *Notifier) Start(ctx context.Context) error {
	if n.client == nil {
		log.Debug().Msg("realtime disabled, change notifier not started")

		return nil
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.pubsub != nil {
		return ErrAlreadyStarted
	}

	runCtx, cancel := context.WithCancel(ctx)
	n.cancel = cancel
	n.pubsub = n.client.PSubscribe(runCtx, n.prefix+"*")
	n.done = make(chan struct{})

	go n.dispatch(runCtx, n.pubsub.Channel(), n.done)

	log.Info().Int("tables", len(n.targets)).Str("prefix", n.prefix).
		Msg("change notifier started")

	return nil
}

// Stop unsubscribes and waits for the dispatch loop to drain. Idempotent;
// safe to call on error paths where Start never ran.
func (n *Notifier) Stop() {
	n.mu.Lock()
	pubsub := n.pubsub
	cancel := n.cancel
	done := n.done
	n.pubsub = nil
	n.cancel = nil
	n.done = nil
	n.mu.Unlock()

	if pubsub == nil {
		return
	}

	cancel()

	if err := pubsub.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close change subscription")
	}

	<-done

	log.Info().Msg("change notifier stopped")
}

// dispatch fans incoming events out to the table refetchers. Every event
// triggers an independent refetch; the mirror tolerates overlap.
func (n *Notifier) dispatch(ctx context.Context, events <-chan *redis.Message, done chan struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-events:
			if !ok {
				return
			}

			table := strings.TrimPrefix(msg.Channel, n.prefix)

			n.mu.Lock()
			refetch := n.targets[table]
			n.mu.Unlock()

			if refetch == nil {
				log.Debug().Str("table", table).Msg("change event for unwatched table")

				continue
			}

			log.Debug().Str("table", table).Msg("change event, refetching mirror")

			go refetch(ctx)
		}
	}
}
