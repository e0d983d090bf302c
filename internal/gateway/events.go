package gateway

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"
)

const (
	opInsert = "insert"
	opUpdate = "update"
	opDelete = "delete"
)

// Event describes one committed change of a backend table. Events are
// published per table on the channel "<prefix><table>".
type Event struct {
	Table string `json:"table"`
	Op    string `json:"op"`
	ID    uint64 `json:"id"`
}

// publish announces a committed change on the table's channel. A nil
// event transport means realtime is disabled and publishing is a no-op.
// Publish failures are logged only: the write already succeeded and must
// not be reported as failed because of a notification problem.
func (s *Store[E]) publish(ctx context.Context, op string, id uint64) {
	if s.backend.Events == nil {
		return
	}

	payload, err := json.Marshal(Event{Table: s.table, Op: op, ID: id})
	if err != nil {
		log.Error().Err(err).Str("table", s.table).Msg("failed to encode change event")

		return
	}

	channel := s.backend.ChannelPrefix + s.table
	if err := s.backend.Events.Publish(ctx, channel, payload).Err(); err != nil {
		log.Warn().Err(err).Str("channel", channel).Msg("failed to publish change event")
	}
}
