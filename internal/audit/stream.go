package audit

import (
	"context"

	rd "github.com/redis/go-redis/v9"
)

// StreamRecorder appends events to a Redis Stream outbox. The append is a
// single XADD, so an event is either fully in the stream or not at all; the
// relay picks it up from there.
type StreamRecorder struct {
	rdb    *rd.Client
	stream string
}

func NewStreamRecorder(rdb *rd.Client, stream string) *StreamRecorder {
	return &StreamRecorder{rdb: rdb, stream: stream}
}

func (r *StreamRecorder) Record(ctx context.Context, e Event) error {
	if err := e.Validate(); err != nil {
		return err
	}
	return r.rdb.XAdd(ctx, &rd.XAddArgs{
		Stream: r.stream,
		Values: e.streamValues(),
	}).Err()
}
