package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/innstack/hotel-system/internal/api/metrics"
	"github.com/innstack/hotel-system/internal/core/domain"
	"github.com/innstack/hotel-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes room status events to a fixed set of workers using
// consistent hashing on the room id, guaranteeing per-room ordering of
// the audit trail.
type Dispatcher struct {
	workers []chan domain.RoomStatusEvent
	service ports.EventService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.EventService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.RoomStatusEvent, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.RoomStatusEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is
// cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its room. The
// call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event domain.RoomStatusEvent) {
	idx := d.shardIndex(event.RoomID)
	d.workers[idx] <- event
	metrics.EventsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a room id deterministically to a worker index.
func (d *Dispatcher) shardIndex(roomID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(roomID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.RoomStatusEvent) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			start := time.Now()
			if err := d.service.Record(ctx, event); err != nil {
				metrics.EventsErrorsTotal.WithLabelValues("record_failed").Inc()
				d.log.Error().Err(err).
					Str("room_id", event.RoomID).
					Int("worker_id", id).
					Msg("room event recording failed")
			} else {
				metrics.EventsProcessedTotal.WithLabelValues(string(event.NewStatus), event.Source).Inc()
			}
			metrics.EventProcessingDuration.WithLabelValues(string(event.NewStatus)).Observe(time.Since(start).Seconds())
			metrics.EventsQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
		}
	}
}
