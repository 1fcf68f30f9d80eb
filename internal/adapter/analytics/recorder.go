// Package analytics queues ad view and click signals and persists them in
// the background.
package analytics

import (
	"context"
	"log/slog"
	"time"

	"portal-ads/internal/core/domain"
	"portal-ads/internal/core/port"
	"portal-ads/internal/metrics"
)

const drainTimeout = 5 * time.Second

// Recorder implements port.AdAnalytics. Record calls enqueue without
// blocking; Run writes queued events to the EventCounter.
type Recorder struct {
	counter port.EventCounter
	logger  *slog.Logger
	events  chan domain.AdEvent
	now     func() time.Time
}

func NewRecorder(counter port.EventCounter, buffer int, logger *slog.Logger) *Recorder {
	if buffer <= 0 {
		buffer = 1
	}
	return &Recorder{
		counter: counter,
		logger:  logger,
		events:  make(chan domain.AdEvent, buffer),
		now:     time.Now,
	}
}

func (r *Recorder) RecordView(id string)  { r.enqueue(domain.EventView, id) }
func (r *Recorder) RecordClick(id string) { r.enqueue(domain.EventClick, id) }

func (r *Recorder) enqueue(kind domain.AdEventKind, id string) {
	if id == "" {
		return
	}
	select {
	case r.events <- domain.AdEvent{Kind: kind, CampaignID: id, At: r.now()}:
	default:
		metrics.DroppedEvents.WithLabelValues(string(kind), "buffer_full").Inc()
		r.logger.Warn("ad event dropped", slog.String("kind", string(kind)), slog.String("campaign_id", id))
	}
}

// Run persists events until ctx is done, then drains what is left in the
// queue with a short deadline.
func (r *Recorder) Run(ctx context.Context) {
	for {
		select {
		case ev := <-r.events:
			r.write(ctx, ev)
		case <-ctx.Done():
			r.drain(context.WithoutCancel(ctx))
			return
		}
	}
}

func (r *Recorder) drain(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, drainTimeout)
	defer cancel()
	for {
		select {
		case ev := <-r.events:
			r.write(ctx, ev)
		default:
			return
		}
	}
}

func (r *Recorder) write(ctx context.Context, ev domain.AdEvent) {
	var err error
	switch ev.Kind {
	case domain.EventView:
		err = r.counter.IncrementViews(ctx, ev.CampaignID)
	case domain.EventClick:
		err = r.counter.IncrementClicks(ctx, ev.CampaignID)
	}
	if err != nil {
		metrics.DroppedEvents.WithLabelValues(string(ev.Kind), "write_failed").Inc()
		r.logger.Error("persist ad event",
			slog.String("kind", string(ev.Kind)),
			slog.String("campaign_id", ev.CampaignID),
			slog.Any("error", err))
		return
	}
	metrics.AdEvents.WithLabelValues(string(ev.Kind)).Inc()
}
