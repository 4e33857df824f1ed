package notification

import (
	"context"
	"encoding/json"
	"time"

	"github.com/beanmeet/beanmeet-api/internal/metrics"
	"github.com/beanmeet/beanmeet-api/internal/storage"
	"github.com/cockroachdb/cockroach-go/v2/crdb/crdbpgx"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/rs/zerolog/log"
	"go.uber.org/atomic"
)

type DispatchStore interface {
	ListDueScheduled(ctx context.Context, due time.Time, limit int) ([]*storage.ScheduledNotification, error)
	GetScheduledForUpdate(ctx context.Context, id uuid.UUID, tx pgx.Tx) (*storage.ScheduledNotification, error)
	MarkScheduledSent(ctx context.Context, id uuid.UUID, tx pgx.Tx) error
	GetPool() *pgxpool.Pool
}

type Producer interface {
	Produce(payload []byte) error
}

// DispatchService claims due reminders and hands them to the delivery topic.
// The FOR UPDATE + sent check inside a retryable transaction guarantees a row
// is dispatched once even with several instances polling.
type DispatchService struct {
	store     DispatchStore
	producer  Producer
	interval  time.Duration
	batchSize int
	stopped   *atomic.Bool
	done      chan struct{}
}

func NewDispatchService(store DispatchStore, producer Producer, interval time.Duration, batchSize int) *DispatchService {
	ds := &DispatchService{
		store:     store,
		producer:  producer,
		interval:  interval,
		batchSize: batchSize,
		stopped:   atomic.NewBool(false),
		done:      make(chan struct{}),
	}
	ds.poll()
	return ds
}

func (ds *DispatchService) Stop() {
	if ds.stopped.CompareAndSwap(false, true) {
		close(ds.done)
	}
}

func (ds *DispatchService) poll() {
	ticker := time.NewTicker(ds.interval)
	go func() {
		defer ticker.Stop()
		for ds.stopped.Load() == false {
			select {
			case <-ds.done:
				return
			case now := <-ticker.C:
				ds.runOnce(context.Background(), now.UTC())
			}
		}
	}()
}

func (ds *DispatchService) runOnce(ctx context.Context, now time.Time) {
	due, err := ds.store.ListDueScheduled(ctx, now, ds.batchSize)
	if err != nil {
		log.Err(err).Msg("could not list due reminders")
		return
	}
	for _, sn := range due {
		if err := ds.dispatchOne(ctx, sn.ID); err != nil {
			log.Err(err).Str("reminder", sn.ID.String()).Msg("could not dispatch reminder")
		}
	}
}

func (ds *DispatchService) dispatchOne(ctx context.Context, id uuid.UUID) error {
	return crdbpgx.ExecuteTx(ctx, ds.store.GetPool(), pgx.TxOptions{}, func(tx pgx.Tx) error {
		sn, err := ds.store.GetScheduledForUpdate(ctx, id, tx)
		if err != nil {
			return err
		}
		if sn.Sent {
			return nil
		}
		b, err := json.Marshal(&DeliveryNotification{
			ID:      sn.ID,
			MatchID: sn.MatchID,
			UserID:  sn.UserID,
			Type:    sn.Type,
			Title:   sn.Title,
			Body:    sn.Body,
		})
		if err != nil {
			return err
		}
		if err = ds.producer.Produce(b); err != nil {
			return err
		}
		if err = ds.store.MarkScheduledSent(ctx, sn.ID, tx); err != nil {
			return err
		}
		metrics.RemindersDispatched.Inc()
		return nil
	})
}
