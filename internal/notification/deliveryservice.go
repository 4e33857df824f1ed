package notification

import (
	"encoding/json"
	"fmt"

	"github.com/beanmeet/beanmeet-api/internal/messaging"
	"github.com/beanmeet/beanmeet-api/internal/metrics"
	"github.com/rs/zerolog/log"
	"go.uber.org/atomic"
)

// DeliveryService drains the delivery topic and fans each reminder out to the
// configured channels. Delivery is at-least-once; a message is only committed
// after every channel accepted it.
type DeliveryService struct {
	consumer    *messaging.KafkaConsumer
	notificator *DelegatingNotificator
	stopped     *atomic.Bool
	maxRoutines int
}

func NewDeliveryService(consumer *messaging.KafkaConsumer, notificator *DelegatingNotificator, maxRoutines int) *DeliveryService {
	dls := &DeliveryService{
		consumer:    consumer,
		notificator: notificator,
		stopped:     atomic.NewBool(false),
		maxRoutines: maxRoutines,
	}
	dls.consume()
	return dls
}

func (dls *DeliveryService) Stop() {
	dls.stopped.Store(true)
	dls.consumer.Close()
}

func (dls *DeliveryService) consume() {
	maxReq := make(chan struct{}, dls.maxRoutines)
	go func() {
		for dls.stopped.Load() == false {
			msg := dls.consumer.Poll(100)
			if msg == nil {
				continue
			}
			maxReq <- struct{}{}
			go func() {
				defer func() {
					<-maxReq
				}()
				dn, err := decodeDelivery(msg.Value)
				if err != nil {
					log.Err(err).Msg("dropping undeliverable notification msg")
					// commit anyway, a malformed message would otherwise
					// block the partition forever
					if errCommit := dls.consumer.CommitMessage(msg); errCommit != nil {
						log.Err(errCommit).Msg("could not commit undeliverable notification msg")
					}
					return
				}
				if err := dls.notificator.DelegateNotification(dn); err != nil {
					log.Err(err).Str("reminder", dn.ID.String()).Msg("could not deliver notification")
					return
				}
				for _, nt := range dls.notificator.Notificators {
					metrics.NotificationsDelivered.WithLabelValues(nt.Channel().String()).Inc()
				}
				if err := dls.consumer.CommitMessage(msg); err != nil {
					log.Err(err).Msg("could not commit delivery notification msg")
				}
			}()
		}
	}()
}

// decodeDelivery unmarshals a consumed payload and rejects any whose type is
// not a known reminder type.
func decodeDelivery(value []byte) (*DeliveryNotification, error) {
	var dn DeliveryNotification
	if err := json.Unmarshal(value, &dn); err != nil {
		return nil, err
	}
	if _, err := toNotificationType(dn.Type); err != nil {
		return nil, fmt.Errorf("%w: %q", err, dn.Type)
	}
	return &dn, nil
}
