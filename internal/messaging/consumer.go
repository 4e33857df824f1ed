package messaging

import (
	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/rs/zerolog/log"
)

type KafkaConsumer struct {
	consumer *kafka.Consumer
}

func NewKafkaConsumer(bootstrapServers, groupID, offsetReset, enableAutoCommit, topic string) (*KafkaConsumer, error) {
	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":  bootstrapServers,
		"group.id":           groupID,
		"auto.offset.reset":  offsetReset,
		"enable.auto.commit": enableAutoCommit})
	if err != nil {
		return nil, err
	}
	if err = consumer.Subscribe(topic, nil); err != nil {
		return nil, err
	}
	return &KafkaConsumer{
		consumer: consumer,
	}, nil
}

// Poll returns the next message, or nil when the timeout elapses or a
// non-message event arrives.
func (kc *KafkaConsumer) Poll(timeoutMs int) *kafka.Message {
	ev := kc.consumer.Poll(timeoutMs)
	switch e := ev.(type) {
	case *kafka.Message:
		return e
	case kafka.Error:
		log.Err(e).Msg("kafka consumer produced an error")
		return nil
	default:
		return nil
	}
}

func (kc *KafkaConsumer) CommitMessage(msg *kafka.Message) error {
	_, err := kc.consumer.CommitMessage(msg)
	return err
}

func (kc *KafkaConsumer) Close() {
	if _, err := kc.consumer.Commit(); err != nil {
		log.Err(err).Msg("could not commit consumer while closing")
	}
	if err := kc.consumer.Close(); err != nil {
		log.Err(err).Msg("could not close consumer")
	}
}
