package events

import (
	"context"
	"encoding/json"
	"time"

	"foodcoop_orders/internal/domain/entities"
	"foodcoop_orders/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
)

// TopicOrdersConfirmed feeds the ERP intake job that turns confirmed
// cooperative orders into ERP sales orders.
const TopicOrdersConfirmed = "coop.orders.confirmed"

// OrderConfirmedEvent is the wire payload published per confirmation.
type OrderConfirmedEvent struct {
	Type          string             `json:"type"`
	CycleID       string             `json:"cycle_id"`
	CustomerSlug  string             `json:"customer_slug"`
	Status        string             `json:"status"`
	Items         map[string]float64 `json:"items"`
	NonLocalItems map[string]float64 `json:"non_local_items"`
	Note          string             `json:"note,omitempty"`
	ConfirmedAt   time.Time          `json:"confirmed_at"`
}

// KafkaOrderExporter publishes confirmed orders, keyed by customer slug so
// one customer's confirmations stay in order on a partition.
type KafkaOrderExporter struct {
	w *kafka.Writer
}

var _ interfaces.IOrderExporter = (*KafkaOrderExporter)(nil)

func NewKafkaOrderExporter(brokers []string, topic string) *KafkaOrderExporter {
	if topic == "" {
		topic = TopicOrdersConfirmed
	}
	return &KafkaOrderExporter{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

func (e *KafkaOrderExporter) ExportConfirmedOrder(ctx context.Context, cycleID string, order entities.Order) error {
	evt := OrderConfirmedEvent{
		Type:          "order.confirmed",
		CycleID:       cycleID,
		CustomerSlug:  order.CustomerSlug,
		Status:        string(order.Status),
		Items:         order.Items,
		NonLocalItems: order.NonLocalItems,
		Note:          order.Note,
	}
	if order.ConfirmationDateTime != nil {
		evt.ConfirmedAt = *order.ConfirmationDateTime
	}

	value, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	return e.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.CustomerSlug),
		Value: value,
		Time:  time.Now(),
	})
}

func (e *KafkaOrderExporter) Close() error {
	return e.w.Close()
}
