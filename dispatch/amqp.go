package dispatch

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	completedExchange = "orders.completed"
	publishTimeout    = 5 * time.Second
)

// ส่ง event เข้าคิว RabbitMQ ให้ตัว export (ชีต/analytics) ไป consume ต่อ
// fanout exchange — ใครอยากฟังก็ bind queue เอง
type AMQPDispatcher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	mu   sync.Mutex // serialize publish บน channel เดียว
}

func DialAMQP(url string) (*AMQPDispatcher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(
		completedExchange,
		"fanout",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	return &AMQPDispatcher{conn: conn, ch: ch}, nil
}

func (d *AMQPDispatcher) OrderCompleted(ev OrderCompletedEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ch.PublishWithContext(
		ctx,
		completedExchange,
		"", // fanout ไม่ใช้ routing key
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Timestamp:    time.Now(),
			// orderId เป็น key ให้ consumer dedup
			MessageId:    strconv.FormatUint(uint64(ev.OrderID), 10),
			Body:         body,
		},
	)
}

func (d *AMQPDispatcher) Close() {
	if d.ch != nil {
		_ = d.ch.Close()
	}
	if d.conn != nil {
		_ = d.conn.Close()
	}
}
