package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const streamName = "omnia"

// NATSEventBus consumes platform events from NATS JetStream. The console
// never publishes: agent runtimes and controllers own the stream, the
// console only follows it to feed dashboard clients.
type NATSEventBus struct {
	conn   *nats.Conn
	stream jetstream.Stream
}

// NewNATSEventBus connects to NATS and looks up the platform's event
// stream. The lookup retries because the console often comes up before the
// components that create the stream.
func NewNATSEventBus(url string) (*NATSEventBus, error) {
	nc, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(10),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("creating JetStream context: %w", err)
	}

	var stream jetstream.Stream
	for attempt := 0; attempt < 10; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		stream, err = js.Stream(ctx, streamName)
		cancel()
		if err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("looking up stream %q after retries: %w", streamName, err)
	}

	return &NATSEventBus{conn: nc, stream: stream}, nil
}

// Subscribe delivers events for the topic, filtered to a workspace when one
// is given. Each call gets its own ordered ephemeral consumer starting at
// new messages, so dashboard clients never replay history. A slow client
// drops events rather than stalling the consumer.
func (n *NATSEventBus) Subscribe(ctx context.Context, topic, workspace string) (<-chan *Event, error) {
	consumer, err := n.stream.OrderedConsumer(ctx, jetstream.OrderedConsumerConfig{
		FilterSubjects: []string{topicToSubject(topic)},
		DeliverPolicy:  jetstream.DeliverNewPolicy,
	})
	if err != nil {
		return nil, fmt.Errorf("creating consumer for %s: %w", topic, err)
	}

	ch := make(chan *Event, 64)
	cc, err := consumer.Consume(func(msg jetstream.Msg) {
		var event Event
		if err := json.Unmarshal(msg.Data(), &event); err != nil {
			return
		}
		if !event.InWorkspace(workspace) {
			return
		}
		select {
		case ch <- &event:
		default:
		}
	})
	if err != nil {
		return nil, fmt.Errorf("consuming %s: %w", topic, err)
	}

	go func() {
		<-ctx.Done()
		cc.Drain()
		// Wait for in-flight deliveries before closing the channel.
		<-cc.Closed()
		close(ch)
	}()

	return ch, nil
}

// Close shuts down the NATS connection.
func (n *NATSEventBus) Close() error {
	n.conn.Close()
	return nil
}

// topicToSubject converts a dotted topic (e.g. "session.stream.chunk")
// to a NATS subject under the omnia namespace (e.g. "omnia.session.stream.chunk").
func topicToSubject(topic string) string {
	return "omnia." + topic
}
