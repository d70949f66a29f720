package auditexport

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/kmsg"
)

// createTopic creates a single-partition topic on the test broker.
func createTopic(t *testing.T, ctx context.Context, broker, topic string) {
	t.Helper()

	admin, err := kgo.NewClient(kgo.SeedBrokers(broker))
	require.NoError(t, err)
	defer admin.Close()

	req := kmsg.NewCreateTopicsRequest()
	req.Topics = []kmsg.CreateTopicsRequestTopic{
		{
			Topic:             topic,
			NumPartitions:     1,
			ReplicationFactor: 1,
		},
	}
	_, err = admin.Request(ctx, &req)
	require.NoError(t, err)

	// Wait for topic to be ready
	time.Sleep(1 * time.Second)
}

func TestPublisher_PublishToRedpanda(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := redpanda.Run(ctx,
		"docker.redpanda.com/redpandadata/redpanda:latest",
	)
	require.NoError(t, err)
	defer func() {
		_ = container.Terminate(ctx)
	}()

	broker, err := container.KafkaSeedBroker(ctx)
	require.NoError(t, err)

	topic := "test.accessgrid-events"
	createTopic(t, ctx, broker, topic)

	pub, err := NewPublisher(Config{
		Brokers: []string{broker},
		Topic:   topic,
		Logger: hclog.New(&hclog.LoggerOptions{
			Name:  "test",
			Level: hclog.Debug,
		}),
	})
	require.NoError(t, err)
	defer pub.Close()

	events := testEvents()
	n, err := pub.Publish(ctx, "acct-1", "tmpl-1", events)
	require.NoError(t, err)
	assert.Equal(t, len(events), n)

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	pollCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var got []Record
	for len(got) < len(events) {
		fetches := consumer.PollFetches(pollCtx)
		require.NoError(t, pollCtx.Err(), "timed out waiting for records")
		fetches.EachRecord(func(r *kgo.Record) {
			assert.Equal(t, "tmpl-1", string(r.Key))

			var rec Record
			require.NoError(t, json.Unmarshal(r.Value, &rec))
			got = append(got, rec)
		})
	}

	require.Len(t, got, len(events))
	for i, rec := range got {
		assert.Equal(t, "acct-1", rec.AccountID)
		assert.Equal(t, "tmpl-1", rec.TemplateID)
		assert.Equal(t, events[i].Type, rec.Event.Type)
		assert.True(t, events[i].Timestamp.Equal(rec.Event.Timestamp))
	}
}
