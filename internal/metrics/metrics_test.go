package metrics

import (
	"context"
	"testing"

	"github.com/notarydesk/priorities/internal/event"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Watch(t *testing.T) {
	m := New()
	bus := event.NewBus()
	stop := m.Watch(bus)

	bus.Publish(context.Background(), event.Event{Kind: event.KindCollectionWritten})
	bus.Publish(context.Background(), event.Event{Kind: event.KindCollectionWritten})
	bus.Publish(context.Background(), event.Event{Kind: event.KindCollectionReplaced})
	stop()
	bus.Publish(context.Background(), event.Event{Kind: event.KindCollectionReplaced})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.storeEvents.WithLabelValues(string(event.KindCollectionWritten), "local")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeEvents.WithLabelValues(string(event.KindCollectionReplaced), "local")))
}

func TestMetrics_Counters(t *testing.T) {
	m := New()
	m.Observe("POST /api/v1/employees", OutcomeOK)
	m.Observe("POST /api/v1/employees", OutcomeRejected)
	m.Observe("POST /api/v1/employees", OutcomeRejected)
	m.Backup("import", OutcomeRejected)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("POST /api/v1/employees", OutcomeOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.operations.WithLabelValues("POST /api/v1/employees", OutcomeRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.backups.WithLabelValues("import", OutcomeRejected)))

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "priorities_operations_total")
	assert.Contains(t, names, "priorities_backups_total")
}
