package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	evt, err := NewEvent("cart.updated", "sess-1", "cart", "storefront",
		map[string]any{"total_item_count": 3})
	require.NoError(t, err)

	assert.NotEmpty(t, evt.EventID)
	assert.Equal(t, "cart.updated", evt.EventType)
	assert.Equal(t, "sess-1", evt.AggregateID)
	assert.Equal(t, 1, evt.Version)
	assert.False(t, evt.Timestamp.IsZero())
	assert.JSONEq(t, `{"total_item_count":3}`, string(evt.Data))
}

func TestNewEventRejectsUnserializableData(t *testing.T) {
	_, err := NewEvent("cart.updated", "sess-1", "cart", "storefront", make(chan int))
	assert.Error(t, err)
}

func TestEventRoundTrip(t *testing.T) {
	evt, err := NewEvent("wishlist.updated", "sess-2", "wishlist", "storefront",
		map[string]string{"product_id": "prod-004"})
	require.NoError(t, err)
	evt.WithCorrelationID("corr-1").WithMetadata("region", "lagos")

	data, err := evt.Marshal()
	require.NoError(t, err)

	got, err := UnmarshalEvent(data)
	require.NoError(t, err)
	assert.Equal(t, evt.EventID, got.EventID)
	assert.Equal(t, "corr-1", got.CorrelationID)
	assert.Equal(t, "lagos", got.Metadata["region"])
}
