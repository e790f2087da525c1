package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONValueAndScan(t *testing.T) {
	var empty JSON
	v, err := empty.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	src := JSON{"entity": "Doctor", "entity_id": float64(4)}
	raw, err := src.Value()
	require.NoError(t, err)

	var dst JSON
	require.NoError(t, dst.Scan(raw))
	assert.Equal(t, src, dst)

	require.NoError(t, dst.Scan(`{"a":"b"}`))
	assert.Equal(t, "b", dst["a"])

	assert.Error(t, dst.Scan(42))
}

func TestStatusValidity(t *testing.T) {
	assert.True(t, AppointmentStatusScheduled.IsValid())
	assert.True(t, AppointmentStatusCancelled.IsValid())
	assert.False(t, AppointmentStatus("scheduled").IsValid())

	assert.True(t, BillStatusOverdue.IsValid())
	assert.False(t, BillStatus("REFUNDED").IsValid())
	assert.False(t, BillStatus("").IsValid())
}
