package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_AcceptsZonelessAndRFC3339(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-01T09:30:00"`), &ts))
	assert.Equal(t, time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC), ts.Time)

	require.NoError(t, json.Unmarshal([]byte(`"2024-03-01T09:30:00Z"`), &ts))
	assert.Equal(t, 9, ts.Hour())

	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))

	out, err := json.Marshal(NewTimestamp(time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-03-01T09:30:00"`, string(out))

	out, err = json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestPatientRef_Unmarshal(t *testing.T) {
	var req AppointmentRequest
	body := `{
		"patient": 4,
		"doctor": {"kind": "inline", "doctor": {"name": "Dr. X", "specialty": "Cardiology"}},
		"date_time": "2024-03-01T09:30:00"
	}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, PatientByID(4), req.Patient)
	assert.Equal(t, ReferenceInline, req.Doctor.Kind)
	require.NotNil(t, req.Doctor.Inline)
	assert.Equal(t, "Cardiology", req.Doctor.Inline.Specialty)

	var ref DoctorRef
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"id","id":2}`), &ref))
	assert.Equal(t, DoctorByID(2), ref)
}
