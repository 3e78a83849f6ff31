package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	patientpb "github.com/raidhealth/patient-platform/proto/patientevents"
)

func TestEncodeEvent(t *testing.T) {
	body, err := encodeEvent("patient-1", "John Doe", "john@example.com", EventTypePatientCreated)
	require.NoError(t, err)

	var ev patientpb.PatientEvent
	require.NoError(t, proto.Unmarshal(body, &ev))
	assert.Equal(t, "patient-1", ev.GetPatientId())
	assert.Equal(t, "John Doe", ev.GetName())
	assert.Equal(t, "john@example.com", ev.GetEmail())
	assert.Equal(t, "PATIENT_CREATED", ev.GetEventType())
}
