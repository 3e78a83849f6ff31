package billingservice

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	billingpb "github.com/raidhealth/patient-platform/proto/billing"
)

func newTestServer() *Server {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return New(l)
}

func TestCreateBillingAccount(t *testing.T) {
	s := newTestServer()

	resp, err := s.CreateBillingAccount(context.Background(), &billingpb.BillingRequest{
		PatientId: "patient-1",
		Name:      "John Doe",
		Email:     "john@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.GetAccountId())
	assert.Equal(t, "ACTIVE", resp.GetStatus())
}

func TestCreateBillingAccount_Idempotent(t *testing.T) {
	s := newTestServer()
	req := &billingpb.BillingRequest{PatientId: "patient-1", Name: "John Doe", Email: "john@example.com"}

	first, err := s.CreateBillingAccount(context.Background(), req)
	require.NoError(t, err)
	second, err := s.CreateBillingAccount(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first.GetAccountId(), second.GetAccountId())
}

func TestCreateBillingAccount_MissingFields(t *testing.T) {
	s := newTestServer()

	for _, req := range []*billingpb.BillingRequest{
		{Name: "John Doe", Email: "john@example.com"},
		{PatientId: "patient-1", Name: "John Doe"},
	} {
		_, err := s.CreateBillingAccount(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	}
}
