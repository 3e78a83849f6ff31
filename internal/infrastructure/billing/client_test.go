package billing

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/raidhealth/patient-platform/internal/billingservice"
	billingpb "github.com/raidhealth/patient-platform/proto/billing"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// newBufClient wires a client to an in-process billing server over bufconn.
func newBufClient(t *testing.T) *GRPCClient {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	billingpb.RegisterBillingServiceServer(srv, billingservice.New(quietLogger()))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return newFromConn(conn, 2*time.Second, quietLogger())
}

func TestCreateAccount(t *testing.T) {
	c := newBufClient(t)

	conf, err := c.CreateAccount(context.Background(), "patient-1", "John Doe", "john@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, conf.AccountID)
	assert.Equal(t, "ACTIVE", conf.Status)
}

func TestCreateAccount_Idempotent(t *testing.T) {
	c := newBufClient(t)

	first, err := c.CreateAccount(context.Background(), "patient-1", "John Doe", "john@example.com")
	require.NoError(t, err)
	second, err := c.CreateAccount(context.Background(), "patient-1", "John Doe", "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.AccountID, second.AccountID)
}

func TestCreateAccount_InvalidRequest(t *testing.T) {
	c := newBufClient(t)

	_, err := c.CreateAccount(context.Background(), "patient-1", "John Doe", "")
	require.ErrorIs(t, err, ErrRejected)
}

func TestCreateAccount_Unreachable(t *testing.T) {
	// Nothing listens on this port; the call must come back as unavailable
	// within the configured deadline.
	c, err := NewGRPCClient("127.0.0.1:1", 500*time.Millisecond, quietLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	_, err = c.CreateAccount(context.Background(), "patient-1", "John Doe", "john@example.com")
	require.ErrorIs(t, err, ErrUnavailable)
}
