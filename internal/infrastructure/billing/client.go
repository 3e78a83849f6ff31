package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	billingpb "github.com/raidhealth/patient-platform/proto/billing"
)

var (
	// ErrUnavailable is returned when the billing service cannot be reached
	// or the call deadline expires before a response arrives.
	ErrUnavailable = errors.New("billing service unavailable")
	// ErrRejected is returned when the billing service answers with a
	// business-level error status.
	ErrRejected = errors.New("billing account rejected")
)

// Confirmation is the provisioning result handed back to the caller.
type Confirmation struct {
	AccountID string
	Status    string
}

// AccountClient provisions billing accounts for newly registered patients.
type AccountClient interface {
	CreateAccount(ctx context.Context, patientID, name, email string) (*Confirmation, error)
}

// GRPCClient is a blocking, single-attempt client for the billing service.
// Retries and compensation are the caller's decision.
type GRPCClient struct {
	conn    *grpc.ClientConn
	stub    billingpb.BillingServiceClient
	timeout time.Duration
	logger  *logrus.Logger
}

func NewGRPCClient(target string, timeout time.Duration, logger *logrus.Logger) (*GRPCClient, error) {
	logger.WithField("target", target).Info("connecting to billing grpc service")

	conn, err := grpc.NewClient(target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, err
	}
	return &GRPCClient{
		conn:    conn,
		stub:    billingpb.NewBillingServiceClient(conn),
		timeout: timeout,
		logger:  logger,
	}, nil
}

// newFromConn wraps an existing connection; used by tests with bufconn.
func newFromConn(conn *grpc.ClientConn, timeout time.Duration, logger *logrus.Logger) *GRPCClient {
	return &GRPCClient{
		conn:    conn,
		stub:    billingpb.NewBillingServiceClient(conn),
		timeout: timeout,
		logger:  logger,
	}
}

func (c *GRPCClient) CreateAccount(ctx context.Context, patientID, name, email string) (*Confirmation, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.stub.CreateBillingAccount(ctx, &billingpb.BillingRequest{
		PatientId: patientID,
		Name:      name,
		Email:     email,
	})
	if err != nil {
		switch status.Code(err) {
		case codes.Unavailable, codes.DeadlineExceeded:
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrRejected, err)
		}
	}

	c.logger.WithFields(logrus.Fields{
		"patient_id": patientID,
		"account_id": resp.GetAccountId(),
		"status":     resp.GetStatus(),
	}).Info("billing account provisioned")

	return &Confirmation{AccountID: resp.GetAccountId(), Status: resp.GetStatus()}, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

var _ AccountClient = (*GRPCClient)(nil)
