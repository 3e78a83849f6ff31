package billingservice

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	billingpb "github.com/raidhealth/patient-platform/proto/billing"
)

// Server is a reference implementation of the billing service. Accounts live
// in memory; creating an account twice for the same patient returns the
// existing account instead of failing.
type Server struct {
	billingpb.UnimplementedBillingServiceServer

	logger *logrus.Logger

	mu       sync.Mutex
	accounts map[string]string // patient id -> account id
}

func New(logger *logrus.Logger) *Server {
	return &Server{
		logger:   logger,
		accounts: make(map[string]string),
	}
}

func (s *Server) CreateBillingAccount(ctx context.Context, req *billingpb.BillingRequest) (*billingpb.BillingResponse, error) {
	if req.GetPatientId() == "" || req.GetEmail() == "" {
		return nil, status.Error(codes.InvalidArgument, "patient_id and email are required")
	}

	s.mu.Lock()
	accountID, ok := s.accounts[req.GetPatientId()]
	if !ok {
		accountID = uuid.NewString()
		s.accounts[req.GetPatientId()] = accountID
	}
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"patient_id": req.GetPatientId(),
		"account_id": accountID,
		"existing":   ok,
	}).Info("billing account created")

	return &billingpb.BillingResponse{
		AccountId: accountID,
		Status:    "ACTIVE",
	}, nil
}
