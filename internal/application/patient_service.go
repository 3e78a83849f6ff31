package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/raidhealth/patient-platform/internal/domain/entity"
	repo "github.com/raidhealth/patient-platform/internal/domain/repository"
	"github.com/raidhealth/patient-platform/internal/infrastructure/billing"
	"github.com/raidhealth/patient-platform/internal/infrastructure/eventbus"
)

// Service sequences patient registration: persist the record, provision a
// billing account over gRPC, publish a PATIENT_CREATED event. The three
// steps run strictly in order on the caller's goroutine with no retries.
type Service struct {
	Repo            repo.PatientRepository
	Billing         billing.AccountClient
	Events          eventbus.Publisher
	Logger          *logrus.Logger
	ES              *elasticsearch.Client
	ESPatientsIndex string
}

func NewService(r repo.PatientRepository, bc billing.AccountClient, pub eventbus.Publisher, logger *logrus.Logger, es *elasticsearch.Client, esPatientsIndex string) *Service {
	return &Service{
		Repo:            r,
		Billing:         bc,
		Events:          pub,
		Logger:          logger,
		ES:              es,
		ESPatientsIndex: esPatientsIndex,
	}
}

type PatientInput struct {
	Name           string
	Email          string
	Address        string
	DateOfBirth    time.Time
	RegisteredDate time.Time
}

// CreatePatient runs the full registration sequence.
//
// A duplicate email aborts before any write. A billing failure is returned to
// the caller but the persisted record is left in place; there is no
// compensation step here. A publish failure only logs a warning: the record
// and the billing account stand whether or not the event reached the broker.
func (s *Service) CreatePatient(ctx context.Context, in PatientInput) (*entity.Patient, error) {
	exists, err := s.Repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repo.ErrDuplicateEmail
	}

	p := &entity.Patient{
		Name:           in.Name,
		Email:          in.Email,
		Address:        in.Address,
		DateOfBirth:    in.DateOfBirth,
		RegisteredDate: in.RegisteredDate,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}

	if _, err := s.Billing.CreateAccount(ctx, p.ID, p.Name, p.Email); err != nil {
		s.Logger.WithError(err).WithField("patient_id", p.ID).Error("billing provisioning failed; patient record kept")
		return nil, err
	}

	if err := s.Events.PatientCreated(ctx, p.ID, p.Name, p.Email); err != nil {
		s.Logger.WithError(err).WithField("patient_id", p.ID).Warn("patient created event publish failed")
	}

	_ = s.indexPatient(ctx, p)
	return p, nil
}

// UpdatePatient mutates an existing record. Only creation triggers billing
// provisioning and event publication; updates touch the record store alone.
func (s *Service) UpdatePatient(ctx context.Context, id string, in PatientInput) (*entity.Patient, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.Repo.ExistsByEmailExcluding(ctx, in.Email, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, repo.ErrDuplicateEmail
	}

	p.Name = in.Name
	p.Email = in.Email
	p.Address = in.Address
	p.DateOfBirth = in.DateOfBirth
	p.RegisteredDate = in.RegisteredDate
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, err
	}

	_ = s.indexPatient(ctx, p)
	return p, nil
}

func (s *Service) DeletePatient(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.deleteIndexed(ctx, id)
	return nil
}

func (s *Service) GetPatient(ctx context.Context, id string) (*entity.Patient, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context) ([]*entity.Patient, error) {
	return s.Repo.List(ctx)
}

func (s *Service) indexPatient(ctx context.Context, p *entity.Patient) error {
	if s.ES == nil || s.ESPatientsIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":              p.ID,
		"name":            p.Name,
		"email":           p.Email,
		"address":         p.Address,
		"date_of_birth":   p.DateOfBirth.Format(time.DateOnly),
		"registered_date": p.RegisteredDate.Format(time.DateOnly),
		"updated_at":      p.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESPatientsIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("patient_id", p.ID).Warn("es index failed")
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		s.Logger.WithField("status", res.Status()).WithField("patient_id", p.ID).Warn("es index response error")
	}
	return nil
}

func (s *Service) deleteIndexed(ctx context.Context, id string) error {
	if s.ES == nil || s.ESPatientsIndex == "" {
		return nil
	}
	req := esapi.DeleteRequest{Index: s.ESPatientsIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("patient_id", id).Warn("es delete failed")
		return err
	}
	_ = res.Body.Close()
	return nil
}

// SearchPatients performs a simple multi_match search on name, email and address.
func (s *Service) SearchPatients(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESPatientsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"email^2", "name", "address"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESPatientsIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
