package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	patientapp "github.com/raidhealth/patient-platform/internal/application"
	"github.com/raidhealth/patient-platform/internal/domain/entity"
	repo "github.com/raidhealth/patient-platform/internal/domain/repository"
	"github.com/raidhealth/patient-platform/internal/infrastructure/billing"
	"github.com/raidhealth/patient-platform/pkg/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validation.Init()
	m.Run()
}

type memRepo struct {
	patients map[string]*entity.Patient
}

func newMemRepo() *memRepo { return &memRepo{patients: make(map[string]*entity.Patient)} }

func (f *memRepo) Create(_ context.Context, p *entity.Patient) error {
	for _, e := range f.patients {
		if e.Email == p.Email {
			return repo.ErrDuplicateEmail
		}
	}
	p.ID = uuid.NewString()
	cp := *p
	f.patients[p.ID] = &cp
	return nil
}

func (f *memRepo) GetByID(_ context.Context, id string) (*entity.Patient, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *memRepo) List(_ context.Context) ([]*entity.Patient, error) {
	out := make([]*entity.Patient, 0, len(f.patients))
	for _, p := range f.patients {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *memRepo) Update(_ context.Context, p *entity.Patient) error {
	if _, ok := f.patients[p.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *p
	f.patients[p.ID] = &cp
	return nil
}

func (f *memRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.patients[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.patients, id)
	return nil
}

func (f *memRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, p := range f.patients {
		if p.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *memRepo) ExistsByEmailExcluding(_ context.Context, email, id string) (bool, error) {
	for _, p := range f.patients {
		if p.Email == email && p.ID != id {
			return true, nil
		}
	}
	return false, nil
}

type stubBilling struct {
	calls int
	err   error
}

func (f *stubBilling) CreateAccount(context.Context, string, string, string) (*billing.Confirmation, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &billing.Confirmation{AccountID: uuid.NewString(), Status: "ACTIVE"}, nil
}

type stubPublisher struct{ count int }

func (f *stubPublisher) PatientCreated(context.Context, string, string, string) error {
	f.count++
	return nil
}

type handlerFixture struct {
	router  *gin.Engine
	repo    *memRepo
	billing *stubBilling
	events  *stubPublisher
}

func newFixture() *handlerFixture {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	r := newMemRepo()
	b := &stubBilling{}
	pub := &stubPublisher{}
	svc := patientapp.NewService(r, b, pub, logger, nil, "")
	h := NewPatientHandler(svc, logger)

	router := gin.New()
	router.GET("/patients", h.List)
	router.GET("/patients/search", h.Search)
	router.POST("/patients", h.Create)
	router.PUT("/patients/:id", h.Update)
	router.DELETE("/patients/:id", h.Delete)

	return &handlerFixture{router: router, repo: r, billing: b, events: pub}
}

func (f *handlerFixture) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func johnDoe() map[string]string {
	return map[string]string{
		"name":           "John Doe",
		"email":          "john.doe@example.com",
		"address":        "123 Main St",
		"dateOfBirth":    "1990-01-15",
		"registeredDate": "2024-11-28",
	}
}

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestCreatePatient_HTTP(t *testing.T) {
	f := newFixture()

	w := f.do(http.MethodPost, "/patients", johnDoe())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	env := decode(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, "patient created", env.Message)

	var got struct {
		ID             string `json:"id"`
		Name           string `json:"name"`
		Email          string `json:"email"`
		DateOfBirth    string `json:"dateOfBirth"`
		RegisteredDate string `json:"registeredDate"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "John Doe", got.Name)
	assert.Equal(t, "john.doe@example.com", got.Email)
	assert.Equal(t, "1990-01-15", got.DateOfBirth)
	assert.Equal(t, "2024-11-28", got.RegisteredDate)

	assert.Equal(t, 1, f.billing.calls)
	assert.Equal(t, 1, f.events.count)
}

func TestCreatePatient_HTTP_InvalidPayload(t *testing.T) {
	f := newFixture()

	cases := []struct {
		name  string
		mut   func(map[string]string)
		field string
	}{
		{"missing name", func(m map[string]string) { delete(m, "name") }, "name"},
		{"bad email", func(m map[string]string) { m["email"] = "not-an-email" }, "email"},
		{"bad date", func(m map[string]string) { m["dateOfBirth"] = "15-01-1990" }, "dateOfBirth"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := johnDoe()
			tc.mut(body)
			w := f.do(http.MethodPost, "/patients", body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			env := decode(t, w)
			assert.False(t, env.Success)
			var details map[string]string
			require.NoError(t, json.Unmarshal(env.Error, &details))
			assert.Contains(t, details, tc.field)
		})
	}

	assert.Empty(t, f.repo.patients, "rejected payloads must not be persisted")
	assert.Zero(t, f.billing.calls)
}

func TestCreatePatient_HTTP_DuplicateEmail(t *testing.T) {
	f := newFixture()

	w := f.do(http.MethodPost, "/patients", johnDoe())
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodPost, "/patients", johnDoe())
	require.Equal(t, http.StatusConflict, w.Code)
	env := decode(t, w)
	assert.Equal(t, "email already registered", env.Message)
	assert.Len(t, f.repo.patients, 1)
}

func TestCreatePatient_HTTP_BillingDown(t *testing.T) {
	f := newFixture()
	f.billing.err = billing.ErrUnavailable

	w := f.do(http.MethodPost, "/patients", johnDoe())
	require.Equal(t, http.StatusBadGateway, w.Code)

	env := decode(t, w)
	assert.Equal(t, "billing account provisioning failed", env.Message)
	assert.Len(t, f.repo.patients, 1, "record stays even when provisioning fails")
	assert.Zero(t, f.events.count)
}

func TestUpdatePatient_HTTP(t *testing.T) {
	f := newFixture()

	w := f.do(http.MethodPost, "/patients", johnDoe())
	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	body := johnDoe()
	body["name"] = "John D. Doe"
	w = f.do(http.MethodPut, "/patients/"+created.ID, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, 1, f.billing.calls, "updates must not re-provision billing")
	assert.Equal(t, 1, f.events.count)
	assert.Equal(t, "John D. Doe", f.repo.patients[created.ID].Name)
}

func TestUpdatePatient_HTTP_NotFound(t *testing.T) {
	f := newFixture()
	w := f.do(http.MethodPut, "/patients/"+uuid.NewString(), johnDoe())
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePatient_HTTP(t *testing.T) {
	f := newFixture()

	w := f.do(http.MethodPost, "/patients", johnDoe())
	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	w = f.do(http.MethodDelete, "/patients/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = f.do(http.MethodDelete, "/patients/"+created.ID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPatients_HTTP(t *testing.T) {
	f := newFixture()

	w := f.do(http.MethodGet, "/patients", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	var empty []map[string]any
	if len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, &empty))
	}
	assert.Empty(t, empty)

	second := johnDoe()
	second["email"] = "jane.smith@example.com"
	second["name"] = "Jane Smith"
	require.Equal(t, http.StatusOK, f.do(http.MethodPost, "/patients", johnDoe()).Code)
	require.Equal(t, http.StatusOK, f.do(http.MethodPost, "/patients", second).Code)

	w = f.do(http.MethodGet, "/patients", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &list))
	assert.Len(t, list, 2)
}

func TestSearchPatients_HTTP_MissingQuery(t *testing.T) {
	f := newFixture()
	w := f.do(http.MethodGet, "/patients/search", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
