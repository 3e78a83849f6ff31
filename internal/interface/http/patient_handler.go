package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	patientapp "github.com/raidhealth/patient-platform/internal/application"
	"github.com/raidhealth/patient-platform/internal/domain/entity"
	repo "github.com/raidhealth/patient-platform/internal/domain/repository"
	"github.com/raidhealth/patient-platform/internal/infrastructure/billing"
	"github.com/raidhealth/patient-platform/pkg/response"
	"github.com/raidhealth/patient-platform/pkg/validation"
)

type PatientHandler struct {
	Svc    *patientapp.Service
	Logger *logrus.Logger
}

func NewPatientHandler(svc *patientapp.Service, logger *logrus.Logger) *PatientHandler {
	return &PatientHandler{Svc: svc, Logger: logger}
}

type patientRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Address        string `json:"address" binding:"required"`
	DateOfBirth    string `json:"dateOfBirth" binding:"required,dateonly"`
	RegisteredDate string `json:"registeredDate" binding:"required,dateonly"`
}

type patientResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	DateOfBirth    string `json:"dateOfBirth"`
	RegisteredDate string `json:"registeredDate"`
}

func toResponse(p *entity.Patient) patientResponse {
	return patientResponse{
		ID:             p.ID,
		Name:           p.Name,
		Email:          p.Email,
		Address:        p.Address,
		DateOfBirth:    p.DateOfBirth.Format(time.DateOnly),
		RegisteredDate: p.RegisteredDate.Format(time.DateOnly),
	}
}

// toInput converts a bound request into service input. Dates were already
// checked by the dateonly binding, so parse errors cannot occur here.
func (r *patientRequest) toInput() patientapp.PatientInput {
	dob, _ := time.Parse(time.DateOnly, r.DateOfBirth)
	reg, _ := time.Parse(time.DateOnly, r.RegisteredDate)
	return patientapp.PatientInput{
		Name:           r.Name,
		Email:          r.Email,
		Address:        r.Address,
		DateOfBirth:    dob,
		RegisteredDate: reg,
	}
}

func (h *PatientHandler) List(c *gin.Context) {
	patients, err := h.Svc.ListPatients(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list patients failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to list patients", nil)
		return
	}
	out := make([]patientResponse, 0, len(patients))
	for _, p := range patients {
		out = append(out, toResponse(p))
	}
	response.Success(c, http.StatusOK, out, "patients", map[string]any{"count": len(out)})
}

func (h *PatientHandler) Create(c *gin.Context) {
	var req patientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.CreatePatient(c.Request.Context(), req.toInput())
	if err != nil {
		h.writeError(c, err, "failed to create patient")
		return
	}
	response.Success(c, http.StatusOK, toResponse(p), "patient created", nil)
}

func (h *PatientHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req patientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.UpdatePatient(c.Request.Context(), id, req.toInput())
	if err != nil {
		h.writeError(c, err, "failed to update patient")
		return
	}
	response.Success(c, http.StatusOK, toResponse(p), "patient updated", nil)
}

func (h *PatientHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.DeletePatient(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "failed to delete patient")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PatientHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", map[string]string{"q": "is required"})
		return
	}
	hits, err := h.Svc.SearchPatients(c.Request.Context(), q, 10)
	if err != nil {
		h.Logger.WithError(err).Error("patient search failed")
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}

func (h *PatientHandler) writeError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, repo.ErrDuplicateEmail):
		response.Error[any](c, http.StatusConflict, "email already registered", nil)
	case errors.Is(err, repo.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, "patient not found", nil)
	case errors.Is(err, billing.ErrUnavailable), errors.Is(err, billing.ErrRejected):
		response.Error[any](c, http.StatusBadGateway, "billing account provisioning failed", err.Error())
	default:
		h.Logger.WithError(err).Error(msg)
		response.Error[any](c, http.StatusInternalServerError, msg, nil)
	}
}
