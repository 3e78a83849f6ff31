package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/raidhealth/patient-platform/internal/container"
	handlers "github.com/raidhealth/patient-platform/internal/interface/http"
	"github.com/raidhealth/patient-platform/internal/interface/middleware"
)

// PatientModule wires patient HTTP handlers into routes.
// GET    /patients
// GET    /patients/search
// POST   /patients
// PUT    /patients/:id
// DELETE /patients/:id
// Admission (token checks) happens at the api-gateway; this service only
// rate-limits writes.
type PatientModule struct {
	Handler *handlers.PatientHandler
}

func NewPatientModule(h *handlers.PatientHandler) *PatientModule {
	return &PatientModule{Handler: h}
}

func (m *PatientModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/patients", m.Handler.List)
	rg.GET("/patients/search", m.Handler.Search)
	rg.POST("/patients", writeLimiter, m.Handler.Create)
	rg.PUT("/patients/:id", writeLimiter, m.Handler.Update)
	rg.DELETE("/patients/:id", writeLimiter, m.Handler.Delete)
}
