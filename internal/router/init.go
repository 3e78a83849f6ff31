package router

import (
	patientapp "github.com/raidhealth/patient-platform/internal/application"
	"github.com/raidhealth/patient-platform/internal/container"
	repopatient "github.com/raidhealth/patient-platform/internal/domain/repository"
	pginfra "github.com/raidhealth/patient-platform/internal/infrastructure/postgres"
	handlers "github.com/raidhealth/patient-platform/internal/interface/http"
	"github.com/raidhealth/patient-platform/internal/router/modules"
)

type PatientModuleDeps struct {
	Repo    repopatient.PatientRepository
	Service *patientapp.Service
	Handler *handlers.PatientHandler
}

func buildPatientDeps() PatientModuleDeps {
	repo := pginfra.NewPatientRepository(container.GetPGPool())

	service := patientapp.NewService(
		repo,
		container.GetBilling(),
		container.GetEventPub(),
		container.GetLogger(),
		container.GetES(),
		container.GetConfig().ESPatientsIndex,
	)

	handler := handlers.NewPatientHandler(service, container.GetLogger())

	return PatientModuleDeps{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup.
func InitModules(r *Registry) {
	patientDeps := buildPatientDeps()
	r.Add(modules.NewPatientModule(patientDeps.Handler))
	r.Add(modules.NewHealthModule())
}
