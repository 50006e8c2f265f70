package services

import (
	portsrepo "github.com/contalibre/contalibre/internal/core/ports/repositories"
	portssvc "github.com/contalibre/contalibre/internal/core/ports/services"
	"github.com/contalibre/contalibre/internal/platform/config"
)

// NewServiceContainer wires every application service from the repository
// provider and configuration.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	accountSvc := NewAccountService(repos.AccountRepo)
	journalSvc := NewJournalService(repos.JournalRepo, repos.AccountRepo)
	reportingSvc := NewReportingService(repos.ReportingRepo, repos.AccountRepo, repos.JournalRepo)
	importerSvc := NewImporterService(accountSvc, journalSvc)
	authSvc := NewAuthService(cfg)

	return &portssvc.ServiceContainer{
		Account:   accountSvc,
		Journal:   journalSvc,
		Reporting: reportingSvc,
		Importer:  importerSvc,
		Auth:      authSvc,
	}
}
