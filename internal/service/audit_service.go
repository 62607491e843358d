package service

import (
	"github.com/lumenpay/admin-gateway/internal/model"
	"github.com/lumenpay/admin-gateway/internal/repository"
)

// AuditService reads the local mutation trail. It is not cached: the data
// is local and the list must reflect the mutation that just happened.
type AuditService struct {
	repo *repository.AuditRepository
}

func NewAuditService(repo *repository.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

func (s *AuditService) List(resource string, page, size int) ([]model.AuditEntry, int64, error) {
	if resource != "" {
		return s.repo.ListByResource(resource, page, size)
	}
	return s.repo.List(page, size)
}
