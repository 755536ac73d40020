package application

import (
	"context"

	"github.com/linskybing/catalyst/internal/domain/audit"
	"github.com/linskybing/catalyst/internal/repository"
)

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
	}
}

func (s *AuditService) QueryAuditLogs(ctx context.Context, params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	return s.Repos.Audit.GetAuditLogs(ctx, params)
}

func (s *AuditService) CleanupOldLogs(ctx context.Context, days int) error {
	return s.Repos.Audit.DeleteOldAuditLogs(ctx, days)
}
