package utils

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/linskybing/catalyst/internal/domain/audit"
	"github.com/linskybing/catalyst/internal/repository"
	"github.com/linskybing/catalyst/pkg/types"
)

const auditWriteTimeout = 5 * time.Second

var LogAuditWithConsole = func(ctx context.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repo repository.AuditRepo) {
	// Read request metadata before the request context is cancelled
	meta := RequestMetaFrom(ctx)

	go func() {
		bg, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()
		if err := LogAudit(bg, meta, action, resourceType, resourceID, oldData, newData, msg, repo); err != nil {
			log.Printf("[LogAudit] error: %v", err)
		}
	}()
}

var LogAudit = func(
	ctx context.Context,
	meta types.RequestMeta,
	action string,
	resourceType string,
	resourceID string,
	before any,
	after any,
	description string,
	repo repository.AuditRepo,
) error {
	var oldData, newData []byte
	var err error

	if before != nil {
		oldData, err = json.Marshal(before)
		if err != nil {
			log.Printf("Audit marshal oldData error: %v", err)
		}
	}
	if after != nil {
		newData, err = json.Marshal(after)
		if err != nil {
			log.Printf("Audit marshal newData error: %v", err)
		}
	}

	auditLog := &audit.AuditLog{
		Actor:        meta.Actor,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      oldData,
		NewData:      newData,
		IPAddress:    meta.IP,
		UserAgent:    meta.UserAgent,
		Description:  description,
	}

	return repo.CreateAuditLog(ctx, auditLog)
}
