package cron

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

const cleanupTimeout = 5 * time.Minute

// AuditCleaner deletes audit logs older than the given number of days.
type AuditCleaner interface {
	CleanupOldLogs(ctx context.Context, days int) error
}

// StartCleanupTask runs the audit log cleanup once in the background and then
// on schedule (standard cron syntax or descriptors such as @daily). Stop the
// returned scheduler on shutdown.
func StartCleanupTask(schedule string, retentionDays int, cleaner AuditCleaner) (*cron.Cron, error) {
	job := func() {
		ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
		defer cancel()
		if err := cleaner.CleanupOldLogs(ctx, retentionDays); err != nil {
			log.Printf("Failed to cleanup old audit logs: %v", err)
			return
		}
		log.Println("Audit log cleanup completed successfully")
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, job); err != nil {
		return nil, err
	}

	log.Printf("Starting background cleanup task (retention: %d days, cron %q)", retentionDays, schedule)
	go job()
	c.Start()
	return c, nil
}
