package cron

import (
	"encoding/json"
	"log"
	"time"

	"github.com/marinescu97/classroom-api/model"
	"gorm.io/datatypes"
)

// RetentionDays is how long soft-deleted rows are kept before the purge job
// removes them for good.
const RetentionDays = 30

// PurgeSoftDeleted hard-deletes rows that were soft-deleted more than
// RetentionDays ago. Join rows are already removed when a link is cleared,
// so only the entity tables need purging.
func (m *CronManager) PurgeSoftDeleted() {
	jobLog := m.logJobStart("purge_soft_deleted")

	cutoff := time.Now().AddDate(0, 0, -RetentionDays)
	targets := []interface{}{
		&model.Assignment{},
		&model.Address{},
		&model.Student{},
		&model.Course{},
	}

	var purged int64
	for _, target := range targets {
		result := m.db.Unscoped().
			Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
			Delete(target)
		if result.Error != nil {
			m.logJobEnd(jobLog, "failed", result.Error, purged)
			return
		}
		purged += result.RowsAffected
	}

	// Old job logs go too, soft-deleted or not.
	result := m.db.Unscoped().
		Where("created_at < ?", cutoff).
		Delete(&model.CronJobLog{})
	if result.Error != nil {
		m.logJobEnd(jobLog, "failed", result.Error, purged)
		return
	}
	purged += result.RowsAffected

	m.logJobEnd(jobLog, "completed", nil, purged)
}

func (m *CronManager) logJobStart(name string) *model.CronJobLog {
	jobLog := &model.CronJobLog{
		JobName:   name,
		Status:    "started",
		StartedAt: time.Now(),
	}
	if err := m.db.Create(jobLog).Error; err != nil {
		log.Printf("cron: failed to record start of %s: %v", name, err)
	}
	return jobLog
}

func (m *CronManager) logJobEnd(jobLog *model.CronJobLog, status string, jobErr error, purged int64) {
	now := time.Now()
	jobLog.Status = status
	jobLog.CompletedAt = &now
	jobLog.Duration = int(now.Sub(jobLog.StartedAt).Milliseconds())
	if jobErr != nil {
		jobLog.ErrorMsg = jobErr.Error()
	}
	if meta, err := json.Marshal(map[string]int64{"purged_rows": purged}); err == nil {
		jobLog.Metadata = datatypes.JSON(meta)
	}

	if err := m.db.Save(jobLog).Error; err != nil {
		log.Printf("cron: failed to record result of %s: %v", jobLog.JobName, err)
	}
}
