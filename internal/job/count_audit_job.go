package job

import (
	"ExerciseTracker/internal/pkg/logger"
	"ExerciseTracker/internal/pkg/mongo"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// CountAuditJob 巡检 count 与 log 长度不一致的用户，只记录不修复
type CountAuditJob struct {
	recordRepo mongo.UserRecordRepo
	timeout    time.Duration
}

func NewCountAuditJob(recordRepo mongo.UserRecordRepo, timeout time.Duration) *CountAuditJob {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &CountAuditJob{
		recordRepo: recordRepo,
		timeout:    timeout,
	}
}

func (s *CountAuditJob) Run() {
	traceID := "job-count-audit-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.Audit(ctx); err != nil {
		log.ErrorContext(ctx, "CountAuditJob failed", "err", err)
	}
}

// Audit 返回不一致的文档数
func (s *CountAuditJob) Audit(ctx context.Context) (int, error) {
	drifts, err := s.recordRepo.FindCountDrift(ctx)
	if err != nil {
		return 0, err
	}

	for _, d := range drifts {
		log.WarnContext(ctx, "exercise count drift",
			"user_id", d.ID.Hex(),
			"username", d.Username,
			"count", d.Count,
			"log_size", d.LogSize,
		)
	}

	log.InfoContext(ctx, "CountAuditJob finished", "drift_count", len(drifts))
	return len(drifts), nil
}
