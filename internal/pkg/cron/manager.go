package cron

import (
	"ExerciseTracker/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine        *cron.Cron
	auditSchedule string
	countAuditJob *job.CountAuditJob
}

func NewCronManager(auditSchedule string, countAuditJob *job.CountAuditJob) *Manager {
	return &Manager{
		engine:        cron.New(cron.WithSeconds()),
		auditSchedule: auditSchedule,
		countAuditJob: countAuditJob,
	}
}

// RegisterJobs 注册定时任务，schedule 为空的任务跳过
func (s *Manager) RegisterJobs() error {
	if s.auditSchedule == "" {
		log.Info("Count audit job disabled")
		return nil
	}
	if _, err := s.engine.AddJob(s.auditSchedule, s.countAuditJob); err != nil {
		return err
	}
	return nil
}

// Entries 已注册的任务数
func (s *Manager) Entries() int {
	return len(s.engine.Entries())
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
