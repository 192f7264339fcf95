package cron

import (
	"ExerciseTracker/internal/job"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterJobs(t *testing.T) {
	auditJob := job.NewCountAuditJob(nil, 0)

	t.Run("daily descriptor", func(t *testing.T) {
		mgr := NewCronManager("@daily", auditJob)
		require.NoError(t, mgr.RegisterJobs())
		assert.Equal(t, 1, mgr.Entries())
	})

	t.Run("six field expression", func(t *testing.T) {
		mgr := NewCronManager("0 30 3 * * *", auditJob)
		require.NoError(t, mgr.RegisterJobs())
		assert.Equal(t, 1, mgr.Entries())
	})

	t.Run("empty schedule disables audit", func(t *testing.T) {
		mgr := NewCronManager("", auditJob)
		require.NoError(t, mgr.RegisterJobs())
		assert.Zero(t, mgr.Entries())
	})

	t.Run("invalid schedule", func(t *testing.T) {
		mgr := NewCronManager("every day", auditJob)
		assert.Error(t, mgr.RegisterJobs())
	})
}

func TestInitCronStartStop(t *testing.T) {
	mgr := NewCronManager("@daily", job.NewCountAuditJob(nil, 0))
	require.NoError(t, InitCron(mgr))
	mgr.Stop()
}
