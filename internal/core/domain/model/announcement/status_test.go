package announcement_test

import (
	"testing"

	"freight/internal/core/domain/model/announcement"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []announcement.Status{
		announcement.StatusPending,
		announcement.StatusActive,
		announcement.StatusCompleted,
		announcement.StatusCancelled,
	}
	for _, s := range valid {
		require.NoError(t, s.Validate(), s.String())
	}

	require.Error(t, announcement.StatusUnknown.Validate())
	require.Error(t, announcement.Status(99).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", announcement.StatusPending.String())
	assert.Equal(t, "active", announcement.StatusActive.String())
	assert.Equal(t, "completed", announcement.StatusCompleted.String())
	assert.Equal(t, "cancelled", announcement.StatusCancelled.String())
	assert.Equal(t, "unknown", announcement.Status(99).String())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, announcement.StatusPending.IsTerminal())
	assert.False(t, announcement.StatusActive.IsTerminal())
	assert.True(t, announcement.StatusCompleted.IsTerminal())
	assert.True(t, announcement.StatusCancelled.IsTerminal())
}

func TestStatus_Start(t *testing.T) {
	t.Run("pending_starts", func(t *testing.T) {
		next, err := announcement.StatusPending.Start()
		require.NoError(t, err)
		assert.Equal(t, announcement.StatusActive, next)
	})

	for _, s := range []announcement.Status{
		announcement.StatusActive,
		announcement.StatusCompleted,
		announcement.StatusCancelled,
		announcement.StatusUnknown,
	} {
		t.Run(s.String()+"_cannot_start", func(t *testing.T) {
			_, err := s.Start()
			require.Error(t, err)
		})
	}
}

func TestStatus_Complete(t *testing.T) {
	t.Run("active_completes", func(t *testing.T) {
		next, err := announcement.StatusActive.Complete()
		require.NoError(t, err)
		assert.Equal(t, announcement.StatusCompleted, next)
	})

	for _, s := range []announcement.Status{
		announcement.StatusPending,
		announcement.StatusCompleted,
		announcement.StatusCancelled,
	} {
		t.Run(s.String()+"_cannot_complete", func(t *testing.T) {
			_, err := s.Complete()
			require.Error(t, err)
		})
	}
}

func TestStatus_Cancel(t *testing.T) {
	for _, s := range []announcement.Status{
		announcement.StatusPending,
		announcement.StatusActive,
	} {
		t.Run(s.String()+"_cancels", func(t *testing.T) {
			next, err := s.Cancel()
			require.NoError(t, err)
			assert.Equal(t, announcement.StatusCancelled, next)
		})
	}

	for _, s := range []announcement.Status{
		announcement.StatusCompleted,
		announcement.StatusCancelled,
		announcement.StatusUnknown,
	} {
		t.Run(s.String()+"_cannot_cancel", func(t *testing.T) {
			_, err := s.Cancel()
			require.Error(t, err)
		})
	}
}
