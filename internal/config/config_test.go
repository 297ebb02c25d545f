package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	for _, k := range []string{"ADDR", "STORAGE", "DATADIR", "DEVICEID", "REMINDERSCHEDULE", "REMINDERWITHINDAYS", "SMTPHOST", "SMTPPORT"} {
		t.Setenv(k, "")
	}

	cfg := New()

	assert.Equal(t, "127.0.0.1:8080", cfg.Addr)
	assert.Equal(t, StorageFile, cfg.Storage)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "default", cfg.DeviceID)
	assert.Equal(t, "@every 1h", cfg.ReminderSchedule)
	assert.Equal(t, 3, cfg.ReminderWithinDays)
	assert.Equal(t, "587", cfg.SMTPPort)
	assert.False(t, cfg.EmailEnabled())
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("STORAGE", "firestore")
	t.Setenv("REMINDERWITHINDAYS", "7")
	t.Setenv("SMTPHOST", "smtp.example.com")
	t.Setenv("SENDEREMAIL", "books@example.com")
	t.Setenv("REMINDEREMAIL", "me@example.com")

	cfg := New()

	assert.Equal(t, StorageFirestore, cfg.Storage)
	assert.Equal(t, 7, cfg.ReminderWithinDays)
	assert.True(t, cfg.EmailEnabled())
}

func TestUnknownStorageFallsBackToFile(t *testing.T) {
	t.Setenv("STORAGE", "s3")
	assert.Equal(t, StorageFile, New().Storage)
}

func TestBadIntFallsBack(t *testing.T) {
	t.Setenv("REMINDERWITHINDAYS", "soon")
	assert.Equal(t, 3, New().ReminderWithinDays)
}
