package config

import (
	"os"
	"strconv"
)

const (
	StorageFile      = "file"
	StorageFirestore = "firestore"
)

type Config struct {
	LogLevel           string
	Addr               string
	Storage            string
	DataDir            string
	ProjectID          string
	DeviceID           string
	KMSKeyName         string
	ReminderSchedule   string
	ReminderWithinDays int
	SMTPHost           string
	SMTPPort           string
	SMTPUsername       string
	SMTPPassword       string
	SenderEmail        string
	ReminderEmail      string
}

func New() *Config {
	return &Config{
		LogLevel:           os.Getenv("LOGLEVEL"),
		Addr:               getEnv("ADDR", "127.0.0.1:8080"),
		Storage:            getStorage(os.Getenv("STORAGE")),
		DataDir:            getEnv("DATADIR", "data"),
		ProjectID:          os.Getenv("PROJECTID"),
		DeviceID:           getEnv("DEVICEID", "default"),
		KMSKeyName:         os.Getenv("KMSKEYNAME"),
		ReminderSchedule:   getEnv("REMINDERSCHEDULE", "@every 1h"),
		ReminderWithinDays: getInt("REMINDERWITHINDAYS", 3),
		SMTPHost:           os.Getenv("SMTPHOST"),
		SMTPPort:           getEnv("SMTPPORT", "587"),
		SMTPUsername:       os.Getenv("SMTPUSERNAME"),
		SMTPPassword:       os.Getenv("SMTPPASSWORD"),
		SenderEmail:        os.Getenv("SENDEREMAIL"),
		ReminderEmail:      os.Getenv("REMINDEREMAIL"),
	}
}

// EmailEnabled reports whether enough SMTP settings exist to send reminders.
func (c *Config) EmailEnabled() bool {
	return c.SMTPHost != "" && c.SenderEmail != "" && c.ReminderEmail != ""
}

func getStorage(s string) string {
	switch s {
	case StorageFirestore:
		return StorageFirestore
	default: // "file"
		return StorageFile
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return n
}
