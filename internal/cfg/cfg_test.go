package cfg

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/garisonmike/alx-backend-graphql-crm/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("POSTGRES_USER", "crm")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "crm")
	t.Setenv("KAFKA_BROKERS", "localhost:9092")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load(logger.NewSlogLogger())
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Http.Port)
	assert.Equal(t, "localhost", cfg.Db.Host)
	assert.Equal(t, "crm.orders", cfg.Kafka.Topic)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "http://localhost:8000/graphql", cfg.Api.BaseURL)
	assert.Equal(t, "*/5 * * * *", cfg.Jobs.HeartbeatSchedule)
	assert.Equal(t, "0 */12 * * *", cfg.Jobs.LowStockSchedule)
	assert.Equal(t, "0 6 * * 1", cfg.Jobs.ReportSchedule)
	assert.Equal(t, "0 8 * * *", cfg.Jobs.RemindersSchedule)
	assert.Equal(t, 7*24*time.Hour, cfg.Jobs.ReminderWindow)
}

func TestLoadMissingPostgresUser(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("POSTGRES_USER", "")

	_, err := Load(logger.NewSlogLogger())
	assert.Error(t, err)
}

func TestLoadMissingKafkaBrokers(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("KAFKA_BROKERS", "")

	_, err := Load(logger.NewSlogLogger())
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("JOBS_LOG_DIR", "/var/log/crm")
	t.Setenv("REMINDER_WINDOW", "48h")

	cfg, err := Load(logger.NewSlogLogger())
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Http.Port)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 48*time.Hour, cfg.Jobs.ReminderWindow)
	assert.Equal(t, filepath.Join("/var/log/crm", "x.txt"), cfg.Jobs.LogFile("x.txt"))
}

func TestLoadInvalidDuration(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CRM_API_TIMEOUT", "not-a-duration")

	_, err := Load(logger.NewSlogLogger())
	assert.Error(t, err)
}
