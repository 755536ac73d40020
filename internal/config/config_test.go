package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", "Firestore")
	t.Setenv("AUDIT_RETENTION_DAYS", "-3")
	t.Setenv("ALLOWED_ORIGINS", " http://localhost: , ,https://pm.example.com")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("SERVER_PORT", "9090")

	LoadConfig()

	assert.Equal(t, BackendFirestore, StoreBackend)
	assert.Equal(t, 30, AuditRetentionDays)
	assert.Equal(t, []string{"http://localhost:", "https://pm.example.com"}, AllowedOrigins)
	assert.True(t, AuthEnabled)
	assert.Equal(t, "9090", ServerPort)
}

func TestAPIKeysReadAtCallTime(t *testing.T) {
	t.Setenv("NVIDIA_API_KEY", "")
	assert.Empty(t, NvidiaAPIKey())

	t.Setenv("NVIDIA_API_KEY", "  nvapi-123 \n")
	assert.Equal(t, "nvapi-123", NvidiaAPIKey())

	t.Setenv("DEEPGRAM_API_KEY", "dg")
	t.Setenv("NOTION_API_KEY", "secret_x")
	assert.Equal(t, "dg", DeepgramAPIKey())
	assert.Equal(t, "secret_x", NotionAPIKey())
}
