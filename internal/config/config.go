package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendSQLite    = "sqlite"
	BackendPostgres  = "postgres"
	BackendFirestore = "firestore"
)

var (
	ServerPort   string
	StoreBackend string
	SQLitePath   string

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string

	FirebaseCredentials string
	FirebaseProjectID   string

	NvidiaBaseURL string
	NemotronModel string
	AgentModel    string
	PromptsFile   string

	DeepgramBaseURL string

	NotionParentPageID string

	JwtSecret   string
	Issuer      string
	AuthEnabled bool

	MinioEndpoint       string
	MinioAccessKey      string
	MinioSecretKey      string
	MinioUseSSL         bool
	MinioBucket         string
	AudioArchiveEnabled bool

	AuditRetentionDays int
	AuditCleanupSpec   string

	AllowedOrigins []string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ServerPort = getEnv("SERVER_PORT", "8080")
	StoreBackend = strings.ToLower(getEnv("STORE_BACKEND", BackendSQLite))
	SQLitePath = getEnv("SQLITE_PATH", "catalyst.db")

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "catalyst")

	FirebaseCredentials = getEnv("FIREBASE_CREDENTIALS", "firebase-credentials.json")
	FirebaseProjectID = getEnv("FIREBASE_PROJECT_ID", "")

	NvidiaBaseURL = getEnv("NVIDIA_BASE_URL", "https://integrate.api.nvidia.com/v1")
	NemotronModel = getEnv("NEMOTRON_MODEL", "nvidia/llama-3.3-nemotron-super-49b-v1.5")
	AgentModel = getEnv("AGENT_MODEL", "meta/llama-3.1-70b-instruct")
	PromptsFile = getEnv("PROMPTS_FILE", "")

	DeepgramBaseURL = getEnv("DEEPGRAM_BASE_URL", "https://api.deepgram.com")

	NotionParentPageID = getEnv("NOTION_PARENT_PAGE_ID", "")

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "catalyst")
	AuthEnabled, _ = strconv.ParseBool(getEnv("AUTH_ENABLED", "false"))

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "catalyst")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))
	AudioArchiveEnabled, _ = strconv.ParseBool(getEnv("AUDIO_ARCHIVE_ENABLED", "false"))

	AuditRetentionDays, err = strconv.Atoi(getEnv("AUDIT_RETENTION_DAYS", "30"))
	if err != nil || AuditRetentionDays <= 0 {
		AuditRetentionDays = 30
	}
	AuditCleanupSpec = getEnv("AUDIT_CLEANUP_SPEC", "@daily")

	AllowedOrigins = splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:,http://127.0.0.1:"))
}

// API keys are looked up on every call so a key added to the environment
// after startup takes effect without a restart.

func NvidiaAPIKey() string { return strings.TrimSpace(os.Getenv("NVIDIA_API_KEY")) }

func DeepgramAPIKey() string { return strings.TrimSpace(os.Getenv("DEEPGRAM_API_KEY")) }

func NotionAPIKey() string { return strings.TrimSpace(os.Getenv("NOTION_API_KEY")) }

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
