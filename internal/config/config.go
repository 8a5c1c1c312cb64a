package config

import (
	"os"
	"strconv"
)

// Config is built once in main and handed to every component. Nothing reads
// the environment after startup.
type Config struct {
	ServiceName string
	ServerPort  int
	Production  bool

	// StoreBackend selects the persistence layer: "json" or "postgres".
	StoreBackend string
	DataDir      string
	DatabaseURL  string

	// StorageBackend selects where uploads live: "local" or "supabase".
	StorageBackend string
	UploadDir      string
	SupabaseURL    string
	SupabaseKey    string
	SupabaseBucket string

	AdminUsername     string
	AdminPasswordHash string
	AdminPasswordB64  string

	JWTSecret []byte

	SMTPHost   string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	OrderEmail string

	// EnvFile is rewritten by the admin settings endpoints.
	EnvFile string
}

func Load() Config {
	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "printbaarn"),
		ServerPort:  EnvIntDefault("SERVER_PORT", 8080),
		Production:  os.Getenv("APP_ENV") == "production",

		StoreBackend: EnvDefault("STORE_BACKEND", "json"),
		DataDir:      EnvDefault("DATA_DIR", "data"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),

		StorageBackend: EnvDefault("STORAGE_BACKEND", "local"),
		UploadDir:      EnvDefault("UPLOAD_DIR", "public/uploads"),
		SupabaseURL:    os.Getenv("SUPABASE_URL"),
		SupabaseKey:    os.Getenv("SUPABASE_ANON_KEY"),
		SupabaseBucket: EnvDefault("SUPABASE_BUCKET", "images"),

		AdminUsername:     EnvDefault("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AdminPasswordB64:  os.Getenv("ADMIN_PASSWORD_HASH_BASE64"),

		JWTSecret: []byte(os.Getenv("JWT_SECRET")),

		SMTPHost:   EnvDefault("SMTP_HOST", "smtp.strato.com"),
		SMTPPort:   EnvIntDefault("SMTP_PORT", 465),
		SMTPUser:   os.Getenv("SMTP_USER"),
		SMTPPass:   os.Getenv("SMTP_PASS"),
		OrderEmail: os.Getenv("ORDER_EMAIL"),

		EnvFile: EnvDefault("ENV_FILE", ".env"),
	}
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
