package initializers

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port               string
	APIBaseURL         string
	CognitoRegion      string
	CognitoClientID    string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	HTTPTimeout        time.Duration
	AllowedOrigins     []string
	ProductImageBucket string
	LocalAuthUsername  string
	LocalAuthPassHash  string
	JWTSecret          string
}

var Cfg Config

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func secondsEnv(key string, def int) time.Duration {
	n, err := strconv.Atoi(getenv(key, ""))
	if err != nil || n <= 0 {
		n = def
	}
	return time.Duration(n) * time.Second
}

// LoadConfig reads the portal configuration from the environment.
func LoadConfig() Config {
	return Config{
		Port:               getenv("PORT", "8080"),
		APIBaseURL:         strings.TrimRight(getenv("API_BASE_URL", "http://localhost:3000"), "/"),
		CognitoRegion:      getenv("COGNITO_REGION", "me-south-1"),
		CognitoClientID:    os.Getenv("COGNITO_CLIENT_ID"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		HTTPTimeout:        secondsEnv("HTTP_TIMEOUT_SECONDS", 15),
		AllowedOrigins:     splitCSV(getenv("ALLOWED_ORIGINS", "http://localhost:4200")),
		ProductImageBucket: os.Getenv("PRODUCT_IMAGE_BUCKET"),
		LocalAuthUsername:  os.Getenv("LOCAL_AUTH_USERNAME"),
		LocalAuthPassHash:  os.Getenv("LOCAL_AUTH_PASSWORD_HASH"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
	}
}
