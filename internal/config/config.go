package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbParams       string
	TrustedProxies []string

	JwtSecret string

	AuthServiceURL     string
	TeamServiceURL     string
	ProjectServiceURL  string
	TaskServiceURL     string
	ActivityServiceURL string
	MailServiceURL     string

	RemoteTimeout time.Duration
	MailTimeout   time.Duration

	ReminderHour     int
	ReminderMinute   int
	ReminderTimezone string

	ActivityRetentionDays int
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		DbHost:         getEnv("MYSQL_HOST", "db"),
		DbPort:         getEnv("MYSQL_PORT", "3306"),
		DbUser:         getEnv("MYSQL_USER", "pmapp"),
		DbPassword:     getEnv("MYSQL_PASSWORD", "pmapp"),
		DbName:         getEnv("MYSQL_DATABASE", "pmapp"),
		DbParams:       getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		TrustedProxies: parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),

		JwtSecret: getEnv("JWT_SECRET", "dev-secret"),

		AuthServiceURL:     getEnv("AUTH_SERVICE_URL", "http://auth-service:5001/api/auth"),
		TeamServiceURL:     getEnv("TEAM_SERVICE_URL", "http://team-service:5002/api/teams"),
		ProjectServiceURL:  getEnv("PROJECT_SERVICE_URL", "http://project-service:5003/api/projects"),
		TaskServiceURL:     getEnv("TASK_SERVICE_URL", "http://task-service:5004/api/tasks"),
		ActivityServiceURL: getEnv("ACTIVITY_SERVICE_URL", "http://activity-service:5005/api/activities"),
		MailServiceURL:     getEnv("MAIL_SERVICE_URL", "http://mail-service:5006/api/mail"),

		RemoteTimeout: getEnvDuration("REMOTE_TIMEOUT", 5*time.Second),
		MailTimeout:   getEnvDuration("MAIL_TIMEOUT", 20*time.Second),

		ReminderHour:     getEnvInt("REMINDER_HOUR", 8),
		ReminderMinute:   getEnvInt("REMINDER_MINUTE", 0),
		ReminderTimezone: getEnv("REMINDER_TIMEZONE", "Asia/Ho_Chi_Minh"),

		ActivityRetentionDays: getEnvInt("ACTIVITY_RETENTION_DAYS", 90),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
