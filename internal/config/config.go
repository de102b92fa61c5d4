package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// DefaultRecruitAPIURL is the recruitment service the dashboard is built against.
const DefaultRecruitAPIURL = "https://jsg008c4sk0csksc440ksss8.icfai-app.online/api"

type Config struct {
	Server     ServerConfig
	RecruitAPI RecruitAPIConfig
	Storage    StorageConfig
	Log        LogConfig
	Landing    LandingConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type RecruitAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type LogConfig struct {
	Level string
}

type LandingConfig struct {
	CallAIURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		RecruitAPI: RecruitAPIConfig{
			BaseURL: strings.TrimRight(getEnv("RECRUIT_API_URL", DefaultRecruitAPIURL), "/"),
			Timeout: getEnvAsDuration("API_TIMEOUT", "15s"),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Landing: LandingConfig{
			CallAIURL: getEnv("CALL_AI_URL", "https://classy-baklava-e54506.netlify.app/"),
		},
	}
}

// NewLogger builds the process logger. Unknown levels fall back to info.
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
