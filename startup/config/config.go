package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port           string
	BuildingDBHost string
	BuildingDBPort string
	JaegerAddress  string
	LogFilePath    string
	SecretKey      string
	SMTPHost       string
	SMTPPort       int
	SMTPEmail      string
	SMTPPassword   string
}

func NewConfig() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		smtpPort = 587
	}

	return &Config{
		Port:           port,
		BuildingDBHost: os.Getenv("BUILDING_DB_HOST"),
		BuildingDBPort: os.Getenv("BUILDING_DB_PORT"),
		JaegerAddress:  os.Getenv("JAEGER_ADDRESS"),
		LogFilePath:    os.Getenv("LOG_FILE_PATH"),
		SecretKey:      os.Getenv("SECRET_KEY"),
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPPort:       smtpPort,
		SMTPEmail:      os.Getenv("SMTP_AUTH_MAIL"),
		SMTPPassword:   os.Getenv("SMTP_AUTH_PASSWORD"),
	}
}
