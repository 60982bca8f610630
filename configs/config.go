package config

import (
	"os"
)

type AppConfig struct {
	Addr      string
	JWTSecret string
}

type DBConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Database string
	Params   string
}

type AfricaTalkingConfig struct {
	Username string
	APIKey   string
	SMSURL   string
	SenderID string
}

type EmailConfig struct {
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	SenderEmail        string
}

func LoadAppConfig() AppConfig {
	return AppConfig{
		Addr:      getEnvOrDefault("HTTP_ADDR", ":8080"),
		JWTSecret: getEnvOrDefault("JWT_SECRET", "change-me"),
	}
}

func LoadDBConfig() DBConfig {
	return DBConfig{
		User:     getEnvOrDefault("MYSQL_USER", "shop"),
		Password: getEnvOrDefault("MYSQL_PASSWORD", "shop"),
		Host:     getEnvOrDefault("MYSQL_HOST", "127.0.0.1"),
		Port:     getEnvOrDefault("MYSQL_PORT", "3306"),
		Database: getEnvOrDefault("MYSQL_DATABASE", "shop"),
		Params:   getEnvOrDefault("MYSQL_PARAMS", "charset=utf8mb4&parseTime=True&loc=UTC"),
	}
}

func LoadAfricaTalkingConfig() AfricaTalkingConfig {
	return AfricaTalkingConfig{
		Username: os.Getenv("AT_USERNAME"),
		APIKey:   os.Getenv("AT_API_KEY"),
		SMSURL:   getEnvOrDefault("AT_SMS_URL", "https://api.sandbox.africastalking.com/version1/messaging"), // Sandbox URL
		SenderID: getEnvOrDefault("AT_SENDER_ID", "AFRICASTKNG"), // Default sandbox sender ID
	}
}

func LoadEmailConfig() EmailConfig {
	return EmailConfig{
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		AWSRegion:          getEnvOrDefault("AWS_REGION", "us-east-1"),
		SenderEmail:        os.Getenv("AWS_SENDER_ADDRESS"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
