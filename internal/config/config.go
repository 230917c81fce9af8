package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	AppPort      string
	SignatureKey string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	MailFrom     string

	FTPAddr     string
	FTPUser     string
	FTPPassword string
	FTPDir      string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBHost:       os.Getenv("DB_HOST"),
		DBPort:       os.Getenv("DB_PORT"),
		DBName:       os.Getenv("DB_NAME"),
		AppPort:      os.Getenv("APP_PORT"),
		SignatureKey: os.Getenv("SIGNATURE_KEY"),
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     os.Getenv("SMTP_PORT"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     os.Getenv("MAIL_FROM"),
		FTPAddr:      os.Getenv("FTP_ADDR"),
		FTPUser:      os.Getenv("FTP_USER"),
		FTPPassword:  os.Getenv("FTP_PASSWORD"),
		FTPDir:       os.Getenv("FTP_DIR"),
	}

	if cfg.DBUser == "" {
		log.Fatal("DB_USER is not set")
	}
	if cfg.DBHost == "" {
		log.Fatal("DB_HOST is not set")
	}
	if cfg.DBName == "" {
		log.Fatal("DB_NAME is not set")
	}
	if cfg.SignatureKey == "" {
		log.Fatal("SIGNATURE_KEY is not set")
	}
	if cfg.DBPort == "" {
		cfg.DBPort = "3306"
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "2300"
	}
	if cfg.SMTPPort == "" {
		cfg.SMTPPort = "587"
	}

	return cfg
}
