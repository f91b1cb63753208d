package cmd

import "time"

// Config carries all environment-driven settings for the application.
type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	RabbitMQURL          string
	NotificationExchange string
	MaxPendingAge        time.Duration
}
