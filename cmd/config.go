package cmd

// Config carries the process configuration loaded from the environment.
type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	RateAuditSchedule string
}
