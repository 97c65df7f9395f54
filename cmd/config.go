package cmd

// Config carries the runtime settings loaded from the environment.
type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	AppEnv          string
	AdminAPIToken   string
	StaleAfterHours int
	StaleScanCron   string
}

// IsDevelopment reports whether the app runs in development mode. Development
// mode switches the logger to console output and includes error detail in
// internal-error responses.
func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}
