package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	Steam         SteamConfig
	OpenDota      OpenDotaConfig
	Turso         TursoConfig
}

// SteamConfig configures the Steam Web API client.
type SteamConfig struct {
	APIKey  string
	BaseURL string
}

// OpenDotaConfig configures the OpenDota API client.
type OpenDotaConfig struct {
	BaseURL string
}

// TursoConfig configures the optional remote database. When PrimaryURL is
// empty the application runs against a local SQLite file.
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
