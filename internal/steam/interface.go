package steam

// SteamClient defines the interface for interacting with the Steam Web API.
// This allows for mock implementations to be used in tests.
type SteamClient interface {
	GetPlayerSummaries(steamIDs []string) []PlayerSummary
}
