package steam

// MaxBatchSize is the largest number of steam ids the provider accepts in a
// single summaries call. Callers must split larger sets themselves.
const MaxBatchSize = 100

// PlayerSummary is a profile snapshot from the Steam Web API.
type PlayerSummary struct {
	SteamID     string
	PersonaName string
	Avatar      string
}

// summariesResponse defines the structure for the JSON envelope returned by
// the GetPlayerSummaries endpoint.
type summariesResponse struct {
	Response struct {
		Players []playerSummaryResponse `json:"players"`
	} `json:"response"`
}

type playerSummaryResponse struct {
	SteamID     string `json:"steamid"`
	PersonaName string `json:"personaname"`
	AvatarFull  string `json:"avatarfull"`
}
