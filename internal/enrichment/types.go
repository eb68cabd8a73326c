package enrichment

// DefaultHistoryLimit bounds how many recent matches are enriched per
// request. It also bounds the number of concurrent detail fetches.
const DefaultHistoryLimit = 20

// anonymousName is shown for participants without a public display name.
const anonymousName = "Unknown Player"

// EnrichedPlayer is one match participant annotated with identifier
// translation and local evaluation context. SteamID64 is empty for anonymous
// participants.
type EnrichedPlayer struct {
	SteamID32        int64  `json:"steam_id_32"`
	SteamID64        string `json:"steam_id_64,omitempty"`
	PersonaName      string `json:"personaname"`
	Avatar           string `json:"avatar,omitempty"`
	HeroID           int    `json:"hero_id"`
	IsRadiant        bool   `json:"is_radiant"`
	Win              bool   `json:"win"`
	Kills            int    `json:"kills"`
	Deaths           int    `json:"deaths"`
	Assists          int    `json:"assists"`
	NetWorth         int    `json:"net_worth"`
	PlayerSlot       int    `json:"player_slot"`
	Items            []int  `json:"items"`
	Backpack         []int  `json:"backpack"`
	AlreadyEvaluated bool   `json:"is_already_evaluated"`
}

// EnrichedMatch is a full match record whose participant list has been
// annotated for the requesting author. It is assembled per request and never
// persisted.
type EnrichedMatch struct {
	MatchID      int64            `json:"match_id"`
	RadiantWin   bool             `json:"radiant_win"`
	Duration     int              `json:"duration"`
	StartTime    int64            `json:"start_time"`
	RadiantScore int              `json:"radiant_score"`
	DireScore    int              `json:"dire_score"`
	Players      []EnrichedPlayer `json:"players"`
}
