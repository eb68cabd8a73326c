package opendota

// MatchSummary is one row of a player's recent match listing, in provider
// order (most recent first).
type MatchSummary struct {
	MatchID    int64
	PlayerSlot int
	RadiantWin bool
	Duration   int
	StartTime  int64
	HeroID     int
}

// MatchDetails is the full remote record for one match. It is immutable once
// returned and never persisted.
type MatchDetails struct {
	MatchID      int64
	RadiantWin   bool
	Duration     int
	StartTime    int64
	RadiantScore int
	DireScore    int
	Players      []MatchPlayer
}

// MatchPlayer is one participant as reported by the provider. AccountID is in
// the 32-bit space; anonymous players carry the unknown-account sentinel.
type MatchPlayer struct {
	AccountID   int64
	PersonaName string
	Avatar      string
	HeroID      int
	IsRadiant   bool
	Win         int
	Lose        int
	Kills       int
	Deaths      int
	Assists     int
	NetWorth    int
	PlayerSlot  int
	Items       []int
	Backpack    []int
}

// matchSummaryResponse defines the structure of one entry in the JSON
// response from the player matches endpoint.
type matchSummaryResponse struct {
	MatchID    int64 `json:"match_id"`
	PlayerSlot int   `json:"player_slot"`
	RadiantWin bool  `json:"radiant_win"`
	Duration   int   `json:"duration"`
	StartTime  int64 `json:"start_time"`
	HeroID     int   `json:"hero_id"`
}

// matchDetailsResponse defines the structure for the JSON response from the
// match details endpoint. Players being absent entirely (as opposed to empty)
// marks the payload as unusable.
type matchDetailsResponse struct {
	MatchID      int64                 `json:"match_id"`
	RadiantWin   bool                  `json:"radiant_win"`
	Duration     int                   `json:"duration"`
	StartTime    int64                 `json:"start_time"`
	RadiantScore int                   `json:"radiant_score"`
	DireScore    int                   `json:"dire_score"`
	Players      []matchPlayerResponse `json:"players"`
}

type matchPlayerResponse struct {
	AccountID   int64  `json:"account_id"`
	PersonaName string `json:"personaname"`
	AvatarFull  string `json:"avatarfull"`
	HeroID      int    `json:"hero_id"`
	IsRadiant   bool   `json:"isRadiant"`
	Win         int    `json:"win"`
	Lose        int    `json:"lose"`
	Kills       int    `json:"kills"`
	Deaths      int    `json:"deaths"`
	Assists     int    `json:"assists"`
	NetWorth    int    `json:"net_worth"`
	PlayerSlot  int    `json:"player_slot"`
	Item0       int    `json:"item_0"`
	Item1       int    `json:"item_1"`
	Item2       int    `json:"item_2"`
	Item3       int    `json:"item_3"`
	Item4       int    `json:"item_4"`
	Item5       int    `json:"item_5"`
	Backpack0   int    `json:"backpack_0"`
	Backpack1   int    `json:"backpack_1"`
	Backpack2   int    `json:"backpack_2"`
}
