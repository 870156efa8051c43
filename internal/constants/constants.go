package constants

// Centralized constants for env keys, routes, JSON keys and messages.
const (
	// Environment variable keys
	EnvConfigPath = "CDM_CONFIG"
	EnvDBPath     = "CDM_DB"
	EnvGinMode    = "GIN_MODE"

	// Defaults
	DefaultConfigPath = "./cdm_config.json"
	DefaultDBPath     = "./data/cdm.db"
)

// Routes used by the backend router
const (
	RouteAPIPrefix     = "/api"
	RouteVersion       = "/version"
	RouteCards         = "/cards"
	RoutePublicMatches = "/public-matches"
	RouteLeaderboard   = "/leaderboard"
	RoutePlayerStats   = "/player-stats"
	RouteMatches       = "/matches"
	RouteMatchesJoin   = "/matches/join"
	RouteMatchByCode   = "/matches/:matchCode"
	RouteMatchStart    = "/matches/:matchCode/start"
	RouteMatchTurn     = "/matches/:matchCode/turn"
	RouteMatchLeave    = "/matches/:matchCode/leave"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest = "Invalid request"
	ErrInvalidMatchID = "Invalid match code"
	ErrMatchNotFound  = "Match not found"

	ErrFailedFetchCards       = "Failed to fetch cards"
	ErrFailedFetchMatches     = "Failed to fetch matches"
	ErrFailedEncodeMatches    = "Failed to encode matches"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrFailedEncodeMatch      = "Failed to encode match"
	ErrFailedFetchStats       = "Failed to fetch stats"
	ErrPlayerUUIDRequired     = "player_uuid is required"

	ErrFailedCreateMatch           = "Failed to create match"
	ErrMatchNameExceeds            = "Match name exceeds 32 characters"
	ErrMatchFull                   = "Match is full"
	ErrNotEnoughPlayers            = "Not enough players to start the match"
	ErrMatchAlreadyStarted         = "Match is already started"
	ErrFailedUpdateMatch           = "Failed to update match"
	ErrFailedRemovePlayer          = "Failed to remove player"
	ErrPlayerNotInThisMatch        = "Player not in this match"
	ErrCannotLeaveAfterMatchStart  = "Cannot leave after the match has started"
	ErrDeckSizeInvalid             = "Deck must contain exactly 10 cards"
	ErrDeckTooManyCopies           = "Deck may contain at most 3 copies of a card"
	ErrDeckUnknownCard             = "Deck contains a card not present in the catalog"
	ErrFailedStoreTurn             = "Failed to store turn"
	ErrMatchNotInProgress          = "Match is not in progress"
	ErrSelectionsLockedResolving   = "Selections are locked; resolving current turn"
	ErrAlreadySelectedThisTurn     = "Active card already selected this turn"
	ErrInvalidSelection            = "Invalid card or power selection"
	ErrMatchAlreadyFinished        = "Match is already finished"
)

// Logging field names
const (
	LogFieldMatchID   = "match_id"
	LogFieldJoinCode  = "join_code"
	LogFieldPlayer    = "player_uuid"
	LogFieldTurn      = "turn"
	LogFieldAddr      = "addr"
	LogFieldConfig    = "config_path"
	LogFieldCardCount = "card_count"
)
