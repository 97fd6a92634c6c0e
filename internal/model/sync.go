package model

// SyncProgress represents response for GET /etc/sync.
// Block heights stand in for difficulty; 100/100 means fully synced.
type SyncProgress struct {
	LocalDifficulty   uint64 `json:"localDifficulty"`
	NetworkDifficulty uint64 `json:"networkDifficulty"`
}
