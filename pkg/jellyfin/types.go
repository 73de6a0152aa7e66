package jellyfin

// User represents a Jellyfin user from GET /Users.
type User struct {
	ID   string `json:"Id"`
	Name string `json:"Name"`
}

// Item represents an audio item from the Items endpoint.
type Item struct {
	ID           string   `json:"Id"`
	Name         string   `json:"Name"`
	Album        string   `json:"Album"`
	AlbumArtist  string   `json:"AlbumArtist"`
	Artists      []string `json:"Artists"`
	RunTimeTicks int64    `json:"RunTimeTicks"` // Duration in 100-nanosecond ticks
	Type         string   `json:"Type"`
}

// ItemsResponse wraps paginated item results.
type ItemsResponse struct {
	Items            []Item `json:"Items"`
	TotalRecordCount int    `json:"TotalRecordCount"`
	StartIndex       int    `json:"StartIndex"`
}

// UserData holds per-user playback state for a single item.
type UserData struct {
	PlayCount  int  `json:"PlayCount"` // Cumulative, vendor-maintained counter
	IsFavorite bool `json:"IsFavorite"`
	Played     bool `json:"Played"`
}

// SystemInfo represents the response from GET /System/Info.
type SystemInfo struct {
	ServerName string `json:"ServerName"`
	Version    string `json:"Version"`
	ID         string `json:"Id"`
}
