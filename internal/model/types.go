package model

// Document is the root of one fetched W3U playlist tree. It is immutable
// after a successful load and owned by the navigator frame that loaded it.
type Document struct {
	Name     string    `json:"name"`
	Groups   []Group   `json:"groups,omitempty"`
	Stations []Station `json:"stations,omitempty"`
}

// Group is an internal node of the playlist tree. Groups nest recursively.
type Group struct {
	Name     string    `json:"name"`
	URL      string    `json:"url,omitempty"`
	Stations []Station `json:"stations,omitempty"`
	Groups   []Group   `json:"groups,omitempty"`
}

// Station is a leaf entry with a target URL.
type Station struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Config holds settings read from config.json, overlaid with CLI arguments.
type Config struct {
	StartURL string `json:"startUrl,omitempty"`
	CacheDir string `json:"cacheDir,omitempty"`
	Player   string `json:"player,omitempty"`
	NoColor  bool   `json:"noColor,omitempty"`
}

// Args are the CLI arguments parsed by go-arg.
type Args struct {
	URL       string `arg:"positional" help:"W3U document URL to open (default: built-in start list)"`
	CacheDir  string `arg:"--cache-dir" help:"Directory for cached documents. Defaults to the working directory."`
	CacheInfo bool   `arg:"--cache-info" help:"Print cached document slots and exit."`
	NoColor   bool   `arg:"--no-color" help:"Disable ANSI colors."`
}

// Description provides custom help text for go-arg.
func (Args) Description() string {
	return "Browse a W3U playlist tree from the terminal.\n" +
		"Selecting an entry descends into a nested list, starts the media player, or opens the web browser."
}
