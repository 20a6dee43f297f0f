package types

// InitResult holds the result of the 'init' command.
type InitResult struct {
	Format  string `json:"format"`
	Content string `json:"content"`
	Path    string `json:"path,omitempty"`
	Written bool   `json:"written"`
}

// VersionResult holds build information for the 'version' command.
type VersionResult struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
}
