package handlers

import "net/http"

// Build metadata, set via -ldflags at release time.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// VersionResponse reports build metadata.
type VersionResponse struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
}

// GetVersion handles the /version endpoint.
func GetVersion(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, VersionResponse{Version: Version, GitCommit: GitCommit})
}
