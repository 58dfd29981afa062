package models

// MessageResponse is the JSON body returned by endpoints that have no
// resource to send back (delete, errors).
type MessageResponse struct {
	Message string `json:"message"`
}

// VersionResponse is the JSON body of the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
