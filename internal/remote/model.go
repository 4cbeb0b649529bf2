package remote

// CreateRequest is the body of POST /api/datasets.
type CreateRequest struct {
	Collection  string `json:"collection"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Path        string `json:"path,omitempty"`
	Created     string `json:"created,omitempty"`
}

// SearchResult is one row of GET /api/search.
type SearchResult struct {
	Owner      string `json:"owner"`
	Collection string `json:"collection"`
	Name       string `json:"name"`
}

// Dataset is one row of GET /api/datasets.
type Dataset struct {
	Name        string `json:"name"`
	Collection  string `json:"collection,omitempty"`
	Description string `json:"description,omitempty"`
	Created     string `json:"created,omitempty"`
}
