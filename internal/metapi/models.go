package metapi

// objectListResponse is the catalog returned by GET /objects.
type objectListResponse struct {
	Total     int   `json:"total"`
	ObjectIDs []int `json:"objectIDs"`
}

// ObjectRecord carries the subset of a Met object detail payload that the
// application persists.
type ObjectRecord struct {
	ObjectID          int    `json:"objectID"`
	Title             string `json:"title"`
	ArtistDisplayName string `json:"artistDisplayName"`
	ObjectDate        string `json:"objectDate"`
	Medium            string `json:"medium"`
	Repository        string `json:"repository"`
	PrimaryImage      string `json:"primaryImage"`
	ObjectURL         string `json:"objectURL"`
}
