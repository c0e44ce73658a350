package response

// DocumentResponse carries the download URL of a generated PDF.
type DocumentResponse struct {
	URL string `json:"url"`
}
