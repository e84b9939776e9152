package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WinnerPosterRequest mirrors the multipart form fields of the winner
// poster endpoint. The portrait file part travels separately.
type WinnerPosterRequest struct {
	Name        string `json:"name"`
	Place       string `json:"place"`
	Team        string `json:"team"`
	Competition string `json:"competition_name"`
}
