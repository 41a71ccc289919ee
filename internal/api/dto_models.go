package api

// ErrorResponse is a generic structure for returning errors via API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// UploadResponse is returned by the storage upload endpoint.
type UploadResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// ConnectResponse is returned by the social-profiles connect placeholder.
type ConnectResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// ContactRequest is the body of POST /users.
type ContactRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

// ConnectRequest is the body of POST /social-profiles/connect.
type ConnectRequest struct {
	Platform string `json:"platform"`
}
