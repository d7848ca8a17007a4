package res

type ErrorResponse struct {
	Status     string      `json:"status"`
	StatusCode int         `json:"status_code"`
	Error      interface{} `json:"error"`
}

// DetailResponse is the body of 404 and invalid-page responses.
type DetailResponse struct {
	Detail string `json:"detail"`
}
