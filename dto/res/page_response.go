package res

// PageResponse is the page-number pagination envelope. Next and Previous
// hold absolute URLs, or null on the last and first page respectively.
type PageResponse[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}
