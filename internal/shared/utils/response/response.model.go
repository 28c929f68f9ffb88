package response

type StandardApiResponse struct {
	Status     string      `json:"status"`      // "success" or "error"
	StatusCode int         `json:"status_code"` // mirrors the HTTP status
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Errors     interface{} `json:"errors,omitempty"` // validation or error details
}

// PaginatedData wraps list payloads that support paging
type PaginatedData struct {
	Items      interface{} `json:"items"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	Total      int64       `json:"total"`
	TotalPages int         `json:"total_pages"`
}

// NewPaginatedData computes the page count for total items split by limit
func NewPaginatedData(items interface{}, page, limit int, total int64) PaginatedData {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return PaginatedData{Items: items, Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}
