package dto

// Response is the envelope every endpoint answers with
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Details interface{} `json:"details,omitempty"`
	Meta    *Pagination `json:"meta,omitempty"`
}

// Pagination carries list paging metadata
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// CreatedResponse is the payload for successful resource creation
type CreatedResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// NewSuccessResponse wraps data in the success envelope
func NewSuccessResponse(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// NewSuccessResponseWithMeta wraps a list page with pagination metadata.
// total_pages is ceil(total/limit), so an empty table reports zero pages.
func NewSuccessResponseWithMeta(data interface{}, total int64, page, limit int) Response {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Response{
		Success: true,
		Data:    data,
		Meta: &Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}

// NewErrorResponse builds the failure envelope
func NewErrorResponse(message string) Response {
	return Response{Success: false, Message: message}
}

// NewErrorResponseWithDetails builds the failure envelope carrying field-level
// details, used for validation failures
func NewErrorResponseWithDetails(message string, details interface{}) Response {
	return Response{Success: false, Message: message, Details: details}
}
