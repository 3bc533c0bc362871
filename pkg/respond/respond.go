package respond

import "time"

// Response is the envelope a future transport would carry. It shapes data
// only; there is no wire format behind it.
type Response[T any] struct {
	Data       T         `json:"data"`
	StatusCode int       `json:"status_code"`
	Success    bool      `json:"success"`
	Message    string    `json:"message,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

func Success[T any](data T, code int) Response[T] {
	return Response[T]{
		Data:       data,
		StatusCode: code,
		Success:    true,
		Timestamp:  time.Now(),
	}
}

func Error(code int, message string) Response[struct{}] {
	return Response[struct{}]{
		StatusCode: code,
		Message:    message,
		Timestamp:  time.Now(),
	}
}

// PageResponse is the paginated variant of the envelope.
type PageResponse[T any] struct {
	Response[[]T]
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Page wraps one page of items. TotalPages = ceil(total / pageSize).
func Page[T any](items []T, page, pageSize, total int, code int) PageResponse[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return PageResponse[T]{
		Response:   Success(items, code),
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
