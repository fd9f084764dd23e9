package dto

import "time"

type CreateListRequest struct {
	Name    string  `json:"name" binding:"required,min=1,max=120"`
	DueDate DueDate `json:"due_date"` // optional
	Status  string  `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
}

type UpdateListRequest struct {
	Name    *string  `json:"name" binding:"omitempty,min=1,max=120"`
	DueDate *DueDate `json:"due_date"`
	Status  *string  `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
}

type ListResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	DueDate   *time.Time `json:"due_date"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type ListListsResponse struct {
	Items   []ListResponse `json:"items"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
	Total   int64          `json:"total"`
}
