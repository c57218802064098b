package dto

type ActivityItem struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Action      string    `json:"action"`
	RelatedID   *string   `json:"related_id,omitempty"`
	RelatedType string    `json:"related_type"`
	CreatedAt   string    `json:"created_at"`
	DisplayName *string   `json:"display_name,omitempty"`
	User        *UserItem `json:"user,omitempty"`
}

type ActivityPagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type ActivityListResponse struct {
	Success    bool               `json:"success"`
	Data       []ActivityItem     `json:"data"`
	Pagination ActivityPagination `json:"pagination"`
}

type CreateActivityRequest struct {
	UserID      string  `json:"user_id" binding:"required"`
	Action      string  `json:"action" binding:"required,max=500"`
	RelatedID   *string `json:"related_id"`
	RelatedType string  `json:"related_type" binding:"required,oneof=task project team"`
}
