package dto

type SaveEventRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Place       string   `json:"place" binding:"required"`
	CoverURL    string   `json:"cover_url"`
	StartDate   string   `json:"start_date" binding:"required"`
	StartTime   string   `json:"start_time" binding:"required"`
	EndDate     string   `json:"end_date" binding:"required"`
	EndTime     string   `json:"end_time" binding:"required"`
	Capacity    *int     `json:"capacity"`
	CategoryIDs []string `json:"category_ids" binding:"required"`
}

type CheckInRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type RateRequest struct {
	Score int `json:"score" binding:"required"`
}

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type ReportRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type PrefsRequest struct {
	HoursBefore    int    `json:"hours_before" binding:"required,gt=0"`
	Enabled        *bool  `json:"enabled" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
