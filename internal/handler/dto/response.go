package dto

import (
	"time"

	"github.com/eventify-app/backend/internal/domain"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EventResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Place       string             `json:"place"`
	CoverURL    string             `json:"cover_url,omitempty"`
	StartDate   string             `json:"start_date"`
	StartTime   string             `json:"start_time"`
	EndDate     string             `json:"end_date"`
	EndTime     string             `json:"end_time"`
	Capacity    *int               `json:"capacity"`
	CreatorID   string             `json:"creator_id"`
	Categories  []CategoryResponse `json:"categories"`
	IsActive    bool               `json:"is_active"`
	CreatedAt   string             `json:"created_at"`
}

type EventDetailsResponse struct {
	Event             EventResponse `json:"event"`
	ParticipantsCount int           `json:"participants_count"`
	IsEnrolled        bool          `json:"is_enrolled"`
	Status            string        `json:"status"`
}

type ProfileEventsResponse struct {
	Created  []EventDetailsResponse `json:"created"`
	Enrolled []EventDetailsResponse `json:"enrolled"`
}

type EnrollmentResponse struct {
	ID         string `json:"id"`
	EventID    string `json:"event_id"`
	UserID     string `json:"user_id"`
	Attended   bool   `json:"attended"`
	EnrolledAt string `json:"enrolled_at"`
}

type RatingResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	UserID    string `json:"user_id"`
	Score     int    `json:"score"`
	CreatedAt string `json:"created_at"`
}

type CommentResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	AuthorID  string `json:"author_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ReportResponse struct {
	ID        string `json:"id"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

func ToEventResponse(e *domain.Event) EventResponse {
	categories := make([]CategoryResponse, 0, len(e.Categories))
	for i := range e.Categories {
		categories = append(categories, ToCategoryResponse(&e.Categories[i]))
	}

	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Place:       e.Place,
		CoverURL:    e.CoverURL,
		StartDate:   e.StartDate.Format(dateLayout),
		StartTime:   e.StartTime.Format(timeLayout),
		EndDate:     e.EndDate.Format(dateLayout),
		EndTime:     e.EndTime.Format(timeLayout),
		Capacity:    e.Capacity,
		CreatorID:   e.CreatorID,
		Categories:  categories,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	return EventDetailsResponse{
		Event:             ToEventResponse(&d.Event),
		ParticipantsCount: d.ParticipantsCount,
		IsEnrolled:        d.IsEnrolled,
		Status:            string(d.Status),
	}
}

func ToEventDetailsList(details []*domain.EventDetails) []EventDetailsResponse {
	resp := make([]EventDetailsResponse, 0, len(details))
	for _, d := range details {
		resp = append(resp, ToEventDetailsResponse(d))
	}
	return resp
}

func ToEnrollmentResponse(e *domain.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:         e.ID,
		EventID:    e.EventID,
		UserID:     e.UserID,
		Attended:   e.Attended,
		EnrolledAt: e.EnrolledAt.Format(time.RFC3339),
	}
}

func ToRatingResponse(r *domain.Rating) RatingResponse {
	return RatingResponse{
		ID:        r.ID,
		EventID:   r.EventID,
		UserID:    r.UserID,
		Score:     r.Score,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

func ToCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		EventID:   c.EventID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}
