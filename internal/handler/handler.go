package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/eventify-app/backend/internal/domain"
	"github.com/eventify-app/backend/internal/handler/dto"
	"github.com/eventify-app/backend/internal/middleware"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	Create(ctx context.Context, actor domain.Actor, input domain.CreateEventInput) (*domain.Event, error)
	Update(ctx context.Context, actor domain.Actor, id string, input domain.CreateEventInput) (*domain.Event, error)
	Disable(ctx context.Context, actor domain.Actor, id string) error
	Restore(ctx context.Context, actor domain.Actor, id string) error
	Get(ctx context.Context, viewer domain.Actor, id string) (*domain.EventDetails, error)
	List(ctx context.Context, viewer domain.Actor, f domain.EventFilter) ([]*domain.EventDetails, error)
	MyEvents(ctx context.Context, actor domain.Actor) ([]*domain.EventDetails, error)
	MyProfileEvents(ctx context.Context, actor domain.Actor) (created, enrolled []*domain.EventDetails, err error)
	Calendar(ctx context.Context, viewer domain.Actor, from, to *time.Time) ([]*domain.EventDetails, error)
}

type EnrollmentSvc interface {
	Enroll(ctx context.Context, actor domain.Actor, eventID string) (*domain.Enrollment, error)
	CheckIn(ctx context.Context, actor domain.Actor, eventID, participantID string) (bool, error)
	ListParticipants(ctx context.Context, viewer domain.Actor, eventID string) ([]*domain.Enrollment, error)
}

type RatingSvc interface {
	Rate(ctx context.Context, actor domain.Actor, eventID string, score int) (*domain.Rating, error)
	Summary(ctx context.Context, eventID string) (*domain.RatingSummary, error)
}

type CommentSvc interface {
	Add(ctx context.Context, actor domain.Actor, eventID, content string) (*domain.Comment, error)
	Update(ctx context.Context, actor domain.Actor, commentID, content string) (*domain.Comment, error)
	Delete(ctx context.Context, actor domain.Actor, commentID string) error
	ListByEvent(ctx context.Context, actor domain.Actor, eventID string) ([]*domain.Comment, error)
}

type ModerationSvc interface {
	ReportComment(ctx context.Context, actor domain.Actor, commentID, reason string) (*domain.CommentReport, error)
	ReportEvent(ctx context.Context, actor domain.Actor, eventID, reason string) (*domain.EventReport, error)
	ReportedComments(ctx context.Context, actor domain.Actor) ([]*domain.ReportedComment, error)
	ReportedEvents(ctx context.Context, actor domain.Actor) ([]*domain.ReportedEvent, error)
	DisableComment(ctx context.Context, actor domain.Actor, commentID string) error
	RestoreComment(ctx context.Context, actor domain.Actor, commentID string) error
}

type AnalyticsSvc interface {
	TopCategories(ctx context.Context, w domain.AnalyticsWindow, by string, limit int) ([]*domain.CategoryStat, error)
	TopCreators(ctx context.Context, w domain.AnalyticsWindow, by string, limit int) ([]*domain.CreatorStat, error)
	TopEvents(ctx context.Context, w domain.AnalyticsWindow, by string, limit int) ([]*domain.EventStat, error)
	MyPopularEvents(ctx context.Context, actor domain.Actor) ([]*domain.PopularEvent, error)
	AttendeesByCategory(ctx context.Context, actor domain.Actor) ([]*domain.CategoryAttendance, error)
	MyEventStats(ctx context.Context, actor domain.Actor) (*domain.CreatorEventStats, error)
	MyAttendeeStats(ctx context.Context, actor domain.Actor) (*domain.CreatorAttendeeStats, error)
}

type CategorySvc interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
}

type ReminderSvc interface {
	GetPrefs(ctx context.Context, actor domain.Actor) (*domain.NotificationPrefs, error)
	SetPrefs(ctx context.Context, actor domain.Actor, hoursBefore int, enabled bool, telegramChatID *int64) (*domain.NotificationPrefs, error)
}

type Handler struct {
	eventService      EventSvc
	enrollmentService EnrollmentSvc
	ratingService     RatingSvc
	commentService    CommentSvc
	moderationService ModerationSvc
	analyticsService  AnalyticsSvc
	categoryService   CategorySvc
	reminderService   ReminderSvc
}

func NewHandler(
	eventService EventSvc,
	enrollmentService EnrollmentSvc,
	ratingService RatingSvc,
	commentService CommentSvc,
	moderationService ModerationSvc,
	analyticsService AnalyticsSvc,
	categoryService CategorySvc,
	reminderService ReminderSvc,
) *Handler {
	return &Handler{
		eventService:      eventService,
		enrollmentService: enrollmentService,
		ratingService:     ratingService,
		commentService:    commentService,
		moderationService: moderationService,
		analyticsService:  analyticsService,
		categoryService:   categoryService,
		reminderService:   reminderService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	input, ok := h.bindEventInput(c)
	if !ok {
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), actorFrom(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := h.pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	input, ok := h.bindEventInput(c)
	if !ok {
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), actorFrom(c), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DisableEvent(c *ginext.Context) {
	id, ok := h.pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	if err := h.eventService.Disable(c.Request.Context(), actorFrom(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "disabled"})
}

func (h *Handler) RestoreEvent(c *ginext.Context) {
	id, ok := h.pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	if err := h.eventService.Restore(c.Request.Context(), actorFrom(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "restored"})
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := h.pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	details, err := h.eventService.Get(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	filter := domain.EventFilter{Search: c.Query("search")}

	var ok bool
	if filter.FromDate, ok = h.queryDate(c, "from"); !ok {
		return
	}
	if filter.ToDate, ok = h.queryDate(c, "to"); !ok {
		return
	}

	details, err := h.eventService.List(c.Request.Context(), actorFrom(c), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsList(details))
}

func (h *Handler) Calendar(c *ginext.Context) {
	from, ok := h.queryDate(c, "from")
	if !ok {
		return
	}
	to, ok := h.queryDate(c, "to")
	if !ok {
		return
	}

	details, err := h.eventService.Calendar(c.Request.Context(), actorFrom(c), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsList(details))
}

func (h *Handler) MyEvents(c *ginext.Context) {
	details, err := h.eventService.MyEvents(c.Request.Context(), actorFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsList(details))
}

func (h *Handler) MyProfileEvents(c *ginext.Context) {
	created, enrolled, err := h.eventService.MyProfileEvents(c.Request.Context(), actorFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileEventsResponse{
		Created:  dto.ToEventDetailsList(created),
		Enrolled: dto.ToEventDetailsList(enrolled),
	})
}

// Enrollments

func (h *Handler) Enroll(c *ginext.Context) {
	eventID, ok := h.pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	enrollment, err := h.enrollmentService.Enroll(c.Request.Context(), actorFrom(c), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEnrollmentResponse(enrollment))
}

func (h *Handler) CheckIn(c *ginext.Context) {
	eventID, ok := h.pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	already, err := h.enrollmentService.CheckIn(c.Request.Context(), actorFrom(c), eventID, req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := "recorded"
	if already {
		status = "already_recorded"
	}
	c.JSON(http.StatusOK, ginext.H{"status": status})
}

func (h *Handler) ListParticipants(c *ginext.Context) {
	eventID, ok := h.pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	enrollments, err := h.enrollmentService.ListParticipants(c.Request.Context(), actorFrom(c), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		resp = append(resp, dto.ToEnrollmentResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Ratings

func (h *Handler) RateEvent(c *ginext.Context) {
	eventID, ok := h.pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	var req dto.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rating, err := h.ratingService.Rate(c.Request.Context(), actorFrom(c), eventID, req.Score)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRatingResponse(rating))
}

func (h *Handler) RatingSummary(c *ginext.Context) {
	eventID, ok := h.pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	summary, err := h.ratingService.Summary(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Comments

func (h *Handler) AddComment(c *ginext.Context) {
	eventID, ok := h.pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	comment, err := h.commentService.Add(c.Request.Context(), actorFrom(c), eventID, req.Content)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

func (h *Handler) UpdateComment(c *ginext.Context) {
	commentID, ok := h.pathID(c, "id", "invalid comment id")
	if !ok {
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), actorFrom(c), commentID, req.Content)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

func (h *Handler) DeleteComment(c *ginext.Context) {
	commentID, ok := h.pathID(c, "id", "invalid comment id")
	if !ok {
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), actorFrom(c), commentID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) ListComments(c *ginext.Context) {
	eventID, ok := h.pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	comments, err := h.commentService.ListByEvent(c.Request.Context(), actorFrom(c), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CommentResponse, 0, len(comments))
	for _, cm := range comments {
		resp = append(resp, dto.ToCommentResponse(cm))
	}

	c.JSON(http.StatusOK, resp)
}

// Moderation

func (h *Handler) ReportEvent(c *ginext.Context) {
	eventID, ok := h.pathID(c, "id", "invalid event id")
	if !ok {
		return
	}

	var req dto.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	report, err := h.moderationService.ReportEvent(c.Request.Context(), actorFrom(c), eventID, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ReportResponse{
		ID:        report.ID,
		Reason:    report.Reason,
		CreatedAt: report.CreatedAt.Format(time.RFC3339),
	})
}

func (h *Handler) ReportComment(c *ginext.Context) {
	commentID, ok := h.pathID(c, "id", "invalid comment id")
	if !ok {
		return
	}

	var req dto.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	report, err := h.moderationService.ReportComment(c.Request.Context(), actorFrom(c), commentID, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ReportResponse{
		ID:        report.ID,
		Reason:    report.Reason,
		CreatedAt: report.CreatedAt.Format(time.RFC3339),
	})
}

func (h *Handler) ReportedComments(c *ginext.Context) {
	reported, err := h.moderationService.ReportedComments(c.Request.Context(), actorFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, reported)
}

func (h *Handler) ReportedEvents(c *ginext.Context) {
	reported, err := h.moderationService.ReportedEvents(c.Request.Context(), actorFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, reported)
}

func (h *Handler) DisableComment(c *ginext.Context) {
	commentID, ok := h.pathID(c, "id", "invalid comment id")
	if !ok {
		return
	}

	if err := h.moderationService.DisableComment(c.Request.Context(), actorFrom(c), commentID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "disabled"})
}

func (h *Handler) RestoreComment(c *ginext.Context) {
	commentID, ok := h.pathID(c, "id", "invalid comment id")
	if !ok {
		return
	}

	if err := h.moderationService.RestoreComment(c.Request.Context(), actorFrom(c), commentID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "restored"})
}

// Analytics

func (h *Handler) TopCategories(c *ginext.Context) {
	window, by, limit, ok := h.analyticsQuery(c)
	if !ok {
		return
	}

	stats, err := h.analyticsService.TopCategories(c.Request.Context(), window, by, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) TopCreators(c *ginext.Context) {
	window, by, limit, ok := h.analyticsQuery(c)
	if !ok {
		return
	}

	stats, err := h.analyticsService.TopCreators(c.Request.Context(), window, by, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) TopEvents(c *ginext.Context) {
	window, by, limit, ok := h.analyticsQuery(c)
	if !ok {
		return
	}

	stats, err := h.analyticsService.TopEvents(c.Request.Context(), window, by, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) MyPopularEvents(c *ginext.Context) {
	popular, err := h.analyticsService.MyPopularEvents(c.Request.Context(), actorFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, popular)
}

func (h *Handler) MyAttendeesByCategory(c *ginext.Context) {
	rows, err := h.analyticsService.AttendeesByCategory(c.Request.Context(), actorFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *Handler) MyEventStats(c *ginext.Context) {
	stats, err := h.analyticsService.MyEventStats(c.Request.Context(), actorFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) MyAttendeeStats(c *ginext.Context) {
	stats, err := h.analyticsService.MyAttendeeStats(c.Request.Context(), actorFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Categories

func (h *Handler) ListCategories(c *ginext.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		resp = append(resp, dto.ToCategoryResponse(&categories[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetCategory(c *ginext.Context) {
	category, err := h.categoryService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// Notification prefs

func (h *Handler) GetNotificationPrefs(c *ginext.Context) {
	prefs, err := h.reminderService.GetPrefs(c.Request.Context(), actorFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}

func (h *Handler) SetNotificationPrefs(c *ginext.Context) {
	var req dto.PrefsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	prefs, err := h.reminderService.SetPrefs(c.Request.Context(), actorFrom(c),
		req.HoursBefore, *req.Enabled, req.TelegramChatID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// helpers

func actorFrom(c *ginext.Context) domain.Actor {
	actor, _ := middleware.ActorFrom(c)
	return actor
}

func (h *Handler) pathID(c *ginext.Context, param, msg string) (string, bool) {
	id := c.Param(param)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return "", false
	}
	return id, true
}

func (h *Handler) bindEventInput(c *ginext.Context) (domain.CreateEventInput, bool) {
	var req dto.SaveEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return domain.CreateEventInput{}, false
	}

	startDate, err1 := time.Parse("2006-01-02", req.StartDate)
	endDate, err2 := time.Parse("2006-01-02", req.EndDate)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		})
		return domain.CreateEventInput{}, false
	}

	startTime, err1 := parseTimeOfDay(req.StartTime)
	endTime, err2 := parseTimeOfDay(req.EndTime)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid time format, expected HH:MM or HH:MM:SS",
		})
		return domain.CreateEventInput{}, false
	}

	return domain.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Place:       req.Place,
		CoverURL:    req.CoverURL,
		StartDate:   startDate,
		StartTime:   startTime,
		EndDate:     endDate,
		EndTime:     endTime,
		Capacity:    req.Capacity,
		CategoryIDs: req.CategoryIDs,
	}, true
}

func parseTimeOfDay(s string) (time.Time, error) {
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t, nil
	}
	return time.Parse("15:04", s)
}

func (h *Handler) queryDate(c *ginext.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}

	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid " + name + " date, expected YYYY-MM-DD",
		})
		return nil, false
	}
	return &t, true
}

func (h *Handler) analyticsQuery(c *ginext.Context) (domain.AnalyticsWindow, string, int, bool) {
	var window domain.AnalyticsWindow

	var ok bool
	if window.From, ok = h.queryDate(c, "from"); !ok {
		return window, "", 0, false
	}
	if window.To, ok = h.queryDate(c, "to"); !ok {
		return window, "", 0, false
	}

	by := c.DefaultQuery("by", "enrollments")

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid limit"})
			return window, "", 0, false
		}
		limit = n
	}

	return window, by, limit, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrEnrollmentNotFound),
		errors.Is(err, domain.ErrCommentNotFound),
		errors.Is(err, domain.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyEnrolled),
		errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrAlreadyRated),
		errors.Is(err, domain.ErrAlreadyReported),
		errors.Is(err, domain.ErrAlreadyDisabled),
		errors.Is(err, domain.ErrNotDisabled):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPermissionDenied),
		errors.Is(err, domain.ErrNotAttended):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
