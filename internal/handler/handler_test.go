package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eventify-app/backend/internal/domain"
	"github.com/eventify-app/backend/internal/handler/dto"
	hmocks "github.com/eventify-app/backend/internal/handler/mocks"
	"github.com/eventify-app/backend/internal/router"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type testMocks struct {
	eventSvc      *hmocks.MockEventSvc
	enrollmentSvc *hmocks.MockEnrollmentSvc
	ratingSvc     *hmocks.MockRatingSvc
	commentSvc    *hmocks.MockCommentSvc
	moderationSvc *hmocks.MockModerationSvc
	analyticsSvc  *hmocks.MockAnalyticsSvc
	categorySvc   *hmocks.MockCategorySvc
	reminderSvc   *hmocks.MockReminderSvc
}

func setupRouter(t *testing.T, actor domain.Actor) (*testMocks, http.Handler) {
	t.Helper()

	m := &testMocks{
		eventSvc:      hmocks.NewMockEventSvc(t),
		enrollmentSvc: hmocks.NewMockEnrollmentSvc(t),
		ratingSvc:     hmocks.NewMockRatingSvc(t),
		commentSvc:    hmocks.NewMockCommentSvc(t),
		moderationSvc: hmocks.NewMockModerationSvc(t),
		analyticsSvc:  hmocks.NewMockAnalyticsSvc(t),
		categorySvc:   hmocks.NewMockCategorySvc(t),
		reminderSvc:   hmocks.NewMockReminderSvc(t),
	}

	h := NewHandler(
		m.eventSvc,
		m.enrollmentSvc,
		m.ratingSvc,
		m.commentSvc,
		m.moderationSvc,
		m.analyticsSvc,
		m.categorySvc,
		m.reminderSvc,
	)

	setActor := func(c *ginext.Context) {
		if actor.ID != "" {
			c.Set("actor", actor)
		}
		c.Next()
	}

	r := router.InitRouter("test", h, setActor, setActor)
	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t, domain.Actor{ID: "u1"})

	event := &domain.Event{
		ID:        uuid.New().String(),
		Title:     "Feria del libro",
		Place:     "Biblioteca central",
		StartDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		StartTime: time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndTime:   time.Date(0, 1, 1, 18, 0, 0, 0, time.UTC),
		CreatorID: "u1",
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	m.eventSvc.EXPECT().Create(mock.Anything, domain.Actor{ID: "u1"}, mock.Anything).
		Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.SaveEventRequest{
		Title:       "Feria del libro",
		Place:       "Biblioteca central",
		StartDate:   "2026-10-01",
		StartTime:   "09:00",
		EndDate:     "2026-10-01",
		EndTime:     "18:00",
		CategoryIDs: []string{"cultura"},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Feria del libro", resp.Title)
	assert.Equal(t, "09:00:00", resp.StartTime)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t, domain.Actor{ID: "u1"})

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.SaveEventRequest{
		Title:       "X",
		Place:       "Y",
		StartDate:   "not-a-date",
		StartTime:   "09:00",
		EndDate:     "2026-10-01",
		EndTime:     "18:00",
		CategoryIDs: []string{"cultura"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t, domain.Actor{})

	eventID := uuid.New().String()
	m.eventSvc.EXPECT().Get(mock.Anything, domain.Actor{}, eventID).
		Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, r := setupRouter(t, domain.Actor{})

	w := doJSON(t, r, http.MethodGet, "/api/events/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListEvents_AnonymousViewer(t *testing.T) {
	m, r := setupRouter(t, domain.Actor{})

	m.eventSvc.EXPECT().List(mock.Anything, domain.Actor{}, mock.Anything).
		Return([]*domain.EventDetails{
			{Event: domain.Event{ID: uuid.New().String(), Title: "Expo"}, ParticipantsCount: 4},
		}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events?search=expo", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 4, resp[0].ParticipantsCount)
	assert.False(t, resp[0].IsEnrolled)
}

// --- Enrollments ---

func TestHandler_Enroll_Conflicts(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"already enrolled", domain.ErrAlreadyEnrolled, http.StatusConflict},
		{"capacity exceeded", domain.ErrCapacityExceeded, http.StatusConflict},
		{"event not found", domain.ErrEventNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, r := setupRouter(t, domain.Actor{ID: "u1"})

			eventID := uuid.New().String()
			m.enrollmentSvc.EXPECT().Enroll(mock.Anything, domain.Actor{ID: "u1"}, eventID).
				Return(nil, tc.err)

			w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/enroll", nil)

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestHandler_CheckIn_Idempotent(t *testing.T) {
	m, r := setupRouter(t, domain.Actor{ID: "creator"})

	eventID := uuid.New().String()
	userID := uuid.New().String()
	m.enrollmentSvc.EXPECT().CheckIn(mock.Anything, domain.Actor{ID: "creator"}, eventID, userID).
		Return(true, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/checkin", dto.CheckInRequest{UserID: userID})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "already_recorded")
}

// --- Ratings ---

func TestHandler_RateEvent_NotAttended(t *testing.T) {
	m, r := setupRouter(t, domain.Actor{ID: "u1"})

	eventID := uuid.New().String()
	m.ratingSvc.EXPECT().Rate(mock.Anything, domain.Actor{ID: "u1"}, eventID, 4).
		Return(nil, domain.ErrNotAttended)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/rating", dto.RateRequest{Score: 4})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_RatingSummary(t *testing.T) {
	m, r := setupRouter(t, domain.Actor{})

	eventID := uuid.New().String()
	m.ratingSvc.EXPECT().Summary(mock.Anything, eventID).
		Return(&domain.RatingSummary{EventID: eventID, Average: 4.2, Count: 11}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID+"/rating", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.RatingSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 11, resp.Count)
}

// --- Comments ---

func TestHandler_AddComment_Success(t *testing.T) {
	m, r := setupRouter(t, domain.Actor{ID: "u1"})

	eventID := uuid.New().String()
	comment := &domain.Comment{
		ID:       uuid.New().String(),
		EventID:  eventID,
		AuthorID: "u1",
		Content:  "Excelente",
		IsActive: true,
	}
	m.commentSvc.EXPECT().Add(mock.Anything, domain.Actor{ID: "u1"}, eventID, "Excelente").
		Return(comment, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/comments", dto.CommentRequest{Content: "Excelente"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_UpdateComment_Forbidden(t *testing.T) {
	m, r := setupRouter(t, domain.Actor{ID: "u2"})

	commentID := uuid.New().String()
	m.commentSvc.EXPECT().Update(mock.Anything, domain.Actor{ID: "u2"}, commentID, "x").
		Return(nil, domain.ErrPermissionDenied)

	w := doJSON(t, r, http.MethodPut, "/api/comments/"+commentID, dto.CommentRequest{Content: "x"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Moderation ---

func TestHandler_ReportEvent_Duplicate(t *testing.T) {
	m, r := setupRouter(t, domain.Actor{ID: "u1"})

	eventID := uuid.New().String()
	m.moderationSvc.EXPECT().ReportEvent(mock.Anything, domain.Actor{ID: "u1"}, eventID, "spam").
		Return(nil, domain.ErrAlreadyReported)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/report", dto.ReportRequest{Reason: "spam"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ReportedComments_AdminGate(t *testing.T) {
	m, r := setupRouter(t, domain.Actor{ID: "u1"})

	m.moderationSvc.EXPECT().ReportedComments(mock.Anything, domain.Actor{ID: "u1"}).
		Return(nil, domain.ErrPermissionDenied)

	w := doJSON(t, r, http.MethodGet, "/api/moderation/comments", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Analytics ---

func TestHandler_TopCategories_PassesQuery(t *testing.T) {
	m, r := setupRouter(t, domain.Actor{ID: "a1", IsAdmin: true})

	m.analyticsSvc.EXPECT().TopCategories(mock.Anything, mock.Anything, "attendance", 3).
		Return([]*domain.CategoryStat{{CategoryID: "deportes", Attendance: 7}}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/analytics/categories?by=attendance&limit=3", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deportes")
}

func TestHandler_TopCategories_InvalidLimit(t *testing.T) {
	_, r := setupRouter(t, domain.Actor{ID: "a1"})

	w := doJSON(t, r, http.MethodGet, "/api/analytics/categories?limit=zero", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Notification prefs ---

func TestHandler_SetNotificationPrefs(t *testing.T) {
	m, r := setupRouter(t, domain.Actor{ID: "u1"})

	enabled := true
	m.reminderSvc.EXPECT().SetPrefs(mock.Anything, domain.Actor{ID: "u1"}, 12, true, (*int64)(nil)).
		Return(&domain.NotificationPrefs{UserID: "u1", HoursBefore: 12, Enabled: true}, nil)

	w := doJSON(t, r, http.MethodPut, "/api/me/notification-prefs", dto.PrefsRequest{
		HoursBefore: 12,
		Enabled:     &enabled,
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Health ---

func TestHandler_Health(t *testing.T) {
	_, r := setupRouter(t, domain.Actor{})

	w := doJSON(t, r, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
