package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eventify-app/backend/internal/domain"
	"github.com/eventify-app/backend/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func validInput() domain.CreateEventInput {
	future := time.Now().UTC().AddDate(0, 1, 0)
	return domain.CreateEventInput{
		Title:       "Torneo de ajedrez",
		Description: "Torneo abierto",
		Place:       "Aula magna",
		StartDate:   future,
		StartTime:   time.Date(0, 1, 1, 10, 0, 0, 0, time.UTC),
		EndDate:     future,
		EndTime:     time.Date(0, 1, 1, 12, 0, 0, 0, time.UTC),
		CategoryIDs: []string{"deportes"},
	}
}

func TestEventService_Create_Success(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	categoryRepo := mocks.NewMockCategoryRepo(t)
	svc := NewEventService(eventRepo, categoryRepo)

	categoryRepo.EXPECT().GetByIDs(mock.Anything, []string{"deportes"}).
		Return([]domain.Category{{ID: "deportes", Name: "Deportes"}}, nil)
	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), domain.Actor{ID: "u1"}, validInput())

	require.NoError(t, err)
	assert.Equal(t, "Torneo de ajedrez", event.Title)
	assert.Equal(t, "u1", event.CreatorID)
	assert.True(t, event.IsActive)
	assert.NotEmpty(t, event.ID)
	assert.Len(t, event.Categories, 1)
}

func TestEventService_Create_PastStart(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	categoryRepo := mocks.NewMockCategoryRepo(t)
	svc := NewEventService(eventRepo, categoryRepo)

	input := validInput()
	input.StartDate = time.Now().UTC().AddDate(0, 0, -1)
	input.EndDate = input.StartDate

	_, err := svc.Create(context.Background(), domain.Actor{ID: "u1"}, input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_Validation(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	categoryRepo := mocks.NewMockCategoryRepo(t)
	svc := NewEventService(eventRepo, categoryRepo)

	cases := []struct {
		name   string
		mutate func(*domain.CreateEventInput)
	}{
		{"empty title", func(in *domain.CreateEventInput) { in.Title = "" }},
		{"empty place", func(in *domain.CreateEventInput) { in.Place = "" }},
		{"zero capacity", func(in *domain.CreateEventInput) { zero := 0; in.Capacity = &zero }},
		{"no categories", func(in *domain.CreateEventInput) { in.CategoryIDs = nil }},
		{"end before start", func(in *domain.CreateEventInput) {
			in.EndDate = in.StartDate.AddDate(0, 0, -1)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)

			_, err := svc.Create(context.Background(), domain.Actor{ID: "u1"}, input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_Create_UnknownCategory(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	categoryRepo := mocks.NewMockCategoryRepo(t)
	svc := NewEventService(eventRepo, categoryRepo)

	input := validInput()
	input.CategoryIDs = []string{"deportes", "nope"}

	categoryRepo.EXPECT().GetByIDs(mock.Anything, input.CategoryIDs).
		Return([]domain.Category{{ID: "deportes", Name: "Deportes"}}, nil)

	_, err := svc.Create(context.Background(), domain.Actor{ID: "u1"}, input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Update_OwnerOnly(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	categoryRepo := mocks.NewMockCategoryRepo(t)
	svc := NewEventService(eventRepo, categoryRepo)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", CreatorID: "u1", IsActive: true}, nil)

	_, err := svc.Update(context.Background(), domain.Actor{ID: "u2"}, "e1", validInput())

	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestEventService_Update_AllowsOngoingEvent(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	categoryRepo := mocks.NewMockCategoryRepo(t)
	svc := NewEventService(eventRepo, categoryRepo)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", CreatorID: "u1", IsActive: true}, nil)
	categoryRepo.EXPECT().GetByIDs(mock.Anything, mock.Anything).
		Return([]domain.Category{{ID: "deportes", Name: "Deportes"}}, nil)
	eventRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	// событие началось час назад, правка всё ещё возможна
	input := validInput()
	input.StartDate = time.Now().UTC()
	input.StartTime = time.Now().UTC().Add(-time.Hour)
	input.EndDate = time.Now().UTC().AddDate(0, 0, 1)

	updated, err := svc.Update(context.Background(), domain.Actor{ID: "u1"}, "e1", input)

	require.NoError(t, err)
	assert.Equal(t, input.Title, updated.Title)
}

func TestEventService_Disable_Permissions(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	categoryRepo := mocks.NewMockCategoryRepo(t)
	svc := NewEventService(eventRepo, categoryRepo)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", CreatorID: "u1", IsActive: true}, nil).Times(2)
	eventRepo.EXPECT().Disable(mock.Anything, "e1", "admin", mock.Anything).Return(nil)

	err := svc.Disable(context.Background(), domain.Actor{ID: "stranger"}, "e1")
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	err = svc.Disable(context.Background(), domain.Actor{ID: "admin", IsAdmin: true}, "e1")
	assert.NoError(t, err)
}

func TestEventService_Disable_AlreadyDisabled(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	categoryRepo := mocks.NewMockCategoryRepo(t)
	svc := NewEventService(eventRepo, categoryRepo)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", CreatorID: "u1"}, nil)
	eventRepo.EXPECT().Disable(mock.Anything, "e1", "u1", mock.Anything).
		Return(domain.ErrAlreadyDisabled)

	err := svc.Disable(context.Background(), domain.Actor{ID: "u1"}, "e1")

	assert.ErrorIs(t, err, domain.ErrAlreadyDisabled)
}

func TestEventService_Restore_AdminOnly(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	categoryRepo := mocks.NewMockCategoryRepo(t)
	svc := NewEventService(eventRepo, categoryRepo)

	err := svc.Restore(context.Background(), domain.Actor{ID: "u1"}, "e1")
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	eventRepo.EXPECT().Restore(mock.Anything, "e1").Return(nil)
	err = svc.Restore(context.Background(), domain.Actor{ID: "a1", IsAdmin: true}, "e1")
	assert.NoError(t, err)
}

func TestEventService_Get_HidesDisabledFromStrangers(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	categoryRepo := mocks.NewMockCategoryRepo(t)
	svc := NewEventService(eventRepo, categoryRepo)

	disabled := &domain.EventDetails{
		Event: domain.Event{ID: "e1", CreatorID: "u1", IsActive: false},
	}
	eventRepo.EXPECT().GetDetails(mock.Anything, "e1", "stranger").Return(disabled, nil)

	_, err := svc.Get(context.Background(), domain.Actor{ID: "stranger"}, "e1")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_Get_OwnerSeesDisabled(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	categoryRepo := mocks.NewMockCategoryRepo(t)
	svc := NewEventService(eventRepo, categoryRepo)

	disabled := &domain.EventDetails{
		Event: domain.Event{
			ID:        "e1",
			CreatorID: "u1",
			IsActive:  false,
			StartDate: time.Now().UTC().AddDate(0, 0, 7),
			EndDate:   time.Now().UTC().AddDate(0, 0, 7),
		},
	}
	eventRepo.EXPECT().GetDetails(mock.Anything, "e1", "u1").Return(disabled, nil)

	details, err := svc.Get(context.Background(), domain.Actor{ID: "u1"}, "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusUpcoming, details.Status)
}

func TestEventService_List_ComputesStatus(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	categoryRepo := mocks.NewMockCategoryRepo(t)
	svc := NewEventService(eventRepo, categoryRepo)

	past := time.Now().UTC().AddDate(0, 0, -7)
	future := time.Now().UTC().AddDate(0, 0, 7)
	eventRepo.EXPECT().List(mock.Anything, "u1", mock.Anything).Return([]*domain.EventDetails{
		{Event: domain.Event{ID: "e1", StartDate: past, EndDate: past}},
		{Event: domain.Event{ID: "e2", StartDate: future, EndDate: future}},
	}, nil)

	res, err := svc.List(context.Background(), domain.Actor{ID: "u1"}, domain.EventFilter{})

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, domain.EventStatusFinished, res[0].Status)
	assert.Equal(t, domain.EventStatusUpcoming, res[1].Status)
}

func TestEventService_List_PropagatesError(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	categoryRepo := mocks.NewMockCategoryRepo(t)
	svc := NewEventService(eventRepo, categoryRepo)

	eventRepo.EXPECT().List(mock.Anything, "u1", mock.Anything).
		Return(nil, errors.New("db error"))

	_, err := svc.List(context.Background(), domain.Actor{ID: "u1"}, domain.EventFilter{})

	assert.Error(t, err)
}

func TestEventService_MyProfileEvents(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	categoryRepo := mocks.NewMockCategoryRepo(t)
	svc := NewEventService(eventRepo, categoryRepo)

	eventRepo.EXPECT().List(mock.Anything, "u1", domain.EventFilter{CreatorID: "u1"}).
		Return([]*domain.EventDetails{{Event: domain.Event{ID: "mine"}}}, nil)
	eventRepo.EXPECT().List(mock.Anything, "u1", domain.EventFilter{EnrolledUserID: "u1"}).
		Return([]*domain.EventDetails{{Event: domain.Event{ID: "joined"}}}, nil)

	created, enrolled, err := svc.MyProfileEvents(context.Background(), domain.Actor{ID: "u1"})

	require.NoError(t, err)
	require.Len(t, created, 1)
	require.Len(t, enrolled, 1)
	assert.Equal(t, "mine", created[0].Event.ID)
	assert.Equal(t, "joined", enrolled[0].Event.ID)
}

func TestEventService_Calendar_ChronologicalUpcoming(t *testing.T) {
	eventRepo := mocks.NewMockEventRepo(t)
	categoryRepo := mocks.NewMockCategoryRepo(t)
	svc := NewEventService(eventRepo, categoryRepo)

	var captured domain.EventFilter
	eventRepo.EXPECT().List(mock.Anything, "u1", mock.Anything).
		Run(func(_ context.Context, _ string, f domain.EventFilter) {
			captured = f
		}).
		Return(nil, nil)

	_, err := svc.Calendar(context.Background(), domain.Actor{ID: "u1"}, nil, nil)

	require.NoError(t, err)
	assert.True(t, captured.OrderAsc)
	require.NotNil(t, captured.EndsFrom)
}
