package service

import (
	"context"
	"fmt"
	"time"

	"github.com/eventify-app/backend/internal/domain"
	"github.com/eventify-app/backend/internal/service/ports"
	"github.com/google/uuid"
)

type EventService struct {
	repo         ports.EventRepo
	categoryRepo ports.CategoryRepo
}

func NewEventService(repo ports.EventRepo, categoryRepo ports.CategoryRepo) *EventService {
	return &EventService{
		repo:         repo,
		categoryRepo: categoryRepo,
	}
}

func (s *EventService) Create(ctx context.Context, actor domain.Actor, input domain.CreateEventInput) (*domain.Event, error) {
	categories, err := s.validateInput(ctx, input, true)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Place:       input.Place,
		CoverURL:    input.CoverURL,
		StartDate:   input.StartDate,
		StartTime:   input.StartTime,
		EndDate:     input.EndDate,
		EndTime:     input.EndTime,
		Capacity:    input.Capacity,
		CreatorID:   actor.ID,
		Categories:  categories,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) Update(ctx context.Context, actor domain.Actor, id string, input domain.CreateEventInput) (*domain.Event, error) {
	event, err := s.visibleEvent(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(event.CreatorID) {
		return nil, domain.ErrPermissionDenied
	}

	categories, err := s.validateInput(ctx, input, false)
	if err != nil {
		return nil, err
	}

	event.Title = input.Title
	event.Description = input.Description
	event.Place = input.Place
	event.CoverURL = input.CoverURL
	event.StartDate = input.StartDate
	event.StartTime = input.StartTime
	event.EndDate = input.EndDate
	event.EndTime = input.EndTime
	event.Capacity = input.Capacity
	event.Categories = categories

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

// validateInput: проверка прошедшего старта действует только при создании:
// редактирование уже идущего события её не проходило бы никогда.
func (s *EventService) validateInput(ctx context.Context, input domain.CreateEventInput, creating bool) ([]domain.Category, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Place == "" {
		return nil, fmt.Errorf("%w: place is required", domain.ErrValidation)
	}
	if input.Capacity != nil && *input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if len(input.CategoryIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one category is required", domain.ErrValidation)
	}

	if err := domain.ValidateSchedule(input.StartDate, input.StartTime, input.EndDate, input.EndTime); err != nil {
		return nil, err
	}
	if creating {
		start := domain.CombineDateTime(input.StartDate, input.StartTime)
		if start.Before(time.Now().UTC()) {
			return nil, fmt.Errorf("%w: event cannot start in the past", domain.ErrValidation)
		}
	}

	categories, err := s.categoryRepo.GetByIDs(ctx, input.CategoryIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve categories: %w", err)
	}
	if len(categories) != len(uniqueStrings(input.CategoryIDs)) {
		return nil, fmt.Errorf("%w: unknown category", domain.ErrValidation)
	}

	return categories, nil
}

func (s *EventService) Disable(ctx context.Context, actor domain.Actor, id string) error {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanManage(event.CreatorID) {
		return domain.ErrPermissionDenied
	}

	return s.repo.Disable(ctx, id, actor.ID, time.Now().UTC())
}

func (s *EventService) Restore(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.IsAdmin {
		return domain.ErrPermissionDenied
	}

	return s.repo.Restore(ctx, id)
}

func (s *EventService) Get(ctx context.Context, viewer domain.Actor, id string) (*domain.EventDetails, error) {
	details, err := s.repo.GetDetails(ctx, id, viewer.ID)
	if err != nil {
		return nil, err
	}
	if !details.Event.IsActive && !viewer.CanManage(details.Event.CreatorID) {
		return nil, domain.ErrEventNotFound
	}

	details.Status = details.Event.StatusAt(time.Now().UTC())
	return details, nil
}

func (s *EventService) List(ctx context.Context, viewer domain.Actor, f domain.EventFilter) ([]*domain.EventDetails, error) {
	return s.list(ctx, viewer, f)
}

func (s *EventService) MyEvents(ctx context.Context, actor domain.Actor) ([]*domain.EventDetails, error) {
	return s.list(ctx, actor, domain.EventFilter{CreatorID: actor.ID})
}

// MyProfileEvents возвращает созданные события и события, на которые
// пользователь записан.
func (s *EventService) MyProfileEvents(ctx context.Context, actor domain.Actor) (created, enrolled []*domain.EventDetails, err error) {
	created, err = s.list(ctx, actor, domain.EventFilter{CreatorID: actor.ID})
	if err != nil {
		return nil, nil, err
	}

	enrolled, err = s.list(ctx, actor, domain.EventFilter{EnrolledUserID: actor.ID})
	if err != nil {
		return nil, nil, err
	}

	return created, enrolled, nil
}

// Calendar возвращает предстоящие события в необязательном окне дат, в хронологическом
// порядке.
func (s *EventService) Calendar(ctx context.Context, viewer domain.Actor, from, to *time.Time) ([]*domain.EventDetails, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	return s.list(ctx, viewer, domain.EventFilter{
		FromDate: from,
		ToDate:   to,
		EndsFrom: &today,
		OrderAsc: true,
	})
}

func (s *EventService) list(ctx context.Context, viewer domain.Actor, f domain.EventFilter) ([]*domain.EventDetails, error) {
	res, err := s.repo.List(ctx, viewer.ID, f)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	now := time.Now().UTC()
	for _, d := range res {
		d.Status = d.Event.StatusAt(now)
	}

	return res, nil
}

// visibleEvent скрывает отключённые события ото всех, кроме владельца и
// администратора.
func (s *EventService) visibleEvent(ctx context.Context, viewer domain.Actor, id string) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !event.IsActive && !viewer.CanManage(event.CreatorID) {
		return nil, domain.ErrEventNotFound
	}
	return event, nil
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
