package service

import (
	"context"
	"testing"

	"github.com/eventify-app/backend/internal/domain"
	"github.com/eventify-app/backend/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCommentService(t *testing.T) (*mocks.MockCommentRepo, *mocks.MockEnrollmentRepo, *mocks.MockEventRepo, *CommentService) {
	t.Helper()
	commentRepo := mocks.NewMockCommentRepo(t)
	enrollmentRepo := mocks.NewMockEnrollmentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	return commentRepo, enrollmentRepo, eventRepo, NewCommentService(commentRepo, enrollmentRepo, eventRepo)
}

func TestCommentService_Add_AttendeeOnly(t *testing.T) {
	commentRepo, enrollmentRepo, eventRepo, svc := newCommentService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", IsActive: true}, nil)
	enrollmentRepo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").
		Return(&domain.Enrollment{EventID: "e1", UserID: "u1", Attended: true}, nil)
	commentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	comment, err := svc.Add(context.Background(), domain.Actor{ID: "u1"}, "e1", "  Muy buen evento  ")

	require.NoError(t, err)
	assert.Equal(t, "Muy buen evento", comment.Content)
	assert.Equal(t, "u1", comment.AuthorID)
	assert.True(t, comment.IsActive)
}

func TestCommentService_Add_NotAttended(t *testing.T) {
	_, enrollmentRepo, eventRepo, svc := newCommentService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", IsActive: true}, nil)
	enrollmentRepo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").
		Return(&domain.Enrollment{EventID: "e1", UserID: "u1", Attended: false}, nil)

	_, err := svc.Add(context.Background(), domain.Actor{ID: "u1"}, "e1", "hola")

	assert.ErrorIs(t, err, domain.ErrNotAttended)
}

func TestCommentService_Add_EmptyContent(t *testing.T) {
	_, _, _, svc := newCommentService(t)

	_, err := svc.Add(context.Background(), domain.Actor{ID: "u1"}, "e1", "   ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCommentService_Update_AuthorOnly(t *testing.T) {
	commentRepo, _, _, svc := newCommentService(t)

	commentRepo.EXPECT().GetByID(mock.Anything, "c1").
		Return(&domain.Comment{ID: "c1", AuthorID: "u1"}, nil).Times(2)

	_, err := svc.Update(context.Background(), domain.Actor{ID: "u2"}, "c1", "nuevo texto")
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	// администратор тоже не редактирует чужие комментарии
	_, err = svc.Update(context.Background(), domain.Actor{ID: "a1", IsAdmin: true}, "c1", "nuevo texto")
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestCommentService_Update_Success(t *testing.T) {
	commentRepo, _, _, svc := newCommentService(t)

	commentRepo.EXPECT().GetByID(mock.Anything, "c1").
		Return(&domain.Comment{ID: "c1", AuthorID: "u1", Content: "viejo"}, nil)
	commentRepo.EXPECT().UpdateContent(mock.Anything, "c1", "nuevo", mock.Anything).Return(nil)

	comment, err := svc.Update(context.Background(), domain.Actor{ID: "u1"}, "c1", "nuevo")

	require.NoError(t, err)
	assert.Equal(t, "nuevo", comment.Content)
}

func TestCommentService_Delete_AuthorOnly(t *testing.T) {
	commentRepo, _, _, svc := newCommentService(t)

	commentRepo.EXPECT().GetByID(mock.Anything, "c1").
		Return(&domain.Comment{ID: "c1", AuthorID: "u1"}, nil).Times(2)
	commentRepo.EXPECT().Delete(mock.Anything, "c1").Return(nil)

	err := svc.Delete(context.Background(), domain.Actor{ID: "u2"}, "c1")
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	err = svc.Delete(context.Background(), domain.Actor{ID: "u1"}, "c1")
	assert.NoError(t, err)
}

func TestCommentService_ListByEvent_HiddenEvent(t *testing.T) {
	_, _, eventRepo, svc := newCommentService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", CreatorID: "u9", IsActive: false}, nil)

	_, err := svc.ListByEvent(context.Background(), domain.Actor{ID: "u1"}, "e1")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestCommentService_ListByEvent_ActiveOnly(t *testing.T) {
	commentRepo, _, eventRepo, svc := newCommentService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", IsActive: true}, nil)
	commentRepo.EXPECT().ListActiveByEvent(mock.Anything, "e1").
		Return([]*domain.Comment{{ID: "c1", Content: "ok", IsActive: true}}, nil)

	comments, err := svc.ListByEvent(context.Background(), domain.Actor{ID: "u1"}, "e1")

	require.NoError(t, err)
	require.Len(t, comments, 1)
}
