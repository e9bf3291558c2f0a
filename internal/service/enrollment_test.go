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

func TestEnrollmentService_Enroll_Success(t *testing.T) {
	enrollmentRepo := mocks.NewMockEnrollmentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewEnrollmentService(enrollmentRepo, eventRepo, newTestLogger(t))

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", CreatorID: "u9", IsActive: true}, nil)
	enrollmentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	enrollment, err := svc.Enroll(context.Background(), domain.Actor{ID: "u1"}, "e1")

	require.NoError(t, err)
	assert.Equal(t, "e1", enrollment.EventID)
	assert.Equal(t, "u1", enrollment.UserID)
	assert.False(t, enrollment.Attended)
	assert.NotEmpty(t, enrollment.ID)
}

func TestEnrollmentService_Enroll_DisabledEventHidden(t *testing.T) {
	enrollmentRepo := mocks.NewMockEnrollmentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewEnrollmentService(enrollmentRepo, eventRepo, newTestLogger(t))

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", CreatorID: "u9", IsActive: false}, nil)

	_, err := svc.Enroll(context.Background(), domain.Actor{ID: "u1"}, "e1")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEnrollmentService_Enroll_Conflicts(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already enrolled", domain.ErrAlreadyEnrolled},
		{"capacity exceeded", domain.ErrCapacityExceeded},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			enrollmentRepo := mocks.NewMockEnrollmentRepo(t)
			eventRepo := mocks.NewMockEventRepo(t)
			svc := NewEnrollmentService(enrollmentRepo, eventRepo, newTestLogger(t))

			eventRepo.EXPECT().GetByID(mock.Anything, "e1").
				Return(&domain.Event{ID: "e1", IsActive: true}, nil)
			enrollmentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(tc.err)

			_, err := svc.Enroll(context.Background(), domain.Actor{ID: "u1"}, "e1")

			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestEnrollmentService_CheckIn_CreatorRecordsAttendance(t *testing.T) {
	enrollmentRepo := mocks.NewMockEnrollmentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewEnrollmentService(enrollmentRepo, eventRepo, newTestLogger(t))

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", CreatorID: "creator", IsActive: true}, nil)
	enrollmentRepo.EXPECT().SetAttended(mock.Anything, "e1", "u1").Return(false, nil)

	already, err := svc.CheckIn(context.Background(), domain.Actor{ID: "creator"}, "e1", "u1")

	require.NoError(t, err)
	assert.False(t, already)
}

func TestEnrollmentService_CheckIn_RepeatIsNoop(t *testing.T) {
	enrollmentRepo := mocks.NewMockEnrollmentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewEnrollmentService(enrollmentRepo, eventRepo, newTestLogger(t))

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", CreatorID: "creator", IsActive: true}, nil)
	enrollmentRepo.EXPECT().SetAttended(mock.Anything, "e1", "u1").Return(true, nil)

	already, err := svc.CheckIn(context.Background(), domain.Actor{ID: "creator"}, "e1", "u1")

	require.NoError(t, err)
	assert.True(t, already)
}

func TestEnrollmentService_CheckIn_StrangerForbidden(t *testing.T) {
	enrollmentRepo := mocks.NewMockEnrollmentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewEnrollmentService(enrollmentRepo, eventRepo, newTestLogger(t))

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", CreatorID: "creator", IsActive: true}, nil)

	_, err := svc.CheckIn(context.Background(), domain.Actor{ID: "stranger"}, "e1", "u1")

	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestEnrollmentService_CheckIn_NotEnrolled(t *testing.T) {
	enrollmentRepo := mocks.NewMockEnrollmentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewEnrollmentService(enrollmentRepo, eventRepo, newTestLogger(t))

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", CreatorID: "creator", IsActive: true}, nil)
	enrollmentRepo.EXPECT().SetAttended(mock.Anything, "e1", "u1").
		Return(false, domain.ErrEnrollmentNotFound)

	_, err := svc.CheckIn(context.Background(), domain.Actor{ID: "creator"}, "e1", "u1")

	assert.ErrorIs(t, err, domain.ErrEnrollmentNotFound)
}

func TestEnrollmentService_ListParticipants(t *testing.T) {
	enrollmentRepo := mocks.NewMockEnrollmentRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewEnrollmentService(enrollmentRepo, eventRepo, newTestLogger(t))

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", IsActive: true}, nil)
	enrollmentRepo.EXPECT().ListByEvent(mock.Anything, "e1").
		Return([]*domain.Enrollment{{ID: "en1", EventID: "e1", UserID: "u1"}}, nil)

	res, err := svc.ListParticipants(context.Background(), domain.Actor{ID: "u2"}, "e1")

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "u1", res[0].UserID)
}
