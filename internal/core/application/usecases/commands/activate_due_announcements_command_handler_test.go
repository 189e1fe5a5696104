package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/announcement"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivateDueAnnouncementsCommandHandler_Handle_ActivatesBatch(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewActivateDueAnnouncementsCommand()

	due1 := testAnnouncement(t, kernel.NewUUID(), 100)
	due2 := testAnnouncement(t, kernel.NewUUID(), 200)

	announcementRepo := new(MockAnnouncementRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AnnouncementRepository").Return(announcementRepo).Once(),
		announcementRepo.On("GetAllPendingDue", ctx, mock.AnythingOfType("time.Time")).
			Return([]*announcement.Announcement{due1, due2}, nil).
			Once(),
		announcementRepo.On("Update", ctx, due1).Return(nil).Once(),
		announcementRepo.On("Update", ctx, due2).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAnnouncementUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewActivateDueAnnouncementsCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, announcement.StatusActive, due1.Status())
	assert.Equal(t, announcement.StatusActive, due2.Status())
	uow.AssertExpectations(t)
}

func TestActivateDueAnnouncementsCommandHandler_Handle_EmptySweep(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewActivateDueAnnouncementsCommand()

	announcementRepo := new(MockAnnouncementRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AnnouncementRepository").Return(announcementRepo).Once(),
		announcementRepo.On("GetAllPendingDue", ctx, mock.AnythingOfType("time.Time")).
			Return([]*announcement.Announcement{}, nil).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAnnouncementUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewActivateDueAnnouncementsCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	announcementRepo.AssertNotCalled(t, "Update")
}

func TestActivateDueAnnouncementsCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ActivateDueAnnouncementsCommand{} // not constructed properly

	factory := new(MockAnnouncementUoWFactory)
	handler := commands.NewActivateDueAnnouncementsCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrActivateDueAnnouncementsCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
