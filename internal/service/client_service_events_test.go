package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/doin-client/internal/adapter"
	"github.com/MKhiriev/doin-client/internal/logger"
	"github.com/MKhiriev/doin-client/internal/mock"
	"github.com/MKhiriev/doin-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubSession is a SessionService that only knows who is signed in.
type stubSession struct {
	SessionService
	user      *models.UserProfile
	refreshed models.UserProfile
	refreshes int
}

func (s *stubSession) CurrentUser() *models.UserProfile { return s.user }

func (s *stubSession) RefreshProfile(context.Context) (models.UserProfile, error) {
	s.refreshes++
	return s.refreshed, nil
}

func newTestEventSvc(t *testing.T, ctrl *gomock.Controller, session SessionService) (EventService, *mock.MockEventAdapter) {
	t.Helper()
	events := mock.NewMockEventAdapter(ctrl)
	return NewEventService(events, session, 3, logger.Nop()), events
}

func TestEventService_FeedUsesPageSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, events := newTestEventSvc(t, ctrl, &stubSession{})
	events.EXPECT().List(gomock.Any(), models.PageRequest{Page: 0, Size: 3}).
		Return(models.Page[models.Event]{Content: []models.Event{{ID: 1}}, Last: true}, nil)

	got, err := svc.Feed().LoadMore(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestEventService_DiscoverAndUserEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, events := newTestEventSvc(t, ctrl, &stubSession{})
	events.EXPECT().ListPublic(gomock.Any(), models.PageRequest{Size: 3}).Return(models.Page[models.Event]{Last: true}, nil)
	events.EXPECT().ListByUser(gomock.Any(), int64(42), models.PageRequest{Size: 3}).Return(models.Page[models.Event]{Last: true}, nil)

	_, err := svc.Discover().LoadMore(context.Background())
	require.NoError(t, err)
	_, err = svc.UserEvents(42).LoadMore(context.Background())
	require.NoError(t, err)
}

func TestEventService_JoinUsesCurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, events := newTestEventSvc(t, ctrl, &stubSession{user: &alice})
	events.EXPECT().Join(gomock.Any(), int64(5), alice.ID).Return(nil)

	require.NoError(t, svc.Join(context.Background(), 5))
}

func TestEventService_JoinWithoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestEventSvc(t, ctrl, &stubSession{})

	assert.ErrorIs(t, svc.Join(context.Background(), 5), ErrNotAuthenticated)
}

func TestEventService_GetMapsRefusedSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, events := newTestEventSvc(t, ctrl, &stubSession{})
	events.EXPECT().Get(gomock.Any(), int64(9)).Return(models.Event{}, &adapter.StatusError{Status: 403, Err: adapter.ErrForbidden})

	_, err := svc.Get(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.ErrorIs(t, err, adapter.ErrForbidden)
}

func TestEventService_CreateUpcomingAddImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, events := newTestEventSvc(t, ctrl, &stubSession{})
	ctx := context.Background()
	draft := models.Event{Location: "park", Visibility: models.VisibilityPublic}
	file := models.FileUpload{Name: "a.png"}

	events.EXPECT().Create(ctx, draft).Return(models.Event{ID: 11, Location: "park"}, nil)
	events.EXPECT().Upcoming(ctx).Return([]models.Event{{ID: 11}}, nil)
	events.EXPECT().AddImage(ctx, int64(11), file, gomock.Any()).Return(&adapter.StatusError{Status: 404, Err: adapter.ErrNotFound})

	created, err := svc.Create(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)

	upcoming, err := svc.Upcoming(ctx)
	require.NoError(t, err)
	assert.Len(t, upcoming, 1)

	err = svc.AddImage(ctx, 11, file, nil)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}
