package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/doin-client/internal/adapter"
	"github.com/MKhiriev/doin-client/internal/mock"
	"github.com/MKhiriev/doin-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProfileService_UploadRefreshesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserAdapter(ctrl)
	updated := models.UserProfile{ID: 1, Username: "alice", ProfilePicture: &models.Image{ID: 3}}
	session := &stubSession{user: &alice, refreshed: updated}
	svc := NewProfileService(users, mock.NewMockImageAdapter(ctrl), session)

	file := models.FileUpload{Name: "me.png", Reader: strings.NewReader("png"), Size: 3}
	users.EXPECT().UpdateProfileImage(gomock.Any(), file, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.FileUpload, progress func(models.UploadProgress)) error {
			progress(models.UploadProgress{Sent: 3, Total: 3})
			return nil
		},
	)

	var last models.UploadProgress
	profile, err := svc.UploadProfileImage(context.Background(), file, func(p models.UploadProgress) { last = p })
	require.NoError(t, err)

	assert.Equal(t, updated, profile)
	assert.Equal(t, 1, session.refreshes)
	assert.Equal(t, 100, last.Percent())
}

func TestProfileService_UploadFailureSkipsRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserAdapter(ctrl)
	session := &stubSession{user: &alice}
	svc := NewProfileService(users, mock.NewMockImageAdapter(ctrl), session)

	users.EXPECT().UpdateProfileImage(gomock.Any(), gomock.Any(), gomock.Any()).Return(adapter.ErrNetwork)

	_, err := svc.UploadProfileImage(context.Background(), models.FileUpload{}, nil)
	assert.ErrorIs(t, err, adapter.ErrNetwork)
	assert.Zero(t, session.refreshes)
}

func TestProfileService_UploadWithoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewProfileService(mock.NewMockUserAdapter(ctrl), mock.NewMockImageAdapter(ctrl), &stubSession{})

	_, err := svc.UploadProfileImage(context.Background(), models.FileUpload{}, nil)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestProfileService_Lookups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserAdapter(ctrl)
	images := mock.NewMockImageAdapter(ctrl)
	svc := NewProfileService(users, images, &stubSession{})
	ctx := context.Background()

	users.EXPECT().GetByID(ctx, int64(2)).Return(models.UserProfile{ID: 2, Username: "bob"}, nil)
	users.EXPECT().GetByUsername(ctx, "bob").Return(models.UserProfile{}, &adapter.StatusError{Status: 404, Err: adapter.ErrNotFound})
	images.EXPECT().Get(ctx, int64(3)).Return([]byte("png"), nil)

	bob, err := svc.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "bob", bob.Username)

	_, err = svc.GetByUsername(ctx, "bob")
	assert.ErrorIs(t, err, adapter.ErrNotFound)

	data, err := svc.Image(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)
}
