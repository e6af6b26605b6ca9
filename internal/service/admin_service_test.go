package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wavely/wavely-backend/internal/common"
	"github.com/wavely/wavely-backend/internal/domain"
	"gorm.io/gorm"
)

func newTestAdminService() (*mockUserRepo, *mockPostRepo, AdminService) {
	userRepo := new(mockUserRepo)
	postRepo := new(mockPostRepo)
	return userRepo, postRepo, NewAdminService(userRepo, postRepo)
}

func TestAdminStats_Success(t *testing.T) {
	userRepo, postRepo, svc := newTestAdminService()

	userRepo.On("FindByID", mock.Anything, uint(1)).
		Return(&domain.User{ID: 1, IsAdmin: true}, nil)
	userRepo.On("Count", mock.Anything).Return(int64(100), nil)
	postRepo.On("Count", mock.Anything).Return(int64(250), nil)
	userRepo.On("CountBanned", mock.Anything).Return(int64(3), nil)

	stats, err := svc.Stats(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, int64(100), stats.UsersCount)
	assert.Equal(t, int64(250), stats.PostsCount)
	assert.Equal(t, int64(3), stats.BannedCount)
}

func TestAdminStats_NonAdminForbidden(t *testing.T) {
	userRepo, _, svc := newTestAdminService()

	userRepo.On("FindByID", mock.Anything, uint(2)).
		Return(&domain.User{ID: 2, IsAdmin: false}, nil)

	stats, err := svc.Stats(context.Background(), 2)
	assert.ErrorIs(t, err, common.ErrForbidden)
	assert.Nil(t, stats)
}

func TestAdminStats_UnknownActorForbidden(t *testing.T) {
	userRepo, _, svc := newTestAdminService()

	userRepo.On("FindByID", mock.Anything, uint(999)).Return(nil, gorm.ErrRecordNotFound)

	stats, err := svc.Stats(context.Background(), 999)
	assert.ErrorIs(t, err, common.ErrForbidden)
	assert.Nil(t, stats)
}

func TestAdminBan_SetsFlag(t *testing.T) {
	userRepo, _, svc := newTestAdminService()

	userRepo.On("FindByID", mock.Anything, uint(1)).
		Return(&domain.User{ID: 1, IsAdmin: true}, nil)
	userRepo.On("UpdateFields", mock.Anything, uint(7), map[string]interface{}{"is_banned": true}).
		Return(nil)

	assert.NoError(t, svc.Ban(context.Background(), 1, 7))
	userRepo.AssertExpectations(t)
}

func TestAdminUnban_ClearsFlag(t *testing.T) {
	userRepo, _, svc := newTestAdminService()

	userRepo.On("FindByID", mock.Anything, uint(1)).
		Return(&domain.User{ID: 1, IsAdmin: true}, nil)
	userRepo.On("UpdateFields", mock.Anything, uint(7), map[string]interface{}{"is_banned": false}).
		Return(nil)

	assert.NoError(t, svc.Unban(context.Background(), 1, 7))
}

func TestAdminGrantRevoke(t *testing.T) {
	userRepo, _, svc := newTestAdminService()

	userRepo.On("FindByID", mock.Anything, uint(1)).
		Return(&domain.User{ID: 1, IsAdmin: true}, nil)
	userRepo.On("UpdateFields", mock.Anything, uint(7), map[string]interface{}{"is_admin": true}).
		Return(nil)
	userRepo.On("UpdateFields", mock.Anything, uint(7), map[string]interface{}{"is_admin": false}).
		Return(nil)

	assert.NoError(t, svc.GrantAdmin(context.Background(), 1, 7))
	assert.NoError(t, svc.RevokeAdmin(context.Background(), 1, 7))
}

func TestAdminBan_NonAdminForbidden(t *testing.T) {
	userRepo, _, svc := newTestAdminService()

	userRepo.On("FindByID", mock.Anything, uint(2)).
		Return(&domain.User{ID: 2, IsAdmin: false}, nil)

	err := svc.Ban(context.Background(), 2, 7)
	assert.ErrorIs(t, err, common.ErrForbidden)
	userRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminListUsers_Success(t *testing.T) {
	userRepo, _, svc := newTestAdminService()

	userRepo.On("FindByID", mock.Anything, uint(1)).
		Return(&domain.User{ID: 1, IsAdmin: true}, nil)
	userRepo.On("FindAll", mock.Anything).Return([]*domain.User{
		{ID: 2, Phone: "01011112222", Username: "a_user_123abc"},
		{ID: 1, Phone: "01033334444", Username: "admin_456def"},
	}, nil)

	users, err := svc.ListUsers(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	// phone is exposed in the moderation view
	assert.Equal(t, "01011112222", users[0].Phone)
}

func TestAdminUpdateUser_TrimsAndSkipsEmpty(t *testing.T) {
	userRepo, _, svc := newTestAdminService()

	fullName := "  New Name  "
	empty := "   "
	userRepo.On("FindByID", mock.Anything, uint(1)).
		Return(&domain.User{ID: 1, IsAdmin: true}, nil)
	userRepo.On("UpdateFields", mock.Anything, uint(7), map[string]interface{}{"full_name": "New Name"}).
		Return(nil)

	err := svc.UpdateUser(context.Background(), 1, 7, &AdminUpdateUserRequest{
		FullName: &fullName,
		Username: &empty,
	})

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}
