package test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"socialhub/internal/models"
	"socialhub/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, req service.SignupRequest) (*models.User, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) GenerateToken(user *models.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, actor models.AuthUser, content string) (*models.Post, error) {
	args := m.Called(ctx, actor, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) ListPosts(ctx context.Context, viewerID string) ([]models.FeedPost, error) {
	args := m.Called(ctx, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FeedPost), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, actor models.AuthUser, postID string) error {
	args := m.Called(ctx, actor, postID)
	return args.Error(0)
}

func (m *MockPostService) LikePost(ctx context.Context, actor models.AuthUser, postID string) error {
	args := m.Called(ctx, actor, postID)
	return args.Error(0)
}

func (m *MockPostService) UnlikePost(ctx context.Context, actor models.AuthUser, postID string) error {
	args := m.Called(ctx, actor, postID)
	return args.Error(0)
}

type MockSocialService struct {
	mock.Mock
}

func (m *MockSocialService) Follow(ctx context.Context, actor models.AuthUser, targetID string) error {
	args := m.Called(ctx, actor, targetID)
	return args.Error(0)
}

func (m *MockSocialService) Unfollow(ctx context.Context, actor models.AuthUser, targetID string) error {
	args := m.Called(ctx, actor, targetID)
	return args.Error(0)
}

func (m *MockSocialService) Block(ctx context.Context, actor models.AuthUser, targetID string) error {
	args := m.Called(ctx, actor, targetID)
	return args.Error(0)
}

func (m *MockSocialService) Unblock(ctx context.Context, actor models.AuthUser, targetID string) error {
	args := m.Called(ctx, actor, targetID)
	return args.Error(0)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) PromoteUser(ctx context.Context, targetID string) error {
	args := m.Called(ctx, targetID)
	return args.Error(0)
}

func (m *MockAdminService) DemoteUser(ctx context.Context, targetID string) error {
	args := m.Called(ctx, targetID)
	return args.Error(0)
}

func (m *MockAdminService) DeleteUser(ctx context.Context, actor models.AuthUser, targetID string) error {
	args := m.Called(ctx, actor, targetID)
	return args.Error(0)
}

func (m *MockAdminService) DeletePost(ctx context.Context, actor models.AuthUser, postID string) error {
	args := m.Called(ctx, actor, postID)
	return args.Error(0)
}

func (m *MockAdminService) DeleteLike(ctx context.Context, userID, postID string) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) Wall(ctx context.Context) ([]models.ActivityEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ActivityEntry), args.Error(1)
}
