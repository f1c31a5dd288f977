package services_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	portsrepo "github.com/oryxgate/realty_cms/internal/core/ports/repositories"
	"github.com/oryxgate/realty_cms/internal/core/services"
	"github.com/oryxgate/realty_cms/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BlogRepository ---
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) FindBlogByID(ctx context.Context, blogID string) (*domain.Blog, error) {
	args := m.Called(ctx, blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Blog), args.Error(1)
}

func (m *MockBlogRepository) FindBlogBySlug(ctx context.Context, locale, slug string) (*domain.Blog, error) {
	args := m.Called(ctx, locale, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Blog), args.Error(1)
}

func (m *MockBlogRepository) ListBlogs(ctx context.Context, status *domain.Status, page portsrepo.ListParams) ([]domain.Blog, int, error) {
	args := m.Called(ctx, status, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Blog), args.Int(1), args.Error(2)
}

func (m *MockBlogRepository) SaveBlog(ctx context.Context, blog domain.Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}

func (m *MockBlogRepository) UpdateBlog(ctx context.Context, blog domain.Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}

func (m *MockBlogRepository) DeleteBlog(ctx context.Context, blogID string, deletedBy string) error {
	args := m.Called(ctx, blogID, deletedBy)
	return args.Error(0)
}

func (m *MockBlogRepository) SlugExists(ctx context.Context, locale, slug, excludeID string) (bool, error) {
	args := m.Called(ctx, locale, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

// --- Test Suite ---
type BlogServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBlogRepository
	service  *services.BlogService
}

func (suite *BlogServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBlogRepository)
	slugGen := services.NewSlugGenerator([]string{"en", "ar"}, "en")
	suite.service = services.NewBlogService(suite.mockRepo, slugGen, []string{"en", "ar"}, slog.Default())
}

// --- Test Cases ---

func (suite *BlogServiceTestSuite) TestCreateBlog_PublishedStampsPublishedAt() {
	ctx := context.Background()
	var req dto.CreateBlogRequest
	suite.Require().NoError(json.Unmarshal([]byte(`{"title": "Market Update", "status": "published"}`), &req))

	suite.mockRepo.On("SlugExists", ctx, "en", "market-update", mock.AnythingOfType("string")).Return(false, nil).Once()
	suite.mockRepo.On("SlugExists", ctx, "ar", "market-update", mock.AnythingOfType("string")).Return(false, nil).Once()
	suite.mockRepo.On("SaveBlog", ctx, mock.MatchedBy(func(b domain.Blog) bool {
		return b.Status == domain.StatusPublished && b.PublishedAt != nil
	})).Return(nil).Once()

	blog, err := suite.service.CreateBlog(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(blog.PublishedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BlogServiceTestSuite) TestCreateBlog_DraftHasNoPublishedAt() {
	ctx := context.Background()
	var req dto.CreateBlogRequest
	suite.Require().NoError(json.Unmarshal([]byte(`{"title": "Market Update"}`), &req))

	suite.mockRepo.On("SlugExists", ctx, "en", "market-update", mock.AnythingOfType("string")).Return(false, nil).Once()
	suite.mockRepo.On("SlugExists", ctx, "ar", "market-update", mock.AnythingOfType("string")).Return(false, nil).Once()
	suite.mockRepo.On("SaveBlog", ctx, mock.AnythingOfType("domain.Blog")).Return(nil).Once()

	blog, err := suite.service.CreateBlog(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.StatusDraft, blog.Status)
	suite.Nil(blog.PublishedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BlogServiceTestSuite) TestUpdateBlogStatus_FirstPublishStamps() {
	ctx := context.Background()
	blogID := uuid.NewString()
	existing := &domain.Blog{BlogID: blogID, Status: domain.StatusDraft}

	suite.mockRepo.On("FindBlogByID", ctx, blogID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateBlog", ctx, mock.MatchedBy(func(b domain.Blog) bool {
		return b.Status == domain.StatusPublished && b.PublishedAt != nil
	})).Return(nil).Once()

	blog, err := suite.service.UpdateBlogStatus(ctx, blogID, "published", uuid.NewString())

	suite.Require().NoError(err)
	suite.NotNil(blog.PublishedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BlogServiceTestSuite) TestUpdateBlogStatus_RepublishKeepsOriginalTimestamp() {
	ctx := context.Background()
	blogID := uuid.NewString()
	firstPublish := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	existing := &domain.Blog{BlogID: blogID, Status: domain.StatusDraft, PublishedAt: &firstPublish}

	suite.mockRepo.On("FindBlogByID", ctx, blogID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateBlog", ctx, mock.AnythingOfType("domain.Blog")).Return(nil).Once()

	blog, err := suite.service.UpdateBlogStatus(ctx, blogID, "published", uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(blog.PublishedAt)
	suite.True(blog.PublishedAt.Equal(firstPublish))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestBlogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BlogServiceTestSuite))
}
