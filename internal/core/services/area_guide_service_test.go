package services_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/oryxgate/realty_cms/internal/apperrors"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	portsrepo "github.com/oryxgate/realty_cms/internal/core/ports/repositories"
	"github.com/oryxgate/realty_cms/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AreaGuideRepository ---
type MockAreaGuideRepository struct {
	mock.Mock
}

func (m *MockAreaGuideRepository) FindAreaGuideByID(ctx context.Context, areaGuideID string) (*domain.AreaGuide, error) {
	args := m.Called(ctx, areaGuideID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AreaGuide), args.Error(1)
}

func (m *MockAreaGuideRepository) FindAreaGuideBySlug(ctx context.Context, locale, slug string) (*domain.AreaGuide, error) {
	args := m.Called(ctx, locale, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AreaGuide), args.Error(1)
}

func (m *MockAreaGuideRepository) ListAreaGuides(ctx context.Context, status *domain.Status, page portsrepo.ListParams) ([]domain.AreaGuide, int, error) {
	args := m.Called(ctx, status, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.AreaGuide), args.Int(1), args.Error(2)
}

func (m *MockAreaGuideRepository) SaveAreaGuide(ctx context.Context, guide domain.AreaGuide) error {
	args := m.Called(ctx, guide)
	return args.Error(0)
}

func (m *MockAreaGuideRepository) UpdateAreaGuide(ctx context.Context, guide domain.AreaGuide) error {
	args := m.Called(ctx, guide)
	return args.Error(0)
}

func (m *MockAreaGuideRepository) DeleteAreaGuide(ctx context.Context, areaGuideID string, deletedBy string) error {
	args := m.Called(ctx, areaGuideID, deletedBy)
	return args.Error(0)
}

func (m *MockAreaGuideRepository) SyncProjects(ctx context.Context, areaGuideID string, projectIDs []string) error {
	args := m.Called(ctx, areaGuideID, projectIDs)
	return args.Error(0)
}

func (m *MockAreaGuideRepository) SlugExists(ctx context.Context, locale, slug, excludeID string) (bool, error) {
	args := m.Called(ctx, locale, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

// --- Test Suite ---
type AreaGuideServiceTestSuite struct {
	suite.Suite
	mockGuideRepo   *MockAreaGuideRepository
	mockProjectRepo *MockProjectRepository
	service         *services.AreaGuideService
}

func (suite *AreaGuideServiceTestSuite) SetupTest() {
	suite.mockGuideRepo = new(MockAreaGuideRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	slugGen := services.NewSlugGenerator([]string{"en", "ar"}, "en")
	suite.service = services.NewAreaGuideService(suite.mockGuideRepo, suite.mockProjectRepo, slugGen, []string{"en", "ar"}, slog.Default())
}

// --- Test Cases ---

func (suite *AreaGuideServiceTestSuite) TestSyncAreaGuideProjects_Success() {
	ctx := context.Background()
	guideID := uuid.NewString()
	projectIDs := []string{uuid.NewString(), uuid.NewString()}

	suite.mockGuideRepo.On("FindAreaGuideByID", ctx, guideID).Return(&domain.AreaGuide{AreaGuideID: guideID}, nil).Once()
	for _, id := range projectIDs {
		suite.mockProjectRepo.On("FindProjectByID", ctx, id).Return(&domain.Project{ProjectID: id}, nil).Once()
	}
	suite.mockGuideRepo.On("SyncProjects", ctx, guideID, projectIDs).Return(nil).Once()

	err := suite.service.SyncAreaGuideProjects(ctx, guideID, projectIDs)

	suite.Require().NoError(err)
	suite.mockGuideRepo.AssertExpectations(suite.T())
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *AreaGuideServiceTestSuite) TestSyncAreaGuideProjects_GuideNotFound() {
	ctx := context.Background()
	guideID := uuid.NewString()
	suite.mockGuideRepo.On("FindAreaGuideByID", ctx, guideID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.SyncAreaGuideProjects(ctx, guideID, []string{uuid.NewString()})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockGuideRepo.AssertNotCalled(suite.T(), "SyncProjects")
}

func (suite *AreaGuideServiceTestSuite) TestSyncAreaGuideProjects_UnknownProjectRejected() {
	ctx := context.Background()
	guideID := uuid.NewString()
	badID := uuid.NewString()

	suite.mockGuideRepo.On("FindAreaGuideByID", ctx, guideID).Return(&domain.AreaGuide{AreaGuideID: guideID}, nil).Once()
	suite.mockProjectRepo.On("FindProjectByID", ctx, badID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.SyncAreaGuideProjects(ctx, guideID, []string{badID})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockGuideRepo.AssertNotCalled(suite.T(), "SyncProjects")
}

func (suite *AreaGuideServiceTestSuite) TestSyncAreaGuideProjects_EmptySetClears() {
	ctx := context.Background()
	guideID := uuid.NewString()

	suite.mockGuideRepo.On("FindAreaGuideByID", ctx, guideID).Return(&domain.AreaGuide{AreaGuideID: guideID}, nil).Once()
	suite.mockGuideRepo.On("SyncProjects", ctx, guideID, []string(nil)).Return(nil).Once()

	err := suite.service.SyncAreaGuideProjects(ctx, guideID, nil)

	suite.Require().NoError(err)
	suite.mockGuideRepo.AssertExpectations(suite.T())
}

func (suite *AreaGuideServiceTestSuite) TestToggleAreaGuidePopular() {
	ctx := context.Background()
	guideID := uuid.NewString()
	existing := &domain.AreaGuide{AreaGuideID: guideID, IsPopular: true}

	suite.mockGuideRepo.On("FindAreaGuideByID", ctx, guideID).Return(existing, nil).Once()
	suite.mockGuideRepo.On("UpdateAreaGuide", ctx, mock.MatchedBy(func(g domain.AreaGuide) bool {
		return !g.IsPopular
	})).Return(nil).Once()

	guide, err := suite.service.ToggleAreaGuidePopular(ctx, guideID, uuid.NewString())

	suite.Require().NoError(err)
	suite.False(guide.IsPopular)
	suite.mockGuideRepo.AssertExpectations(suite.T())
}

func TestAreaGuideServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AreaGuideServiceTestSuite))
}
