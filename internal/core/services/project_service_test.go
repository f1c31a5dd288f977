package services_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/oryxgate/realty_cms/internal/apperrors"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	portsrepo "github.com/oryxgate/realty_cms/internal/core/ports/repositories"
	"github.com/oryxgate/realty_cms/internal/core/services"
	"github.com/oryxgate/realty_cms/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ProjectRepository ---
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindProjectBySlug(ctx context.Context, locale, slug string) (*domain.Project, error) {
	args := m.Called(ctx, locale, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjects(ctx context.Context, filter domain.ProjectFilter, page portsrepo.ListParams) ([]domain.Project, int, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Project), args.Int(1), args.Error(2)
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) DeleteProject(ctx context.Context, projectID string, deletedBy string) error {
	args := m.Called(ctx, projectID, deletedBy)
	return args.Error(0)
}

func (m *MockProjectRepository) SlugExists(ctx context.Context, locale, slug, excludeID string) (bool, error) {
	args := m.Called(ctx, locale, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

// --- Test Suite ---
type ProjectServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProjectRepository
	service  *services.ProjectService
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProjectRepository)
	slugGen := services.NewSlugGenerator([]string{"en", "ar"}, "en")
	suite.service = services.NewProjectService(suite.mockRepo, slugGen, []string{"en", "ar"}, slog.Default())
}

func createReq(suite *ProjectServiceTestSuite, payload string) dto.CreateProjectRequest {
	var req dto.CreateProjectRequest
	suite.Require().NoError(json.Unmarshal([]byte(payload), &req))
	return req
}

func updateReq(suite *ProjectServiceTestSuite, payload string) dto.UpdateProjectRequest {
	var req dto.UpdateProjectRequest
	suite.Require().NoError(json.Unmarshal([]byte(payload), &req))
	return req
}

// --- Test Cases ---

func (suite *ProjectServiceTestSuite) TestCreateProject_StringNameFansOutToAllLocales() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := createReq(suite, `{"name": "Luxury Villa"}`)

	suite.mockRepo.On("SlugExists", ctx, "en", "luxury-villa", mock.AnythingOfType("string")).Return(false, nil).Once()
	suite.mockRepo.On("SlugExists", ctx, "ar", "luxury-villa", mock.AnythingOfType("string")).Return(false, nil).Once()
	suite.mockRepo.On("SaveProject", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.Slug["en"] == "luxury-villa" && p.Slug["ar"] == "luxury-villa" &&
			p.Status == domain.StatusDraft && p.CreatedBy == creatorUserID
	})).Return(nil).Once()

	project, err := suite.service.CreateProject(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(project)
	suite.Equal("Luxury Villa", project.Name["en"])
	suite.Equal("luxury-villa", project.Slug["en"])
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestCreateProject_EmptyNameRejected() {
	ctx := context.Background()
	req := createReq(suite, `{"name": {"en": ""}}`)

	project, err := suite.service.CreateProject(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(project)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProject")
}

func (suite *ProjectServiceTestSuite) TestCreateProject_InvalidStatusRejected() {
	ctx := context.Background()
	req := createReq(suite, `{"name": "Luxury Villa", "status": "archived"}`)

	project, err := suite.service.CreateProject(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(project)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProject")
}

func (suite *ProjectServiceTestSuite) TestCreateProject_RetriesOnDuplicateSlug() {
	ctx := context.Background()

	req := createReq(suite, `{"name": {"en": "Luxury Villa"}}`)

	// Pre-check says free both times; the first insert still hits the unique
	// index (concurrent writer), the retry succeeds with the regenerated slug.
	suite.mockRepo.On("SlugExists", ctx, "en", "luxury-villa", mock.AnythingOfType("string")).Return(false, nil).Twice()
	suite.mockRepo.On("SlugExists", ctx, "ar", "luxury-villa", mock.AnythingOfType("string")).Return(false, nil).Twice()
	suite.mockRepo.On("SaveProject", ctx, mock.AnythingOfType("domain.Project")).Return(apperrors.ErrDuplicate).Once()
	suite.mockRepo.On("SaveProject", ctx, mock.AnythingOfType("domain.Project")).Return(nil).Once()

	project, err := suite.service.CreateProject(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(project)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestUpdateProject_RecomputesOnlyPayloadLocales() {
	ctx := context.Background()
	projectID := uuid.NewString()
	existing := &domain.Project{
		ProjectID: projectID,
		Name:      domain.Localized{"en": "Old Name", "ar": "اسم قديم"},
		Slug:      domain.Localized{"en": "old-name", "ar": "asm-qdym"},
		Status:    domain.StatusDraft,
	}

	suite.mockRepo.On("FindProjectByID", ctx, projectID).Return(existing, nil).Once()
	// Only en appears in the payload, so only en gets a fresh slug.
	suite.mockRepo.On("SlugExists", ctx, "en", "new-name", projectID).Return(false, nil).Once()
	suite.mockRepo.On("UpdateProject", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.Slug["en"] == "new-name" && p.Slug["ar"] == "asm-qdym"
	})).Return(nil).Once()

	project, err := suite.service.UpdateProject(ctx, projectID, updateReq(suite, `{"name": {"en": "New Name"}}`), uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("new-name", project.Slug["en"])
	suite.Equal("asm-qdym", project.Slug["ar"])
	// The untouched ar name survives the merge.
	suite.Equal("اسم قديم", project.Name["ar"])
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestUpdateProject_NoNameKeepsSlugs() {
	ctx := context.Background()
	projectID := uuid.NewString()
	existing := &domain.Project{
		ProjectID: projectID,
		Name:      domain.Localized{"en": "Luxury Villa"},
		Slug:      domain.Localized{"en": "luxury-villa"},
		Status:    domain.StatusDraft,
	}

	suite.mockRepo.On("FindProjectByID", ctx, projectID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateProject", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.Slug["en"] == "luxury-villa"
	})).Return(nil).Once()

	project, err := suite.service.UpdateProject(ctx, projectID, updateReq(suite, `{"sort_order": 5}`), uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(5, project.SortOrder)
	suite.mockRepo.AssertNotCalled(suite.T(), "SlugExists")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestUpdateProjectStatus_InvalidStatusLeavesRecordUntouched() {
	ctx := context.Background()

	project, err := suite.service.UpdateProjectStatus(ctx, uuid.NewString(), "archived", uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(project)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindProjectByID")
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateProject")
}

func (suite *ProjectServiceTestSuite) TestPublishProject() {
	ctx := context.Background()
	projectID := uuid.NewString()
	existing := &domain.Project{ProjectID: projectID, Status: domain.StatusDraft}

	suite.mockRepo.On("FindProjectByID", ctx, projectID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateProject", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.Status == domain.StatusPublished
	})).Return(nil).Once()

	project, err := suite.service.PublishProject(ctx, projectID, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPublished, project.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestToggleProjectFeatured() {
	ctx := context.Background()
	projectID := uuid.NewString()
	existing := &domain.Project{ProjectID: projectID, IsFeatured: false}

	suite.mockRepo.On("FindProjectByID", ctx, projectID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateProject", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.IsFeatured
	})).Return(nil).Once()

	project, err := suite.service.ToggleProjectFeatured(ctx, projectID, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(project.IsFeatured)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestGetProjectByID_NotFound() {
	ctx := context.Background()
	projectID := uuid.NewString()
	suite.mockRepo.On("FindProjectByID", ctx, projectID).Return(nil, apperrors.ErrNotFound).Once()

	project, err := suite.service.GetProjectByID(ctx, projectID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(project)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
