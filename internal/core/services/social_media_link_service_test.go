package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/oryxgate/realty_cms/internal/apperrors"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	"github.com/oryxgate/realty_cms/internal/core/services"
	"github.com/oryxgate/realty_cms/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SocialMediaLinkRepository ---
type MockSocialMediaLinkRepository struct {
	mock.Mock
}

func (m *MockSocialMediaLinkRepository) FindSocialMediaLinkByID(ctx context.Context, linkID string) (*domain.SocialMediaLink, error) {
	args := m.Called(ctx, linkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SocialMediaLink), args.Error(1)
}

func (m *MockSocialMediaLinkRepository) ListSocialMediaLinks(ctx context.Context, activeOnly bool) ([]domain.SocialMediaLink, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SocialMediaLink), args.Error(1)
}

func (m *MockSocialMediaLinkRepository) SaveSocialMediaLink(ctx context.Context, link domain.SocialMediaLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockSocialMediaLinkRepository) UpdateSocialMediaLink(ctx context.Context, link domain.SocialMediaLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockSocialMediaLinkRepository) UpdateSocialMediaLinkSortOrder(ctx context.Context, linkID string, sortOrder int, updatedBy string) error {
	args := m.Called(ctx, linkID, sortOrder, updatedBy)
	return args.Error(0)
}

func (m *MockSocialMediaLinkRepository) DeleteSocialMediaLink(ctx context.Context, linkID string, deletedBy string) error {
	args := m.Called(ctx, linkID, deletedBy)
	return args.Error(0)
}

// --- Test Suite ---
type SocialMediaLinkServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSocialMediaLinkRepository
	service  *services.SocialMediaLinkService
}

func (suite *SocialMediaLinkServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSocialMediaLinkRepository)
	suite.service = services.NewSocialMediaLinkService(suite.mockRepo, []string{"en", "ar"})
}

func (suite *SocialMediaLinkServiceTestSuite) reorderReq(payload string) dto.ReorderSocialMediaLinksRequest {
	var req dto.ReorderSocialMediaLinksRequest
	suite.Require().NoError(json.Unmarshal([]byte(payload), &req))
	return req
}

// --- Test Cases ---

func (suite *SocialMediaLinkServiceTestSuite) TestReorderSocialMediaLinks_MovesEveryLink() {
	ctx := context.Background()
	updaterID := uuid.NewString()
	firstID := uuid.NewString()
	secondID := uuid.NewString()

	req := suite.reorderReq(`{"links": [
		{"social_media_link_id": "` + firstID + `", "sort_order": 2},
		{"social_media_link_id": "` + secondID + `", "sort_order": 1}
	]}`)

	suite.mockRepo.On("UpdateSocialMediaLinkSortOrder", ctx, firstID, 2, updaterID).Return(nil).Once()
	suite.mockRepo.On("UpdateSocialMediaLinkSortOrder", ctx, secondID, 1, updaterID).Return(nil).Once()

	err := suite.service.ReorderSocialMediaLinks(ctx, req, updaterID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SocialMediaLinkServiceTestSuite) TestReorderSocialMediaLinks_UnknownLinkFails() {
	ctx := context.Background()
	updaterID := uuid.NewString()
	missingID := uuid.NewString()

	req := suite.reorderReq(`{"links": [{"social_media_link_id": "` + missingID + `", "sort_order": 0}]}`)

	suite.mockRepo.On("UpdateSocialMediaLinkSortOrder", ctx, missingID, 0, updaterID).
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.ReorderSocialMediaLinks(ctx, req, updaterID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestSocialMediaLinkServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SocialMediaLinkServiceTestSuite))
}
