package services_test

import (
	"context"
	"encoding/json"
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

// --- Mock TestimonialRepository ---
type MockTestimonialRepository struct {
	mock.Mock
}

func (m *MockTestimonialRepository) FindTestimonialByID(ctx context.Context, testimonialID string) (*domain.Testimonial, error) {
	args := m.Called(ctx, testimonialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) ListTestimonials(ctx context.Context, status *domain.Status, page portsrepo.ListParams) ([]domain.Testimonial, int, error) {
	args := m.Called(ctx, status, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Testimonial), args.Int(1), args.Error(2)
}

func (m *MockTestimonialRepository) SaveTestimonial(ctx context.Context, testimonial domain.Testimonial) error {
	args := m.Called(ctx, testimonial)
	return args.Error(0)
}

func (m *MockTestimonialRepository) UpdateTestimonial(ctx context.Context, testimonial domain.Testimonial) error {
	args := m.Called(ctx, testimonial)
	return args.Error(0)
}

func (m *MockTestimonialRepository) DeleteTestimonial(ctx context.Context, testimonialID string, deletedBy string) error {
	args := m.Called(ctx, testimonialID, deletedBy)
	return args.Error(0)
}

// --- Test Suite ---
type TestimonialServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTestimonialRepository
	service  *services.TestimonialService
}

func (suite *TestimonialServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTestimonialRepository)
	suite.service = services.NewTestimonialService(suite.mockRepo, []string{"en", "ar"})
}

func (suite *TestimonialServiceTestSuite) createReq(payload string) dto.CreateTestimonialRequest {
	var req dto.CreateTestimonialRequest
	suite.Require().NoError(json.Unmarshal([]byte(payload), &req))
	return req
}

// --- Test Cases ---

func (suite *TestimonialServiceTestSuite) TestCreateTestimonial_Success() {
	ctx := context.Background()
	req := suite.createReq(`{"client_name": "Jane Smith", "content": "Great service", "rating": 5}`)

	suite.mockRepo.On("SaveTestimonial", ctx, mock.MatchedBy(func(t domain.Testimonial) bool {
		return t.Rating == 5 && t.ClientName["en"] == "Jane Smith"
	})).Return(nil).Once()

	testimonial, err := suite.service.CreateTestimonial(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(5, testimonial.Rating)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TestimonialServiceTestSuite) TestCreateTestimonial_RatingOutOfRange() {
	ctx := context.Background()

	for _, rating := range []string{"0", "6", "-1"} {
		req := suite.createReq(`{"client_name": "Jane Smith", "content": "Great service", "rating": ` + rating + `}`)

		testimonial, err := suite.service.CreateTestimonial(ctx, req, uuid.NewString())

		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.Nil(testimonial)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTestimonial")
}

func (suite *TestimonialServiceTestSuite) TestUpdateTestimonial_RatingValidated() {
	ctx := context.Background()
	testimonialID := uuid.NewString()
	existing := &domain.Testimonial{TestimonialID: testimonialID, Rating: 4}
	suite.mockRepo.On("FindTestimonialByID", ctx, testimonialID).Return(existing, nil).Once()

	var req dto.UpdateTestimonialRequest
	suite.Require().NoError(json.Unmarshal([]byte(`{"rating": 9}`), &req))

	testimonial, err := suite.service.UpdateTestimonial(ctx, testimonialID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(testimonial)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTestimonial")
}

func TestTestimonialServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TestimonialServiceTestSuite))
}
