package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/oryxgate/realty_cms/internal/apperrors"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	"github.com/oryxgate/realty_cms/internal/core/services"
	"github.com/oryxgate/realty_cms/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyRateRepository ---
type MockCurrencyRateRepository struct {
	MockCurrencyRateReader
}

func (m *MockCurrencyRateRepository) SaveCurrencyRate(ctx context.Context, rate domain.CurrencyRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockCurrencyRateRepository) UpdateCurrencyRate(ctx context.Context, rate domain.CurrencyRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockCurrencyRateRepository) SetActive(ctx context.Context, currencyRateID string, active bool, updatedBy string) error {
	args := m.Called(ctx, currencyRateID, active, updatedBy)
	return args.Error(0)
}

// --- Test Suite ---
type CurrencyRateServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRateRepository
	service  *services.CurrencyRateService
}

func (suite *CurrencyRateServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRateRepository)
	suite.service = services.NewCurrencyRateService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CurrencyRateServiceTestSuite) TestCreateCurrencyRate_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateCurrencyRateRequest{
		CurrencyCode: "usd",
		CurrencyName: "US Dollar",
		Symbol:       "$",
		ExchangeRate: decimal.RequireFromString("0.2723"),
	}

	suite.mockRepo.On("SaveCurrencyRate", ctx, mock.MatchedBy(func(r domain.CurrencyRate) bool {
		return r.CurrencyCode == "USD" && r.IsActive && r.CreatedBy == creatorUserID
	})).Return(nil).Once()

	rate, err := suite.service.CreateCurrencyRate(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(rate)
	suite.Equal("USD", rate.CurrencyCode)
	suite.True(rate.IsActive)
	suite.NotEmpty(rate.CurrencyRateID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyRateServiceTestSuite) TestCreateCurrencyRate_NonPositiveRate() {
	ctx := context.Background()
	req := dto.CreateCurrencyRateRequest{
		CurrencyCode: "USD",
		CurrencyName: "US Dollar",
		Symbol:       "$",
		ExchangeRate: decimal.Zero,
	}

	rate, err := suite.service.CreateCurrencyRate(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(rate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCurrencyRate")
}

func (suite *CurrencyRateServiceTestSuite) TestCreateCurrencyRate_BaseRateMustBeOne() {
	ctx := context.Background()
	req := dto.CreateCurrencyRateRequest{
		CurrencyCode:   "AED",
		CurrencyName:   "UAE Dirham",
		Symbol:         "AED",
		ExchangeRate:   decimal.RequireFromString("0.5"),
		IsBaseCurrency: true,
	}

	rate, err := suite.service.CreateCurrencyRate(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(rate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCurrencyRate")
}

func (suite *CurrencyRateServiceTestSuite) TestCreateCurrencyRate_SecondBaseRejected() {
	ctx := context.Background()
	existingBase := &domain.CurrencyRate{
		CurrencyRateID: uuid.NewString(),
		CurrencyCode:   "AED",
		IsBaseCurrency: true,
		ExchangeRate:   decimal.NewFromInt(1),
	}
	suite.mockRepo.On("FindBaseCurrency", ctx).Return(existingBase, nil).Once()

	req := dto.CreateCurrencyRateRequest{
		CurrencyCode:   "USD",
		CurrencyName:   "US Dollar",
		Symbol:         "$",
		ExchangeRate:   decimal.NewFromInt(1),
		IsBaseCurrency: true,
	}

	rate, err := suite.service.CreateCurrencyRate(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "already the base currency")
	suite.Nil(rate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyRateServiceTestSuite) TestCreateCurrencyRate_FirstBaseAllowed() {
	ctx := context.Background()
	suite.mockRepo.On("FindBaseCurrency", ctx).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCurrencyRate", ctx, mock.AnythingOfType("domain.CurrencyRate")).Return(nil).Once()

	req := dto.CreateCurrencyRateRequest{
		CurrencyCode:   "AED",
		CurrencyName:   "UAE Dirham",
		Symbol:         "AED",
		ExchangeRate:   decimal.NewFromInt(1),
		IsBaseCurrency: true,
	}

	rate, err := suite.service.CreateCurrencyRate(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(rate.IsBaseCurrency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyRateServiceTestSuite) TestUpdateCurrencyRate_BaseKeepsOwnFlag() {
	ctx := context.Background()
	baseID := uuid.NewString()
	base := domain.CurrencyRate{
		CurrencyRateID: baseID,
		CurrencyCode:   "AED",
		IsBaseCurrency: true,
		ExchangeRate:   decimal.NewFromInt(1),
	}
	newName := "United Arab Emirates Dirham"

	suite.mockRepo.On("ListAll", ctx).Return([]domain.CurrencyRate{base}, nil).Once()
	// The row being updated is exempt from the "another base exists" check.
	suite.mockRepo.On("FindBaseCurrency", ctx).Return(&base, nil).Once()
	suite.mockRepo.On("UpdateCurrencyRate", ctx, mock.MatchedBy(func(r domain.CurrencyRate) bool {
		return r.CurrencyRateID == baseID && r.CurrencyName == newName && r.IsBaseCurrency
	})).Return(nil).Once()

	rate, err := suite.service.UpdateCurrencyRate(ctx, baseID, dto.UpdateCurrencyRateRequest{CurrencyName: &newName}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(newName, rate.CurrencyName)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyRateServiceTestSuite) TestUpdateCurrencyRate_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("ListAll", ctx).Return([]domain.CurrencyRate{}, nil).Once()

	rate, err := suite.service.UpdateCurrencyRate(ctx, uuid.NewString(), dto.UpdateCurrencyRateRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(rate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyRateServiceTestSuite) TestSetCurrencyRateActive_DeactivateBaseRejected() {
	ctx := context.Background()
	baseID := uuid.NewString()
	base := domain.CurrencyRate{
		CurrencyRateID: baseID,
		CurrencyCode:   "AED",
		IsBaseCurrency: true,
		ExchangeRate:   decimal.NewFromInt(1),
	}
	suite.mockRepo.On("ListAll", ctx).Return([]domain.CurrencyRate{base}, nil).Once()

	err := suite.service.SetCurrencyRateActive(ctx, baseID, false, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SetActive")
}

func (suite *CurrencyRateServiceTestSuite) TestSetCurrencyRateActive_DeactivateNonBase() {
	ctx := context.Background()
	rateID := uuid.NewString()
	updaterUserID := uuid.NewString()
	usd := domain.CurrencyRate{
		CurrencyRateID: rateID,
		CurrencyCode:   "USD",
		ExchangeRate:   decimal.RequireFromString("0.2723"),
	}
	suite.mockRepo.On("ListAll", ctx).Return([]domain.CurrencyRate{usd}, nil).Once()
	suite.mockRepo.On("SetActive", ctx, rateID, false, updaterUserID).Return(nil).Once()

	err := suite.service.SetCurrencyRateActive(ctx, rateID, false, updaterUserID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyRateServiceTestSuite) TestListCurrencyRates_NilBecomesEmpty() {
	ctx := context.Background()
	suite.mockRepo.On("ListAll", ctx).Return(nil, nil).Once()

	rates, err := suite.service.ListCurrencyRates(ctx)

	suite.Require().NoError(err)
	suite.NotNil(rates)
	suite.Empty(rates)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCurrencyRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyRateServiceTestSuite))
}
