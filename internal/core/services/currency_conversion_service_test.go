package services_test

import (
	"context"
	"testing"

	"github.com/oryxgate/realty_cms/internal/apperrors"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	"github.com/oryxgate/realty_cms/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyRateReader ---
type MockCurrencyRateReader struct {
	mock.Mock
}

func (m *MockCurrencyRateReader) FindActiveByCode(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRateReader) FindBaseCurrency(ctx context.Context) (*domain.CurrencyRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRateReader) ListActive(ctx context.Context) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRateReader) ListAll(ctx context.Context) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Error(1)
}

// --- Test Suite ---
type CurrencyConversionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRateReader
	service  *services.CurrencyConversionService
}

func (suite *CurrencyConversionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRateReader)
	suite.service = services.NewCurrencyConversionService(suite.mockRepo, "AED", nil)
}

func (suite *CurrencyConversionServiceTestSuite) usdRate(rate string) *domain.CurrencyRate {
	return &domain.CurrencyRate{
		CurrencyCode: "USD",
		CurrencyName: "US Dollar",
		Symbol:       "$",
		ExchangeRate: decimal.RequireFromString(rate),
		IsActive:     true,
	}
}

// --- Test Cases ---

func (suite *CurrencyConversionServiceTestSuite) TestConvertFromBase_Success() {
	ctx := context.Background()
	suite.mockRepo.On("FindActiveByCode", ctx, "USD").Return(suite.usdRate("0.2723"), nil).Once()

	result := suite.service.ConvertFromBase(ctx, decimal.NewFromInt(1000), "USD")

	suite.True(result.Equal(decimal.RequireFromString("272.30")), "got %s", result)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyConversionServiceTestSuite) TestConvertFromBase_LowercaseCodeMatches() {
	ctx := context.Background()
	suite.mockRepo.On("FindActiveByCode", ctx, "USD").Return(suite.usdRate("0.2723"), nil).Once()

	result := suite.service.ConvertFromBase(ctx, decimal.NewFromInt(1000), "usd")

	suite.True(result.Equal(decimal.RequireFromString("272.30")), "got %s", result)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyConversionServiceTestSuite) TestConvertFromBase_UnknownCurrencyFailsOpen() {
	ctx := context.Background()
	suite.mockRepo.On("FindActiveByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	amount := decimal.NewFromInt(1000)
	result := suite.service.ConvertFromBase(ctx, amount, "XXX")

	suite.True(result.Equal(amount), "unknown currency must return the base amount unchanged")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyConversionServiceTestSuite) TestConvertFromBase_RepoErrorFailsOpen() {
	ctx := context.Background()
	suite.mockRepo.On("FindActiveByCode", ctx, "USD").Return(nil, assert.AnError).Once()

	amount := decimal.NewFromInt(500)
	result := suite.service.ConvertFromBase(ctx, amount, "USD")

	suite.True(result.Equal(amount), "infrastructure errors must not break price display")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyConversionServiceTestSuite) TestConvertToBase_Success() {
	ctx := context.Background()
	suite.mockRepo.On("FindActiveByCode", ctx, "USD").Return(suite.usdRate("0.2723"), nil).Once()

	result := suite.service.ConvertToBase(ctx, decimal.RequireFromString("272.30"), "USD")

	suite.True(result.Equal(decimal.RequireFromString("1000.00")), "got %s", result)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyConversionServiceTestSuite) TestConvertToBase_ZeroRateFailsOpen() {
	ctx := context.Background()
	suite.mockRepo.On("FindActiveByCode", ctx, "USD").Return(suite.usdRate("0"), nil).Once()

	amount := decimal.NewFromInt(100)
	result := suite.service.ConvertToBase(ctx, amount, "USD")

	suite.True(result.Equal(amount))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyConversionServiceTestSuite) TestGetExchangeRate_NotFoundReturnsNil() {
	ctx := context.Background()
	suite.mockRepo.On("FindActiveByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	rate, err := suite.service.GetExchangeRate(ctx, "xxx")

	suite.Require().NoError(err)
	suite.Nil(rate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyConversionServiceTestSuite) TestGetBaseCurrencyCode_FromRateTable() {
	ctx := context.Background()
	base := &domain.CurrencyRate{CurrencyCode: "AED", IsBaseCurrency: true, ExchangeRate: decimal.NewFromInt(1)}
	suite.mockRepo.On("FindBaseCurrency", ctx).Return(base, nil).Once()

	suite.Equal("AED", suite.service.GetBaseCurrencyCode(ctx))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyConversionServiceTestSuite) TestGetBaseCurrencyCode_FallbackWhenNoBaseRow() {
	ctx := context.Background()
	suite.mockRepo.On("FindBaseCurrency", ctx).Return(nil, apperrors.ErrNotFound).Once()

	suite.Equal("AED", suite.service.GetBaseCurrencyCode(ctx))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyConversionServiceTestSuite) TestFormatPrice_WithSymbol() {
	ctx := context.Background()
	suite.mockRepo.On("FindActiveByCode", ctx, "USD").Return(suite.usdRate("0.2723"), nil).Once()

	suite.Equal("$ 272,300.00", suite.service.FormatPrice(ctx, decimal.NewFromInt(272300), "USD"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyConversionServiceTestSuite) TestFormatPrice_UnknownCurrencyOmitsSymbol() {
	ctx := context.Background()
	suite.mockRepo.On("FindActiveByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	suite.Equal("1,234.50", suite.service.FormatPrice(ctx, decimal.RequireFromString("1234.5"), "XXX"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyConversionServiceTestSuite) TestListActiveCurrencies() {
	ctx := context.Background()
	rates := []domain.CurrencyRate{*suite.usdRate("0.2723")}
	suite.mockRepo.On("ListActive", ctx).Return(rates, nil).Once()

	result, err := suite.service.ListActiveCurrencies(ctx)

	suite.Require().NoError(err)
	suite.Len(result, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCurrencyConversionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyConversionServiceTestSuite))
}
