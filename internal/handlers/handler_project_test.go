package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/oryxgate/realty_cms/internal/apperrors"
	"github.com/oryxgate/realty_cms/internal/core/domain"
	portsrepo "github.com/oryxgate/realty_cms/internal/core/ports/repositories"
	portssvc "github.com/oryxgate/realty_cms/internal/core/ports/services"
	"github.com/oryxgate/realty_cms/internal/dto"
	"github.com/oryxgate/realty_cms/internal/middleware"
	"github.com/oryxgate/realty_cms/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ProjectService ---
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) GetProjectBySlug(ctx context.Context, locale, slug string) (*domain.Project, error) {
	args := m.Called(ctx, locale, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) ListProjects(ctx context.Context, filter domain.ProjectFilter, page portsrepo.ListParams) ([]domain.Project, int, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Project), args.Int(1), args.Error(2)
}
func (m *MockProjectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, updaterUserID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) DeleteProject(ctx context.Context, projectID string, deleterUserID string) error {
	args := m.Called(ctx, projectID, deleterUserID)
	return args.Error(0)
}
func (m *MockProjectService) UpdateProjectStatus(ctx context.Context, projectID string, status string, updaterUserID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID, status, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) PublishProject(ctx context.Context, projectID string, updaterUserID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) UnpublishProject(ctx context.Context, projectID string, updaterUserID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) ToggleProjectFeatured(ctx context.Context, projectID string, updaterUserID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

var _ portssvc.ProjectSvcFacade = (*MockProjectService)(nil)

// --- Mock CurrencyConversionService ---
type MockConversionService struct {
	mock.Mock
}

func (m *MockConversionService) ConvertFromBase(ctx context.Context, baseAmount decimal.Decimal, targetCurrency string) decimal.Decimal {
	args := m.Called(ctx, baseAmount, targetCurrency)
	return args.Get(0).(decimal.Decimal)
}
func (m *MockConversionService) ConvertToBase(ctx context.Context, amount decimal.Decimal, sourceCurrency string) decimal.Decimal {
	args := m.Called(ctx, amount, sourceCurrency)
	return args.Get(0).(decimal.Decimal)
}
func (m *MockConversionService) GetExchangeRate(ctx context.Context, currencyCode string) (*decimal.Decimal, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*decimal.Decimal), args.Error(1)
}
func (m *MockConversionService) GetBaseCurrencyCode(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}
func (m *MockConversionService) FormatPrice(ctx context.Context, amount decimal.Decimal, currencyCode string) string {
	args := m.Called(ctx, amount, currencyCode)
	return args.String(0)
}
func (m *MockConversionService) ListActiveCurrencies(ctx context.Context) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Error(1)
}

var _ portssvc.CurrencyConversionSvc = (*MockConversionService)(nil)

// --- Mock AreaUnitConversionService ---
type MockAreaConversionService struct {
	mock.Mock
}

func (m *MockAreaConversionService) ConvertFromBase(areaSqm decimal.Decimal, targetUnit string) decimal.Decimal {
	args := m.Called(areaSqm, targetUnit)
	return args.Get(0).(decimal.Decimal)
}
func (m *MockAreaConversionService) ConvertToBase(area decimal.Decimal, sourceUnit string) decimal.Decimal {
	args := m.Called(area, sourceUnit)
	return args.Get(0).(decimal.Decimal)
}
func (m *MockAreaConversionService) IsValidUnit(unit string) bool {
	args := m.Called(unit)
	return args.Bool(0)
}
func (m *MockAreaConversionService) FormatArea(areaSqm decimal.Decimal, unit string) string {
	args := m.Called(areaSqm, unit)
	return args.String(0)
}
func (m *MockAreaConversionService) SupportedUnits() map[domain.AreaUnit]string {
	args := m.Called()
	return args.Get(0).(map[domain.AreaUnit]string)
}

var _ portssvc.AreaUnitConversionSvc = (*MockAreaConversionService)(nil)

// --- Test Suite ---
type ProjectHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockProjects *MockProjectService
	mockConv     *MockConversionService
	mockAreaConv *MockAreaConversionService
	jwtSecret    string
}

func (suite *ProjectHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "cms-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ProjectHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	cfg := &config.Config{
		JWTSecret:        suite.jwtSecret,
		AvailableLocales: []string{"en", "ar"},
		DefaultLocale:    "en",
		BaseCurrencyCode: "AED",
		DefaultAreaUnit:  "sqm",
	}

	suite.mockProjects = new(MockProjectService)
	suite.mockConv = new(MockConversionService)
	suite.mockAreaConv = new(MockAreaConversionService)

	public := suite.router.Group("/api/v1", middleware.DisplayContext(cfg))
	registerPublicProjectRoutes(public, suite.mockProjects, suite.mockConv, suite.mockAreaConv)

	admin := suite.router.Group("/api/v1/admin", middleware.AuthMiddleware(cfg.JWTSecret), middleware.DisplayContext(cfg))
	registerAdminProjectRoutes(admin, suite.mockProjects, suite.mockConv, suite.mockAreaConv)
}

func (suite *ProjectHandlerTestSuite) sampleProject(status domain.Status) *domain.Project {
	return &domain.Project{
		ProjectID: uuid.NewString(),
		Name:      domain.Localized{"en": "Luxury Villa", "ar": "فيلا فاخرة"},
		Slug:      domain.Localized{"en": "luxury-villa", "ar": "fyla-fakhr"},
		PriceAED:  decimal.RequireFromString("1000000"),
		AreaSqm:   decimal.RequireFromString("100"),
		Status:    status,
		AuditFields: domain.AuditFields{
			CreatedAt:     time.Now(),
			LastUpdatedAt: time.Now(),
		},
	}
}

// --- Test Cases ---

func (suite *ProjectHandlerTestSuite) TestGetProjectBySlug_ConvertsForDisplay() {
	project := suite.sampleProject(domain.StatusPublished)

	suite.mockProjects.On("GetProjectBySlug",
		mock.AnythingOfType("*context.valueCtx"), "ar", "fyla-fakhr",
	).Return(project, nil).Once()
	suite.mockConv.On("ConvertFromBase",
		mock.AnythingOfType("*context.valueCtx"), project.PriceAED, "USD",
	).Return(decimal.RequireFromString("272300.00")).Once()
	suite.mockAreaConv.On("ConvertFromBase",
		project.AreaSqm, "sqft",
	).Return(decimal.RequireFromString("1076.40")).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/projects/fyla-fakhr?locale=ar&currency=usd&unit=sqft", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ProjectResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(project.ProjectID, body.ProjectID)
	suite.Equal("فيلا فاخرة", body.Name)
	suite.Equal("fyla-fakhr", body.Slug)
	suite.Equal("USD", body.Pricing.Currency)
	suite.InDelta(272300.00, body.Pricing.Price, 0.001)
	suite.InDelta(1000000, body.Pricing.BasePriceAED, 0.001)
	suite.Equal("sqft", body.Area.Unit)
	suite.InDelta(1076.40, body.Area.Value, 0.001)

	suite.mockProjects.AssertExpectations(suite.T())
	suite.mockConv.AssertExpectations(suite.T())
	suite.mockAreaConv.AssertExpectations(suite.T())
}

func (suite *ProjectHandlerTestSuite) TestGetProjectBySlug_DraftHiddenFromPublic() {
	project := suite.sampleProject(domain.StatusDraft)

	suite.mockProjects.On("GetProjectBySlug",
		mock.AnythingOfType("*context.valueCtx"), "en", "luxury-villa",
	).Return(project, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/projects/luxury-villa", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "Resource not found")
	suite.mockConv.AssertNotCalled(suite.T(), "ConvertFromBase")
}

func (suite *ProjectHandlerTestSuite) TestGetProjectBySlug_NotFound() {
	suite.mockProjects.On("GetProjectBySlug",
		mock.AnythingOfType("*context.valueCtx"), "en", "no-such-slug",
	).Return(nil, fmt.Errorf("project no-such-slug: %w", apperrors.ErrNotFound)).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/projects/no-such-slug", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestListPublishedProjects_ForcesPublishedFilter() {
	project := suite.sampleProject(domain.StatusPublished)

	suite.mockProjects.On("ListProjects",
		mock.AnythingOfType("*context.valueCtx"),
		mock.MatchedBy(func(f domain.ProjectFilter) bool {
			return f.Status != nil && *f.Status == domain.StatusPublished
		}),
		portsrepo.ListParams{Limit: 20, Offset: 0},
	).Return([]domain.Project{*project}, 1, nil).Once()
	suite.mockConv.On("ConvertFromBase",
		mock.AnythingOfType("*context.valueCtx"), project.PriceAED, "AED",
	).Return(project.PriceAED).Once()
	suite.mockAreaConv.On("ConvertFromBase",
		project.AreaSqm, "sqm",
	).Return(project.AreaSqm).Once()

	// Even an explicit draft filter must not leak unpublished records.
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/projects?status=draft", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ListResponse[dto.ProjectResponse]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Data, 1)
	suite.Equal(1, body.Meta.Total)
	suite.Equal("Luxury Villa", body.Data[0].Name)

	suite.mockProjects.AssertExpectations(suite.T())
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_RequiresToken() {
	body := strings.NewReader(`{"name": "Luxury Villa"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/admin/projects", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockProjects.AssertNotCalled(suite.T(), "CreateProject")
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_Success() {
	userID := uuid.NewString()
	project := suite.sampleProject(domain.StatusDraft)

	suite.mockProjects.On("CreateProject",
		mock.AnythingOfType("*context.valueCtx"),
		mock.MatchedBy(func(req dto.CreateProjectRequest) bool {
			name := req.Name.Localized([]string{"en", "ar"})
			return name["en"] == "Luxury Villa" && name["ar"] == "Luxury Villa"
		}),
		userID,
	).Return(project, nil).Once()
	suite.mockConv.On("ConvertFromBase",
		mock.AnythingOfType("*context.valueCtx"), project.PriceAED, "AED",
	).Return(project.PriceAED).Once()
	suite.mockAreaConv.On("ConvertFromBase",
		project.AreaSqm, "sqm",
	).Return(project.AreaSqm).Once()

	body := strings.NewReader(`{"name": "Luxury Villa", "price_aed": "1000000", "area_sqm": "100"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/admin/projects", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockProjects.AssertExpectations(suite.T())
}

func (suite *ProjectHandlerTestSuite) TestUpdateProjectStatus_InvalidStatus() {
	userID := uuid.NewString()
	projectID := uuid.NewString()

	suite.mockProjects.On("UpdateProjectStatus",
		mock.AnythingOfType("*context.valueCtx"), projectID, "archived", userID,
	).Return(nil, fmt.Errorf("%w: invalid status %q", apperrors.ErrValidation, "archived")).Once()

	body := strings.NewReader(`{"status": "archived"}`)
	req, _ := http.NewRequest(http.MethodPatch, "/api/v1/admin/projects/"+projectID+"/status", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "invalid status")
	suite.mockProjects.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestProjectHandler(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
