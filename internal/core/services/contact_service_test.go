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

// --- Mock ContactRepository ---
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockContactRepository) ListContacts(ctx context.Context, filter portsrepo.ContactFilter, page portsrepo.ListParams) ([]domain.Contact, int, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Contact), args.Int(1), args.Error(2)
}

func (m *MockContactRepository) SaveContact(ctx context.Context, contact domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) UpdateContactStatus(ctx context.Context, contactID string, status domain.ContactStatus, updatedBy string) error {
	args := m.Called(ctx, contactID, status, updatedBy)
	return args.Error(0)
}

func (m *MockContactRepository) DeleteContact(ctx context.Context, contactID string, deletedBy string) error {
	args := m.Called(ctx, contactID, deletedBy)
	return args.Error(0)
}

// --- Test Suite ---
type ContactServiceTestSuite struct {
	suite.Suite
	mockRepo *MockContactRepository
	service  *services.ContactService
}

func (suite *ContactServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockContactRepository)
	suite.service = services.NewContactService(suite.mockRepo)
}

func (suite *ContactServiceTestSuite) submitReq(payload string) dto.CreateContactRequest {
	var req dto.CreateContactRequest
	suite.Require().NoError(json.Unmarshal([]byte(payload), &req))
	return req
}

// --- Test Cases ---

func (suite *ContactServiceTestSuite) TestSubmitContact_StartsAsNewAndKeepsIP() {
	ctx := context.Background()
	req := suite.submitReq(`{"name": "Omar", "email": "omar@example.com", "subject": "Viewing", "message": "Is unit 4B still available?"}`)

	suite.mockRepo.On("SaveContact", ctx, mock.MatchedBy(func(ct domain.Contact) bool {
		return ct.Status == domain.ContactStatusNew &&
			ct.IPAddress == "203.0.113.7" &&
			ct.Email == "omar@example.com" &&
			ct.CreatedBy == ""
	})).Return(nil).Once()

	contact, err := suite.service.SubmitContact(ctx, req, "203.0.113.7")

	suite.Require().NoError(err)
	suite.Equal(domain.ContactStatusNew, contact.Status)
	suite.Equal("203.0.113.7", contact.IPAddress)
	suite.NotEmpty(contact.ContactID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ContactServiceTestSuite) TestUpdateContactStatus_RejectsUnknownStatus() {
	ctx := context.Background()

	contact, err := suite.service.UpdateContactStatus(ctx, uuid.NewString(), "archived", uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(contact)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateContactStatus")
}

func (suite *ContactServiceTestSuite) TestMarkContactRead() {
	ctx := context.Background()
	contactID := uuid.NewString()
	adminID := uuid.NewString()
	existing := &domain.Contact{ContactID: contactID, Status: domain.ContactStatusNew}

	suite.mockRepo.On("FindContactByID", ctx, contactID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateContactStatus", ctx, contactID, domain.ContactStatusRead, adminID).Return(nil).Once()

	contact, err := suite.service.MarkContactRead(ctx, contactID, adminID)

	suite.Require().NoError(err)
	suite.Equal(domain.ContactStatusRead, contact.Status)
	suite.Equal(adminID, contact.LastUpdatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ContactServiceTestSuite) TestMarkContactClosed_NotFound() {
	ctx := context.Background()
	contactID := uuid.NewString()

	suite.mockRepo.On("FindContactByID", ctx, contactID).Return(nil, apperrors.ErrNotFound).Once()

	contact, err := suite.service.MarkContactClosed(ctx, contactID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(contact)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateContactStatus")
}

func TestContactServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContactServiceTestSuite))
}
