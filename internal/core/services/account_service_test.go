package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/contalibre/contalibre/internal/apperrors"
	"github.com/contalibre/contalibre/internal/core/domain"
	portssvc "github.com/contalibre/contalibre/internal/core/ports/services"
	"github.com/contalibre/contalibre/internal/core/services"
	"github.com/contalibre/contalibre/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_NormalizesName() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "  caja  ",
		AccountType: domain.Asset,
	}

	saved := domain.Account{AccountID: 1, Name: "CAJA", AccountType: domain.Asset}
	suite.mockAccountRepo.On("SaveAccount", ctx, domain.Account{Name: "CAJA", AccountType: domain.Asset}).Return(&saved, nil).Once()

	created, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal("CAJA", created.Name)
	suite.Equal(int64(1), created.AccountID)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_EmptyName() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "   ",
		AccountType: domain.Asset,
	}

	_, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidType() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "CAJA",
		AccountType: domain.AccountType("BANANA"),
	}

	_, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateName() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "Caja",
		AccountType: domain.Asset,
	}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil, apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Success() {
	ctx := context.Background()
	account := domain.Account{AccountID: 7, Name: "CAJA", AccountType: domain.Asset}

	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(7)).Return(&account, nil).Once()
	suite.mockAccountRepo.On("DeleteAccount", ctx, int64(7)).Return(nil).Once()

	err := suite.service.DeleteAccount(ctx, 7)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_StillReferenced() {
	ctx := context.Background()
	account := domain.Account{AccountID: 7, Name: "CAJA", AccountType: domain.Asset}

	// The repository rechecks references inside the delete transaction, so a
	// conflict surfaces even for an entry recorded after the lookup.
	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(7)).Return(&account, nil).Once()
	suite.mockAccountRepo.On("DeleteAccount", ctx, int64(7)).
		Return(fmt.Errorf("%w: account is referenced by %d journal entries", apperrors.ErrConflict, 3)).Once()

	err := suite.service.DeleteAccount(ctx, 7)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Contains(err.Error(), "3 journal entries")
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_NotFound() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteAccount(ctx, 99)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestResolveIDByName_Normalizes() {
	ctx := context.Background()
	account := domain.Account{AccountID: 4, Name: "VENTAS", AccountType: domain.Revenue}

	suite.mockAccountRepo.On("FindAccountByName", ctx, "VENTAS").Return(&account, nil).Once()

	id, err := suite.service.ResolveIDByName(ctx, "  ventas ")

	suite.Require().NoError(err)
	suite.Equal(int64(4), id)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestResolveIDByName_NotFound() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByName", ctx, "NADA").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ResolveIDByName(ctx, "nada")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestListAccounts_Success() {
	ctx := context.Background()
	accounts := []domain.Account{
		{AccountID: 1, Name: "CAJA", AccountType: domain.Asset},
		{AccountID: 2, Name: "VENTAS", AccountType: domain.Revenue},
	}

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(accounts, nil).Once()

	listed, err := suite.service.ListAccounts(ctx)

	suite.Require().NoError(err)
	suite.Len(listed, 2)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_RepoError() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(nil, assert.AnError).Once()

	_, err := suite.service.ListAccounts(ctx)

	suite.Require().Error(err)
	suite.Contains(err.Error(), assert.AnError.Error())
}

// --- Run Test Suite ---
func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
