package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/caixaflow/cash_flow_app/internal/apperrors"
	"github.com/caixaflow/cash_flow_app/internal/core/domain"
	portssvc "github.com/caixaflow/cash_flow_app/internal/core/ports/services"
	"github.com/caixaflow/cash_flow_app/internal/core/services"
	"github.com/caixaflow/cash_flow_app/internal/dto"
	"github.com/caixaflow/cash_flow_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository (based on transactionService usage) ---
type MockTransactionRepository struct {
	mock.Mock
	SaveTransactionFn        func(ctx context.Context, txn domain.Transaction) error
	FindTransactionByIDFn    func(ctx context.Context, transactionID string) (*domain.Transaction, error)
	FindTransactionsByUserFn func(ctx context.Context, userID string) ([]domain.Transaction, error)
	ListTransactionsFn       func(ctx context.Context, userID string, limit int, fromDate time.Time, afterDate time.Time, afterCreatedAt time.Time) ([]domain.Transaction, error)
	UpdateTransactionFn      func(ctx context.Context, txn domain.Transaction) error
	DeleteTransactionFn      func(ctx context.Context, transactionID string) error
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	if m.SaveTransactionFn != nil {
		return m.SaveTransactionFn(ctx, txn)
	}
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	if m.FindTransactionByIDFn != nil {
		return m.FindTransactionByIDFn(ctx, transactionID)
	}
	args := m.Called(ctx, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	if m.FindTransactionsByUserFn != nil {
		return m.FindTransactionsByUserFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID string, limit int, fromDate time.Time, afterDate time.Time, afterCreatedAt time.Time) ([]domain.Transaction, error) {
	if m.ListTransactionsFn != nil {
		return m.ListTransactionsFn(ctx, userID, limit, fromDate, afterDate, afterCreatedAt)
	}
	args := m.Called(ctx, userID, limit, fromDate, afterDate, afterCreatedAt)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	if m.UpdateTransactionFn != nil {
		return m.UpdateTransactionFn(ctx, txn)
	}
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	if m.DeleteTransactionFn != nil {
		return m.DeleteTransactionFn(ctx, transactionID)
	}
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo *MockTransactionRepository
	service     portssvc.TransactionSvcFacade
	userID      string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo)
	suite.userID = uuid.NewString()
}

func strPtr(s string) *string { return &s }

// --- CreateTransaction Tests ---
func (suite *TransactionServiceTestSuite) TestCreateTransaction_Income() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:          "income",
		Amount:        decimal.RequireFromString("1500.50"),
		Description:   "Salario",
		Date:          "2025-06-05",
		PaymentMethod: strPtr("pix"),
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.UserID == suite.userID &&
			txn.Type == domain.Income &&
			txn.Income != nil && txn.Income.PaymentMethod == domain.MethodPix &&
			txn.Expense == nil &&
			txn.ReferenceMonth() == "2025-06"
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.True(txn.Amount.Equal(decimal.RequireFromString("1500.50")))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_FixedExpenseWithSubcategory() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:             "expense",
		Amount:           decimal.RequireFromString("120.00"),
		Description:      "Internet",
		Date:             "2025-06-10",
		Category:         strPtr("fixed"),
		FixedSubcategory: strPtr("internet"),
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.IsFixedExpense() &&
			txn.Expense.FixedSubcategory != nil && *txn.Expense.FixedSubcategory == "internet"
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.NotNil(txn)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ValidationFailures() {
	ctx := context.Background()
	base := dto.CreateTransactionRequest{
		Type:        "income",
		Amount:      decimal.RequireFromString("10"),
		Description: "ok",
		Date:        "2025-06-01",
	}

	testCases := []struct {
		name   string
		mutate func(r *dto.CreateTransactionRequest)
	}{
		{"zero amount", func(r *dto.CreateTransactionRequest) { r.Amount = decimal.Zero }},
		{"negative amount", func(r *dto.CreateTransactionRequest) { r.Amount = decimal.RequireFromString("-5") }},
		{"blank description", func(r *dto.CreateTransactionRequest) { r.Description = "   " }},
		{"bad date", func(r *dto.CreateTransactionRequest) { r.Date = "05/06/2025" }},
		{"unknown type", func(r *dto.CreateTransactionRequest) { r.Type = "transfer" }},
		{"unknown method", func(r *dto.CreateTransactionRequest) { r.PaymentMethod = strPtr("cheque") }},
		{"income with category", func(r *dto.CreateTransactionRequest) { r.Category = strPtr("fixed") }},
		{"expense without category", func(r *dto.CreateTransactionRequest) { r.Type = "expense" }},
		{"expense with method", func(r *dto.CreateTransactionRequest) {
			r.Type = "expense"
			r.Category = strPtr("variable")
			r.PaymentMethod = strPtr("pix")
		}},
		{"subcategory on variable expense", func(r *dto.CreateTransactionRequest) {
			r.Type = "expense"
			r.Category = strPtr("variable")
			r.FixedSubcategory = strPtr("internet")
		}},
	}

	for _, tc := range testCases {
		req := base
		tc.mutate(&req)
		txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)
		suite.Require().Error(err, tc.name)
		suite.Nil(txn, tc.name)
		suite.ErrorIs(err, apperrors.ErrValidation, tc.name)
	}
	// No repository call should have happened.
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

// --- GetTransactionByID Tests ---
func (suite *TransactionServiceTestSuite) TestGetTransactionByID_OtherUserObscured() {
	ctx := context.Background()
	txnID := uuid.NewString()
	stored := &domain.Transaction{TransactionID: txnID, UserID: uuid.NewString(), Type: domain.Income}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(stored, nil).Once()

	txn, err := suite.service.GetTransactionByID(ctx, suite.userID, txnID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

// --- ListTransactions Tests ---
func (suite *TransactionServiceTestSuite) TestListTransactions_FirstPageWithNextToken() {
	ctx := context.Background()
	limit := 2

	mkTxn := func(day int) domain.Transaction {
		return domain.Transaction{
			TransactionID: uuid.NewString(),
			UserID:        suite.userID,
			Type:          domain.Income,
			Amount:        decimal.RequireFromString("10"),
			Description:   "t",
			Date:          time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC),
			Income:        &domain.IncomeDetails{PaymentMethod: domain.MethodCash},
			AuditFields:   domain.AuditFields{CreatedAt: time.Date(2025, 6, day, 12, 0, 0, 0, time.UTC)},
		}
	}
	// Repo returns limit+1 rows, signalling another page exists.
	page := []domain.Transaction{mkTxn(30), mkTxn(20), mkTxn(10)}

	suite.mockTxnRepo.On("ListTransactions", ctx, suite.userID, limit+1, time.Time{}, time.Time{}, time.Time{}).
		Return(page, nil).Once()

	resp, err := suite.service.ListTransactions(ctx, suite.userID, dto.ListTransactionsParams{Limit: limit})

	suite.Require().NoError(err)
	suite.Len(resp.Transactions, limit)
	suite.Require().NotNil(resp.NextToken)

	// The token must resume after the last returned row.
	tokenDate, tokenCreatedAt, err := pagination.DecodeToken(*resp.NextToken)
	suite.Require().NoError(err)
	suite.True(tokenDate.Equal(page[limit-1].Date))
	suite.True(tokenCreatedAt.Equal(page[limit-1].CreatedAt))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_LastPageHasNoToken() {
	ctx := context.Background()

	suite.mockTxnRepo.On("ListTransactions", ctx, suite.userID, 21, time.Time{}, time.Time{}, time.Time{}).
		Return([]domain.Transaction{}, nil).Once()

	resp, err := suite.service.ListTransactions(ctx, suite.userID, dto.ListTransactionsParams{})

	suite.Require().NoError(err)
	suite.Empty(resp.Transactions)
	suite.Nil(resp.NextToken)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_PeriodNarrowsLowerBound() {
	ctx := context.Background()

	var gotFromDate time.Time
	suite.mockTxnRepo.ListTransactionsFn = func(_ context.Context, _ string, _ int, fromDate, _, _ time.Time) ([]domain.Transaction, error) {
		gotFromDate = fromDate
		return []domain.Transaction{}, nil
	}

	_, err := suite.service.ListTransactions(ctx, suite.userID, dto.ListTransactionsParams{Period: "last_week"})
	suite.Require().NoError(err)

	today := time.Now().UTC().Truncate(24 * time.Hour)
	suite.True(gotFromDate.Equal(today.AddDate(0, 0, -7)))
}

func (suite *TransactionServiceTestSuite) TestListTransactions_BadToken() {
	ctx := context.Background()

	resp, err := suite.service.ListTransactions(ctx, suite.userID, dto.ListTransactionsParams{NextToken: "not-base64!!"})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

// --- UpdateTransaction Tests ---
func (suite *TransactionServiceTestSuite) TestUpdateTransaction_DateChangeMovesReferenceMonth() {
	ctx := context.Background()
	txnID := uuid.NewString()
	stored := &domain.Transaction{
		TransactionID: txnID,
		UserID:        suite.userID,
		Type:          domain.Expense,
		Amount:        decimal.RequireFromString("80"),
		Description:   "Mercado",
		Date:          time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC),
		Expense:       &domain.ExpenseDetails{Category: domain.CategoryVariable},
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(stored, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.ReferenceMonth() == "2025-06" && txn.LastUpdatedBy == suite.userID
	})).Return(nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, suite.userID, txnID, dto.UpdateTransactionRequest{
		Date: strPtr("2025-06-01"),
	})

	suite.Require().NoError(err)
	suite.Equal("2025-06", txn.ReferenceMonth())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_CategoryToVariableDropsSubcategory() {
	ctx := context.Background()
	txnID := uuid.NewString()
	stored := &domain.Transaction{
		TransactionID: txnID,
		UserID:        suite.userID,
		Type:          domain.Expense,
		Amount:        decimal.RequireFromString("200"),
		Description:   "Energia",
		Date:          time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		Expense:       &domain.ExpenseDetails{Category: domain.CategoryFixed, FixedSubcategory: strPtr("energia")},
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(stored, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Expense.Category == domain.CategoryVariable && txn.Expense.FixedSubcategory == nil
	})).Return(nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, suite.userID, txnID, dto.UpdateTransactionRequest{
		Category: strPtr("variable"),
	})

	suite.Require().NoError(err)
	suite.Nil(txn.Expense.FixedSubcategory)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_MethodOnExpenseRejected() {
	ctx := context.Background()
	txnID := uuid.NewString()
	stored := &domain.Transaction{
		TransactionID: txnID,
		UserID:        suite.userID,
		Type:          domain.Expense,
		Amount:        decimal.RequireFromString("10"),
		Description:   "x",
		Date:          time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		Expense:       &domain.ExpenseDetails{Category: domain.CategoryVariable},
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(stored, nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, suite.userID, txnID, dto.UpdateTransactionRequest{
		PaymentMethod: strPtr("pix"),
	})

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

// --- DeleteTransaction Tests ---
func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Success() {
	ctx := context.Background()
	txnID := uuid.NewString()
	stored := &domain.Transaction{TransactionID: txnID, UserID: suite.userID, Type: domain.Income}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(stored, nil).Once()
	suite.mockTxnRepo.On("DeleteTransaction", ctx, txnID).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, txnID)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()
	txnID := uuid.NewString()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, txnID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
