package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/caixaflow/cash_flow_app/internal/apperrors"
	"github.com/caixaflow/cash_flow_app/internal/core/domain"
	"github.com/caixaflow/cash_flow_app/internal/core/ledger"
	portssvc "github.com/caixaflow/cash_flow_app/internal/core/ports/services"
	"github.com/caixaflow/cash_flow_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockBalanceRepo *MockBalanceRepository
	service         portssvc.ReportingSvcFacade
	userID          string
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockBalanceRepo = new(MockBalanceRepository)
	suite.service = services.NewReportingService(suite.mockTxnRepo, suite.mockBalanceRepo)
	suite.userID = uuid.NewString()
}

func (suite *ReportingServiceTestSuite) income(amount, date string, method domain.PaymentMethod) domain.Transaction {
	d, err := time.Parse("2006-01-02", date)
	suite.Require().NoError(err)
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        suite.userID,
		Type:          domain.Income,
		Amount:        decimal.RequireFromString(amount),
		Description:   "entrada",
		Date:          d,
		Income:        &domain.IncomeDetails{PaymentMethod: method},
	}
}

func (suite *ReportingServiceTestSuite) expense(amount, date string, category domain.ExpenseCategory) domain.Transaction {
	d, err := time.Parse("2006-01-02", date)
	suite.Require().NoError(err)
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        suite.userID,
		Type:          domain.Expense,
		Amount:        decimal.RequireFromString(amount),
		Description:   "saida",
		Date:          d,
		Expense:       &domain.ExpenseDetails{Category: category},
	}
}

// --- GetOverview Tests ---
func (suite *ReportingServiceTestSuite) TestGetOverview_TotalsAndMonthOrder() {
	ctx := context.Background()
	txns := []domain.Transaction{
		suite.income("1000.00", "2025-05-05", domain.MethodPix),
		suite.expense("200.00", "2025-05-20", domain.CategoryVariable),
		suite.income("500.00", "2025-06-10", domain.MethodCash),
	}
	initial := &domain.InitialBalance{UserID: suite.userID, Amount: decimal.RequireFromString("100.00")}

	// errgroup derives a child context, so match any ctx.
	suite.mockBalanceRepo.On("FindInitialBalanceByUser", mock.Anything, suite.userID).
		Return(initial, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsByUser", mock.Anything, suite.userID).
		Return(txns, nil).Once()

	resp, err := suite.service.GetOverview(ctx, suite.userID, ledger.PeriodAll)

	suite.Require().NoError(err)
	suite.True(resp.Summary.Income.Equal(decimal.RequireFromString("1500.00")))
	suite.True(resp.Summary.Expenses.Equal(decimal.RequireFromString("200.00")))
	suite.True(resp.Summary.CurrentBalance.Equal(decimal.RequireFromString("1400.00")))

	// Months come back most recent first.
	suite.Require().Len(resp.Months, 2)
	suite.Equal("2025-06", resp.Months[0].Month)
	suite.Equal("2025-05", resp.Months[1].Month)
	suite.True(resp.Months[0].Closing.Equal(decimal.RequireFromString("1400.00")))
	suite.True(resp.Months[1].Opening.Equal(decimal.RequireFromString("100.00")))

	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockBalanceRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetOverview_BalanceFailureDegradesToZero() {
	ctx := context.Background()
	txns := []domain.Transaction{
		suite.income("300.00", "2025-06-01", domain.MethodDebitCard),
	}

	suite.mockBalanceRepo.FindInitialBalanceByUserFn = func(ctx context.Context, userID string) (*domain.InitialBalance, error) {
		return nil, assert.AnError
	}
	suite.mockTxnRepo.FindTransactionsByUserFn = func(ctx context.Context, userID string) ([]domain.Transaction, error) {
		return txns, nil
	}

	resp, err := suite.service.GetOverview(ctx, suite.userID, ledger.PeriodAll)

	suite.Require().NoError(err)
	suite.True(resp.Summary.CurrentBalance.Equal(decimal.RequireFromString("300.00")))
}

func (suite *ReportingServiceTestSuite) TestGetOverview_TransactionFailureIsFatal() {
	ctx := context.Background()

	suite.mockBalanceRepo.FindInitialBalanceByUserFn = func(ctx context.Context, userID string) (*domain.InitialBalance, error) {
		return &domain.InitialBalance{UserID: suite.userID, Amount: decimal.Zero}, nil
	}
	suite.mockTxnRepo.FindTransactionsByUserFn = func(ctx context.Context, userID string) ([]domain.Transaction, error) {
		return nil, assert.AnError
	}

	resp, err := suite.service.GetOverview(ctx, suite.userID, ledger.PeriodAll)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *ReportingServiceTestSuite) TestGetOverview_PeriodFilterApplied() {
	ctx := context.Background()
	old := suite.income("9999.00", "2020-01-01", domain.MethodPix)
	recent := suite.income("50.00", time.Now().UTC().Format("2006-01-02"), domain.MethodPix)

	suite.mockBalanceRepo.FindInitialBalanceByUserFn = func(ctx context.Context, userID string) (*domain.InitialBalance, error) {
		return &domain.InitialBalance{UserID: suite.userID, Amount: decimal.Zero}, nil
	}
	suite.mockTxnRepo.FindTransactionsByUserFn = func(ctx context.Context, userID string) ([]domain.Transaction, error) {
		return []domain.Transaction{old, recent}, nil
	}

	resp, err := suite.service.GetOverview(ctx, suite.userID, ledger.PeriodLastWeek)

	suite.Require().NoError(err)
	// Only today's income survives the filter; the boundary is inclusive so a
	// date-only "today" is still inside the window.
	suite.True(resp.Summary.Income.Equal(decimal.RequireFromString("50.00")))

	// The running ledger ignores the period: all months stay visible and the
	// current month opens on top of the full history, not the raw initial.
	suite.Require().Len(resp.Months, 2)
	suite.Equal("2020-01", resp.Months[1].Month)
	suite.True(resp.Months[0].Opening.Equal(decimal.RequireFromString("9999.00")))
	suite.True(resp.Months[0].Closing.Equal(decimal.RequireFromString("10049.00")))
}

// --- GetMonthDetail Tests ---
func (suite *ReportingServiceTestSuite) TestGetMonthDetail_Groupings() {
	ctx := context.Background()
	txns := []domain.Transaction{
		suite.income("1000.00", "2025-06-05", domain.MethodPix),
		suite.expense("300.00", "2025-06-12", domain.CategoryFixed),
		suite.expense("150.00", "2025-06-15", domain.CategoryVariable),
		suite.income("80.00", "2025-07-01", domain.MethodCash), // other month, excluded
	}

	suite.mockTxnRepo.On("FindTransactionsByUser", ctx, suite.userID).Return(txns, nil).Once()

	resp, err := suite.service.GetMonthDetail(ctx, suite.userID, "2025-06")

	suite.Require().NoError(err)
	suite.Equal("2025-06", resp.Month)
	suite.True(resp.IncomeTotal.Equal(decimal.RequireFromString("1000.00")))
	suite.True(resp.ExpenseTotal.Equal(decimal.RequireFromString("450.00")))
	suite.True(resp.Balance.Equal(decimal.RequireFromString("550.00")))
	suite.Len(resp.IncomeByMethod["pix"].Transactions, 1)
	suite.Len(resp.FixedExpenses.Transactions, 1)
	suite.Len(resp.VariableExpenses.Transactions, 1)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetMonthDetail_BadMonthFormat() {
	ctx := context.Background()

	resp, err := suite.service.GetMonthDetail(ctx, suite.userID, "junho/2025")

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
