package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/avkarpov/currency_exchange_app/internal/apperrors"
	"github.com/avkarpov/currency_exchange_app/internal/core/domain"
	portssvc "github.com/avkarpov/currency_exchange_app/internal/core/ports/services"
	"github.com/avkarpov/currency_exchange_app/internal/dto"
	"github.com/avkarpov/currency_exchange_app/internal/handlers"
	"github.com/avkarpov/currency_exchange_app/internal/platform/config"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

type CurrencyHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockCurrencyService
}

func (suite *CurrencyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockCurrencyService)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &portssvc.ServiceContainer{
		Currency: suite.mockService,
	}, &config.Config{IsProduction: true})
}

func (suite *CurrencyHandlerTestSuite) TestListCurrencies() {
	suite.mockService.On("ListCurrencies", mock.Anything).
		Return([]domain.Currency{
			{CurrencyID: 1, Code: "USD", Name: "US Dollar", Sign: "$"},
		}, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/currencies", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal("USD", body[0].Code)
	suite.Equal(int64(1), body[0].ID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrency_NotFound() {
	suite.mockService.On("GetCurrencyByCode", mock.Anything, "GBP").
		Return(nil, apperrors.NewNotFoundError("currency GBP not found")).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/currency/GBP", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)

	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("currency GBP not found", body["message"])
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrency_ValidationError() {
	suite.mockService.On("GetCurrencyByCode", mock.Anything, "US").
		Return(nil, apperrors.NewValidationError("currency code must be 3 letters (A-Z only)")).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/currency/US", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestCreateCurrency_Created() {
	req := dto.CreateCurrencyRequest{Name: "Euro", Code: "EUR", Sign: "€"}
	created := domain.Currency{CurrencyID: 2, Code: "EUR", Name: "Euro", Sign: "€"}

	suite.mockService.On("CreateCurrency", mock.Anything, req).Return(&created, nil).Once()

	payload, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/currencies", bytes.NewReader(payload))
	httpReq.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(int64(2), body.ID)
	suite.Equal("EUR", body.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestCreateCurrency_Conflict() {
	req := dto.CreateCurrencyRequest{Name: "Euro", Code: "EUR", Sign: "€"}

	suite.mockService.On("CreateCurrency", mock.Anything, req).
		Return(nil, apperrors.NewConflictError("currency with code EUR already exists")).Once()

	payload, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/currencies", bytes.NewReader(payload))
	httpReq.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestCreateCurrency_MissingField() {
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/currencies",
		bytes.NewReader([]byte(`{"name":"Euro","code":"EUR"}`)))
	httpReq.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateCurrency")
}

func TestCurrencyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyHandlerTestSuite))
}
