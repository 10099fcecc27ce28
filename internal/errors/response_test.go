package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse() {
	response := NewErrorResponse(ExpenseNotFound)

	s.Require().NotNil(response)
	s.Equal("Expense not found", response.Error)
}

func (s *ResponseTestSuite) TestNewErrorResponseWithMessage() {
	response := NewErrorResponseWithMessage("amount must be positive")

	s.Require().NotNil(response)
	s.Equal("amount must be positive", response.Error)
}

func (s *ResponseTestSuite) TestWrapSystemError() {
	cause := errors.New("pq: connection refused")

	response, internal := WrapSystemError(cause)

	s.Require().NotNil(response)
	s.Equal("An unexpected error occurred", response.Error, "internal detail never reaches the client")
	s.Same(cause, internal)
}

func (s *ResponseTestSuite) TestToJSON() {
	response := NewErrorResponse(ValidationGeneral)

	data, err := response.ToJSON()

	s.NoError(err)
	s.JSONEq(`{"error":"Validation failed"}`, string(data))
}

func (s *ResponseTestSuite) TestString() {
	response := NewErrorResponseWithMessage("boom")

	s.Equal("error: boom", response.String())
}
