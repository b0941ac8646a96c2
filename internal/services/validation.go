package services

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/paystream/txprocessor/internal/models"
)

// ErrorResponse represents error response structure
type ErrorResponse struct {
	Error   string            `json:"error"`             // Error message
	Details map[string]string `json:"details,omitempty"` // Validation details
}

// ValidationHelper provides shared validation functionality
type ValidationHelper struct {
	validator *validator.Validate
}

// NewValidationHelper creates a new validation helper with the action shape
// rules registered.
func NewValidationHelper() *ValidationHelper {
	v := validator.New()
	v.RegisterStructValidation(actionShape, models.Action{})
	return &ValidationHelper{
		validator: v,
	}
}

// ValidateStruct validates a struct and returns validation errors
func (vh *ValidationHelper) ValidateStruct(s any) error {
	return vh.validator.Struct(s)
}

// actionShape enforces the per-type amount contract: deposits and withdrawals
// must carry a positive amount, dispute-lifecycle actions must carry none.
func actionShape(sl validator.StructLevel) {
	action := sl.Current().Interface().(models.Action)

	switch action.Type {
	case models.ActionDeposit, models.ActionWithdrawal:
		if action.Amount == nil {
			sl.ReportError(action.Amount, "Amount", "Amount", "required", "")
		} else if !action.Amount.IsPositive() {
			sl.ReportError(action.Amount, "Amount", "Amount", "gt", "0")
		}
	case models.ActionDispute, models.ActionResolve, models.ActionChargeback:
		if action.Amount != nil {
			sl.ReportError(action.Amount, "Amount", "Amount", "excluded", "")
		}
	default:
		sl.ReportError(action.Type, "Type", "Type", "oneof", "")
	}
}

// SendErrorResponse sends a JSON error response
func SendErrorResponse(w http.ResponseWriter, message string, statusCode int, validationErr error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResp := ErrorResponse{Error: message}
	if validationErr != nil {
		errorResp.Details = make(map[string]string)
		for _, err := range validationErr.(validator.ValidationErrors) {
			errorResp.Details[err.Field()] = fmt.Sprintf("Field Validation Failed on '%s' tag", err.Tag())
		}
	}

	json.NewEncoder(w).Encode(errorResp)
}
