// Package apperror defines the error taxonomy shared by the services and
// controllers, plus helpers to translate validator errors into field messages.
package apperror

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Kind classifies an error so controllers can pick a response status.
type Kind int

const (
	// KindConfiguration means a required setting is missing or malformed.
	KindConfiguration Kind = iota + 1
	// KindDataUnavailable means the backing store is unreachable or returned
	// unusable data.
	KindDataUnavailable
	// KindValidation means the user input was rejected; nothing was persisted.
	KindValidation
	// KindPersistence means validation passed but the insert failed.
	KindPersistence
)

// Error carries a user-facing message together with its Kind.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Configuration reports a missing or invalid setting.
func Configuration(msg string) error {
	return &Error{Kind: KindConfiguration, Msg: msg}
}

// DataUnavailable reports an unreachable or unusable backing store.
func DataUnavailable(msg string, err error) error {
	return &Error{Kind: KindDataUnavailable, Msg: msg, Err: err}
}

// Validation reports rejected user input.
func Validation(msg string) error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// Persistence reports a failed insert after validation passed.
func Persistence(msg string, err error) error {
	return &Error{Kind: KindPersistence, Msg: msg, Err: err}
}

// KindOf extracts the Kind from err, or 0 when err is not an apperror.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return 0
}

// Message returns the user-facing message without the wrapped cause.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Msg
	}
	return err.Error()
}

var errRequired = errors.New("is required")

var customErrors = map[string]error{
	"addItemRequest.Time.required":              errRequired,
	"addItemRequest.FoodProduct.required":       errRequired,
	"addItemRequest.AmountValue.required":       errRequired,
	"addItemRequest.AmountUnit.required":        errRequired,
	"submitMealRequest.PlayerID.required":       errRequired,
	"submitMealRequest.Date.required":           errRequired,
	"submitMealRequest.DayType.required":        errRequired,
	"submitMealRequest.MealType.required":       errRequired,
	"submitWeightRequest.PlayerID.required":     errRequired,
	"submitWeightRequest.Date.required":         errRequired,
	"submitWeightRequest.DayType.required":      errRequired,
	"submitWeightRequest.WeightBefore.required": errRequired,
	"submitWeightRequest.WeightAfter.required":  errRequired,
}

// CustomValidationError converts validator errors into a standardized
// field-to-message list for the response body.
func CustomValidationError(err error) []map[string]string {
	errList := make([]map[string]string, 0)

	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		for _, e := range validationErr {
			field := e.StructNamespace()
			key := field + "." + e.Tag()

			errMsg := fmt.Sprintf("%s is invalid", field)
			if v, ok := customErrors[key]; ok {
				errMsg = v.Error()
			}

			errList = append(errList, map[string]string{e.Field(): errMsg})
		}
	}
	return errList
}
