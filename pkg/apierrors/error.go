package apierrors

import (
	"fmt"

	"studytime/pkg/translator"
)

// JsonErr represents the JSON structure for apierrors.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

// Err represents the error with a code and message.
type Err struct {
	Code    int    `json:"code"`
	Key     string `json:"key"`
	Message string `json:"message"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

// CreateError generates a JsonErr with a translated message.
func CreateError(code int, msgKey string, lang string) JsonErr {
	return JsonErr{ErrDetails: Err{Code: code, Key: msgKey, Message: GetTransErrorMsg(msgKey, lang)}}
}

// GetTransErrorMsg retrieves the translated error message, or msgKey when none exists.
func GetTransErrorMsg(msgKey string, lang string) string {
	return translator.Localize(msgKey, lang, nil)
}
