// internal/common/errors/errors.go

// Package errors provides standardized error handling for the furnishing engine.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeRulesInvalid         ErrorCode = "RULES_INVALID"
	ErrCodeRulesSchemaViolation ErrorCode = "RULES_SCHEMA_VIOLATION"

	ErrCodeCatalogLoadFailed    ErrorCode = "CATALOG_LOAD_FAILED"
	ErrCodeItemNotFound         ErrorCode = "ITEM_NOT_FOUND"
	ErrCodeRoomTemplateNotFound ErrorCode = "ROOM_TEMPLATE_NOT_FOUND"
	ErrCodeRoomSizeNotFound     ErrorCode = "ROOM_SIZE_NOT_FOUND"

	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewRulesInvalidError marks a rules document that cannot be used for matching.
func NewRulesInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRulesInvalid,
		Message:   "Auto-configuration rules document is invalid",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRulesSchemaViolationError wraps JSON schema validation failures.
func NewRulesSchemaViolationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRulesSchemaViolation,
		Message:   "Rules document failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogLoadFailedError wraps document read/parse failures.
func NewCatalogLoadFailedError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogLoadFailed,
		Message:   "Catalog document could not be loaded",
		Details:   fmt.Sprintf("path: %s, error: %s", path, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewItemNotFoundError marks a selection referencing an item absent from the catalog.
func NewItemNotFoundError(itemID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeItemNotFound,
		Message:   "Item not found in catalog",
		Details:   fmt.Sprintf("itemId: %s", itemID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRoomTemplateNotFoundError marks a selection referencing an unknown room type.
func NewRoomTemplateNotFoundError(roomType string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRoomTemplateNotFound,
		Message:   "Room template not found in catalog",
		Details:   fmt.Sprintf("roomType: %s", roomType),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRoomSizeNotFoundError marks a selection referencing a size a template does not offer.
func NewRoomSizeNotFoundError(roomType, roomSize string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRoomSizeNotFound,
		Message:   "Room template does not offer the selected size",
		Details:   fmt.Sprintf("roomType: %s, roomSize: %s", roomType, roomSize),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewConfigInvalidError marks an unusable application configuration.
func NewConfigInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigInvalid,
		Message:   "Application configuration is invalid",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "RULES"):
		return "RULES"
	case strings.Contains(codeStr, "ITEM") || strings.Contains(codeStr, "CATALOG") || strings.Contains(codeStr, "TEMPLATE") || strings.Contains(codeStr, "ROOM"):
		return "CATALOG"
	case strings.Contains(codeStr, "CONFIG"):
		return "CONFIG"
	default:
		return "OTHER"
	}
}
