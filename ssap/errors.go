package ssap

import (
	"errors"
	"strings"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeMalformedDocument indicates the XML could not be tokenized.
	ErrCodeMalformedDocument ErrorCode = "MALFORMED_DOCUMENT"
	// ErrCodeMalformedEnvelope indicates there was no root element to decode.
	ErrCodeMalformedEnvelope ErrorCode = "MALFORMED_ENVELOPE"
	// ErrCodeWrongRootTag indicates the root element is not SSAP_message.
	ErrCodeWrongRootTag ErrorCode = "WRONG_ROOT_TAG"
	// ErrCodeMissingRequiredField indicates a mandatory envelope field has no content.
	ErrCodeMissingRequiredField ErrorCode = "MISSING_REQUIRED_FIELD"
	// ErrCodeMalformedParameter indicates a parameter element could not be interpreted.
	ErrCodeMalformedParameter ErrorCode = "MALFORMED_PARAMETER"
	// ErrCodeUnknownResultShape indicates a result parameter carried no known payload.
	ErrCodeUnknownResultShape ErrorCode = "UNKNOWN_RESULT_SHAPE"
	// ErrCodePartialResult indicates a result list was cut short.
	ErrCodePartialResult ErrorCode = "PARTIAL_RESULT"
	// ErrCodeFieldTooLong indicates a value exceeded its limit while rejection is enabled.
	ErrCodeFieldTooLong ErrorCode = "FIELD_TOO_LONG"
	// ErrCodeTransactionType indicates a message answered a different transaction.
	ErrCodeTransactionType ErrorCode = "TRANSACTION_TYPE"
	// ErrCodeDecode indicates an error this package did not produce.
	ErrCodeDecode ErrorCode = "DECODE_ERROR"
)

var (
	// ErrMalformedDocument indicates the XML could not be tokenized.
	ErrMalformedDocument = errors.New("ssap: malformed XML document")
	// ErrMalformedEnvelope indicates there was no root element to decode.
	ErrMalformedEnvelope = errors.New("ssap: missing root element")
	// ErrWrongRootTag indicates the root element is not SSAP_message.
	ErrWrongRootTag = errors.New("ssap: root element is not " + RootTag)
	// ErrMissingRequiredField indicates a mandatory envelope field has no content.
	ErrMissingRequiredField = errors.New("ssap: required field has no content")
	// ErrMalformedParameter indicates a parameter element could not be interpreted.
	ErrMalformedParameter = errors.New("ssap: malformed parameter")
	// ErrUnknownResultShape indicates a result parameter carried no known payload.
	ErrUnknownResultShape = errors.New("ssap: no known result payload")
	// ErrPartialResult indicates a result list was cut short at the item limit.
	ErrPartialResult = errors.New("ssap: result list truncated at item limit")
	// ErrFieldTooLong indicates a value exceeded its limit while rejection is enabled.
	ErrFieldTooLong = errors.New("ssap: field exceeds protocol limit")
	// ErrTransactionType indicates a message answered a different transaction.
	ErrTransactionType = errors.New("ssap: unexpected transaction type")
)

// Code returns the error code for an error, or "" for nil.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, ErrMalformedDocument):
		return ErrCodeMalformedDocument
	case errors.Is(err, ErrMalformedEnvelope):
		return ErrCodeMalformedEnvelope
	case errors.Is(err, ErrWrongRootTag):
		return ErrCodeWrongRootTag
	case errors.Is(err, ErrMissingRequiredField):
		return ErrCodeMissingRequiredField
	case errors.Is(err, ErrMalformedParameter):
		return ErrCodeMalformedParameter
	case errors.Is(err, ErrUnknownResultShape):
		return ErrCodeUnknownResultShape
	case errors.Is(err, ErrPartialResult):
		return ErrCodePartialResult
	case errors.Is(err, ErrFieldTooLong):
		return ErrCodeFieldTooLong
	case errors.Is(err, ErrTransactionType):
		return ErrCodeTransactionType
	}
	return ErrCodeDecode
}

// Fatal reports whether err aborts a decode. Recoverable conditions are
// only ever reported through Message.Warnings.
func Fatal(err error) bool {
	switch Code(err) {
	case "", ErrCodeMalformedParameter, ErrCodeUnknownResultShape, ErrCodePartialResult:
		return false
	}
	return true
}

// DecodeError adds element context to a decoding failure.
type DecodeError struct {
	// Element names the element or field being decoded, e.g. "node_id" or
	// "parameter[results]/triple_list". Empty when not applicable.
	Element string
	Err     error
}

func (e *DecodeError) Error() string {
	var msg strings.Builder
	msg.WriteString(e.Err.Error())
	if e.Element != "" {
		msg.WriteString(" (at ")
		msg.WriteString(e.Element)
		msg.WriteString(")")
	}
	return msg.String()
}

func (e *DecodeError) Unwrap() error { return e.Err }
