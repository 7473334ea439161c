package ssap

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeMapping(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorCode
	}{
		{nil, ""},
		{ErrMalformedDocument, ErrCodeMalformedDocument},
		{&DecodeError{Element: "node_id", Err: ErrMissingRequiredField}, ErrCodeMissingRequiredField},
		{fmt.Errorf("outer: %w", &DecodeError{Err: ErrPartialResult}), ErrCodePartialResult},
		{errors.New("boom"), ErrCodeDecode},
	}
	for _, tc := range cases {
		if got := Code(tc.err); got != tc.want {
			t.Errorf("Code(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestFatal(t *testing.T) {
	for _, err := range []error{ErrMalformedParameter, ErrUnknownResultShape, ErrPartialResult, nil} {
		if Fatal(err) {
			t.Errorf("expected %v to be recoverable", err)
		}
	}
	for _, err := range []error{ErrMalformedDocument, ErrWrongRootTag, ErrMissingRequiredField, ErrFieldTooLong} {
		if !Fatal(err) {
			t.Errorf("expected %v to be fatal", err)
		}
	}
}

func TestDecodeErrorMessage(t *testing.T) {
	err := &DecodeError{Element: "space_id", Err: ErrMissingRequiredField}
	if got := err.Error(); got != "ssap: required field has no content (at space_id)" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := (&DecodeError{Err: ErrMalformedEnvelope}).Error(); got != "ssap: missing root element" {
		t.Fatalf("unexpected message %q", got)
	}
}
