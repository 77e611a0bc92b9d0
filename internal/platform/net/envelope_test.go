package net_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	perr "bulletpoints/internal/platform/errors"
	pnet "bulletpoints/internal/platform/net"
)

func TestSuccess(t *testing.T) {
	ctx := pnet.WithRequest(context.Background(), "host/abc-000001", "api")
	env := pnet.Success(ctx, http.StatusOK, map[string]int{"length": 33})

	if env.StatusCode != 200 || env.Status != "OK" {
		t.Fatalf("status = %d %q", env.StatusCode, env.Status)
	}
	if env.RequestID != "host/abc-000001" {
		t.Fatalf("request id = %q", env.RequestID)
	}
	if env.Code != perr.ErrorCodeUnknown || env.Error != "" {
		t.Fatalf("success carries error fields: %+v", env)
	}
}

func TestFailure(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   perr.ErrorCode
		msg    string
		field  string
	}{
		{
			name:   "missing text",
			err:    perr.WithField(perr.Validationf("text is a required field"), "text"),
			status: http.StatusBadRequest, code: perr.ErrorCodeValidation,
			msg: "text is a required field", field: "text",
		},
		{
			name:   "oversized body",
			err:    perr.TooLargef("request body exceeds %d bytes", 1<<20),
			status: http.StatusBadRequest, code: perr.ErrorCodeTooLarge,
			msg: "request body exceeds 1048576 bytes",
		},
		{
			name:   "clipboard tool missing",
			err:    perr.Unsupportedf("no clipboard tool found"),
			status: http.StatusNotImplemented, code: perr.ErrorCodeUnsupported,
			msg: "no clipboard tool found",
		},
		{
			name:   "wrapped cause stays private",
			err:    perr.Wrapf(fmt.Errorf("exit status 1"), perr.ErrorCodeUnavailable, "clipboard write failed"),
			status: http.StatusServiceUnavailable, code: perr.ErrorCodeUnavailable,
			msg: "clipboard write failed",
		},
		{
			name:   "foreign error",
			err:    fmt.Errorf("boom"),
			status: http.StatusInternalServerError, code: perr.ErrorCodeUnknown,
			msg: "boom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := pnet.Failure(pnet.WithRequest(context.Background(), "rid", "api"), tt.err)
			if env.StatusCode != tt.status || env.Status != http.StatusText(tt.status) {
				t.Fatalf("status = %d %q", env.StatusCode, env.Status)
			}
			if env.Code != tt.code || env.Error != tt.msg || env.Field != tt.field {
				t.Fatalf("envelope = %+v", env)
			}
			if env.RequestID != "rid" || env.Data != nil {
				t.Fatalf("envelope = %+v", env)
			}
		})
	}
}
