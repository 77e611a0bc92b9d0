package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validationf("text is a required field"), http.StatusBadRequest},
		{"json", JSONErrf("empty body"), http.StatusBadRequest},
		{"too large", TooLargef("request body exceeds %d bytes", 1<<20), http.StatusBadRequest},
		{"unsupported", Unsupportedf("clipboard: no supported clipboard tool found"), http.StatusNotImplemented},
		{"unavailable", Wrapf(stderrs.New("exit status 1"), ErrorCodeUnavailable, "clipboard: xclip"), http.StatusServiceUnavailable},
		{"panic", PanicErrf("panic recovered"), http.StatusInternalServerError},
		{"unknown code", Newf(ErrorCode(99), "x"), http.StatusInternalServerError},
		{"foreign", stderrs.New("x"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("normalize: %w", JSONErrf("bad")), http.StatusBadRequest},
	}
	for _, tt := range tests {
		if got := HTTPStatus(tt.err); got != tt.want {
			t.Fatalf("%s: HTTPStatus = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestCodesAreStable(t *testing.T) {
	want := []ErrorCode{
		ErrorCodeUnknown, ErrorCodePanic, ErrorCodeUnavailable, ErrorCodeUnsupported,
		ErrorCodeValidation, ErrorCodeJSON, ErrorCodeTooLarge,
	}
	for n, c := range want {
		if int(c) != n {
			t.Fatalf("code %d moved to %d", n, c)
		}
	}
}

func TestError_RenderAndUnwrap(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil *Error = %q", nilErr.Error())
	}

	cause := stderrs.New("exit status 1")
	err := Wrapf(cause, ErrorCodeUnavailable, "clipboard: %s", "xclip")
	if err.Error() != "clipboard: xclip: exit status 1" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if !stderrs.Is(err, cause) {
		t.Fatal("cause lost")
	}
	if e, ok := As(fmt.Errorf("copy: %w", err)); !ok || e.Code() != ErrorCodeUnavailable {
		t.Fatal("As through a foreign wrapper failed")
	}
	if _, ok := As(cause); ok {
		t.Fatal("As matched a foreign error")
	}
}

func TestCodeOf(t *testing.T) {
	tests := map[ErrorCode]error{
		ErrorCodeValidation:  Validationf("x"),
		ErrorCodeJSON:        JSONErrf("x"),
		ErrorCodePanic:       PanicErrf("x"),
		ErrorCodeUnsupported: Unsupportedf("x"),
		ErrorCodeTooLarge:    TooLargef("x"),
		ErrorCodeUnknown:     stderrs.New("x"),
	}
	for code, err := range tests {
		if got := CodeOf(err); got != code {
			t.Fatalf("CodeOf(%v) = %d, want %d", err, got, code)
		}
	}
	if CodeOf(nil) != ErrorCodeUnknown {
		t.Fatal("nil should be Unknown")
	}
}

func TestWireFrom(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Wire
	}{
		{"nil", nil, Wire{}},
		{"foreign", stderrs.New("boom"), Wire{Code: ErrorCodeUnknown, Message: "boom"}},
		{"cause stays private", Wrapf(stderrs.New("exit status 1"), ErrorCodeUnavailable, "clipboard: pbcopy"),
			Wire{Code: ErrorCodeUnavailable, Message: "clipboard: pbcopy"}},
		{"field", WithField(Validationf("text is a required field"), "text"),
			Wire{Code: ErrorCodeValidation, Message: "text is a required field", Field: "text"}},
	}
	for _, tt := range tests {
		if got := WireFrom(tt.err); got != tt.want {
			t.Fatalf("%s: WireFrom = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestWithField_CopyOnWrite(t *testing.T) {
	base := Validationf("text must be valid UTF-8 text")
	named := WithField(base, "text")
	if e, _ := As(named); e.Field() != "text" {
		t.Fatal("field not set")
	}
	if e, _ := As(base); e.Field() != "" {
		t.Fatal("original mutated")
	}
	foreign := stderrs.New("x")
	if WithField(foreign, "text") != foreign {
		t.Fatal("foreign error should pass through")
	}
}
