package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

var errSentinel = stderrors.New("sentinel")

func TestErrorString(t *testing.T) {
	err := &Error{
		Op:   "animation.Tween.To",
		Kind: KindConfig,
		Err:  errSentinel,
	}
	got := err.Error()
	want := "animation.Tween.To [config]: sentinel"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := New("op", KindConfig, fmt.Errorf("hz=%v: %w", -1, errSentinel))
	if !stderrors.Is(err, errSentinel) {
		t.Error("expected errors.Is to find the wrapped sentinel")
	}
	if err.Timestamp.IsZero() {
		t.Error("expected New to stamp the time")
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", New("op", KindParse, errSentinel))
	if got := KindOf(wrapped); got != KindParse {
		t.Errorf("KindOf = %v, want %v", got, KindParse)
	}
	if got := KindOf(errSentinel); got != KindUnknown {
		t.Errorf("KindOf(plain) = %v, want %v", got, KindUnknown)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindParse, "parse"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "animation.Tween.tick"
	if got, want := err.Error(), "panic in animation.Tween.tick: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestParseErrorString(t *testing.T) {
	err := &ParseError{Field: "easing", DataType: "easing name", Got: "wobble"}
	want := "failed to parse easing as easing name: got wobble"
	if got := err.Error(); got != want {
		t.Errorf("ParseError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *Error
	old := SetHandler(&testHandler{
		onError: func(err *Error) { captured = err },
	})
	defer SetHandler(old)

	Report(&Error{Op: "test.op", Kind: KindConfig, Err: errSentinel})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNil(t *testing.T) {
	called := false
	old := SetHandler(&testHandler{
		onError: func(*Error) { called = true },
		onPanic: func(*PanicError) { called = true },
	})
	defer SetHandler(old)

	Report(nil)
	ReportPanic(nil)
	if called {
		t.Error("nil reports should not reach the handler")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	var captured *PanicError
	old := SetHandler(&testHandler{
		onPanic: func(err *PanicError) { captured = err },
	})
	defer SetHandler(old)

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic(42)
	}()

	if got != 42 {
		t.Errorf("callback received %v, want 42", got)
	}
	if captured == nil || captured.Op != "test.callback" || captured.Value != 42 {
		t.Fatalf("handler received %+v", captured)
	}
	if captured.StackTrace == "" {
		t.Error("expected a stack trace on the recovered panic")
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Fatal("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	old := SetHandler(nil)
	defer SetHandler(old)

	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}

	h.HandleError(&Error{Op: "config.Resolve", Kind: KindParse, Err: errSentinel})
	h.HandlePanic(&PanicError{Op: "animation.Tween.tick", Value: "boom", StackTrace: "frames"})

	got := buf.String()
	if !strings.Contains(got, "[valuekit error] config.Resolve: sentinel") {
		t.Errorf("missing error line in %q", got)
	}
	if !strings.Contains(got, "[valuekit panic] animation.Tween.tick: boom") {
		t.Errorf("missing panic line in %q", got)
	}
	if strings.Contains(got, "Stack trace") {
		t.Error("stack traces should only be printed when Verbose")
	}

	buf.Reset()
	h.Verbose = true
	h.HandlePanic(&PanicError{Value: "boom", StackTrace: "frames"})
	if !strings.Contains(buf.String(), "Stack trace:\nframes") {
		t.Errorf("verbose output should include stack trace, got %q", buf.String())
	}
}

type testHandler struct {
	onError func(*Error)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *Error) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func TestFrom(t *testing.T) {
	if From("op", nil) != nil {
		t.Error("From(nil) should be nil")
	}

	e := New("config.Resolve", KindConfig, errSentinel)
	if got := From("valuekit", e); got != e {
		t.Errorf("From should return an *Error unchanged, got %v", got)
	}

	wrapped := fmt.Errorf("preset: %w", New("config.Preset", KindParse, errSentinel))
	got := From("valuekit", wrapped)
	if got.Op != "valuekit" || got.Kind != KindParse {
		t.Errorf("From(wrapped) = %+v, want op valuekit kind parse", got)
	}
	if !stderrors.Is(got, errSentinel) {
		t.Error("From should keep the original chain")
	}

	if got := From("valuekit", errSentinel); got.Kind != KindUnknown {
		t.Errorf("From(plain).Kind = %v, want unknown", got.Kind)
	}
}

func TestReportThroughLogHandler(t *testing.T) {
	var buf bytes.Buffer
	old := SetHandler(&LogHandler{Verbose: true, Out: &buf})
	defer SetHandler(old)

	Report(From("valuekit", fmt.Errorf("ease: %w", New("ease", KindParse, errSentinel))))

	got := buf.String()
	if !strings.Contains(got, "[valuekit error] valuekit [parse]: ease: ease [parse]: sentinel") {
		t.Errorf("unexpected verbose output %q", got)
	}
	if !strings.Contains(got, "  at ") {
		t.Errorf("verbose output should include the timestamp, got %q", got)
	}
}
