package errdef

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestWrapNilReturnsNil(t *testing.T) {
	if err := Wrap(CodeFilesystem, nil, "write"); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestWrapKeepsCauseAndCode(t *testing.T) {
	err := Wrap(CodeFilesystem, fs.ErrPermission, "write %s", "a.robot")
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("expected wrapped permission error, got %v", err)
	}
	if CodeOf(err) != CodeFilesystem {
		t.Fatalf("expected filesystem code, got %s", CodeOf(err))
	}
	want := "filesystem: write a.robot: permission denied"
	if err.Error() != want {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestIsThroughFmtWrap(t *testing.T) {
	base := New(CodeValidation, "invalid name %q", "a/b")
	err := fmt.Errorf("scaffold: %w", base)
	if !Is(err, CodeValidation) {
		t.Fatalf("expected validation code through wrap")
	}
	if Is(err, CodeExists) {
		t.Fatalf("unexpected exists code")
	}
	if CodeOf(errors.New("plain")) != CodeUnknown {
		t.Fatalf("expected unknown code for plain error")
	}
}

func TestRecoverable(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{New(CodeValidation, "bad"), true},
		{New(CodeExists, "exists"), true},
		{New(CodeWorkspace, "none"), false},
		{errors.New("plain"), false},
	}
	for _, tc := range cases {
		if got := Recoverable(tc.err); got != tc.want {
			t.Fatalf("Recoverable(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestEmptyCodeBecomesUnknown(t *testing.T) {
	err := New("", "x")
	if CodeOf(err) != CodeUnknown {
		t.Fatalf("expected unknown code, got %s", CodeOf(err))
	}
}
