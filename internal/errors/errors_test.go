package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		err  *AppError
		code string
	}{
		{NegativeValue("neg"), CodeNegativeValue},
		{EmptyInput("empty"), CodeEmptyInput},
		{DegenerateExpectedCell([]int{1, 0}), CodeDegenerateExpectedCell},
		{WrongRank("rank"), CodeWrongRank},
		{WrongDtype("dtype"), CodeWrongDtype},
		{UnknownMethod("phi"), CodeUnknownMethod},
		{UnknownFamily("banana"), CodeUnknownFamily},
		{ShapeMismatch("shape"), CodeShapeMismatch},
		{InvalidInput("bad"), CodeInvalidInput},
	}
	for _, test := range tests {
		if GetCode(test.err) != test.code {
			t.Errorf("GetCode = %s, want %s", GetCode(test.err), test.code)
		}
		if !IsAppError(test.err) {
			t.Errorf("IsAppError false for %s", test.code)
		}
	}
}

func TestDegenerateExpectedCellNamesCoordinate(t *testing.T) {
	err := DegenerateExpectedCell([]int{2, 0, 1})
	want := "[2 0 1]"
	if got := err.Error(); !strings.Contains(got, want) {
		t.Errorf("message %q should contain %q", got, want)
	}
}

func TestWrapKeepsCode(t *testing.T) {
	base := NegativeValue("cell below zero")
	wrapped := Wrap(base, "validating table")
	if GetCode(wrapped) != CodeNegativeValue {
		t.Errorf("wrap should keep the code, got %s", GetCode(wrapped))
	}
	if !stderrors.Is(wrapped, base) {
		t.Error("wrapped error should unwrap to the base error")
	}
}

func TestWrapForeignError(t *testing.T) {
	base := stderrors.New("boom")
	wrapped := Wrap(base, "context")
	if GetCode(wrapped) != CodeInvalidInput {
		t.Errorf("foreign errors default to invalid input, got %s", GetCode(wrapped))
	}
	if Wrap(nil, "context") != nil {
		t.Error("wrapping nil should stay nil")
	}
}

func TestGetCodeUnknown(t *testing.T) {
	if GetCode(stderrors.New("plain")) != "UNKNOWN" {
		t.Error("plain errors should report UNKNOWN")
	}
}
