package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

func TestTranslateDBError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"record not found", gorm.ErrRecordNotFound, KindNotFound},
		{"wrapped not found", fmt.Errorf("query: %w", gorm.ErrRecordNotFound), KindNotFound},
		{"duplicate entry", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, KindConflict},
		{"fk violation", &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}, KindValidationFailed},
		{"other mysql error", &mysql.MySQLError{Number: 1205, Message: "Lock wait timeout"}, KindInternal},
		{"plain error", errors.New("boom"), KindInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := TranslateDBError(tc.err, "fallback message")
			if appErr.Kind != tc.want {
				t.Fatalf("got kind %v, want %v", appErr.Kind, tc.want)
			}
			if !errors.Is(appErr, tc.err) {
				t.Fatalf("cause not wrapped: %v", appErr)
			}
		})
	}
}

func TestTranslateDBErrorPassesThroughAppErrors(t *testing.T) {
	orig := NewAppError(KindRateLimited, "slow down", nil)
	got := TranslateDBError(fmt.Errorf("wrapped: %w", orig), "fallback")
	if got.Kind != KindRateLimited {
		t.Fatalf("expected existing kind to survive, got %v", got.Kind)
	}
}

func TestTranslateDBErrorNil(t *testing.T) {
	if got := TranslateDBError(nil, "whatever"); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestKindOfDefaultsToInternal(t *testing.T) {
	if KindOf(errors.New("boom")) != KindInternal {
		t.Fatalf("expected internal for plain errors")
	}
	if KindOf(NewAppError(KindForbidden, "no", nil)) != KindForbidden {
		t.Fatalf("expected forbidden")
	}
	if KindOf(fmt.Errorf("ctx: %w", NewAppError(KindConflict, "dup", nil))) != KindConflict {
		t.Fatalf("expected conflict through wrapping")
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := map[ErrorKind]int{
		KindValidationFailed: http.StatusBadRequest,
		KindNotFound:         http.StatusNotFound,
		KindUnauthorized:     http.StatusUnauthorized,
		KindForbidden:        http.StatusForbidden,
		KindConflict:         http.StatusConflict,
		KindRateLimited:      http.StatusTooManyRequests,
		KindInternal:         http.StatusInternalServerError,
	}
	for kind, want := range cases {
		if got := kind.HTTPStatus(); got != want {
			t.Fatalf("kind %v: got %d want %d", kind, got, want)
		}
	}
}
