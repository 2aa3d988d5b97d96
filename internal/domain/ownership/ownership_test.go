package ownership

import (
	"errors"
	"testing"
)

func TestVerify(t *testing.T) {
	cases := []struct {
		name     string
		ownerID  int64
		actingID int64
		wantErr  error
	}{
		{"владелец совпадает", 42, 42, nil},
		{"чужой пользователь", 42, 7, ErrDenied},
		{"нулевой действующий id", 42, 0, ErrDenied},
		{"нулевой владелец", 0, 42, ErrDenied},
		{"оба нулевые", 0, 0, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Verify(tc.ownerID, tc.actingID)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Verify(%d, %d) = %v, ожидается %v", tc.ownerID, tc.actingID, err, tc.wantErr)
			}
		})
	}
}
