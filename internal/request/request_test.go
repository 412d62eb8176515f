package request

import (
	"net/http/httptest"
	"testing"

	"github.com/fightpulse/fightpulse-api/internal/models"
	"github.com/google/uuid"
)

func TestClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xRealIP    string
		want       string
	}{
		{
			name:       "remote addr only",
			remoteAddr: "203.0.113.7:4321",
			want:       "203.0.113.7:4321",
		},
		{
			name:       "x-forwarded-for wins",
			remoteAddr: "10.0.0.1:80",
			xff:        "203.0.113.7, 10.0.0.2",
			want:       "203.0.113.7",
		},
		{
			name:       "x-real-ip fallback",
			remoteAddr: "10.0.0.1:80",
			xRealIP:    "203.0.113.9",
			want:       "203.0.113.9",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xRealIP != "" {
				req.Header.Set("X-Real-IP", tt.xRealIP)
			}

			if got := ClientIP(req); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)

	if UserFromContext(req) != nil {
		t.Error("expected nil user on a bare request")
	}

	user := &models.User{ID: uuid.New(), Email: "fan@example.com"}
	req = req.WithContext(WithUser(req.Context(), user))

	got := UserFromContext(req)
	if got == nil || got.ID != user.ID {
		t.Errorf("UserFromContext() = %+v, want %+v", got, user)
	}
}
