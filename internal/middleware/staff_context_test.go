package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStaffContext(t *testing.T) {
	var got string
	var ok bool
	h := StaffContext(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, ok = GetStaffID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(StaffHeader, "  nurse-1 ")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if !ok || got != "nurse-1" {
		t.Fatalf("expected nurse-1, got %q ok=%v", got, ok)
	}

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if ok {
		t.Fatalf("expected no staff id without header, got %q", got)
	}
}
