package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const staffKey ctxKey = "staff_id"

// StaffHeader identifica al miembro del staff que opera la tablet.
// No es autenticación: el servicio corre detrás del gateway de la clínica.
const StaffHeader = "X-Staff-ID"

// StaffContext copia el header X-Staff-ID al context si viene.
// Si no viene, el request sigue igual; los handlers deciden el actor.
func StaffContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(StaffHeader))
		if id == "" {
			next.ServeHTTP(w, r)
			return
		}
		ctx := context.WithValue(r.Context(), staffKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetStaffID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(staffKey).(string)
	return v, ok && v != ""
}
