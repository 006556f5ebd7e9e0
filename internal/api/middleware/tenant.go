package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pawhaven/PH-BoardingService/internal/api/handlers"
)

// TenantHeader header carrying the caller's tenant identifier
const TenantHeader = "X-Tenant-ID"

type tenantContextKey struct{}

// Tenant requires the X-Tenant-ID header on every request and places its
// value into the context. Absence is a request validation error; tenant
// identity is never defaulted or inferred.
func Tenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID := strings.TrimSpace(r.Header.Get(TenantHeader))
		if tenantID == "" {
			handlers.RespondBadRequest(w, "missing "+TenantHeader+" header")
			return
		}

		ctx := context.WithValue(r.Context(), tenantContextKey{}, tenantID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TenantFromContext returns the tenant id placed by the Tenant middleware
func TenantFromContext(ctx context.Context) (string, bool) {
	tenantID, ok := ctx.Value(tenantContextKey{}).(string)
	return tenantID, ok
}
