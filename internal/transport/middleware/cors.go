package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/heartmarshall/bookflow-backend/internal/config"
	"github.com/heartmarshall/bookflow-backend/pkg/envelope"
)

// exposedHeaders are the response headers browser clients may read.
var exposedHeaders = RequestIDHeader + ", Retry-After"

type corsPolicy struct {
	anyOrigin    bool
	origins      []string
	methods      []string
	allowMethods string
	allowHeaders string
	credentials  bool
	maxAge       string
}

func newCORSPolicy(cfg config.CORSConfig) corsPolicy {
	p := corsPolicy{
		allowHeaders: cfg.AllowedHeaders,
		credentials:  cfg.AllowCredentials,
		maxAge:       strconv.Itoa(cfg.MaxAge),
	}
	for _, o := range splitList(cfg.AllowedOrigins) {
		if o == "*" {
			p.anyOrigin = true
			continue
		}
		p.origins = append(p.origins, o)
	}
	p.methods = splitList(strings.ToUpper(cfg.AllowedMethods))
	p.allowMethods = strings.Join(p.methods, ",")
	return p
}

func (p corsPolicy) allowsOrigin(origin string) bool {
	return p.anyOrigin || slices.Contains(p.origins, origin)
}

func (p corsPolicy) allowsMethod(method string) bool {
	return method == "" || slices.Contains(p.methods, strings.ToUpper(method))
}

// CORS decorates responses for allowed origins and answers OPTIONS
// preflights itself. A preflight from an origin outside AllowedOrigins, or
// asking for a method outside AllowedMethods, gets a 403 envelope.
func CORS(cfg config.CORSConfig) Middleware {
	p := newCORSPolicy(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			allowed := origin != "" && p.allowsOrigin(origin)
			if allowed {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Expose-Headers", exposedHeaders)
				if p.credentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method != http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			h.Add("Vary", "Access-Control-Request-Method")
			h.Add("Vary", "Access-Control-Request-Headers")
			if origin != "" && !allowed {
				envelope.WriteError(w, http.StatusForbidden, "origin not allowed", nil)
				return
			}
			if !p.allowsMethod(r.Header.Get("Access-Control-Request-Method")) {
				envelope.WriteError(w, http.StatusForbidden, "method not allowed by CORS policy", nil)
				return
			}

			h.Set("Access-Control-Allow-Methods", p.allowMethods)
			h.Set("Access-Control-Allow-Headers", p.allowHeaders)
			h.Set("Access-Control-Max-Age", p.maxAge)
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
