package middleware

import (
	"net/http"
	"strings"
)

const (
	corsAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, " + RequestIDHeader
	corsMaxAge       = "600"
)

type CORSMiddleware struct {
	allowAll bool
	origins  map[string]struct{}
}

// NewCORSMiddleware allows the given origins. An empty list or "*" allows any origin.
func NewCORSMiddleware(origins []string) *CORSMiddleware {
	m := &CORSMiddleware{origins: make(map[string]struct{})}
	for _, o := range origins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		switch o {
		case "":
		case "*":
			m.allowAll = true
		default:
			m.origins[o] = struct{}{}
		}
	}
	if len(m.origins) == 0 {
		m.allowAll = true
	}
	return m
}

func (m *CORSMiddleware) allowed(origin string) bool {
	if m.allowAll {
		return true
	}
	_, ok := m.origins[origin]
	return ok
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		origin := req.Header.Get("Origin")
		preflight := req.Method == http.MethodOptions && req.Header.Get("Access-Control-Request-Method") != ""

		switch {
		case m.allowAll:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case origin != "" && m.allowed(origin):
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		case preflight:
			w.Header().Add("Vary", "Origin")
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)

		if req.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)
			w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
			w.Header().Set("Access-Control-Max-Age", corsMaxAge)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, req)
	})
}
