package api

import (
	"context"
	"net"
	"net/http"
	"strings"
)

type keyType string

const clientInfoKey keyType = "clientInfo"

// clientInfo carries request origin metadata, set once by the visitor
// logging middleware and read by the contact pipeline.
type clientInfo struct {
	IP        string
	UserAgent string
}

// ctxWithClientInfo adds client origin metadata to the context
func ctxWithClientInfo(ctx context.Context, info clientInfo) context.Context {
	return context.WithValue(ctx, clientInfoKey, info)
}

// ctxGetClientInfo retrieves client origin metadata from the context,
// falling back to reading the request directly when the middleware did
// not run (tests hitting a handler in isolation).
func ctxGetClientInfo(r *http.Request) clientInfo {
	if info, ok := r.Context().Value(clientInfoKey).(clientInfo); ok {
		return info
	}
	return clientInfo{IP: clientIP(r), UserAgent: r.UserAgent()}
}

// clientIP resolves the originating client address, honoring the first
// X-Forwarded-For hop when present.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
