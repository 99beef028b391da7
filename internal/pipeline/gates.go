package pipeline

import (
	"context"
	"net/http"
	"strings"

	"inventory-rest-api/internal/model"
	"inventory-rest-api/pkg/apierror"
)

// SessionVerifier turns a session token into the caller's identity.
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) (*model.Identity, error)
}

// Authenticate requires a valid session token, read from the named cookie or,
// failing that, from an Authorization: Bearer header.
func Authenticate(verifier SessionVerifier, cookieName string) Gate {
	return func(req *Request) error {
		token := SessionToken(req.Request, cookieName)
		if token == "" {
			return apierror.Unauthorized("Authentication required")
		}

		identity, err := verifier.VerifySession(req.Context(), token)
		if err != nil {
			return err
		}
		req.Identity = identity
		return nil
	}
}

// Identify sets the caller's identity when a valid session token is present
// and lets every request through.
func Identify(verifier SessionVerifier, cookieName string) Gate {
	return func(req *Request) error {
		token := SessionToken(req.Request, cookieName)
		if token == "" {
			return nil
		}
		if identity, err := verifier.VerifySession(req.Context(), token); err == nil {
			req.Identity = identity
		}
		return nil
	}
}

// RequireRole admits only callers holding role. It must follow Authenticate.
func RequireRole(role model.Role) Gate {
	return func(req *Request) error {
		if req.Identity == nil {
			return apierror.Unauthorized("Authentication required")
		}
		if req.Identity.Role != role {
			return apierror.Forbidden("This action requires the " + string(role) + " role")
		}
		return nil
	}
}

// SessionToken extracts the raw session token from a request.
func SessionToken(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}

	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}
