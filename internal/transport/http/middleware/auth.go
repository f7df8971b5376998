package middleware

import (
	"context"
	"net/http"

	"github.com/ErlanBelekov/superpoll-api/internal/domain"
	ctxlog "github.com/ErlanBelekov/superpoll-api/internal/log"
	"github.com/ErlanBelekov/superpoll-api/internal/transport/http/handler"
	"github.com/gin-gonic/gin"
)

// AccessTokenHeader carries the token issued by sign-in/sign-up.
const AccessTokenHeader = "x-access-token"

type accountLoader interface {
	Execute(ctx context.Context, accessToken, role string) (*domain.Account, error)
}

// Middleware is a gate run before a Controller. A 200 response lets the
// request through; its map body is copied into the gin context.
type Middleware interface {
	Handle(ctx context.Context, req handler.Request) handler.Response
}

// AuthMiddleware resolves x-access-token to an account holding role.
// It keeps no state between requests.
type AuthMiddleware struct {
	loadAccount accountLoader
	role        string
}

func NewAuthMiddleware(loadAccount accountLoader, role string) *AuthMiddleware {
	return &AuthMiddleware{loadAccount: loadAccount, role: role}
}

func (m *AuthMiddleware) Handle(ctx context.Context, req handler.Request) handler.Response {
	token := req.Headers.Get(AccessTokenHeader)
	if token == "" {
		return handler.Forbidden(handler.ErrAccessDenied)
	}

	account, err := m.loadAccount.Execute(ctx, token, m.role)
	if err != nil {
		return handler.ServerError(err)
	}
	if account == nil {
		return handler.Forbidden(handler.ErrAccessDenied)
	}

	return handler.OK(map[string]string{handler.AccountIDKey: account.ID})
}

// Gate mounts a Middleware on gin. The request body is left untouched for
// the controller.
func Gate(mw Middleware) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := handler.Run(c, mw.Handle, handler.Request{Headers: c.Request.Header})
		if resp.StatusCode != http.StatusOK {
			handler.Write(c, resp)
			c.Abort()
			return
		}

		if values, ok := resp.Body.(map[string]string); ok {
			for k, v := range values {
				c.Set(k, v)
			}
			if id := values[handler.AccountIDKey]; id != "" {
				c.Request = c.Request.WithContext(ctxlog.WithAccountID(c.Request.Context(), id))
			}
		}
		c.Next()
	}
}
