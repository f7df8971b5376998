package handler

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
)

const (
	// AccountIDKey is the gin context key the auth gate stores the account id under.
	AccountIDKey = "accountId"
	// StackKey holds the stack of a 500 for the error-log middleware.
	StackKey = "errorStack"
)

var errMalformed = errors.New(errMalformedBody)

// Adapt mounts a Controller on gin. An empty body decodes to an empty map.
func Adapt(ctrl Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
			Write(c, BadRequest(errMalformed))
			return
		}
		if body == nil {
			body = map[string]any{}
		}

		req := Request{
			Body:      body,
			Headers:   c.Request.Header,
			AccountID: c.GetString(AccountIDKey),
		}

		Write(c, Run(c, ctrl.Handle, req))
	}
}

// Run calls handle and turns a panic into a server error.
func Run(c *gin.Context, handle func(ctx context.Context, req Request) Response, req Request) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("panic: %v", r)
			}
			resp = ServerError(err)
		}
	}()
	return handle(c.Request.Context(), req)
}

// Write renders resp and records server-error details on the gin context.
func Write(c *gin.Context, resp Response) {
	if resp.Err != nil {
		_ = c.Error(resp.Err)
		c.Set(StackKey, resp.Stack)
	}
	if resp.Body == nil {
		c.Status(resp.StatusCode)
		return
	}
	c.JSON(resp.StatusCode, resp.Body)
}
