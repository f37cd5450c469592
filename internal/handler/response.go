// Package handler provides the gin HTTP handlers.
package handler

import (
	"errors"
	"net/http"

	"contact_admin_server/pkg/errorx"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// RespondData answers 200 with a {"data": ...} envelope.
func RespondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// RespondList answers 200 with data and pagination meta.
func RespondList(c *gin.Context, data, meta any) {
	c.JSON(http.StatusOK, gin.H{"data": data, "meta": meta})
}

// RespondCreated answers 201 with an empty body.
func RespondCreated(c *gin.Context) {
	c.Status(http.StatusCreated)
}

// RespondNoContent answers 204.
func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// RespondNotFound answers 404 for ids that cannot reference a record.
func RespondNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "指定されたリソースが見つかりません"})
}

// HandleError maps a service/repository error onto an HTTP response:
// not-found -> 404, field-scoped validation and uniqueness errors ->
// 422 with an errors map, anything else -> logged 500. Errors are never
// swallowed below this point; this is the single place that decides
// what the client sees.
func HandleError(c *gin.Context, err error) {
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) {
		switch codeErr.Code {
		case errorx.CodeNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": codeErr.Msg})
			return
		case errorx.CodeInvalidParam, errorx.CodeDuplicate:
			if codeErr.Fields != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": codeErr.Fields})
				return
			}
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": codeErr.Msg})
			return
		}
	}

	zap.L().Error("system error",
		zap.Int("code", errorx.GetCode(err)),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("requestId", c.GetString("request_id")),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"message": errorx.ErrServerBusy.Msg})
}

// HandleParamError answers a binding failure. validator errors are
// translated to Japanese field messages; anything else (malformed
// JSON, wrong types) gets a generic 400.
func HandleParamError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		translated := RemoveTopStruct(validationErrs.Translate(Trans))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": translated})
		return
	}

	zap.L().Warn("param bind error",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(http.StatusBadRequest, gin.H{"message": errorx.ErrInvalidParam.Msg})
}
