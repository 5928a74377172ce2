package handler

import (
	"wallet-governance/internal/adapter/http/middleware"
	"wallet-governance/pkg/apperror"
	"wallet-governance/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// memberOrAbort returns the acting member or writes AUTH_005.
func memberOrAbort(c *gin.Context) (string, bool) {
	id, ok := middleware.MemberID(c)
	if !ok {
		response.Error(c, apperror.ErrSessionRequired())
		return "", false
	}
	return id, true
}

// txIDOrAbort parses the :id path parameter.
func txIDOrAbort(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid dummy transaction id"))
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON binds the body into req or writes a GOV_012 error.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	return true
}

func validationErr(err error) error {
	return apperror.Validation(err.Error())
}
