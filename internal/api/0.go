package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	domainerr "github.com/notarydesk/priorities/internal/domain/error"
	"github.com/notarydesk/priorities/internal/dto/response"
)

var Provider = wire.NewSet(
	NewEmployeeAPI,
	NewPriorityAPI,
	NewAssignmentAPI,
	NewCommonAPI,
	NewServer,
)

func onGinBind(c *gin.Context, val any, typ string) bool {
	var err error
	switch typ {
	case "JSON":
		err = c.ShouldBindJSON(val)
	case "QUERY":
		err = c.ShouldBindQuery(val)
	default:
		err = c.ShouldBind(val)
	}
	if err != nil {
		_ = c.Error(domainerr.NewBusinessError(domainerr.CodeValidation, "Requisição inválida.", err))
		return false
	}
	return true
}

func onGinResponse[T any](c *gin.Context, status int, data T, err error) {
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(status, data)
}

func message(text string, data any) response.MessageResponse {
	return response.MessageResponse{Message: text, Data: data}
}
