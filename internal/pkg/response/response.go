package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lumiere_go/internal/pkg/apperr"
)

// Response Standard API Response
type Response struct {
	Code int         `json:"code"`
	Data interface{} `json:"data,omitempty"`
	Msg  string      `json:"msg,omitempty"`
}

// Success 200 response
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: apperr.CodeSuccess,
		Data: data,
		Msg:  "success",
	})
}

// Created 201 response
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: apperr.CodeSuccess,
		Data: data,
		Msg:  "success",
	})
}

// SuccessWithMsg Success with message
func SuccessWithMsg(c *gin.Context, data interface{}, msg string) {
	c.JSON(http.StatusOK, Response{
		Code: apperr.CodeSuccess,
		Data: data,
		Msg:  msg,
	})
}

// Fail Error response, HTTP status derived from the business code
func Fail(c *gin.Context, err error) {
	if ae, ok := err.(*apperr.AppError); ok {
		c.JSON(ae.HTTPStatus(), Response{Code: ae.Code, Msg: ae.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, Response{
		Code: apperr.CodeInternalError,
		Msg:  "internal server error",
	})
}

// BadRequest 400 response
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Response{Code: apperr.CodeBadRequest, Msg: msg})
}

// Unauthorized 401 response
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, Response{Code: apperr.CodeUnauthorized, Msg: msg})
}

// Forbidden 403 response
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, Response{Code: apperr.CodeForbidden, Msg: msg})
}

// NotFound 404 response
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, Response{Code: apperr.CodeNotFound, Msg: msg})
}

// Validation 422 response, used for binding failures
func Validation(c *gin.Context, msg string) {
	c.JSON(http.StatusUnprocessableEntity, Response{Code: apperr.CodeValidation, Msg: msg})
}
