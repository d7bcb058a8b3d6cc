package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
// status 与上游 Lambda / 管线调度器的约定保持一致：success | warning | error
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// ── 成功响应 ──

// OK 200 成功响应（data 直接作为响应体，status 字段由响应 DTO 自带，
// warning 等非 success 状态同样经由此处返回）
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, detail string) {
	c.JSON(httpStatus, Response{Status: "error", Detail: detail})
}

// BadRequest 400 参数校验失败
func BadRequest(c *gin.Context, detail string) {
	Error(c, http.StatusBadRequest, detail)
}

// InternalError 500 服务器内部错误
func InternalError(c *gin.Context, detail string) {
	Error(c, http.StatusInternalServerError, detail)
}
