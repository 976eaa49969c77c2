package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bitfantasy/nimo-qms/internal/qms/service"
)

// Handlers QMS处理器集合
type Handlers struct {
	Report *ReportHandler
}

// NewHandlers 创建QMS处理器集合
func NewHandlers(reportSvc *service.ReportService) *Handlers {
	return &Handlers{
		Report: NewReportHandler(reportSvc),
	}
}

// === 响应辅助函数 ===

type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}
