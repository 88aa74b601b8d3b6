package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope adalah bentuk seragam semua response API:
// { success, message, data }
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ListPayload adalah payload dalam untuk endpoint list.
// len(data) selalu <= limit; total = jumlah seluruh record yang match query.
type ListPayload struct {
	Data  any   `json:"data"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SuccessList(c *gin.Context, status int, records any, total int64, page, limit int) {
	c.JSON(status, Envelope{
		Success: true,
		Data: ListPayload{
			Data:  records,
			Total: total,
			Page:  page,
			Limit: limit,
		},
	})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{
		Success: false,
		Message: message,
	})
}
