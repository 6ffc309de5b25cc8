package misc

import "github.com/gin-gonic/gin"

// Status is the response envelope every endpoint speaks: success flag,
// human readable message, and optionally the id of the touched entity or
// a data payload.
type Status struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	ID      string      `json:"id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func StatusOK(id string, msg string) Status {
	return Status{Success: true, ID: id, Message: msg}
}

func StatusData(data interface{}, msg string) Status {
	return Status{Success: true, Data: data, Message: msg}
}

func StatusErr(msg string) Status {
	return Status{Success: false, Message: msg}
}

func AbortWithErr(c *gin.Context, code int, err error) {
	c.AbortWithStatusJSON(code, StatusErr(err.Error()))
}
