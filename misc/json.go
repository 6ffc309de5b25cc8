package misc

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// BindJSON decodes a request body without gin's validation layer,
// handlers do their own field checks.
func BindJSON(c *gin.Context, v interface{}) error {
	body := c.Request.Body
	defer body.Close()
	return json.NewDecoder(body).Decode(v)
}
