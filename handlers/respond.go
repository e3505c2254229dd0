package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// erroJSON writes the uniform error envelope used by every route.
func erroJSON(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"erro": msg})
}

// queryInt parses an optional non-negative integer query parameter. A missing
// or empty parameter yields def; a malformed or negative value aborts with a
// 400 and returns ok=false.
func queryInt(c *gin.Context, name string, def int64) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		erroJSON(c, http.StatusBadRequest, "parâmetro inválido: "+name)
		return 0, false
	}
	return v, true
}
