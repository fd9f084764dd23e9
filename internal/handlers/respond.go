package handlers

import (
	"net/http"
	"strconv"

	"github.com/AlliAyobami/myToDo/internal/problem"

	"github.com/gin-gonic/gin"
)

// respondError writes err as a problem-details envelope. Errors that
// carry no Problem are masked behind a generic internal one so storage
// details never leak to the caller.
func respondError(c *gin.Context, err error) {
	if p := problem.From(err); p != nil {
		c.JSON(p.Status, p)
		return
	}
	p := problem.Internal("something went wrong")
	c.JSON(p.Status, p)
}

func respondBindError(c *gin.Context, err error) {
	p := problem.Invalid(err.Error())
	// Malformed bodies are a 400, not a failed precondition.
	p.Status = http.StatusBadRequest
	c.JSON(p.Status, p)
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		p := problem.Invalid("invalid id")
		p.Status = http.StatusBadRequest
		c.JSON(p.Status, p)
		return 0, false
	}
	return id, true
}

func parsePage(c *gin.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "0"))
	return page, perPage
}
