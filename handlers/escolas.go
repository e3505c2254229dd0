package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pratoaberto/api/internal/escolas"
	"github.com/pratoaberto/api/pkg/logger"
)

const defaultSearchLimit = 5

// EscolasHandler serves the public school routes.
type EscolasHandler struct {
	svc *escolas.Service
}

func NewEscolasHandler(svc *escolas.Service) *EscolasHandler {
	return &EscolasHandler{svc: svc}
}

func (h *EscolasHandler) Register(r gin.IRouter) {
	r.GET("/escolas", h.List)
	r.GET("/escola/:id", h.Detail)
}

// List searches schools by name when `nome` is supplied (summary projection,
// capped at `limit`, default 5) and returns the full listing otherwise.
// Exactly one of the two branches runs per request.
func (h *EscolasHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	if nome, ok := c.GetQuery("nome"); ok {
		limit, ok := queryInt(c, "limit", defaultSearchLimit)
		if !ok {
			return
		}
		out, err := h.svc.Search(ctx, nome, limit)
		if err != nil {
			logger.Errorf("escolas search: %v", err)
			erroJSON(c, http.StatusInternalServerError, "erro interno")
			return
		}
		c.JSON(http.StatusOK, out)
		return
	}

	out, err := h.svc.ListAll(ctx)
	if err != nil {
		logger.Errorf("escolas list: %v", err)
		erroJSON(c, http.StatusInternalServerError, "erro interno")
		return
	}
	c.JSON(http.StatusOK, out)
}

// Detail returns one school by its integer id, enriched with the idades set.
func (h *EscolasHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// non-integer ids cannot exist as keys
		erroJSON(c, http.StatusNotFound, "Escola inexistente")
		return
	}
	doc, err := h.svc.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, escolas.ErrNotFound) {
			erroJSON(c, http.StatusNotFound, "Escola inexistente")
			return
		}
		logger.Errorf("escola detail %d: %v", id, err)
		erroJSON(c, http.StatusInternalServerError, "erro interno")
		return
	}
	c.JSON(http.StatusOK, doc)
}
