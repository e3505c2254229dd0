package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pratoaberto/api/internal/cardapios"
	"github.com/pratoaberto/api/pkg/logger"
	"github.com/pratoaberto/api/pkg/middleware"
)

// EditorHandler serves the authenticated editor routes.
type EditorHandler struct {
	svc *cardapios.Service
}

func NewEditorHandler(svc *cardapios.Service) *EditorHandler {
	return &EditorHandler{svc: svc}
}

// Register mounts the editor routes behind the shared-key gate: the gate runs
// before any query or body parsing.
func (h *EditorHandler) Register(r gin.IRouter, secret string) {
	grp := r.Group("/editor", middleware.APIKeyMiddleware(secret))
	grp.GET("/cardapios", h.List)
	grp.POST("/cardapios", h.Upsert)
}

// List is the editor listing: repeatable status values ($in filter, default
// PUBLICADO), range-only date logic, no projection.
func (h *EditorHandler) List(c *gin.Context) {
	q, ok := listQuery(c)
	if !ok {
		return
	}
	for _, s := range c.QueryArray("status") {
		if s != "" {
			q.Statuses = append(q.Statuses, s)
		}
	}
	out, err := h.svc.ListEditor(c.Request.Context(), q)
	if err != nil {
		logger.Errorf("editor cardapios list: %v", err)
		erroJSON(c, http.StatusInternalServerError, "erro interno")
		return
	}
	c.JSON(http.StatusOK, out)
}

// Upsert bulk-applies an array of menu records in order. A store failure
// aborts the remaining batch and is surfaced with the index of the failed
// operation rather than silently dropped.
func (h *EditorHandler) Upsert(c *gin.Context) {
	var items []cardapios.Cardapio
	if err := c.ShouldBindJSON(&items); err != nil {
		erroJSON(c, http.StatusBadRequest, "corpo inválido: esperado um array de cardápios")
		return
	}
	if err := h.svc.Upsert(c.Request.Context(), items); err != nil {
		var be *cardapios.BulkError
		if errors.As(err, &be) {
			logger.Errorf("editor upsert aborted: %v", be)
			c.JSON(http.StatusInternalServerError, gin.H{"erro": be.Err.Error(), "indice": be.Index})
			return
		}
		logger.Errorf("editor upsert: %v", err)
		erroJSON(c, http.StatusInternalServerError, "erro interno")
		return
	}
	c.Status(http.StatusOK)
}
