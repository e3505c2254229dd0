package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pratoaberto/api/internal/cardapios"
	"github.com/pratoaberto/api/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CardapiosHandler serves the public menu routes.
type CardapiosHandler struct {
	svc *cardapios.Service
}

func NewCardapiosHandler(svc *cardapios.Service) *CardapiosHandler {
	return &CardapiosHandler{svc: svc}
}

func (h *CardapiosHandler) Register(r gin.IRouter) {
	r.GET("/cardapios", h.List)
	r.GET("/cardapios/:data", h.List)
	r.GET("/cardapio/:id", h.Get)
}

// listQuery builds the typed query from the request. The exact date comes
// from the path (and wins over the range); the rest are optional query
// parameters.
func listQuery(c *gin.Context) (cardapios.ListQuery, bool) {
	limit, ok := queryInt(c, "limit", 0)
	if !ok {
		return cardapios.ListQuery{}, false
	}
	page, ok := queryInt(c, "page", 0)
	if !ok {
		return cardapios.ListQuery{}, false
	}
	return cardapios.ListQuery{
		Agrupamento:     c.Query("agrupamento"),
		TipoAtendimento: c.Query("tipo_atendimento"),
		TipoUnidade:     c.Query("tipo_unidade"),
		Idade:           c.Query("idade"),
		Data:            c.Param("data"),
		DataInicial:     c.Query("data_inicial"),
		DataFinal:       c.Query("data_final"),
		Limit:           limit,
		Page:            page,
	}, true
}

// List returns published menu records, newest first.
func (h *CardapiosHandler) List(c *gin.Context) {
	q, ok := listQuery(c)
	if !ok {
		return
	}
	out, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		logger.Errorf("cardapios list: %v", err)
		erroJSON(c, http.StatusInternalServerError, "erro interno")
		return
	}
	c.JSON(http.StatusOK, out)
}

// Get returns the wrapped record for an opaque identifier. The result is
// materialized before the existence check, so the not-found branch is
// actually reachable.
func (h *CardapiosHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		erroJSON(c, http.StatusBadRequest, "identificador inválido")
		return
	}
	out, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		logger.Errorf("cardapio get %s: %v", id.Hex(), err)
		erroJSON(c, http.StatusInternalServerError, "erro interno")
		return
	}
	if len(out) == 0 {
		erroJSON(c, http.StatusNotFound, "Cardapio inexistente")
		return
	}
	c.JSON(http.StatusOK, out)
}
