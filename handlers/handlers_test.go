package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pratoaberto/api/internal/cardapios"
	"github.com/pratoaberto/api/internal/escolas"
)

const testSecret = "s3cret"

func newTestServer(eRepo *escolas.MemoryRepo, cRepo *cardapios.MemoryRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	cSvc := cardapios.NewService(cRepo)
	eSvc := escolas.NewService(eRepo, cRepo)
	NewEscolasHandler(eSvc).Register(g)
	NewCardapiosHandler(cSvc).Register(g)
	NewEditorHandler(cSvc).Register(g, testSecret)
	return g
}

func doRequest(t *testing.T, g *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}
