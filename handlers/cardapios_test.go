package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pratoaberto/api/internal/cardapios"
	"github.com/pratoaberto/api/internal/escolas"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedCardapios(n int) *cardapios.MemoryRepo {
	repo := cardapios.NewMemoryRepo()
	for i := 0; i < n; i++ {
		repo.Seed(cardapios.Cardapio{
			Status:           cardapios.StatusPublicado,
			Data:             fmt.Sprintf("2018-05-%02d", i+1),
			TipoUnidade:      "EMEI",
			Idade:            "4 A 6 ANOS",
			CardapioOriginal: "texto original",
		})
	}
	return repo
}

func TestCardapios_ListOnlyPublished(t *testing.T) {
	repo := seedCardapios(2)
	repo.Seed(cardapios.Cardapio{Status: "SALVO", Data: "2018-05-09"})
	g := newTestServer(escolas.NewMemoryRepo(), repo)

	w := doRequest(t, g, httptest.NewRequest(http.MethodGet, "/cardapios", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 2)
	for _, doc := range out {
		require.NotContains(t, doc, "_id")
		require.NotContains(t, doc, "status")
		require.NotContains(t, doc, "cardapio_original")
	}
}

func TestCardapios_ExactDateFromPath(t *testing.T) {
	g := newTestServer(escolas.NewMemoryRepo(), seedCardapios(5))

	w := doRequest(t, g, httptest.NewRequest(http.MethodGet, "/cardapios/2018-05-03?data_inicial=2018-05-01&data_final=2018-05-05", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	// the path date wins over the range parameters
	require.Len(t, out, 1)
	require.Equal(t, "2018-05-03", out[0]["data"])
}

func TestCardapios_Pagination(t *testing.T) {
	g := newTestServer(escolas.NewMemoryRepo(), seedCardapios(9))

	w := doRequest(t, g, httptest.NewRequest(http.MethodGet, "/cardapios?limit=3&page=2", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	// offset 3..5 of the descending-by-date match set
	require.Len(t, out, 3)
	require.Equal(t, "2018-05-06", out[0]["data"])
	require.Equal(t, "2018-05-04", out[2]["data"])
}

func TestCardapios_MalformedPage(t *testing.T) {
	g := newTestServer(escolas.NewMemoryRepo(), seedCardapios(1))

	w := doRequest(t, g, httptest.NewRequest(http.MethodGet, "/cardapios?limit=3&page=x", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"erro": "parâmetro inválido: page"}`, w.Body.String())
}

func TestCardapio_GetByID(t *testing.T) {
	repo := cardapios.NewMemoryRepo()
	id := primitive.NewObjectID()
	repo.Seed(cardapios.Cardapio{ID: id, Status: cardapios.StatusPublicado, Data: "2018-05-01"})
	g := newTestServer(escolas.NewMemoryRepo(), repo)

	w := doRequest(t, g, httptest.NewRequest(http.MethodGet, "/cardapio/"+id.Hex(), nil))
	require.Equal(t, http.StatusOK, w.Code)

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 1)
	require.Equal(t, "2018-05-01", out[0]["data"])
}

func TestCardapio_GetNotFound(t *testing.T) {
	g := newTestServer(escolas.NewMemoryRepo(), cardapios.NewMemoryRepo())

	w := doRequest(t, g, httptest.NewRequest(http.MethodGet, "/cardapio/"+primitive.NewObjectID().Hex(), nil))
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"erro": "Cardapio inexistente"}`, w.Body.String())
}

func TestCardapio_GetInvalidID(t *testing.T) {
	g := newTestServer(escolas.NewMemoryRepo(), cardapios.NewMemoryRepo())

	w := doRequest(t, g, httptest.NewRequest(http.MethodGet, "/cardapio/not-an-oid", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}
