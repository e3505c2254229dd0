package escolas

import (
	"context"
	"errors"
	"testing"

	"github.com/pratoaberto/api/internal/cardapios"
	"github.com/stretchr/testify/require"
)

func TestService_SearchAppliesLimitAndProjection(t *testing.T) {
	repo := NewMemoryRepo(
		Escola{ID: 1, Nome: "EMEI VILA NOVA", TipoUnidade: "EMEI", Telefone: "5555-0001"},
		Escola{ID: 2, Nome: "EMEF VILA FORMOSA", TipoUnidade: "EMEF"},
		Escola{ID: 3, Nome: "EMEI VILA SONIA", TipoUnidade: "EMEI"},
	)
	svc := NewService(repo, cardapios.NewMemoryRepo())

	out, err := svc.Search(context.Background(), "emei vila", 1)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, int64(1), out[0]["_id"])
	require.Equal(t, "EMEI VILA NOVA", out[0]["nome"])
	require.NotContains(t, out[0], "telefone")
	require.NotContains(t, out[0], "tipo_unidade")
}

func TestService_ListAllHidesCategoricalFields(t *testing.T) {
	repo := NewMemoryRepo(
		Escola{ID: 1, Nome: "EMEI VILA NOVA", TipoUnidade: "EMEI", Agrupamento: "G1", Telefone: "5555-0001"},
	)
	svc := NewService(repo, cardapios.NewMemoryRepo())

	out, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Contains(t, out[0], "_id")
	require.Contains(t, out[0], "nome")
	require.NotContains(t, out[0], "tipo_unidade")
	require.NotContains(t, out[0], "agrupamento")
	require.NotContains(t, out[0], "telefone")
}

func TestService_DetailEnrichment(t *testing.T) {
	repo := NewMemoryRepo(Escola{ID: 10, Nome: "EMEI VILA NOVA", TipoUnidade: "EMEI"})
	menus := cardapios.NewMemoryRepo()
	menus.Seed(
		cardapios.Cardapio{Status: cardapios.StatusPublicado, Data: "2018-05-01", TipoUnidade: "EMEI", Idade: "4 A 6 ANOS"},
		cardapios.Cardapio{Status: "SALVO", Data: "2018-05-02", TipoUnidade: "EMEI", Idade: "0 A 3 ANOS"},
		cardapios.Cardapio{Status: cardapios.StatusPublicado, Data: "2018-05-03", TipoUnidade: "CEU", Idade: "7 A 11 ANOS"},
	)
	svc := NewService(repo, menus)

	doc, err := svc.Detail(context.Background(), 10)
	require.NoError(t, err)
	require.NotContains(t, doc, "_id")
	// the sample spans all statuses, so both idade values of the type appear
	require.ElementsMatch(t, []string{"4 A 6 ANOS", "0 A 3 ANOS"}, doc["idades"])
}

func TestService_DetailPlaceholderWhenNoMatch(t *testing.T) {
	repo := NewMemoryRepo(
		Escola{ID: 10, Nome: "EMEI VILA NOVA", TipoUnidade: "EMEI"},
		Escola{ID: 11, Nome: "SEM TIPO"},
	)
	svc := NewService(repo, cardapios.NewMemoryRepo())

	// tipo_unidade matches no menu record
	doc, err := svc.Detail(context.Background(), 10)
	require.NoError(t, err)
	require.Equal(t, []string{cardapios.SemFaixa}, doc["idades"])

	// missing tipo_unidade short-circuits to the placeholder
	doc, err = svc.Detail(context.Background(), 11)
	require.NoError(t, err)
	require.Equal(t, []string{cardapios.SemFaixa}, doc["idades"])
}

func TestService_DetailNotFound(t *testing.T) {
	svc := NewService(NewMemoryRepo(), cardapios.NewMemoryRepo())
	_, err := svc.Detail(context.Background(), 99)
	require.True(t, errors.Is(err, ErrNotFound))
}
