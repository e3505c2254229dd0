package escolas

import (
	"context"

	"github.com/pratoaberto/api/internal/cardapios"
	"go.mongodb.org/mongo-driver/bson"
)

// AgeRanges finds the distinct age-range labels among sampled menu records of
// a unit type. Satisfied by cardapios.Repository.
type AgeRanges interface {
	DistinctIdades(ctx context.Context, tipoUnidade string) ([]string, error)
}

// Service exposes the school operations backing the /escolas routes.
type Service struct {
	repo   Repository
	idades AgeRanges
}

func NewService(repo Repository, idades AgeRanges) *Service {
	return &Service{repo: repo, idades: idades}
}

func (s *Service) Search(ctx context.Context, nome string, limit int64) ([]bson.M, error) {
	return s.repo.SearchByName(ctx, nome, limit)
}

func (s *Service) ListAll(ctx context.Context) ([]bson.M, error) {
	return s.repo.ListAll(ctx)
}

// Detail fetches a school by id and enriches it with the distinct idade
// values of menu records sharing its tipo_unidade. An empty or missing
// tipo_unidade, or a type absent from the sampled records, yields the
// placeholder set instead of an error.
func (s *Service) Detail(ctx context.Context, id int64) (bson.M, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tipo, _ := doc["tipo_unidade"].(string)
	var idades []string
	if tipo != "" {
		idades, err = s.idades.DistinctIdades(ctx, tipo)
		if err != nil {
			return nil, err
		}
	}
	if len(idades) == 0 {
		idades = []string{cardapios.SemFaixa}
	}
	doc["idades"] = idades
	return doc, nil
}
