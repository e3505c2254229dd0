package escolas

import (
	"context"
	"regexp"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
)

// MemoryRepo is an in-memory Repository used by unit tests, applying the
// same projections as the Mongo implementation.
type MemoryRepo struct {
	mu      sync.RWMutex
	escolas []Escola

	SearchCalls int
	ListCalls   int
	GetCalls    int
}

func NewMemoryRepo(seed ...Escola) *MemoryRepo {
	return &MemoryRepo{escolas: seed}
}

func (m *MemoryRepo) SearchByName(ctx context.Context, nome string, limit int64) ([]bson.M, error) {
	m.mu.Lock()
	m.SearchCalls++
	m.mu.Unlock()

	re, err := regexp.Compile("(?i)" + NamePattern(nome))
	if err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []bson.M{}
	for _, e := range m.escolas {
		// limit 0 means unlimited, as in the store
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
		if re.MatchString(e.Nome) {
			out = append(out, bson.M{"_id": e.ID, "nome": e.Nome})
		}
	}
	return out, nil
}

func (m *MemoryRepo) ListAll(ctx context.Context) ([]bson.M, error) {
	m.mu.Lock()
	m.ListCalls++
	m.mu.Unlock()

	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []bson.M{}
	for _, e := range m.escolas {
		out = append(out, bson.M{"_id": e.ID, "nome": e.Nome})
	}
	return out, nil
}

func (m *MemoryRepo) GetByID(ctx context.Context, id int64) (bson.M, error) {
	m.mu.Lock()
	m.GetCalls++
	m.mu.Unlock()

	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.escolas {
		if e.ID == id {
			doc := bson.M{"nome": e.Nome}
			if e.TipoUnidade != "" {
				doc["tipo_unidade"] = e.TipoUnidade
			}
			if e.TipoAtendimento != "" {
				doc["tipo_atendimento"] = e.TipoAtendimento
			}
			if e.Agrupamento != "" {
				doc["agrupamento"] = e.Agrupamento
			}
			if e.Telefone != "" {
				doc["telefone"] = e.Telefone
			}
			return doc, nil
		}
	}
	return nil, ErrNotFound
}
