package cardapios

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-memory Repository used by unit tests. It mirrors the
// Mongo semantics the handlers rely on (filtering, descending date sort,
// skip/limit, projections, ordered upserts) over a document slice kept in
// insertion order, and counts calls so tests can assert that gated routes
// never touch the store.
type MemoryRepo struct {
	mu   sync.RWMutex
	docs []bson.M

	ListCalls int
	GetCalls  int
	AggCalls  int
	BulkCalls int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Seed inserts records directly, assigning ObjectIDs where missing.
func (m *MemoryRepo) Seed(items ...Cardapio) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range items {
		doc := cloneDoc(items[i].Fields())
		if items[i].HasID() {
			doc["_id"] = items[i].ID
		} else {
			doc["_id"] = primitive.NewObjectID()
		}
		m.docs = append(m.docs, doc)
	}
}

// Len returns the number of stored documents.
func (m *MemoryRepo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}

func (m *MemoryRepo) List(ctx context.Context, q ListQuery, projected bool) ([]bson.M, error) {
	m.mu.Lock()
	m.ListCalls++
	m.mu.Unlock()

	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := []bson.M{}
	for _, doc := range m.docs {
		if matches(doc, q) {
			matched = append(matched, doc)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		di, _ := matched[i]["data"].(string)
		dj, _ := matched[j]["data"].(string)
		return di > dj
	})

	skip, limit := q.Offsets()
	if skip > int64(len(matched)) {
		skip = int64(len(matched))
	}
	matched = matched[skip:]
	if limit > 0 && limit < int64(len(matched)) {
		matched = matched[:limit]
	}

	out := make([]bson.M, 0, len(matched))
	for _, doc := range matched {
		out = append(out, project(doc, projected))
	}
	return out, nil
}

func (m *MemoryRepo) GetByID(ctx context.Context, id primitive.ObjectID) ([]bson.M, error) {
	m.mu.Lock()
	m.GetCalls++
	m.mu.Unlock()

	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []bson.M{}
	for _, doc := range m.docs {
		if doc["_id"] == id {
			out = append(out, cloneDoc(doc))
		}
	}
	return out, nil
}

func (m *MemoryRepo) DistinctIdades(ctx context.Context, tipoUnidade string) ([]string, error) {
	m.mu.Lock()
	m.AggCalls++
	m.mu.Unlock()

	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := map[string]bool{}
	var idades []string
	for i, doc := range m.docs {
		if i >= 100 {
			break
		}
		if doc["tipo_unidade"] != tipoUnidade {
			continue
		}
		idade, _ := doc["idade"].(string)
		if !seen[idade] {
			seen[idade] = true
			idades = append(idades, idade)
		}
	}
	return idades, nil
}

func (m *MemoryRepo) BulkUpsert(ctx context.Context, items []Cardapio) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BulkCalls++
	for i := range items {
		it := &items[i]
		if it.HasID() {
			// field-level set on the matched document; a miss is a no-op
			for _, doc := range m.docs {
				if doc["_id"] == it.ID {
					for k, v := range it.Fields() {
						doc[k] = v
					}
					break
				}
			}
			continue
		}
		doc := cloneDoc(it.Fields())
		doc["_id"] = primitive.NewObjectID()
		m.docs = append(m.docs, doc)
	}
	return nil
}

func matches(doc bson.M, q ListQuery) bool {
	status, _ := doc["status"].(string)
	if len(q.Statuses) > 0 {
		ok := false
		for _, s := range q.Statuses {
			if s == status {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	} else if status != StatusPublicado {
		return false
	}

	for field, want := range map[string]string{
		"agrupamento":      q.Agrupamento,
		"tipo_atendimento": q.TipoAtendimento,
		"tipo_unidade":     q.TipoUnidade,
		"idade":            q.Idade,
	} {
		if want != "" && doc[field] != want {
			return false
		}
	}

	data, _ := doc["data"].(string)
	if q.Data != "" {
		return data == q.Data
	}
	if q.DataInicial != "" && data < q.DataInicial {
		return false
	}
	if q.DataFinal != "" && data > q.DataFinal {
		return false
	}
	return true
}

func project(doc bson.M, projected bool) bson.M {
	out := bson.M{}
	for k, v := range doc {
		if projected && (k == "_id" || k == "status" || k == "cardapio_original") {
			continue
		}
		out[k] = v
	}
	return out
}

func cloneDoc(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
