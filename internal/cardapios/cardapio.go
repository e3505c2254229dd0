package cardapios

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusPublicado gates public visibility: the public routes only ever see
// records carrying this status.
const StatusPublicado = "PUBLICADO"

// SemFaixa is the placeholder age-range set returned when a school's
// tipo_unidade matches no sampled menu record.
const SemFaixa = "UNIDADE SEM FAIXA"

// Cardapio is a dated menu record. Records are schemaless in the store, so
// the struct types the enumerated known fields and carries everything else
// in Extra, accepted on write and passed through on read.
type Cardapio struct {
	ID               interface{}            `bson:"_id,omitempty"`
	Status           string                 `bson:"status,omitempty"`
	Data             string                 `bson:"data,omitempty"`
	Agrupamento      string                 `bson:"agrupamento,omitempty"`
	TipoAtendimento  string                 `bson:"tipo_atendimento,omitempty"`
	TipoUnidade      string                 `bson:"tipo_unidade,omitempty"`
	Idade            string                 `bson:"idade,omitempty"`
	CardapioOriginal string                 `bson:"cardapio_original,omitempty"`
	Extra            map[string]interface{} `bson:",inline"`

	// fields holds exactly what the caller submitted (minus _id), so that
	// the upsert $set writes submitted fields only.
	fields bson.M
}

// HasID reports whether the record carries a usable identifier.
func (c *Cardapio) HasID() bool {
	return c.ID != nil
}

// Fields returns the document fields to be written, excluding the identifier.
// For records decoded from JSON this is exactly the submitted set; for records
// built programmatically it is derived from the non-empty known fields plus
// Extra.
func (c *Cardapio) Fields() bson.M {
	if c.fields != nil {
		return c.fields
	}
	out := bson.M{}
	for k, v := range c.Extra {
		out[k] = v
	}
	for k, v := range map[string]string{
		"status":            c.Status,
		"data":              c.Data,
		"agrupamento":       c.Agrupamento,
		"tipo_atendimento":  c.TipoAtendimento,
		"tipo_unidade":      c.TipoUnidade,
		"idade":             c.Idade,
		"cardapio_original": c.CardapioOriginal,
	} {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// UnmarshalJSON keeps the known fields typed and funnels everything else into
// Extra, remembering the submitted field set for upserts.
func (c *Cardapio) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.fields = bson.M{}
	c.Extra = map[string]interface{}{}
	for k, v := range raw {
		if k == "_id" {
			c.ID = normalizeID(v)
			continue
		}
		if s, ok := v.(string); ok {
			switch k {
			case "status":
				c.Status = s
			case "data":
				c.Data = s
			case "agrupamento":
				c.Agrupamento = s
			case "tipo_atendimento":
				c.TipoAtendimento = s
			case "tipo_unidade":
				c.TipoUnidade = s
			case "idade":
				c.Idade = s
			case "cardapio_original":
				c.CardapioOriginal = s
			default:
				c.Extra[k] = v
			}
			c.fields[k] = s
			continue
		}
		c.Extra[k] = v
		c.fields[k] = v
	}
	return nil
}

// MarshalJSON merges the known fields and the extras bag back into one object.
func (c Cardapio) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{}
	for k, v := range c.Extra {
		out[k] = v
	}
	for k, v := range map[string]string{
		"status":            c.Status,
		"data":              c.Data,
		"agrupamento":       c.Agrupamento,
		"tipo_atendimento":  c.TipoAtendimento,
		"tipo_unidade":      c.TipoUnidade,
		"idade":             c.Idade,
		"cardapio_original": c.CardapioOriginal,
	} {
		if v != "" {
			out[k] = v
		}
	}
	if c.ID != nil {
		if oid, ok := c.ID.(primitive.ObjectID); ok {
			out["_id"] = oid.Hex()
		} else {
			out["_id"] = c.ID
		}
	}
	return json.Marshal(out)
}

// normalizeID coerces a JSON identifier into its store representation: a
// 24-hex string (or extended-JSON {"$oid": ...}) becomes an ObjectID, any
// other non-empty value is used as-is, empty means "no identifier".
func normalizeID(v interface{}) interface{} {
	switch id := v.(type) {
	case string:
		if id == "" {
			return nil
		}
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			return oid
		}
		return id
	case map[string]interface{}:
		if hex, ok := id["$oid"].(string); ok {
			if oid, err := primitive.ObjectIDFromHex(hex); err == nil {
				return oid
			}
		}
		return nil
	case nil:
		return nil
	default:
		return v
	}
}
