package escolas

import "strings"

// Escola is a school entity. The integer id is the store-level primary key
// (the seed data carries official school codes, no synthetic identifier).
type Escola struct {
	ID              int64  `bson:"_id" json:"_id"`
	Nome            string `bson:"nome" json:"nome"`
	TipoUnidade     string `bson:"tipo_unidade,omitempty" json:"tipo_unidade,omitempty"`
	TipoAtendimento string `bson:"tipo_atendimento,omitempty" json:"tipo_atendimento,omitempty"`
	Agrupamento     string `bson:"agrupamento,omitempty" json:"agrupamento,omitempty"`
	Telefone        string `bson:"telefone,omitempty" json:"telefone,omitempty"`
}

// NamePattern turns a search term into the case-insensitive pattern applied
// to nome: every literal space matches arbitrary text, so the spaced
// segments must occur in order ("escola municipal" matches
// "ESCOLA JOSE MUNICIPAL" but not "MUNICIPAL ESCOLA").
func NamePattern(nome string) string {
	return strings.ReplaceAll(nome, " ", ".*")
}
