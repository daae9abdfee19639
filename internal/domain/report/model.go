package report

import "strings"

const (
	// StatusPending is assigned at creation. The store never advances a
	// status on its own; it persists whatever string it is given.
	StatusPending  = "Em Análise"
	StatusResolved = "Resolvido"

	// OwnerAnonymous marks reports submitted without an active session.
	OwnerAnonymous = "anonimo"

	// DateLayout is the locale-formatted dd/mm/yyyy string shown on report cards.
	DateLayout = "02/01/2006"
)

// Categories is the fixed list used by the submission form and the
// dashboard, in display order.
var Categories = []string{
	"Acessibilidade",
	"Ciclismo",
	"Comércio e Fiscalização",
	"Corrupção e Má Gestão",
	"Drenagem",
	"Educação",
	"Habitação",
	"Infraestrutura",
	"Limpeza Urbana e Lixo",
	"Meio Ambiente",
	"Obras",
	"Redes Elétricas/Luz",
	"Saúde Pública",
	"Segurança",
	"Transporte",
	"Outros",
}

// Report is a single complaint. Every field is immutable after creation;
// delete is the only mutation the store exposes.
type Report struct {
	ID          int64  `json:"id"`
	OwnerKey    string `json:"userId"`
	Category    string `json:"category"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Status      string `json:"status"`
}

// NormalizeOwner lowercases an owner key so report ownership matches the
// account store's case-insensitive email handling. Empty keys become the
// anonymous sentinel.
func NormalizeOwner(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return OwnerAnonymous
	}
	return key
}

// KnownCategory reports whether c is one of the fixed form categories.
func KnownCategory(c string) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}
