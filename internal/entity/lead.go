package entity

import "time"

// Status dos leads conforme o backend metropole.
const (
	StatusNovo           = "NOVO"
	StatusContatoFeito   = "CONTATO_FEITO"
	StatusQualificado    = "QUALIFICADO"
	StatusNaoQualificado = "NÃO_QUALIFICADO"
	StatusQualificadoOp  = "QUALIFICADO_OP"
	StatusProposta       = "PROPOSTA"
	StatusFechado        = "FECHADO"
)

// LeadStatuses lista os status na ordem do funil.
var LeadStatuses = []string{
	StatusNovo,
	StatusContatoFeito,
	StatusQualificado,
	StatusNaoQualificado,
	StatusQualificadoOp,
	StatusProposta,
	StatusFechado,
}

func IsValidStatus(status string) bool {
	for _, s := range LeadStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Unspecified é o rótulo usado quando um campo de texto vem vazio do backend.
const Unspecified = "Não especificado"

// Lead espelha o registro cru do metropole. Os campos fieldNN são genéricos
// no backend; o uso de cada um (field01=cidade, field03=status, field18=observações,
// field19=interesse) é convenção do tenant.
type Lead struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	CellPhone          string `json:"cellPhone"`
	Product            string `json:"product"`
	InteressePrincipal string `json:"interessePrincipal,omitempty"`
	Field01            string `json:"field01,omitempty"`
	Field02            string `json:"field02,omitempty"`
	Field03            string `json:"field03,omitempty"`
	Field04            string `json:"field04,omitempty"`
	Field05            string `json:"field05,omitempty"`
	Field06            string `json:"field06,omitempty"`
	Field07            string `json:"field07,omitempty"`
	Field08            string `json:"field08,omitempty"`
	Field09            string `json:"field09,omitempty"`
	Field18            string `json:"field18,omitempty"`
	Field19            string `json:"field19,omitempty"`
	CreatedAt          string `json:"createdAt"`
}

// Status normaliza registros antigos que chegam sem field03.
func (l Lead) Status() string {
	if l.Field03 == "" {
		return StatusNovo
	}
	return l.Field03
}

func (l Lead) City() string {
	if l.Field01 == "" {
		return Unspecified
	}
	return l.Field01
}

func (l Lead) Interest() string {
	if l.Field19 != "" {
		return l.Field19
	}
	if l.InteressePrincipal != "" {
		return l.InteressePrincipal
	}
	return Unspecified
}

func (l Lead) Notes() string {
	if l.Field18 != "" {
		return l.Field18
	}
	if l.Field01 != "" {
		return l.Field01
	}
	return l.Field02
}

// CreatedTime interpreta o timestamp ISO-8601 do backend. O segundo retorno
// indica se a data pôde ser interpretada.
func (l Lead) CreatedTime() (time.Time, bool) {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, l.CreatedAt); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
