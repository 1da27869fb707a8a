package metropole

// SubmitLeadInput carrega os campos de criação de lead vindos do formulário.
// O status nunca é aceito do chamador: o client força NOVO no payload.
type SubmitLeadInput struct {
	TenantID           int
	Name               string
	Email              string
	CellPhone          string
	Product            string
	InteressePrincipal string
	Field01            string
	Field02            string
	Field04            string
	Field05            string
	Field06            string
	Field07            string
	Field08            string
	Field09            string
	Field18            string
	Field19            string
}

// tenantRef é o envelope que o endpoint /send espera para o tenant.
type tenantRef struct {
	ID int `json:"id"`
}

type submitLeadRequest struct {
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	CellPhone          string    `json:"cellPhone"`
	Product            string    `json:"product"`
	InteressePrincipal string    `json:"interessePrincipal"`
	Field01            string    `json:"field01,omitempty"`
	Field02            string    `json:"field02,omitempty"`
	Field03            string    `json:"field03"`
	Field04            string    `json:"field04,omitempty"`
	Field05            string    `json:"field05,omitempty"`
	Field06            string    `json:"field06,omitempty"`
	Field07            string    `json:"field07,omitempty"`
	Field08            string    `json:"field08,omitempty"`
	Field09            string    `json:"field09,omitempty"`
	Field18            string    `json:"field18,omitempty"`
	Field19            string    `json:"field19,omitempty"`
	TenantID           tenantRef `json:"tenantId"`
}

type updateStatusRequest struct {
	Field03 string `json:"field03"`
}
