package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/koguilabs/calc-portal/internal/calc"
)

// OperationDB represents a calculation record in the database
type OperationDB struct {
	OperationID  uuid.UUID `db:"operation_id"`  // Primary key
	UserID       uuid.UUID `db:"user_id"`       // Owning user, immutable
	TipoOperacao string    `db:"tipo_operacao"` // soma, subtracao, multiplicacao, divisao
	Parametros   string    `db:"parametros"`    // JSON-encoded operand list
	Resultado    float64   `db:"resultado"`     // Stored with 2 fraction digits
	DataCriacao  time.Time `db:"data_criacao"`  // Creation timestamp, server-assigned
}

// ParametrosList decodes the stored operand list. A malformed value
// yields an empty list, matching reads of legacy rows.
func (o *OperationDB) ParametrosList() []float64 {
	var params []float64
	if err := json.Unmarshal([]byte(o.Parametros), &params); err != nil {
		return []float64{}
	}
	return params
}

// ParametrosDisplay renders the operand list as "10, 3, 2".
func (o *OperationDB) ParametrosDisplay() string {
	params := o.ParametrosList()
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = strconv.FormatFloat(p, 'f', -1, 64)
	}
	return strings.Join(parts, ", ")
}

// Simbolo returns the display symbol of the operation kind.
func (o *OperationDB) Simbolo() string {
	kind, err := calc.ParseKind(o.TipoOperacao)
	if err != nil {
		return "?"
	}
	return kind.Symbol()
}

// OperationResponse is the serialized form of a calculation record
// swagger:model OperationResponse
type OperationResponse struct {
	ID                uuid.UUID `json:"id"`
	Usuario           uuid.UUID `json:"usuario"`
	TipoOperacao      string    `json:"tipo_operacao"`
	Parametros        []float64 `json:"parametros"`
	ParametrosDisplay string    `json:"parametros_display"`
	SimboloOperacao   string    `json:"simbolo_operacao"`
	Resultado         float64   `json:"resultado"`
	DataCriacao       time.Time `json:"data_criacao"`
}

// NewOperationResponse builds the wire view of an operation record.
func NewOperationResponse(o *OperationDB) OperationResponse {
	return OperationResponse{
		ID:                o.OperationID,
		Usuario:           o.UserID,
		TipoOperacao:      o.TipoOperacao,
		Parametros:        o.ParametrosList(),
		ParametrosDisplay: o.ParametrosDisplay(),
		SimboloOperacao:   o.Simbolo(),
		Resultado:         o.Resultado,
		DataCriacao:       o.DataCriacao,
	}
}
