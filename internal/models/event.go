package models

// OperationEvent is published to Kafka after a calculation is persisted.
type OperationEvent struct {
	OperationID  string  `json:"operation_id"`
	UserID       string  `json:"user_id"`
	TipoOperacao string  `json:"tipo_operacao"`
	Resultado    float64 `json:"resultado"`
	Timestamp    int64   `json:"timestamp"`
}
