package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/koguilabs/calc-portal/internal/calc"
	"github.com/koguilabs/calc-portal/internal/logger"
	"github.com/koguilabs/calc-portal/internal/models"
)

// ErrOperationNotFound is returned when a record does not exist or is owned
// by another user. The two cases are indistinguishable.
var ErrOperationNotFound = errors.New("operation not found")

// Pagination bounds for history listing.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// OperationWriter defines write operations for calculation records.
type OperationWriter interface {
	Save(ctx context.Context, userID uuid.UUID, tipoOperacao, parametros string, resultado float64) (*models.OperationDB, error)
	DeleteByID(ctx context.Context, userID, operationID uuid.UUID) error
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// OperationReader defines read operations for calculation records.
type OperationReader interface {
	GetByID(ctx context.Context, userID, operationID uuid.UUID) (*models.OperationDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.OperationDB, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// HistoryService computes operations and manages the per-user history.
type HistoryService struct {
	writeRepo   OperationWriter
	readRepo    OperationReader
	kafkaWriter KafkaWriter
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(writeRepo OperationWriter, readRepo OperationReader, kafkaWriter KafkaWriter) *HistoryService {
	return &HistoryService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		kafkaWriter: kafkaWriter,
	}
}

// roundResult rounds to the stored precision of 2 fraction digits, half away
// from zero. The engine computes at full float64 precision; this is the one
// place where rounding happens, right before the value is persisted.
func roundResult(x float64) float64 {
	return math.Round(x*100) / 100
}

// Calculate validates the input, computes the result and persists a new
// record owned by userID. Nothing is persisted on validation failure.
func (s *HistoryService) Calculate(ctx context.Context, userID uuid.UUID, tipoOperacao string, numeros []float64) (*models.OperationDB, error) {
	kind, err := calc.ParseKind(tipoOperacao)
	if err != nil {
		fieldErrs := FieldErrors{}
		fieldErrs.Add("tipo_operacao", "Tipo de operação inválido.")
		return nil, fieldErrs
	}

	resultado, err := calc.Compute(kind, numeros)
	if err != nil {
		fieldErrs := FieldErrors{}
		switch {
		case errors.Is(err, calc.ErrInsufficientOperands):
			fieldErrs.Add("numeros", "São necessários pelo menos 2 números para a operação.")
		case errors.Is(err, calc.ErrDivisionByZero):
			fieldErrs.Add("numeros", "Divisão por zero não é permitida.")
		default:
			return nil, err
		}
		return nil, fieldErrs
	}

	parametros, err := json.Marshal(numeros)
	if err != nil {
		logger.Log.Errorw("failed to encode operands", "err", err)
		return nil, err
	}

	op, err := s.writeRepo.Save(ctx, userID, kind.String(), string(parametros), roundResult(resultado))
	if err != nil {
		logger.Log.Errorw("failed to save operation", "user_id", userID, "err", err)
		return nil, err
	}

	s.publishOperation(ctx, op)

	return op, nil
}

// publishOperation publishes an operation-created event to Kafka.
func (s *HistoryService) publishOperation(ctx context.Context, op *models.OperationDB) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "operation_id", op.OperationID)
		return
	}

	event := models.OperationEvent{
		OperationID:  op.OperationID.String(),
		UserID:       op.UserID.String(),
		TipoOperacao: op.TipoOperacao,
		Resultado:    op.Resultado,
		Timestamp:    time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal operation event for Kafka", "operation_id", op.OperationID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.OperationID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish operation event to Kafka", "operation_id", op.OperationID, "error", err)
	} else {
		logger.Log.Infow("Operation event published to Kafka", "operation_id", op.OperationID, "resultado", op.Resultado)
	}
}

// List returns a page of records owned by userID, newest first, together
// with the total count. Out-of-range pages yield an empty slice.
func (s *HistoryService) List(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]models.OperationDB, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	total, err := s.readRepo.CountByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count operations", "user_id", userID, "err", err)
		return nil, 0, err
	}

	ops, err := s.readRepo.ListByUser(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		logger.Log.Errorw("failed to list operations", "user_id", userID, "err", err)
		return nil, 0, err
	}

	return ops, total, nil
}

// Get returns the record if it exists and is owned by userID.
func (s *HistoryService) Get(ctx context.Context, userID, operationID uuid.UUID) (*models.OperationDB, error) {
	op, err := s.readRepo.GetByID(ctx, userID, operationID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOperationNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to get operation", "user_id", userID, "operation_id", operationID, "err", err)
		return nil, err
	}
	return op, nil
}

// Delete removes the record if it exists and is owned by userID. Deleting
// the same record twice reports not found the second time.
func (s *HistoryService) Delete(ctx context.Context, userID, operationID uuid.UUID) error {
	err := s.writeRepo.DeleteByID(ctx, userID, operationID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrOperationNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete operation", "user_id", userID, "operation_id", operationID, "err", err)
		return err
	}
	return nil
}

// ClearAll deletes every record owned by userID and returns the count.
func (s *HistoryService) ClearAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.writeRepo.DeleteAllByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to clear history", "user_id", userID, "err", err)
		return 0, err
	}
	return count, nil
}
