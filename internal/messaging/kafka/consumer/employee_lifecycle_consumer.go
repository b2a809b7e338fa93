package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"go-hrpay/internal/events"
	"go-hrpay/internal/salary"
	salaryerrors "go-hrpay/internal/salary/errors"
)

func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	salaryService salary.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		effectiveDate := time.Now().UTC().Format("2006-01-02")
		_, err = salaryService.Create(ctx, salary.CreateSalaryRequest{
			EmployeeID:    event.EmployeeID,
			Amount:        decimal.Zero,
			EffectiveDate: effectiveDate,
		})
		if err != nil {
			if isDuplicateSalary(err) {
				log.Warn("salary record already exists for event, skipping",
					zap.String("employee_id", event.EmployeeID),
					zap.String("request_id", event.RequestID),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			if isUnprocessableEvent(err) {
				// Redelivery cannot fix a bad or dangling employee id;
				// commit so the message does not poison the partition.
				log.Error("employee lifecycle event cannot be processed, skipping",
					zap.String("employee_id", event.EmployeeID),
					zap.String("request_id", event.RequestID),
					zap.Error(err),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("create initial salary record failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("request_id", event.RequestID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("initial salary record created from employee_created event",
			zap.String("employee_id", event.EmployeeID),
			zap.String("request_id", event.RequestID),
		)
	}
}

// isUnprocessableEvent reports errors no retry can resolve: a malformed
// employee id in the payload, or an employee row that no longer exists.
func isUnprocessableEvent(err error) bool {
	return errors.Is(err, salaryerrors.ErrInvalidEmployeeID) ||
		errors.Is(err, salaryerrors.ErrEmployeeNotFound)
}

// isDuplicateSalary treats redelivery of an already-processed event as a
// success; the unique (employee_id, effective_date) index is the dedupe.
func isDuplicateSalary(err error) bool {
	if errors.Is(err, salaryerrors.ErrSalaryAlreadyExists) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_salaries_employee_effective"
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_salaries_employee_effective")
}
