package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"roomops/infras/otel"
	"roomops/infras/postgres"
	"roomops/internal/domains/invoice/model"
	"roomops/shared/constant"
	gDto "roomops/shared/dto"
	"roomops/shared/logger"
	gRepo "roomops/shared/repository"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Invoice interface {
	// CreateTx inserts the invoice unless the booking already has one, reporting whether this call created it.
	// It never fails on the duplicate, so the transaction stays usable for reading the existing invoice.
	CreateTx(ctx context.Context, sqltx *sqlx.Tx, invoice model.Invoice) (bool, error)
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Invoice, error)
	// GetTx loads the invoice header only.
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Invoice, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Invoice]
	lines gRepo.Repository[model.Line]
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Invoice {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Invoice](model.EntityName, model.TableName, model.FieldID, db, otel),
		lines:      gRepo.NewRepository[model.Line](model.LineEntityName, model.LineTableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) CreateTx(ctx context.Context, sqltx *sqlx.Tx, invoice model.Invoice) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".invoice.CreateTx")
	defer scope.End()

	placeholders := make([]string, 0, len(r.InsertColumns))
	for _, col := range r.InsertColumns {
		placeholders = append(placeholders, ":"+col)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO NOTHING",
		model.TableName, strings.Join(r.InsertColumns, ", "), strings.Join(placeholders, ", "), model.FieldBookingID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := sqltx.NamedExecContext(ctx, query, invoice)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to create invoice: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows (invoice): %w", err)
	}

	if affected == 0 {
		return false, nil
	}

	lines := make([]model.Line, 0, len(invoice.Lines))

	for _, line := range invoice.Lines {
		if line.ID == constant.Empty {
			line.ID = uuid.NewString()
		}

		line.InvoiceID = invoice.ID
		lines = append(lines, line)
	}

	if err = r.lines.InsertBulkTx(ctx, sqltx, lines); err != nil {
		return false, fmt.Errorf("failed to create invoice lines: %w", err)
	}

	return true, nil
}

func (r *repositoryImpl) Get(ctx context.Context, filter gDto.FilterGroup) (model.Invoice, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".invoice.Get")
	defer scope.End()

	invoice, err := r.Repository.Get(ctx, filter)
	if err != nil || invoice.ID == constant.Empty {
		return invoice, err //nolint:wrapcheck
	}

	params := gDto.Ascending(model.FieldPosition)

	lineFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldInvoiceID, Value: invoice.ID, Operator: gDto.FilterOperatorEq, Table: model.LineTableName},
		},
	}

	invoice.Lines, err = r.lines.GetAll(ctx, params, lineFilter)
	if err != nil {
		return invoice, fmt.Errorf("failed to get invoice lines: %w", err)
	}

	return invoice, nil
}
