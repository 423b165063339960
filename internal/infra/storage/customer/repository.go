package customer

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/teebhagg/Zaina-Hair-Studio-sub000/internal/domain"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/dbmetrics"
	"github.com/teebhagg/Zaina-Hair-Studio-sub000/pkg/psqlbuilder"
)

// Repository репозиторий клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert находит клиента по email (без учета регистра) или создает нового
// Имя обновляется всегда, телефон - только если передан
func (r *Repository) Upsert(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	customer.Email = strings.ToLower(strings.TrimSpace(customer.Email))

	query, args, err := psqlbuilder.Insert("customers").
		Columns("name", "email", "phone").
		Values(customer.Name, customer.Email, customer.Phone).
		Suffix("ON CONFLICT (email) DO UPDATE SET " +
			"name = EXCLUDED.name, " +
			"phone = COALESCE(EXCLUDED.phone, customers.phone), " +
			"updated_at = NOW() " +
			"RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&customer.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}

	customer.CreatedAt = createdAt.Time
	customer.UpdatedAt = updatedAt.Time

	return customer, nil
}
