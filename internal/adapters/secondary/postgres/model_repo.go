package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"course-forecast-service/internal/core/domain"
	"course-forecast-service/internal/core/ports/output"
)

type mlModelRepo struct {
	pool *pgxpool.Pool
}

func NewMLModelRepository(pool *pgxpool.Pool) ports.MLModelRepository {
	return &mlModelRepo{pool: pool}
}

func (r *mlModelRepo) Create(ctx context.Context, model *domain.MLModel) error {
	query := `
		INSERT INTO ml_model
			(id, created_at, owner_id, name, version, description, endpoint, file_path)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`
	_, err := r.pool.Exec(ctx, query,
		model.ID, model.CreatedAt, model.OwnerID,
		model.Name, model.Version, model.Description,
		model.Endpoint, model.FilePath,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEndpointConflict
		}
		return fmt.Errorf("create ml model: %w", err)
	}
	return nil
}

func (r *mlModelRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.MLModel, error) {
	query := `
		SELECT id, created_at, owner_id, name, version, description, endpoint, file_path
		FROM ml_model
		WHERE id = $1
	`
	m, err := scanModel(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrModelNotFound
		}
		return nil, fmt.Errorf("get ml model by id: %w", err)
	}
	return m, nil
}

func (r *mlModelRepo) GetByEndpoint(ctx context.Context, endpoint string) (*domain.MLModel, error) {
	query := `
		SELECT id, created_at, owner_id, name, version, description, endpoint, file_path
		FROM ml_model
		WHERE endpoint = $1
	`
	m, err := scanModel(r.pool.QueryRow(ctx, query, endpoint))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrModelNotFound
		}
		return nil, fmt.Errorf("get ml model by endpoint: %w", err)
	}
	return m, nil
}

func (r *mlModelRepo) Update(ctx context.Context, model *domain.MLModel) error {
	query := `
		UPDATE ml_model
		SET name=$1, version=$2, description=$3, endpoint=$4, file_path=$5
		WHERE id = $6
	`
	tag, err := r.pool.Exec(ctx, query,
		model.Name, model.Version, model.Description,
		model.Endpoint, model.FilePath, model.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEndpointConflict
		}
		return fmt.Errorf("update ml model: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrModelNotFound
	}
	return nil
}

func (r *mlModelRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ml_model WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ml model: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrModelNotFound
	}
	return nil
}

func (r *mlModelRepo) List(ctx context.Context, filter ports.ModelListFilter) ([]*domain.MLModel, int, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.OwnerID != nil {
		where += fmt.Sprintf(" AND owner_id = $%d", argPos)
		args = append(args, *filter.OwnerID)
		argPos++
	}
	if filter.Search != "" {
		where += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", argPos, argPos)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM ml_model"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count ml models: %w", err)
	}

	query := `
		SELECT id, created_at, owner_id, name, version, description, endpoint, file_path
		FROM ml_model` + where + fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list ml models: %w", err)
	}
	defer rows.Close()

	models := make([]*domain.MLModel, 0)
	for rows.Next() {
		m, err := scanModel(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan ml model: %w", err)
		}
		models = append(models, m)
	}
	return models, total, rows.Err()
}

func (r *mlModelRepo) EndpointTaken(ctx context.Context, endpoint string, excludeID uuid.UUID) (bool, error) {
	var taken bool
	query := `SELECT EXISTS (SELECT 1 FROM ml_model WHERE endpoint = $1 AND id <> $2)`
	if err := r.pool.QueryRow(ctx, query, endpoint, excludeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("check ml model endpoint: %w", err)
	}
	return taken, nil
}

func scanModel(row pgx.Row) (*domain.MLModel, error) {
	var m domain.MLModel
	err := row.Scan(
		&m.ID, &m.CreatedAt, &m.OwnerID,
		&m.Name, &m.Version, &m.Description,
		&m.Endpoint, &m.FilePath,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
