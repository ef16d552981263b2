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

type predictionRequestRepo struct {
	pool *pgxpool.Pool
}

func NewPredictionRequestRepository(pool *pgxpool.Pool) ports.PredictionRequestRepository {
	return &predictionRequestRepo{pool: pool}
}

func (r *predictionRequestRepo) Create(ctx context.Context, req *domain.PredictionRequest) error {
	query := `
		INSERT INTO prediction_request
			(id, created_at, owner_id, course_title, price, content_duration,
			 num_lectures, level, days, prediction, algorithm_id, endpoint)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`
	_, err := r.pool.Exec(ctx, query,
		req.ID, req.CreatedAt, req.OwnerID,
		req.CourseTitle, req.Price, req.ContentDuration,
		req.NumLectures, string(req.Level), req.Days,
		req.Prediction, req.AlgorithmID, req.Endpoint,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEndpointConflict
		}
		return fmt.Errorf("create prediction request: %w", err)
	}
	return nil
}

func (r *predictionRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PredictionRequest, error) {
	query := selectRequest + ` WHERE id = $1`
	req, err := scanRequest(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("get prediction request by id: %w", err)
	}
	return req, nil
}

func (r *predictionRequestRepo) GetByEndpoint(ctx context.Context, endpoint string) (*domain.PredictionRequest, error) {
	query := selectRequest + ` WHERE endpoint = $1`
	req, err := scanRequest(r.pool.QueryRow(ctx, query, endpoint))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("get prediction request by endpoint: %w", err)
	}
	return req, nil
}

func (r *predictionRequestRepo) Update(ctx context.Context, req *domain.PredictionRequest) error {
	query := `
		UPDATE prediction_request
		SET course_title=$1, price=$2, content_duration=$3, num_lectures=$4,
			level=$5, days=$6, prediction=$7, algorithm_id=$8, endpoint=$9
		WHERE id = $10
	`
	tag, err := r.pool.Exec(ctx, query,
		req.CourseTitle, req.Price, req.ContentDuration, req.NumLectures,
		string(req.Level), req.Days, req.Prediction, req.AlgorithmID,
		req.Endpoint, req.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEndpointConflict
		}
		return fmt.Errorf("update prediction request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *predictionRequestRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM prediction_request WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete prediction request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *predictionRequestRepo) List(ctx context.Context, filter ports.RequestListFilter) ([]*domain.PredictionRequest, int, error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.OwnerID != nil {
		where += fmt.Sprintf(" AND owner_id = $%d", argPos)
		args = append(args, *filter.OwnerID)
		argPos++
	}
	if filter.AlgorithmID != nil {
		where += fmt.Sprintf(" AND algorithm_id = $%d", argPos)
		args = append(args, *filter.AlgorithmID)
		argPos++
	}
	if filter.Search != "" {
		where += fmt.Sprintf(" AND course_title ILIKE $%d", argPos)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM prediction_request"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count prediction requests: %w", err)
	}

	query := selectRequest + where + fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list prediction requests: %w", err)
	}
	defer rows.Close()

	reqs := make([]*domain.PredictionRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan prediction request: %w", err)
		}
		reqs = append(reqs, req)
	}
	return reqs, total, rows.Err()
}

func (r *predictionRequestRepo) EndpointTaken(ctx context.Context, endpoint string, excludeID uuid.UUID) (bool, error) {
	var taken bool
	query := `SELECT EXISTS (SELECT 1 FROM prediction_request WHERE endpoint = $1 AND id <> $2)`
	if err := r.pool.QueryRow(ctx, query, endpoint, excludeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("check prediction request endpoint: %w", err)
	}
	return taken, nil
}

const selectRequest = `
	SELECT id, created_at, owner_id, course_title, price, content_duration,
		   num_lectures, level, days, prediction, algorithm_id, endpoint
	FROM prediction_request`

func scanRequest(row pgx.Row) (*domain.PredictionRequest, error) {
	var (
		req   domain.PredictionRequest
		level string
	)
	err := row.Scan(
		&req.ID, &req.CreatedAt, &req.OwnerID,
		&req.CourseTitle, &req.Price, &req.ContentDuration,
		&req.NumLectures, &level, &req.Days,
		&req.Prediction, &req.AlgorithmID, &req.Endpoint,
	)
	if err != nil {
		return nil, err
	}
	req.Level = domain.Level(level)
	return &req, nil
}
