package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/cpr_dispatch/internal/models"
)

const requestColumns = `
	id,
	location,
	distance,
	latitude,
	longitude,
	type,
	description,
	accepted_etas,
	has_medical_profile,
	can_sms,
	created_at,
	updated_at`

// createLockKey - ключ advisory-блокировки, под которой вставляются запросы
const createLockKey int64 = 7301

// PgxPool - методы пула pgx, которые использует репозиторий
type PgxPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// PostgresRequestRepository хранит реестр в PostgreSQL.
// Нужен, когда несколько экземпляров сервиса принимают запросы одновременно.
type PostgresRequestRepository struct {
	db          PgxPool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

// NewPostgresRequestRepository создает репозиторий. redisClient может быть nil, тогда кэш отключен.
func NewPostgresRequestRepository(db PgxPool, redisClient *redis.Client, cacheTTL time.Duration) *PostgresRequestRepository {
	return &PostgresRequestRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// List возвращает все запросы в порядке создания
func (r *PostgresRequestRepository) List(ctx context.Context) ([]*models.EmergencyRequest, error) {
	query := `SELECT` + requestColumns + `
		FROM emergency_requests
		ORDER BY seq;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	defer rows.Close()

	reqs := make([]*models.EmergencyRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request row: %w", err)
		}
		reqs = append(reqs, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return reqs, nil
}

// GetByID возвращает запрос по id, сначала пробуя кэш
func (r *PostgresRequestRepository) GetByID(ctx context.Context, id string) (*models.EmergencyRequest, error) {
	if cached, err := r.getFromCache(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	query := `SELECT` + requestColumns + `
		FROM emergency_requests
		WHERE id = $1;
	`
	req, err := scanRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("request with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get request by id: %w", err)
	}

	// Кэш вспомогательный, его ошибки не мешают чтению
	_ = r.setCache(ctx, req)
	return req, nil
}

// Create вставляет новый запрос. Вставки идут по одной под advisory-блокировкой,
// поэтому seq и created_at растут в одном порядке.
func (r *PostgresRequestRepository) Create(ctx context.Context, req *models.EmergencyRequest) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin create transaction: %w", err)
	}

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1);`, createLockKey); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("failed to lock requests for create: %w", err)
	}

	// created_at не меньше, чем у последнего запроса, даже если часы базы ушли назад
	var createdAt time.Time
	err = tx.QueryRow(ctx, `
		SELECT GREATEST(clock_timestamp(), COALESCE(
			(SELECT created_at FROM emergency_requests ORDER BY seq DESC LIMIT 1),
			'-infinity'::timestamptz));
	`).Scan(&createdAt)
	if err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("failed to pick created_at: %w", err)
	}

	query := `
		INSERT INTO emergency_requests
			(id, location, distance, latitude, longitude, type, description, has_medical_profile, can_sms,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING created_at, updated_at;
	`
	err = tx.QueryRow(ctx, query,
		req.ID,
		req.Location,
		req.Distance,
		req.Coordinates.Lat,
		req.Coordinates.Lng,
		req.Type,
		req.Description,
		req.HasMedicalProfile,
		req.CanSMS,
		createdAt,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("failed to create request: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit create: %w", err)
	}
	return nil
}

// Accept добавляет ETA одним UPDATE, поэтому параллельные принятия не теряются
func (r *PostgresRequestRepository) Accept(ctx context.Context, id string, etaMinutes int) (*models.EmergencyRequest, error) {
	query := `
		UPDATE emergency_requests SET
			accepted_etas = array_append(accepted_etas, $2),
			updated_at = NOW()
		WHERE id = $1
		RETURNING` + requestColumns + `;
	`
	req, err := scanRequest(r.db.QueryRow(ctx, query, id, models.FormatETA(etaMinutes)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("request with id %s not found for accept: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to accept request: %w", err)
	}

	_ = r.invalidateCache(ctx, id)
	return req, nil
}

// Seed вставляет начальные запросы, существующие id не трогает
func (r *PostgresRequestRepository) Seed(ctx context.Context, reqs []*models.EmergencyRequest) error {
	query := `
		INSERT INTO emergency_requests
			(id, location, distance, latitude, longitude, type, description, accepted_etas,
			 has_medical_profile, can_sms, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		ON CONFLICT (id) DO NOTHING;
	`
	batch := &pgx.Batch{}
	for _, req := range reqs {
		etas := req.AcceptedETAs
		if etas == nil {
			etas = []string{}
		}
		batch.Queue(query,
			req.ID,
			req.Location,
			req.Distance,
			req.Coordinates.Lat,
			req.Coordinates.Lng,
			req.Type,
			req.Description,
			etas,
			req.HasMedicalProfile,
			req.CanSMS,
			req.CreatedAt,
		)
	}

	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to seed requests: %w", err)
	}
	return nil
}

func scanRequest(row pgx.Row) (*models.EmergencyRequest, error) {
	req := &models.EmergencyRequest{}
	err := row.Scan(
		&req.ID,
		&req.Location,
		&req.Distance,
		&req.Coordinates.Lat,
		&req.Coordinates.Lng,
		&req.Type,
		&req.Description,
		&req.AcceptedETAs,
		&req.HasMedicalProfile,
		&req.CanSMS,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if req.AcceptedETAs == nil {
		req.AcceptedETAs = []string{}
	}
	return req, nil
}

func cacheKey(id string) string {
	return fmt.Sprintf("cpr:request:%s", id)
}

// getFromCache пытается получить запрос из Redis
func (r *PostgresRequestRepository) getFromCache(ctx context.Context, id string) (*models.EmergencyRequest, error) {
	if r.redisClient == nil {
		return nil, nil
	}
	val, err := r.redisClient.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get request from cache: %w", err)
	}

	req := &models.EmergencyRequest{}
	if err := json.Unmarshal(val, req); err != nil {
		return nil, fmt.Errorf("failed to unmarshal request from cache: %w", err)
	}
	return req, nil
}

// setCache сохраняет запрос в Redis
func (r *PostgresRequestRepository) setCache(ctx context.Context, req *models.EmergencyRequest) error {
	if r.redisClient == nil {
		return nil
	}
	val, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, cacheKey(req.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set request in cache: %w", err)
	}
	return nil
}

// invalidateCache удаляет запрос из кэша после изменения
func (r *PostgresRequestRepository) invalidateCache(ctx context.Context, id string) error {
	if r.redisClient == nil {
		return nil
	}
	if err := r.redisClient.Del(ctx, cacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate request cache: %w", err)
	}
	return nil
}
