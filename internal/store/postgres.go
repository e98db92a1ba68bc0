package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ayush/bemestar-report/internal/models"
)

// PostgresStore handles report rows in PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate creates the relatorios table if it doesn't exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS relatorios (
			id               UUID PRIMARY KEY,
			nome_usuario     TEXT        NOT NULL,
			dados_formulario JSONB       NOT NULL,
			relatorio_ia     TEXT        NOT NULL,
			data_analise     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

// Save inserts the report and sets CreatedAt from the database clock. The
// connection is held only for the duration of the call.
func (s *PostgresStore) Save(ctx context.Context, r *models.Report) error {
	input, err := json.Marshal(r.Input)
	if err != nil {
		return fmt.Errorf("encode form data: %w", err)
	}

	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	err = conn.QueryRow(ctx,
		`INSERT INTO relatorios (id, nome_usuario, dados_formulario, relatorio_ia)
		 VALUES ($1, $2, $3, $4)
		 RETURNING data_analise`,
		r.ID, r.UserName, input, r.Text,
	).Scan(&r.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id string) (*models.Report, bool, error) {
	if !validID(id) {
		return nil, false, nil
	}

	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	var (
		r     models.Report
		input []byte
	)
	err = conn.QueryRow(ctx,
		`SELECT id::text, nome_usuario, dados_formulario, relatorio_ia, data_analise
		 FROM relatorios WHERE id = $1`, id,
	).Scan(&r.ID, &r.UserName, &input, &r.Text, &r.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select report: %w", err)
	}
	if err := json.Unmarshal(input, &r.Input); err != nil {
		return nil, false, fmt.Errorf("decode form data: %w", err)
	}
	return &r, true, nil
}
