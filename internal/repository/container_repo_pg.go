package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/cargoeta/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// rowQuerier is the part of *pgxpool.Pool the repository uses.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PGContainerRepository reads container master data owned by another system.
// It only issues SELECTs.
type PGContainerRepository struct {
	db rowQuerier
}

func NewContainerRepository(db *pgxpool.Pool) ContainerRepository {
	return &PGContainerRepository{db: db}
}

func (r *PGContainerRepository) GetByID(ctx context.Context, id string) (*domain.Container, error) {
	row := r.db.QueryRow(ctx, `SELECT container_id, weight, port_of_origin, is_dangerous_goods FROM containers WHERE container_id=$1`, id)
	var c domain.Container
	if err := row.Scan(&c.ID, &c.Weight, &c.PortOfOrigin, &c.IsDangerousGoods); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrContainerNotFound
		}
		return nil, fmt.Errorf("select container %s: %w", id, err)
	}
	return &c, nil
}

var (
	_ ContainerRepository = (*PGContainerRepository)(nil)
	_ rowQuerier          = (*pgxpool.Pool)(nil)
)
