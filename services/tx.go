package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"
	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/repositories"
)

// runInTx выполняет fn в транзакции: commit при nil, иначе rollback.
func runInTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// lockTournamentTx reads the tournament with a row lock for a
// read-modify-write of its JSONB columns.
func lockTournamentTx(ctx context.Context, repo repositories.TournamentRepository, tx *sql.Tx, id string) (*models.Tournament, error) {
	tournament, err := repo.GetForUpdate(ctx, tx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to lock tournament %s: %w", id, err)
	}
	return tournament, nil
}
