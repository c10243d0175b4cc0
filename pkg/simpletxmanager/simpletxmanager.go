package simpletxmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-TimetableService/pkg/dbmetrics"
)

// Manager менеджер транзакций поверх чистого *sql.DB (без сбора метрик)
// Используется, когда метрики выключены в конфигурации
type Manager struct {
	db *sql.DB
}

// New создает менеджер транзакций
func New(db *sql.DB) *Manager {
	return &Manager{db: db}
}

// DoSerializable выполняет fn внутри транзакции SERIALIZABLE
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("simpletxmanager: begin: %w", err)
	}

	txCtx := dbmetrics.WithTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("simpletxmanager: commit: %w", err)
	}

	return nil
}
