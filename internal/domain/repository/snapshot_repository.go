package repository

import (
	"context"
	"errors"
)

// ErrSnapshotNotFound la clave no tiene ninguna instantánea guardada.
var ErrSnapshotNotFound = errors.New("instantánea no encontrada")

// SnapshotStore define el puerto de almacenamiento clave-valor para las instantáneas
// del catálogo y del libro de movimientos (DIP). Es de mejor esfuerzo: quien llama decide
// qué hacer con los errores.
type SnapshotStore interface {
	// Load devuelve el valor guardado o ErrSnapshotNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	// Delete no falla si la clave no existe.
	Delete(ctx context.Context, key string) error
}
