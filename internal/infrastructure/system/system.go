// Package system capacidades del anfitrión: identificadores y reloj.
package system

import (
	"time"

	"github.com/google/uuid"
)

// UUIDGenerator genera IDs UUIDv4.
type UUIDGenerator struct{}

// NewID devuelve un UUID nuevo en texto.
func (UUIDGenerator) NewID() string { return uuid.NewString() }

// Clock reloj del sistema en UTC.
type Clock struct{}

// Now devuelve el instante actual en UTC.
func (Clock) Now() time.Time { return time.Now().UTC() }
