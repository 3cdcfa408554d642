package session

import (
	"context"
	"errors"
	"time"

	"github.com/sadpe/extractor/internal/console"
)

// ErrNotFound é retornado quando não há estado para o identificador.
var ErrNotFound = errors.New("sessão não encontrada")

// Store guarda o estado de cada console, indexado pelo identificador do cookie.
type Store interface {
	Load(ctx context.Context, id string) (*console.Console, error)
	Save(ctx context.Context, id string, state *console.Console, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
