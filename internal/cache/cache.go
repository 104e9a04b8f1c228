package cache

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/zeebo/blake3"

	"eqsolver/internal/solver"
)

// Cache — хранилище готовых решений
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}

const keyPrefix = "eqsolver:"

// Key строит ключ по выражению и конфигурации.
// Имеет смысл только для конфигураций с seed: без него решение не воспроизводимо.
func Key(expr string, cfg solver.Config) string {
	payload, _ := json.Marshal(struct {
		Expr   string        `json:"expr"`
		Config solver.Config `json:"config"`
	}{
		Expr:   strings.TrimSpace(expr),
		Config: cfg,
	})
	sum := blake3.Sum256(payload)
	return keyPrefix + hex.EncodeToString(sum[:])
}
