package todo

import (
	"encoding/hex"

	"github.com/google/uuid"
)

type Todo struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// NewID returns 128 random bits as 32 lowercase hex characters.
func NewID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

type CreateInput struct {
	Description *string `json:"description"`
}

type UpdateInput struct {
	ID          string  `json:"id"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

type Pagination struct {
	Offset *int64 `mapstructure:"offset"`
	Limit  *int64 `mapstructure:"limit"`
}

const (
	DefaultOffset int64 = 0
	DefaultLimit  int64 = 100
)
