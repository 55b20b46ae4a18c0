package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/assignhub/internal/common"
	"github.com/dmitrijs2005/assignhub/internal/server/models"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ParseDifficulty maps the listing query value onto a filter. Empty and
// "all" (any case) mean no filter.
func ParseDifficulty(v string) (models.Difficulty, error) {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, common.DifficultyAll) {
		return "", nil
	}
	if err := validate.Var(v, "oneof=Easy Medium Hard"); err != nil {
		return "", fmt.Errorf("%w: %q", common.ErrInvalidDifficulty, v)
	}
	return models.Difficulty(v), nil
}

// ParsePage returns the 1-based page number; empty means the first page.
func ParsePage(v string) (int64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 1, nil
	}
	p, err := strconv.ParseInt(v, 10, 64)
	if err != nil || p < 1 {
		return 0, fmt.Errorf("%w: %q", common.ErrInvalidPage, v)
	}
	return p, nil
}

func totalPages(total, size int64) int64 {
	if total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

func ownsQuery(identityEmail, queryEmail string) bool {
	return identityEmail != "" && identityEmail == queryEmail
}
