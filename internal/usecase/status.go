package usecase

import (
	"strings"

	domainErrors "github.com/plateup/orderflow/internal/domain/errors"
	"github.com/plateup/orderflow/internal/domain/model"
)

var canonicalStatuses = func() map[model.OrderStatus]struct{} {
	set := make(map[model.OrderStatus]struct{}, len(model.Statuses))
	for _, s := range model.Statuses {
		set[s] = struct{}{}
	}
	return set
}()

// NormalizeStatus uppercases raw and returns it as an OrderStatus. The bool
// reports membership in the canonical vocabulary; unrecognized values come
// back uppercased with false.
func NormalizeStatus(raw string) (model.OrderStatus, bool) {
	status := model.OrderStatus(strings.ToUpper(strings.TrimSpace(raw)))
	_, ok := canonicalStatuses[status]
	return status, ok
}

// ParseStatus normalizes raw and rejects empty or out-of-vocabulary values.
// The persisted enumeration is the full canonical vocabulary; nothing outside
// it ever reaches storage.
func ParseStatus(raw string) (model.OrderStatus, error) {
	if strings.TrimSpace(raw) == "" {
		return "", domainErrors.ErrMissingStatus
	}
	status, ok := NormalizeStatus(raw)
	if !ok {
		return "", domainErrors.ErrUnknownStatus
	}
	return status, nil
}
