package http

import (
	"errors"
	"net/http"
)

var errorStatusMap = map[error]int{
	ErrNoActiveConfig: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
