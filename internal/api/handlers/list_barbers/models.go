package list_barbers

import (
	"net/http"
	"strconv"
)

const queryIncludeInactive = "includeInactive"

// ParseIncludeInactive читает флаг includeInactive, по умолчанию false
func ParseIncludeInactive(r *http.Request) (bool, error) {
	raw := r.URL.Query().Get(queryIncludeInactive)
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}
