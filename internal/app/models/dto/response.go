package dto

import (
	"encoding/json"
	"strings"
	"time"
)

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message" example:"Deleted successfully"`
}

// HealthResponse is the liveness probe body
type HealthResponse struct {
	Status      string    `json:"status" example:"ok"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment" example:"production"`
}

// NormalizeList accepts list fields sent either as repeated form values or as a
// single JSON array string, and drops blank entries.
func NormalizeList(values []string) []string {
	if values == nil {
		return nil
	}
	if len(values) == 1 && strings.HasPrefix(strings.TrimSpace(values[0]), "[") {
		var decoded []string
		if err := json.Unmarshal([]byte(values[0]), &decoded); err == nil {
			values = decoded
		}
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// fields collects the columns of a partial update
type fields map[string]interface{}

func (f fields) str(column string, v *string) {
	if v != nil {
		f[column] = *v
	}
}

func (f fields) num(column string, v *int) {
	if v != nil {
		f[column] = *v
	}
}

func (f fields) flag(column string, v *bool) {
	if v != nil {
		f[column] = *v
	}
}

func (f fields) list(column string, v []string) {
	if v != nil {
		f[column] = NormalizeList(v)
	}
}
