package output

import (
	"github.com/goccy/go-json"

	"github.com/tn-payroll/payroll-engine/internal/domain"
)

// JSONFormatter serializes the full result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.PayrollResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
