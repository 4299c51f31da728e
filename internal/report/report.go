package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexiusacademia/gofound/internal/footing"
	"github.com/google/uuid"
)

// Meta identifies a generated report
type Meta struct {
	ID        string
	Project   string
	Generated time.Time
}

// NewMeta creates report metadata with a fresh identifier
func NewMeta(project string) Meta {
	return Meta{
		ID:        uuid.NewString(),
		Project:   project,
		Generated: time.Now(),
	}
}

// TippingText returns the tipping status as printed in result lines
func TippingText(v footing.Verdict) string {
	if v == footing.Risk {
		return "Tipping Risk: YES"
	}
	return "Tipping Risk: NO"
}

// Line formats a single case result
func Line(r footing.CaseResult) string {
	return fmt.Sprintf("%s: Settlement = %.4f m, Max Pressure = %.2f kN/m², %s, Rotation Angle = %.2f°",
		r.Load.Name, r.Settlement, r.SigmaMax, TippingText(r.Tipping), r.RotationAngle)
}

// Text formats all case results, one line per case in analysis order
func Text(a *footing.Analysis) string {
	var sb strings.Builder
	for _, r := range a.Results {
		sb.WriteString(Line(r))
		sb.WriteString("\n")
	}
	return sb.String()
}
