package project

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gofound/internal/din"
	"github.com/alexiusacademia/gofound/internal/footing"
	"gopkg.in/yaml.v3"
)

// Project represents a footing analysis input file
//
// Example YAML:
//
//	name: Tower crane TC-2
//	geometry: {length: 7.7, width: 7.7, depth: 1.4}
//	material: {elastic_modulus: 20000}
//	cases:
//	  - {name: Crane Operation, moment: 5681, horizontal: 65, vertical: 2975.2, factor: 1.25}
type Project struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	Geometry footing.Geometry `json:"geometry" yaml:"geometry"`

	// Material overrides; zero fields keep the configured value
	Material footing.Material `json:"material" yaml:"material"`

	Cases []Case `json:"cases" yaml:"cases"`
}

// Case represents a load case entry with its optional correction factor
type Case struct {
	footing.LoadCase `yaml:",inline"`

	// Factor is nil when the case uses the default correction factor
	Factor *float64 `json:"factor,omitempty" yaml:"factor,omitempty"`
}

// Format identifies an input file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

// FormatFromPath detects the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".xlsx":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unsupported project file %q (use .json, .yaml, .yml or .xlsx)", path)
}

// LoadFromFile loads a project definition from a JSON, YAML or XLSX file
func LoadFromFile(path string) (*Project, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Decode reads a project in the given format
func Decode(r io.Reader, format Format) (*Project, error) {
	var p Project

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return nil, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			return nil, err
		}
	case FormatXLSX:
		cases, err := readCasesXLSX(r)
		if err != nil {
			return nil, err
		}
		p.Cases = cases
	default:
		return nil, fmt.Errorf("unknown project format %q", format)
	}

	return &p, nil
}

// Default returns the reference crane foundation project.
// Material is left empty so configured values apply.
func Default() *Project {
	p := &Project{
		Name:     "Crane foundation (reference)",
		Geometry: din.DefaultGeometry(),
	}
	factors := din.Factors(din.LoadCases)
	for _, lc := range din.Cases(din.LoadCases) {
		factor := factors.Factor(lc.Name)
		p.Cases = append(p.Cases, Case{LoadCase: lc, Factor: &factor})
	}
	return p
}

// LoadCases returns the ordered load sequence
func (p *Project) LoadCases() footing.LoadCases {
	cases := make(footing.LoadCases, len(p.Cases))
	for i, c := range p.Cases {
		cases[i] = c.LoadCase
	}
	return cases
}

// Factors returns the correction factor table. Cases without a factor
// resolve to footing.DefaultCorrectionFactor.
func (p *Project) Factors() footing.FactorTable {
	factors := make(map[string]float64)
	for _, c := range p.Cases {
		if c.Factor != nil {
			factors[c.Name] = *c.Factor
		}
	}
	return footing.NewFactorTable(factors)
}

// MergeMaterial overlays the non-zero project material values on base
func (p *Project) MergeMaterial(base footing.Material) footing.Material {
	m := base
	if p.Material.ElasticModulus != 0 {
		m.ElasticModulus = p.Material.ElasticModulus
	}
	if p.Material.SoilBearingCapacity != 0 {
		m.SoilBearingCapacity = p.Material.SoilBearingCapacity
	}
	if p.Material.Fck != 0 {
		m.Fck = p.Material.Fck
	}
	if p.Material.Fy != 0 {
		m.Fy = p.Material.Fy
	}
	return m
}
