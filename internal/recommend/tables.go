package recommend

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultProviderScore is used for companies missing from the table.
const DefaultProviderScore = 70.0

//go:embed tables/providers.yaml
var defaultProvidersYAML []byte

// ProviderScores holds per-company scores in [0,100]. Nil fields fall back to the default.
type ProviderScores struct {
	Reliability     *float64 `yaml:"reliability"`
	BrandTrust      *float64 `yaml:"brandTrust"`
	CustomerService *float64 `yaml:"customerService"`
}

type providerFile struct {
	Providers map[string]ProviderScores `yaml:"providers"`
}

// ProviderTable is the static company lookup used for reliability, brand trust and
// customer service scoring. It is read-only after construction.
type ProviderTable struct {
	entries map[string]ProviderScores
}

// NewProviderTable builds a table from company name to scores.
func NewProviderTable(entries map[string]ProviderScores) *ProviderTable {
	t := &ProviderTable{entries: make(map[string]ProviderScores, len(entries))}
	for name, scores := range entries {
		t.entries[companyKey(name)] = scores
	}
	return t
}

// LoadProviderTable parses a YAML document with a top-level `providers` map.
func LoadProviderTable(r io.Reader) (*ProviderTable, error) {
	var file providerFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode provider table: %w", err)
	}
	return NewProviderTable(file.Providers), nil
}

// DefaultProviderTable returns the embedded table.
func DefaultProviderTable() *ProviderTable {
	t, err := LoadProviderTable(bytes.NewReader(defaultProvidersYAML))
	if err != nil {
		panic(fmt.Sprintf("recommend: embedded provider table is invalid: %v", err))
	}
	return t
}

// Reliability returns the reliability score of a company.
func (t *ProviderTable) Reliability(company string) float64 {
	return t.lookup(company, func(s ProviderScores) *float64 { return s.Reliability })
}

// BrandTrust returns the brand trust score of a company.
func (t *ProviderTable) BrandTrust(company string) float64 {
	return t.lookup(company, func(s ProviderScores) *float64 { return s.BrandTrust })
}

// CustomerService returns the customer service score of a company.
func (t *ProviderTable) CustomerService(company string) float64 {
	return t.lookup(company, func(s ProviderScores) *float64 { return s.CustomerService })
}

// Len returns the number of companies in the table.
func (t *ProviderTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

func (t *ProviderTable) lookup(company string, field func(ProviderScores) *float64) float64 {
	if t == nil {
		return DefaultProviderScore
	}
	scores, ok := t.entries[companyKey(company)]
	if !ok {
		return DefaultProviderScore
	}
	v := field(scores)
	if v == nil || math.IsNaN(*v) {
		return DefaultProviderScore
	}
	return math.Max(0, math.Min(100, *v))
}

func companyKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
