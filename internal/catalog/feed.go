package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed seed/catalog.yaml
var seedFeed []byte

// FeedRecord is the provider feed shape. RegularPrice is a bare number whose meaning
// depends on the category; ToPlan is the only place that interprets it.
type FeedRecord struct {
	ID            string   `yaml:"id" json:"id"`
	Company       string   `yaml:"company" json:"company"`
	PlanName      string   `yaml:"planName" json:"planName"`
	Category      string   `yaml:"category" json:"category"`
	RegularPrice  float64  `yaml:"regularPrice" json:"regularPrice"`
	IntroPrice    *float64 `yaml:"introPrice,omitempty" json:"introPrice,omitempty"`
	IntroMonths   int      `yaml:"introMonths,omitempty" json:"introMonths,omitempty"`
	Features      []string `yaml:"features" json:"features"`
	DownloadSpeed string   `yaml:"downloadSpeed,omitempty" json:"downloadSpeed,omitempty"`
	UploadSpeed   string   `yaml:"uploadSpeed,omitempty" json:"uploadSpeed,omitempty"`
	DataAmount    string   `yaml:"dataAmount,omitempty" json:"dataAmount,omitempty"`
	Commitment    string   `yaml:"commitment,omitempty" json:"commitment,omitempty"`
	Channels      int      `yaml:"channels,omitempty" json:"channels,omitempty"`
}

type feedDocument struct {
	Plans []FeedRecord `yaml:"plans"`
}

// ToPlan converts a feed record into a PlanRecord, choosing the price variant by category.
func (f FeedRecord) ToPlan() (PlanRecord, error) {
	id := strings.TrimSpace(f.ID)
	if id == "" {
		return PlanRecord{}, fmt.Errorf("%w: plan id is required", ErrInvalidFeed)
	}
	cat, ok := ParseCategory(f.Category)
	if !ok {
		return PlanRecord{}, fmt.Errorf("%w: plan %s has unknown category %q", ErrInvalidFeed, id, f.Category)
	}

	price := AbsolutePrice(f.RegularPrice)
	if cat == CategoryElectricity {
		price = DiscountPercent(f.RegularPrice)
	}

	features := make([]string, 0, len(f.Features))
	for _, feat := range f.Features {
		if trimmed := strings.TrimSpace(feat); trimmed != "" {
			features = append(features, trimmed)
		}
	}

	plan := PlanRecord{
		ID:            id,
		Company:       strings.TrimSpace(f.Company),
		PlanName:      strings.TrimSpace(f.PlanName),
		Category:      cat,
		Price:         price,
		IntroMonths:   max(0, f.IntroMonths),
		Features:      features,
		DownloadSpeed: strings.TrimSpace(f.DownloadSpeed),
		UploadSpeed:   strings.TrimSpace(f.UploadSpeed),
		DataAmount:    strings.TrimSpace(f.DataAmount),
		Commitment:    strings.TrimSpace(f.Commitment),
		Channels:      max(0, f.Channels),
	}
	if f.IntroPrice != nil && cat != CategoryElectricity {
		v := *f.IntroPrice
		plan.IntroPrice = &v
	}
	return plan, nil
}

// FromPlan renders a plan back into feed form.
func FromPlan(p PlanRecord) FeedRecord {
	out := FeedRecord{
		ID:            p.ID,
		Company:       p.Company,
		PlanName:      p.PlanName,
		Category:      string(p.Category),
		RegularPrice:  p.Price.Value(),
		IntroMonths:   p.IntroMonths,
		Features:      append([]string{}, p.Features...),
		DownloadSpeed: p.DownloadSpeed,
		UploadSpeed:   p.UploadSpeed,
		DataAmount:    p.DataAmount,
		Commitment:    p.Commitment,
		Channels:      p.Channels,
	}
	if p.IntroPrice != nil {
		v := *p.IntroPrice
		out.IntroPrice = &v
	}
	return out
}

// DecodeFeed parses a YAML feed document with a top-level `plans` list.
func DecodeFeed(r io.Reader) ([]PlanRecord, error) {
	var doc feedDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []PlanRecord{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidFeed, err)
	}

	seen := make(map[string]bool, len(doc.Plans))
	out := make([]PlanRecord, 0, len(doc.Plans))
	for _, rec := range doc.Plans {
		plan, err := rec.ToPlan()
		if err != nil {
			return nil, err
		}
		if seen[plan.ID] {
			return nil, fmt.Errorf("%w: duplicate plan id %s", ErrInvalidFeed, plan.ID)
		}
		seen[plan.ID] = true
		out = append(out, plan)
	}
	return out, nil
}

// DefaultCatalog returns the embedded seed catalog.
func DefaultCatalog() *Catalog {
	plans, err := DecodeFeed(bytes.NewReader(seedFeed))
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded seed feed is invalid: %v", err))
	}
	return NewCatalog(plans)
}
