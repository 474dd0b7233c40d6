package catalog

// Catalog is an immutable set of plans partitioned by category.
type Catalog struct {
	order      []string
	byID       map[string]PlanRecord
	byCategory map[Category][]string
}

// NewCatalog copies plans into a catalog. Later duplicates of an ID replace earlier ones
// but keep the original position.
func NewCatalog(plans []PlanRecord) *Catalog {
	c := &Catalog{
		order:      make([]string, 0, len(plans)),
		byID:       make(map[string]PlanRecord, len(plans)),
		byCategory: make(map[Category][]string),
	}
	for _, p := range plans {
		if _, exists := c.byID[p.ID]; !exists {
			c.order = append(c.order, p.ID)
			c.byCategory[p.Category] = append(c.byCategory[p.Category], p.ID)
		}
		c.byID[p.ID] = clonePlan(p)
	}
	return c
}

// Len returns the number of plans.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// All returns every plan in catalog order.
func (c *Catalog) All() []PlanRecord {
	if c == nil {
		return []PlanRecord{}
	}
	out := make([]PlanRecord, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, clonePlan(c.byID[id]))
	}
	return out
}

// ByCategory returns the plans of one category in catalog order.
func (c *Catalog) ByCategory(cat Category) []PlanRecord {
	if c == nil {
		return []PlanRecord{}
	}
	ids := c.byCategory[cat]
	out := make([]PlanRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, clonePlan(c.byID[id]))
	}
	return out
}

// Get looks up a plan by ID.
func (c *Catalog) Get(id string) (PlanRecord, bool) {
	if c == nil {
		return PlanRecord{}, false
	}
	p, ok := c.byID[id]
	if !ok {
		return PlanRecord{}, false
	}
	return clonePlan(p), true
}

// Categories returns the categories that have at least one plan.
func (c *Catalog) Categories() []Category {
	out := make([]Category, 0, len(Categories))
	if c == nil {
		return out
	}
	for _, cat := range Categories {
		if len(c.byCategory[cat]) > 0 {
			out = append(out, cat)
		}
	}
	return out
}

func clonePlan(p PlanRecord) PlanRecord {
	out := p
	if p.Features != nil {
		out.Features = append([]string(nil), p.Features...)
	}
	if p.IntroPrice != nil {
		v := *p.IntroPrice
		out.IntroPrice = &v
	}
	return out
}
