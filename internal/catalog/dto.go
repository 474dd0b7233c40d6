package catalog

// PlanResponse is the outward-facing representation of a plan. Exactly one of
// MonthlyPrice and DiscountPercent is set.
type PlanResponse struct {
	ID              string   `json:"id"`
	Company         string   `json:"company"`
	PlanName        string   `json:"planName"`
	Category        Category `json:"category"`
	PriceKind       string   `json:"priceKind"`
	MonthlyPrice    *float64 `json:"monthlyPrice,omitempty"`
	DiscountPercent *float64 `json:"discountPercent,omitempty"`
	IntroPrice      *float64 `json:"introPrice,omitempty"`
	IntroMonths     int      `json:"introMonths,omitempty"`
	Features        []string `json:"features"`
	DownloadSpeed   string   `json:"downloadSpeed,omitempty"`
	UploadSpeed     string   `json:"uploadSpeed,omitempty"`
	DataAmount      string   `json:"dataAmount,omitempty"`
	Commitment      string   `json:"commitment,omitempty"`
	Channels        int      `json:"channels,omitempty"`
}

// PlanListResponse wraps a list of plans.
type PlanListResponse struct {
	Plans []PlanResponse `json:"plans"`
	Count int            `json:"count"`
}

// ImportRequest asks the service to import a feed already in the object store.
type ImportRequest struct {
	StorageKey string `json:"key" validate:"required,max=512"`
}

// ImportResponse reports the outcome of an import.
type ImportResponse struct {
	StorageKey string           `json:"storageKey"`
	Imported   int              `json:"imported"`
	ByCategory map[Category]int `json:"byCategory"`
}

func toPlanResponse(p PlanRecord) PlanResponse {
	out := PlanResponse{
		ID:            p.ID,
		Company:       p.Company,
		PlanName:      p.PlanName,
		Category:      p.Category,
		PriceKind:     p.Price.Kind().String(),
		IntroMonths:   p.IntroMonths,
		Features:      nonNilStrings(p.Features),
		DownloadSpeed: p.DownloadSpeed,
		UploadSpeed:   p.UploadSpeed,
		DataAmount:    p.DataAmount,
		Commitment:    p.Commitment,
		Channels:      p.Channels,
	}
	if v, ok := p.Price.Monthly(); ok {
		out.MonthlyPrice = &v
	}
	if v, ok := p.Price.Discount(); ok {
		out.DiscountPercent = &v
	}
	if p.HasIntroOffer() {
		v := *p.IntroPrice
		out.IntroPrice = &v
	} else {
		out.IntroMonths = 0
	}
	return out
}

func toImportResponse(r ImportResult) ImportResponse {
	byCategory := r.ByCategory
	if byCategory == nil {
		byCategory = map[Category]int{}
	}
	return ImportResponse{StorageKey: r.StorageKey, Imported: r.Imported, ByCategory: byCategory}
}
