package domain

// Service is one offering a client can request a quote for
type Service struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ServiceCategory groups services for display. Categories and their services
// keep a fixed order; the catalog is defined at build time and never mutated.
type ServiceCategory struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Services    []Service `json:"services"`
}

// Catalog is the immutable set of offered services with an id -> title index
// prebuilt once so title resolution is O(1) instead of a scan per lookup.
type Catalog struct {
	categories []ServiceCategory
	titles     map[string]string
}

func NewCatalog(categories []ServiceCategory) *Catalog {
	titles := make(map[string]string)
	for _, cat := range categories {
		for _, svc := range cat.Services {
			titles[svc.ID] = svc.Title
		}
	}
	return &Catalog{categories: categories, titles: titles}
}

// Categories returns the ordered category list
func (c *Catalog) Categories() []ServiceCategory {
	return c.categories
}

// Has reports whether a service id exists in the catalog
func (c *Catalog) Has(serviceID string) bool {
	_, ok := c.titles[serviceID]
	return ok
}

// TitleOf resolves a service id to its display title. Unknown ids fall back
// to the raw id so a stale client can never break a submission.
func (c *Catalog) TitleOf(serviceID string) string {
	if title, ok := c.titles[serviceID]; ok {
		return title
	}
	return serviceID
}

// DefaultCatalog returns the catalog offered on the public quote form.
func DefaultCatalog() *Catalog {
	return NewCatalog([]ServiceCategory{
		{
			ID:          "market-strategy",
			Title:       "Market Strategy",
			Description: "Research and planning before entering a new market",
			Services: []Service{
				{ID: "market-research", Title: "Market Research & Consumer Insights"},
				{ID: "gtm-strategy", Title: "Go-to-Market Strategy"},
				{ID: "brand-localization", Title: "Brand & Content Localization"},
			},
		},
		{
			ID:          "marketplace",
			Title:       "Marketplace Services",
			Description: "Day-to-day growth of your marketplace presence",
			Services: []Service{
				{ID: "marketplace-setup", Title: "Marketplace Account Setup"},
				{ID: "seo", Title: "SEO & Listing Optimization"},
				{ID: "ppc", Title: "Advertising & PPC Management"},
			},
		},
		{
			ID:          "web",
			Title:       "Web & E-commerce",
			Description: "Your own storefront, built and maintained",
			Services: []Service{
				{ID: "website", Title: "Corporate Website Development"},
				{ID: "webshop", Title: "E-commerce Store Development"},
				{ID: "web-maintenance", Title: "Website Maintenance & Support"},
			},
		},
		{
			ID:          "operations",
			Title:       "Operations & Support",
			Description: "Keep orders moving once sales come in",
			Services: []Service{
				{ID: "logistics", Title: "Logistics & Fulfillment Advisory"},
				{ID: "customer-care", Title: "Customer Care Outsourcing"},
				{ID: "analytics", Title: "Sales Analytics & Reporting"},
			},
		},
	})
}
