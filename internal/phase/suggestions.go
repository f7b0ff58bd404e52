package phase

import "github.com/alexanderramin/blueprint/internal/domain"

// suggestedEnhancements fill an otherwise empty backlog.
var suggestedEnhancements = map[domain.ProductType][]string{
	domain.ProductMarketplace: {"reviews and ratings", "push notifications", "analytics"},
	domain.ProductECommerce:   {"reviews and ratings", "email notifications", "analytics"},
	domain.ProductSaaS:        {"analytics", "third-party integrations", "admin panel"},
	domain.ProductMobile:      {"push notifications", "analytics", "social features"},
	domain.ProductGeneral:     {"analytics", "email notifications", "admin panel"},
}

func suggestionsFor(pt domain.ProductType) []string {
	if s, ok := suggestedEnhancements[pt]; ok {
		return s
	}
	return suggestedEnhancements[domain.ProductGeneral]
}
