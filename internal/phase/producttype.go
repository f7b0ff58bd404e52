package phase

import (
	"strings"

	"github.com/alexanderramin/blueprint/internal/domain"
)

var explicitProductTypes = map[string]domain.ProductType{
	"marketplace": domain.ProductMarketplace,
	"e-commerce":  domain.ProductECommerce,
	"ecommerce":   domain.ProductECommerce,
	"e commerce":  domain.ProductECommerce,
	"store":       domain.ProductECommerce,
	"saas":        domain.ProductSaaS,
	"b2b saas":    domain.ProductSaaS,
	"mobile":      domain.ProductMobile,
	"mobile app":  domain.ProductMobile,
	"general":     domain.ProductGeneral,
}

// Checked in order: a "marketplace for online shops" is a marketplace.
var inferredProductTypes = []struct {
	productType domain.ProductType
	keywords    []string
}{
	{domain.ProductMarketplace, []string{"marketplace", "two-sided", "buyers and sellers", "sellers", "vendors", "hosts and guests"}},
	{domain.ProductECommerce, []string{"e-commerce", "ecommerce", "online store", "shop", "storefront", "sell products"}},
	{domain.ProductSaaS, []string{"saas", "b2b", "subscription", "workspace"}},
	{domain.ProductMobile, []string{"mobile app", "ios", "android", "mobile"}},
}

// NormalizeProductType resolves the product type from an explicit value, or
// infers it from the description when the value is empty or unrecognized.
func NormalizeProductType(explicit, description string) domain.ProductType {
	if pt, ok := explicitProductTypes[strings.ToLower(strings.TrimSpace(explicit))]; ok {
		return pt
	}

	desc := newText(description)
	for _, candidate := range inferredProductTypes {
		if desc.has(candidate.keywords...) {
			return candidate.productType
		}
	}
	return domain.ProductGeneral
}
