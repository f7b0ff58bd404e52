package phase

import (
	"testing"

	"github.com/alexanderramin/blueprint/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDecide_RuleOrder(t *testing.T) {
	general := Context{ProductType: domain.ProductGeneral, Complexity: domain.ComplexityMedium, FeatureCount: 4}

	tests := []struct {
		name      string
		ctx       Context
		feature   string
		wantPhase domain.Phase
		wantRule  string
		wantLock  bool
	}{
		{"auth is core", general, "user authentication", domain.PhaseMVP, "core", true},
		{"core keyword", general, "core booking flow", domain.PhaseMVP, "core", true},
		{"payments deferred", general, "payment processing", domain.Phase2, "payments", false},
		{"payments for saas", Context{ProductType: domain.ProductSaaS, FeatureCount: 4}, "subscription billing", domain.PhaseMVP, "payments", false},
		{"payments for subscription description", Context{ProductType: domain.ProductGeneral, Description: "a monthly subscription app", FeatureCount: 4}, "payments", domain.PhaseMVP, "payments", false},
		{"mobile deferred", general, "mobile app", domain.Phase3, "mobile", false},
		{"mobile for mobile product", Context{ProductType: domain.ProductMobile, FeatureCount: 4}, "mobile app", domain.PhaseMVP, "mobile", false},
		{"ai in small product", general, "ai recommendations", domain.PhaseMVP, "ai", false},
		{"ai in large product", Context{ProductType: domain.ProductGeneral, Complexity: domain.ComplexityMedium, FeatureCount: 6}, "ai recommendations", domain.Phase2, "ai", false},
		{"ai in complex product", Context{ProductType: domain.ProductGeneral, Complexity: domain.ComplexityHigh, FeatureCount: 9}, "ai recommendations", domain.PhaseMVP, "ai", false},
		{"chat in tiny product", Context{ProductType: domain.ProductGeneral, FeatureCount: 3}, "real-time chat", domain.PhaseMVP, "realtime", false},
		{"chat in larger product", general, "real-time chat", domain.Phase2, "realtime", false},
		{"social is phase 3", general, "social features", domain.Phase3, "phase3-list", false},
		{"integrations are phase 3", general, "third-party integrations", domain.Phase3, "phase3-list", false},
		{"i18n is phase 3", general, "multi-language support", domain.Phase3, "phase3-list", false},
		{"white-label is phase 3", general, "White–Label", domain.Phase3, "phase3-list", false},
		{"analytics is phase 2", general, "analytics", domain.Phase2, "phase2-list", false},
		{"notifications are phase 2", general, "push notifications", domain.Phase2, "phase2-list", false},
		{"default small list", general, "dashboard", domain.PhaseMVP, "default", false},
		{"default large list", Context{ProductType: domain.ProductGeneral, FeatureCount: 8}, "dashboard", domain.Phase2, "default", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, rule := Decide(DefaultRules(), tt.ctx, tt.feature)
			assert.Equal(t, tt.wantRule, rule)
			assert.Equal(t, tt.wantPhase, d.Phase)
			assert.Equal(t, tt.wantLock, d.Locked)
			assert.NotEmpty(t, d.Reasoning)
		})
	}
}

func TestMarketplaceRule(t *testing.T) {
	quiet := Context{ProductType: domain.ProductMarketplace, Description: "a marketplace for handmade goods", FeatureCount: 5}
	loop := Context{
		ProductType:  domain.ProductMarketplace,
		Description:  "buyers browse listings, chat with sellers and pay at checkout; we take a commission",
		FeatureCount: 5,
	}

	tests := []struct {
		name      string
		ctx       Context
		feature   string
		wantPhase domain.Phase
		wantLock  bool
	}{
		{"profiles mandatory", quiet, "user profiles", domain.PhaseMVP, true},
		{"listings mandatory", quiet, "product listings", domain.PhaseMVP, true},
		{"search without signal", quiet, "search and filters", domain.Phase2, false},
		{"search with signal", loop, "search and filters", domain.PhaseMVP, true},
		{"messaging without signal", quiet, "messaging", domain.Phase2, false},
		{"messaging with signal", loop, "messaging", domain.PhaseMVP, true},
		{"payments without signal", quiet, "payment processing", domain.Phase2, false},
		{"payments with signal", loop, "payment processing", domain.PhaseMVP, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := DefaultRules()[0]
			d, ok := rule.Apply(tt.ctx, tt.feature)
			assert.True(t, ok)
			assert.Equal(t, tt.wantPhase, d.Phase)
			assert.Equal(t, tt.wantLock, d.Locked)
		})
	}

	_, ok := DefaultRules()[0].Apply(quiet, "analytics")
	assert.False(t, ok, "features outside the marketplace families fall through")
}

func TestMarketplaceRule_DeferralExplainsWhy(t *testing.T) {
	ctx := Context{ProductType: domain.ProductMarketplace, Description: "connect dog walkers with owners", FeatureCount: 4}
	d, ok := DefaultRules()[0].Apply(ctx, "search")
	assert.True(t, ok)
	assert.Contains(t, d.Reasoning, "search")
}

func TestStoreRule(t *testing.T) {
	ctx := Context{ProductType: domain.ProductECommerce, Description: "sell our coffee online", FeatureCount: 5}
	rule := DefaultRules()[0]

	for _, f := range []string{"shopping cart", "product catalog", "checkout"} {
		d, ok := rule.Apply(ctx, f)
		assert.True(t, ok, f)
		assert.Equal(t, domain.PhaseMVP, d.Phase, f)
		assert.True(t, d.Locked, f)
	}

	d, ok := rule.Apply(ctx, "search")
	assert.True(t, ok)
	assert.Equal(t, domain.Phase2, d.Phase)
}

func TestDomainRule_IgnoredForOtherProducts(t *testing.T) {
	_, ok := DefaultRules()[0].Apply(Context{ProductType: domain.ProductSaaS}, "product listings")
	assert.False(t, ok)
}

func TestTextHas(t *testing.T) {
	f := newText("User Authentication")
	assert.True(t, f.has("auth"), "prefix of a token")
	assert.False(t, newText("author bio").has("ai"), "short keywords need a whole token")
	assert.True(t, newText("AI recommendations").has("ai"))
	assert.True(t, newText("real–time chat").has("real-time"), "dashes normalized")
	assert.False(t, newText("paywall").has("pay"))
	assert.True(t, newText("pay later").has("pay"))
}
