package phase

import (
	"github.com/alexanderramin/blueprint/internal/domain"
)

const (
	// defaultDeferThreshold is the feature count above which unmatched
	// features default to Phase 2.
	defaultDeferThreshold  = 7
	aiMVPMaxFeatures       = 5
	realtimeMVPMaxFeatures = 3
)

// Context is what a rule may look at besides the feature name.
type Context struct {
	ProductType  domain.ProductType
	Description  string
	Complexity   domain.Complexity
	FeatureCount int
}

// Decision is a rule's verdict on one feature.
type Decision struct {
	Phase     domain.Phase
	Reasoning string
	// Locked keeps the feature in the MVP through rebalancing.
	Locked bool
}

// Rule is one step of the first-match-wins classification chain.
type Rule struct {
	Name  string
	apply func(ctx ruleContext, feature text) (Decision, bool)
}

// Apply evaluates the rule alone. ok is false when the rule does not cover
// the feature.
func (r Rule) Apply(ctx Context, feature string) (d Decision, ok bool) {
	return r.apply(newRuleContext(ctx), newText(feature))
}

// ruleContext is Context with the description prepared for matching.
type ruleContext struct {
	Context
	desc text
}

func newRuleContext(ctx Context) ruleContext {
	return ruleContext{Context: ctx, desc: newText(ctx.Description)}
}

// DefaultRules returns the classification chain in priority order.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "domain", apply: domainRule},
		{Name: "core", apply: coreRule},
		{Name: "payments", apply: paymentRule},
		{Name: "mobile", apply: mobileRule},
		{Name: "ai", apply: aiRule},
		{Name: "realtime", apply: realtimeRule},
		{Name: "phase3-list", apply: phase3ListRule},
		{Name: "phase2-list", apply: phase2ListRule},
		{Name: "default", apply: defaultRule},
	}
}

// Decide runs the chain and returns the first decision along with the name
// of the rule that made it.
func Decide(rules []Rule, ctx Context, feature string) (Decision, string) {
	return decide(rules, newRuleContext(ctx), newText(feature))
}

func decide(rules []Rule, ctx ruleContext, feature text) (Decision, string) {
	for _, r := range rules {
		if d, ok := r.apply(ctx, feature); ok {
			return d, r.Name
		}
	}
	return Decision{Phase: domain.PhaseMVP, Reasoning: "No rule applied; kept in the MVP."}, ""
}

func mvp(reason string) Decision    { return Decision{Phase: domain.PhaseMVP, Reasoning: reason} }
func locked(reason string) Decision { return Decision{Phase: domain.PhaseMVP, Reasoning: reason, Locked: true} }
func later(p domain.Phase, reason string) Decision {
	return Decision{Phase: p, Reasoning: reason}
}

// domainRule covers marketplaces and online stores, where some features are
// mandatory and others only belong in the MVP when the description makes
// them part of the core loop.
func domainRule(ctx ruleContext, f text) (Decision, bool) {
	switch ctx.ProductType {
	case domain.ProductMarketplace:
		return marketplaceRule(ctx, f)
	case domain.ProductECommerce:
		return storeRule(ctx, f)
	}
	return Decision{}, false
}

func marketplaceRule(ctx ruleContext, f text) (Decision, bool) {
	switch {
	case f.hasAny(authKeywords, profileKeywords, listingKeywords):
		return locked("A marketplace cannot operate without accounts, profiles and listings."), true
	case f.has(searchKeywords...):
		if ctx.desc.has("search", "browse", "discover", "find", "filter") {
			return locked("Self-serve discovery is part of the core loop described."), true
		}
		return later(domain.Phase2, "Discovery can be curated by hand at launch; add self-serve search once supply grows."), true
	case f.hasAny(messagingKeywords, realtimeKeywords):
		if ctx.desc.has("message", "messaging", "chat", "contact", "negotiate", "communicate") {
			return locked("Buyers and sellers talking to each other is part of the core loop described."), true
		}
		return later(domain.Phase2, "Early matches can be connected over email; build in-app messaging in Phase 2."), true
	case f.has(paymentKeywords...):
		if ctx.desc.has("pay", "payment", "checkout", "commission", "transaction", "purchase") {
			return locked("Taking payment is part of the core loop described."), true
		}
		return later(domain.Phase2, "Transactions can be settled off-platform while demand is validated."), true
	}
	return Decision{}, false
}

func storeRule(ctx ruleContext, f text) (Decision, bool) {
	switch {
	case f.hasAny(listingKeywords, cartKeywords, paymentKeywords):
		return locked("An online store needs products, a cart and checkout to sell anything."), true
	case f.has(searchKeywords...):
		if ctx.desc.has("search", "browse", "discover", "find", "filter") || ctx.FeatureCount > defaultDeferThreshold {
			return locked("Customers need to find products in a catalog this size."), true
		}
		return later(domain.Phase2, "A small catalog can be browsed by category; add search in Phase 2."), true
	}
	return Decision{}, false
}

func coreRule(_ ruleContext, f text) (Decision, bool) {
	if f.has(authKeywords...) || f.has("core") {
		return locked("Core functionality required for launch."), true
	}
	return Decision{}, false
}

func paymentRule(ctx ruleContext, f text) (Decision, bool) {
	if !f.has(paymentKeywords...) {
		return Decision{}, false
	}
	if ctx.ProductType == domain.ProductSaaS || ctx.desc.has("subscription", "subscribe", "recurring") {
		return mvp("Subscription revenue starts at launch, so billing belongs in the MVP."), true
	}
	return later(domain.Phase2, "Monetize after the core product is validated."), true
}

func mobileRule(ctx ruleContext, f text) (Decision, bool) {
	if !f.has(mobileKeywords...) {
		return Decision{}, false
	}
	if ctx.ProductType == domain.ProductMobile {
		return mvp("The product is a mobile app."), true
	}
	return later(domain.Phase3, "Launch on the web first; a native app follows once usage is proven."), true
}

func aiRule(ctx ruleContext, f text) (Decision, bool) {
	if !f.has(aiKeywords...) {
		return Decision{}, false
	}
	if ctx.Complexity == domain.ComplexityHigh || ctx.FeatureCount <= aiMVPMaxFeatures {
		return mvp("AI is central to a focused or high-complexity product."), true
	}
	return later(domain.Phase2, "Add AI once there is enough usage data to make it useful."), true
}

func realtimeRule(ctx ruleContext, f text) (Decision, bool) {
	if !f.has(realtimeKeywords...) {
		return Decision{}, false
	}
	if ctx.FeatureCount <= realtimeMVPMaxFeatures {
		return mvp("Real-time interaction is core to a small feature set."), true
	}
	return later(domain.Phase2, "Real-time infrastructure is costly; start with simpler updates."), true
}

func phase3ListRule(_ ruleContext, f text) (Decision, bool) {
	if f.hasAny(socialKeywords, integrationKeywords, i18nKeywords, tenantKeywords, whiteLabelKeywords) {
		return later(domain.Phase3, "Growth feature for after product-market fit."), true
	}
	return Decision{}, false
}

func phase2ListRule(_ ruleContext, f text) (Decision, bool) {
	if f.hasAny(analyticsKeywords, adminKeywords, settingsKeywords, notificationKeywords) {
		return later(domain.Phase2, "Useful once real users arrive, but not needed to launch."), true
	}
	return Decision{}, false
}

func defaultRule(ctx ruleContext, _ text) (Decision, bool) {
	if ctx.FeatureCount > defaultDeferThreshold {
		return later(domain.Phase2, "Large feature list; deferred to keep the MVP shippable."), true
	}
	return mvp("Part of the initial product."), true
}
