// Package i18n holds the two storefront locales. English is the default;
// Swahili is the only other supported language.
package i18n

type Locale string

const (
	English Locale = "en"
	Swahili Locale = "sw"
)

// Normalize maps a raw cookie/query value to a supported locale. Anything
// other than "sw" falls back to English.
func Normalize(s string) Locale {
	if s == string(Swahili) {
		return Swahili
	}
	return English
}

var messages = map[string]map[Locale]string{
	"login.required": {
		English: "You must login to place an order.",
		Swahili: "Lazima uingie ili kuweka agizo.",
	},
	"cart.empty": {
		English: "Your shopping cart is empty.",
		Swahili: "Gari lako la ununuzi ni tupu.",
	},
	"cart.added": {
		English: "%s has been added to your cart!",
		Swahili: "%s imeongezwa kwenye gari la ununuzi!",
	},
	"cart.updated": {
		English: "%s has been updated in your cart!",
		Swahili: "%s imesasishwa kwenye gari la ununuzi!",
	},
	"cart.removed": {
		English: "%s has been removed from your cart!",
		Swahili: "%s imeondolewa kwenye gari la ununuzi!",
	},
	"cart.cleared": {
		English: "Your shopping cart has been cleared!",
		Swahili: "Gari la ununuzi limefutwa!",
	},
	"checkout.missing_fields": {
		English: "Please fill in all required fields.",
		Swahili: "Tafadhali jaza sehemu zote zinazohitajika.",
	},
	"order.placed": {
		English: "Thank you! Your order #%s has been received.",
		Swahili: "Asante! Agizo lako #%s limepokelewa.",
	},
	"order.failed": {
		English: "An error occurred while placing order. Please try again.",
		Swahili: "Hitilafu imetokea wakati wa kuweka agizo. Tafadhali jaribu tena.",
	},
	"order.not_found": {
		English: "Order #%s not found",
		Swahili: "Oda #%s haipatikani",
	},
	"order.dropped_items": {
		English: "Some items were no longer available and were removed from your order.",
		Swahili: "Baadhi ya bidhaa hazipatikani tena na zimeondolewa kwenye oda yako.",
	},
}

// T returns the message for key in the given locale, falling back to
// English, then to the key itself for unknown keys.
func T(loc Locale, key string) string {
	byLocale, ok := messages[key]
	if !ok {
		return key
	}
	if msg, ok := byLocale[loc]; ok {
		return msg
	}
	return byLocale[English]
}
