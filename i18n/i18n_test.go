package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ISSA5922/ambertek-export/i18n"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, i18n.Swahili, i18n.Normalize("sw"))
	assert.Equal(t, i18n.English, i18n.Normalize("en"))
	assert.Equal(t, i18n.English, i18n.Normalize(""))
	assert.Equal(t, i18n.English, i18n.Normalize("fr"))
	assert.Equal(t, i18n.English, i18n.Normalize("SW"))
}

func TestT(t *testing.T) {
	assert.Equal(t, "Your shopping cart is empty.", i18n.T(i18n.English, "cart.empty"))
	assert.Equal(t, "Gari lako la ununuzi ni tupu.", i18n.T(i18n.Swahili, "cart.empty"))

	// Unknown locale falls back to English.
	assert.Equal(t, "Your shopping cart is empty.", i18n.T(i18n.Locale("fr"), "cart.empty"))

	// Unknown key comes back verbatim rather than blank.
	assert.Equal(t, "no.such.key", i18n.T(i18n.English, "no.such.key"))
}
