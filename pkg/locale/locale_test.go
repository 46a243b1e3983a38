package locale

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLang(t *testing.T) {
	tcs := map[string]string{
		"EN":       EN,
		" vi ":     VI,
		"japanese": JA,
		"fr":       DefaultLang,
		"":         DefaultLang,
	}
	for in, want := range tcs {
		assert.Equal(t, want, ParseLang(in), in)
	}
}

func TestResolveLang(t *testing.T) {
	ctx := SetLocaleToContext(context.Background(), VI)
	assert.Equal(t, JA, ResolveLang(ctx, "JA"))
	assert.Equal(t, VI, ResolveLang(ctx, "xx"))
	assert.Equal(t, DefaultLang, ResolveLang(context.Background(), ""))
}
