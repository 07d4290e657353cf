package gravatar_test

import (
	"testing"

	"github.com/PhatNguyen203/DevConnecting/pkg/gravatar"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	// md5("john@example.com")
	want := "https://www.gravatar.com/avatar/d4c74594d841139328695756648b6bd6?s=200&r=pg&d=mm"

	assert.Equal(t, want, gravatar.URL("john@example.com"))

	t.Run("Should be case and whitespace insensitive", func(t *testing.T) {
		assert.Equal(t, want, gravatar.URL("  John@Example.COM "))
	})
}
