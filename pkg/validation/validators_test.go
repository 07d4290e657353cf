package validation_test

import (
	"testing"

	"github.com/PhatNguyen203/DevConnecting/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestDateValidator(t *testing.T) {
	v := validator.New()
	validation.RegisterValidators(v)

	t.Run("Should accept YYYY-MM-DD", func(t *testing.T) {
		assert.NoError(t, v.Var("2021-06-15", "date"))
	})

	t.Run("Should accept empty optional values", func(t *testing.T) {
		assert.NoError(t, v.Var("", "date"))
	})

	t.Run("Should reject other layouts and impossible dates", func(t *testing.T) {
		assert.Error(t, v.Var("15/06/2021", "date"))
		assert.Error(t, v.Var("2021-6-15", "date"))
		assert.Error(t, v.Var("2021-02-30", "date"))
	})
}
