package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewKey(t *testing.T) {
	t.Run("identical params produce identical keys", func(t *testing.T) {
		a := NewKey(ResourcePlans, Param("bot_id", 1), Param("page", 2))
		b := NewKey(ResourcePlans, Param("bot_id", 1), Param("page", 2))

		assert.Equal(t, a, b)
	})

	t.Run("param order does not split the cache", func(t *testing.T) {
		a := NewKey(ResourceSubscribers, Param("page", 1), Param("bot_id", 7))
		b := NewKey(ResourceSubscribers, Param("bot_id", 7), Param("page", 1))

		assert.Equal(t, a, b)
	})

	t.Run("different params produce different keys", func(t *testing.T) {
		a := NewKey(ResourcePayments, Param("page", 1))
		b := NewKey(ResourcePayments, Param("page", 2))

		assert.NotEqual(t, a, b)
	})

	t.Run("no params", func(t *testing.T) {
		key := NewKey(ResourceDashboard)

		assert.Equal(t, ResourceDashboard, key.Resource)
		assert.Empty(t, key.Params)
		assert.Equal(t, "dashboard", key.String())
	})

	t.Run("string form", func(t *testing.T) {
		key := NewKey(ResourceBots, Param("page", 1), Param("size", 50))

		assert.Equal(t, "bots?page=1&size=50", key.String())
	})
}
