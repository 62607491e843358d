package cache

import (
	"fmt"
	"sort"
	"strings"
)

// Resource identifies a cacheable upstream resource. Keys are built from
// these constants instead of free-form strings so a typo cannot silently
// miss an invalidation.
type Resource string

const (
	ResourceBots        Resource = "bots"
	ResourceChannels    Resource = "channels"
	ResourcePlans       Resource = "plans"
	ResourceSubscribers Resource = "subscribers"
	ResourcePayments    Resource = "payments"
	ResourcePromoCodes  Resource = "promo_codes"
	ResourceBroadcasts  Resource = "broadcasts"
	ResourceSettings    Resource = "settings"
	ResourceDashboard   Resource = "dashboard"
)

// Key identifies one cached read: the resource plus its normalized
// parameter tuple. Identical parameters always produce identical keys.
type Key struct {
	Resource Resource
	Params   string
}

// NewKey builds a key from "name=value" parameter pairs. Pairs are sorted so
// argument order never splits the cache.
func NewKey(resource Resource, params ...string) Key {
	if len(params) == 0 {
		return Key{Resource: resource}
	}

	sorted := make([]string, len(params))
	copy(sorted, params)
	sort.Strings(sorted)

	return Key{
		Resource: resource,
		Params:   strings.Join(sorted, "&"),
	}
}

// Param formats one key parameter pair.
func Param(name string, value interface{}) string {
	return fmt.Sprintf("%s=%v", name, value)
}

func (k Key) String() string {
	if k.Params == "" {
		return string(k.Resource)
	}
	return string(k.Resource) + "?" + k.Params
}
