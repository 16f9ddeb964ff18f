package idempotency

import (
	"time"

	"encore.dev/storage/cache"

	"github.com/franchise-ops/collections/receivables/model"
)

const entryTTL = 24 * time.Hour

var requestCluster = cache.NewCluster("receivables-idempotency", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// requestCache stores one entry per path and client key.
var requestCache = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry](
	requestCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(entryTTL),
	},
)
