package redisx

import "time"

const (
	// Namespaced store key: {namespace}:{key}
	KeyStore = "%s:%s"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"

	// Daily sales digest: hash sales:{YYYY-MM-DD} -> orders, gross, status:{Status}
	KeySalesDaily = "sales:%s"
)

var (
	TTLDedup       = 48 * time.Hour
	TTLSalesDigest = 90 * 24 * time.Hour
)
