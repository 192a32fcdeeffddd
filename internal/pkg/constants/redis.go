package constants

// Redis key formats
const (
	KeyMatchCacheEntry = "match:cache:%s:%s"    // Format: match:cache:{driver_id}:{fingerprint}
	KeyMatchCacheIndex = "match:cache:index:%s" // Format: match:cache:index:{driver_id}

	// Rate Limiting
	KeyRateLimitDriver = "rate:driver" // prefix, suffixed with :{driver_id}
)
