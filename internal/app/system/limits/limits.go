package limits

// Limits shared across stores and handlers.
const (
	// MaxInQueryIDs is the largest ID list a single $in membership query
	// may carry. Reference hydration partitions larger lists into chunks
	// of this size.
	MaxInQueryIDs = 10

	// MaxJSONBodySize caps JSON request bodies to prevent memory
	// exhaustion from oversized requests.
	MaxJSONBodySize = 1 << 20 // 1 MB
)
