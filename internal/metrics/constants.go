package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Lookup metric names
const (
	MetricNameLookupsTotal      = "item_lookups_total"
	MetricNameLookupDuration    = "item_lookup_duration_seconds"
	MetricNameCustomItemsActive = "custom_items_registered"
	MetricNameArgParsersActive  = "lookup_arg_parsers_registered"
)

// Placeholder metric names
const (
	MetricNamePlaceholderCacheHits   = "placeholder_cache_hits_total"
	MetricNamePlaceholderCacheMisses = "placeholder_cache_misses_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// Lookup metric help text
const (
	HelpTextLookupsTotal      = "Total number of item lookup string parses"
	HelpTextLookupDuration    = "Item lookup parse latency in seconds"
	HelpTextCustomItemsActive = "Current number of registered custom items"
	HelpTextArgParsersActive  = "Current number of registered lookup arg parsers"
)

// Placeholder metric help text
const (
	HelpTextPlaceholderCacheHits   = "Total number of placeholder responses served from cache"
	HelpTextPlaceholderCacheMisses = "Total number of placeholder responses computed fresh"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelResult = "result"
)

// Lookup result label values
const (
	ResultResolved = "resolved"
	ResultEmpty    = "empty"
)

// Histogram buckets for lookup parse latency. Parses are in-memory
// string work, so the buckets sit well below typical HTTP latencies.
var LookupLatencyBuckets = []float64{0.000001, 0.000005, 0.00001, 0.00005, 0.0001, 0.0005, 0.001}
