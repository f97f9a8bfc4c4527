package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Game metric names
const (
	MetricNameEventsPublished = "events_published_total"
	MetricNameDaysEnded       = "days_ended_total"
	MetricNameItemsShipped    = "items_shipped_total"
	MetricNameItemsBought     = "items_bought_total"
	MetricNameItemsCrafted    = "items_crafted_total"
	MetricNameItemsSold       = "items_sold_total"
	MetricNameGoldEarned      = "gold_earned_total"
	MetricNameGoldSpent       = "gold_spent_total"
	MetricNameQuestsCompleted = "quests_completed_total"
	MetricNameSavesMigrated   = "saves_migrated_total"
	MetricNameActions         = "actions_total"
	MetricNameActiveSessions  = "active_sessions"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextEventsPublished      = "Total number of game events published"
	HelpTextDaysEnded            = "Total number of day rollovers"
	HelpTextItemsShipped         = "Total number of items sold from the shipping bin"
	HelpTextItemsBought          = "Total number of items bought"
	HelpTextItemsCrafted         = "Total number of items crafted"
	HelpTextItemsSold            = "Total number of items sold directly"
	HelpTextGoldEarned           = "Total gold earned from sales, shipping and quests"
	HelpTextGoldSpent            = "Total gold spent buying items"
	HelpTextQuestsCompleted      = "Total number of quests completed"
	HelpTextSavesMigrated        = "Total number of saves upgraded on load"
	HelpTextActions              = "Player actions by name and outcome"
	HelpTextActiveSessions       = "Engines currently held in the session cache"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod      = "method"
	LabelPath        = "path"
	LabelStatus      = "status"
	LabelType        = "type"
	LabelItem        = "item"
	LabelFromVersion = "from_version"
	LabelAction      = "action"
	LabelOutcome     = "outcome"
	LabelSource      = "source"
)

// Label values
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	SourceSale      = "sale"
	SourceShip      = "shipping"
	SourceQuest     = "quest"
	UnmatchedPath   = "unmatched"
)

// HTTPLatencyBuckets ranges from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Log Messages
const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
