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

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameSubjectsCompleted = "subjects_completed_total"
	MetricNameRewardsGranted    = "rewards_granted_total"
	MetricNamePlantsPlanted     = "plants_planted_total"
	MetricNamePlantsGrown       = "plants_grown_total"
	MetricNamePlantsHarvested   = "plants_harvested_total"
	MetricNameTicketsExpired    = "growth_tickets_expired_total"
	MetricNameDailyResets       = "daily_resets_total"
	MetricNameMinigamePlays     = "minigame_plays_total"
	MetricNameMoneyEarned       = "money_earned_total"
	MetricNameMoneySpent        = "money_spent_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextEventsPublished    = "Total number of events published, by event type"
	HelpTextEventHandlerErrors = "Total number of event handler errors, by event type"

	HelpTextSubjectsCompleted = "Total number of subject completions"
	HelpTextRewardsGranted    = "Total number of reward tickets granted, by ticket type"
	HelpTextPlantsPlanted     = "Total number of seeds planted"
	HelpTextPlantsGrown       = "Total number of plants grown"
	HelpTextPlantsHarvested   = "Total number of plants harvested"
	HelpTextTicketsExpired    = "Total number of growth tickets pruned after expiry"
	HelpTextDailyResets       = "Total number of daily resets performed"
	HelpTextMinigamePlays     = "Total number of minigame plays, by game type"
	HelpTextMoneyEarned       = "Total money credited to the wallet"
	HelpTextMoneySpent        = "Total money debited from the wallet"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelGame   = "game"
)

// HTTPLatencyBuckets are the histogram buckets for request latency.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}
