package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldRequestID   = "request_id"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldURL         = "url"
	FieldRecordCount = "record_count"
	FieldTotalPnL    = "total_pnl"
	FieldCategories  = "category_count"
	FieldDesks       = "desk_count"
	FieldTimestamp   = "timestamp"
	FieldTimezone    = "timezone"
	FieldExchange    = "exchange"
	FieldQueue       = "queue"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentFetcher  = "pnlapi"
	ComponentSnapshot = "snapshot"
	ComponentAMQP     = "amqp"
	ComponentLambda   = "lambda"
)

// Operations defines standard operation names
const (
	OpFetch     = "fetch"
	OpAggregate = "aggregate"
	OpRender    = "render"
	OpPublish   = "publish"
	OpStartup   = "startup"
	OpShutdown  = "shutdown"
)
