package values

// Response status strings. Handlers return these and util.StatusCode
// maps them onto HTTP status codes.
const (
	Success        = "success"
	Created        = "created"
	Error          = "error"
	Failed         = "failed"
	BadRequest     = "bad-request"
	BadRequestBody = "bad-request-body"
	Unprocessable  = "unprocessable"
	NotFound       = "not-found"
	NotAllowed     = "not-allowed"
	Conflict       = "conflict"
	NotAuthorised  = "not-authorised"
	TokenExpired   = "token-expired"
	ActiveLogin    = "active-login"
	InternalError  = "internal-error"
	SystemErr      = "system-error"
)

const (
	HeaderRequestID     = "X-Request-Id"
	HeaderRequestSource = "X-Request-Source"
)

type contextKey string

// ContextTracingKey carries the tracing.Context through request contexts.
const ContextTracingKey = contextKey("tracing-context")
