// Package requestid tags every HTTP request with a correlation ID.
//
// Middleware reuses a well-formed X-Request-ID header from the client or
// mints a time-ordered UUIDv7, echoes it in the response and stores it in the
// request context. LoggerExtractor plugs it into logger.WithContextExtractors
// so every record written with a request context carries request_id.
package requestid
