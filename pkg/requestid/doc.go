// Package requestid assigns every HTTP request an id.
//
// Middleware keeps a well-formed incoming X-Request-ID header so ids survive
// proxies, and otherwise generates a UUIDv7. The id is available through
// FromContext and is added to log records by LoggerExtractor.
package requestid
