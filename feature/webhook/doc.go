// Package webhook accepts inbound platform webhooks and queues them onto a
// Redis list for background processing.
package webhook
