// Package notify delivers record-change events to the configured automation
// platform (an n8n-style webhook receiver) and exposes thin helpers over its
// REST API.
//
// Deliveries are fire-and-forget from the listing store's perspective: every
// outcome is logged and counted, none is surfaced to the caller that
// triggered the write.
package notify
