// Package api provides an HTTP client for the remote item store.
//
// # Overview
//
// Client implements items.Service over a small JSON API. It handles request
// construction, JSON encoding and decoding, and error classification. It
// holds no state beyond its configuration and is safe for concurrent use.
//
//	client, err := api.NewClient("127.0.0.1:7490", api.WithTimeout(3*time.Second))
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//	list, err := client.List(ctx)
//
// # API Endpoints
//
//   - GET /api/items: {"items":[{"id":1,"title":"Banana"}]}
//   - POST /api/items: body {"title":"Banana"}, returns the created item
//   - DELETE /api/items/{id}: any 2xx status means the item is gone
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation
//   - Set Accept: application/json and User-Agent: roster/0.1
//   - Have a 5-second timeout unless WithTimeout overrides it
//
// # Error Handling
//
//   - Invalid base URL: returned from NewClient
//   - Invalid input: items.ErrEmptyTitle, items.ErrInvalidID (no request sent)
//   - Network errors: wrapped as "execute request: ..."
//   - HTTP status >= 400: *StatusError. When the body is {"error":"..."}
//     the message is surfaced verbatim so the UI can show it.
//   - Malformed JSON: wrapped as "decode response: ..."
package api
