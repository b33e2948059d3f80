// Package server serves the select gallery over HTTP.
//
// Each browser gets its own gallery, found by a session cookie and held in
// memory until idle for Config.SessionIdleTimeout. Events reach the
// gallery two ways:
//
//   - GET /live upgrades to a WebSocket. The client sends change and
//     submit messages and receives the re-rendered card content and any
//     notifications.
//   - POST /events accepts the same events as a form. The server applies
//     the event, keeps notifications as a flash and redirects back to the
//     card.
//
// Routes also include the page itself, the embedded client assets,
// /healthz and /metrics.
//
//	srv := server.New(server.DefaultConfig(), server.Deps{Logger: logger})
//	err := srv.Run(ctx)
package server
