package types

type contextKey string

// ClientAppKey carries the assembled *client.App through the command context.
const ClientAppKey contextKey = "clientApp"
