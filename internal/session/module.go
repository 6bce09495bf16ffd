package session

import "go.uber.org/fx"

// Module provides the in-memory session store.
var Module = fx.Provide(NewManager)
