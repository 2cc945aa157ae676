package registry

import (
	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/as1coder/portfolioBuilder/internal/pubsub"
)

// Core services placed in the registry before modules register.
const (
	StoreKey       Key[domain.Store]            = "core.store"
	IdentityKey    Key[domain.IdentityProvider] = "core.identity"
	EventBusKey    Key[pubsub.Bus]              = "core.events"
	EmailSenderKey Key[domain.EmailSender]      = "core.email"
)
