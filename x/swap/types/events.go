package types

// Event types emitted by the swap module. These mirror the audit actions of
// the on-chain deployment (swap details, liquidity details, inheritance
// notifications).
const (
	EventTypeSwap            = "swap"
	EventTypeAddLiquidity    = "add_liquidity"
	EventTypeRemoveLiquidity = "remove_liquidity"
	EventTypePoolCreated     = "pool_created"
	EventTypePoolRemoved     = "pool_removed"
	EventTypeInheritance     = "inheritance"

	AttributeKeyPoolID      = "pool_id"
	AttributeKeyOwner       = "owner"
	AttributeKeyTokenIn     = "token_in"
	AttributeKeyTokenOut    = "token_out"
	AttributeKeyPoolFee     = "pool_fee"
	AttributeKeyPlatformFee = "platform_fee"
	AttributeKeyPrice       = "price"
	AttributeKeyLiquidity   = "liquidity"
	AttributeKeyToken1      = "token1"
	AttributeKeyToken2      = "token2"
	AttributeKeyFrom        = "from"
	AttributeKeyTo          = "to"
	AttributeKeyQuantity    = "quantity"
)

// Attribute is one key/value pair of an event.
type Attribute struct {
	Key   string
	Value string
}

// Event is a best-effort audit notification. Emitting an event never fails
// the originating operation.
type Event struct {
	Type       string
	Attributes []Attribute
}

// NewEvent constructs an event from alternating key/value attribute pairs.
func NewEvent(ty string, attrs ...Attribute) Event {
	return Event{Type: ty, Attributes: attrs}
}

// NewAttribute constructs a single event attribute.
func NewAttribute(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// EventManager collects the events emitted during one operation.
type EventManager struct {
	events []Event
}

// NewEventManager returns an empty event manager.
func NewEventManager() *EventManager {
	return &EventManager{}
}

// EmitEvent appends an event.
func (em *EventManager) EmitEvent(event Event) {
	em.events = append(em.events, event)
}

// Events returns all events emitted so far.
func (em *EventManager) Events() []Event {
	return em.events
}
