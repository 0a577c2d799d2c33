package game

import (
	"time"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/score"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeRoundStart    EventType = "round_start"
	EventTypeWager         EventType = "wager"
	EventTypeWagerRejected EventType = "wager_rejected"
	EventTypeSitOut        EventType = "sit_out"
	EventTypeCardDealt     EventType = "card_dealt"
	EventTypeDealComplete  EventType = "deal_complete"
	EventTypeReveal        EventType = "reveal"
	EventTypePlayerAction  EventType = "player_action"
	EventTypeBust          EventType = "bust"
	EventTypeDealerStand   EventType = "dealer_stand"
	EventTypePayout        EventType = "payout"
	EventTypeRoundEnd      EventType = "round_end"
	EventTypeHalt          EventType = "halt"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents anything that happens at the table
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// EventMeta is shared by every event
type EventMeta struct {
	SessionID string
	Round     int
	At        time.Time
}

// Timestamp returns when the event happened
func (m EventMeta) Timestamp() time.Time { return m.At }

// Meta returns the shared fields
func (m EventMeta) Meta() EventMeta { return m }

// RoundStartEvent is published before wagers are collected
type RoundStartEvent struct {
	EventMeta
	Players []*Player
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }

// WagerEvent is published when a player's wager is accepted
type WagerEvent struct {
	EventMeta
	Player *Player
	Amount int
}

func (e WagerEvent) EventType() EventType { return EventTypeWager }

// RejectReason explains why a wager was refused
type RejectReason int

const (
	BelowMinimum RejectReason = iota
	InsufficientChips
)

// WagerRejectedEvent is published when a wager is refused and the player is
// asked again
type WagerRejectedEvent struct {
	EventMeta
	Player  *Player
	Amount  int
	Minimum int
	Reason  RejectReason
}

func (e WagerRejectedEvent) EventType() EventType { return EventTypeWagerRejected }

// SitOutEvent is published when a player skips the round
type SitOutEvent struct {
	EventMeta
	Player *Player
	// Forced is true when the balance is below the table minimum
	Forced bool
}

func (e SitOutEvent) EventType() EventType { return EventTypeSitOut }

// CardDealtEvent is published for every card leaving the shoe
type CardDealtEvent struct {
	EventMeta
	Player *Player // nil when the dealer receives the card
	Card   *deck.Card
	Hand   *Hand
}

func (e CardDealtEvent) EventType() EventType { return EventTypeCardDealt }

// ToDealer reports whether the dealer received the card
func (e CardDealtEvent) ToDealer() bool { return e.Player == nil }

// DealCompleteEvent is published after the initial two cards
type DealCompleteEvent struct {
	EventMeta
	Players []*Player
	Dealer  *Dealer
}

func (e DealCompleteEvent) EventType() EventType { return EventTypeDealComplete }

// RevealEvent is published when the dealer turns the hole card over
type RevealEvent struct {
	EventMeta
	Dealer *Dealer
	Score  int
	// Early is true when a dealer blackjack is shown straight after the deal
	Early bool
}

func (e RevealEvent) EventType() EventType { return EventTypeReveal }

// PlayerActionEvent is published when a player hits or stands
type PlayerActionEvent struct {
	EventMeta
	Player *Player
	Action Action
	Card   *deck.Card // card received on a hit
	Score  int        // score after the action
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }

// BustEvent is published when a hand goes over the target score
type BustEvent struct {
	EventMeta
	Player *Player // nil for the dealer
	Score  int
}

func (e BustEvent) EventType() EventType { return EventTypeBust }

// DealerStandEvent is published when the dealer stops drawing
type DealerStandEvent struct {
	EventMeta
	Dealer *Dealer
	Score  int
}

func (e DealerStandEvent) EventType() EventType { return EventTypeDealerStand }

// PayoutEvent is published once per active player when the round settles
type PayoutEvent struct {
	EventMeta
	Player      *Player
	Outcome     score.Outcome
	Wager       int
	Credited    int // chips returned to the player, wager included
	Score       int
	Cards       int
	DealerScore int
}

func (e PayoutEvent) EventType() EventType { return EventTypePayout }

// Net returns the chips won (positive) or lost (negative) on the round
func (e PayoutEvent) Net() int { return e.Credited - e.Wager }

// RoundEndEvent is published after cleanup
type RoundEndEvent struct {
	EventMeta
	Players  int
	Duration time.Duration
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }

// HaltReason explains why the game stopped
type HaltReason int

const (
	HaltEveryoneBroke HaltReason = iota
	HaltNoWagers
	HaltCancelled
)

// String returns the string representation of a halt reason
func (r HaltReason) String() string {
	switch r {
	case HaltEveryoneBroke:
		return "everyone is broke"
	case HaltNoWagers:
		return "no wagers"
	case HaltCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// HaltEvent is published when the game stops
type HaltEvent struct {
	EventMeta
	Reason  HaltReason
	Players []*Player
}

func (e HaltEvent) EventType() EventType { return EventTypeHalt }

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus implementation. Delivery is
// synchronous, in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
