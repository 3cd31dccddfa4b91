package access

import (
	"context"
	"log/slog"
	"sync"

	"genesis-storefront/internal/domain/booking"
	"genesis-storefront/internal/domain/identity"
	"genesis-storefront/internal/infra/document"
	"genesis-storefront/internal/pkg/errs"
	"genesis-storefront/internal/pkg/ptr"
	"genesis-storefront/internal/usecase/commands"
	"genesis-storefront/internal/usecase/shared"
)

type View string

const (
	ViewStorefront View = "storefront"
	ViewBackOffice View = "backoffice"
)

// Prompt tells the presentation layer which login form to show, if any.
type Prompt string

const (
	PromptNone          Prompt = "none"
	PromptCustomerLogin Prompt = "customer_login"
	PromptStaffLogin    Prompt = "staff_login"
)

// Intent is an action captured while nobody was logged in.
type Intent struct {
	DestinationID string
	Draft         *shared.BookingDraft
}

// Outcome is the result of a gated customer action. Booking is set only
// when a booking was actually created.
type Outcome struct {
	Prompt                Prompt           `json:"prompt"`
	SelectedDestinationID string           `json:"selectedDestinationId,omitempty"`
	Booking               *booking.Booking `json:"booking,omitempty"`
}

type Snapshot struct {
	Identity              *identity.Identity `json:"identity"`
	StaffSession          bool               `json:"staffSession"`
	View                  View               `json:"view"`
	PendingDestinationID  string             `json:"pendingDestinationId,omitempty"`
	SelectedDestinationID string             `json:"selectedDestinationId,omitempty"`
	CartCount             int                `json:"cartCount"`
}

//go:generate mockgen -source=gate.go -destination=../../../tests/mock/access/gate.go -package=accessmock

type PasscodeVerifier interface {
	Verify(passcode string) bool
}

// Gatekeeper is the gate as seen by the transport layer.
type Gatekeeper interface {
	Browse() View
	RequestBooking(ctx context.Context, destinationID string, draft *shared.BookingDraft) (Outcome, error)
	Login(ctx context.Context, who identity.Identity) (Outcome, error)
	Logout(ctx context.Context) error
	EnterBackOffice() Prompt
	StaffLogin(passcode string) error
	LeaveBackOffice()
	StaffLogout()
	AuthorizeBackOffice() Prompt
	CurrentIdentity() (identity.Identity, error)
	Session() Snapshot
}

var _ Gatekeeper = (*Gate)(nil)

// Gate decides which views and actions are reachable. The customer identity
// lives in the repository; staff state is process-local and never persisted.
type Gate struct {
	mu sync.Mutex

	identities   shared.IdentityStore
	destinations shared.DestinationReader
	bookings     shared.BookingReader
	commands     commands.BookingCommands
	verifier     PasscodeVerifier
	logger       *slog.Logger

	view         View
	staffSession bool
	pending      *Intent
	selected     string
}

func NewGate(
	identities shared.IdentityStore,
	destinations shared.DestinationReader,
	bookings shared.BookingReader,
	bookingCommands commands.BookingCommands,
	verifier PasscodeVerifier,
	logger *slog.Logger,
) *Gate {
	return &Gate{
		identities:   identities,
		destinations: destinations,
		bookings:     bookings,
		commands:     bookingCommands,
		verifier:     verifier,
		logger:       logger,
		view:         ViewStorefront,
	}
}

// Browse never needs an identity.
func (g *Gate) Browse() View {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.view
}

// RequestBooking selects a destination for booking. Without an identity the
// request is captured and a customer login prompt is returned instead.
func (g *Gate) RequestBooking(ctx context.Context, destinationID string, draft *shared.BookingDraft) (Outcome, error) {
	if _, ok := g.destinations.FindDestination(destinationID); !ok {
		return Outcome{Prompt: PromptNone}, errs.Mark(errs.New("destination "+destinationID+" does not exist"), errs.ErrDestinationNotFound)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	who := g.identities.CurrentIdentity()
	if who == nil {
		g.pending = &Intent{DestinationID: destinationID, Draft: cloneDraft(draft)}
		g.logger.Info("booking intent captured", slog.String("destination_id", destinationID))
		return Outcome{Prompt: PromptCustomerLogin}, nil
	}

	return g.book(ctx, *who, Intent{DestinationID: destinationID, Draft: draft})
}

// Login persists the identity and resumes any captured intent without
// further input. A failed resumption still leaves the customer logged in
// with the destination selected.
func (g *Gate) Login(ctx context.Context, who identity.Identity) (Outcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.identities.SetIdentity(ctx, &who); err != nil {
		if errs.Is(err, document.ErrEncode) {
			return Outcome{Prompt: PromptCustomerLogin}, errs.Mark(err, errs.ErrInvalidIdentity)
		}
		return Outcome{Prompt: PromptCustomerLogin}, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	g.logger.Info("customer logged in", slog.String("email", who.Email))

	if g.pending == nil {
		return Outcome{Prompt: PromptNone, SelectedDestinationID: g.selected}, nil
	}

	intent := *g.pending
	g.pending = nil
	g.logger.Info("resuming booking intent", slog.String("destination_id", intent.DestinationID))
	return g.book(ctx, who, intent)
}

// Logout forgets the customer and purges the stored identity.
func (g *Gate) Logout(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.identities.SetIdentity(ctx, nil); err != nil {
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	g.pending = nil
	g.selected = ""
	g.logger.Info("customer logged out")
	return nil
}

// EnterBackOffice switches to the console. The staff session is reset on
// every entry so each visit asks for the passcode again.
func (g *Gate) EnterBackOffice() Prompt {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.view = ViewBackOffice
	g.staffSession = false
	return PromptStaffLogin
}

func (g *Gate) StaffLogin(passcode string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.view != ViewBackOffice {
		return errs.Mark(errs.New("staff login outside the back office"), errs.ErrNotInBackOffice)
	}
	if !g.verifier.Verify(passcode) {
		g.logger.Warn("staff login rejected")
		return errs.Mark(errs.New("passcode mismatch"), errs.ErrInvalidPasscode)
	}
	g.staffSession = true
	g.logger.Info("staff session started")
	return nil
}

func (g *Gate) LeaveBackOffice() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.view = ViewStorefront
	g.staffSession = false
}

func (g *Gate) StaffLogout() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.staffSession = false
}

// AuthorizeBackOffice reports which prompt blocks console access, or
// PromptNone when access is granted.
func (g *Gate) AuthorizeBackOffice() Prompt {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.view == ViewBackOffice && g.staffSession {
		return PromptNone
	}
	return PromptStaffLogin
}

// CurrentIdentity returns the logged-in customer or an ErrIdentityRequired
// error.
func (g *Gate) CurrentIdentity() (identity.Identity, error) {
	who := g.identities.CurrentIdentity()
	if who == nil {
		return identity.Identity{}, errs.Mark(errs.New("no customer logged in"), errs.ErrIdentityRequired)
	}
	return *who, nil
}

func (g *Gate) Session() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	who := g.identities.CurrentIdentity()
	snap := Snapshot{
		Identity:              who,
		StaffSession:          g.staffSession,
		View:                  g.view,
		SelectedDestinationID: g.selected,
	}
	if g.pending != nil {
		snap.PendingDestinationID = g.pending.DestinationID
	}
	if who != nil {
		for _, b := range g.bookings.ListBookings() {
			if who.Owns(b.CustomerEmail) {
				snap.CartCount++
			}
		}
	}
	return snap
}

// book must be called with g.mu held.
func (g *Gate) book(ctx context.Context, who identity.Identity, intent Intent) (Outcome, error) {
	g.selected = intent.DestinationID
	out := Outcome{Prompt: PromptNone, SelectedDestinationID: intent.DestinationID}
	if intent.Draft == nil {
		return out, nil
	}

	draft := *intent.Draft
	draft.ReferralCode = ptr.StringOrNil(ptr.Coalesce(draft.ReferralCode, ptr.Deref(who.ReferralCode)))

	created, err := g.commands.CreateBooking(ctx, intent.DestinationID, who, draft)
	if err != nil {
		return out, err
	}
	out.Booking = created
	return out, nil
}

func cloneDraft(d *shared.BookingDraft) *shared.BookingDraft {
	if d == nil {
		return nil
	}
	c := *d
	if d.ReferralCode != nil {
		c.ReferralCode = ptr.Of(*d.ReferralCode)
	}
	return &c
}
