package checkout

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"everafter/internal/domain"
	"everafter/internal/session"
)

// WarningEmailDelayed is reported when the charge went through but the
// confirmation endpoint could not be reached.
const WarningEmailDelayed = "Payment succeeded, confirmation email may be delayed."

// ErrInProgress is returned by Begin while another checkout is open.
var ErrInProgress = errors.New("a checkout is already in progress")

// Result describes a completed payment.
type Result struct {
	PaymentIntentID string
	PackageID       domain.PackageID
	Amount          domain.Cents
	// Warning is non-empty when the payment succeeded but its confirmation
	// did not.
	Warning string
}

// Orchestrator drives one session's checkout.
type Orchestrator struct {
	api     domain.BookingAPI
	element domain.PaymentElement
	sess    *session.Session
	log     *slog.Logger

	mu      sync.Mutex
	state   State
	pay     *domain.PaymentSession
	gen     uint64
	busy    bool
	hook    func(from, to State)
	pending []transition
}

// New returns an idle orchestrator for sess.
func New(api domain.BookingAPI, element domain.PaymentElement, sess *session.Session, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Orchestrator{api: api, element: element, sess: sess, log: log}
}

// OnTransition registers fn to observe every state change. fn runs after the
// internal lock is released and may call back into the orchestrator.
func (o *Orchestrator) OnTransition(fn func(from, to State)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.hook = fn
}

// State returns the current stage.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Session returns the active payment session, if any.
func (o *Orchestrator) Session() (domain.PaymentSession, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.pay == nil {
		return domain.PaymentSession{}, false
	}
	return *o.pay, true
}

// Begin opens a checkout for id.
func (o *Orchestrator) Begin(ctx context.Context, id domain.PackageID) (domain.PaymentSession, error) {
	o.mu.Lock()
	if o.busy {
		o.mu.Unlock()
		return domain.PaymentSession{}, domain.ErrBusy
	}
	if o.state != Idle && o.state != Succeeded {
		o.mu.Unlock()
		return domain.PaymentSession{}, ErrInProgress
	}
	form, err := o.sess.Validate(id)
	if err != nil {
		o.mu.Unlock()
		return domain.PaymentSession{}, err
	}
	if !o.sess.Pad.HasSignature() {
		o.mu.Unlock()
		return domain.PaymentSession{}, domain.Validationf(domain.ErrSignatureMissing, "Please sign the contract before paying.")
	}
	if o.state == Succeeded {
		o.transition(Idle)
	}
	o.busy = true
	gen := o.gen
	o.unlock()
	defer o.release()

	resp, err := o.api.CreatePaymentIntent(ctx, domain.IntentRequest{
		PackageID:     id,
		CustomerEmail: form.Email,
		CustomerName:  form.FullName,
	})
	if err != nil {
		return domain.PaymentSession{}, err
	}
	if o.abandoned(gen) {
		o.log.Info("dropping intent for cancelled checkout", "intent", resp.PaymentIntentID)
		return domain.PaymentSession{}, domain.ErrAbandoned
	}

	if err := o.element.Mount(ctx, resp.ClientSecret); err != nil {
		return domain.PaymentSession{}, err
	}

	o.mu.Lock()
	if o.gen != gen {
		o.mu.Unlock()
		o.element.Unmount()
		return domain.PaymentSession{}, domain.ErrAbandoned
	}
	o.pay = &domain.PaymentSession{
		ClientSecret:    resp.ClientSecret,
		PaymentIntentID: resp.PaymentIntentID,
		PackageID:       id,
		Amount:          resp.Amount,
	}
	ps := *o.pay
	o.transition(IntentCreated)
	o.unlock()

	o.log.Info("checkout started", "package", id, "intent", ps.PaymentIntentID, "amount", ps.Amount)
	return ps, nil
}

// Submit validates and confirms the mounted payment.
func (o *Orchestrator) Submit(ctx context.Context) (Result, error) {
	o.mu.Lock()
	if o.busy {
		o.mu.Unlock()
		return Result{}, domain.ErrBusy
	}
	if o.state != IntentCreated || o.pay == nil {
		o.mu.Unlock()
		return Result{}, domain.ErrNoSession
	}
	o.busy = true
	gen := o.gen
	ps := *o.pay
	o.unlock()
	defer o.release()

	if err := o.element.Submit(ctx); err != nil {
		return Result{}, err
	}

	o.mu.Lock()
	if o.gen != gen {
		o.mu.Unlock()
		return Result{}, domain.ErrAbandoned
	}
	o.transition(Confirming)
	o.unlock()

	intent, err := o.element.Confirm(ctx)
	if err == nil && intent.Status != domain.StatusSucceeded {
		err = domain.Validationf(domain.ErrPaymentDeclined, "Payment was not completed (%s).", intent.Status)
	}

	o.mu.Lock()
	if o.gen != gen {
		o.mu.Unlock()
		if err == nil {
			o.log.Warn("payment succeeded after checkout was cancelled", "intent", intent.ID)
		}
		return Result{}, domain.ErrAbandoned
	}
	if err != nil {
		o.transition(Failed)
		o.transition(IntentCreated)
		o.unlock()
		o.log.Info("payment not completed", "intent", ps.PaymentIntentID, "err", err)
		return Result{}, err
	}
	o.transition(Succeeded)
	o.unlock()

	return o.confirm(ctx, ps, intent), nil
}

// confirm reports the verified payment to the server. The payment has
// already happened, so failure here only downgrades the result to a warning.
func (o *Orchestrator) confirm(ctx context.Context, ps domain.PaymentSession, intent domain.PaymentIntent) Result {
	res := Result{PaymentIntentID: intent.ID, PackageID: ps.PackageID, Amount: ps.Amount}

	form := o.sess.Form(ps.PackageID)
	req := domain.ConfirmRequest{
		PaymentIntentID: intent.ID,
		CustomerName:    form.FullName,
		CustomerEmail:   form.Email,
		WeddingDate:     form.WeddingDate,
	}
	if art, err := o.sess.Pad.Export(); err != nil {
		o.log.Warn("signature export failed", "err", err)
	} else {
		req.Signature = art.DataURL()
	}

	resp, err := o.api.ConfirmPayment(ctx, req)
	if err != nil {
		o.log.Warn("payment confirmation failed", "intent", intent.ID, "err", err)
		res.Warning = WarningEmailDelayed
	} else if resp.Amount != 0 {
		res.Amount = resp.Amount
	}

	o.element.Unmount()
	o.sess.Discard(ps.PackageID)
	o.sess.Pad.Reset()

	o.mu.Lock()
	o.pay = nil
	o.mu.Unlock()
	return res
}

// Cancel abandons the checkout. Nothing is sent to the server; an in-flight
// call completes but its result is dropped.
func (o *Orchestrator) Cancel() {
	o.mu.Lock()
	o.gen++
	hadSession := o.pay != nil
	o.pay = nil
	if o.state != Idle {
		o.transition(Idle)
	}
	o.unlock()

	if hadSession {
		o.element.Unmount()
	}
}

func (o *Orchestrator) abandoned(gen uint64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.gen != gen
}

func (o *Orchestrator) release() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.busy = false
}

// transition must be called with mu held.
func (o *Orchestrator) transition(to State) {
	from := o.state
	o.state = to
	if o.hook != nil {
		o.pending = append(o.pending, transition{from, to})
	}
}

// unlock releases mu and then delivers queued transitions.
func (o *Orchestrator) unlock() {
	pending, hook := o.pending, o.hook
	o.pending = nil
	o.mu.Unlock()
	for _, t := range pending {
		hook(t.from, t.to)
	}
}
