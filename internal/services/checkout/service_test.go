package checkout_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"everafter/internal/domain"
	"everafter/internal/services/checkout"
	"everafter/internal/session"
	"everafter/internal/signature"
)

type fakeAPI struct {
	mu         sync.Mutex
	intents    []domain.IntentRequest
	confirms   []domain.ConfirmRequest
	createErr  error
	confirmErr error

	// entered/release let a test hold CreatePaymentIntent in flight.
	entered chan struct{}
	release chan struct{}
}

func (a *fakeAPI) ListPackages(context.Context) ([]domain.Package, error) { return nil, nil }

func (a *fakeAPI) CreatePaymentIntent(_ context.Context, req domain.IntentRequest) (domain.IntentResponse, error) {
	if a.entered != nil {
		a.entered <- struct{}{}
		<-a.release
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.intents = append(a.intents, req)
	if a.createErr != nil {
		return domain.IntentResponse{}, a.createErr
	}
	return domain.IntentResponse{
		ClientSecret:    "pi_1_secret_x",
		PaymentIntentID: "pi_1",
		PackageID:       req.PackageID,
		Amount:          34000,
	}, nil
}

func (a *fakeAPI) ConfirmPayment(_ context.Context, req domain.ConfirmRequest) (domain.ConfirmResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.confirms = append(a.confirms, req)
	if a.confirmErr != nil {
		return domain.ConfirmResponse{}, a.confirmErr
	}
	return domain.ConfirmResponse{Success: true, PaymentIntentID: req.PaymentIntentID, Amount: 34000}, nil
}

func (a *fakeAPI) SubmitContract(context.Context, domain.ContractSubmission) error { return nil }

type confirmResult struct {
	intent domain.PaymentIntent
	err    error
}

type fakeElement struct {
	mounted   string
	submitErr error
	results   []confirmResult
	confirms  int
	unmounts  int
}

func (e *fakeElement) Mount(_ context.Context, secret string) error {
	e.mounted = secret
	return nil
}

func (e *fakeElement) Submit(context.Context) error { return e.submitErr }

func (e *fakeElement) Confirm(context.Context) (domain.PaymentIntent, error) {
	e.confirms++
	if len(e.results) == 0 {
		return domain.PaymentIntent{ID: "pi_1", Status: domain.StatusSucceeded}, nil
	}
	r := e.results[0]
	e.results = e.results[1:]
	return r.intent, r.err
}

func (e *fakeElement) Unmount() {
	e.mounted = ""
	e.unmounts++
}

func readySession(t *testing.T) *session.Session {
	t.Helper()
	s := session.New(320, 140, 1)
	s.Fill("luxury", domain.BookingForm{FullName: "Jane Doe", Email: "jane@example.com", WeddingDate: "2026-06-01"})
	s.Pad.BeginStroke(signature.Point{X: 10, Y: 10})
	s.Pad.ExtendStroke(signature.Point{X: 90, Y: 60})
	s.Pad.EndStroke()
	return s
}

func recordStates(o *checkout.Orchestrator) *[]checkout.State {
	var seen []checkout.State
	o.OnTransition(func(_, to checkout.State) { seen = append(seen, to) })
	return &seen
}

func TestBegin_ValidatesLocallyFirst(t *testing.T) {
	api := &fakeAPI{}
	s := session.New(320, 140, 1)
	o := checkout.New(api, &fakeElement{}, s, nil)

	if _, err := o.Begin(context.Background(), "luxury"); domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("incomplete form: want validation error, got %v", err)
	}

	s.Fill("luxury", domain.BookingForm{FullName: "Jane Doe", Email: "jane@example.com", WeddingDate: "2026-06-01"})
	if _, err := o.Begin(context.Background(), "luxury"); !errors.Is(err, domain.ErrSignatureMissing) {
		t.Fatalf("blank signature: want ErrSignatureMissing, got %v", err)
	}

	if len(api.intents) != 0 {
		t.Fatal("server contacted before local validation passed")
	}
	if o.State() != checkout.Idle {
		t.Fatalf("state: %v", o.State())
	}
}

func TestBegin_CreatesIntentAndMounts(t *testing.T) {
	api := &fakeAPI{}
	el := &fakeElement{}
	o := checkout.New(api, el, readySession(t), nil)
	seen := recordStates(o)

	ps, err := o.Begin(context.Background(), "luxury")
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if ps.Amount != 34000 || ps.PaymentIntentID != "pi_1" || ps.PackageID != "luxury" {
		t.Fatalf("session: %+v", ps)
	}
	if el.mounted != "pi_1_secret_x" {
		t.Fatalf("element mounted with %q", el.mounted)
	}
	if api.intents[0].CustomerEmail != "jane@example.com" || api.intents[0].CustomerName != "Jane Doe" {
		t.Fatalf("intent request: %+v", api.intents[0])
	}
	if o.State() != checkout.IntentCreated || len(*seen) != 1 {
		t.Fatalf("state %v, transitions %v", o.State(), *seen)
	}
}

func TestBegin_ServerRejectionStaysIdle(t *testing.T) {
	api := &fakeAPI{createErr: domain.Validation("Invalid package selection.")}
	o := checkout.New(api, &fakeElement{}, readySession(t), nil)

	if _, err := o.Begin(context.Background(), "luxury"); err == nil || err.Error() != "Invalid package selection." {
		t.Fatalf("want server message, got %v", err)
	}
	if o.State() != checkout.Idle {
		t.Fatalf("state: %v", o.State())
	}
	if _, ok := o.Session(); ok {
		t.Fatal("session kept after failed begin")
	}
}

func TestSubmit_ElementValidationKeepsIntent(t *testing.T) {
	el := &fakeElement{submitErr: domain.Validation("Your card number is incomplete.")}
	o := checkout.New(&fakeAPI{}, el, readySession(t), nil)
	if _, err := o.Begin(context.Background(), "luxury"); err != nil {
		t.Fatalf("begin: %v", err)
	}

	if _, err := o.Submit(context.Background()); domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("want validation error, got %v", err)
	}
	if o.State() != checkout.IntentCreated {
		t.Fatalf("state: %v", o.State())
	}
	if el.confirms != 0 {
		t.Fatal("confirmed despite invalid payment details")
	}
}

func TestSubmit_DeclineReturnsToSameIntent(t *testing.T) {
	api := &fakeAPI{}
	el := &fakeElement{results: []confirmResult{
		{err: domain.Validationf(domain.ErrPaymentDeclined, "Your card was declined.")},
	}}
	o := checkout.New(api, el, readySession(t), nil)
	if _, err := o.Begin(context.Background(), "luxury"); err != nil {
		t.Fatalf("begin: %v", err)
	}
	seen := recordStates(o)

	if _, err := o.Submit(context.Background()); !errors.Is(err, domain.ErrPaymentDeclined) {
		t.Fatalf("want decline, got %v", err)
	}
	want := []checkout.State{checkout.Confirming, checkout.Failed, checkout.IntentCreated}
	if len(*seen) != len(want) {
		t.Fatalf("transitions: %v", *seen)
	}
	for i := range want {
		if (*seen)[i] != want[i] {
			t.Fatalf("transitions: %v", *seen)
		}
	}
	if ps, ok := o.Session(); !ok || ps.PaymentIntentID != "pi_1" {
		t.Fatalf("session after decline: %+v %v", ps, ok)
	}

	res, err := o.Submit(context.Background())
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if res.PaymentIntentID != "pi_1" {
		t.Fatalf("result: %+v", res)
	}
	if len(api.intents) != 1 {
		t.Fatalf("retry created %d intents", len(api.intents))
	}
}

func TestSubmit_NonSucceededStatusIsFailure(t *testing.T) {
	el := &fakeElement{results: []confirmResult{
		{intent: domain.PaymentIntent{ID: "pi_1", Status: domain.StatusRequiresAction}},
	}}
	api := &fakeAPI{}
	o := checkout.New(api, el, readySession(t), nil)
	if _, err := o.Begin(context.Background(), "luxury"); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if _, err := o.Submit(context.Background()); !errors.Is(err, domain.ErrPaymentDeclined) {
		t.Fatalf("want decline, got %v", err)
	}
	if len(api.confirms) != 0 {
		t.Fatal("confirmation sent for an incomplete payment")
	}
}

func TestSubmit_SuccessConfirmsWithSignature(t *testing.T) {
	api := &fakeAPI{}
	el := &fakeElement{}
	s := readySession(t)
	o := checkout.New(api, el, s, nil)
	if _, err := o.Begin(context.Background(), "luxury"); err != nil {
		t.Fatalf("begin: %v", err)
	}

	res, err := o.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Warning != "" || res.Amount != 34000 {
		t.Fatalf("result: %+v", res)
	}
	if o.State() != checkout.Succeeded {
		t.Fatalf("state: %v", o.State())
	}

	if len(api.confirms) != 1 {
		t.Fatalf("want 1 confirmation, got %d", len(api.confirms))
	}
	req := api.confirms[0]
	if req.PaymentIntentID != "pi_1" || req.CustomerName != "Jane Doe" || req.WeddingDate != "2026-06-01" {
		t.Fatalf("confirm request: %+v", req)
	}
	img, err := signature.ParseDataURL(req.Signature)
	if err != nil {
		t.Fatalf("signature: %v", err)
	}
	if signature.IsBlank(img, nil) {
		t.Fatal("blank signature sent")
	}

	if s.Form("luxury") != (domain.BookingForm{}) {
		t.Fatal("form not discarded after success")
	}
	if s.Pad.HasSignature() {
		t.Fatal("signature surface not reset after success")
	}
	if _, ok := o.Session(); ok {
		t.Fatal("payment session kept after success")
	}
}

func TestSubmit_ConfirmationFailureIsWarning(t *testing.T) {
	api := &fakeAPI{confirmErr: domain.Upstream("Payment processing failed.", nil)}
	o := checkout.New(api, &fakeElement{}, readySession(t), nil)
	if _, err := o.Begin(context.Background(), "luxury"); err != nil {
		t.Fatalf("begin: %v", err)
	}

	res, err := o.Submit(context.Background())
	if err != nil {
		t.Fatalf("payment succeeded but submit failed: %v", err)
	}
	if res.Warning != checkout.WarningEmailDelayed {
		t.Fatalf("warning: %q", res.Warning)
	}
	if o.State() != checkout.Succeeded {
		t.Fatalf("state: %v", o.State())
	}
}

func TestSubmit_WithoutSession(t *testing.T) {
	o := checkout.New(&fakeAPI{}, &fakeElement{}, readySession(t), nil)
	if _, err := o.Submit(context.Background()); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("want ErrNoSession, got %v", err)
	}
}

func TestCancel_DiscardsSessionWithoutServerCall(t *testing.T) {
	api := &fakeAPI{}
	el := &fakeElement{}
	o := checkout.New(api, el, readySession(t), nil)
	if _, err := o.Begin(context.Background(), "luxury"); err != nil {
		t.Fatalf("begin: %v", err)
	}

	o.Cancel()
	if o.State() != checkout.Idle {
		t.Fatalf("state: %v", o.State())
	}
	if _, ok := o.Session(); ok {
		t.Fatal("session kept after cancel")
	}
	if el.unmounts != 1 {
		t.Fatalf("unmounts: %d", el.unmounts)
	}
	if len(api.confirms) != 0 {
		t.Fatal("server contacted on cancel")
	}
}

func TestCancel_LateResponseIgnoredAndBusyGuard(t *testing.T) {
	api := &fakeAPI{entered: make(chan struct{}), release: make(chan struct{})}
	el := &fakeElement{}
	o := checkout.New(api, el, readySession(t), nil)

	errc := make(chan error, 1)
	go func() {
		_, err := o.Begin(context.Background(), "luxury")
		errc <- err
	}()
	<-api.entered

	if _, err := o.Begin(context.Background(), "luxury"); !errors.Is(err, domain.ErrBusy) {
		t.Fatalf("concurrent begin: want ErrBusy, got %v", err)
	}

	o.Cancel()
	close(api.release)

	if err := <-errc; !errors.Is(err, domain.ErrAbandoned) {
		t.Fatalf("late response: want ErrAbandoned, got %v", err)
	}
	if o.State() != checkout.Idle {
		t.Fatalf("state: %v", o.State())
	}
	if el.mounted != "" {
		t.Fatal("abandoned intent was mounted")
	}
}
