package services

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/primeasset/recruit-landing/pkg/clients/leadsink"
	"github.com/primeasset/recruit-landing/pkg/logger"
	"github.com/primeasset/recruit-landing/pkg/models"
	"github.com/primeasset/recruit-landing/pkg/utils"
	"github.com/primeasset/recruit-landing/pkg/validation"
)

// State is the step the recruitment form is in
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// NoticeLevel distinguishes success and failure notices
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is a one-off message shown to the applicant after a submit
type Notice struct {
	Level   NoticeLevel
	Message string
}

const (
	MessageSubmitted        = "상담 신청이 완료되었습니다!"
	MessageNotConfigured    = "관리자 설정 오류: 구글 스크립트 URL이 설정되지 않았습니다."
	MessageTransportFailure = "전송 중 오류가 발생했습니다. 다시 시도해주세요."
)

// FlowView is a copy of the flow state for rendering
type FlowView struct {
	State  State
	Values models.LeadSubmission
	Errors models.FieldErrors
	Notice *Notice
}

// LeadFlow drives one recruitment form from editing to submitted.
// A flow serves a single applicant; it is not shared between requests.
type LeadFlow struct {
	sink      leadsink.Client
	validator *validation.Validator
	logger    *slog.Logger

	// busy excludes a second Submit while one is pending
	busy atomic.Bool

	mu     sync.Mutex
	state  State
	values models.LeadSubmission
	errors models.FieldErrors
	notice *Notice
}

// NewLeadFlow creates a flow in the editing state. A nil sink means the
// lead endpoint is not configured; every submit then fails with
// ErrEndpointNotConfigured.
func NewLeadFlow(sink leadsink.Client, log *slog.Logger) *LeadFlow {
	if log == nil {
		log = slog.Default()
	}
	return &LeadFlow{
		sink:      sink,
		validator: validation.Default(),
		logger:    log.With(logger.Scope("leadflow")),
		state:     StateEditing,
	}
}

// Update replaces the values being edited. Ignored unless editing.
func (f *LeadFlow) Update(values models.LeadSubmission) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateEditing {
		return
	}
	f.values = values
}

// Validate checks the current values without submitting them
func (f *LeadFlow) Validate() models.FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, errs := f.validator.Validate(f.values)
	f.errors = errs
	return errs
}

// Submit validates the current values and, when all of them pass, sends
// them to the lead endpoint as one request. Nothing is sent otherwise.
//
// In opaque delivery mode a dispatch without transport error counts as
// success even though the endpoint's answer is unknown.
func (f *LeadFlow) Submit(ctx context.Context) (leadsink.Receipt, error) {
	if !f.busy.CompareAndSwap(false, true) {
		return leadsink.Receipt{}, ErrSubmissionInFlight
	}
	defer f.busy.Store(false)

	f.mu.Lock()
	if f.state != StateEditing {
		f.mu.Unlock()
		return leadsink.Receipt{}, ErrAlreadySubmitted
	}

	lead, errs := f.validator.Validate(f.values)
	f.errors = errs
	f.notice = nil
	if errs != nil {
		f.mu.Unlock()
		f.logger.Debug("lead rejected by validation", slog.Any("fields", errs.Fields()))
		return leadsink.Receipt{}, &ValidationError{Fields: errs}
	}

	if f.sink == nil {
		f.notice = &Notice{Level: NoticeError, Message: MessageNotConfigured}
		f.mu.Unlock()
		f.logger.Error("lead endpoint not configured, submission blocked")
		return leadsink.Receipt{}, ErrEndpointNotConfigured
	}

	f.state = StateSubmitting
	f.mu.Unlock()

	phoneHash := utils.HashPhone(lead.Phone)
	f.logger.Info("dispatching lead",
		slog.String("phone_hash", phoneHash),
		slog.String("experience", string(lead.Experience)),
		slog.Bool("markup", f.validator.ContainsMarkup(lead)),
	)

	receipt, err := f.sink.Send(ctx, lead)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.state = StateEditing
		f.notice = &Notice{Level: NoticeError, Message: MessageTransportFailure}
		f.logger.Error("error dispatching lead",
			slog.String("phone_hash", phoneHash),
			slog.String("submission_id", receipt.SubmissionID),
			logger.Error(err),
		)
		return receipt, &TransportError{Err: err}
	}

	if !receipt.Confirmed {
		f.logger.Warn("lead dispatched without delivery confirmation; endpoint response was not inspected",
			slog.String("phone_hash", phoneHash),
			slog.String("submission_id", receipt.SubmissionID),
		)
	} else {
		f.logger.Info("lead delivered",
			slog.String("phone_hash", phoneHash),
			slog.String("submission_id", receipt.SubmissionID),
		)
	}

	f.state = StateSubmitted
	f.values = models.LeadSubmission{}
	f.errors = nil
	f.notice = &Notice{Level: NoticeSuccess, Message: MessageSubmitted}
	return receipt, nil
}

// Reset clears the form and returns it to editing, typically after a
// successful submit. A pending submission is left alone.
func (f *LeadFlow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateSubmitting {
		return
	}
	f.state = StateEditing
	f.values = models.LeadSubmission{}
	f.errors = nil
	f.notice = nil
}

// Busy reports whether a submission is pending
func (f *LeadFlow) Busy() bool {
	return f.busy.Load()
}

// Snapshot returns a copy of the current state
func (f *LeadFlow) Snapshot() FlowView {
	f.mu.Lock()
	defer f.mu.Unlock()

	view := FlowView{
		State:  f.state,
		Values: f.values,
	}
	if f.errors != nil {
		view.Errors = make(models.FieldErrors, len(f.errors))
		for k, v := range f.errors {
			view.Errors[k] = v
		}
	}
	if f.notice != nil {
		n := *f.notice
		view.Notice = &n
	}
	return view
}
