package dashboard

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dermacare/dermacare/internal/domain/directory"
	"github.com/dermacare/dermacare/internal/domain/identity"
	"github.com/dermacare/dermacare/internal/domain/scan"
)

// Phase is where the analyze workflow currently stands.
type Phase string

const (
	PhaseIdle                 Phase = "idle"
	PhaseUploading            Phase = "uploading"
	PhaseAnalyzing            Phase = "analyzing"
	PhaseResultReady          Phase = "result-ready"
	PhaseLocating             Phase = "locating"
	PhaseRecommendationsShown Phase = "recommendations-shown"
)

// Tab is the active dashboard tab.
type Tab string

const (
	TabAnalyze Tab = "analyze"
	TabHistory Tab = "history"
	TabProfile Tab = "profile"
)

const historyPageSize = 50

type scanWorkflow interface {
	Analyze(ctx context.Context, userID uuid.UUID, filename string, content []byte) (*scan.AnalyzeResponse, error)
	History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*scan.ScanRecord, int, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type recommendationClient interface {
	VerifiedDoctors(ctx context.Context, q directory.LocationQuery) ([]directory.HospitalRecommendation, error)
}

type profileUpdater interface {
	UpdateLocation(ctx context.Context, userID uuid.UUID, city, state string) (*identity.UserAccount, error)
}

// Orchestrator drives one signed-in user's dashboard: the analyze workflow,
// the history list, and the recommendation panel. It subscribes to session
// events on Start and lets go on Stop.
//
// Re-entry is deliberately unguarded: a second upload while one is in
// flight simply overwrites the in-flight state, and whichever response is
// processed last wins. There is no cancellation.
type Orchestrator struct {
	scans    scanWorkflow
	dir      recommendationClient
	profile  profileUpdater
	events   *identity.Broadcaster
	notifier Notifier
	intake   *scan.Intake
	log      zerolog.Logger

	unsubscribe func()
	done        chan struct{}

	mu              sync.Mutex
	phase           Phase
	tab             Tab
	user            *identity.UserAccount
	result          *scan.AnalyzeResponse
	history         []*scan.ScanRecord
	recommendations []directory.HospitalRecommendation
}

// NewOrchestrator wires the dashboard. notifier may be nil, in which case
// notifications are discarded.
func NewOrchestrator(scans scanWorkflow, dir recommendationClient, profile profileUpdater, events *identity.Broadcaster, notifier Notifier, maxUploadBytes int64, log zerolog.Logger) *Orchestrator {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Orchestrator{
		scans:    scans,
		dir:      dir,
		profile:  profile,
		events:   events,
		notifier: notifier,
		intake:   scan.NewIntake(maxUploadBytes, nil),
		log:      log,
		phase:    PhaseIdle,
		tab:      TabAnalyze,
	}
}

// Start subscribes to session events and begins reacting to them.
func (o *Orchestrator) Start() {
	ch, cancel := o.events.Subscribe()
	o.unsubscribe = cancel
	o.done = make(chan struct{})
	go o.consume(ch)
}

// Stop unsubscribes and waits for the event loop to drain.
func (o *Orchestrator) Stop() {
	if o.unsubscribe == nil {
		return
	}
	o.unsubscribe()
	<-o.done
	o.unsubscribe = nil
}

func (o *Orchestrator) consume(ch <-chan identity.SessionEvent) {
	defer close(o.done)
	for ev := range ch {
		switch ev.Type {
		case identity.EventSignedIn:
			o.mu.Lock()
			o.user = ev.User
			o.phase = PhaseIdle
			o.tab = TabAnalyze
			o.mu.Unlock()
			o.refreshHistory(context.Background())
		case identity.EventSignedOut:
			o.reset()
		case identity.EventLocationUpdated:
			o.mu.Lock()
			o.user = ev.User
			o.mu.Unlock()
		}
	}
}

// reset drops everything tied to the previous session.
func (o *Orchestrator) reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.user = nil
	o.result = nil
	o.history = nil
	o.recommendations = nil
	o.phase = PhaseIdle
	o.tab = TabAnalyze
}

// Upload runs the analyze workflow for one photo: validate, upload+infer,
// then refresh history. Failures notify and return the phase to idle.
func (o *Orchestrator) Upload(ctx context.Context, filename string, content []byte) {
	user := o.currentUser()
	if user == nil {
		o.notifier.Notify(CategoryValidation, "sign in to analyze a photo")
		return
	}

	o.setPhase(PhaseUploading)
	if err := o.intake.Accept(filename, content); err != nil {
		if errors.Is(err, scan.ErrFileTooLarge) {
			o.notifier.Notify(CategoryValidation, "photo is too large")
		}
		// Non-image files are rejected silently, matching the upload
		// widget: no callback, no preview, no toast.
		o.setPhase(PhaseIdle)
		return
	}

	o.setPhase(PhaseAnalyzing)
	resp, err := o.scans.Analyze(ctx, user.ID, filename, content)
	if err != nil {
		o.log.Warn().Err(err).Msg("analysis failed")
		o.notifier.Notify(CategoryRemote, "analysis failed, please try again")
		o.setPhase(PhaseIdle)
		return
	}

	o.mu.Lock()
	o.result = resp
	o.phase = PhaseResultReady
	o.mu.Unlock()

	o.refreshHistory(ctx)
}

// ShowRecommendations queries the directory for care near the user, using
// the saved location when the profile has one and a live device fix
// otherwise. Failures revert to result-ready.
func (o *Orchestrator) ShowRecommendations(ctx context.Context) {
	user := o.currentUser()
	if user == nil {
		o.notifier.Notify(CategoryValidation, "sign in to see recommendations")
		return
	}

	o.setPhase(PhaseLocating)

	var q directory.LocationQuery
	if user.HasSavedLocation() {
		q = directory.SavedLocation(*user.City, *user.State)
	} else {
		q = directory.LiveLocation()
	}

	recs, err := o.dir.VerifiedDoctors(ctx, q)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrPermissionDenied):
			o.notifier.Notify(CategoryPermission, "location permission denied")
		case errors.Is(err, directory.ErrUnsupported):
			o.notifier.Notify(CategoryPermission, "location is not supported on this device")
		default:
			o.log.Warn().Err(err).Msg("recommendation lookup failed")
			o.notifier.Notify(CategoryRemote, "could not load recommendations")
		}
		o.mu.Lock()
		o.recommendations = nil
		o.phase = PhaseResultReady
		o.mu.Unlock()
		return
	}

	o.mu.Lock()
	o.recommendations = recs
	o.phase = PhaseRecommendationsShown
	o.mu.Unlock()
}

// CloseRecommendations dismisses the panel and returns to the result view.
func (o *Orchestrator) CloseRecommendations() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.phase == PhaseRecommendationsShown {
		o.phase = PhaseResultReady
	}
	o.recommendations = nil
}

// SaveLocation stores the city/state pair on the profile, then re-queries
// recommendations through the saved-location path.
func (o *Orchestrator) SaveLocation(ctx context.Context, city, state string) {
	user := o.currentUser()
	if user == nil {
		o.notifier.Notify(CategoryValidation, "sign in to save a location")
		return
	}
	if city == "" || state == "" {
		o.notifier.Notify(CategoryValidation, "both city and state are required")
		return
	}

	updated, err := o.profile.UpdateLocation(ctx, user.ID, city, state)
	if err != nil {
		o.log.Warn().Err(err).Msg("location update failed")
		o.notifier.Notify(CategoryRemote, "could not save your location")
		return
	}

	o.mu.Lock()
	o.user = updated
	o.mu.Unlock()
	o.notifier.Notify(CategoryInfo, "location saved")

	o.queryRecommendations(ctx, directory.SavedLocation(city, state))
}

func (o *Orchestrator) queryRecommendations(ctx context.Context, q directory.LocationQuery) {
	recs, err := o.dir.VerifiedDoctors(ctx, q)
	if err != nil {
		o.log.Warn().Err(err).Msg("recommendation lookup failed")
		o.notifier.Notify(CategoryRemote, "could not load recommendations")
		return
	}
	o.mu.Lock()
	o.recommendations = recs
	o.phase = PhaseRecommendationsShown
	o.mu.Unlock()
}

// DeleteScan removes one history record and refreshes the list.
func (o *Orchestrator) DeleteScan(ctx context.Context, id uuid.UUID) {
	user := o.currentUser()
	if user == nil {
		return
	}
	if err := o.scans.Delete(ctx, id, user.ID); err != nil {
		o.log.Warn().Err(err).Msg("scan delete failed")
		o.notifier.Notify(CategoryRemote, "could not delete the record")
		return
	}
	o.refreshHistory(ctx)
}

func (o *Orchestrator) refreshHistory(ctx context.Context) {
	user := o.currentUser()
	if user == nil {
		return
	}
	records, _, err := o.scans.History(ctx, user.ID, historyPageSize, 0)
	if err != nil {
		o.log.Warn().Err(err).Msg("history refresh failed")
		o.notifier.Notify(CategoryRemote, "could not load your history")
		return
	}
	o.mu.Lock()
	o.history = records
	o.mu.Unlock()
}

// SelectTab switches the active tab.
func (o *Orchestrator) SelectTab(tab Tab) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.tab = tab
}

func (o *Orchestrator) currentUser() *identity.UserAccount {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.user
}

func (o *Orchestrator) setPhase(p Phase) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.phase = p
}

// Phase returns the workflow's current phase.
func (o *Orchestrator) Phase() Phase {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.phase
}

// CurrentTab returns the active tab.
func (o *Orchestrator) CurrentTab() Tab {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.tab
}

// Result returns the most recently processed analysis, if any.
func (o *Orchestrator) Result() *scan.AnalyzeResponse {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.result
}

// History returns the cached history list.
func (o *Orchestrator) History() []*scan.ScanRecord {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.history
}

// Recommendations returns the currently shown recommendation list.
func (o *Orchestrator) Recommendations() []directory.HospitalRecommendation {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.recommendations
}

// User returns the signed-in account, nil when signed out.
func (o *Orchestrator) User() *identity.UserAccount {
	return o.currentUser()
}
