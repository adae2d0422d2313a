package updater

import (
	"context"
	"fmt"
	"log"
	"time"

	"SP500Keeper/internal/collector"
	"SP500Keeper/internal/dataset"
	"SP500Keeper/internal/model"
	"SP500Keeper/internal/notifier"
	"SP500Keeper/internal/recorder"
)

// ErrNoData is returned when the feed has no history; nothing is written.
var ErrNoData = collector.ErrNoData

// Notifier is told about appended rows.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// Result describes what a run did.
type Result struct {
	Observation model.Observation
	Appended    bool
	Rows        int
}

// Message is the line reported to the user for this result.
func (r *Result) Message() string {
	if r.Appended {
		return fmt.Sprintf("Added new row: %s, %s", r.Observation.Month(), r.Observation.ClosingString())
	}
	return fmt.Sprintf("Data for %s already exists.", r.Observation.Month())
}

// Updater appends the latest index closing to the dataset unless already present.
type Updater struct {
	Collector   *collector.Collector
	DatasetPath string
	Recorder    recorder.Recorder
	Notifier    Notifier // optional
	Now         func() time.Time
}

// New creates an Updater with no run history and no notifications.
func New(col *collector.Collector, datasetPath string) *Updater {
	return &Updater{
		Collector:   col,
		DatasetPath: datasetPath,
		Recorder:    recorder.NewNoopRecorder(),
		Now:         time.Now,
	}
}

// Run performs one fetch-and-append. The dataset is read before any write
// and is left untouched when the feed is empty or the date already exists.
func (u *Updater) Run(ctx context.Context) (*Result, error) {
	obs, err := u.Collector.Latest(ctx)
	if err != nil {
		u.record(recorder.RunEvent{Outcome: recorder.OutcomeFailed, Note: err.Error()})
		return nil, err
	}
	log.Printf("[INFO] latest %s close: %s on %s", u.Collector.Symbol, obs.ClosingString(), obs.Month())

	ds, err := dataset.Load(u.DatasetPath)
	if err != nil {
		u.record(observed(obs, recorder.OutcomeFailed, err.Error()))
		return nil, err
	}

	if ds.Contains(obs.Month()) {
		u.record(observed(obs, recorder.OutcomeExists, ""))
		return &Result{Observation: obs, Rows: ds.Len()}, nil
	}

	ds.Append(obs)
	if err := ds.Save(u.DatasetPath); err != nil {
		u.record(observed(obs, recorder.OutcomeFailed, err.Error()))
		return nil, err
	}
	res := &Result{Observation: obs, Appended: true, Rows: ds.Len()}
	u.record(observed(obs, recorder.OutcomeAppended, ""))
	u.notify(ctx, res)
	return res, nil
}

func observed(obs model.Observation, outcome recorder.Outcome, note string) recorder.RunEvent {
	return recorder.RunEvent{
		Month:   obs.Month(),
		Closing: obs.ClosingString(),
		Outcome: outcome,
		Note:    note,
	}
}

func (u *Updater) record(evt recorder.RunEvent) {
	if u.Recorder == nil {
		return
	}
	evt.Symbol = u.Collector.Symbol
	evt.DatasetPath = u.DatasetPath
	if u.Now != nil {
		evt.Time = u.Now()
	}
	if err := u.Recorder.RecordRun(&evt); err != nil {
		log.Printf("[WARN] record run: %v", err)
	}
}

func (u *Updater) notify(ctx context.Context, res *Result) {
	if u.Notifier == nil {
		return
	}
	msg := notifier.FormatAppended(u.Collector.Symbol, res.Observation, res.Rows)
	if err := u.Notifier.Send(ctx, msg); err != nil {
		log.Printf("[WARN] send notification: %v", err)
	}
}
