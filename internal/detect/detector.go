// Package detect implements the action-detection engine: sentence
// segmentation, two-tier pattern classification with task-context
// validation, title extraction, and due date inference over a meeting
// transcript. The engine is stateless pure computation; the only side
// effect, persisting results, is delegated to the storage collaborator.
package detect

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Jpcostan/pulse/internal/common"
	"github.com/Jpcostan/pulse/internal/dates"
	"github.com/Jpcostan/pulse/internal/model"
	"github.com/Jpcostan/pulse/internal/service"
)

// IncludeThreshold is the minimum confidence at which a detected action is
// included by default. Items below it are persisted but excluded until a
// reviewer opts them in.
const IncludeThreshold = 0.75

// Detector runs the full detection pipeline over a transcript and hands the
// results to the storage collaborator.
type Detector struct {
	classifier *Classifier
	dates      *dates.Extractor
	store      service.Storage
	progress   service.ProgressFunc
	err        error
}

// Option configures a Detector.
type Option func(*Detector)

// WithProgress installs a callback receiving coarse progress fractions.
func WithProgress(fn service.ProgressFunc) Option {
	return func(d *Detector) { d.progress = fn }
}

// WithClock fixes the reference time used for relative date resolution.
func WithClock(now func() time.Time) Option {
	return func(d *Detector) { d.dates = dates.NewExtractor(now) }
}

// WithRules replaces the default rule table. A table that fails to compile
// surfaces as an error from NewDetector.
func WithRules(rules []Rule) Option {
	return func(d *Detector) {
		c, err := NewClassifier(rules)
		if err != nil {
			d.err = err
			return
		}
		d.classifier = c
	}
}

// NewDetector creates a detector using the default rule table.
func NewDetector(store service.Storage, opts ...Option) (*Detector, error) {
	classifier, err := NewClassifier(DefaultRules())
	if err != nil {
		return nil, err
	}

	d := &Detector{
		classifier: classifier,
		dates:      dates.NewExtractor(nil),
		store:      store,
		progress:   func(float64, string) {},
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.err != nil {
		return nil, d.err
	}
	return d, nil
}

// DetectActions segments the transcript, classifies each sentence, infers
// due dates, and persists every detected action for the given meeting. It
// returns run statistics; Detected is the number of items created.
//
// Degenerate input is not an error: an empty transcript or a transcript
// with no commitments yields zero actions. Storage failures propagate
// unchanged.
func (d *Detector) DetectActions(ctx context.Context, meetingID, transcript string) (service.DetectionStats, error) {
	var stats service.DetectionStats

	sentences := SplitSentences(transcript)
	stats.Sentences = len(sentences)
	d.progress(0.2, "segmented")

	var detected []*model.DetectedAction
	for _, sentence := range sentences {
		if action := d.classifier.Classify(sentence); action != nil {
			detected = append(detected, action)
		}
	}
	d.progress(0.5, "classified")

	for _, action := range detected {
		action.DueDate = d.dates.Extract(action.SourceSentence)
		if action.DueDate != nil {
			stats.WithDue++
		}
	}
	d.progress(0.7, "dates resolved")

	d.progress(0.9, "saving")
	for _, action := range detected {
		item := &model.ActionItem{
			ID:             uuid.NewString(),
			MeetingID:      meetingID,
			Title:          action.Title,
			SourceSentence: action.SourceSentence,
			Confidence:     action.Confidence,
			DueDate:        action.DueDate,
			Included:       action.Confidence >= IncludeThreshold,
		}
		if err := d.store.CreateActionItem(ctx, item); err != nil {
			return stats, err
		}
		stats.Detected++
		if item.Included {
			stats.Included++
		}
	}

	d.progress(1.0, "done")
	common.LogDebug("Detection complete", common.Fields{
		"meeting":   meetingID,
		"sentences": stats.Sentences,
		"detected":  stats.Detected,
	})
	return stats, nil
}
