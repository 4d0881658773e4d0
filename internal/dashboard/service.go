package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"resume-dashboard/internal/analyzer"
	"resume-dashboard/internal/shared/telemetry"
	"resume-dashboard/internal/shared/util"
)

// Analyzer is the slice of the upstream client the dashboard needs.
type Analyzer interface {
	UploadResume(ctx context.Context, fileName string, file io.Reader) (analyzer.Extraction, error)
	Analyze(ctx context.Context, resumeText, jobDescription string) (analyzer.Report, error)
}

// Service orchestrates dashboard state transitions around upstream calls.
//
// Each operation persists the Begin transition before calling upstream and
// re-loads the session before applying the Finish transition, so overlapping
// requests on the same session observe each other's sequence numbers and
// stale completions get discarded by the reducer.
type Service struct {
	Analyzer Analyzer
	Store    Store
}

// NewService constructs a Service.
func NewService(client Analyzer, store Store) *Service {
	return &Service{Analyzer: client, Store: store}
}

// View loads the session state and drains its notices for rendering.
func (s *Service) View(ctx context.Context, sessionID string) (State, []Notice, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return State{}, nil, err
	}
	notices := state.TakeNotices()
	if len(notices) > 0 {
		if err := s.Store.Put(ctx, sessionID, state); err != nil {
			return State{}, nil, err
		}
	}
	return state, notices, nil
}

// Upload forwards the selected file to the upstream upload endpoint and
// stores the extracted text as the session's resume text. An empty file name
// means no selection: inputs are carried, nothing else happens. The returned
// error covers session storage only; upstream failures become notices.
func (s *Service) Upload(ctx context.Context, sessionID, fileName string, file io.Reader, resumeText, jobDescription string) error {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	state.SetInputs(resumeText, jobDescription)

	if strings.TrimSpace(fileName) == "" {
		return s.Store.Put(ctx, sessionID, state)
	}

	safeName, err := util.SanitizeFileName(fileName)
	if err != nil {
		state.Notices = append(state.Notices, Notice{
			Op:      "upload",
			Kind:    noticeKindPrecondition,
			Message: "Invalid file name.",
		})
		return s.Store.Put(ctx, sessionID, state)
	}

	seq := state.BeginUpload(safeName)
	if err := s.Store.Put(ctx, sessionID, state); err != nil {
		return err
	}

	extraction, upErr := s.Analyzer.UploadResume(ctx, safeName, file)
	if upErr != nil {
		telemetry.Error("dashboard.upload.failed", map[string]any{
			"session_id": sessionID,
			"file_name":  safeName,
			"kind":       string(analyzer.KindOf(upErr)),
			"err":        upErr.Error(),
		})
	} else {
		telemetry.Info("dashboard.upload.ok", map[string]any{
			"session_id": sessionID,
			"file_name":  safeName,
			"word_count": extraction.WordCount,
		})
	}

	state, err = s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	state.FinishUpload(seq, extraction.Text, upErr)
	return s.Store.Put(ctx, sessionID, state)
}

// RejectUpload records an upload that was turned away before any field of
// the submission could be trusted, such as a body over the size cap. Stored
// inputs are left exactly as they were.
func (s *Service) RejectUpload(ctx context.Context, sessionID, message string) error {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	state.Notices = append(state.Notices, Notice{
		Op:      "upload",
		Kind:    noticeKindPrecondition,
		Message: message,
	})
	return s.Store.Put(ctx, sessionID, state)
}

// Analyze submits the current inputs to the upstream analyze endpoint and
// stores the returned report. Empty inputs short-circuit with a precondition
// notice and no upstream call.
func (s *Service) Analyze(ctx context.Context, sessionID, resumeText, jobDescription string) error {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	state.SetInputs(resumeText, jobDescription)

	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobDescription) == "" {
		state.RejectAnalyze()
		return s.Store.Put(ctx, sessionID, state)
	}

	seq := state.BeginAnalyze()
	if err := s.Store.Put(ctx, sessionID, state); err != nil {
		return err
	}

	report, anErr := s.Analyzer.Analyze(ctx, resumeText, jobDescription)
	if anErr != nil {
		telemetry.Error("dashboard.analyze.failed", map[string]any{
			"session_id": sessionID,
			"kind":       string(analyzer.KindOf(anErr)),
			"err":        anErr.Error(),
		})
	} else {
		telemetry.Info("dashboard.analyze.ok", map[string]any{
			"session_id": sessionID,
			"fit_score":  report.FitScore,
			"matched":    len(report.MatchedSkills),
			"missing":    len(report.MissingSkills),
		})
	}

	state, err = s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	state.FinishAnalyze(seq, report, anErr)
	return s.Store.Put(ctx, sessionID, state)
}

func (s *Service) load(ctx context.Context, sessionID string) (State, error) {
	state, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return State{}, nil
		}
		return State{}, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	return state, nil
}
