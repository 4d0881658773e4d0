package dashboard

import (
	"resume-dashboard/internal/analyzer"
)

// Notice is a non-blocking notification rendered as a toast and drained on
// the next page render.
type Notice struct {
	Op      string `json:"op"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

const noticeKindPrecondition = "precondition"

// State is the per-session view state of the dashboard. Every mutation goes
// through one of the transition methods below so the lifecycle of each field
// stays auditable.
//
// UploadSeq and AnalyzeSeq count issued requests per operation. A completion
// is applied only when it carries the latest issued sequence number; stale
// completions are discarded in full, so overlapping requests resolve
// deterministically instead of last-response-wins.
type State struct {
	FileName       string           `json:"file_name,omitempty"`
	ResumeText     string           `json:"resume_text,omitempty"`
	JobDescription string           `json:"job_description,omitempty"`
	Report         *analyzer.Report `json:"report,omitempty"`

	UploadPending  bool   `json:"upload_pending,omitempty"`
	AnalyzePending bool   `json:"analyze_pending,omitempty"`
	UploadSeq      uint64 `json:"upload_seq,omitempty"`
	AnalyzeSeq     uint64 `json:"analyze_seq,omitempty"`

	Notices []Notice `json:"notices,omitempty"`
}

// SetInputs applies textarea edits carried on a form submission. The report
// is left alone: it may go stale relative to edited inputs.
func (s *State) SetInputs(resumeText, jobDescription string) {
	s.ResumeText = resumeText
	s.JobDescription = jobDescription
}

// BeginUpload issues a new upload sequence number and marks the upload
// pending. Returns the issued sequence.
func (s *State) BeginUpload(fileName string) uint64 {
	s.UploadSeq++
	s.UploadPending = true
	s.FileName = fileName
	return s.UploadSeq
}

// FinishUpload completes the upload issued as seq. Stale completions (a
// newer upload has been issued since) are discarded entirely, including the
// pending flag, which now belongs to the newer request. For the latest
// sequence the pending flag always clears; the resume text changes only on
// success, failures leave it untouched and surface a notice.
func (s *State) FinishUpload(seq uint64, text string, err error) {
	if seq != s.UploadSeq {
		return
	}
	s.UploadPending = false
	if err != nil {
		s.pushNotice("upload", err, "Error uploading file. Please try again.")
		return
	}
	s.ResumeText = text
}

// BeginAnalyze issues a new analyze sequence number and marks the analysis
// pending. Returns the issued sequence.
func (s *State) BeginAnalyze() uint64 {
	s.AnalyzeSeq++
	s.AnalyzePending = true
	return s.AnalyzeSeq
}

// FinishAnalyze completes the analysis issued as seq, with the same
// sequence discipline as FinishUpload. On success the report is replaced
// wholesale; on failure any prior report stays renderable.
func (s *State) FinishAnalyze(seq uint64, report analyzer.Report, err error) {
	if seq != s.AnalyzeSeq {
		return
	}
	s.AnalyzePending = false
	if err != nil {
		s.pushNotice("analyze", err, "Analysis failed. Please try again.")
		return
	}
	s.Report = &report
}

// RejectAnalyze records the precondition failure for an analyze attempt with
// a missing input. No sequence is issued and nothing else changes.
func (s *State) RejectAnalyze() {
	s.Notices = append(s.Notices, Notice{
		Op:      "analyze",
		Kind:    noticeKindPrecondition,
		Message: "Please provide both resume text and a job description.",
	})
}

// TakeNotices drains and returns accumulated notices.
func (s *State) TakeNotices() []Notice {
	notices := s.Notices
	s.Notices = nil
	return notices
}

func (s *State) pushNotice(op string, err error, message string) {
	kind := string(analyzer.KindOf(err))
	if kind == "" {
		kind = "internal"
	}
	s.Notices = append(s.Notices, Notice{Op: op, Kind: kind, Message: message})
}
