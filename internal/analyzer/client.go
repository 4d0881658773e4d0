package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Client talks to the external resume analyzer service. The service is a
// black box reached over HTTP; no retries, no auth, no versioning handshake.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	uploadTimeout  time.Duration
	analyzeTimeout time.Duration
	validate       *validator.Validate
}

// NewClient constructs a Client for the analyzer at baseURL.
func NewClient(baseURL string, uploadTimeout, analyzeTimeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("ANALYZER_BASE_URL is required")
	}
	if uploadTimeout <= 0 {
		uploadTimeout = 30 * time.Second
	}
	if analyzeTimeout <= 0 {
		analyzeTimeout = 120 * time.Second
	}
	return &Client{
		baseURL:        baseURL,
		httpClient:     &http.Client{},
		uploadTimeout:  uploadTimeout,
		analyzeTimeout: analyzeTimeout,
		validate:       validator.New(),
	}, nil
}

// UploadResume posts the raw file as multipart form data under field "file"
// and returns the extracted resume text.
func (c *Client) UploadResume(ctx context.Context, fileName string, file io.Reader) (Extraction, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return Extraction{}, &Error{Op: OpUpload, Kind: KindTransport, Err: err}
	}
	if _, err := io.Copy(part, file); err != nil {
		return Extraction{}, &Error{Op: OpUpload, Kind: KindTransport, Err: err}
	}
	if err := writer.Close(); err != nil {
		return Extraction{}, &Error{Op: OpUpload, Kind: KindTransport, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.uploadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload-resume", body)
	if err != nil {
		return Extraction{}, &Error{Op: OpUpload, Kind: KindTransport, Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var wire wireExtraction
	if err := c.do(req, OpUpload, &wire); err != nil {
		return Extraction{}, err
	}
	if err := c.validate.Struct(wire); err != nil {
		return Extraction{}, &Error{Op: OpUpload, Kind: KindDecode, Err: err}
	}
	return wire.toExtraction(), nil
}

type analyzeRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
	UseAPI         bool   `json:"use_api"`
}

// Analyze posts resume text and job description and returns the match
// report. UseAPI is always false: the upstream runs in local inference mode.
func (c *Client) Analyze(ctx context.Context, resumeText, jobDescription string) (Report, error) {
	payload, err := json.Marshal(analyzeRequest{
		ResumeText:     resumeText,
		JobDescription: jobDescription,
		UseAPI:         false,
	})
	if err != nil {
		return Report{}, &Error{Op: OpAnalyze, Kind: KindTransport, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.analyzeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(payload))
	if err != nil {
		return Report{}, &Error{Op: OpAnalyze, Kind: KindTransport, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	var wire wireReport
	if err := c.do(req, OpAnalyze, &wire); err != nil {
		return Report{}, err
	}
	// Fail closed: a 200 with a shape we cannot trust is an analysis failure,
	// not something to hand to the renderer.
	if err := c.validate.Struct(wire); err != nil {
		return Report{}, &Error{Op: OpAnalyze, Kind: KindDecode, Err: err}
	}
	return wire.toReport(), nil
}

// Health checks upstream reachability via GET /health.
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.uploadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return &Error{Op: OpHealth, Kind: KindTransport, Err: err}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Op: OpHealth, Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &Error{Op: OpHealth, Kind: KindStatus, Status: resp.StatusCode}
	}
	return nil
}

// do executes the request and decodes a 200 JSON body into out.
func (c *Client) do(req *http.Request, op Op, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Op: op, Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return &Error{Op: op, Kind: KindStatus, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Op: op, Kind: KindTransport, Err: err}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Op: op, Kind: KindDecode, Err: err}
	}
	return nil
}
