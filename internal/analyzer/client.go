// Package analyzer issues analysis requests against the remote ResumeAI
// service. It performs exactly one outbound request per submission: no
// retries, a fixed client-side timeout, and a closed failure taxonomy.
package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/resumeai/resumeai-cli/internal/logger"
	"github.com/resumeai/resumeai-cli/internal/report"
)

const (
	defaultTimeout   = 60 * time.Second
	userAgent        = "resumeai-cli (github.com/resumeai/resumeai-cli)"
	resumeField      = "resume"
	jobField         = "job_description"
	maxBodyPreview   = 200
	maxErrorBodySize = 4 << 10
)

// Route per analysis kind.
var routes = map[report.Kind]string{
	report.KindSemantic:    "/semantic/full-gap-analysis",
	report.KindQuality:     "/quality/score",
	report.KindImprovement: "/improvement/suggestions",
	report.KindMLScore:     "/ml-score/predict",
}

// Artifact is the resume file to analyze.
type Artifact struct {
	Name string
	Data []byte
}

type Client struct {
	// ctx used only for http requests right now
	ctx        context.Context
	logger     *zap.Logger
	HTTPClient *http.Client
	APIURL     string
	UserAgent  string
	Token      string
}

func New(ctx context.Context, log *zap.Logger, apiURL string) *Client {
	return &Client{
		ctx:    ctx,
		logger: log,
		APIURL: strings.TrimRight(apiURL, "/"),
		HTTPClient: &http.Client{
			Timeout: defaultTimeout,
		},
		UserAgent: userAgent,
	}
}

// Submit posts the resume and job description to the kind-specific route and
// returns the raw JSON object the service responded with. The job description
// may be empty; validation, if any, happens server-side. All failures are
// reported as *TransportError except an empty resume artifact and an unknown
// kind, which are caller mistakes rejected before any request.
func (c *Client) Submit(kind report.Kind, resume Artifact, jobDescription string) (map[string]any, error) {
	if len(resume.Data) == 0 {
		return nil, fmt.Errorf("resume artifact %q is empty", resume.Name)
	}

	route, ok := routes[kind]
	if !ok {
		return nil, fmt.Errorf("no analysis route for kind %q", kind)
	}

	body, contentType, err := encodeForm(resume, jobDescription)
	if err != nil {
		return nil, fmt.Errorf("encoding multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(c.ctx, http.MethodPost, c.APIURL+route, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", c.UserAgent)
	if c.Token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.Token))
	}

	c.logger.Debug("make request",
		zap.String("url", req.URL.String()),
		zap.String("kind", string(kind)),
		zap.String("resume", resume.Name),
	)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, classifyRequestError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		preview, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, &TransportError{
			Kind:   FailureHTTP,
			Status: resp.StatusCode,
			Body:   string(preview),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyRequestError(err)
	}

	c.logger.Debug("got response from analysis service",
		zap.Int("status", resp.StatusCode),
		zap.String("body_preview", logger.TruncateForLog(string(data), maxBodyPreview)),
	)

	// A response that is not a JSON object degrades to an empty payload; the
	// normalizer turns that into a fully defaulted report.
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		c.logger.Debug("response is not a JSON object, treating as empty payload")
		return map[string]any{}, nil
	}

	return raw, nil
}

func encodeForm(resume Artifact, jobDescription string) (*bytes.Buffer, string, error) {
	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	file, err := w.CreateFormFile(resumeField, resume.Name)
	if err != nil {
		return nil, "", err
	}
	if _, err = io.Copy(file, bytes.NewReader(resume.Data)); err != nil {
		return nil, "", err
	}

	field, err := w.CreateFormField(jobField)
	if err != nil {
		return nil, "", err
	}
	if _, err = io.Copy(field, strings.NewReader(jobDescription)); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &b, w.FormDataContentType(), nil
}

func classifyRequestError(err error) *TransportError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TransportError{Kind: FailureTimeout}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &TransportError{Kind: FailureTimeout}
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TransportError{Kind: FailureTimeout}
	}

	return &TransportError{Kind: FailureUnreachable}
}
