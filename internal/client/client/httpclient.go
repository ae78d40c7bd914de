package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/neumodiag/internal/client/models"
	"github.com/dmitrijs2005/neumodiag/internal/common"
	"github.com/dmitrijs2005/neumodiag/internal/logging"
	"github.com/google/uuid"
)

const (
	registerPath = "/register"
	authPath     = "/auth"
	uploadPath   = "/upload"

	// The service reads the picture from this multipart field.
	uploadFieldName    = "foto"
	defaultUploadName  = "image.jpg"
	defaultContentType = "image/jpeg"

	// maxErrorBody caps how much of an error response is kept.
	maxErrorBody = 64 << 10
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// HTTPClient implements Client over HTTP+JSON.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger

	// newRequestID is replaced in tests.
	newRequestID func() string
}

// NewHTTPClient builds a client for the service at baseURL
// (e.g. "http://localhost:8080"). A nil httpClient gets a fresh one with
// no timeout; a nil logger discards output.
func NewHTTPClient(baseURL string, httpClient *http.Client, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = logging.Discard()
	}

	return &HTTPClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   httpClient,
		logger:       logger,
		newRequestID: uuid.NewString,
	}, nil
}

// Register posts req to /register. Any 2xx is success; the body is ignored.
func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("%w: encoding register request: %w", ErrRequest, err)
	}

	resp, err := c.do(ctx, "register", registerPath, "application/json", bytes.NewReader(body), "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

// Login posts req to /auth and decodes the session token.
func (c *HTTPClient) Login(ctx context.Context, req models.AuthRequest) (*models.AuthResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding auth request: %w", ErrRequest, err)
	}

	resp, err := c.do(ctx, "login", authPath, "application/json", bytes.NewReader(body), "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: login: reading response: %w", ErrTransport, err)
	}

	out, err := decodeAuthResponse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: login: %w", ErrDecode, err)
	}
	return out, nil
}

// authResponseFields are the keys every /auth success body must carry.
// user_id may be any JSON value, including null; the others must not be
// null.
var authResponseFields = []string{"nombre", "token", "rol", "user_id", "correo"}

func decodeAuthResponse(data []byte) (*models.AuthResponse, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("response is not a JSON object")
	}

	var missing []string
	for _, key := range authResponseFields {
		v, ok := raw[key]
		if !ok || (key != "user_id" && string(bytes.TrimSpace(v)) == "null") {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing field(s): %s", strings.Join(missing, ", "))
	}

	var out models.AuthResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, errors.New("empty token")
	}
	return &out, nil
}

// Upload sends the file at filePath to /upload as multipart/form-data.
func (c *HTTPClient) Upload(ctx context.Context, token string, filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("%w: opening %s: %w", ErrIO, filePath, err)
	}
	defer f.Close()

	name := filepath.Base(filePath)
	if name == "." || name == string(filepath.Separator) {
		name = defaultUploadName
	}

	// The body is streamed: a goroutine writes the multipart form into the
	// pipe while the transport reads from the other end.
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	bodyErr := make(chan error, 1)
	go func() {
		err := writeUploadForm(mw, f, name)
		pw.CloseWithError(err)
		bodyErr <- err
	}()

	resp, err := c.do(ctx, "upload", uploadPath, mw.FormDataContentType(), pr, token)
	// unblocks the writer if the transport stopped reading early
	pr.Close()
	werr := <-bodyErr

	if werr != nil && !errors.Is(werr, io.ErrClosedPipe) {
		if resp != nil {
			resp.Body.Close()
		}
		return fmt.Errorf("%w: reading %s: %w", ErrIO, filePath, werr)
	}
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

// writeUploadForm writes a form with src as the single file part and
// closes mw.
func writeUploadForm(mw *multipart.Writer, src io.Reader, name string) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		uploadFieldName, quoteEscaper.Replace(name)))
	h.Set("Content-Type", uploadContentType(name))

	part, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, src); err != nil {
		return err
	}
	return mw.Close()
}

// do sends one POST request. A 2xx response is returned open; anything else
// is drained, closed and turned into a *RemoteError.
func (c *HTTPClient) do(ctx context.Context, op, path, contentType string, body io.Reader, token string) (*http.Response, error) {
	reqID := c.newRequestID()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRequest, op, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", common.AppName)
	req.Header.Set(common.RequestIDHeaderName, reqID)
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}

	log := c.logger.With("op", op, "request_id", reqID)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return nil, fmt.Errorf("%w: %s: %w", ErrTransport, op, err)
	}

	log.Debug(ctx, "response received", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return resp, nil
	}

	errBody, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	resp.Body.Close()
	if readErr != nil {
		errBody = []byte("(failed to read response body)")
	}

	return nil, &RemoteError{
		Op:         op,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(errBody)),
		Err:        classifyStatus(resp.StatusCode),
	}
}

// uploadContentType guesses an image type from the file extension and falls
// back to image/jpeg.
func uploadContentType(name string) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); strings.HasPrefix(t, "image/") {
		return t
	}
	return defaultContentType
}
