package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	stdhttp "net/http"
	"net/url"
	"os"

	"github.com/paw-tools/paw/internal/auth"
	"github.com/paw-tools/paw/internal/constants"
	"github.com/paw-tools/paw/internal/http"
	"github.com/paw-tools/paw/pkg/paw"
)

// cnameWarning is shown when a reload fails because the platform cannot find
// a CNAME for the domain. A records and CDN setups hit this legitimately, so
// it is a warning rather than an error.
const cnameWarning = "Could not find a CNAME for your website. If you're using an A record, " +
	"CloudFlare, or some other way of pointing your domain at PythonAnywhere " +
	"then that should not be a problem. If you're not, you should double-check " +
	"your DNS setup."

// WebappsClient implements paw.WebappsClient.
type WebappsClient struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	username     string
	logger       paw.Logger
}

// NewWebappsClient creates a new webapps client.
func NewWebappsClient(httpClient *http.Client, tokenManager auth.TokenManager, username string, logger paw.Logger) *WebappsClient {
	return &WebappsClient{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		username:     username,
		logger:       logger,
	}
}

// collectionPath is the webapps collection resource.
func (c *WebappsClient) collectionPath() string {
	return userPath(c.username) + constants.FlavorWebapps + "/"
}

// webappPath is the single-webapp resource for a domain.
func (c *WebappsClient) webappPath(ref paw.WebappRef) string {
	return c.collectionPath() + ref.Domain + "/"
}

// filesPath is the files resource root.
func (c *WebappsClient) filesPath() string {
	return userPath(c.username) + constants.FlavorFiles + "/"
}

// List implements paw.WebappsClient.List.
func (c *WebappsClient) List(ctx context.Context) ([]paw.Webapp, error) {
	resp, err := c.httpClient.Get(ctx, c.collectionPath(), nil)
	if err != nil {
		return nil, fmt.Errorf("listing webapps: %w", err)
	}

	var webapps []paw.Webapp

	err = json.Unmarshal(resp.Body, &webapps)
	if err != nil {
		return nil, fmt.Errorf("parsing webapps list response: %w", err)
	}

	return webapps, nil
}

// Get implements paw.WebappsClient.Get.
func (c *WebappsClient) Get(ctx context.Context, ref paw.WebappRef) (*paw.Webapp, error) {
	resp, err := c.httpClient.Get(ctx, c.webappPath(ref), nil)
	if err != nil {
		return nil, fmt.Errorf("getting webapp for %s: %w", ref.Domain, err)
	}

	var webapp paw.Webapp

	err = json.Unmarshal(resp.Body, &webapp)
	if err != nil {
		return nil, fmt.Errorf("parsing webapp response: %w", err)
	}

	return &webapp, nil
}

// SanityChecks implements paw.WebappsClient.SanityChecks. The token check is
// local; the existence probe issues one GET and treats only HTTP 200 as a
// conflict.
func (c *WebappsClient) SanityChecks(ctx context.Context, ref paw.WebappRef, nuke bool) error {
	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return fmt.Errorf("running sanity checks: %w", err)
	}

	if token == "" {
		return fmt.Errorf("running sanity checks: %w", paw.ErrAPITokenMissing)
	}

	if nuke {
		return nil
	}

	resp, err := c.httpClient.Get(ctx, c.webappPath(ref), nil)
	if err != nil {
		apiErr := &paw.APIError{}
		if errors.As(err, &apiErr) {
			return nil
		}

		return fmt.Errorf("probing for existing webapp: %w", err)
	}

	if resp.StatusCode == stdhttp.StatusOK {
		return fmt.Errorf("%w: %s (create with nuke to replace it)", paw.ErrWebappExists, ref.Domain)
	}

	return nil
}

// createStatus is the explicit status envelope the create endpoint can embed
// in an otherwise successful response.
type createStatus struct {
	Status       string `json:"status"`
	ErrorType    string `json:"error_type"`
	ErrorMessage string `json:"error_message"`
}

// Create implements paw.WebappsClient.Create. With Nuke set, the preceding
// delete is best-effort: only the create and the follow-up patch are checked.
func (c *WebappsClient) Create(ctx context.Context, req *paw.WebappCreateRequest) error {
	if req == nil || req.Domain == "" {
		return paw.ErrDomainRequired
	}

	version, err := paw.ResolvePythonVersion(req.PythonVersion)
	if err != nil {
		return fmt.Errorf("creating webapp: %w", err)
	}

	ref := paw.Ref(req.Domain)

	if req.Nuke {
		_, _ = c.httpClient.Delete(ctx, c.webappPath(ref))
	}

	form := url.Values{
		"domain_name":    {req.Domain},
		"python_version": {version},
	}

	resp, err := c.httpClient.PostForm(ctx, c.collectionPath(), form)
	if err != nil {
		return fmt.Errorf("creating webapp: %w", err)
	}

	var status createStatus
	if json.Unmarshal(resp.Body, &status) == nil && status.Status == "ERROR" {
		return fmt.Errorf("%w: %s %s", paw.ErrCreateFailed, status.ErrorType, status.ErrorMessage)
	}

	patchForm := url.Values{
		"virtualenv_path":  {req.VirtualenvPath},
		"source_directory": {req.ProjectPath},
	}

	_, err = c.httpClient.PatchForm(ctx, c.webappPath(ref), patchForm)
	if err != nil {
		return fmt.Errorf("setting virtualenv path and source directory: %w", err)
	}

	return nil
}

// Patch implements paw.WebappsClient.Patch.
func (c *WebappsClient) Patch(ctx context.Context, ref paw.WebappRef, fields map[string]interface{}) (*paw.Webapp, error) {
	form := url.Values{}
	for key, value := range fields {
		form.Set(key, fmt.Sprint(value))
	}

	resp, err := c.httpClient.PatchForm(ctx, c.webappPath(ref), form)
	if err != nil {
		return nil, fmt.Errorf("patching webapp for %s: %w", ref.Domain, err)
	}

	var webapp paw.Webapp

	err = json.Unmarshal(resp.Body, &webapp)
	if err != nil {
		return nil, fmt.Errorf("parsing webapp response: %w", err)
	}

	return &webapp, nil
}

// Delete implements paw.WebappsClient.Delete. The API signals success with
// 204 only; any other status, 2xx included, is a failure.
func (c *WebappsClient) Delete(ctx context.Context, ref paw.WebappRef) error {
	path := c.webappPath(ref)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting webapp for %s: %w", ref.Domain, err)
	}

	if resp.StatusCode != stdhttp.StatusNoContent {
		return fmt.Errorf("deleting webapp for %s: %w", ref.Domain, &paw.APIError{
			URL:        c.httpClient.URL(path),
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(resp.Body),
		})
	}

	return nil
}

// Reload implements paw.WebappsClient.Reload.
func (c *WebappsClient) Reload(ctx context.Context, ref paw.WebappRef) error {
	_, err := c.httpClient.Post(ctx, c.webappPath(ref)+"reload/", nil)
	if err != nil {
		apiErr := &paw.APIError{}
		if errors.As(err, &apiErr) && apiErr.StatusCode == stdhttp.StatusConflict && isCNAMEError(apiErr.Body) {
			c.warn(cnameWarning, map[string]interface{}{"domain": ref.Domain})

			return nil
		}

		return fmt.Errorf("reloading webapp for %s: %w", ref.Domain, err)
	}

	return nil
}

func isCNAMEError(body string) bool {
	var payload struct {
		Error string `json:"error"`
	}

	return json.Unmarshal([]byte(body), &payload) == nil && payload.Error == "cname_error"
}

// CreateStaticMapping implements paw.WebappsClient.CreateStaticMapping. The
// response status is intentionally not inspected: this call is fire-and-forget,
// and callers verify via reload/get if they care. Authentication failures
// still propagate.
func (c *WebappsClient) CreateStaticMapping(ctx context.Context, ref paw.WebappRef, urlPath, directoryPath string) error {
	mapping := paw.StaticMapping{URL: urlPath, Path: directoryPath}

	_, err := c.httpClient.Post(ctx, c.webappPath(ref)+"static_files/", mapping)
	if err != nil {
		if paw.IsUnauthorized(err) {
			return fmt.Errorf("creating static file mapping: %w", err)
		}

		apiErr := &paw.APIError{}
		if errors.As(err, &apiErr) {
			return nil
		}

		return fmt.Errorf("creating static file mapping: %w", err)
	}

	return nil
}

// AddDefaultStaticMappings implements paw.WebappsClient.AddDefaultStaticMappings.
func (c *WebappsClient) AddDefaultStaticMappings(ctx context.Context, ref paw.WebappRef, projectPath string) error {
	err := c.CreateStaticMapping(ctx, ref, "/static/", projectPath+"/static")
	if err != nil {
		return err
	}

	return c.CreateStaticMapping(ctx, ref, "/media/", projectPath+"/media")
}

// SetSSL implements paw.WebappsClient.SetSSL.
func (c *WebappsClient) SetSSL(ctx context.Context, ref paw.WebappRef, certificate, privateKey string) error {
	body := map[string]string{
		"cert":        certificate,
		"private_key": privateKey,
	}

	_, err := c.httpClient.Post(ctx, c.webappPath(ref)+"ssl/", body)
	if err != nil {
		return fmt.Errorf("setting SSL details for %s "+
			"(a fresh API token requires a new console or re-exported API_TOKEN, "+
			"and the webapp must already exist): %w", ref.Domain, err)
	}

	return nil
}

// GetSSLInfo implements paw.WebappsClient.GetSSLInfo.
func (c *WebappsClient) GetSSLInfo(ctx context.Context, ref paw.WebappRef) (*paw.SSLInfo, error) {
	resp, err := c.httpClient.Get(ctx, c.webappPath(ref)+"ssl/", nil)
	if err != nil {
		return nil, fmt.Errorf("getting SSL details for %s: %w", ref.Domain, err)
	}

	var info paw.SSLInfo

	err = json.Unmarshal(resp.Body, &info)
	if err != nil {
		return nil, fmt.Errorf("parsing SSL info response: %w", err)
	}

	return &info, nil
}

// GetLogInfo implements paw.WebappsClient.GetLogInfo.
func (c *WebappsClient) GetLogInfo(ctx context.Context, ref paw.WebappRef) (paw.LogSet, error) {
	query := url.Values{"path": {constants.LogDirectory}}

	resp, err := c.httpClient.Get(ctx, c.filesPath()+"tree/", query)
	if err != nil {
		return nil, fmt.Errorf("getting log files info for %s: %w", ref.Domain, err)
	}

	// The tree listing can mix strings with other node types; only string
	// entries are considered.
	var rawEntries []interface{}

	err = json.Unmarshal(resp.Body, &rawEntries)
	if err != nil {
		return nil, fmt.Errorf("parsing log directory listing: %w", err)
	}

	entries := make([]string, 0, len(rawEntries))

	for _, raw := range rawEntries {
		if entry, ok := raw.(string); ok {
			entries = append(entries, entry)
		}
	}

	return paw.ParseLogListing(ref.Domain, entries), nil
}

// DeleteLog implements paw.WebappsClient.DeleteLog.
func (c *WebappsClient) DeleteLog(ctx context.Context, ref paw.WebappRef, logType paw.LogType, index int) error {
	if !logType.Valid() {
		return fmt.Errorf("%w: %s", paw.ErrInvalidLogType, logType)
	}

	path := c.filesPath() + "path" + paw.LogFilePath(ref.Domain, logType, index) + "/"

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting %s log (index %d) for %s: %w", logType, index, ref.Domain, err)
	}

	return nil
}

// warn routes a user-visible warning through the configured logger, falling
// back to stderr when none is set.
func (c *WebappsClient) warn(msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.Warn(msg, fields)

		return
	}

	fmt.Fprintf(os.Stderr, "Warning: %s\n", msg)
}
