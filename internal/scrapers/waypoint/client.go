// client.go contains the request client for halo waypoint, the login handshake lives in auth.go
// and the caching wrapper in cache.go.

package waypoint

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"halorun-backend/internal/components/assert"
	"halorun-backend/internal/components/telemetry"
	"halorun-backend/lib/restyutil"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"golang.org/x/time/rate"
)

var tracer = otel.Tracer("halorun-backend/internal/scrapers/waypoint")

const (
	report_client_get_auth           = "client.get-auth"
	report_client_get_stats_response = "client.get-stats-response"
)

const (
	DEFAULT_LOGIN_URL  = "https://login.live.com/oauth20_authorize.srf?client_id=000000004C0BD2F1&scope=xbox.basic+xbox.offline_access&response_type=code&redirect_uri=https:%2f%2fwww.halowaypoint.com%2fauth%2fcallback&locale=en-us&display=touch&state=https%253a%252f%252fwww.halowaypoint.com%252fen-us"
	DEFAULT_BASE_URL   = "https://www.halowaypoint.com"
	DEFAULT_USER_AGENT = "halorun/0.1"
)

// API is the surface of the waypoint scraper, implemented by Client and CachedClient.
type API interface {
	GetAuth(ctx context.Context, credentials Credentials) (SessionToken, error)
	GetStatsResponse(ctx context.Context, token SessionToken, req StatsRequest) (StatsResponse, error)
}

type Options struct {
	// LoginUrl is the page serving the login form.
	LoginUrl string
	// BaseUrl is the scheme and host serving service records.
	BaseUrl   string
	UserAgent string
	// RequestsPerSecond of 0 disables rate limiting.
	RequestsPerSecond float64
	Timeout           time.Duration
	// Output optionally receives a dump of every http exchange.
	Output restyutil.InstrumentOutput
}

// Client performs the raw requests against halo waypoint, nothing is cached.
type Client struct {
	http     *resty.Client
	loginUrl string
	baseUrl  string
	tel      telemetry.API
}

// outbound is a request as described by a step, before the user agent is attached.
type outbound struct {
	Method string
	Url    string
	Header map[string]string
	Body   string
}

// response is a received response with its body materialized as text.
type response struct {
	Status int
	Header http.Header
	Body   string
}

func NewClient(opts Options, tel telemetry.API) *Client {
	assert.NotNil(tel)

	tel = telemetry.NewScopedAPI("waypoint_scraper", tel)

	if opts.LoginUrl == "" {
		opts.LoginUrl = DEFAULT_LOGIN_URL
	}
	if opts.BaseUrl == "" {
		opts.BaseUrl = DEFAULT_BASE_URL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DEFAULT_USER_AGENT
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Second * 30
	}

	httpClient := resty.New()
	httpClient.SetTimeout(opts.Timeout)
	httpClient.SetHeader("User-Agent", opts.UserAgent)
	// cookies are carried explicitly by each step
	httpClient.SetCookieJar(nil)
	// the login handshake needs to see the redirects themselves
	httpClient.SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}))

	if opts.RequestsPerSecond > 0 {
		// max burst >= 1 just means that no requests will be dropped
		rateLimiter := rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
		httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return rateLimiter.Wait(req.Context())
		})
	}

	telemetry.InstrumentResty(httpClient, tel)
	restyutil.InstrumentClient(httpClient, tracer, opts.Output)

	return &Client{
		http:     httpClient,
		loginUrl: opts.LoginUrl,
		baseUrl:  opts.BaseUrl,
		tel:      tel,
	}
}

func (c *Client) send(ctx context.Context, step string, req outbound) (response, error) {
	r := c.http.R().SetContext(ctx)
	for key, value := range req.Header {
		r.SetHeader(key, value)
	}
	if req.Body != "" {
		r.SetBody(req.Body)
	}

	res, err := r.Execute(req.Method, req.Url)
	if err != nil {
		return response{}, TransportError{Step: step, Err: err}
	}
	return response{
		Status: res.StatusCode(),
		Header: res.Header(),
		Body:   res.String(),
	}, nil
}

// GetAuth performs the full login handshake, see auth.go.
func (c *Client) GetAuth(ctx context.Context, credentials Credentials) (SessionToken, error) {
	state := newAuthState(c.loginUrl, credentials)
	for state.step != AUTH_STEP_DONE {
		c.tel.ReportDebug(report_client_get_auth, state.step.String())

		res, err := c.send(ctx, state.step.String(), state.request())
		if err != nil {
			c.tel.ReportBroken(report_client_get_auth, err)
			return "", err
		}
		state, err = state.next(res)
		if err != nil {
			c.tel.ReportBroken(report_client_get_auth, err)
			return "", err
		}
	}
	return state.token, nil
}

func (c *Client) statsUrl(req StatsRequest) string {
	return fmt.Sprintf(
		"%s/en-us/games/halo-the-master-chief-collection/xbox-one/service-records/players/%s/missions?game=%s&campaignMode=%s",
		c.baseUrl,
		url.PathEscape(req.Player),
		url.QueryEscape(req.Game.String()),
		url.QueryEscape(req.CampaignMode.String()),
	)
}

// GetStatsResponse fetches and parses the statistics of one player for one game and campaign mode.
func (c *Client) GetStatsResponse(ctx context.Context, token SessionToken, req StatsRequest) (StatsResponse, error) {
	const step = "stats"

	res, err := c.send(ctx, step, outbound{
		Method: http.MethodGet,
		Url:    c.statsUrl(req),
		Header: map[string]string{
			"Cookie":           "Auth=" + string(token),
			"X-Requested-With": "XMLHttpRequest",
		},
	})
	if err != nil {
		c.tel.ReportBroken(report_client_get_stats_response, err, req)
		return StatsResponse{}, err
	}
	if res.Status != http.StatusOK {
		err := HttpError{Step: step, Status: res.Status, Reason: "expected status 200", Body: res.Body}
		c.tel.ReportBroken(report_client_get_stats_response, err, req)
		return StatsResponse{}, err
	}

	parsed, err := ParseStatsResponse(res.Body)
	if err != nil {
		c.tel.ReportBroken(
			report_client_get_stats_response,
			fmt.Errorf("parse: %w", err),
			req,
		)
		return StatsResponse{}, err
	}
	return parsed, nil
}
