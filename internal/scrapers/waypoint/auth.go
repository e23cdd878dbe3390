package waypoint

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

// the login is a fixed sequence of requests, each state knows the request it has to make
// and how to turn the response into the next state. there are no retries, any failure
// aborts the whole sequence.

type authStep int

const (
	// AUTH_STEP_LOGIN_FORM fetches the login form, capturing cookies, the PPFT token and the post url.
	AUTH_STEP_LOGIN_FORM authStep = iota
	// AUTH_STEP_CREDENTIALS posts the credentials, capturing the redirect location.
	AUTH_STEP_CREDENTIALS
	// AUTH_STEP_REDIRECT follows the redirect, capturing the Auth cookie.
	AUTH_STEP_REDIRECT
	AUTH_STEP_DONE
)

func (s authStep) String() string {
	switch s {
	case AUTH_STEP_LOGIN_FORM:
		return "login-form"
	case AUTH_STEP_CREDENTIALS:
		return "credential-submission"
	case AUTH_STEP_REDIRECT:
		return "redirect-follow"
	case AUTH_STEP_DONE:
		return "done"
	}
	return "unknown"
}

var (
	setCookieNameValueRegex = regexp.MustCompile(`^([^;]+)`)
	ppftInputRegex          = regexp.MustCompile(`<input[^>]*name="PPFT"[^>]*value="([^"]+)"`)
	urlPostRegex            = regexp.MustCompile(`urlPost:'([^']+)'`)
	authCookieRegex         = regexp.MustCompile(`^Auth=([^;]+);`)
)

type authState struct {
	step        authStep
	loginUrl    string
	credentials Credentials

	// captured by AUTH_STEP_LOGIN_FORM
	postUrl string
	ppft    string
	cookies []string

	// captured by AUTH_STEP_CREDENTIALS
	location string

	// captured by AUTH_STEP_REDIRECT
	token SessionToken
}

func newAuthState(loginUrl string, credentials Credentials) authState {
	return authState{
		step:        AUTH_STEP_LOGIN_FORM,
		loginUrl:    loginUrl,
		credentials: credentials,
	}
}

// request renders the request the current step has to make.
func (s authState) request() outbound {
	switch s.step {
	case AUTH_STEP_CREDENTIALS:
		body := "login=" + url.QueryEscape(s.credentials.Login) +
			"&passwd=" + url.QueryEscape(s.credentials.Password) +
			"&PPFT=" + url.QueryEscape(s.ppft)
		return outbound{
			Method: http.MethodPost,
			Url:    s.postUrl,
			Header: map[string]string{
				"Cookie":       strings.Join(s.cookies, ";"),
				"Content-Type": "application/x-www-form-urlencoded",
			},
			Body: body,
		}
	case AUTH_STEP_REDIRECT:
		return outbound{Method: http.MethodGet, Url: s.location}
	}
	return outbound{Method: http.MethodGet, Url: s.loginUrl}
}

// next consumes the response to the current step's request.
func (s authState) next(res response) (authState, error) {
	switch s.step {
	case AUTH_STEP_LOGIN_FORM:
		return s.nextFromLoginForm(res)
	case AUTH_STEP_CREDENTIALS:
		return s.nextFromCredentials(res)
	case AUTH_STEP_REDIRECT:
		return s.nextFromRedirect(res)
	}
	return s, nil
}

func (s authState) fail(res response, reason string) (authState, error) {
	return s, HttpError{
		Step:   s.step.String(),
		Status: res.Status,
		Reason: reason,
		Body:   res.Body,
	}
}

func firstSubmatch(re *regexp.Regexp, text string) string {
	groups := re.FindStringSubmatch(text)
	if len(groups) < 2 {
		return ""
	}
	return groups[1]
}

func absoluteUrl(raw string) (string, bool) {
	parsed, err := url.Parse(raw)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return "", false
	}
	return parsed.String(), true
}

func (s authState) nextFromLoginForm(res response) (authState, error) {
	if res.Status != http.StatusOK {
		return s.fail(res, "expected status 200")
	}

	var cookies []string
	for _, header := range res.Header.Values("Set-Cookie") {
		cookie := firstSubmatch(setCookieNameValueRegex, header)
		if cookie != "" {
			cookies = append(cookies, cookie)
		}
	}

	ppft := firstSubmatch(ppftInputRegex, res.Body)
	if ppft == "" {
		return s.fail(res, "could not find PPFT token")
	}
	postUrl, ok := absoluteUrl(firstSubmatch(urlPostRegex, res.Body))
	if !ok {
		return s.fail(res, "could not find post url")
	}

	s.step = AUTH_STEP_CREDENTIALS
	s.cookies = cookies
	s.ppft = ppft
	s.postUrl = postUrl
	return s, nil
}

func (s authState) nextFromCredentials(res response) (authState, error) {
	if res.Status != http.StatusFound {
		return s.fail(res, "expected status 302, are the credentials correct?")
	}

	location := res.Header.Get("Location")
	if location == "" {
		return s.fail(res, "missing location header")
	}
	base, err := url.Parse(s.postUrl)
	if err != nil {
		return s.fail(res, "invalid post url")
	}
	resolved, err := base.Parse(location)
	if err != nil {
		return s.fail(res, "invalid location header")
	}

	s.step = AUTH_STEP_REDIRECT
	s.location = resolved.String()
	return s, nil
}

func (s authState) nextFromRedirect(res response) (authState, error) {
	if res.Status != http.StatusFound {
		return s.fail(res, "expected status 302")
	}

	for _, header := range res.Header.Values("Set-Cookie") {
		token := firstSubmatch(authCookieRegex, header)
		if token != "" {
			s.step = AUTH_STEP_DONE
			s.token = SessionToken(token)
			return s, nil
		}
	}
	return s.fail(res, "missing Auth cookie")
}
