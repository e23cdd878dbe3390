package telemetry

import (
	"context"
	"errors"

	"github.com/go-resty/resty/v2"
)

const (
	report_resty_request  = "resty.request"
	report_resty_response = "resty.response"
)

// InstrumentResty logs every exchange of the client at debug level. Transport failures are
// reported as broken, except requests abandoned by their caller which are only warnings.
func InstrumentResty(client *resty.Client, tel API) {
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		tel.ReportDebug(report_resty_request, req.Method, req.URL)
		return nil
	})
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		tel.ReportDebug(
			report_resty_response,
			res.Request.Method,
			res.Request.URL,
			res.StatusCode(),
			res.Time().String(),
		)
		return nil
	})
	client.OnError(func(req *resty.Request, err error) {
		if errors.Is(err, context.Canceled) {
			tel.ReportWarning(report_resty_response, err, req.Method, req.URL)
			return
		}
		tel.ReportBroken(report_resty_response, err, req.Method, req.URL)
	})
}
