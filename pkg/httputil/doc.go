// Package httputil holds the retry policy shared by the roadmap backend
// client and anything else that talks to a flaky HTTP peer.
//
// Only errors explicitly marked with [Retryable] are retried; everything
// else (validation failures, 4xx responses, backend error payloads) is
// returned on the first attempt. Interactive callers pass [SingleAttempt]
// and get the first error back unchanged. Callers typically classify a
// response with [RetryableStatus] before deciding whether to wrap the error:
//
//	err := httputil.Retry(ctx, httputil.DefaultPolicy, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return httputil.Retryable(err)
//	    }
//	    defer resp.Body.Close()
//	    if httputil.RetryableStatus(resp.StatusCode) {
//	        return httputil.Retryable(fmt.Errorf("status %d", resp.StatusCode))
//	    }
//	    return decode(resp)
//	})
package httputil
