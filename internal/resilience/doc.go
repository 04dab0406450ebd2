// Package resilience provides reliability and fault tolerance patterns for the application.
// It includes circuit breakers and retry logic for the external calls the worker makes:
// headline endpoint fetches and notification webhooks.
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.HeadlineFetchConfig())
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return callEndpoint()
//	})
//
//	retryConfig := retry.DefaultConfig()
//	err := retry.WithBackoff(ctx, retryConfig, func() error {
//	    return performOperation()
//	})
package resilience
