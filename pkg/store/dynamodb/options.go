package dynamodb

import (
	"errors"
	"fmt"
)

// maxTransactItems is the TransactWriteItems limit on items per request.
const maxTransactItems = 100

// Option is a functional option for configuring a [Store].
type Option func(*Options)

type Options struct {
	dynamoDBAPI       API
	maxItems          int
	idempotencyTokens bool
}

func newOptions() *Options {
	return &Options{
		maxItems:          maxTransactItems,
		idempotencyTokens: true,
	}
}

func (o *Options) validate() error {
	if o.maxItems <= 0 {
		return errors.New("max items per transaction must be greater than zero")
	}
	if o.maxItems > maxTransactItems {
		return fmt.Errorf("max items per transaction cannot exceed %d", maxTransactItems)
	}
	return nil
}

// WithAPI sets a custom [API] implementation. This is useful when a custom
// DynamoDB configuration is required, or for injecting mocks in tests.
func WithAPI(api API) Option {
	return func(o *Options) {
		o.dynamoDBAPI = api
	}
}

// WithMaxItemsPerTransaction lowers the number of items one commit may write.
func WithMaxItemsPerTransaction(n int) Option {
	return func(o *Options) {
		o.maxItems = n
	}
}

// WithoutIdempotencyTokens stops sending a ClientRequestToken on commit.
func WithoutIdempotencyTokens() Option {
	return func(o *Options) {
		o.idempotencyTokens = false
	}
}
