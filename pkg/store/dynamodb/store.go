// Package dynamodb implements store.Store on DynamoDB. A transaction buffers
// its writes and flushes them with a single TransactWriteItems call on commit.
//
// Every table the store writes to must be keyed by a partition key only, and
// that key must be the conflict target of upserts and the column of deletes.
package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hashicorp/go-uuid"

	"github.com/aykanferhat/go-kafka-record-sink/pkg/store"
)

const reasonTransactionConflict = "TransactionConflict"

var (
	errNotConnected = errors.New("store is not connected")

	// ErrTooManyItems is returned by Commit when the buffered writes exceed
	// the items allowed in one transaction.
	ErrTooManyItems = errors.New("dynamodb: transaction exceeds the maximum number of items")
)

// API is the subset of the DynamoDB client used by [Store].
type API interface {
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

type Store struct {
	client API
	awsCfg *aws.Config
	opts   *Options
}

// New creates a Store for the given AWS config. Call [Store.Connect] before use.
func New(awsCfg *aws.Config, opts ...Option) *Store {
	options := newOptions()
	for _, o := range opts {
		o(options)
	}
	return &Store{awsCfg: awsCfg, opts: options}
}

func (s *Store) Connect() error {
	if err := s.opts.validate(); err != nil {
		return fmt.Errorf("invalid DynamoDB options: %w", err)
	}

	if s.opts.dynamoDBAPI != nil {
		s.client = s.opts.dynamoDBAPI
		return nil
	}

	if s.awsCfg == nil {
		return errors.New("aws config is required")
	}
	s.client = dynamodb.NewFromConfig(*s.awsCfg)

	return nil
}

func (s *Store) Begin(_ context.Context) (store.Tx, error) {
	if s.client == nil {
		return nil, errNotConnected
	}
	return &tx{store: s, index: make(map[string]int)}, nil
}

// IsTransientConflict reports cancellations caused by a conflicting
// transaction and requests that collide with an in-flight idempotent commit.
func (s *Store) IsTransientConflict(err error) bool {
	if err == nil {
		return false
	}

	var inProgress *dynamodbtypes.TransactionInProgressException
	if errors.As(err, &inProgress) {
		return true
	}

	var canceled *dynamodbtypes.TransactionCanceledException
	if !errors.As(err, &canceled) {
		return false
	}
	for _, reason := range canceled.CancellationReasons {
		if aws.ToString(reason.Code) == reasonTransactionConflict {
			return true
		}
	}
	return false
}

// tx keeps at most one write per item. A later write to the same item
// replaces the earlier one, which leaves the item as sequential execution
// would since both Put and Delete overwrite the whole item.
type tx struct {
	store *Store
	items []dynamodbtypes.TransactWriteItem
	index map[string]int
	done  bool
}

func (t *tx) BulkUpsert(_ context.Context, table string, rows []store.Row, conflictTarget []string) error {
	if t.done {
		return store.ErrTxDone
	}
	if len(conflictTarget) == 0 {
		return store.ErrEmptyConflictTarget
	}

	for _, row := range rows {
		key := make(store.Row, len(conflictTarget))
		for _, column := range conflictTarget {
			v, ok := row[column]
			if !ok {
				return fmt.Errorf("%w: %s", store.ErrMissingConflictColumn, column)
			}
			key[column] = v
		}

		item, err := marshalRow(row)
		if err != nil {
			return fmt.Errorf("failed to marshal row for table %s: %w", table, err)
		}
		itemKey, err := itemIdentity(table, key)
		if err != nil {
			return err
		}

		t.add(itemKey, dynamodbtypes.TransactWriteItem{
			Put: &dynamodbtypes.Put{TableName: aws.String(table), Item: item},
		})
	}

	return nil
}

func (t *tx) BulkInsert(_ context.Context, table string, rows []store.Row) error {
	if t.done {
		return store.ErrTxDone
	}

	for _, row := range rows {
		item, err := marshalRow(row)
		if err != nil {
			return fmt.Errorf("failed to marshal row for table %s: %w", table, err)
		}
		t.add("", dynamodbtypes.TransactWriteItem{
			Put: &dynamodbtypes.Put{TableName: aws.String(table), Item: item},
		})
	}

	return nil
}

func (t *tx) BulkDelete(_ context.Context, table, column string, values []any) error {
	if t.done {
		return store.ErrTxDone
	}

	for _, v := range values {
		keyRow := store.Row{column: v}
		key, err := marshalRow(keyRow)
		if err != nil {
			return fmt.Errorf("failed to marshal key for table %s: %w", table, err)
		}
		itemKey, err := itemIdentity(table, keyRow)
		if err != nil {
			return err
		}

		t.add(itemKey, dynamodbtypes.TransactWriteItem{
			Delete: &dynamodbtypes.Delete{TableName: aws.String(table), Key: key},
		})
	}

	return nil
}

func (t *tx) add(itemKey string, item dynamodbtypes.TransactWriteItem) {
	if itemKey != "" {
		if i, ok := t.index[itemKey]; ok {
			t.items[i] = item
			return
		}
		t.index[itemKey] = len(t.items)
	}
	t.items = append(t.items, item)
}

func (t *tx) Commit(ctx context.Context) error {
	if t.done {
		return store.ErrTxDone
	}
	t.done = true

	if len(t.items) == 0 {
		return nil
	}
	if len(t.items) > t.store.opts.maxItems {
		return fmt.Errorf("%w: %d > %d", ErrTooManyItems, len(t.items), t.store.opts.maxItems)
	}

	input := &dynamodb.TransactWriteItemsInput{TransactItems: t.items}
	if t.store.opts.idempotencyTokens {
		token, err := uuid.GenerateUUID()
		if err != nil {
			return fmt.Errorf("failed to generate client request token: %w", err)
		}
		input.ClientRequestToken = aws.String(token)
	}

	if _, err := t.store.client.TransactWriteItems(ctx, input); err != nil {
		return fmt.Errorf("failed to write %d items to DynamoDB: %w", len(t.items), err)
	}

	return nil
}

func (t *tx) Rollback(_ context.Context) error {
	t.done = true
	t.items = nil
	t.index = nil
	return nil
}

func marshalRow(row store.Row) (map[string]dynamodbtypes.AttributeValue, error) {
	normalized := make(map[string]any, len(row))
	for column, v := range row {
		normalized[column] = store.NormalizeValue(v)
	}
	return attributevalue.MarshalMap(normalized)
}

// itemIdentity renders the key attributes of an item in column order.
func itemIdentity(table string, key store.Row) (string, error) {
	var sb strings.Builder
	sb.WriteString(table)
	for _, column := range key.Columns() {
		av, err := attributevalue.Marshal(store.NormalizeValue(key[column]))
		if err != nil {
			return "", fmt.Errorf("failed to marshal key column %s: %w", column, err)
		}
		sb.WriteString("\x00")
		sb.WriteString(column)
		sb.WriteString("=")
		sb.WriteString(renderAttribute(av))
	}
	return sb.String(), nil
}

func renderAttribute(av dynamodbtypes.AttributeValue) string {
	switch v := av.(type) {
	case *dynamodbtypes.AttributeValueMemberS:
		return "S:" + v.Value
	case *dynamodbtypes.AttributeValueMemberN:
		return "N:" + v.Value
	case *dynamodbtypes.AttributeValueMemberB:
		return "B:" + string(v.Value)
	case *dynamodbtypes.AttributeValueMemberBOOL:
		return fmt.Sprintf("BOOL:%t", v.Value)
	case *dynamodbtypes.AttributeValueMemberNULL:
		return "NULL"
	default:
		return fmt.Sprintf("%T:%v", av, av)
	}
}
