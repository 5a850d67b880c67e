package internal

import (
	"context"
	"strings"

	"github.com/aykanferhat/go-kafka-record-sink/pkg/store"
)

type bulkWriter struct {
	extractor  AttributeExtractor
	table      string
	primaryKey string
}

func newBulkWriter(table, primaryKey string, extractor AttributeExtractor) *bulkWriter {
	return &bulkWriter{table: table, primaryKey: primaryKey, extractor: extractor}
}

// updateDatabase writes one group of messages whose identities are pairwise
// distinct: live messages are upserted, tombstones deleted.
func (w *bulkWriter) updateDatabase(ctx context.Context, tx store.Tx, messages []*ResolvedMessage) error {
	var removed, upserted []*ResolvedMessage
	for _, message := range messages {
		if message.IsTombstone() {
			removed = append(removed, message)
		} else {
			upserted = append(upserted, message)
		}
	}

	if len(upserted) > 0 {
		if err := w.upsertRecords(ctx, tx, upserted); err != nil {
			return err
		}
	}
	if len(removed) > 0 {
		if err := w.removeRecords(ctx, tx, removed); err != nil {
			return err
		}
	}
	return nil
}

// upsertRecords writes live rows grouped by the columns of their logical key.
// Each keyed group is upserted on its own columns; keyless rows are inserted.
func (w *bulkWriter) upsertRecords(ctx context.Context, tx store.Tx, messages []*ResolvedMessage) error {
	groups, err := w.groupRows(messages)
	if err != nil {
		return err
	}
	for _, group := range groups {
		// Without key columns there is nothing to resolve conflicts on; a retried
		// batch may insert these rows twice.
		if len(group.keyColumns) == 0 {
			err = tx.BulkInsert(ctx, w.table, group.rows)
		} else {
			err = tx.BulkUpsert(ctx, w.table, group.rows, group.keyColumns)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type rowGroup struct {
	keyColumns []string
	rows       []store.Row
}

// groupRows builds the rows of a group, split by key column signature in
// first-seen order. Messages rejected by the extractor are dropped.
func (w *bulkWriter) groupRows(messages []*ResolvedMessage) ([]*rowGroup, error) {
	if len(messages) == 0 {
		return nil, newConfigurationErr("cannot determine key from empty batch")
	}
	var groups []*rowGroup
	bySignature := make(map[string]*rowGroup)
	for _, message := range messages {
		attributes, ok := w.extractor.RecordAttributes(message.Payload, message.Key)
		if !ok || attributes == nil {
			continue
		}
		row := make(store.Row, len(attributes)+len(message.LogicalKey))
		for column, value := range attributes {
			row[column] = value
		}
		for column, value := range message.LogicalKey {
			row[column] = value
		}

		columns := message.LogicalKey.Columns()
		signature := strings.Join(columns, "\x00")
		group, ok := bySignature[signature]
		if !ok {
			group = &rowGroup{keyColumns: columns}
			bySignature[signature] = group
			groups = append(groups, group)
		}
		group.rows = append(group.rows, row)
	}
	return groups, nil
}

func (w *bulkWriter) removeRecords(ctx context.Context, tx store.Tx, messages []*ResolvedMessage) error {
	values := make([]any, 0, len(messages))
	for _, message := range messages {
		if value, ok := message.LogicalKey[w.primaryKey]; ok && value != nil {
			values = append(values, value)
		}
	}
	if len(values) == 0 {
		return nil
	}
	return tx.BulkDelete(ctx, w.table, w.primaryKey, values)
}
