package internal

import (
	"fmt"
	"sort"

	"github.com/aykanferhat/go-kafka-record-sink/pkg/json"
	"github.com/aykanferhat/go-kafka-record-sink/pkg/store"
)

// LogicalKey maps attribute names to the scalar values identifying a record.
type LogicalKey map[string]any

// Columns returns the attribute names in sorted order.
func (k LogicalKey) Columns() []string {
	columns := make([]string, 0, len(k))
	for column := range k {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}

// Identity renders the key canonically: equal keys render equally
// regardless of map order, and numbers compare by value so 1 and 1.0 match.
// A string and a number never match, "1" and 1 are different keys.
func (k LogicalKey) Identity() string {
	if len(k) == 0 {
		return ""
	}
	normalized := make(map[string]any, len(k))
	for column, value := range k {
		normalized[column] = store.NormalizeValue(value)
	}
	bytes, err := json.Marshal(normalized)
	if err != nil {
		return fmt.Sprint(normalized)
	}
	return string(bytes)
}
