package internal

import (
	"strings"
	"time"
)

const defaultPrimaryKey = "id"

// ColumnMapping renames a key component or payload field to a store column.
type ColumnMapping struct {
	Field  string `json:"field"`
	Column string `json:"column"`
}

type BatchConsumerConfig struct {
	Name                   string          `json:"-"`
	Table                  string          `json:"table"`
	PrimaryKey             string          `json:"primaryKey"`
	KeyDecoder             KeyDecoderType  `json:"keyDecoder"`
	KeyField               string          `json:"keyField"`
	AbsentKeyPolicy        AbsentKeyPolicy `json:"absentKeyPolicy"`
	KeyColumns             []ColumnMapping `json:"keyColumns"`
	FieldColumns           []ColumnMapping `json:"fieldColumns"`
	DeadlockRetryCount     int             `json:"deadlockRetryCount"`
	DeadlockInitialBackoff time.Duration   `json:"deadlockInitialBackoff"`
	DeadlockMaxBackoff     time.Duration   `json:"deadlockMaxBackoff"`
	Compacted              bool            `json:"compacted"`
	NoKeys                 bool            `json:"noKeys"`
	DisableDeadlockRetry   bool            `json:"disableDeadlockRetry"`
}

func (c *BatchConsumerConfig) KeyColumnMap() map[string]string {
	return toColumnMap(c.KeyColumns)
}

func (c *BatchConsumerConfig) FieldColumnMap() map[string]string {
	return toColumnMap(c.FieldColumns)
}

func toColumnMap(mappings []ColumnMapping) map[string]string {
	columns := make(map[string]string, len(mappings))
	for _, mapping := range mappings {
		columns[mapping.Field] = mapping.Column
	}
	return columns
}

type BatchConsumerConfigMap map[string]*BatchConsumerConfig

func (c BatchConsumerConfigMap) GetConfigWithDefault(name string) (*BatchConsumerConfig, error) {
	cc, exists := c[strings.ToLower(name)]
	if !exists {
		return nil, newConfigurationErr("batch consumer config not found: %s", name)
	}
	cc.Name = name
	if err := cc.Validate(); err != nil {
		return nil, err
	}
	return cc, nil
}

// Validate checks the config and fills defaults in place.
func (c *BatchConsumerConfig) Validate() error {
	if len(c.Table) == 0 {
		return newConfigurationErr("batch consumer config 'table' is required, sink: %s", c.Name)
	}
	if len(c.PrimaryKey) == 0 {
		c.PrimaryKey = defaultPrimaryKey
	}
	if len(c.KeyDecoder) == 0 {
		c.KeyDecoder = JSONKeyDecoderType
	}
	switch c.KeyDecoder {
	case PlainKeyDecoderType, JSONKeyDecoderType:
	case FieldKeyDecoderType:
		if len(c.KeyField) == 0 {
			return newConfigurationErr("batch consumer config 'keyField' is required for keyDecoder field, sink: %s", c.Name)
		}
	default:
		return newConfigurationErr("batch consumer config 'keyDecoder' must be plain, json or field, sink: %s", c.Name)
	}
	if len(c.AbsentKeyPolicy) == 0 {
		c.AbsentKeyPolicy = AbsentKeyIndependent
	}
	if c.AbsentKeyPolicy != AbsentKeyIndependent && c.AbsentKeyPolicy != AbsentKeyShared {
		return newConfigurationErr("batch consumer config 'absentKeyPolicy' must be independent or shared, sink: %s", c.Name)
	}
	for _, mapping := range append(append([]ColumnMapping{}, c.KeyColumns...), c.FieldColumns...) {
		if len(mapping.Field) == 0 || len(mapping.Column) == 0 {
			return newConfigurationErr("batch consumer config column mappings need 'field' and 'column', sink: %s", c.Name)
		}
	}
	if c.DeadlockRetryCount < 0 {
		return newConfigurationErr("batch consumer config 'deadlockRetryCount' cannot be negative, sink: %s", c.Name)
	}
	if c.DisableDeadlockRetry {
		c.DeadlockRetryCount = 0
	} else if c.DeadlockRetryCount == 0 {
		c.DeadlockRetryCount = defaultDeadlockRetryCount
	}
	if c.DeadlockInitialBackoff == 0 {
		c.DeadlockInitialBackoff = defaultDeadlockInitialBackoff
	}
	if c.DeadlockMaxBackoff == 0 {
		c.DeadlockMaxBackoff = defaultDeadlockMaxBackoff
	}
	if c.DeadlockMaxBackoff < c.DeadlockInitialBackoff {
		c.DeadlockMaxBackoff = c.DeadlockInitialBackoff
	}
	return nil
}
