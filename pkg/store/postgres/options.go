package postgres

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// validIdentifier matches valid PostgreSQL unquoted identifiers.
var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// maxBindParameters is the PostgreSQL wire protocol limit of bind parameters per statement.
const maxBindParameters = 65535

// SSLMode represents PostgreSQL SSL connection modes.
type SSLMode string

const (
	SSLModeDisable    SSLMode = "disable"
	SSLModeAllow      SSLMode = "allow"
	SSLModePrefer     SSLMode = "prefer"
	SSLModeRequire    SSLMode = "require"
	SSLModeVerifyCA   SSLMode = "verify-ca"
	SSLModeVerifyFull SSLMode = "verify-full"
)

// Option is a functional option for configuring a Store.
type Option func(*options)

type options struct {
	connString                string
	host                      string
	port                      int
	user                      string
	password                  string
	database                  string
	sslMode                   SSLMode
	poolMaxConnections        *int32
	poolMinConnections        *int32
	poolMaxConnectionLifetime *time.Duration
	poolMaxConnectionIdleTime *time.Duration
	maxRowsPerStatement       int
}

func newOptions() *options {
	return &options{
		host:    "localhost",
		port:    5432,
		sslMode: SSLModePrefer,
	}
}

// WithConnectionString uses a complete libpq style connection string; the
// discrete host/port/user options are ignored when it is set.
func WithConnectionString(connString string) Option {
	return func(o *options) {
		o.connString = connString
	}
}

func WithHost(host string) Option {
	return func(o *options) {
		o.host = host
	}
}

func WithPort(port int) Option {
	return func(o *options) {
		o.port = port
	}
}

func WithUser(user string) Option {
	return func(o *options) {
		o.user = user
	}
}

func WithPassword(password string) Option {
	return func(o *options) {
		o.password = password
	}
}

func WithDatabase(database string) Option {
	return func(o *options) {
		o.database = database
	}
}

func WithSSLMode(mode SSLMode) Option {
	return func(o *options) {
		o.sslMode = mode
	}
}

func WithPoolMaxConnections(n int32) Option {
	return func(o *options) {
		o.poolMaxConnections = &n
	}
}

func WithPoolMinConnections(n int32) Option {
	return func(o *options) {
		o.poolMinConnections = &n
	}
}

func WithPoolMaxConnectionLifetime(d time.Duration) Option {
	return func(o *options) {
		o.poolMaxConnectionLifetime = &d
	}
}

func WithPoolMaxConnectionIdleTime(d time.Duration) Option {
	return func(o *options) {
		o.poolMaxConnectionIdleTime = &d
	}
}

// WithMaxRowsPerStatement caps the rows of one multi-row INSERT. The bind
// parameter limit still applies when it is lower.
func WithMaxRowsPerStatement(n int) Option {
	return func(o *options) {
		o.maxRowsPerStatement = n
	}
}

func (o *options) validate() error {
	if o.connString != "" {
		return nil
	}
	if o.host == "" {
		return errors.New("host is required")
	}
	if o.port <= 0 || o.port > 65535 {
		return fmt.Errorf("port %d is out of range", o.port)
	}
	if o.user == "" {
		return errors.New("user is required")
	}
	if o.database == "" {
		return errors.New("database is required")
	}
	switch o.sslMode {
	case SSLModeDisable, SSLModeAllow, SSLModePrefer, SSLModeRequire, SSLModeVerifyCA, SSLModeVerifyFull:
	default:
		return fmt.Errorf("invalid SSL mode %q", o.sslMode)
	}
	if o.maxRowsPerStatement < 0 {
		return errors.New("max rows per statement cannot be negative")
	}
	return nil
}

func (o *options) connectionString() string {
	if o.connString != "" {
		return o.connString
	}
	u := &url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(o.host, strconv.Itoa(o.port)),
		Path:   "/" + o.database,
	}
	if o.password != "" {
		u.User = url.UserPassword(o.user, o.password)
	} else {
		u.User = url.User(o.user)
	}
	q := url.Values{}
	q.Set("sslmode", string(o.sslMode))
	u.RawQuery = q.Encode()
	return u.String()
}

// rowsPerStatement returns how many rows of the given width fit in one statement.
func (o *options) rowsPerStatement(columns int) int {
	if columns == 0 {
		return 1
	}
	n := maxBindParameters / columns
	if o.maxRowsPerStatement > 0 && o.maxRowsPerStatement < n {
		n = o.maxRowsPerStatement
	}
	return n
}

func validateIdentifier(kind, name string) error {
	for _, part := range strings.Split(name, ".") {
		if !validIdentifier.MatchString(part) {
			return fmt.Errorf("invalid %s name %q", kind, name)
		}
	}
	return nil
}
