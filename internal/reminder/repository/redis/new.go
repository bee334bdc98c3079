package redis

import (
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"nanoclaw-bridges/internal/reminder/repository"
	pkgLog "nanoclaw-bridges/pkg/log"
)

const (
	defaultPrefix   = "reminders"
	defaultListName = "Inbox"
)

// Options configures the Redis store.
type Options struct {
	Prefix      string // key namespace, e.g. "reminders" -> "reminders:lists"
	DefaultList string // list seeded into an empty namespace
}

type implRepository struct {
	client goredis.UniversalClient
	prefix string
	seed   string
	l      pkgLog.Logger
	newID  func() string
	now    func() time.Time
}

// NewClient opens a go-redis client; the connection is checked by RequestAccess.
func NewClient(addr, password string, db int) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// New creates a store keeping lists and reminders in Redis.
//
// Layout under prefix p:
//
//	p:lists          LIST of JSON lists, store order
//	p:index          LIST of reminder ids, creation order
//	p:reminder:<id>  JSON reminder
func New(l pkgLog.Logger, client goredis.UniversalClient, opt Options) repository.Store {
	prefix := opt.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}
	seed := opt.DefaultList
	if seed == "" {
		seed = defaultListName
	}
	return &implRepository{
		client: client,
		prefix: prefix,
		seed:   seed,
		l:      l,
		newID:  func() string { return uuid.NewString() },
		now:    time.Now,
	}
}

func (r *implRepository) listsKey() string             { return r.prefix + ":lists" }
func (r *implRepository) indexKey() string             { return r.prefix + ":index" }
func (r *implRepository) reminderKey(id string) string { return r.prefix + ":reminder:" + id }
