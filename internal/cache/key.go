// Package cache memoizes query results by logical query identity and
// invalidates them in groups when a mutation lands.
package cache

import (
	"net/url"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Key identifies one logical query: resource, operation, and a fingerprint
// of the filter/pagination tuple. Two calls with identical params share one
// key and therefore one cache slot and one in-flight request.
type Key struct {
	Resource string
	Op       string
	Arg      string
}

func (k Key) String() string {
	s := k.Resource + ":" + k.Op
	if k.Arg != "" {
		s += ":" + k.Arg
	}
	return s
}

// Group returns the invalidation prefix covering every key of this
// resource+op pair, regardless of params.
func (k Key) Group() string {
	return k.Resource + ":" + k.Op
}

func NewKey(resource, op string, arg string) Key {
	return Key{Resource: resource, Op: op, Arg: arg}
}

// ParamsKey fingerprints a filter tuple. url.Values.Encode sorts keys, so
// the fingerprint is stable across call sites.
func ParamsKey(resource, op string, params url.Values) Key {
	if len(params) == 0 {
		return Key{Resource: resource, Op: op}
	}
	sum := xxhash.Sum64String(params.Encode())
	return Key{Resource: resource, Op: op, Arg: strconv.FormatUint(sum, 16)}
}

// GroupsFor lists the query groups a mutation on resource invalidates:
// lists, the active subset, details, and statistics. Cached results are
// never patched locally; the next read refetches.
func GroupsFor(resource string) []string {
	return []string{
		resource + ":list",
		resource + ":active",
		resource + ":detail",
		resource + ":stats",
	}
}
