// Package idgen issues entity IDs from a snowflake node: a millisecond
// timestamp plus a per-node monotonic sequence. Collision-resistant within a
// deployment, not cryptographically random.
package idgen

import (
	"log"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	once sync.Once
	node *snowflake.Node
)

// New returns the next ID as a decimal string.
func New() string {
	once.Do(func() {
		n, err := snowflake.NewNode(1)
		if err != nil {
			log.Fatalf("idgen: %v", err)
		}
		node = n
	})
	return node.Generate().String()
}
