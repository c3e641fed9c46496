package id

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init initializes the Snowflake node with the given node ID.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New generates a new globally unique int64 ID using the Snowflake algorithm.
// Used for token IDs; entity identifiers come from the document store.
func New() int64 {
	return node.Generate().Int64()
}

// NewString returns New formatted as a base-10 string.
func NewString() string {
	return node.Generate().String()
}
