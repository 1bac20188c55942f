// Package idgen hands out record identifiers. Ids are snowflake numbers
// rendered in base 10 so they stay opaque strings in the persisted JSON.
package idgen

import (
	"strconv"
	"sync"

	"github.com/google/wire"
	"github.com/notarydesk/priorities/pkg/config"
	"github.com/yitter/idgenerator-go/idgen"
)

var Provider = wire.NewSet(NewSnowflake, wire.Bind(new(Generator), new(*Snowflake)))

type Generator interface {
	NextID() string
}

type Snowflake struct{}

var setupOnce sync.Once

// NewSnowflake configures the process wide generator once. Later calls reuse
// the first configuration.
func NewSnowflake(cfg config.Config) *Snowflake {
	setupOnce.Do(func() {
		options := idgen.NewIdGeneratorOptions(cfg.ID.WorkerID)
		if cfg.ID.WorkerIDBitLength > 0 {
			options.WorkerIdBitLength = cfg.ID.WorkerIDBitLength
		}
		if cfg.ID.BaseTime > 0 {
			options.BaseTime = cfg.ID.BaseTime
		}
		idgen.SetIdGenerator(options)
	})
	return &Snowflake{}
}

func (s *Snowflake) NextID() string {
	return strconv.FormatInt(idgen.NextId(), 10)
}

// Sequence yields "1", "2", ... and is meant for tests and fixtures.
type Sequence struct {
	mu   sync.Mutex
	next int64
}

func NewSequence() *Sequence {
	return &Sequence{}
}

func (s *Sequence) NextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return strconv.FormatInt(s.next, 10)
}
