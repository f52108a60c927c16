package simulation

import (
	"context"
	"fmt"

	"github.com/lao-tseu-is-alive/go-particle-network/pb"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/log"
)

// FieldActorName is the name the field actor is spawned under.
const FieldActorName = "field"

// NewActorSystem creates and starts the actor system hosting the field.
func NewActorSystem(ctx context.Context, logger log.Logger) (actor.ActorSystem, error) {
	system, err := actor.NewActorSystem("constellation", actor.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start actor system: %w", err)
	}
	return system, nil
}

// SpawnField spawns the FieldActor and returns its PID together with the
// channel it publishes frames on. The channel is buffered so a slow UI only
// drops frames instead of stalling the actor.
func SpawnField(ctx context.Context, system actor.ActorSystem, cfg *Config) (*actor.PID, <-chan *pb.FrameSnapshot, error) {
	snapshotCh := make(chan *pb.FrameSnapshot, 10)

	fieldActor, err := NewFieldActor(snapshotCh, cfg)
	if err != nil {
		return nil, nil, err
	}
	pid, err := system.Spawn(ctx, FieldActorName, fieldActor)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to spawn field: %w", err)
	}
	return pid, snapshotCh, nil
}
