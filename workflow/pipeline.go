package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/randalmurphal/flowgraph/pkg/flowgraph"

	devcontext "github.com/randalmurphal/apksweep/context"
	apperrors "github.com/randalmurphal/apksweep/errors"
)

// Node names in the pipeline graph.
const (
	nodeSweep    = TaskCleanOldApks
	nodeAssemble = "assemble"
	nodeNotify   = "notify"
)

// Pipeline is the compiled sweep → assemble → notify graph.
type Pipeline struct {
	run func(ctx flowgraph.Context, state State) (State, error)
}

// NewPipeline compiles the packaging graph. The sweep node is the entry and
// its only edge leads to assembly, so the sweep always finishes first.
func NewPipeline() (*Pipeline, error) {
	graph := flowgraph.NewGraph[State]().
		AddNode(nodeSweep, SweepNode).
		AddNode(nodeAssemble, AssembleNode).
		AddNode(nodeNotify, NotifyNode).
		AddEdge(nodeSweep, nodeAssemble).
		AddEdge(nodeAssemble, nodeNotify).
		AddEdge(nodeNotify, flowgraph.END).
		SetEntry(nodeSweep)

	compiled, err := graph.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile pipeline: %w", err)
	}

	return &Pipeline{
		run: func(ctx flowgraph.Context, state State) (State, error) {
			return compiled.Run(ctx, state)
		},
	}, nil
}

// Run executes the pipeline from state.
func (p *Pipeline) Run(ctx flowgraph.Context, state State) (State, error) {
	return p.run(ctx, state)
}

// Run sweeps the output directory and packages variant using services.
//
// The returned error is a CLIError wrapping ErrAssembleFailed when the
// packaging command fails. Sweep problems are reported in the state only.
func Run(ctx context.Context, services *devcontext.Services, variant Variant) (State, error) {
	if !variant.Valid() {
		return State{}, apperrors.NewUnknownVariantError(variant.String())
	}

	pipeline, err := NewPipeline()
	if err != nil {
		return State{}, err
	}

	state := NewState(variant).
		WithCommand(services.ProjectRoot, services.Command(variant.String()))

	fctx := flowgraph.NewContext(services.InjectAll(ctx))
	final, err := pipeline.Run(fctx, state)
	if err != nil {
		return final, err
	}

	if final.Error != "" {
		return final, apperrors.WrapAssembleError(errors.New(final.Error), final.Task)
	}
	return final, nil
}
