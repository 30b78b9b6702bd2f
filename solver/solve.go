package solver

import (
	"fmt"
	"time"

	"github.com/flowcore/numberlink/board"
	"github.com/flowcore/numberlink/heuristic"
	"github.com/flowcore/numberlink/pathsolve"
	"github.com/flowcore/numberlink/satenc"
	"github.com/flowcore/numberlink/telemetry"
)

// Solve is the package-level convenience entry point, requiring no
// constructed dispatcher, mirroring tsp.SolveWithMatrix being a free
// function over a zero-configuration Options.
func Solve(b board.Board, opts Options) (Result, error) {
	if opts.DeadlineMS <= 0 {
		opts.DeadlineMS = DefaultDeadlineMS
	}

	if err := board.Validate(b); err != nil {
		return Result{Err: ErrInvalidBoard}, fmt.Errorf("%w: %w", ErrInvalidBoard, err)
	}

	deadline := time.Now().Add(time.Duration(opts.DeadlineMS) * time.Millisecond)
	start := time.Now()

	result, dispatchErr := dispatch(b, opts.Strategy, deadline)
	result.Elapsed = time.Since(start)

	telemetry.RecordSolve(opts.Strategy.String(), dispatchErr, result.Elapsed, result.NodeCount)
	return result, dispatchErr
}

// dispatch routes to the requested strategy and recovers from any panic
// a strategy implementation raises, converting it to ErrInternal so a
// bug in one strategy can never escape the dispatcher boundary.
func dispatch(b board.Board, strategy Strategy, deadline time.Time) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInternal, r)
			result = Result{Err: err}
		}
	}()

	var (
		solved      board.Board
		nodeCount   int64
		strategyErr error
	)

	switch strategy {
	case PathEnum:
		solved, nodeCount, strategyErr = pathsolve.Solve(b, deadline)
		strategyErr = translate(strategyErr, pathsolve.ErrNoSolution, pathsolve.ErrTimeout)
	case Heuristic:
		solved, nodeCount, strategyErr = heuristic.Solve(b, deadline)
		strategyErr = translate(strategyErr, heuristic.ErrNoSolution, heuristic.ErrTimeout)
	case SAT:
		solved, nodeCount, strategyErr = satenc.Solve(b, deadline)
		strategyErr = translate(strategyErr, satenc.ErrNoSolution, satenc.ErrTimeout)
	default:
		return Result{Err: ErrUnsupportedStrategy}, ErrUnsupportedStrategy
	}

	result = Result{
		Board:     solved,
		TimedOut:  strategyErr == ErrTimeout,
		NodeCount: nodeCount,
		Err:       strategyErr,
	}
	return result, strategyErr
}

// translate maps a strategy package's local sentinel errors onto
// solver's own sentinels, the boundary each strategy package's doc
// comment describes: strategies never reference solver's types
// directly, avoiding an import cycle, so solver does the translation
// here where it already statically knows which strategy ran.
func translate(err, noSolution, timeout error) error {
	switch {
	case err == nil:
		return nil
	case err == noSolution:
		return ErrNoSolution
	case err == timeout:
		return ErrTimeout
	default:
		return err
	}
}
