package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"runtime"

	"github.com/mdobak/go-xerrors"
	"golang.org/x/sync/errgroup"

	"winequality/pkg/features"
)

// Artifacts is the read-only preprocessing and model state the pipeline runs
// against. *artifact.Store implements it.
type Artifacts interface {
	Impute(vec features.Vector) ([]float64, error)
	Scale(row []float64) ([]float64, error)
	Predict(row []float64) (float64, error)
}

// Result is the outcome of one prediction.
type Result struct {
	Score    float64  `json:"score"`
	Category Category `json:"category"`
	// Imputed lists, in schema order, the features the imputer filled in.
	Imputed []string `json:"imputed,omitempty"`
}

// Pipeline chains Validate → Impute → Scale → Predict → Categorize. It holds
// no mutable state, so one Pipeline may serve any number of goroutines.
type Pipeline struct {
	artifacts Artifacts
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger used for stage tracing and invariant violations.
func WithLogger(l *slog.Logger) Option { return func(p *Pipeline) { p.logger = l } }

func New(a Artifacts, opts ...Option) *Pipeline {
	p := &Pipeline{
		artifacts: a,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Run validates raw input and predicts. The first failing stage's error is
// returned and later stages do not run.
func (p *Pipeline) Run(ctx context.Context, raw features.RawInput) (Result, error) {
	vec, err := features.Validate(raw)
	if err != nil {
		return Result{}, p.fail(ctx, "validate", err)
	}
	return p.RunVector(ctx, vec)
}

// RunVector predicts from an already validated vector.
func (p *Pipeline) RunVector(ctx context.Context, vec features.Vector) (Result, error) {
	missing := vec.MissingFeatures()
	if len(missing) > 0 {
		p.logger.DebugContext(ctx, "imputing missing features", slog.Any("features", missing))
	}
	imputed, err := p.artifacts.Impute(vec)
	if err != nil {
		return Result{}, p.fail(ctx, "impute", err)
	}
	scaled, err := p.artifacts.Scale(imputed)
	if err != nil {
		return Result{}, p.fail(ctx, "scale", err)
	}
	raw, err := p.artifacts.Predict(scaled)
	if err != nil {
		return Result{}, p.fail(ctx, "predict", err)
	}

	// Categorize the rounded score so a value like 6.996 lands in Good.
	score := Round2(raw)
	res := Result{Score: score, Category: Categorize(score), Imputed: missing}
	p.logger.DebugContext(ctx, "prediction",
		slog.Float64("raw", raw),
		slog.Float64("score", res.Score),
		slog.String("category", string(res.Category)),
	)
	return res, nil
}

// fail logs wiring bugs loudly and passes every error through unchanged.
func (p *Pipeline) fail(ctx context.Context, stage string, err error) error {
	var sm *features.SchemaMismatchError
	var ie *features.InternalError
	if errors.As(err, &sm) || errors.As(err, &ie) {
		p.logger.ErrorContext(ctx, "pipeline invariant violated",
			slog.String("stage", stage),
			slog.Any("error", xerrors.New(err)),
		)
	}
	return err
}

// Outcome is one row's result within a batch.
type Outcome struct {
	Index  int
	Result Result
	Err    error
}

// RunBatch runs every row independently with bounded concurrency. A failing
// row does not stop the others; outcomes keep input order. If ctx is
// cancelled, rows not yet started carry ctx's error.
func (p *Pipeline) RunBatch(ctx context.Context, rows []features.RawInput) ([]Outcome, error) {
	out := make([]Outcome, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, row := range rows {
		g.Go(func() error {
			out[i].Index = i
			if err := gctx.Err(); err != nil {
				out[i].Err = err
				return nil
			}
			out[i].Result, out[i].Err = p.Run(gctx, row)
			return nil
		})
	}
	_ = g.Wait()
	return out, ctx.Err()
}
