package llm

import (
	"context"
	"log"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// settle runs call for every provider concurrently and waits for all of them.
// Branches never return errors, so the group never short-circuits; a panic in
// one branch is recovered into fallback for that branch only.
func settle[T any](ctx context.Context, providers []Provider, call func(context.Context, Provider) T, fallback func(Provider) T) []T {
	results := make([]T, len(providers))

	var g errgroup.Group
	for i, p := range providers {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[%s] unexpected failure: %v", p.Name(), r)
					results[i] = fallback(p)
				}
			}()
			results[i] = call(ctx, p)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// GenerateAll sends message to every provider at once and returns one
// Outcome per provider, in order, whatever each individual result was.
func GenerateAll(ctx context.Context, message string, providers ...Provider) []Outcome {
	return settle(ctx, providers,
		func(ctx context.Context, p Provider) Outcome {
			text, err := p.Generate(ctx, message)
			return OutcomeOf(p, text, err)
		},
		func(p Provider) Outcome {
			return Failed(p.Name() + " failed")
		},
	)
}

// PingAll probes every provider at once. A provider is working only when its
// probe returned exactly HTTP 200.
func PingAll(ctx context.Context, providers ...Provider) []bool {
	return settle(ctx, providers,
		func(ctx context.Context, p Provider) bool {
			status, err := p.Ping(ctx)
			if err != nil {
				return false
			}
			if status != http.StatusOK {
				log.Printf("[%s] Health check returned status %d", p.Name(), status)
			}
			return status == http.StatusOK
		},
		func(Provider) bool {
			return false
		},
	)
}
