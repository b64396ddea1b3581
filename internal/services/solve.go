package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"vrpsolver-service/internal/domain"
	"vrpsolver-service/internal/platform/obs"
	"vrpsolver-service/internal/ports"
	"vrpsolver-service/internal/solution"
)

// SolveService runs models through the native engine, short-circuiting on
// cached responses and archiving each engine run.
//
// Cache and Archive are optional; a nil port disables that concern. Cache
// and archive failures are logged and do not fail the solve, since the
// engine's answer is already in hand.
type SolveService struct {
	Engine  ports.Engine
	Cache   ports.SolutionCache
	Archive ports.SolveArchive
}

// Solve serializes the model, consults the cache, and invokes the engine on
// a miss. The returned Solution is parsed from whichever response was used.
func (s *SolveService) Solve(ctx context.Context, model *domain.Model) (_ *solution.Solution, err error) {
	defer obs.Time(ctx, "solve")(&err)

	if s.Engine == nil {
		return nil, errors.New("solve: engine is nil")
	}
	if model == nil {
		return nil, errors.New("solve: model must be non-nil")
	}

	request, err := model.MarshalRequest(false)
	if err != nil {
		return nil, fmt.Errorf("solve: serialize model: %w", err)
	}

	key := requestDigest(request)
	if s.Cache != nil {
		cached, ok, cerr := s.Cache.Get(ctx, key)
		if cerr != nil {
			log.Printf("op=solve_cache_get key=%s err=%v", key, cerr)
		} else if ok {
			sol, perr := solution.Parse(cached)
			if perr == nil {
				log.Printf("op=solve cache=hit key=%s", key)
				return sol, nil
			}
			// A cached document that no longer parses is treated as a miss.
			log.Printf("op=solve_cache_parse key=%s err=%v", key, perr)
		}
	}

	response, err := s.Engine.Solve(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("solve: engine: %w", err)
	}

	sol, err := solution.Parse(response)
	if err != nil {
		return nil, fmt.Errorf("solve: parse response: %w", err)
	}

	if s.Cache != nil {
		if cerr := s.Cache.Put(ctx, key, response); cerr != nil {
			log.Printf("op=solve_cache_put key=%s err=%v", key, cerr)
		}
	}
	if s.Archive != nil {
		rec := ports.SolveRecord{
			ID:         uuid.NewString(),
			CreatedAt:  time.Now().UTC(),
			StatusCode: sol.Status.Code,
			Message:    sol.Status.Message,
			Request:    request,
			Response:   response,
		}
		if aerr := s.Archive.Save(ctx, rec); aerr != nil {
			log.Printf("op=solve_archive_save id=%s err=%v", rec.ID, aerr)
		}
	}

	return sol, nil
}

// requestDigest keys the cache on the exact serialized request, so any
// model difference that changes the document changes the key.
func requestDigest(request []byte) string {
	sum := sha256.Sum256(request)
	return hex.EncodeToString(sum[:])
}
