// Package roadsafe is an embedded client for the road safety intervention
// recommender: the same storage, ranking and validation the HTTP service
// runs, wired directly into the caller's process.
package roadsafe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/roadsafe-cloud/roadsafe/internal/db"
	dbRedis "github.com/roadsafe-cloud/roadsafe/internal/db/redis"
	interventionrepo "github.com/roadsafe-cloud/roadsafe/internal/repository/intervention"
	"github.com/roadsafe-cloud/roadsafe/internal/seed"
	interventionuc "github.com/roadsafe-cloud/roadsafe/internal/usecase/intervention"
	recommenduc "github.com/roadsafe-cloud/roadsafe/internal/usecase/recommend"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the roadsafe entry point.
type Client struct {
	store  db.Store
	ivSvc  *interventionuc.Service
	recSvc *recommenduc.Service
}

// New creates a roadsafe Client and connects to the database.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		readinessTimeout: defaultReadinessTimeout,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("roadsafe: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("roadsafe: create store: %w", err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, cfg.readinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("roadsafe: database not ready: %w", err)
	}

	repo := interventionrepo.New(store)
	c := &Client{
		store:  store,
		ivSvc:  interventionuc.New(repo),
		recSvc: recommenduc.New(repo),
	}

	if cfg.seedDemoData {
		seed.IfEmpty(ctx, repo, zap.NewNop())
	}

	return c, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// CreateIntervention validates and stores a new intervention, returning its ID.
func (c *Client) CreateIntervention(ctx context.Context, iv Intervention) (string, error) {
	id, err := c.ivSvc.Create(ctx, toInternalIntervention(iv))
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetIntervention returns an intervention by ID.
func (c *Client) GetIntervention(ctx context.Context, id string) (Intervention, error) {
	iv, err := c.ivSvc.Get(ctx, id)
	if err != nil {
		return Intervention{}, err
	}
	return fromInternalIntervention(iv), nil
}

// DeleteIntervention removes an intervention by ID.
func (c *Client) DeleteIntervention(ctx context.Context, id string) error {
	return c.ivSvc.Delete(ctx, id)
}

// ListInterventions returns interventions matching the options.
func (c *Client) ListInterventions(ctx context.Context, opts ListOptions) ([]Intervention, error) {
	ivs, err := c.ivSvc.List(ctx, interventionuc.ListQuery{
		RoadType:    opts.RoadType,
		Issue:       opts.Issue,
		Environment: opts.Environment,
		Limit:       opts.Limit,
	})
	if err != nil {
		return nil, err
	}

	out := make([]Intervention, len(ivs))
	for i, iv := range ivs {
		out[i] = fromInternalIntervention(iv)
	}
	return out, nil
}

// Recommend ranks stored interventions against the query.
func (c *Client) Recommend(ctx context.Context, q RecommendQuery) (RecommendResult, error) {
	res, err := c.recSvc.Recommend(ctx, recommenduc.Request{
		Prompt: q.Prompt,
		Filter: toInternalQueryFilter(q),
		TopK:   q.TopK,
	})
	if err != nil {
		return RecommendResult{}, err
	}

	items := make([]Recommendation, len(res.Items))
	for i, s := range res.Items {
		items[i] = Recommendation{
			Intervention: fromInternalIntervention(s.Intervention),
			Score:        s.Score,
			Reasons:      s.Reasons,
		}
	}
	return RecommendResult{
		FiltersUsed: fromInternalFilter(res.FiltersUsed),
		Items:       items,
	}, nil
}
