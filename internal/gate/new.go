package gate

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"require-checklist/internal/checklist"
	pkgLog "require-checklist/pkg/log"
)

const (
	defaultCacheSize = 512
	defaultCacheTTL  = 10 * time.Minute
)

type usecase struct {
	l            pkgLog.Logger
	repo         IssueRepository
	checklistSvc checklist.Service
	cfg          Config
	now          func() time.Time

	// mu orders cache writes against Invalidate. seq increases on every
	// Invalidate; invalidated holds the seq of the last Invalidate per key,
	// so a Status started before it does not store its verdict.
	mu          sync.Mutex
	seq         uint64
	cache       *expirable.LRU[string, CheckOutput]
	invalidated *expirable.LRU[string, uint64]
}

func New(l pkgLog.Logger, repo IssueRepository, checklistSvc checklist.Service, cfg Config) UseCase {
	size := cfg.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &usecase{
		l:            l,
		repo:         repo,
		checklistSvc: checklistSvc,
		cfg:          cfg,
		now:          time.Now,
		cache:        expirable.NewLRU[string, CheckOutput](size, nil, ttl),
		invalidated:  expirable.NewLRU[string, uint64](size, nil, ttl),
	}
}
