package finance

import (
	"context"
	"log"
	"net/http"

	"KabisaBizSuite/internal/cache"
	"KabisaBizSuite/internal/recordstore"
	"KabisaBizSuite/internal/serviceiface"
)

type FinanceService struct {
	config map[string]interface{}
	cache  *cache.TableCache
}

func NewFinanceService(cfg map[string]interface{}, tc *cache.TableCache) serviceiface.Service {
	return &FinanceService{config: cfg, cache: tc}
}

func (s *FinanceService) Name() string {
	return "finance"
}

func (s *FinanceService) Start() error {
	go StartFinanceService(s.cache)
	return nil
}

func (s *FinanceService) Stop() error {
	return nil
}

func StartFinanceService(tc *cache.TableCache) {
	mux := http.NewServeMux()
	mux.HandleFunc("/finance/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Finance Service is active"))
	})
	mux.Handle("/finance/overview", GetOverview(tc))
	mux.Handle("/finance/verification", GetVerification(tc))

	log.Println("Finance Service started on :6143")
	err := http.ListenAndServe(":6143", mux)
	if err != nil {
		log.Fatalf("Finance Service failed: %v", err)
	}
}

// tableOrEmpty reads one table through the cache, treating any fetch
// error as an empty table so a single missing dataset zeroes out instead
// of failing the whole report.
func tableOrEmpty(ctx context.Context, tc *cache.TableCache, table string) []recordstore.Record {
	rows, err := tc.Get(ctx, table)
	if err != nil {
		return nil
	}
	return rows
}
