// Package resource runs the process heartbeat: it periodically logs
// runtime health (goroutines, memory, cached table counts) so a stalled
// backend shows up in the audit log before users notice.
package resource

import (
	"fmt"
	"runtime"
	"time"

	"KabisaBizSuite/internal/cache"
	"KabisaBizSuite/internal/logger"
	"KabisaBizSuite/internal/serviceiface"
)

type ResourceManager struct {
	cache             *cache.TableCache
	stopChan          chan struct{}
	heartbeatInterval time.Duration
}

func NewResourceManagerService(cfg map[string]interface{}, tc *cache.TableCache) serviceiface.Service {
	interval := 60 * time.Second
	if val, ok := cfg["heartbeat_interval"]; ok {
		switch v := val.(type) {
		case string:
			if d, err := time.ParseDuration(v); err == nil {
				interval = d
			}
		case int:
			interval = time.Duration(v) * time.Second
		case float64:
			interval = time.Duration(v) * time.Second
		}
	}
	return &ResourceManager{
		cache:             tc,
		stopChan:          make(chan struct{}),
		heartbeatInterval: interval,
	}
}

func (rm *ResourceManager) Name() string { return "resourcemanager" }

func (rm *ResourceManager) Start() error {
	if logger.GlobalLogger != nil {
		logger.GlobalLogger.LogAudit("ResourceManager started")
	}
	go rm.heartbeatLoop()
	return nil
}

func (rm *ResourceManager) Stop() error {
	close(rm.stopChan)
	return nil
}

func (rm *ResourceManager) heartbeatLoop() {
	ticker := time.NewTicker(rm.heartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-rm.stopChan:
			return
		case <-ticker.C:
			rm.logHeartbeat()
		}
	}
}

func (rm *ResourceManager) logHeartbeat() {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	cached := 0
	if rm.cache != nil {
		cached = len(rm.cache.Tables())
	}
	msg := fmt.Sprintf("heartbeat goroutines=%d heap_mb=%d cached_tables=%d",
		runtime.NumGoroutine(), mem.HeapAlloc/1024/1024, cached)
	if logger.GlobalLogger != nil {
		logger.GlobalLogger.LogAudit(msg)
		return
	}
	fmt.Println("ResourceManager:", msg)
}
