package logger

import (
	"archive/zip"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LoggerService owns the process log file: it rotates on size, zips and
// removes logs older than the retention window, and feeds the stdlib log
// package so every service writes through it.
type LoggerService struct {
	mu            sync.Mutex
	file          *os.File
	stopCh        chan struct{}
	wg            sync.WaitGroup
	folderPath    string
	maxFileBytes  int64
	retentionDays int
}

func NewLoggerService(cfg map[string]interface{}) *LoggerService {
	folder := "./logs"
	maxMB := 0
	retention := 0
	if cfg != nil {
		if v, ok := cfg["folder_path"].(string); ok && v != "" {
			folder = v
		}
		maxMB = cfgInt(cfg["max_file_mb"])
		retention = cfgInt(cfg["retention_days"])
	}
	return &LoggerService{
		stopCh:        make(chan struct{}),
		folderPath:    folder,
		maxFileBytes:  int64(maxMB) * 1024 * 1024,
		retentionDays: retention,
	}
}

func cfgInt(v interface{}) int {
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	}
	return 0
}

func (l *LoggerService) Name() string {
	return "logger"
}

func (l *LoggerService) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(l.folderPath, 0755); err != nil {
		return err
	}
	if err := l.openNewFileLocked(); err != nil {
		return err
	}
	log.Println("[LoggerService] Started, writing to", l.file.Name())

	l.wg.Add(1)
	go l.backgroundWorker()
	return nil
}

func (l *LoggerService) Stop() error {
	close(l.stopCh)
	l.wg.Wait()
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		log.Println("[LoggerService] Stopping")
		return l.file.Close()
	}
	return nil
}

// LogAudit writes a line that must survive rotation, e.g. gateway access.
func (l *LoggerService) LogAudit(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	log.Printf("[AUDIT] %s", msg)
}

func (l *LoggerService) openNewFileLocked() error {
	name := filepath.Join(l.folderPath, fmt.Sprintf("suite_%s.log", time.Now().Format("20060102_150405")))
	file, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	l.file = file
	log.SetOutput(file)
	return nil
}

func (l *LoggerService) backgroundWorker() {
	defer l.wg.Done()
	rotate := time.NewTicker(10 * time.Second)
	retain := time.NewTicker(24 * time.Hour)
	defer rotate.Stop()
	defer retain.Stop()

	for {
		select {
		case <-l.stopCh:
			return
		case <-rotate.C:
			l.rotateIfNeeded()
		case <-retain.C:
			l.zipAndCleanOldLogs()
		}
	}
}

func (l *LoggerService) rotateIfNeeded() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil || l.maxFileBytes <= 0 {
		return
	}
	info, err := l.file.Stat()
	if err != nil || info.Size() < l.maxFileBytes {
		return
	}
	l.file.Close()
	if err := l.openNewFileLocked(); err == nil {
		log.Println("[LoggerService] Rotated log file to", l.file.Name())
	}
}

func (l *LoggerService) zipAndCleanOldLogs() {
	if l.retentionDays <= 0 {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -l.retentionDays)
	files, err := os.ReadDir(l.folderPath)
	if err != nil {
		return
	}
	zipName := filepath.Join(l.folderPath, fmt.Sprintf("logs_%s.zip", time.Now().Format("20060102")))
	zipFile, err := os.Create(zipName)
	if err != nil {
		return
	}
	defer zipFile.Close()
	zw := zip.NewWriter(zipFile)
	defer zw.Close()

	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".log" {
			continue
		}
		full := filepath.Join(l.folderPath, f.Name())
		info, err := os.Stat(full)
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		w, err := zw.Create(f.Name())
		if err != nil {
			continue
		}
		src, err := os.Open(full)
		if err != nil {
			continue
		}
		io.Copy(w, src)
		src.Close()
		os.Remove(full)
	}
}

var GlobalLogger *LoggerService

func SetGlobalLogger(l *LoggerService) {
	GlobalLogger = l
}
