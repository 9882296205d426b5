package records

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"KabisaBizSuite/api/documents"
	"KabisaBizSuite/internal/cache"
	"KabisaBizSuite/internal/recordstore"
	"KabisaBizSuite/internal/serviceiface"
)

type DataService struct {
	config map[string]interface{}
	store  recordstore.Store
	cache  *cache.TableCache
}

func NewDataService(cfg map[string]interface{}, store recordstore.Store, tc *cache.TableCache) serviceiface.Service {
	return &DataService{config: cfg, store: store, cache: tc}
}

func (s *DataService) Name() string {
	return "data"
}

func (s *DataService) Start() error {
	go StartDataService(s.store, s.cache)
	return nil
}

func (s *DataService) Stop() error {
	return nil
}

func StartDataService(store recordstore.Store, tc *cache.TableCache) {
	router := mux.NewRouter()
	router.HandleFunc("/data/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Data Service is active"))
	}).Methods("GET")
	router.Handle("/data/tables", GetTables()).Methods("GET", "POST")
	router.Handle("/data/query", QueryTable(tc)).Methods("POST")
	router.Handle("/data/create", CreateRecord(store, tc)).Methods("POST")
	router.Handle("/data/update", UpdateRecord(store, tc)).Methods("POST")
	router.Handle("/data/delete", DeleteRecord(store, tc)).Methods("POST")
	router.Handle("/data/export", ExportCSV(tc)).Methods("POST")
	router.Handle("/data/export-xlsx", ExportXLSX(tc)).Methods("POST")
	router.Handle("/data/status", GetStatus(tc)).Methods("GET", "POST")
	router.Handle("/data/upload", UploadRecords(store, tc)).Methods("POST")
	router.Handle("/documents/list", documents.ListDocuments(tc)).Methods("POST")
	router.Handle("/documents/upload", documents.UploadDocument(store, tc)).Methods("POST")

	log.Println("Data Service started on :7143")
	err := http.ListenAndServe(":7143", router)
	if err != nil {
		log.Fatalf("Data Service failed: %v", err)
	}
}
