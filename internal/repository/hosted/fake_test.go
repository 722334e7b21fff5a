package hosted

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dtroode/contacts-server/internal/token"
)

const (
	testProject = "project-1"
	testSecret  = "secret"
)

// fakeAPI is an in-memory record API served over httptest.
// emptyWrites answers create and update with an empty data array.
type fakeAPI struct {
	mu          sync.Mutex
	tables      map[string]map[int64]map[string]any
	nextID      int64
	failMsg     string
	emptyWrites bool
	calls       []string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{tables: map[string]map[int64]map[string]any{}}
}

func (f *fakeAPI) serve(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /tables/{table}/records/{action}", f.handle)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func (f *fakeAPI) client(srv *httptest.Server) *HTTPClient {
	return NewHTTPClient(srv.URL+"/", 5*time.Second, token.NewJWT(testProject, testSecret, time.Minute))
}

func (f *fakeAPI) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table, action := r.PathValue("table"), r.PathValue("action")
	f.calls = append(f.calls, table+"."+action)

	project, err := token.Parse(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "), testSecret)
	if err != nil || project != testProject {
		writeEnvelope(w, http.StatusUnauthorized, Envelope{Message: "unauthorized"})
		return
	}
	if f.failMsg != "" {
		writeEnvelope(w, http.StatusOK, Envelope{Message: f.failMsg})
		return
	}

	rows := f.tables[table]
	if rows == nil {
		rows = map[int64]map[string]any{}
		f.tables[table] = rows
	}

	switch action {
	case "fetch":
		out := make([]map[string]any, 0, len(rows))
		for id := int64(1); id <= f.nextID; id++ {
			if row, ok := rows[id]; ok {
				out = append(out, row)
			}
		}
		writeData(w, out)
	case "get":
		var req getPayload
		_ = json.NewDecoder(r.Body).Decode(&req)
		row, ok := rows[req.ID]
		if !ok {
			writeData(w, nil)
			return
		}
		writeData(w, row)
	case "create", "update":
		if f.emptyWrites {
			writeData(w, []map[string]any{})
			return
		}
		var req struct {
			Records []map[string]any `json:"records"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		out := make([]map[string]any, 0, len(req.Records))
		now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC).Format(time.RFC3339)
		for _, rec := range req.Records {
			if action == "create" {
				f.nextID++
				rec["Id"] = f.nextID
				rec["CreatedOn"] = now
			} else {
				id := int64(rec["Id"].(float64))
				existing, ok := rows[id]
				if !ok {
					continue
				}
				rec["Id"] = id
				rec["CreatedOn"] = existing["CreatedOn"]
			}
			rec["ModifiedOn"] = now
			rows[int64(toFloat(rec["Id"]))] = rec
			out = append(out, rec)
		}
		writeData(w, out)
	case "delete":
		var req DeletePayload
		_ = json.NewDecoder(r.Body).Decode(&req)
		for _, id := range req.RecordIDs {
			delete(rows, id)
		}
		writeData(w, nil)
	default:
		writeEnvelope(w, http.StatusNotFound, Envelope{Message: "unknown action"})
	}
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

func writeData(w http.ResponseWriter, data any) {
	raw, _ := json.Marshal(data)
	writeEnvelope(w, http.StatusOK, Envelope{Success: true, Data: raw})
}

func writeEnvelope(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}
