package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"

	"github.com/katalvlaran/graphlayout/api"
	"github.com/katalvlaran/graphlayout/store"
)

// Example demonstrates saving a graph and listing the catalog through the
// REST API's http.Handler.
func Example() {
	srv := api.NewServer(store.New(), nil, nil)
	h := srv.Routes()

	body, _ := json.Marshal(map[string]interface{}{
		"id":    "demo",
		"nodes": []map[string]interface{}{{"id": "a"}, {"id": "b"}},
		"edges": []map[string]interface{}{{"source": "a", "target": "b"}},
	})
	saveReq := httptest.NewRequest("POST", "/api/graphs", bytes.NewReader(body))
	saveRec := httptest.NewRecorder()
	h.ServeHTTP(saveRec, saveReq)
	fmt.Println(saveRec.Code)

	listReq := httptest.NewRequest("GET", "/api/graphs", nil)
	listRec := httptest.NewRecorder()
	h.ServeHTTP(listRec, listReq)

	var resp api.GraphListResponse
	_ = json.Unmarshal(listRec.Body.Bytes(), &resp)
	fmt.Println(resp.GraphIDs)
	// Output:
	// 200
	// [demo]
}
