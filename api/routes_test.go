package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pathfinderhq/pathfinder/api"
	dbfs "github.com/pathfinderhq/pathfinder/db"
	"github.com/pathfinderhq/pathfinder/internal/config"
	"github.com/pathfinderhq/pathfinder/internal/db"
	"github.com/pathfinderhq/pathfinder/pkg/models"
)

// envelope mirrors the wire shape for assertions.
type testEnvelope struct {
	Success  bool            `json:"success"`
	Data     json.RawMessage `json:"data"`
	Count    *int            `json:"count"`
	Distance string          `json:"distance"`
	Message  string          `json:"message"`
	Error    string          `json:"error"`
	Details  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"details"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	ctx := context.Background()
	conn, err := db.New(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.Migrate(ctx, conn, dbfs.Migrations, dbfs.SeedFiles); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		JWTSecret:     "testsecret",
		TokenDuration: time.Hour,
		Engine:        config.EngineConfig{Model: "llama3"},
	}

	router, err := api.SetupRoutes(ctx, cfg, "test", "now", api.Deps{DB: conn})
	if err != nil {
		t.Fatalf("SetupRoutes: %v", err)
	}

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, testEnvelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			if err := json.NewEncoder(&buf).Encode(body); err != nil {
				t.Fatalf("encode body: %v", err)
			}
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var env testEnvelope
	_ = json.NewDecoder(resp.Body).Decode(&env)
	return resp, env
}

func signupToken(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	resp, env := doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signup", "", map[string]string{
		"name": "Admin", "email": "admin@example.org", "password": "s3cret",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup status = %d", resp.StatusCode)
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || data.Token == "" {
		t.Fatalf("signup returned no token: %s", env.Data)
	}
	return data.Token
}

func validResource(name string) map[string]any {
	return map[string]any{
		"name":      name,
		"type":      "shelter",
		"address":   "123 Elm St, Manchester, NH",
		"latitude":  42.9847,
		"longitude": -71.4774,
	}
}

func TestHealthAndVersion(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("health status = %d", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/version")
	if err != nil {
		t.Fatalf("GET /version: %v", err)
	}
	defer resp.Body.Close()
	var v struct {
		Version string `json:"version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil || v.Version != "test" {
		t.Errorf("version = %q, err = %v", v.Version, err)
	}
}

func TestAuthFlow(t *testing.T) {
	srv := newTestServer(t)
	signupToken(t, srv)

	// duplicate email
	resp, env := doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signup", "", map[string]string{
		"name": "Admin", "email": "admin@example.org", "password": "other",
	})
	if resp.StatusCode != http.StatusBadRequest || env.Error != "invalid_input" {
		t.Errorf("duplicate signup = %d %q, want 400 invalid_input", resp.StatusCode, env.Error)
	}

	resp, env = doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signin", "", map[string]string{
		"email": "admin@example.org", "password": "s3cret",
	})
	if resp.StatusCode != http.StatusOK || !env.Success {
		t.Errorf("signin = %d, want 200", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/v1/auth/signin", "", map[string]string{
		"email": "admin@example.org", "password": "wrong",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("bad password signin = %d, want 401", resp.StatusCode)
	}
}

func TestWritesRequireAuth(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/v1/resources", "", validResource("Hope House"))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("unauthenticated create = %d, want 401", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/v1/resources", "garbage-token", validResource("Hope House"))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("bad token create = %d, want 401", resp.StatusCode)
	}
}

func TestResourceLifecycle(t *testing.T) {
	srv := newTestServer(t)
	token := signupToken(t, srv)

	// create
	resp, env := doJSON(t, http.MethodPost, srv.URL+"/v1/resources", token, validResource("Hope House"))
	if resp.StatusCode != http.StatusCreated || !env.Success {
		t.Fatalf("create = %d %s", resp.StatusCode, env.Message)
	}
	var created models.Resource
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("created resource has no id")
	}
	if !created.IsActive {
		t.Error("isActive should default to true")
	}
	if len(created.Eligibility) != 1 || created.Eligibility[0] != "all" {
		t.Errorf("eligibility = %v, want default [all]", created.Eligibility)
	}

	// get roundtrip
	url := fmt.Sprintf("%s/v1/resources/%d", srv.URL, created.ID)
	resp, env = doJSON(t, http.MethodGet, url, "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get = %d", resp.StatusCode)
	}
	var got models.Resource
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode got: %v", err)
	}
	if got.Name != "Hope House" || got.Latitude != 42.9847 {
		t.Errorf("roundtrip mismatch: %+v", got)
	}

	// full-payload update clears fields not present in the new payload
	update := validResource("Hope House Renamed")
	update["phone"] = "603-555-0100"
	resp, env = doJSON(t, http.MethodPut, url, token, update)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update = %d %s", resp.StatusCode, env.Message)
	}
	var updated models.Resource
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatalf("decode updated: %v", err)
	}
	if updated.Name != "Hope House Renamed" || updated.Phone != "603-555-0100" {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.Created != got.Created {
		t.Errorf("update changed created from %d to %d", got.Created, updated.Created)
	}

	// rejected update leaves the record unchanged
	resp, env = doJSON(t, http.MethodPut, url, token, map[string]any{"name": "Half Update"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid update = %d, want 400", resp.StatusCode)
	}
	_, env = doJSON(t, http.MethodGet, url, "", nil)
	var after models.Resource
	if err := json.Unmarshal(env.Data, &after); err != nil {
		t.Fatalf("decode after: %v", err)
	}
	if after.Name != "Hope House Renamed" {
		t.Errorf("rejected update mutated the record: %+v", after)
	}

	// delete then get
	resp, env = doJSON(t, http.MethodDelete, url, token, nil)
	if resp.StatusCode != http.StatusOK || env.Message == "" {
		t.Fatalf("delete = %d %q", resp.StatusCode, env.Message)
	}
	resp, env = doJSON(t, http.MethodGet, url, "", nil)
	if resp.StatusCode != http.StatusNotFound || env.Error != "not_found" {
		t.Errorf("get after delete = %d %q, want 404 not_found", resp.StatusCode, env.Error)
	}
	resp, _ = doJSON(t, http.MethodDelete, url, token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("second delete = %d, want 404", resp.StatusCode)
	}
}

func TestResourceValidation(t *testing.T) {
	srv := newTestServer(t)
	token := signupToken(t, srv)

	// missing four of five required fields
	resp, env := doJSON(t, http.MethodPost, srv.URL+"/v1/resources", token, map[string]any{"name": "Just a name"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if env.Error != "invalid_input" || env.Message != "Validation error" {
		t.Errorf("envelope = %q %q", env.Error, env.Message)
	}
	if len(env.Details) == 0 {
		t.Error("validation rejection carries no details")
	}

	// out-of-range coordinate and unknown category
	bad := validResource("Bad")
	bad["latitude"] = 91.0
	bad["type"] = "casino"
	resp, env = doJSON(t, http.MethodPost, srv.URL+"/v1/resources", token, bad)
	if resp.StatusCode != http.StatusBadRequest || len(env.Details) < 2 {
		t.Errorf("status = %d details = %d, want 400 with both violations", resp.StatusCode, len(env.Details))
	}

	// malformed JSON
	resp, env = doJSON(t, http.MethodPost, srv.URL+"/v1/resources", token, `{"name":`)
	if resp.StatusCode != http.StatusBadRequest || env.Error != "invalid_input" {
		t.Errorf("malformed JSON = %d %q", resp.StatusCode, env.Error)
	}

	// non-numeric id
	resp, env = doJSON(t, http.MethodGet, srv.URL+"/v1/resources/abc", "", nil)
	if resp.StatusCode != http.StatusBadRequest || env.Error != "invalid_input" {
		t.Errorf("bad id = %d %q, want 400 invalid_input", resp.StatusCode, env.Error)
	}
}

func TestResourceListing(t *testing.T) {
	srv := newTestServer(t)
	token := signupToken(t, srv)

	seed := []map[string]any{
		validResource("Hope House"),
		validResource("Food Pantry"),
		validResource("Closed Shelter"),
	}
	seed[1]["type"] = "food"
	seed[1]["eligibility"] = []string{"veterans"}
	seed[1]["description"] = "Weekly groceries"
	seed[2]["isActive"] = false

	for _, p := range seed {
		resp, env := doJSON(t, http.MethodPost, srv.URL+"/v1/resources", token, p)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("seed %v = %d %s", p["name"], resp.StatusCode, env.Message)
		}
	}

	list := func(query string) ([]models.Resource, testEnvelope) {
		t.Helper()
		resp, env := doJSON(t, http.MethodGet, srv.URL+"/v1/resources"+query, "", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("list %q = %d", query, resp.StatusCode)
		}
		var items []models.Resource
		if err := json.Unmarshal(env.Data, &items); err != nil {
			t.Fatalf("decode list: %v", err)
		}
		return items, env
	}

	items, env := list("")
	if len(items) != 2 || env.Count == nil || *env.Count != 2 {
		t.Errorf("default list = %d items count %v, want 2 active", len(items), env.Count)
	}

	items, _ = list("?type=food")
	if len(items) != 1 || items[0].Name != "Food Pantry" {
		t.Errorf("type filter = %+v", items)
	}

	items, _ = list("?eligibility=veterans")
	if len(items) != 1 || items[0].Name != "Food Pantry" {
		t.Errorf("eligibility filter = %+v", items)
	}

	items, _ = list("?type=shelter&eligibility=veterans")
	if len(items) != 0 {
		t.Errorf("conjunctive filter = %+v, want empty", items)
	}

	items, _ = list("?search=groceries")
	if len(items) != 1 || items[0].Name != "Food Pantry" {
		t.Errorf("search = %+v", items)
	}

	items, _ = list("?isActive=false")
	if len(items) != 1 || items[0].Name != "Closed Shelter" {
		t.Errorf("inactive list = %+v", items)
	}

	items, _ = list("?limit=1")
	if len(items) != 1 {
		t.Errorf("limit 1 returned %d items", len(items))
	}

	// malformed paging falls back to defaults instead of failing
	items, _ = list("?limit=abc&offset=-5")
	if len(items) != 2 {
		t.Errorf("malformed paging returned %d items, want default page", len(items))
	}

	// no matches is a success with an empty array, not an error
	items, env = list("?type=legal")
	if items == nil || len(items) != 0 || !env.Success {
		t.Errorf("empty match = %v (success=%v), want [] with success", items, env.Success)
	}
}

func TestResourceNearby(t *testing.T) {
	srv := newTestServer(t)
	token := signupToken(t, srv)

	far := validResource("NYC Shelter")
	far["latitude"] = 40.0
	for _, p := range []map[string]any{validResource("Manchester Shelter"), far} {
		if resp, env := doJSON(t, http.MethodPost, srv.URL+"/v1/resources", token, p); resp.StatusCode != http.StatusCreated {
			t.Fatalf("seed = %d %s", resp.StatusCode, env.Message)
		}
	}

	resp, env := doJSON(t, http.MethodGet, srv.URL+"/v1/resources/nearby/42.9847/-71.4774?distance=10", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("nearby = %d", resp.StatusCode)
	}
	var items []models.Resource
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("decode nearby: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Manchester Shelter" {
		t.Errorf("nearby = %+v, want only Manchester Shelter", items)
	}
	if env.Distance != "10 miles" {
		t.Errorf("distance = %q, want %q", env.Distance, "10 miles")
	}

	// default radius applies when the parameter is absent
	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/v1/resources/nearby/42.9847/-71.4774", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("nearby without distance = %d", resp.StatusCode)
	}

	resp, env = doJSON(t, http.MethodGet, srv.URL+"/v1/resources/nearby/not-a-number/-71.4774", "", nil)
	if resp.StatusCode != http.StatusBadRequest || env.Error != "invalid_input" {
		t.Errorf("bad coords = %d %q", resp.StatusCode, env.Error)
	}

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/v1/resources/nearby/42.9847/-71.4774?distance=-3", "", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("negative distance = %d, want 400", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/v1/resources/nearby/95/-71.4774", "", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("out-of-range latitude = %d, want 400", resp.StatusCode)
	}
}

func TestJobLifecycle(t *testing.T) {
	srv := newTestServer(t)
	token := signupToken(t, srv)

	payload := map[string]any{
		"title":       "Line Cook",
		"company":     "Elm Street Diner",
		"description": "Prepare meals during dinner service",
		"location":    "Manchester, NH",
	}
	resp, env := doJSON(t, http.MethodPost, srv.URL+"/v1/jobs", token, payload)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create job = %d %s", resp.StatusCode, env.Message)
	}
	var created models.Job
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode job: %v", err)
	}
	if created.EmploymentType != "Full-time" {
		t.Errorf("employmentType = %q, want default Full-time", created.EmploymentType)
	}
	if created.PostedDate == 0 {
		t.Error("postedDate not stamped")
	}

	// a coordinate on its own is rejected
	lone := map[string]any{
		"title":       "Mover",
		"company":     "Acme",
		"description": "Lifting",
		"location":    "Nashua, NH",
		"latitude":    42.7,
	}
	resp, env = doJSON(t, http.MethodPost, srv.URL+"/v1/jobs", token, lone)
	if resp.StatusCode != http.StatusBadRequest || len(env.Details) == 0 {
		t.Errorf("lone latitude = %d details = %d, want 400 with violation", resp.StatusCode, len(env.Details))
	}

	resp, env = doJSON(t, http.MethodGet, fmt.Sprintf("%s/v1/jobs/%d", srv.URL, created.ID), "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get job = %d", resp.StatusCode)
	}
}

func TestJobListingFilters(t *testing.T) {
	srv := newTestServer(t)
	token := signupToken(t, srv)

	jobs := []map[string]any{
		{"title": "Line Cook", "company": "Diner", "description": "Cooking", "location": "Manchester, NH"},
		{"title": "Data Entry", "company": "Remote Co", "description": "Typing", "location": "Anywhere", "isRemote": true},
		{"title": "Evening Cleaner", "company": "CleanCo", "description": "Cleaning", "location": "Nashua, NH", "employmentType": "Part-time"},
	}
	for _, p := range jobs {
		if resp, env := doJSON(t, http.MethodPost, srv.URL+"/v1/jobs", token, p); resp.StatusCode != http.StatusCreated {
			t.Fatalf("seed %v = %d %s", p["title"], resp.StatusCode, env.Message)
		}
	}

	list := func(query string) []models.Job {
		t.Helper()
		resp, env := doJSON(t, http.MethodGet, srv.URL+"/v1/jobs"+query, "", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("list %q = %d", query, resp.StatusCode)
		}
		var items []models.Job
		if err := json.Unmarshal(env.Data, &items); err != nil {
			t.Fatalf("decode list: %v", err)
		}
		return items
	}

	if items := list(""); len(items) != 3 {
		t.Errorf("default list = %d items", len(items))
	}
	if items := list("?employmentType=Part-time"); len(items) != 1 || items[0].Title != "Evening Cleaner" {
		t.Errorf("employmentType filter = %+v", items)
	}
	if items := list("?isRemote=true"); len(items) != 1 || items[0].Title != "Data Entry" {
		t.Errorf("isRemote filter = %+v", items)
	}
	if items := list("?search=typing"); len(items) != 1 || items[0].Title != "Data Entry" {
		t.Errorf("search = %+v", items)
	}
}

func TestChatEndpoint(t *testing.T) {
	srv := newTestServer(t)
	token := signupToken(t, srv)

	if resp, env := doJSON(t, http.MethodPost, srv.URL+"/v1/resources", token, validResource("Hope House")); resp.StatusCode != http.StatusCreated {
		t.Fatalf("seed = %d %s", resp.StatusCode, env.Message)
	}

	resp, env := doJSON(t, http.MethodPost, srv.URL+"/v1/chat", "", map[string]string{"message": "I need a place to stay"})
	if resp.StatusCode != http.StatusOK || !env.Success {
		t.Fatalf("chat = %d", resp.StatusCode)
	}
	var reply struct {
		Reply  string `json:"reply"`
		Intent string `json:"intent"`
		Source string `json:"source"`
	}
	if err := json.Unmarshal(env.Data, &reply); err != nil {
		t.Fatalf("decode reply: %v", err)
	}
	if reply.Intent != "shelter" {
		t.Errorf("intent = %q, want shelter", reply.Intent)
	}
	if reply.Source != "fallback" {
		t.Errorf("source = %q, want fallback without a collaborator", reply.Source)
	}
	if !strings.Contains(reply.Reply, "Hope House") {
		t.Errorf("reply %q should surface the seeded shelter", reply.Reply)
	}

	resp, env = doJSON(t, http.MethodPost, srv.URL+"/v1/chat", "", map[string]string{"message": "   "})
	if resp.StatusCode != http.StatusBadRequest || env.Error != "invalid_input" {
		t.Errorf("blank message = %d %q", resp.StatusCode, env.Error)
	}

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/v1/chat", "", map[string]string{"message": strings.Repeat("x", 2001)})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("oversized message = %d, want 400", resp.StatusCode)
	}
}

func TestResumeEndpoints(t *testing.T) {
	srv := newTestServer(t)

	payload := map[string]any{
		"name":    "Jordan Reyes",
		"summary": "Reliable worker",
		"skills":  []string{"forklift"},
	}
	resp, env := doJSON(t, http.MethodPost, srv.URL+"/v1/resume/generate", "", payload)
	if resp.StatusCode != http.StatusOK || !env.Success {
		t.Fatalf("generate = %d %s", resp.StatusCode, env.Message)
	}
	var out struct {
		Resume string `json:"resume"`
		Source string `json:"source"`
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode resume: %v", err)
	}
	if out.Source != "fallback" {
		t.Errorf("source = %q, want fallback without a collaborator", out.Source)
	}
	if !strings.Contains(out.Resume, "JORDAN REYES") {
		t.Errorf("resume %q should carry the uppercased name", out.Resume)
	}

	// name is required
	resp, env = doJSON(t, http.MethodPost, srv.URL+"/v1/resume/generate", "", map[string]any{"summary": "no name"})
	if resp.StatusCode != http.StatusBadRequest || len(env.Details) == 0 {
		t.Errorf("missing name = %d details = %d", resp.StatusCode, len(env.Details))
	}

	resp, env = doJSON(t, http.MethodGet, srv.URL+"/v1/resume/template", "", nil)
	if resp.StatusCode != http.StatusOK || !env.Success {
		t.Errorf("template = %d", resp.StatusCode)
	}
}

func TestValidationAdminEndpoints(t *testing.T) {
	srv := newTestServer(t)
	token := signupToken(t, srv)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/v1/validation/reload", token, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("reload = %d, want 204", resp.StatusCode)
	}

	// replace the resource schema with one that only needs a name, then reload
	loose := map[string]any{
		"kind":        "resource",
		"schema_json": map[string]any{"type": "object", "required": []string{"name"}},
	}
	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/v1/validation/schemas", token, loose)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("upsert = %d, want 204", resp.StatusCode)
	}
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/v1/validation/reload", token, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("reload after upsert = %d", resp.StatusCode)
	}

	// a bare name now passes validation
	resp, env := doJSON(t, http.MethodPost, srv.URL+"/v1/resources", token, map[string]any{"name": "Loose"})
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("create under loosened schema = %d %s", resp.StatusCode, env.Message)
	}

	// missing kind is rejected
	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/v1/validation/schemas", token, map[string]any{
		"schema_json": map[string]any{"type": "object"},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing kind = %d, want 400", resp.StatusCode)
	}

	// schema endpoints are write-protected
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/v1/validation/reload", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("unauthenticated reload = %d, want 401", resp.StatusCode)
	}
}
