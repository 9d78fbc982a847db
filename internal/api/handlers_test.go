package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Govt-of-India/mla-portal/internal/cache"
	"github.com/Govt-of-India/mla-portal/internal/config"
	"github.com/Govt-of-India/mla-portal/internal/middleware"
	"github.com/Govt-of-India/mla-portal/internal/models"
	"github.com/Govt-of-India/mla-portal/internal/storage"
	"github.com/Govt-of-India/mla-portal/internal/store"
	"github.com/Govt-of-India/mla-portal/internal/uploads"
)

const testAdminKey = "test-admin-key"

func testApp(t *testing.T) *fiber.App {
	t.Helper()

	contacts, err := storage.NewContactStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewContactStorage: %v", err)
	}

	seed := store.NewMemory(store.Seed(time.Now()))
	h := NewHandlers(Deps{
		Config: &config.Config{
			AdminAPIKey: testAdminKey,
			SiteBaseURL: "https://mla.example.com",
			CacheTTL:    time.Minute,
		},
		Source:    seed,
		Seed:      seed,
		PageCache: cache.NewMemoryStore(),
		Contacts:  contacts,
		Uploader:  uploads.MockUploader{},
	})

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	SetupRoutes(app, h)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, headers map[string]string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return resp, data
}

func adminHeaders() map[string]string {
	return map[string]string{"X-API-Key": testAdminKey}
}

func TestListNewsPublishedWithLimit(t *testing.T) {
	app := testApp(t)

	resp, body := doJSON(t, app, "GET", "/api/news?published=true&limit=2", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var items []models.News
	if err := json.Unmarshal(body, &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	for _, n := range items {
		if !n.Published {
			t.Errorf("item %s is not published", n.ID)
		}
	}
	if items[0].CreatedAt.Before(items[1].CreatedAt) {
		t.Error("items not sorted by createdAt descending")
	}
}

func TestGetNewsByIDNotFound(t *testing.T) {
	app := testApp(t)

	resp, _ := doJSON(t, app, "GET", "/api/news/news-404", nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestCreateNewsRequiresAdminKey(t *testing.T) {
	app := testApp(t)
	payload := models.NewsPayload{
		TitleEn: "T", ContentEn: "C", Slug: "t", Published: true,
	}

	resp, _ := doJSON(t, app, "POST", "/api/news", payload, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("no key: status = %d, want 401", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, "POST", "/api/news", payload, map[string]string{"X-API-Key": "wrong"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("wrong key: status = %d, want 401", resp.StatusCode)
	}
}

func TestCreateNewsEchoesRecord(t *testing.T) {
	app := testApp(t)
	payload := models.NewsPayload{
		TitleEn:   "Bridge Opening",
		TitleHi:   "पुल का उद्घाटन",
		ContentEn: "The new bridge was opened to the public today.",
		Slug:      "bridge-opening",
		Published: true,
	}

	resp, body := doJSON(t, app, "POST", "/api/news", payload, adminHeaders())
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", resp.StatusCode, body)
	}

	var created models.News
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.HasPrefix(created.ID, "news-") {
		t.Errorf("id = %q, want news-<timestamp>", created.ID)
	}
	if created.PublishedAt == nil {
		t.Error("publishedAt not set for published item")
	}

	// Admin writes are not durable; the read path still serves seed data.
	listResp, listBody := doJSON(t, app, "GET", "/api/news", nil, nil)
	if listResp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d", listResp.StatusCode)
	}
	var items []models.News
	if err := json.Unmarshal(listBody, &items); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if len(items) != 5 {
		t.Errorf("seed list changed after POST: %d items", len(items))
	}
}

func TestDraftNewsOmitsPublishedAt(t *testing.T) {
	app := testApp(t)
	payload := models.NewsPayload{
		TitleEn:   "Water Supply Plan",
		ContentEn: "Draft announcement held back for review.",
		Slug:      "water-supply-plan",
		Published: false,
	}

	resp, body := doJSON(t, app, "POST", "/api/news", payload, adminHeaders())
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	if strings.Contains(string(body), "publishedAt") {
		t.Errorf("draft response carries publishedAt: %s", body)
	}

	// Seeded drafts stay clean on the listing too.
	_, listBody := doJSON(t, app, "GET", "/api/news", nil, nil)
	if strings.Contains(string(listBody), `"publishedAt":"0001-01-01`) {
		t.Error("listing serializes a zero publishedAt timestamp")
	}
}

func TestCreateAchievementYearValidation(t *testing.T) {
	app := testApp(t)
	payload := models.AchievementPayload{
		TitleEn:       "Too Old",
		DescriptionEn: "Out of range year",
		Year:          1899,
	}

	resp, body := doJSON(t, app, "POST", "/api/achievements", payload, adminHeaders())
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", resp.StatusCode, body)
	}

	var out struct {
		Error   string                  `json:"error"`
		Details []middleware.FieldError `json:"details"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	found := false
	for _, d := range out.Details {
		if d.Field == "year" {
			found = true
		}
	}
	if !found {
		t.Errorf("details do not identify the year field: %+v", out.Details)
	}
}

func TestCreateVideoRejectsMalformedURL(t *testing.T) {
	app := testApp(t)
	payload := models.VideoPayload{
		TitleEn:  "Clip",
		VideoURL: "not a url",
	}

	resp, body := doJSON(t, app, "POST", "/api/videos", payload, adminHeaders())
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", resp.StatusCode, body)
	}
}

func TestEventsStatusFilter(t *testing.T) {
	app := testApp(t)

	resp, body := doJSON(t, app, "GET", "/api/events?status=upcoming", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var items []models.Event
	if err := json.Unmarshal(body, &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, e := range items {
		if e.Status != models.EventUpcoming {
			t.Errorf("event %s has status %s", e.ID, e.Status)
		}
	}
	for i := 1; i < len(items); i++ {
		if items[i].Date.Before(items[i-1].Date) {
			t.Error("events not sorted by date ascending")
		}
	}
}

func TestAchievementsSortedByYearDesc(t *testing.T) {
	app := testApp(t)

	resp, body := doJSON(t, app, "GET", "/api/achievements", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var items []models.Achievement
	if err := json.Unmarshal(body, &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for i := 1; i < len(items); i++ {
		if items[i].Year > items[i-1].Year {
			t.Error("achievements not sorted by year descending")
		}
	}
}

func TestContactSubmission(t *testing.T) {
	app := testApp(t)

	resp, body := doJSON(t, app, "POST", "/api/contact", models.ContactPayload{
		Name:    "Asha Kumari",
		Email:   "asha@example.com",
		Message: "Please look into the drainage issue in ward 7.",
	}, nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", resp.StatusCode, body)
	}

	// Too-short message is caller-correctable.
	resp, _ = doJSON(t, app, "POST", "/api/contact", models.ContactPayload{
		Name:    "A",
		Email:   "not-an-email",
		Message: "short",
	}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("invalid payload: status = %d, want 400", resp.StatusCode)
	}

	// Admin sees the stored submission.
	resp, body = doJSON(t, app, "GET", "/api/contact", nil, adminHeaders())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin list status = %d", resp.StatusCode)
	}
	var subs []models.ContactSubmission
	if err := json.Unmarshal(body, &subs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(subs) != 1 || subs[0].Name != "Asha Kumari" {
		t.Errorf("stored submissions = %+v", subs)
	}
}

func TestDashboardCounts(t *testing.T) {
	app := testApp(t)

	resp, body := doJSON(t, app, "GET", "/api/admin/dashboard", nil, adminHeaders())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var out struct {
		Counts map[string]int `json:"counts"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Counts["news"] != 5 || out.Counts["achievements"] != 6 {
		t.Errorf("counts = %+v", out.Counts)
	}
}

func TestDashboardToleratesContactStorageFailure(t *testing.T) {
	dir := t.TempDir()
	contacts, err := storage.NewContactStorage(dir)
	if err != nil {
		t.Fatalf("NewContactStorage: %v", err)
	}
	if err := os.RemoveAll(filepath.Join(dir, "contact")); err != nil {
		t.Fatalf("remove contact dir: %v", err)
	}

	seed := store.NewMemory(store.Seed(time.Now()))
	h := NewHandlers(Deps{
		Config:    &config.Config{AdminAPIKey: testAdminKey},
		Source:    seed,
		Seed:      seed,
		PageCache: cache.NewMemoryStore(),
		Contacts:  contacts,
		Uploader:  uploads.MockUploader{},
	})
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	SetupRoutes(app, h)

	resp, body := doJSON(t, app, "GET", "/api/admin/dashboard", nil, adminHeaders())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	var out struct {
		Counts map[string]int `json:"counts"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := out.Counts["contacts"]; ok {
		t.Error("contacts count reported from a failed storage")
	}
	if out.Counts["news"] != 5 {
		t.Errorf("content counts missing: %+v", out.Counts)
	}
}
