package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/openexhibits/exhibits-admin/internal/records"
)

// wrap encodes a payload in the backend's {status, data:{data}} envelope.
func wrap(t *testing.T, payload any) string {
	t.Helper()
	inner, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return fmt.Sprintf(`{"status":200,"data":{"data":%s}}`, inner)
}

func TestExpand(t *testing.T) {
	got := expand(epGridItem, map[string]string{
		"exhibit_id": "ex-1",
		"grid_id":    "g-1",
		"item_id":    "i-1",
	})
	want := "/api/v1/exhibits/ex-1/grids/g-1/items/i-1"
	if got != want {
		t.Errorf("expand: got %q, want %q", got, want)
	}
}

func TestClientSendsTokenHeader(t *testing.T) {
	var gotToken, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("x-access-token")
		gotAccept = r.Header.Get("Accept")
		fmt.Fprint(w, wrap(t, []records.Exhibit{}))
	}))
	defer srv.Close()

	client := New(srv.URL).WithToken("tok-123")
	if _, err := client.Exhibits(context.Background()); err != nil {
		t.Fatalf("Exhibits: %v", err)
	}
	if gotToken != "tok-123" {
		t.Errorf("x-access-token: got %q", gotToken)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept: got %q", gotAccept)
	}
}

func TestClientOmitsTokenWhenUnset(t *testing.T) {
	var sawHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["X-Access-Token"]
		fmt.Fprint(w, wrap(t, []records.Exhibit{}))
	}))
	defer srv.Close()

	if _, err := New(srv.URL).Exhibits(context.Background()); err != nil {
		t.Fatalf("Exhibits: %v", err)
	}
	if sawHeader {
		t.Error("token header sent without a token")
	}
}

func TestExhibitsDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/exhibits" {
			t.Errorf("path: got %q", r.URL.Path)
		}
		fmt.Fprint(w, wrap(t, []records.Exhibit{
			{UUID: "ex-1", Title: "First"},
			{UUID: "ex-2", Title: "Second", IsPublished: true},
		}))
	}))
	defer srv.Close()

	exhibits, err := New(srv.URL).Exhibits(context.Background())
	if err != nil {
		t.Fatalf("Exhibits: %v", err)
	}
	if len(exhibits) != 2 {
		t.Fatalf("got %d exhibits", len(exhibits))
	}
	if exhibits[0].UUID != "ex-1" || exhibits[1].Title != "Second" || !exhibits[1].IsPublished {
		t.Errorf("decoded records: %+v", exhibits)
	}
}

func TestExhibitTakesFirstOfList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, wrap(t, []records.Exhibit{{UUID: "ex-1", Title: "Only"}}))
	}))
	defer srv.Close()

	exhibit, err := New(srv.URL).Exhibit(context.Background(), "ex-1")
	if err != nil {
		t.Fatalf("Exhibit: %v", err)
	}
	if exhibit.Title != "Only" {
		t.Errorf("title: got %q", exhibit.Title)
	}
}

func TestExhibitNotFoundOnEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, wrap(t, []records.Exhibit{}))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Exhibit(context.Background(), "missing")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestCreateExhibitReturnsUUID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method: got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type: got %q", ct)
		}
		var body records.Exhibit
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		if body.Title != "New Exhibit" {
			t.Errorf("body title: got %q", body.Title)
		}
		fmt.Fprint(w, wrap(t, []map[string]string{{"uuid": "created-1"}}))
	}))
	defer srv.Close()

	uuid, err := New(srv.URL).WithToken("t").CreateExhibit(context.Background(), &records.Exhibit{Title: "New Exhibit"})
	if err != nil {
		t.Fatalf("CreateExhibit: %v", err)
	}
	if uuid != "created-1" {
		t.Errorf("uuid: got %q", uuid)
	}
}

func TestCreatedUUIDBareObject(t *testing.T) {
	uuid, err := createdUUID(json.RawMessage(`{"uuid":"solo-1"}`))
	if err != nil {
		t.Fatalf("createdUUID: %v", err)
	}
	if uuid != "solo-1" {
		t.Errorf("uuid: got %q", uuid)
	}
}

func TestBackendErrorSurfacesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"status":401,"message":"invalid token"}`)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Exhibits(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Message != "invalid token" {
		t.Errorf("error: %+v", apiErr)
	}
	if want := "backend error (401): invalid token"; apiErr.Error() != want {
		t.Errorf("Error(): got %q, want %q", apiErr.Error(), want)
	}
}

func TestBackendErrorFallsBackToBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "upstream unreachable")
	}))
	defer srv.Close()

	_, err := New(srv.URL).Exhibits(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Message != "upstream unreachable" {
		t.Errorf("message: got %q", apiErr.Message)
	}
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/users/login" {
			t.Errorf("path: got %q", r.URL.Path)
		}
		var body loginRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		if body.Username != "curator" || body.Password != "hunter2" {
			t.Errorf("credentials: %+v", body)
		}
		fmt.Fprint(w, wrap(t, loginResult{
			Token: "tok-1",
			User:  records.User{Username: "curator", Name: "Cora Curator"},
		}))
	}))
	defer srv.Close()

	token, user, err := New(srv.URL).Login(context.Background(), "curator", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token != "tok-1" {
		t.Errorf("token: got %q", token)
	}
	if user.Name != "Cora Curator" {
		t.Errorf("user: %+v", user)
	}
}

func TestLoginRejectsMissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, wrap(t, loginResult{}))
	}))
	defer srv.Close()

	_, _, err := New(srv.URL).Login(context.Background(), "u", "p")
	if err == nil || !strings.Contains(err.Error(), "no token") {
		t.Errorf("expected missing token error, got %v", err)
	}
}

func TestCreateHeadingSetsParent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/exhibits/ex-1/headings" {
			t.Errorf("path: got %q", r.URL.Path)
		}
		var body records.Heading
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		if body.ExhibitID != "ex-1" {
			t.Errorf("exhibit id on record: got %q", body.ExhibitID)
		}
		fmt.Fprint(w, wrap(t, []map[string]string{{"uuid": "h-1"}}))
	}))
	defer srv.Close()

	client := New(srv.URL).WithToken("t")
	uuid, err := client.CreateHeading(context.Background(), "ex-1", &records.Heading{Text: "Intro"})
	if err != nil {
		t.Fatalf("CreateHeading: %v", err)
	}
	if uuid != "h-1" {
		t.Errorf("uuid: got %q", uuid)
	}
}

func TestSetExhibitPublished(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method: got %s", r.Method)
		}
		var body map[string]bool
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		if published, ok := body["is_published"]; !ok || published {
			t.Errorf("patch body: %v", body)
		}
		if len(body) != 1 {
			t.Errorf("patch should only carry is_published, got %v", body)
		}
		fmt.Fprint(w, wrap(t, []records.Exhibit{}))
	}))
	defer srv.Close()

	err := New(srv.URL).WithToken("t").SetExhibitPublished(context.Background(), "ex-1", false)
	if err != nil {
		t.Fatalf("SetExhibitPublished: %v", err)
	}
}

func TestUploadMedia(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/media/ex-1" {
			t.Errorf("path: got %q", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parsing multipart: %v", err)
		}
		f, header, err := r.FormFile("media")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer f.Close()
		if header.Filename != "scan.jpg" {
			t.Errorf("filename: got %q", header.Filename)
		}
		fmt.Fprint(w, wrap(t, []map[string]string{{"media": "scan-1.jpg"}}))
	}))
	defer srv.Close()

	client := New(srv.URL).WithToken("t")
	stored, err := client.UploadMedia(context.Background(), "ex-1", "scan.jpg", strings.NewReader("jpegbytes"))
	if err != nil {
		t.Fatalf("UploadMedia: %v", err)
	}
	if stored != "scan-1.jpg" {
		t.Errorf("stored filename: got %q", stored)
	}
}

func TestUploadMediaFallsBackToInputName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, wrap(t, []map[string]string{}))
	}))
	defer srv.Close()

	stored, err := New(srv.URL).UploadMedia(context.Background(), "ex-1", "scan.jpg", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("UploadMedia: %v", err)
	}
	if stored != "scan.jpg" {
		t.Errorf("stored filename: got %q", stored)
	}
}
