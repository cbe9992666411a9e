package images

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRembgClientSendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/remove" {
			t.Errorf("path = %q", r.URL.Path)
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			t.Errorf("FormFile: %v", err)
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		defer file.Close()
		body, _ := io.ReadAll(file)
		if string(body) != "source-bytes" {
			t.Errorf("uploaded body = %q", body)
		}
		_, _ = w.Write([]byte("cutout-bytes"))
	}))
	t.Cleanup(srv.Close)

	client := NewRembgClient(srv.URL)
	out, err := client.Remove(context.Background(), []byte("source-bytes"))
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if string(out) != "cutout-bytes" {
		t.Errorf("out = %q", out)
	}
}

func TestRembgClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client := NewRembgClient(srv.URL)
	_, err := client.Remove(context.Background(), []byte("x"))
	if err == nil {
		t.Fatal("expected error on 500")
	}
}

func TestNewRemoverWithoutURL(t *testing.T) {
	remover := NewRemover("")
	_, err := remover.Remove(context.Background(), []byte("x"))
	if !errors.Is(err, ErrNoRemover) {
		t.Fatalf("err = %v, want ErrNoRemover", err)
	}
}
