package images

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"outfit-backend/internal/shared/storage/object/local"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func imageServer(t *testing.T, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

type countingRemover struct {
	calls  int
	output []byte
}

func (r *countingRemover) Remove(ctx context.Context, image []byte) ([]byte, error) {
	r.calls++
	return r.output, nil
}

func newTestService(t *testing.T, remover Remover) *Service {
	t.Helper()
	store := local.New(t.TempDir(), "http://localhost:8000/files")
	return NewService(store, remover, "background-removed", "composites")
}

func TestRemoveBackgroundCachesByURLHash(t *testing.T) {
	source := imageServer(t, pngBytes(t, 10, 10))
	remover := &countingRemover{output: pngBytes(t, 10, 10)}
	svc := newTestService(t, remover)

	first, err := svc.RemoveBackground(context.Background(), source.URL+"/a.png")
	if err != nil {
		t.Fatalf("first RemoveBackground: %v", err)
	}
	if !strings.Contains(first, "background-removed/") {
		t.Errorf("url = %q, want background-removed prefix", first)
	}

	second, err := svc.RemoveBackground(context.Background(), source.URL+"/a.png")
	if err != nil {
		t.Fatalf("second RemoveBackground: %v", err)
	}
	if second != first {
		t.Errorf("second url = %q, want %q", second, first)
	}
	if remover.calls != 1 {
		t.Errorf("remover calls = %d, want 1 (second call served from store)", remover.calls)
	}

	// A different source URL is a different key.
	if _, err := svc.RemoveBackground(context.Background(), source.URL+"/b.png"); err != nil {
		t.Fatalf("third RemoveBackground: %v", err)
	}
	if remover.calls != 2 {
		t.Errorf("remover calls = %d, want 2", remover.calls)
	}
}

func TestRemoveBackgroundWithoutBackend(t *testing.T) {
	source := imageServer(t, pngBytes(t, 10, 10))
	svc := newTestService(t, NewRemover(""))

	_, err := svc.RemoveBackground(context.Background(), source.URL+"/a.png")
	if err == nil {
		t.Fatal("expected error without a removal backend")
	}
}

func TestCreateCompositeLayout(t *testing.T) {
	// 100x200 source: scaled output keeps the 1:2 aspect ratio.
	source := imageServer(t, pngBytes(t, 100, 200))
	svc := newTestService(t, &countingRemover{})

	result, err := svc.CreateComposite(context.Background(), []CompositeItem{
		{ProductID: 1, Category: "TOP", Price: 39000, ImageURL: source.URL + "/1.png"},
		{ProductID: 3, Category: "BOTTOM", Price: 49000, ImageURL: source.URL + "/3.png"},
		{ProductID: 4, Category: "SHOES", Price: 99000, ImageURL: source.URL + "/4.png"},
	})
	if err != nil {
		t.Fatalf("CreateComposite: %v", err)
	}

	if result.ImageWidth != 1200 || result.ImageHeight != 1600 {
		t.Errorf("canvas = %dx%d, want 1200x1600", result.ImageWidth, result.ImageHeight)
	}
	if result.TotalPrice != 39000+49000+99000 {
		t.Errorf("totalPrice = %d", result.TotalPrice)
	}
	if result.CompositeImageURL == "" {
		t.Error("composite URL missing")
	}
	if !strings.Contains(result.CompositeImageURL, "composites/") {
		t.Errorf("composite url = %q, want composites prefix", result.CompositeImageURL)
	}

	byCategory := make(map[string]PlacedItem, len(result.Items))
	for _, item := range result.Items {
		byCategory[item.Category] = item
	}

	// Scales are applied to the source dimensions at runtime, so compute
	// expectations through float64 the same way.
	topScale := 0.4
	wantTopWidth := int(100 * topScale)
	wantTopHeight := int(200 * topScale)

	top := byCategory["TOP"]
	if top.Width != wantTopWidth || top.Height != wantTopHeight {
		t.Errorf("TOP size = %dx%d, want %dx%d", top.Width, top.Height, wantTopWidth, wantTopHeight)
	}
	if top.X != 1200/4-wantTopWidth/2 || top.Y != 100 {
		t.Errorf("TOP position = (%d,%d)", top.X, top.Y)
	}

	bottom := byCategory["BOTTOM"]
	if bottom.X != top.X || bottom.Y != 800 {
		t.Errorf("BOTTOM position = (%d,%d)", bottom.X, bottom.Y)
	}

	shoes := byCategory["SHOES"]
	shoeScale := 0.35
	wantShoesWidth := int(100 * shoeScale)
	if shoes.Width != wantShoesWidth {
		t.Errorf("SHOES width = %d, want %d", shoes.Width, wantShoesWidth)
	}
	if shoes.X != 3*1200/4-wantShoesWidth/2 || shoes.Y != 1100 {
		t.Errorf("SHOES position = (%d,%d)", shoes.X, shoes.Y)
	}
}

func TestCreateCompositeRejectsDuplicateCategory(t *testing.T) {
	svc := newTestService(t, &countingRemover{})

	_, err := svc.CreateComposite(context.Background(), []CompositeItem{
		{ProductID: 1, Category: "TOP", ImageURL: "https://cdn.example.com/1.png"},
		{ProductID: 2, Category: "top", ImageURL: "https://cdn.example.com/2.png"},
	})
	if err == nil || !strings.Contains(err.Error(), "duplicate category") {
		t.Fatalf("err = %v, want duplicate category", err)
	}
}

func TestCreateCompositeRejectsUnknownCategory(t *testing.T) {
	svc := newTestService(t, &countingRemover{})

	_, err := svc.CreateComposite(context.Background(), []CompositeItem{
		{ProductID: 1, Category: "HEADWEAR", ImageURL: "https://cdn.example.com/1.png"},
	})
	if err == nil || !strings.Contains(err.Error(), "unknown category") {
		t.Fatalf("err = %v, want unknown category", err)
	}
}

func TestCreateCompositeRejectsEmptyItems(t *testing.T) {
	svc := newTestService(t, &countingRemover{})

	if _, err := svc.CreateComposite(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty item list")
	}
}
