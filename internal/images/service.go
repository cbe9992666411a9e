package images

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	_ "image/jpeg"

	"outfit-backend/internal/shared/storage/object"
	"outfit-backend/internal/shared/telemetry"
)

// Composite canvas dimensions, portrait orientation.
const (
	canvasWidth  = 1200
	canvasHeight = 1600
)

// placement fixes where a category lands on the canvas. Scale is relative to
// the canvas width.
type placement struct {
	side  string // "left" or "right"
	y     int
	scale float64
}

var placements = map[string]placement{
	"TOP":       {side: "left", y: 100, scale: 0.4},
	"OUTER":     {side: "right", y: 100, scale: 0.4},
	"BOTTOM":    {side: "left", y: 800, scale: 0.4},
	"ACCESSORY": {side: "right", y: 600, scale: 0.3},
	"SHOES":     {side: "right", y: 1100, scale: 0.35},
}

// CompositeItem is one product to place on the canvas. The image must be a
// background-removed PNG so items layer cleanly.
type CompositeItem struct {
	ProductID int64  `json:"productId" binding:"required"`
	Category  string `json:"category" binding:"required"`
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	Price     int64  `json:"price"`
	ImageURL  string `json:"nobgImageUrl" binding:"required"`
	LinkURL   string `json:"linkUrl"`
}

// ValidateItems checks the items can be laid out: at least one item, known
// categories, each category at most once.
func ValidateItems(items []CompositeItem) error {
	if len(items) == 0 {
		return fmt.Errorf("composite: no items")
	}
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		category := strings.ToUpper(strings.TrimSpace(item.Category))
		if _, ok := placements[category]; !ok {
			return fmt.Errorf("composite: unknown category %q", item.Category)
		}
		if seen[category] {
			return fmt.Errorf("composite: duplicate category %q", category)
		}
		seen[category] = true
	}
	return nil
}

// PlacedItem is a composite item with its resolved canvas position.
type PlacedItem struct {
	ProductID int64  `json:"productId"`
	Category  string `json:"category"`
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	Price     int64  `json:"price"`
	ImageURL  string `json:"imageUrl"`
	LinkURL   string `json:"linkUrl"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// CompositeResult is the finished composite image plus item layout.
type CompositeResult struct {
	CompositeImageURL string       `json:"compositeImageUrl"`
	ImageWidth        int          `json:"imageWidth"`
	ImageHeight       int          `json:"imageHeight"`
	TotalPrice        int64        `json:"totalPrice"`
	Items             []PlacedItem `json:"items"`
}

// Service removes image backgrounds and assembles outfit composites. Results
// are stored under deterministic keys so repeated requests for the same
// source image are served from the object store.
type Service struct {
	Store           object.ObjectStore
	Remover         Remover
	ImagePrefix     string
	CompositePrefix string
	httpClient      *http.Client
}

func NewService(store object.ObjectStore, remover Remover, imagePrefix, compositePrefix string) *Service {
	return &Service{
		Store:           store,
		Remover:         remover,
		ImagePrefix:     imagePrefix,
		CompositePrefix: compositePrefix,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// RemoveBackground fetches the source image, strips its background, and
// stores the cut-out PNG. The storage key is the MD5 of the source URL, so a
// second call for the same URL returns the cached object without touching
// the removal backend.
func (s *Service) RemoveBackground(ctx context.Context, imageURL string) (string, error) {
	key := s.removedKey(imageURL)

	if exists, err := s.Store.Exists(ctx, key); err != nil {
		telemetry.Error("images.exists", map[string]any{"key": key, "error": err.Error()})
	} else if exists {
		telemetry.Info("images.cache_hit", map[string]any{"key": key})
		return s.Store.URL(key), nil
	}

	source, err := s.download(ctx, imageURL)
	if err != nil {
		return "", err
	}

	cutout, err := s.Remover.Remove(ctx, source)
	if err != nil {
		return "", fmt.Errorf("remove background: %w", err)
	}

	if _, err := s.Store.SaveWithKey(ctx, key, "image/png", bytes.NewReader(cutout)); err != nil {
		return "", fmt.Errorf("store cutout: %w", err)
	}
	return s.Store.URL(key), nil
}

// CreateComposite lays the items out on a fixed 1200x1600 canvas, one slot
// per category, and stores the rendered PNG. Each category may appear at
// most once.
func (s *Service) CreateComposite(ctx context.Context, items []CompositeItem) (*CompositeResult, error) {
	if err := ValidateItems(items); err != nil {
		return nil, err
	}

	canvas := image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))

	result := &CompositeResult{
		ImageWidth:  canvasWidth,
		ImageHeight: canvasHeight,
		Items:       make([]PlacedItem, 0, len(items)),
	}

	for _, item := range items {
		category := strings.ToUpper(strings.TrimSpace(item.Category))
		slot := placements[category]

		src, err := s.fetchImage(ctx, item.ImageURL)
		if err != nil {
			return nil, fmt.Errorf("composite: fetch %s: %w", category, err)
		}

		placed := placeOnCanvas(canvas, src, slot)
		placed.ProductID = item.ProductID
		placed.Category = category
		placed.Name = item.Name
		placed.Brand = item.Brand
		placed.Price = item.Price
		placed.ImageURL = item.ImageURL
		placed.LinkURL = item.LinkURL

		result.Items = append(result.Items, placed)
		result.TotalPrice += item.Price
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("composite: encode: %w", err)
	}

	key := path.Join(s.CompositePrefix, uuid.NewString()+".png")
	if _, err := s.Store.SaveWithKey(ctx, key, "image/png", bytes.NewReader(buf.Bytes())); err != nil {
		return nil, fmt.Errorf("composite: store: %w", err)
	}
	result.CompositeImageURL = s.Store.URL(key)

	telemetry.Info("images.composite", map[string]any{
		"key":   key,
		"items": len(result.Items),
	})
	return result, nil
}

// placeOnCanvas scales the source image by the slot's factor and draws it at
// the slot's column. Left column centers on a quarter of the canvas width,
// right column on three quarters.
func placeOnCanvas(canvas *image.RGBA, src image.Image, slot placement) PlacedItem {
	bounds := src.Bounds()
	width := int(float64(bounds.Dx()) * slot.scale)
	height := int(float64(bounds.Dy()) * slot.scale)

	x := canvasWidth/4 - width/2
	if slot.side == "right" {
		x = 3*canvasWidth/4 - width/2
	}

	dst := image.Rect(x, slot.y, x+width, slot.y+height)
	draw.CatmullRom.Scale(canvas, dst, src, bounds, draw.Over, nil)

	return PlacedItem{X: x, Y: slot.y, Width: width, Height: height}
}

func (s *Service) fetchImage(ctx context.Context, url string) (image.Image, error) {
	raw, err := s.download(ctx, url)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

func (s *Service) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download image: http status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (s *Service) removedKey(imageURL string) string {
	sum := md5.Sum([]byte(imageURL))
	return path.Join(s.ImagePrefix, hex.EncodeToString(sum[:])+".png")
}
