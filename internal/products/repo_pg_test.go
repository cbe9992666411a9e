package products

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func candidateRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "category", "sub_category", "primary_style", "price",
		"image_url", "removed_background_image_url", "purchase_url", "brand_name",
	})
}

func TestPGRepoFindCandidatesAppliesStyleFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	rows := candidateRows().
		AddRow(1, "wide slacks", CategoryBottom, "slacks", "minimalist", 49000,
			"https://cdn.example.com/1.jpg", "https://cdn.example.com/1-nobg.png", "https://shop.example.com/1", "브랜드A").
		AddRow(2, "denim pants", CategoryBottom, nil, "cityboy", 59000,
			"https://cdn.example.com/2.jpg", "https://cdn.example.com/2-nobg.png", nil, "브랜드B")

	mock.ExpectQuery(`OR b\.primary_style IN`).
		WithArgs(CategoryBottom, int64(300000), "minimalist", "cityboy", 10).
		WillReturnRows(rows)

	found, err := repo.FindCandidates(context.Background(), CandidateFilter{
		Category: CategoryBottom,
		Styles:   []string{"minimalist", "cityboy"},
		MaxPrice: 300000,
		Limit:    10,
	})
	if err != nil {
		t.Fatalf("FindCandidates: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("len(found) = %d, want 2", len(found))
	}
	if found[0].ID != 1 || found[0].PrimaryStyle != "minimalist" {
		t.Errorf("unexpected first product: %+v", found[0])
	}
	if found[1].PurchaseURL != "" {
		t.Errorf("NULL purchase_url should scan to empty, got %q", found[1].PurchaseURL)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoFindCandidatesAccessorySkipsStyles(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery(`FROM products p`).
		WithArgs(CategoryAccessory, int64(100000), 10).
		WillReturnRows(candidateRows())

	_, err = repo.FindCandidates(context.Background(), CandidateFilter{
		Category: CategoryAccessory,
		Styles:   []string{"minimalist"},
		MaxPrice: 100000,
		Limit:    10,
	})
	if err != nil {
		t.Fatalf("FindCandidates: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoFindCandidatesRequiresCategory(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	if _, err := repo.FindCandidates(context.Background(), CandidateFilter{}); err != ErrInvalidInput {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestPGRepoFindCandidatesClampsLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery(`FROM products p`).
		WithArgs(CategoryTop, int64(500000), 100).
		WillReturnRows(candidateRows())

	_, err = repo.FindCandidates(context.Background(), CandidateFilter{
		Category: CategoryTop,
		MaxPrice: 500000,
		Limit:    1000,
	})
	if err != nil {
		t.Fatalf("FindCandidates: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery(`FROM products p`).
		WithArgs(int64(42)).
		WillReturnRows(candidateRows())

	if _, err := repo.GetByID(context.Background(), 42); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
