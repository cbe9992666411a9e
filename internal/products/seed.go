package products

import "fmt"

// SampleCatalog returns a small catalog covering every candidate category and
// style tag, used to seed the in-memory repo for dev runs.
func SampleCatalog() []Product {
	tags := []string{"minimalist", "street", "cityboy", "gorpcore", "amekaji", "hip_hop"}

	var out []Product
	id := int64(1)
	for _, category := range CandidateCategories {
		for _, tag := range tags {
			out = append(out, Product{
				ID:           id,
				Name:         fmt.Sprintf("%s %s %d", tag, category, id),
				Category:     category,
				PrimaryStyle: tag,
				Price:        29_000 + id*1_000,
				Brand:        "샘플브랜드",
				ImageURL:     fmt.Sprintf("https://example.com/products/%d.jpg", id),
				NobgImageURL: fmt.Sprintf("https://example.com/products/%d-nobg.png", id),
				PurchaseURL:  fmt.Sprintf("https://example.com/products/%d", id),
			})
			id++
		}
	}
	for i := 0; i < 3; i++ {
		out = append(out, Product{
			ID:           id,
			Name:         fmt.Sprintf("accessory %d", id),
			Category:     CategoryAccessory,
			Price:        15_000 + id*500,
			Brand:        "샘플브랜드",
			ImageURL:     fmt.Sprintf("https://example.com/products/%d.jpg", id),
			NobgImageURL: fmt.Sprintf("https://example.com/products/%d-nobg.png", id),
			PurchaseURL:  fmt.Sprintf("https://example.com/products/%d", id),
		})
		id++
	}
	return out
}
