package catalog

import (
	"time"

	"github.com/Nwachukwuchinedu/Creative-Stitches/internal/domain"
	"github.com/Nwachukwuchinedu/Creative-Stitches/pkg/slug"
)

// Seed catalog for the bespoke fashion storefront. Prices are in kobo.

func seedProducts() []domain.Product {
	products := []domain.Product{
		{
			ID:          "prod-001",
			Name:        "Ankara Flare Gown",
			Description: "Floor-length gown cut from wax-print Ankara with a fitted bodice and flared skirt.",
			Price:       4_500_000,
			Category:    "gowns",
			ImageURL:    "/images/products/ankara-flare-gown.jpg",
			ImageHint:   "woman in colorful ankara gown",
			Stock:       12,
		},
		{
			ID:          "prod-002",
			Name:        "Agbada Royale",
			Description: "Three-piece embroidered Agbada set in premium guinea brocade.",
			Price:       8_200_000,
			Category:    "men",
			ImageURL:    "/images/products/agbada-royale.jpg",
			ImageHint:   "man wearing embroidered agbada",
			Stock:       6,
			Size:        "XL",
		},
		{
			ID:          "prod-003",
			Name:        "Adire Silk Shirt",
			Description: "Hand-dyed Adire silk shirt with mother-of-pearl buttons.",
			Price:       2_800_000,
			Category:    "men",
			ImageURL:    "/images/products/adire-silk-shirt.jpg",
			ImageHint:   "indigo tie-dye shirt on hanger",
			Stock:       20,
			Size:        "M",
		},
		{
			ID:          "prod-004",
			Name:        "Aso Oke Gele",
			Description: "Handwoven Aso Oke head-tie in metallic thread.",
			Price:       1_500_000,
			Category:    "accessories",
			ImageURL:    "/images/products/aso-oke-gele.jpg",
			ImageHint:   "folded woven head tie",
			Stock:       30,
		},
		{
			ID:          "prod-005",
			Name:        "Senator Suit Classic",
			Description: "Two-piece Senator suit in cashmere-blend fabric with minimal embroidery.",
			Price:       5_600_000,
			Category:    "men",
			ImageURL:    "/images/products/senator-suit-classic.jpg",
			ImageHint:   "navy senator suit on mannequin",
			Stock:       10,
			Size:        "L",
		},
		{
			ID:          "prod-006",
			Name:        "Kaftan Breeze",
			Description: "Lightweight embroidered kaftan for warm evenings.",
			Price:       3_200_000,
			Category:    "women",
			ImageURL:    "/images/products/kaftan-breeze.jpg",
			ImageHint:   "flowing white kaftan",
			Stock:       15,
		},
		{
			ID:          "prod-007",
			Name:        "Dashiki Heritage Tee",
			Description: "Classic Angelina-print Dashiki in unisex cut.",
			Price:       1_200_000,
			Category:    "casual",
			ImageURL:    "/images/products/dashiki-heritage-tee.jpg",
			ImageHint:   "bright dashiki print shirt",
			Stock:       40,
			Size:        "S",
		},
		{
			ID:          "prod-008",
			Name:        "Bùbá & Ìró Set",
			Description: "Traditional Bùbá blouse and Ìró wrapper in matching Aso Oke trim.",
			Price:       6_400_000,
			Category:    "women",
			ImageURL:    "/images/products/buba-iro-set.jpg",
			ImageHint:   "two piece traditional outfit",
			Stock:       8,
		},
	}

	for i := range products {
		products[i].Slug = slug.Generate(products[i].Name)
	}
	return products
}

func seedCategories() []domain.Category {
	return []domain.Category{
		{ID: "gowns", Name: "Gowns", ImageURL: "/images/categories/gowns.jpg", ImageHint: "rack of gowns"},
		{ID: "men", Name: "Men", ImageURL: "/images/categories/men.jpg", ImageHint: "tailored menswear"},
		{ID: "women", Name: "Women", ImageURL: "/images/categories/women.jpg", ImageHint: "womenswear display"},
		{ID: "accessories", Name: "Accessories", ImageURL: "/images/categories/accessories.jpg", ImageHint: "fabric accessories"},
		{ID: "casual", Name: "Casual", ImageURL: "/images/categories/casual.jpg", ImageHint: "casual prints"},
	}
}

func seedOrders() []domain.Order {
	return []domain.Order{
		{
			ID:            "ORD-2025-1042",
			CustomerName:  "Chiamaka Eze",
			CustomerEmail: "chiamaka.eze@example.com",
			Date:          time.Date(2025, time.June, 14, 10, 30, 0, 0, time.UTC),
			Status:        domain.OrderStatusDelivered,
			Total:         5_700_000,
			Items: []domain.OrderItem{
				{ProductID: "prod-001", ProductName: "Ankara Flare Gown", Quantity: 1, Price: 4_500_000},
				{ProductID: "prod-007", ProductName: "Dashiki Heritage Tee", Quantity: 1, Price: 1_200_000},
			},
		},
		{
			ID:            "ORD-2025-1078",
			CustomerName:  "Tunde Bakare",
			CustomerEmail: "tunde.bakare@example.com",
			Date:          time.Date(2025, time.July, 2, 15, 5, 0, 0, time.UTC),
			Status:        domain.OrderStatusShipped,
			Total:         8_200_000,
			Items: []domain.OrderItem{
				{ProductID: "prod-002", ProductName: "Agbada Royale", Quantity: 1, Price: 8_200_000},
			},
		},
		{
			ID:            "ORD-2025-1101",
			CustomerName:  "Amina Yusuf",
			CustomerEmail: "amina.yusuf@example.com",
			Date:          time.Date(2025, time.July, 21, 9, 12, 0, 0, time.UTC),
			Status:        domain.OrderStatusProcessing,
			Total:         3_000_000,
			Items: []domain.OrderItem{
				{ProductID: "prod-004", ProductName: "Aso Oke Gele", Quantity: 2, Price: 1_500_000},
			},
		},
		{
			ID:            "ORD-2025-1115",
			CustomerName:  "Ifeoma Okafor",
			CustomerEmail: "ifeoma.okafor@example.com",
			Date:          time.Date(2025, time.August, 3, 18, 47, 0, 0, time.UTC),
			Status:        domain.OrderStatusPending,
			Total:         6_400_000,
			Items: []domain.OrderItem{
				{ProductID: "prod-008", ProductName: "Bùbá & Ìró Set", Quantity: 1, Price: 6_400_000},
			},
		},
		{
			ID:            "ORD-2025-1003",
			CustomerName:  "Seyi Adewale",
			CustomerEmail: "seyi.adewale@example.com",
			Date:          time.Date(2025, time.May, 28, 12, 0, 0, 0, time.UTC),
			Status:        domain.OrderStatusCancelled,
			Total:         2_800_000,
			Items: []domain.OrderItem{
				{ProductID: "prod-003", ProductName: "Adire Silk Shirt", Quantity: 1, Price: 2_800_000},
			},
		},
	}
}
