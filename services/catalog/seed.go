package catalog

import "websync/models"

// DefaultServices returns the seed catalog: eight services across the
// AC, Plumbing, Electrical and Cleaning categories. Returned as a fresh
// slice so callers can mutate it safely.
func DefaultServices() []models.Service {
	return []models.Service{
		{
			Name:     "AC Maintenance",
			Image:    "https://images.unsplash.com/photo-1631545308418-7c63e81f6b7e?w=400",
			Price:    2500,
			Category: "AC",
		},
		{
			Name:     "AC Installation",
			Image:    "https://plus.unsplash.com/premium_photo-1663013675008-bd5a7898ac46?w=400",
			Price:    4000,
			Category: "AC",
		},
		{
			Name:     "Plumbing Repair",
			Image:    "https://images.unsplash.com/photo-1607472586893-edb57bdc0e39?w=400",
			Price:    1500,
			Category: "Plumbing",
		},
		{
			Name:     "Leakage Fix",
			Image:    "https://images.unsplash.com/photo-1585704032915-c3400ca199e7?w=400",
			Price:    1200,
			Category: "Plumbing",
		},
		{
			Name:     "Electrical Fix",
			Image:    "https://images.unsplash.com/photo-1621905251918-48416bd8575a?w=400",
			Price:    1800,
			Category: "Electrical",
		},
		{
			Name:     "Wiring Installation",
			Image:    "https://images.unsplash.com/photo-1558346490-a72e53ae2d4f?w=400",
			Price:    5000,
			Category: "Electrical",
		},
		{
			Name:     "Home Cleaning",
			Image:    "https://images.unsplash.com/photo-1581578731117-104f2a412727?w=400",
			Price:    3000,
			Category: "Cleaning",
		},
		{
			Name:     "Sofa Cleaning",
			Image:    "https://images.unsplash.com/photo-1556911220-e15b29be8c8f?w=400",
			Price:    2000,
			Category: "Cleaning",
		},
	}
}
